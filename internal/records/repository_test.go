package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_AddBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(1, 1))

	saved, err := repo.AddBooking(context.Background(), Booking{
		ServiceID:   "svc_boarding",
		ServiceName: "Hotel (Boarding)",
		PetName:     "Fido",
		Date:        "Wed Sep 02 2026",
		Time:        "10am",
		OwnerName:   "John Doe",
		OwnerPhone:  "5558675309",
		Consent:     true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddBookingError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(errors.New("connection refused"))

	_, err = repo.AddBooking(context.Background(), Booking{PetName: "Fido"})
	assert.Error(t, err)
}

func TestRepository_ListBookings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "service_id", "service_name", "pet_name", "date", "time",
		"owner_name", "owner_phone", "owner_email", "notes", "consent", "created_at",
	}).AddRow("b1", "svc_spa", "Spa Day", "Luna", "Wed Sep 02 2026", "2pm",
		"Maria", "5551234567", "", "", true, now)

	mock.ExpectQuery("SELECT (.+) FROM bookings").WillReturnRows(rows)

	bookings, err := repo.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Spa Day", bookings[0].ServiceName)
	assert.Equal(t, "Luna", bookings[0].PetName)
	assert.True(t, bookings[0].Consent)
}

func TestRepository_ListBookingsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "service_id", "service_name", "pet_name", "date", "time",
			"owner_name", "owner_phone", "owner_email", "notes", "consent", "created_at",
		}))

	bookings, err := repo.ListBookings(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestRepository_AddContactRequest(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("INSERT INTO contact_requests").
		WillReturnResult(sqlmock.NewResult(1, 1))

	saved, err := repo.AddContactRequest(context.Background(), ContactRequest{
		Phone:         "5558675309",
		PreferredTime: "Tonight",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "5558675309", saved.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListContactRequests(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "phone", "preferred_time", "created_at"}).
		AddRow("c1", "5558675309", "Tonight", now).
		AddRow("c2", "5551234567", "tomorrow morning", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM contact_requests").WillReturnRows(rows)

	requests, err := repo.ListContactRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "Tonight", requests[0].PreferredTime)
}
