package records

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository persists bookings and contact requests.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// AddBooking stores a booking and returns it with its generated id set.
func (r *Repository) AddBooking(ctx context.Context, b Booking) (Booking, error) {
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookings (id, service_id, service_name, pet_name, date, time,
		    owner_name, owner_phone, owner_email, notes, consent, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		b.ID, b.ServiceID, b.ServiceName, b.PetName, b.Date, b.Time,
		b.OwnerName, b.OwnerPhone, b.OwnerEmail, b.Notes, b.Consent, b.CreatedAt)
	if err != nil {
		return Booking{}, fmt.Errorf("records: failed to insert booking: %w", err)
	}
	return b, nil
}

// ListBookings returns all bookings, newest first.
func (r *Repository) ListBookings(ctx context.Context) ([]Booking, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, service_id, service_name, pet_name, date, time,
		       owner_name, owner_phone, owner_email, notes, consent, created_at
		FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("records: failed to list bookings: %w", err)
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.ServiceID, &b.ServiceName, &b.PetName, &b.Date, &b.Time,
			&b.OwnerName, &b.OwnerPhone, &b.OwnerEmail, &b.Notes, &b.Consent, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("records: failed to scan booking: %w", err)
		}
		out = append(out, b)
	}
	if out == nil {
		out = []Booking{}
	}
	return out, rows.Err()
}

// AddContactRequest stores a callback request and returns it with its
// generated id set.
func (r *Repository) AddContactRequest(ctx context.Context, c ContactRequest) (ContactRequest, error) {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contact_requests (id, phone, preferred_time, created_at)
		VALUES ($1,$2,$3,$4)`,
		c.ID, c.Phone, c.PreferredTime, c.CreatedAt)
	if err != nil {
		return ContactRequest{}, fmt.Errorf("records: failed to insert contact request: %w", err)
	}
	return c, nil
}

// ListContactRequests returns all callback requests, newest first.
func (r *Repository) ListContactRequests(ctx context.Context) ([]ContactRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, phone, preferred_time, created_at
		FROM contact_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("records: failed to list contact requests: %w", err)
	}
	defer rows.Close()

	var out []ContactRequest
	for rows.Next() {
		var c ContactRequest
		if err := rows.Scan(&c.ID, &c.Phone, &c.PreferredTime, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("records: failed to scan contact request: %w", err)
		}
		out = append(out, c)
	}
	if out == nil {
		out = []ContactRequest{}
	}
	return out, rows.Err()
}
