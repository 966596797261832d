package records

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	bookings []Booking
	requests []ContactRequest
	err      error
}

func (f *fakeLister) ListBookings(context.Context) ([]Booking, error) {
	return f.bookings, f.err
}

func (f *fakeLister) ListContactRequests(context.Context) ([]ContactRequest, error) {
	return f.requests, f.err
}

func TestHandler_ListBookings(t *testing.T) {
	lister := &fakeLister{bookings: []Booking{{
		ID:          "b1",
		ServiceName: "Spa Day",
		PetName:     "Luna",
		Consent:     true,
		CreatedAt:   time.Now().UTC(),
	}}}
	h := NewHandler(lister, nil)

	req := httptest.NewRequest("GET", "/bookings", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Luna", got[0].PetName)
}

func TestHandler_ListBookingsError(t *testing.T) {
	h := NewHandler(&fakeLister{err: errors.New("db down")}, nil)

	req := httptest.NewRequest("GET", "/bookings", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, 500, rec.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, rec.Body.String())
}

func TestHandler_ListContactRequests(t *testing.T) {
	lister := &fakeLister{requests: []ContactRequest{{
		ID:            "c1",
		Phone:         "5558675309",
		PreferredTime: "Tonight",
		CreatedAt:     time.Now().UTC(),
	}}}
	h := NewHandler(lister, nil)

	req := httptest.NewRequest("GET", "/contact-requests", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)

	var got []ContactRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "5558675309", got[0].Phone)
}
