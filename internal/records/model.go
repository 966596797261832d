package records

import (
	"time"

	"github.com/hotelmadagascar/concierge/internal/chatbot"
)

// Booking is one persisted booking record produced by a completed
// conversation.
type Booking struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id"`
	ServiceName string    `json:"service_name"`
	PetName     string    `json:"pet_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	OwnerName   string    `json:"owner_name"`
	OwnerPhone  string    `json:"owner_phone"`
	OwnerEmail  string    `json:"owner_email,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Consent     bool      `json:"consent"`
	CreatedAt   time.Time `json:"created_at"`
}

// ContactRequest is one persisted callback request.
type ContactRequest struct {
	ID            string    `json:"id"`
	Phone         string    `json:"phone"`
	PreferredTime string    `json:"preferred_time"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingFromSlots builds a booking record from a completed conversation's
// slots. The service name is resolved by the caller since slots carry only
// the service id.
func BookingFromSlots(slots map[string]string, serviceName string) Booking {
	return Booking{
		ServiceID:   slots[chatbot.SlotService],
		ServiceName: serviceName,
		PetName:     slots[chatbot.SlotPetName],
		Date:        slots[chatbot.SlotDate],
		Time:        slots[chatbot.SlotTime],
		OwnerName:   slots[chatbot.SlotOwnerName],
		OwnerPhone:  slots[chatbot.SlotOwnerPhone],
		OwnerEmail:  slots[chatbot.SlotOwnerEmail],
		Notes:       slots[chatbot.SlotNotes],
		Consent:     slots[chatbot.SlotConsent] == "true",
	}
}
