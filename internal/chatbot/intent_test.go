package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hotelmadagascar/concierge/internal/catalog"
)

func newTestClassifier() *Classifier {
	return NewClassifier(catalog.NewStore(nil, nil))
}

func TestDetectKeywordRules(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name string
		text string
		lang string
		want string
	}{
		{"booking", "I want to book an appointment", "en", IntentBookService},
		{"callback", "can you call me later", "en", IntentRequestContactCall},
		{"hours", "what are your hours?", "en", "ask_hours"},
		{"price", "how much does it cost", "en", "ask_price"},
		{"vaccinations", "do you require the rabies vaccine", "en", "ask_vaccinations"},
		{"allergy", "my dog is sensitive to perfumes", "en", IntentAskAllergy},
		{"services", "what do you offer", "en", IntentServices},
		{"greeting", "hello!", "en", IntentGreeting},
		{"affirmative", "yes please", "en", IntentAffirmative},
		{"negative", "nope", "en", IntentNegative},
		{"booking es", "quiero reservar una cita", "es", IntentBookService},
		{"hours es", "¿cuál es su horario?", "es", "ask_hours"},
		{"services es", "¿qué servicios tienen?", "es", IntentServices},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Detect(tt.text, NewContext(tt.lang))
			assert.Equal(t, tt.want, got.Name)
			assert.Equal(t, 0.9, got.Confidence)
		})
	}
}

func TestDetectAwaitingSlotOverridesBooking(t *testing.T) {
	c := newTestClassifier()
	conv := NewContext("en")
	conv.State = StateBooking
	conv.AwaitingSlot = SlotService

	// "board" is a booking keyword, but while a slot is awaited it names
	// the slot value, not a new booking.
	got := c.Detect("Hotel (Boarding)", conv)
	assert.Equal(t, "provide_service", got.Name)
	assert.Equal(t, 0.95, got.Confidence)
}

func TestDetectAwaitingSlotFallback(t *testing.T) {
	c := newTestClassifier()
	conv := NewContext("en")
	conv.State = StateBooking
	conv.AwaitingSlot = SlotPetName

	got := c.Detect("Fido", conv)
	assert.Equal(t, "provide_petName", got.Name)
	assert.Equal(t, 0.95, got.Confidence)
}

func TestDetectConfirmationKeywords(t *testing.T) {
	c := newTestClassifier()
	conv := NewContext("en")
	conv.State = StateConfirmation

	got := c.Detect("confirm", conv)
	assert.Equal(t, IntentAffirmative, got.Name)
	assert.Equal(t, 0.9, got.Confidence)
}

func TestDetectKnowledgeProbe(t *testing.T) {
	c := newTestClassifier()

	got := c.Detect("tell me about the daily routine", NewContext("en"))
	assert.Equal(t, IntentQuestion, got.Name)
	assert.Equal(t, 0.7, got.Confidence)
}

func TestDetectUnknown(t *testing.T) {
	c := newTestClassifier()

	got := c.Detect("xyzzy", NewContext("en"))
	assert.Equal(t, IntentUnknown, got.Name)
	assert.Equal(t, 0.5, got.Confidence)
}
