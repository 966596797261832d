package chatbot

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelmadagascar/concierge/internal/catalog"
)

func newTestEngine() *Engine {
	store := catalog.NewStore(nil, nil)
	return NewEngineWithClock(store, func() time.Time { return testNow })
}

// run feeds a sequence of messages through the engine and returns the final
// context and turn.
func run(t *testing.T, e *Engine, conv Context, messages ...string) (Context, Turn) {
	t.Helper()
	var turn Turn
	for _, msg := range messages {
		conv, turn = e.ProcessTurn(conv, msg)
	}
	return conv, turn
}

func TestBookingFlowEndToEnd(t *testing.T) {
	e := newTestEngine()
	conv := NewContext("en")

	conv, turn := e.ProcessTurn(conv, "I want to book the spa")
	assert.Equal(t, StateBooking, conv.State)
	assert.Equal(t, "svc_spa", conv.Slots[SlotService])
	assert.Equal(t, SlotPetName, conv.AwaitingSlot)
	assert.Equal(t, "What's your pet's name?", turn.Text.EN)

	conv, _ = e.ProcessTurn(conv, "Fido")
	assert.Equal(t, "Fido", conv.Slots[SlotPetName])
	assert.Equal(t, SlotDate, conv.AwaitingSlot)

	conv, _ = e.ProcessTurn(conv, "Tomorrow")
	wantDate := testNow.AddDate(0, 0, 1).Format("Mon Jan 02 2006")
	assert.Equal(t, wantDate, conv.Slots[SlotDate])

	conv, _ = e.ProcessTurn(conv, "9am")
	assert.Equal(t, "9am", conv.Slots[SlotTime])

	conv, _ = e.ProcessTurn(conv, "John Doe")
	assert.Equal(t, "John Doe", conv.Slots[SlotOwnerName])

	conv, turn = e.ProcessTurn(conv, "555-555-5555")
	assert.Equal(t, "5555555555", conv.Slots[SlotOwnerPhone])
	assert.Equal(t, SlotConsent, conv.AwaitingSlot)
	assert.Contains(t, turn.Text.EN, "save this information")

	conv, turn = e.ProcessTurn(conv, "Yes")
	assert.Equal(t, StateConfirmation, conv.State)
	assert.Equal(t, "true", conv.Slots[SlotConsent])
	assert.Contains(t, turn.Text.EN, "Spa Day")
	assert.Contains(t, turn.Text.EN, "Fido")
	assert.Contains(t, turn.Text.ES, "Día de Spa")

	conv, turn = e.ProcessTurn(conv, "Yes, confirm")
	assert.Equal(t, StateComplete, conv.State)
	assert.Equal(t, ActionSaveBooking, turn.Action)
	assert.Equal(t, "svc_spa", turn.ServiceID)
	assert.Equal(t, "Fido", turn.Slots[SlotPetName])
}

func TestBookingFlowDeterminism(t *testing.T) {
	messages := []string{
		"I want to book the spa", "Fido", "Tomorrow", "9am",
		"John Doe", "555-555-5555", "Yes", "Yes, confirm",
	}

	e := newTestEngine()
	conv1, turn1 := run(t, e, NewContext("en"), messages...)
	conv2, turn2 := run(t, e, NewContext("en"), messages...)

	assert.Equal(t, conv1.Slots, conv2.Slots)
	assert.Equal(t, conv1.State, conv2.State)
	assert.Equal(t, turn1.Text, turn2.Text)
	assert.Equal(t, turn1.Action, turn2.Action)
}

func TestConsentGate(t *testing.T) {
	e := newTestEngine()
	conv, _ := run(t, e, NewContext("en"),
		"I want to book the spa", "Fido", "Tomorrow", "9am", "John Doe", "555-555-5555")
	require.Equal(t, SlotConsent, conv.AwaitingSlot)

	// Withholding consent aborts the whole booking.
	conv, turn := e.ProcessTurn(conv, "No")
	assert.Equal(t, StateIdle, conv.State)
	assert.Empty(t, conv.Slots)
	assert.Equal(t, ActionNone, turn.Action)
	assert.Contains(t, turn.Text.EN, "without consent")
}

func TestSaveBookingRequiresConsent(t *testing.T) {
	e := newTestEngine()
	conv := NewContext("en")

	var turn Turn
	for _, msg := range []string{"I want to book the spa", "Fido", "Tomorrow", "9am", "John Doe", "555-555-5555", "Yes", "Yes, confirm"} {
		conv, turn = e.ProcessTurn(conv, msg)
		if turn.Action == ActionSaveBooking {
			assert.Equal(t, "true", conv.Slots[SlotConsent],
				"a booking must never be saved without recorded consent")
		}
	}
	require.Equal(t, ActionSaveBooking, turn.Action)
}

func TestCallbackFlow(t *testing.T) {
	e := newTestEngine()
	conv := NewContext("en")

	conv, turn := e.ProcessTurn(conv, "I want someone to call me")
	assert.Equal(t, StateAwaitingContactPhone, conv.State)
	assert.Contains(t, turn.Text.EN, "phone number")

	conv, turn = e.ProcessTurn(conv, "555-867-5309")
	assert.Equal(t, StateAwaitingContactTime, conv.State)
	assert.Contains(t, turn.Text.EN, "5558675309")

	conv, turn = e.ProcessTurn(conv, "Tonight")
	assert.Equal(t, StateIdle, conv.State)
	assert.Equal(t, ActionSaveContactRequest, turn.Action)
	require.NotNil(t, turn.Contact)
	assert.Equal(t, "5558675309", turn.Contact.Phone)
	assert.Equal(t, "Tonight", turn.Contact.PreferredTime)
	assert.NotContains(t, conv.Slots, slotPreferredTime)
}

func TestCallbackWithEverythingUpfront(t *testing.T) {
	e := newTestEngine()
	conv, turn := run(t, e, NewContext("en"), "call me at 555-867-5309 tomorrow at 10am")

	assert.Equal(t, ActionSaveContactRequest, turn.Action)
	require.NotNil(t, turn.Contact)
	assert.Equal(t, "5558675309", turn.Contact.Phone)
	assert.Equal(t, StateIdle, conv.State)
}

func TestInformationalDetourKeepsSlot(t *testing.T) {
	e := newTestEngine()
	conv, _ := run(t, e, NewContext("en"), "I want to book the spa")
	require.Equal(t, SlotPetName, conv.AwaitingSlot)

	conv, turn := e.ProcessTurn(conv, "What are your hours?")
	assert.Equal(t, StateBooking, conv.State)
	assert.Equal(t, SlotPetName, conv.AwaitingSlot, "booking progress must survive the detour")
	assert.Empty(t, conv.Slots[SlotPetName], "a question must not be mistaken for a pet name")
	assert.Contains(t, turn.Text.EN, "8:00 AM to 6:00 PM")
	assert.Contains(t, turn.Text.EN, "What's your pet's name?")
}

func TestServicesShowcaseMidBooking(t *testing.T) {
	e := newTestEngine()
	conv, _ := run(t, e, NewContext("en"), "I want to book the spa")

	conv, turn := e.ProcessTurn(conv, "what services do you have?")
	assert.Equal(t, StateBooking, conv.State)
	require.NotNil(t, turn.Payload)
	assert.Equal(t, "carousel", turn.Payload.Type)
	assert.Len(t, turn.Payload.Items, 6)
	assert.Contains(t, turn.Text.EN, "Let's continue with your booking.")
}

func TestCancellation(t *testing.T) {
	e := newTestEngine()

	t.Run("mid booking", func(t *testing.T) {
		conv, _ := run(t, e, NewContext("en"), "I want to book the spa", "Fido")
		conv, turn := e.ProcessTurn(conv, "cancel")
		assert.Equal(t, StateIdle, conv.State)
		assert.Empty(t, conv.Slots)
		assert.Contains(t, turn.Text.EN, "cancelled the booking process")
	})

	t.Run("awaiting contact phone", func(t *testing.T) {
		conv, _ := run(t, e, NewContext("en"), "I want someone to call me")
		conv, _ = e.ProcessTurn(conv, "stop, cancel that")
		assert.Equal(t, StateIdle, conv.State)
		assert.Empty(t, conv.Slots)
	})
}

func TestConfirmationRejectionResets(t *testing.T) {
	e := newTestEngine()
	conv, _ := run(t, e, NewContext("en"),
		"I want to book the spa", "Fido", "Tomorrow", "9am", "John Doe", "555-555-5555", "Yes")
	require.Equal(t, StateConfirmation, conv.State)

	conv, turn := e.ProcessTurn(conv, "no, that's wrong")
	assert.Equal(t, StateIdle, conv.State)
	assert.Empty(t, conv.Slots)
	assert.Equal(t, ActionNone, turn.Action)
}

func TestOpportunisticFillFirstWriteWins(t *testing.T) {
	e := newTestEngine()
	conv, _ := e.ProcessTurn(NewContext("en"), "book boarding for tomorrow at 9am")

	assert.Equal(t, StateBooking, conv.State)
	assert.Equal(t, "svc_boarding", conv.Slots[SlotService])
	assert.Equal(t, testNow.AddDate(0, 0, 1).Format("Mon Jan 02 2006"), conv.Slots[SlotDate])
	assert.Equal(t, "9am", conv.Slots[SlotTime])
	assert.Equal(t, SlotPetName, conv.AwaitingSlot)

	// A second date mention must not overwrite the recorded one.
	conv.AwaitingSlot = ""
	before := conv.Slots[SlotDate]
	conv, _ = e.ProcessTurn(conv, "actually what about 5/12/2026 hmm")
	assert.Equal(t, before, conv.Slots[SlotDate])
}

func TestAllergyNoteDuringBooking(t *testing.T) {
	e := newTestEngine()
	conv, _ := run(t, e, NewContext("en"), "I want to book the spa")

	conv, turn := e.ProcessTurn(conv, "my dog is sensitive to perfumes")
	assert.Equal(t, StateBooking, conv.State)
	assert.Contains(t, conv.Slots[SlotNotes], "sensitive to perfumes")
	assert.Contains(t, turn.Text.EN, "hypoallergenic")
	assert.Contains(t, turn.Text.EN, "added a note")
}

func TestKnowledgeFallbackAtIdle(t *testing.T) {
	e := newTestEngine()

	_, turn := e.ProcessTurn(NewContext("en"), "tell me about the daily routine")
	assert.Equal(t, IntentQuestion, turn.Intent)
	assert.Contains(t, turn.Text.EN, "supervised play sessions")

	_, turn = e.ProcessTurn(NewContext("en"), "xyzzy")
	assert.Equal(t, IntentUnknown, turn.Intent)
	assert.True(t, strings.HasPrefix(turn.Text.EN, "Sorry, I'm not sure about that."))
}

func TestSpanishBookingPrompts(t *testing.T) {
	e := newTestEngine()
	conv, turn := e.ProcessTurn(NewContext("es"), "Quiero reservar la guardería")

	assert.Equal(t, StateBooking, conv.State)
	assert.Equal(t, "svc_daycare", conv.Slots[SlotService])
	assert.Equal(t, "¿Cómo se llama su mascota?", turn.Text.ES)
}

func TestProcessTurnDoesNotMutateInput(t *testing.T) {
	e := newTestEngine()
	conv := NewContext("en")
	conv.Slots["service"] = "svc_spa"

	next, _ := e.ProcessTurn(conv, "book it for Fido tomorrow")
	assert.Equal(t, StateIdle, conv.State, "input context must stay untouched")
	assert.Len(t, conv.Slots, 1)
	assert.NotEqual(t, conv.State, next.State)
}

func TestRepromptOnUnparseableContactPhone(t *testing.T) {
	e := newTestEngine()
	conv, _ := run(t, e, NewContext("en"), "I want someone to call me")

	conv, turn := e.ProcessTurn(conv, "umm let me think")
	assert.Equal(t, StateAwaitingContactPhone, conv.State)
	assert.Contains(t, turn.Text.EN, "phone number")
}
