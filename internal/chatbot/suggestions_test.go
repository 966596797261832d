package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hotelmadagascar/concierge/internal/catalog"
)

func TestSuggestionsByState(t *testing.T) {
	p := NewSuggestionProvider(catalog.NewStore(nil, nil))
	en := NewContext("en")
	es := NewContext("es")

	assert.Contains(t, p.For("idle", en), "Book now")
	assert.Contains(t, p.For("idle", es), "Reservar ahora")
	assert.Contains(t, p.For("confirmation", en), "Yes, confirm booking")
	assert.Contains(t, p.For(SlotConsent, es), "Sí, está bien")

	// Free-text slots offer no quick replies.
	assert.Empty(t, p.For(SlotPetName, en))
	assert.Empty(t, p.For(SlotOwnerPhone, en))
	assert.Empty(t, p.For(string(StateAwaitingContactPhone), en))

	// Unmapped keys fall back to the default set.
	assert.Contains(t, p.For("complete", en), "Book an appointment")
}

func TestServiceSuggestionsFromCatalog(t *testing.T) {
	p := NewSuggestionProvider(catalog.NewStore(nil, nil))

	en := p.For(SlotService, NewContext("en"))
	assert.Equal(t, []string{"Hotel (Boarding)", "Daycare", "Grooming", "Spa Day"}, en)

	es := p.For(SlotService, NewContext("es"))
	assert.Equal(t, []string{"Hotel (Hospedaje)", "Guardería", "Estética", "Día de Spa"}, es)
}

func TestServiceSuggestionsSmallCatalog(t *testing.T) {
	store := catalog.NewStore([]catalog.Service{
		{ID: "svc_pool", Name: catalog.Text{EN: "Pool Party", ES: "Fiesta de Alberca"}, Type: "pool"},
	}, []catalog.KnowledgeItem{{ID: "kb", Lang: "en", Questions: []string{"q"}, Answer: "a"}})
	p := NewSuggestionProvider(store)

	assert.Equal(t, []string{"Pool Party"}, p.For(SlotService, NewContext("en")))
}
