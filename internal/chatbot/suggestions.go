package chatbot

import "github.com/hotelmadagascar/concierge/internal/catalog"

type suggestionSet struct {
	en []string
	es []string
}

// suggestionSets maps a dialogue state or awaited slot name to its canned
// quick replies. Free-text slots deliberately offer none.
var suggestionSets = map[string]suggestionSet{
	"idle": {
		en: []string{"Book now", "Vaccination info", "First time here?", "See services", "What are your hours?"},
		es: []string{"Reservar ahora", "Info de vacunas", "¿Primera vez aquí?", "Ver servicios", "¿Cuál es su horario?"},
	},
	"default": {
		en: []string{"Book an appointment", "See services", "Vaccination requirements", "Contact us"},
		es: []string{"Reservar una cita", "Ver servicios", "Requisitos de vacunación", "Contáctenos"},
	},
	SlotPetName: {en: []string{}, es: []string{}},
	SlotDate: {
		en: []string{"Tomorrow", "This weekend", "Next Monday", "Flexible dates"},
		es: []string{"Mañana", "Este fin de semana", "El próximo lunes", "Fechas flexibles"},
	},
	SlotTime: {
		en: []string{"Morning (9-12)", "Afternoon (2-5)", "Evening (5-7)", "Flexible"},
		es: []string{"Mañana (9-12)", "Tarde (2-5)", "Noche (5-7)", "Flexible"},
	},
	SlotOwnerName:  {en: []string{}, es: []string{}},
	SlotOwnerPhone: {en: []string{}, es: []string{}},
	SlotOwnerEmail: {
		en: []string{"Skip (optional)"},
		es: []string{"Omitir (opcional)"},
	},
	SlotConsent: {
		en: []string{"Yes, that's fine", "No, cancel booking"},
		es: []string{"Sí, está bien", "No, cancelar reserva"},
	},
	"confirmation": {
		en: []string{"Yes, confirm booking", "No, let me change something"},
		es: []string{"Sí, confirmar reserva", "No, déjame cambiar algo"},
	},
	string(StateAwaitingContactPhone): {en: []string{}, es: []string{}},
	string(StateAwaitingContactTime): {
		en: []string{"Morning", "Afternoon", "Evening", "Anytime"},
		es: []string{"Mañana", "Tarde", "Noche", "Cualquier hora"},
	},
}

// SuggestionProvider maps dialogue states to localized quick replies. Service
// suggestions are generated from the loaded catalog.
type SuggestionProvider struct {
	catalog *catalog.Store
}

func NewSuggestionProvider(store *catalog.Store) *SuggestionProvider {
	return &SuggestionProvider{catalog: store}
}

// For returns the quick replies for a dialogue state or awaited slot name.
func (p *SuggestionProvider) For(key string, conv Context) []string {
	lang := conv.Lang
	if lang != "es" {
		lang = "en"
	}

	if key == SlotService {
		return p.serviceSuggestions(lang)
	}

	set, ok := suggestionSets[key]
	if !ok {
		set = suggestionSets["default"]
	}
	if lang == "es" {
		return set.es
	}
	return set.en
}

func (p *SuggestionProvider) serviceSuggestions(lang string) []string {
	services := p.catalog.Services()
	if len(services) == 0 {
		if lang == "es" {
			return []string{"Hotel (Hospedaje)", "Guardería", "Reubicación", "Transporte"}
		}
		return []string{"Hotel (Boarding)", "Daycare", "Relocation", "Transport"}
	}

	if len(services) > 4 {
		services = services[:4]
	}
	out := make([]string, 0, len(services))
	for _, svc := range services {
		out = append(out, svc.Name.Pick(lang))
	}
	return out
}
