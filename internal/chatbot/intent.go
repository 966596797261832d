package chatbot

import (
	"strings"

	"github.com/hotelmadagascar/concierge/internal/catalog"
)

// Intent labels referenced by the dialogue manager. The informational ask_*
// labels beyond these are plain strings carried through unchanged.
const (
	IntentBookService        = "book_service"
	IntentRequestContactCall = "request_contact_call"
	IntentServices           = "services"
	IntentGreeting           = "greeting"
	IntentAffirmative        = "affirmative"
	IntentNegative           = "negative"
	IntentQuestion           = "question"
	IntentUnknown            = "unknown"
	IntentAskAggressive      = "ask_aggressive"
	IntentAskAllergy         = "ask_allergy"
)

// Intent is a classified utterance purpose.
type Intent struct {
	Name       string
	Confidence float64
}

type intentRule struct {
	intent   string
	keywords []string
}

// intentRules are evaluated in order per language; a rule fires when any of
// its keywords is a substring of the lower-cased input.
var intentRules = map[string][]intentRule{
	"en": {
		{IntentBookService, []string{"book", "reserve", "schedule", "appointment", "board"}},
		{IntentRequestContactCall, []string{"call me", "contact me", "phone me"}},
		{"ask_hours", []string{"hours", "open", "when", "schedule", "time"}},
		{"ask_price", []string{"how much", "cost", "price", "pricing", "rates", "discount"}},
		{"ask_vaccinations", []string{"vaccine", "vaccination", "rabies", "shots", "immunization", "health requirements", "bordetella"}},
		{"ask_medical", []string{"medication", "medicine", "pills", "sick", "emergency", "vet", "veterinarian"}},
		{"ask_special_needs", []string{"special needs", "dietary", "diet", "food allergy", "grain free", "bring own food"}},
		{"ask_behavioral", []string{"aggressive", "doesn't like other dogs", "reactive", "bite", "mean", "behavior", "anxious"}},
		{IntentAskAllergy, []string{"sensitive", "allergies", "perfume", "scent", "allergy"}},
		{"ask_first_time", []string{"first time", "never been", "new here", "what to bring", "how to prepare", "trial visit"}},
		{"ask_separation_anxiety", []string{"separation anxiety", "worried", "stressed", "misses me", "anxiety"}},
		{"ask_updates", []string{"updates", "photos", "pictures", "how is my pet", "check on"}},
		{"ask_facilities", []string{"tour", "visit", "see facility", "look around", "inspect"}},
		{"ask_cleanliness", []string{"clean", "sanitation", "hygiene", "disinfect"}},
		{"ask_safety", []string{"safe", "security", "safety", "protected", "monitored"}},
		{"ask_climate", []string{"air conditioning", "temperature", "climate", "heating", "cooling"}},
		{IntentServices, []string{"service", "grooming", "daycare", "spa", "what do you offer"}},
		{IntentGreeting, []string{"hi", "hello", "hey", "greetings"}},
		{IntentAffirmative, []string{"yes", "yeah", "yep", "ok", "sure", "correct", "right", "fine", "good"}},
		{IntentNegative, []string{"no", "nope", "cancel", "stop", "wrong", "incorrect"}},
	},
	"es": {
		{IntentBookService, []string{"reservar", "cita", "agendar", "hospedar"}},
		{IntentRequestContactCall, []string{"llámeme", "contactarme", "teléfono"}},
		{"ask_hours", []string{"horario", "abren", "cuándo", "hora"}},
		{"ask_price", []string{"cuánto cuesta", "precio", "costo", "tarifas", "descuento"}},
		{"ask_vaccinations", []string{"vacuna", "vacunación", "rabia", "vacunas", "inmunización", "requisitos de salud", "bordetella"}},
		{"ask_medical", []string{"medicamento", "medicina", "pastillas", "enfermo", "emergencia", "veterinario"}},
		{"ask_special_needs", []string{"necesidades especiales", "dietético", "dieta", "alergia alimentaria", "sin granos", "traer comida"}},
		{"ask_behavioral", []string{"agresivo", "no le gustan otros perros", "reactivo", "muerde", "comportamiento", "ansioso"}},
		{IntentAskAllergy, []string{"sensible", "alergias", "perfume", "alergia"}},
		{"ask_first_time", []string{"primera vez", "nunca ha estado", "nuevo aquí", "qué traer", "cómo preparar", "visita de prueba"}},
		{"ask_separation_anxiety", []string{"ansiedad por separación", "preocupado", "estresado", "me extraña", "ansiedad"}},
		{"ask_updates", []string{"actualizaciones", "fotos", "imágenes", "cómo está mi mascota", "verificar"}},
		{"ask_facilities", []string{"tour", "visitar", "ver instalaciones", "inspeccionar"}},
		{"ask_cleanliness", []string{"limpio", "saneamiento", "higiene", "desinfectar"}},
		{"ask_safety", []string{"seguro", "seguridad", "protegido", "monitoreado"}},
		{"ask_climate", []string{"aire acondicionado", "temperatura", "clima", "calefacción", "enfriamiento"}},
		{IntentServices, []string{"servicio", "estética", "guardería", "hospedaje", "qué ofrecen"}},
		{IntentGreeting, []string{"hola", "buenos días", "buenas tardes"}},
		{IntentAffirmative, []string{"sí", "si", "claro", "ok", "vale", "correcto", "bien", "seguro"}},
		{IntentNegative, []string{"no", "cancelar", "mal", "incorrecto"}},
	},
}

// Classifier labels a single utterance with an intent. Keyword rules run
// first so explicit topic changes can interrupt a booking in progress; the
// conversation context then drives slot-provision and confirmation fallbacks
// before the knowledge base is probed as a last resort.
type Classifier struct {
	catalog *catalog.Store
}

func NewClassifier(store *catalog.Store) *Classifier {
	return &Classifier{catalog: store}
}

// Detect classifies a message under the given conversation context.
func (c *Classifier) Detect(message string, conv Context) Intent {
	lang := conv.Lang
	if lang != "es" {
		lang = "en"
	}
	lower := strings.ToLower(message)

	for _, rule := range intentRules[lang] {
		if containsAny(lower, rule.keywords) {
			// While awaiting a slot, booking keywords ("board", "reservar")
			// overlap with slot vocabulary; a restated service name must be
			// read as providing the slot, not as a new booking request.
			if conv.AwaitingSlot != "" && rule.intent == IntentBookService {
				return Intent{Name: "provide_" + conv.AwaitingSlot, Confidence: 0.95}
			}
			return Intent{Name: rule.intent, Confidence: 0.9}
		}
	}

	if conv.AwaitingSlot != "" {
		return Intent{Name: "provide_" + conv.AwaitingSlot, Confidence: 0.95}
	}
	if conv.State == StateConfirmation {
		if containsAny(lower, []string{"yes", "sí", "confirm", "yup", "sure"}) {
			return Intent{Name: IntentAffirmative, Confidence: 0.9}
		}
		if containsAny(lower, []string{"no", "cancel"}) {
			return Intent{Name: IntentNegative, Confidence: 0.9}
		}
	}

	if c.catalog.Search(lower, lang) != nil {
		return Intent{Name: IntentQuestion, Confidence: 0.7}
	}
	return Intent{Name: IntentUnknown, Confidence: 0.5}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
