package chatbot

import (
	"fmt"
	"strings"
	"time"

	"github.com/hotelmadagascar/concierge/internal/catalog"
)

// Action names the side effect the host must perform after a turn. The engine
// itself never touches storage.
type Action string

const (
	ActionNone               Action = ""
	ActionSaveBooking        Action = "save_booking"
	ActionSaveContactRequest Action = "save_contact_request"
)

// CarouselItem is one service card in a rich response.
type CarouselItem struct {
	ID          string       `json:"id"`
	Title       catalog.Text `json:"title"`
	Description catalog.Text `json:"description"`
	Price       string       `json:"price"`
	Image       string       `json:"image"`
}

// RichPayload carries structured content alongside the reply text.
type RichPayload struct {
	Type  string         `json:"type"`
	Items []CarouselItem `json:"items"`
}

// ContactDetails accompanies a save_contact_request action.
type ContactDetails struct {
	Phone         string `json:"phone"`
	PreferredTime string `json:"preferred_time"`
}

// Turn is the engine's full output for one user message. Text always carries
// both language variants; selection happens at the presentation boundary.
type Turn struct {
	Text        catalog.Text      `json:"text"`
	State       string            `json:"state"`
	Slots       map[string]string `json:"slots"`
	Suggestions []string          `json:"suggestions"`
	Action      Action            `json:"action,omitempty"`
	ServiceID   string            `json:"service_id,omitempty"`
	Payload     *RichPayload      `json:"payload,omitempty"`
	Contact     *ContactDetails   `json:"contact,omitempty"`
	Intent      string            `json:"intent"`
	Confidence  float64           `json:"confidence"`
}

// informationalIntents may be answered mid-booking without losing slot
// progress; the reply re-prompts for the next unfilled slot.
var informationalIntents = map[string]bool{
	IntentServices: true, "ask_price": true, "ask_hours": true,
	"ask_location": true, IntentQuestion: true, IntentGreeting: true,
	"ask_vaccinations": true, "ask_medical": true,
	"ask_special_needs": true, "ask_behavioral": true, IntentAskAllergy: true,
	"ask_first_time": true, "ask_separation_anxiety": true, "ask_updates": true,
	"ask_facilities": true, "ask_cleanliness": true, "ask_safety": true,
	"ask_climate": true,
}

// Engine is the conversational booking engine: a pure decision reducer over
// (context, message) producing an updated context and a turn result. All
// collaborators are injected; the engine holds no per-session state.
type Engine struct {
	catalog     *catalog.Store
	classifier  *Classifier
	extractor   *Extractor
	suggestions *SuggestionProvider
	now         func() time.Time
}

// NewEngine builds an engine over the given catalog.
func NewEngine(store *catalog.Store) *Engine {
	return NewEngineWithClock(store, time.Now)
}

// NewEngineWithClock lets tests pin relative-date resolution.
func NewEngineWithClock(store *catalog.Store, now func() time.Time) *Engine {
	return &Engine{
		catalog:     store,
		classifier:  NewClassifier(store),
		extractor:   NewExtractor(store),
		suggestions: NewSuggestionProvider(store),
		now:         now,
	}
}

// Suggestions exposes quick replies for a dialogue state, for hosts that
// fetch them out of band.
func (e *Engine) Suggestions(key string, conv Context) []string {
	return e.suggestions.For(key, conv)
}

// ProcessTurn consumes one user message against a conversation context and
// returns the updated context plus the turn result. The input context is
// never mutated.
func (e *Engine) ProcessTurn(conv Context, message string) (Context, Turn) {
	conv = conv.clone()

	intent := e.classifier.Detect(message, conv)
	turn := e.determineNextAction(&conv, message, intent.Name)

	// No directed response: fall back to a bare knowledge-base lookup.
	if turn.Text.IsZero() {
		turn.Text = e.knowledgeAnswer(message, catalog.Text{
			EN: "Sorry, I'm not sure about that. I can help with services, pricing, or booking.",
			ES: "Lo siento, no estoy seguro de eso. Puedo ayudarte con servicios, precios o reservas.",
		})
		if turn.Suggestions == nil {
			turn.Suggestions = e.suggestions.For("default", conv)
		}
	}

	turn.Intent = intent.Name
	turn.Confidence = intent.Confidence
	turn.State = string(conv.State)
	if conv.AwaitingSlot != "" {
		// Report the awaited slot as the effective state so hosts can key
		// suggestions off a single value.
		turn.State = conv.AwaitingSlot
	}
	turn.Slots = make(map[string]string, len(conv.Slots))
	for k, v := range conv.Slots {
		turn.Slots[k] = v
	}
	return conv, turn
}

func (e *Engine) determineNextAction(conv *Context, message, intent string) Turn {
	entities := e.extractor.Extract(message, *conv, e.now())
	fillSlots(conv, entities, message, intent)

	state := conv.State
	lower := strings.ToLower(message)

	// Explicit cancellation wipes all progress.
	if intent == IntentNegative && state != StateIdle && state != StateConfirmation {
		if strings.Contains(lower, "cancel") || strings.Contains(lower, "stop") {
			conv.reset()
			return Turn{
				Text: catalog.Text{
					EN: "Okay, I've cancelled the booking process. Let me know if you need anything else! 👋",
					ES: "De acuerdo, he cancelado el proceso de reserva. ¡Avísame si necesitas algo más! 👋",
				},
				Suggestions: e.suggestions.For("idle", *conv),
			}
		}
	}

	if intent == IntentRequestContactCall {
		return e.handleCallbackRequest(conv, entities)
	}

	// Sensitive topics are answered from the knowledge base and, mid-booking,
	// recorded as a note on the booking instead of interrupting slot progress.
	if intent == IntentAskAggressive || intent == IntentAskAllergy {
		answer := e.knowledgeAnswer(message, catalog.Text{
			EN: "Sorry, I'm not sure about that.",
			ES: "Lo siento, no estoy seguro de eso.",
		})
		if conv.State == StateBooking {
			conv.Slots[SlotNotes] += "\nUser note: " + message
		}
		return Turn{
			Text: catalog.Text{
				EN: answer.EN + "\n\n✅ I've added a note to your booking about this.",
				ES: answer.ES + "\n\n✅ He añadido una nota a su reserva sobre esto.",
			},
			Suggestions: e.suggestions.For("idle", *conv),
		}
	}

	if state == StateAwaitingContactPhone {
		if ent := firstEntity(entities, EntityPhone); ent != nil {
			conv.Slots[SlotOwnerPhone] = ent.Value
			return e.handleCallbackRequest(conv, entities)
		}
		return Turn{
			Text: catalog.Text{
				EN: "I didn't catch that. What's a good phone number? 📞",
				ES: "No entendí eso. ¿Cuál es un buen número de teléfono? 📞",
			},
			Suggestions: []string{},
		}
	}

	if state == StateAwaitingContactTime {
		if ent := firstEntity(entities, EntityTime, EntityDate); ent != nil {
			conv.Slots[slotPreferredTime] = ent.Value
			return e.confirmCallback(conv)
		}
		return Turn{
			Text: catalog.Text{
				EN: "Sorry, what time works for you? 🕐",
				ES: "Disculpe, ¿a qué hora le viene bien? 🕐",
			},
			Suggestions: []string{},
		}
	}

	if intent == IntentBookService && state == StateIdle {
		conv.State = StateBooking
	}

	// Informational interrupts answer the question, then steer back to the
	// same unfilled slot the user was on.
	if conv.State == StateBooking && informationalIntents[intent] {
		if intent == IntentServices {
			return e.servicesShowcase(conv)
		}

		hitEN := e.catalog.Search(message, "en")
		hitES := e.catalog.Search(message, "es")
		next := nextRequiredSlot(conv.Slots)

		if hitEN != nil || hitES != nil {
			text := catalog.Text{
				EN: "I don't have information on that in English.",
				ES: "No tengo información sobre eso en español.",
			}
			if hitEN != nil {
				text.EN = hitEN.Answer
			}
			if hitES != nil {
				text.ES = hitES.Answer
			}
			key := "idle"
			if next != nil {
				text.EN += "\n\nLet's continue with your booking. " + next.Prompt.EN
				text.ES += "\n\nContinuemos con su reserva. " + next.Prompt.ES
				key = next.Name
			}
			return Turn{Text: text, Suggestions: e.suggestions.For(key, *conv)}
		}

		if next != nil {
			return Turn{
				Text: catalog.Text{
					EN: "I'm not sure about that, but let's continue with your booking. " + next.Prompt.EN,
					ES: "No estoy seguro de eso, pero continuemos con su reserva. " + next.Prompt.ES,
				},
				Suggestions: e.suggestions.For(next.Name, *conv),
			}
		}
	}

	if conv.State == StateBooking {
		next := nextRequiredSlot(conv.Slots)
		if next == nil {
			conv.State = StateConfirmation
			conv.AwaitingSlot = ""
			return Turn{
				Text:        e.confirmationSummary(conv),
				Suggestions: e.suggestions.For("confirmation", *conv),
			}
		}

		// Consent is never prompted like data slots; it is granted or the
		// whole booking is off.
		if next.Name == SlotConsent {
			switch intent {
			case IntentAffirmative:
				conv.Slots[SlotConsent] = "true"
				conv.AwaitingSlot = ""
				return e.determineNextAction(conv, message, intent)
			case IntentNegative:
				conv.reset()
				return Turn{
					Text: catalog.Text{
						EN: "No problem. I cannot save your booking without consent. Let me know if you change your mind. 👋",
						ES: "No hay problema. No puedo guardar su reserva sin consentimiento. Avíseme si cambia de opinión. 👋",
					},
					Suggestions: e.suggestions.For("idle", *conv),
				}
			}
		}

		conv.AwaitingSlot = next.Name
		return Turn{Text: next.Prompt, Suggestions: e.suggestions.For(next.Name, *conv)}
	}

	if state == StateConfirmation {
		if intent == IntentAffirmative {
			conv.State = StateComplete
			return Turn{
				Text: catalog.Text{
					EN: "🎉 Great! Your booking is all set. We look forward to seeing you and your furry friend! 🐾✨",
					ES: "🎉 ¡Genial! Su reserva está lista. ¡Esperamos verles a usted y a su amigo peludo! 🐾✨",
				},
				Suggestions: e.suggestions.For("idle", *conv),
				Action:      ActionSaveBooking,
				ServiceID:   conv.Slots[SlotService],
			}
		}
		conv.reset()
		return Turn{
			Text: catalog.Text{
				EN: "Okay, I've cancelled this booking. We can start over if you like. 👋",
				ES: "De acuerdo, he cancelado esta reserva. Podemos empezar de nuevo si lo desea. 👋",
			},
			Suggestions: e.suggestions.For("idle", *conv),
		}
	}

	return Turn{Suggestions: e.suggestions.For("default", *conv)}
}

// fillSlots merges extracted entities into the conversation slots. A slot
// being actively prompted for takes the entity matching its type, falling
// back to the raw message for free-form slots. Otherwise entities are written
// opportunistically, first write wins.
func fillSlots(conv *Context, entities []Entity, message, intent string) {
	awaiting := conv.AwaitingSlot
	providing := strings.HasPrefix(intent, "provide_") ||
		intent == IntentUnknown || intent == IntentAffirmative || intent == IntentBookService

	if awaiting != "" && providing {
		value, found := "", false
		for _, ent := range entities {
			if entitySlotMap[ent.Type] == awaiting {
				value, found = ent.Value, true
				break
			}
		}
		if !found {
			switch awaiting {
			case SlotPetName, SlotOwnerName, SlotDate, SlotTime:
				value, found = message, true
			}
		}
		if found {
			conv.Slots[awaiting] = value
			conv.AwaitingSlot = ""
		}
		return
	}

	for _, ent := range entities {
		if ent.contextual {
			continue
		}
		slot := entitySlotMap[ent.Type]
		if slot == "" || conv.Slots[slot] != "" {
			continue
		}
		conv.Slots[slot] = ent.Value
	}
}

// handleCallbackRequest gathers a phone number and preferred time for a
// staff callback, prompting for whichever is missing.
func (e *Engine) handleCallbackRequest(conv *Context, entities []Entity) Turn {
	phone := conv.Slots[SlotOwnerPhone]
	if ent := firstEntity(entities, EntityPhone); ent != nil {
		phone = ent.Value
	}
	when := conv.Slots[slotPreferredTime]
	if ent := firstEntity(entities, EntityTime, EntityDate); ent != nil {
		when = ent.Value
	}

	if phone == "" {
		conv.State = StateAwaitingContactPhone
		return Turn{
			Text: catalog.Text{
				EN: "Sure, I can have someone call you. What's the best phone number? 📞",
				ES: "Claro, puedo pedir que alguien le llame. ¿Cuál es el mejor número de teléfono? 📞",
			},
			Suggestions: []string{},
		}
	}

	if when == "" {
		conv.State = StateAwaitingContactTime
		conv.Slots[SlotOwnerPhone] = phone
		return Turn{
			Text: catalog.Text{
				EN: fmt.Sprintf("Got it: %s 📞 When would be a good time to call? 🕐", phone),
				ES: fmt.Sprintf("Entendido: %s 📞 ¿Cuándo sería un buen momento para llamarle? 🕐", phone),
			},
			Suggestions: e.suggestions.For(SlotTime, *conv),
		}
	}

	conv.Slots[SlotOwnerPhone] = phone
	conv.Slots[slotPreferredTime] = when
	return e.confirmCallback(conv)
}

func (e *Engine) confirmCallback(conv *Context) Turn {
	phone := conv.Slots[SlotOwnerPhone]
	when := conv.Slots[slotPreferredTime]

	conv.State = StateIdle
	delete(conv.Slots, slotPreferredTime)

	return Turn{
		Text: catalog.Text{
			EN: fmt.Sprintf("✅ Okay! I've requested a callback for you at %s 📞, around %s 🕐. A staff member will reach out soon. Was there anything else?", phone, when),
			ES: fmt.Sprintf("✅ ¡De acuerdo! He solicitado una llamada para usted al %s 📞, alrededor de las %s 🕐. Un miembro del personal se comunicará pronto. ¿Algo más?", phone, when),
		},
		Suggestions: e.suggestions.For("idle", *conv),
		Action:      ActionSaveContactRequest,
		Contact:     &ContactDetails{Phone: phone, PreferredTime: when},
	}
}

// servicesShowcase answers a services question with the full catalog as a
// carousel, then re-prompts for the next unfilled slot.
func (e *Engine) servicesShowcase(conv *Context) Turn {
	services := e.catalog.Services()
	items := make([]CarouselItem, 0, len(services))
	for _, svc := range services {
		items = append(items, CarouselItem{
			ID:          svc.ID,
			Title:       svc.Name,
			Description: svc.Description,
			Price:       svc.Price,
			Image:       svc.Image,
		})
	}

	text := catalog.Text{
		EN: "Here are our available services:",
		ES: "Aquí están nuestros servicios disponibles:",
	}
	key := "idle"
	if next := nextRequiredSlot(conv.Slots); next != nil {
		text.EN += "\n\nLet's continue with your booking. " + next.Prompt.EN
		text.ES += "\n\nContinuemos con su reserva. " + next.Prompt.ES
		key = next.Name
	}
	return Turn{
		Text:        text,
		Payload:     &RichPayload{Type: "carousel", Items: items},
		Suggestions: e.suggestions.For(key, *conv),
	}
}

func (e *Engine) confirmationSummary(conv *Context) catalog.Text {
	nameEN, nameES := "Unknown Service", "Servicio Desconocido"
	if svc := e.catalog.ServiceByID(conv.Slots[SlotService]); svc != nil {
		nameEN = svc.Name.EN
		nameES = svc.Name.ES
		if nameES == "" {
			nameES = svc.Name.EN
		}
	}

	s := conv.Slots
	return catalog.Text{
		EN: fmt.Sprintf("Please confirm the details:\n\n- Service: %s\n- Pet: %s\n- Date: %s at %s\n- Your Name: %s\n- Phone: %s\n\nIs this correct?",
			nameEN, s[SlotPetName], s[SlotDate], s[SlotTime], s[SlotOwnerName], s[SlotOwnerPhone]),
		ES: fmt.Sprintf("Por favor confirme los detalles:\n\n- Servicio: %s\n- Mascota: %s\n- Fecha: %s a las %s\n- Su Nombre: %s\n- Teléfono: %s\n\n¿Es correcto?",
			nameES, s[SlotPetName], s[SlotDate], s[SlotTime], s[SlotOwnerName], s[SlotOwnerPhone]),
	}
}

// knowledgeAnswer searches both language indexes so the reply stays bilingual
// even when only one index has a hit.
func (e *Engine) knowledgeAnswer(message string, fallback catalog.Text) catalog.Text {
	out := fallback
	if hit := e.catalog.Search(message, "en"); hit != nil {
		out.EN = hit.Answer
	}
	if hit := e.catalog.Search(message, "es"); hit != nil {
		out.ES = hit.Answer
	}
	return out
}
