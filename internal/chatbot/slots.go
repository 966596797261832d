package chatbot

import "github.com/hotelmadagascar/concierge/internal/catalog"

// Slot names collected by the booking flow.
const (
	SlotService    = "service"
	SlotPetName    = "petName"
	SlotDate       = "date"
	SlotTime       = "time"
	SlotOwnerName  = "ownerName"
	SlotOwnerPhone = "ownerPhone"
	SlotOwnerEmail = "ownerEmail"
	SlotConsent    = "consent"

	// Transient bookkeeping keys, never prompted for.
	SlotNotes         = "notes"
	slotPreferredTime = "preferredTime"
)

// Slot describes one piece of information the booking flow collects.
type Slot struct {
	Name     string
	Required bool
	Prompt   catalog.Text
}

// bookingSlots is the fixed, ordered slot schema. Order defines the prompt
// sequence; optional slots are filled opportunistically but never prompted.
var bookingSlots = []Slot{
	{
		Name:     SlotService,
		Required: true,
		Prompt: catalog.Text{
			EN: "Which service would you like to book?",
			ES: "¿Qué servicio le gustaría reservar?",
		},
	},
	{
		Name:     SlotPetName,
		Required: true,
		Prompt: catalog.Text{
			EN: "What's your pet's name?",
			ES: "¿Cómo se llama su mascota?",
		},
	},
	{
		Name:     SlotDate,
		Required: true,
		Prompt: catalog.Text{
			EN: "What date would you like to book for?",
			ES: "¿Para qué fecha desea reservar?",
		},
	},
	{
		Name:     SlotTime,
		Required: true,
		Prompt: catalog.Text{
			EN: "What time works best for you?",
			ES: "¿A qué hora le viene bien?",
		},
	},
	{
		Name:     SlotOwnerName,
		Required: true,
		Prompt: catalog.Text{
			EN: "What's your full name?",
			ES: "¿Cuál es su nombre completo?",
		},
	},
	{
		Name:     SlotOwnerPhone,
		Required: true,
		Prompt: catalog.Text{
			EN: "What's the best phone number to reach you?",
			ES: "¿Cuál es el mejor número de teléfono para contactarlo?",
		},
	},
	{
		Name:     SlotOwnerEmail,
		Required: false,
		Prompt: catalog.Text{
			EN: "And your email address? (Optional - press skip to continue)",
			ES: "¿Y su correo electrónico? (Opcional - presione omitir para continuar)",
		},
	},
	{
		Name:     SlotConsent,
		Required: true,
		Prompt: catalog.Text{
			EN: "We need to save this information to make your booking. Is that okay?",
			ES: "Necesitamos guardar esta información para hacer su reserva. ¿Está de acuerdo?",
		},
	},
}

// SlotByName returns the schema entry for a slot name, or nil.
func SlotByName(name string) *Slot {
	for i := range bookingSlots {
		if bookingSlots[i].Name == name {
			return &bookingSlots[i]
		}
	}
	return nil
}

// nextRequiredSlot returns the first required slot, in schema order, not yet
// present in the filled set.
func nextRequiredSlot(filled map[string]string) *Slot {
	for i := range bookingSlots {
		s := &bookingSlots[i]
		if s.Required && filled[s.Name] == "" {
			return s
		}
	}
	return nil
}

// entitySlotMap maps extracted entity types to the slot they can fill.
var entitySlotMap = map[string]string{
	EntityService:   SlotService,
	EntityPetName:   SlotPetName,
	EntityDate:      SlotDate,
	EntityTime:      SlotTime,
	EntityOwnerName: SlotOwnerName,
	EntityPhone:     SlotOwnerPhone,
	EntityEmail:     SlotOwnerEmail,
}
