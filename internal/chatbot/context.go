package chatbot

// State is the coarse phase of a conversation.
type State string

const (
	StateIdle                 State = "idle"
	StateBooking              State = "booking"
	StateConfirmation         State = "confirmation"
	StateComplete             State = "complete"
	StateAwaitingContactPhone State = "awaiting_contact_phone"
	StateAwaitingContactTime  State = "awaiting_contact_time"
)

// Context is the per-session conversation state. The engine never mutates the
// context it is given; ProcessTurn returns an updated copy for the host to
// persist and thread into the next turn.
type Context struct {
	State        State             `json:"state"`
	Slots        map[string]string `json:"slots"`
	AwaitingSlot string            `json:"awaiting_slot,omitempty"`
	Lang         string            `json:"lang"`
}

// NewContext returns a fresh idle context. Unsupported language codes fall
// back to English.
func NewContext(lang string) Context {
	if lang != "es" {
		lang = "en"
	}
	return Context{State: StateIdle, Slots: map[string]string{}, Lang: lang}
}

func (c Context) clone() Context {
	slots := make(map[string]string, len(c.Slots))
	for k, v := range c.Slots {
		slots[k] = v
	}
	c.Slots = slots
	if c.State == "" {
		c.State = StateIdle
	}
	if c.Lang != "es" {
		c.Lang = "en"
	}
	return c
}

// reset wipes all progress back to an idle context, keeping the language.
func (c *Context) reset() {
	c.State = StateIdle
	c.Slots = map[string]string{}
	c.AwaitingSlot = ""
}
