package chatbot

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hotelmadagascar/concierge/internal/catalog"
)

// Entity types emitted by the extractor.
const (
	EntityService   = "service"
	EntityPhone     = "phone"
	EntityEmail     = "email"
	EntityTime      = "time"
	EntityDate      = "date"
	EntityPetName   = "pet_name"
	EntityOwnerName = "ownerName"
)

// Entity is one typed fragment of meaning extracted from a user message.
// Entities are produced fresh per turn and only ever copied into slots.
type Entity struct {
	Type       string
	Value      string
	Raw        string
	Confidence float64

	// contextual marks entities synthesized from the awaited slot rather than
	// detected in the text. They satisfy only the slot they were produced
	// for and are skipped during opportunistic fill.
	contextual bool
}

// Detector finds zero or more entities of one kind in a message.
type Detector interface {
	Detect(text string, conv Context, now time.Time) []Entity
}

// Extractor runs an ordered list of independent detectors and appends the
// slot-aware free-text fallbacks.
type Extractor struct {
	detectors []Detector
}

// NewExtractor builds the default detector chain against the given catalog.
func NewExtractor(store *catalog.Store) *Extractor {
	return &Extractor{detectors: []Detector{
		serviceDetector{store: store},
		phoneDetector{},
		emailDetector{},
		timeDetector{},
		dateDetector{},
	}}
}

// Extract runs all detectors over the message. A single input may yield
// several entities, including several of the same type; disambiguation is the
// dialogue manager's job.
func (x *Extractor) Extract(text string, conv Context, now time.Time) []Entity {
	var entities []Entity
	for _, d := range x.detectors {
		entities = append(entities, d.Detect(text, conv, now)...)
	}

	cleaned := cleanInput(text)
	switch conv.AwaitingSlot {
	case SlotPetName:
		entities = append(entities, Entity{Type: EntityPetName, Value: cleaned, Raw: text, Confidence: 0.95, contextual: true})
	case SlotOwnerName:
		entities = append(entities, Entity{Type: EntityOwnerName, Value: cleaned, Raw: text, Confidence: 0.95, contextual: true})
	case SlotDate:
		if !hasEntity(entities, EntityDate) {
			entities = append(entities, Entity{Type: EntityDate, Value: cleaned, Raw: text, Confidence: 0.5, contextual: true})
		}
	case SlotTime:
		if !hasEntity(entities, EntityTime) {
			entities = append(entities, Entity{Type: EntityTime, Value: cleaned, Raw: text, Confidence: 0.5, contextual: true})
		}
	}
	return entities
}

func hasEntity(entities []Entity, typ string) bool {
	for _, e := range entities {
		if e.Type == typ {
			return true
		}
	}
	return false
}

func firstEntity(entities []Entity, types ...string) *Entity {
	for i := range entities {
		for _, typ := range types {
			if entities[i].Type == typ {
				return &entities[i]
			}
		}
	}
	return nil
}

// conversational prefixes stripped before using free text as a name or date
var inputPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^it's\s+`),
	regexp.MustCompile(`(?i)^its\s+`),
	regexp.MustCompile(`(?i)^my name is\s+`),
	regexp.MustCompile(`(?i)^i am\s+`),
	regexp.MustCompile(`(?i)^im\s+`),
	regexp.MustCompile(`(?i)^call me\s+`),
	regexp.MustCompile(`(?i)^i want\s+`),
	regexp.MustCompile(`(?i)^i'd like\s+`),
	regexp.MustCompile(`(?i)^please\s+`),
}

func cleanInput(text string) string {
	cleaned := text
	for _, p := range inputPrefixes {
		cleaned = p.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(cleaned)
}

type serviceDetector struct {
	store *catalog.Store
}

func (d serviceDetector) Detect(text string, conv Context, _ time.Time) []Entity {
	svc := d.store.MatchService(text, conv.Lang)
	if svc == nil {
		return nil
	}
	return []Entity{{Type: EntityService, Value: svc.ID, Raw: text, Confidence: 0.9}}
}

var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\d{10}`),
}

var nonDigits = regexp.MustCompile(`\D`)

type phoneDetector struct{}

func (phoneDetector) Detect(text string, _ Context, _ time.Time) []Entity {
	var out []Entity
	for _, pattern := range phonePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			digits := nonDigits.ReplaceAllString(match, "")
			if len(digits) >= 10 {
				out = append(out, Entity{Type: EntityPhone, Value: digits, Raw: match, Confidence: 0.9})
			}
		}
	}
	return out
}

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

type emailDetector struct{}

func (emailDetector) Detect(text string, _ Context, _ time.Time) []Entity {
	var out []Entity
	for _, match := range emailPattern.FindAllString(text, -1) {
		out = append(out, Entity{Type: EntityEmail, Value: match, Raw: match, Confidence: 0.95})
	}
	return out
}

var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`),
	regexp.MustCompile(`(?i)\bat\s+(\d{1,2}):?(\d{2})?\b`),
}

type timeDetector struct{}

func (timeDetector) Detect(text string, _ Context, _ time.Time) []Entity {
	var out []Entity
	for _, pattern := range timePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			out = append(out, Entity{Type: EntityTime, Value: match, Raw: match, Confidence: 0.85})
		}
	}
	return out
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(tomorrow|today|tonight|mañana|hoy|esta noche)\b`),
	regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday|lunes|martes|miércoles|jueves|viernes|sábado|domingo)\b`),
	regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`),
	regexp.MustCompile(`(?i)\b(next week|this week)\b`),
}

var relativeSpanPattern = regexp.MustCompile(`in\s+(\d+)\s+(day|week|month)s?`)

type dateDetector struct{}

func (dateDetector) Detect(text string, _ Context, now time.Time) []Entity {
	if resolved, ok := parseRelativeDate(text, now); ok {
		return []Entity{{Type: EntityDate, Value: resolved, Raw: text, Confidence: 0.95}}
	}
	var out []Entity
	for _, pattern := range datePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			out = append(out, Entity{Type: EntityDate, Value: match, Raw: match, Confidence: 0.8})
		}
	}
	return out
}

// parseRelativeDate resolves relative phrases ("tomorrow", "in 2 weeks",
// "next month") to a concrete calendar date rendered like "Tue Sep 02 2026".
func parseRelativeDate(text string, now time.Time) (string, bool) {
	lower := strings.ToLower(text)

	if m := relativeSpanPattern.FindStringSubmatch(lower); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil {
			return "", false
		}
		var target time.Time
		switch m[2] {
		case "day":
			target = now.AddDate(0, 0, amount)
		case "week":
			target = now.AddDate(0, 0, amount*7)
		case "month":
			target = now.AddDate(0, amount, 0)
		}
		return formatDate(target), true
	}

	if strings.Contains(lower, "next month") {
		target := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
		return formatDate(target), true
	}

	if strings.Contains(lower, "end of this month") || strings.Contains(lower, "this month end") {
		target := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
		return formatDate(target), true
	}

	if strings.Contains(lower, "tomorrow") || strings.Contains(lower, "mañana") {
		return formatDate(now.AddDate(0, 0, 1)), true
	}

	return "", false
}

func formatDate(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}
