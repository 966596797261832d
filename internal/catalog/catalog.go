package catalog

import "strings"

// Text is a bilingual string. The engine produces both variants and leaves
// selection to the presentation boundary.
type Text struct {
	EN string `json:"en"`
	ES string `json:"es"`
}

// Pick returns the variant for the given language, falling back to English.
func (t Text) Pick(lang string) string {
	if lang == "es" && t.ES != "" {
		return t.ES
	}
	return t.EN
}

// IsZero reports whether both variants are empty.
func (t Text) IsZero() bool {
	return t.EN == "" && t.ES == ""
}

// Service is one bookable offering. The catalog is immutable for the lifetime
// of the process.
type Service struct {
	ID          string `json:"id"`
	Name        Text   `json:"name"`
	Description Text   `json:"description"`
	Type        string `json:"type"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Image       string `json:"image"`
}

// KnowledgeItem is one FAQ entry in a single language.
type KnowledgeItem struct {
	ID        string   `json:"id"`
	Lang      string   `json:"lang"`
	Questions []string `json:"q_variants"`
	Answer    string   `json:"answer"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags,omitempty"`
}

// Feed is the startup data supplied by the host. Empty sections fall back to
// the built-in seed data.
type Feed struct {
	Services  []Service       `json:"services"`
	Knowledge []KnowledgeItem `json:"knowledge"`
}

// Store holds the loaded service catalog and per-language knowledge indexes.
// It is constructed once at startup and safe for concurrent reads.
type Store struct {
	services  []Service
	knowledge map[string][]KnowledgeItem
}

// NewStore builds a store from the startup feed. A nil or empty services or
// knowledge slice is replaced with the built-in seed set.
func NewStore(services []Service, knowledge []KnowledgeItem) *Store {
	if len(services) == 0 {
		services = defaultServices
	}
	if len(knowledge) == 0 {
		knowledge = defaultKnowledge()
	}

	byLang := make(map[string][]KnowledgeItem)
	for _, item := range knowledge {
		lang := item.Lang
		if lang == "" {
			lang = "en"
		}
		byLang[lang] = append(byLang[lang], item)
	}
	return &Store{services: services, knowledge: byLang}
}

// Services returns the loaded catalog.
func (s *Store) Services() []Service {
	out := make([]Service, len(s.services))
	copy(out, s.services)
	return out
}

// ServiceByID returns the service with the given id, or nil.
func (s *Store) ServiceByID(id string) *Service {
	for i := range s.services {
		if s.services[i].ID == id {
			svc := s.services[i]
			return &svc
		}
	}
	return nil
}

// MatchService fuzzy-matches free text against service names and types and
// returns the closest service, or nil when nothing clears the match cutoff.
func (s *Store) MatchService(text, lang string) *Service {
	var best *Service
	bestScore := searchCutoff
	for i := range s.services {
		svc := &s.services[i]
		score := scoreAny(text, serviceTerms(svc, lang))
		if score < bestScore {
			bestScore = score
			best = svc
		}
	}
	if best == nil {
		return nil
	}
	svc := *best
	return &svc
}

// ServiceByName is MatchService restricted to the given language's name.
func (s *Store) ServiceByName(name, lang string) *Service {
	return s.MatchService(name, lang)
}

func serviceTerms(svc *Service, lang string) []string {
	terms := []string{svc.Type}
	if lang == "es" {
		terms = append(terms, svc.Name.ES, svc.Name.EN)
	} else {
		terms = append(terms, svc.Name.EN, svc.Name.ES)
	}
	out := terms[:0]
	for _, t := range terms {
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}
