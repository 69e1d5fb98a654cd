package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sells-group/bizintel/internal/model"
)

// Heuristic answers by keyword classification against fixed templates.
// It needs no external service and never fails on a valid input. It shares
// the same cache as the LLM strategy so switching modes keeps prior
// answers reachable.
type Heuristic struct {
	cache *Cache
}

// NewHeuristic creates a Heuristic engine backed by cache. A nil cache
// disables caching.
func NewHeuristic(cache *Cache) *Heuristic {
	return &Heuristic{cache: cache}
}

// Ask classifies the question by keyword containment, case-insensitive, in
// priority order: market/sector, then competitor, then revenue/money, then
// a generic profile summary.
func (h *Heuristic) Ask(_ context.Context, profile *model.BusinessProfile, question string) (*Answer, error) {
	if err := validate(profile, question); err != nil {
		return nil, err
	}

	if h.cache != nil {
		if text, ok := h.cache.Get(profile.Name, question); ok {
			return &Answer{Message: text, Cached: true}, nil
		}
	}

	q := strings.ToLower(question)
	var text string
	switch {
	case strings.Contains(q, "market") || strings.Contains(q, "sector"):
		text = fmt.Sprintf(
			"%s positions itself as follows: %s. That positioning is the strongest available signal for the market and sector it serves.",
			profile.Name, profile.Description)
	case strings.Contains(q, "competitor"):
		text = fmt.Sprintf(
			"No competitor list was found on the site. Based on its description (%s), %s likely competes with businesses offering similar products or services in its area.",
			profile.Description, profile.Name)
	case strings.Contains(q, "revenue") || strings.Contains(q, "money"):
		text = fmt.Sprintf(
			"%s does not publish revenue figures on its website. Its description suggests how it earns: %s.",
			profile.Name, profile.Description)
	default:
		text = fmt.Sprintf(
			"%s: %s. The site lists %d email address(es) and %d phone number(s).",
			profile.Name, profile.Description, len(profile.Emails), len(profile.Phones))
	}

	if h.cache != nil {
		h.cache.Set(profile.Name, question, text)
	}

	return &Answer{Message: text, Cached: false}, nil
}
