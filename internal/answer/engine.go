// Package answer turns a business profile plus a free-text question into an
// answer, either from fixed heuristics or from the Anthropic API, with
// per-business/per-question response caching.
package answer

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/bizintel/internal/model"
)

// Validation failures. The server maps these to client errors; everything
// else coming out of an Engine is a generation failure.
var (
	ErrEmptyQuestion  = eris.New("answer: question is empty")
	ErrMissingProfile = eris.New("answer: business profile is required")
)

// Answer is an engine's reply to one question.
type Answer struct {
	Message string
	Cached  bool
}

// Engine answers a question about a business profile. Implementations are
// swappable strategies: Heuristic needs no external service, LLM delegates
// to Anthropic.
type Engine interface {
	Ask(ctx context.Context, profile *model.BusinessProfile, question string) (*Answer, error)
}

// validate enforces the shared input contract for every strategy.
func validate(profile *model.BusinessProfile, question string) error {
	if profile == nil {
		return ErrMissingProfile
	}
	if strings.TrimSpace(question) == "" {
		return ErrEmptyQuestion
	}
	return nil
}
