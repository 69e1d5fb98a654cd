package answer

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/bizintel/internal/model"
	"github.com/sells-group/bizintel/pkg/anthropic"
)

// LLM answers by delegating to the Anthropic Messages API. An outage is
// surfaced to the caller as an error; there is no retry and no silent
// fallback to the heuristic strategy.
type LLM struct {
	client      anthropic.Client
	cache       *Cache
	model       string
	maxTokens   int64
	temperature float64
}

// NewLLM creates an LLM engine. Zero maxTokens defaults to 500 and a
// negative temperature to 0.7.
func NewLLM(client anthropic.Client, cache *Cache, model string, maxTokens int64, temperature float64) *LLM {
	if maxTokens <= 0 {
		maxTokens = 500
	}
	if temperature < 0 {
		temperature = 0.7
	}
	return &LLM{
		client:      client,
		cache:       cache,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Ask checks the cache, then generates an answer from the profile and the
// verbatim question. Successful generations are written back to the cache
// under the lookup key.
func (l *LLM) Ask(ctx context.Context, profile *model.BusinessProfile, question string) (*Answer, error) {
	if err := validate(profile, question); err != nil {
		return nil, err
	}

	if text, ok := l.cache.Get(profile.Name, question); ok {
		zap.L().Debug("answer cache hit",
			zap.String("business", profile.Name),
		)
		return &Answer{Message: text, Cached: true}, nil
	}

	temp := l.temperature
	resp, err := l.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     l.model,
		MaxTokens: l.maxTokens,
		System:    anthropic.BuildCachedSystemBlocks(systemPrompt),
		Messages: []anthropic.Message{
			{Role: "user", Content: buildPrompt(profile, question)},
		},
		Temperature: &temp,
	})
	if err != nil {
		return nil, eris.Wrap(err, "answer: generate")
	}

	resp.Usage.LogCost(l.model, "chat")

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, eris.New("answer: empty completion")
	}

	l.cache.Set(profile.Name, question, text)

	return &Answer{Message: text, Cached: false}, nil
}
