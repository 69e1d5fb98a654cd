package answer

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/bizintel/internal/model"
	"github.com/sells-group/bizintel/pkg/anthropic"
)

// fakeClient records requests and returns a canned response or error.
type fakeClient struct {
	resp  *anthropic.MessageResponse
	err   error
	calls []anthropic.MessageRequest
}

func (f *fakeClient) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: text}},
	}
}

func TestLLM_CachedSecondCall(t *testing.T) {
	client := &fakeClient{resp: textResponse("  They sell widgets.  ")}
	l := NewLLM(client, NewCache(), "claude-haiku-4-5-20251001", 0, -1)

	first, err := l.Ask(context.Background(), testProfile(), "What do they sell?")
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, "They sell widgets.", first.Message)

	second, err := l.Ask(context.Background(), testProfile(), "What do they sell?")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Message, second.Message)

	// Only the first call reached the provider.
	assert.Len(t, client.calls, 1)
}

func TestLLM_RequestShape(t *testing.T) {
	client := &fakeClient{resp: textResponse("ok")}
	l := NewLLM(client, NewCache(), "claude-haiku-4-5-20251001", 0, -1)

	_, err := l.Ask(context.Background(), testProfile(), "What do they sell?")
	require.NoError(t, err)

	require.Len(t, client.calls, 1)
	req := client.calls[0]
	assert.Equal(t, "claude-haiku-4-5-20251001", req.Model)
	assert.EqualValues(t, 500, req.MaxTokens)
	require.NotNil(t, req.Temperature)
	assert.InDelta(t, 0.7, *req.Temperature, 1e-9)

	require.Len(t, req.System, 1)
	assert.Contains(t, req.System[0].Text, "business intelligence consultant")

	require.Len(t, req.Messages, 1)
	prompt := req.Messages[0].Content
	assert.Contains(t, prompt, "Acme Co")
	assert.Contains(t, prompt, "We sell widgets")
	assert.Contains(t, prompt, "a@b.com")
	assert.Contains(t, prompt, "+1 555-123-4567")
	assert.Contains(t, prompt, "What do they sell?")
	assert.Contains(t, prompt, "Do not fabricate")
}

func TestLLM_NoneFoundSentinels(t *testing.T) {
	client := &fakeClient{resp: textResponse("ok")}
	l := NewLLM(client, NewCache(), "m", 0, -1)

	profile := &model.BusinessProfile{
		Name:        "Bare Co",
		Description: "No description found",
	}
	_, err := l.Ask(context.Background(), profile, "Any contacts?")
	require.NoError(t, err)

	prompt := client.calls[0].Messages[0].Content
	assert.Contains(t, prompt, "Email addresses: None found")
	assert.Contains(t, prompt, "Phone numbers: None found")
}

func TestLLM_ProviderError(t *testing.T) {
	client := &fakeClient{err: eris.New("boom")}
	cache := NewCache()
	l := NewLLM(client, cache, "m", 0, -1)

	_, err := l.Ask(context.Background(), testProfile(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate")

	// Failures never populate the cache.
	assert.Equal(t, 0, cache.Len())
}

func TestLLM_EmptyCompletion(t *testing.T) {
	client := &fakeClient{resp: textResponse("   ")}
	l := NewLLM(client, NewCache(), "m", 0, -1)

	_, err := l.Ask(context.Background(), testProfile(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty completion")
}

func TestLLM_Validation(t *testing.T) {
	client := &fakeClient{resp: textResponse("ok")}
	l := NewLLM(client, NewCache(), "m", 0, -1)

	_, err := l.Ask(context.Background(), nil, "q")
	assert.ErrorIs(t, err, ErrMissingProfile)

	_, err = l.Ask(context.Background(), testProfile(), "")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
	assert.Empty(t, client.calls)
}
