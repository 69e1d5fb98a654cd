package anthropic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageResponse_Text(t *testing.T) {
	resp := &MessageResponse{
		Content: []ContentBlock{
			{Type: "text", Text: "Hello "},
			{Type: "text", Text: "world"},
		},
	}
	assert.Equal(t, "Hello world", resp.Text())

	assert.Empty(t, (&MessageResponse{}).Text())
}

func TestTokenUsage_EstimateCost(t *testing.T) {
	u := TokenUsage{InputTokens: 1_000_000, OutputTokens: 1_000_000}
	assert.InDelta(t, 4.80, u.EstimateCost("claude-haiku-4-5-20251001"), 1e-9)
	assert.Zero(t, u.EstimateCost("unknown-model"))
}

func TestTokenUsage_CacheCostMultipliers(t *testing.T) {
	u := TokenUsage{
		CacheCreationInputTokens: 1_000_000,
		CacheReadInputTokens:     1_000_000,
	}
	// write = input * 1.25, read = input * 0.1
	assert.InDelta(t, 0.80*1.25+0.80*0.1, u.EstimateCost("claude-haiku-4-5-20251001"), 1e-9)
}

func TestBuildCachedSystemBlocks(t *testing.T) {
	blocks := BuildCachedSystemBlocks("framing")
	require.Len(t, blocks, 1)
	assert.Equal(t, "framing", blocks[0].Text)
	require.NotNil(t, blocks[0].CacheControl)
	assert.Equal(t, "5m", blocks[0].CacheControl.TTL)
}

func TestToSDKMessages_Roles(t *testing.T) {
	msgs := toSDKMessages([]Message{
		{Role: "user", Content: "question"},
		{Role: "assistant", Content: "reply"},
	})
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", string(msgs[0].Role))
	assert.Equal(t, "assistant", string(msgs[1].Role))
}

func TestToSDKSystemBlocks(t *testing.T) {
	out := toSDKSystemBlocks([]SystemBlock{
		{Text: "plain"},
		{Text: "cached", CacheControl: &CacheControl{TTL: "1h"}},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "plain", out[0].Text)
	assert.Equal(t, "cached", out[1].Text)
}
