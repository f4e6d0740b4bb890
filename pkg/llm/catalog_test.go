package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModel(t *testing.T) {
	tests := []struct {
		model    string
		provider string
		bare     string
	}{
		{"gpt-4o-mini", "openai", "gpt-4o-mini"},
		{"anthropic/claude-3-5-sonnet-latest", "anthropic", "claude-3-5-sonnet-latest"},
		{"gemini-1.5-flash", "gemini", "gemini-1.5-flash"},
		{"groq/llama-3.1-8b-instant", "groq", "llama-3.1-8b-instant"},
		{"some-unknown-model", "openai", "some-unknown-model"},
	}
	for _, tc := range tests {
		provider, bare := ParseModel(tc.model)
		assert.Equal(t, tc.provider, provider, tc.model)
		assert.Equal(t, tc.bare, bare, tc.model)
	}
}

func TestIsChatModel_DenyList(t *testing.T) {
	assert.True(t, IsChatModel("gpt-4o-mini"))
	// Upstream marks these chat-capable; the deny-list overrides.
	assert.False(t, IsChatModel("babbage-002"))
	assert.False(t, IsChatModel("davinci-002"))
	assert.False(t, IsChatModel("no-such-model"))
}

func TestIsSupportedModel(t *testing.T) {
	assert.True(t, IsSupportedModel("gpt-4o-mini"))
	assert.True(t, IsSupportedModel("anthropic/claude-3-5-haiku-latest"))
	// Deny-listed entries carry no cost data and must not be supported.
	assert.False(t, IsSupportedModel("babbage-002"))
	assert.False(t, IsSupportedModel("unknown"))
}

func TestSPUCost(t *testing.T) {
	assert.Equal(t, 1, SPUCost("gpt-4o-mini"))
	assert.Equal(t, 3, SPUCost("gpt-4o"))
	assert.Equal(t, 5, SPUCost("claude-3-opus-latest"))
	assert.Equal(t, 1, SPUCost("unknown-model"), "unknown models cost 1")
}

func TestSupportsResponseSchema(t *testing.T) {
	assert.True(t, SupportsResponseSchema("gpt-4o"))
	assert.False(t, SupportsResponseSchema("claude-3-5-sonnet-latest"))
}

func TestDefaultModelIsSupported(t *testing.T) {
	assert.True(t, IsSupportedModel(DefaultModel))
	provider, _ := ParseModel(DefaultModel)
	found := false
	for _, spec := range Providers {
		if spec.Name == provider {
			found = contains(spec.AllowedModels, DefaultModel)
		}
	}
	assert.True(t, found, "default model must be on its provider's allow-list")
}

func TestIntersectAllowed_DropsUnadvertised(t *testing.T) {
	spec := ProviderSpec{
		Name:          "openai",
		AllowedModels: []string{"gpt-4o-mini", "retired-model", "gpt-4o"},
	}
	got := intersectAllowed(spec)
	assert.Equal(t, []string{"gpt-4o-mini", "gpt-4o"}, got)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(errors.New("503 Service Unavailable")))
	assert.True(t, IsRetryable(errors.New("Rate limit reached for gpt-4o")))
	assert.True(t, IsRetryable(errors.New("request timeout")))
	assert.True(t, IsRetryable(errors.New("Overloaded")))
	assert.True(t, IsRetryable(errors.New("x-amz-date signature expired")))
	assert.False(t, IsRetryable(errors.New("invalid api key")))
	assert.False(t, IsRetryable(errors.New("model not found")))
	assert.False(t, IsRetryable(nil))
}

func TestUsageFromGenerationInfo(t *testing.T) {
	u := usageFromGenerationInfo(map[string]any{
		"PromptTokens":     100,
		"CompletionTokens": 50,
	})
	assert.Equal(t, 100, u.PromptTokens)
	assert.Equal(t, 50, u.CompletionTokens)
	assert.Equal(t, 150, u.TotalTokens, "total derived when not reported")

	u = usageFromGenerationInfo(map[string]any{
		"input_tokens":  float64(10),
		"output_tokens": float64(5),
		"total_tokens":  float64(15),
	})
	assert.Equal(t, Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}, u)
}
