// Package llm provides the provider catalog, the provider registry, and the
// chat client used for extraction runs.
package llm

import "strings"

// DefaultModel is the fallback model for prompts that do not pin one, and
// the replacement when a pinned model fails capability checks.
const DefaultModel = "gpt-4o-mini"

// ModelInfo describes one model's capabilities and cost data.
type ModelInfo struct {
	Provider               string
	Mode                   string
	MaxInputTokens         int
	MaxOutputTokens        int
	InputCostPerToken      float64
	OutputCostPerToken     float64
	SupportsResponseSchema bool
	SPUCost                int
}

// catalog is the maintained model capability table, keyed by bare model name.
// Mirrors what each provider currently advertises; reconciliation intersects
// this with the per-provider allow-lists.
var catalog = map[string]ModelInfo{
	// OpenAI
	"gpt-4o":      {Provider: "openai", Mode: "chat", MaxInputTokens: 128000, MaxOutputTokens: 16384, InputCostPerToken: 2.5e-06, OutputCostPerToken: 1e-05, SupportsResponseSchema: true, SPUCost: 3},
	"gpt-4o-mini": {Provider: "openai", Mode: "chat", MaxInputTokens: 128000, MaxOutputTokens: 16384, InputCostPerToken: 1.5e-07, OutputCostPerToken: 6e-07, SupportsResponseSchema: true, SPUCost: 1},
	"gpt-4.1":     {Provider: "openai", Mode: "chat", MaxInputTokens: 1047576, MaxOutputTokens: 32768, InputCostPerToken: 2e-06, OutputCostPerToken: 8e-06, SupportsResponseSchema: true, SPUCost: 3},
	"gpt-4.1-mini": {Provider: "openai", Mode: "chat", MaxInputTokens: 1047576, MaxOutputTokens: 32768, InputCostPerToken: 4e-07, OutputCostPerToken: 1.6e-06, SupportsResponseSchema: true, SPUCost: 1},
	// Known catalog false positives: listed as chat-capable upstream but not
	// usable as chat models here.
	"babbage-002": {Provider: "openai", Mode: "chat"},
	"davinci-002": {Provider: "openai", Mode: "chat"},

	// Anthropic
	"claude-3-5-sonnet-latest": {Provider: "anthropic", Mode: "chat", MaxInputTokens: 200000, MaxOutputTokens: 8192, InputCostPerToken: 3e-06, OutputCostPerToken: 1.5e-05, SPUCost: 3},
	"claude-3-5-haiku-latest":  {Provider: "anthropic", Mode: "chat", MaxInputTokens: 200000, MaxOutputTokens: 8192, InputCostPerToken: 8e-07, OutputCostPerToken: 4e-06, SPUCost: 1},
	"claude-3-opus-latest":     {Provider: "anthropic", Mode: "chat", MaxInputTokens: 200000, MaxOutputTokens: 4096, InputCostPerToken: 1.5e-05, OutputCostPerToken: 7.5e-05, SPUCost: 5},

	// Google
	"gemini-1.5-flash": {Provider: "gemini", Mode: "chat", MaxInputTokens: 1048576, MaxOutputTokens: 8192, InputCostPerToken: 7.5e-08, OutputCostPerToken: 3e-07, SPUCost: 1},
	"gemini-1.5-pro":   {Provider: "gemini", Mode: "chat", MaxInputTokens: 2097152, MaxOutputTokens: 8192, InputCostPerToken: 1.25e-06, OutputCostPerToken: 5e-06, SPUCost: 3},

	// Groq
	"llama-3.3-70b-versatile": {Provider: "groq", Mode: "chat", MaxInputTokens: 128000, MaxOutputTokens: 32768, InputCostPerToken: 5.9e-07, OutputCostPerToken: 7.9e-07, SPUCost: 1},
	"llama-3.1-8b-instant":    {Provider: "groq", Mode: "chat", MaxInputTokens: 128000, MaxOutputTokens: 8192, InputCostPerToken: 5e-08, OutputCostPerToken: 8e-08, SPUCost: 1},

	// Mistral
	"mistral-large-latest": {Provider: "mistral", Mode: "chat", MaxInputTokens: 128000, MaxOutputTokens: 128000, InputCostPerToken: 2e-06, OutputCostPerToken: 6e-06, SPUCost: 3},
	"mistral-small-latest": {Provider: "mistral", Mode: "chat", MaxInputTokens: 32000, MaxOutputTokens: 32000, InputCostPerToken: 1e-07, OutputCostPerToken: 3e-07, SPUCost: 1},

	// AWS Bedrock
	"anthropic.claude-3-5-sonnet-20241022-v2:0": {Provider: "bedrock", Mode: "chat", MaxInputTokens: 200000, MaxOutputTokens: 8192, InputCostPerToken: 3e-06, OutputCostPerToken: 1.5e-05, SPUCost: 3},
	"anthropic.claude-3-haiku-20240307-v1:0":    {Provider: "bedrock", Mode: "chat", MaxInputTokens: 200000, MaxOutputTokens: 4096, InputCostPerToken: 2.5e-07, OutputCostPerToken: 1.25e-06, SPUCost: 1},
}

// chatDenyList marks models whose upstream mode claims chat capability they
// do not actually have.
var chatDenyList = map[string]bool{
	"babbage-002": true,
	"davinci-002": true,
}

// ParseModel splits a provider-qualified model string ("anthropic/claude-…")
// into provider and bare model name. Unqualified names resolve through the
// catalog; unknown unqualified names default to openai.
func ParseModel(model string) (provider, bare string) {
	if i := strings.IndexByte(model, '/'); i > 0 {
		return model[:i], model[i+1:]
	}
	if info, ok := catalog[model]; ok {
		return info.Provider, model
	}
	return "openai", model
}

// IsChatModel reports whether the model's mode is chat, honoring the
// explicit deny-list for known false positives.
func IsChatModel(model string) bool {
	_, bare := ParseModel(model)
	if chatDenyList[bare] {
		return false
	}
	info, ok := catalog[bare]
	return ok && info.Mode == "chat"
}

// HasCostInformation reports whether the catalog carries non-zero token
// limits and per-token costs for the model.
func HasCostInformation(model string) bool {
	_, bare := ParseModel(model)
	info, ok := catalog[bare]
	return ok &&
		info.MaxInputTokens > 0 && info.MaxOutputTokens > 0 &&
		info.InputCostPerToken > 0 && info.OutputCostPerToken > 0
}

// IsSupportedModel reports whether the model is on the maintained supported
// list and has cost information.
func IsSupportedModel(model string) bool {
	_, bare := ParseModel(model)
	_, ok := catalog[bare]
	return ok && HasCostInformation(model) && IsChatModel(model)
}

// SupportsResponseSchema reports whether the model's provider enforces
// json_schema response formats natively.
func SupportsResponseSchema(model string) bool {
	_, bare := ParseModel(model)
	info, ok := catalog[bare]
	return ok && info.SupportsResponseSchema
}

// SPUCost returns the per-page SPU cost of the model. Unknown models cost 1.
func SPUCost(model string) int {
	_, bare := ParseModel(model)
	if info, ok := catalog[bare]; ok && info.SPUCost > 0 {
		return info.SPUCost
	}
	return 1
}

// CostInfo returns the catalog entry for a model.
func CostInfo(model string) (ModelInfo, bool) {
	_, bare := ParseModel(model)
	info, ok := catalog[bare]
	return info, ok
}

// advertisedModels returns the catalog's chat-capable models for a provider,
// in no particular order.
func advertisedModels(provider string) map[string]bool {
	out := make(map[string]bool)
	for name, info := range catalog {
		if info.Provider == provider {
			out[name] = true
		}
	}
	return out
}
