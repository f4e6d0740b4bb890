package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/bedrock"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/mistral"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/docrouter-ce/docrouter/pkg/models"
)

// ErrNoCompletion indicates the provider returned an empty response.
var ErrNoCompletion = errors.New("llm: provider returned no completion")

// GenerateInput carries one extraction call.
type GenerateInput struct {
	Provider       string
	Model          string // bare model name, without provider prefix
	Token          string // decrypted provider API token
	System         string
	Prompt         string
	ResponseFormat *models.ResponseFormat
}

// Usage is the token accounting reported by the provider for one call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client generates a completion for one extraction call.
type Client interface {
	Generate(ctx context.Context, in GenerateInput) (string, Usage, error)
}

// ChatClient is the langchaingo-backed Client. One instance is shared across
// workers; per-call provider handles are cheap to construct.
type ChatClient struct {
	retry RetryPolicy
}

// NewChatClient builds a client with the default retry policy.
func NewChatClient() *ChatClient {
	return &ChatClient{retry: DefaultRetryPolicy()}
}

// Generate calls the provider, retrying transient failures.
func (c *ChatClient) Generate(ctx context.Context, in GenerateInput) (string, Usage, error) {
	model, err := c.buildModel(ctx, in)
	if err != nil {
		return "", Usage{}, err
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, in.System),
		llms.TextParts(llms.ChatMessageTypeHuman, in.Prompt),
	}

	var opts []llms.CallOption
	// Non-openai providers get JSON mode; openai carries the full
	// json_schema response format on the handle itself.
	if in.ResponseFormat != nil && !openaiCompatible(in.Provider) {
		opts = append(opts, llms.WithJSONMode())
	}

	var resp *llms.ContentResponse
	err = c.retry.Do(ctx, func() error {
		var callErr error
		resp, callErr = model.GenerateContent(ctx, messages, opts...)
		if callErr != nil {
			slog.Warn("LLM call failed",
				"provider", in.Provider, "model", in.Model,
				"retryable", IsRetryable(callErr), "error", callErr)
		}
		return callErr
	})
	if err != nil {
		return "", Usage{}, fmt.Errorf("llm: %s/%s: %w", in.Provider, in.Model, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", Usage{}, ErrNoCompletion
	}

	choice := resp.Choices[0]
	return choice.Content, usageFromGenerationInfo(choice.GenerationInfo), nil
}

// buildModel constructs the provider handle for one call.
func (c *ChatClient) buildModel(ctx context.Context, in GenerateInput) (llms.Model, error) {
	switch in.Provider {
	case "openai":
		opts := []openai.Option{
			openai.WithToken(in.Token),
			openai.WithModel(in.Model),
		}
		if in.ResponseFormat != nil {
			rf, err := openaiResponseFormat(in.ResponseFormat)
			if err != nil {
				return nil, err
			}
			opts = append(opts, openai.WithResponseFormat(rf))
		}
		return openai.New(opts...)
	case "groq":
		// Groq speaks the openai wire protocol.
		return openai.New(
			openai.WithToken(in.Token),
			openai.WithModel(in.Model),
			openai.WithBaseURL("https://api.groq.com/openai/v1"),
		)
	case "anthropic":
		return anthropic.New(
			anthropic.WithToken(in.Token),
			anthropic.WithModel(in.Model),
		)
	case "gemini":
		return googleai.New(ctx,
			googleai.WithAPIKey(in.Token),
			googleai.WithDefaultModel(in.Model),
		)
	case "mistral":
		return mistral.New(
			mistral.WithAPIKey(in.Token),
			mistral.WithModel(in.Model),
		)
	case "bedrock":
		// Bedrock authenticates through the ambient AWS credential chain,
		// not a provider token.
		return bedrock.New(bedrock.WithModel(in.Model))
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", in.Provider)
	}
}

func openaiCompatible(provider string) bool {
	return provider == "openai" || provider == "groq"
}

// openaiResponseFormat converts the stored response format into the openai
// request structure. json_schema is only sent when the schema parses; plain
// JSON mode is the fallback.
func openaiResponseFormat(rf *models.ResponseFormat) (*openai.ResponseFormat, error) {
	if rf.Type != "json_schema" || rf.JSONSchema == nil {
		return &openai.ResponseFormat{Type: "json_object"}, nil
	}
	var schema openai.ResponseFormatJSONSchemaProperty
	if err := json.Unmarshal(rf.JSONSchema.Schema, &schema); err != nil {
		return nil, fmt.Errorf("llm: parsing response schema: %w", err)
	}
	return &openai.ResponseFormat{
		Type: "json_schema",
		JSONSchema: &openai.ResponseFormatJSONSchema{
			Name:   rf.JSONSchema.Name,
			Strict: rf.JSONSchema.Strict,
			Schema: &schema,
		},
	}, nil
}

// usageFromGenerationInfo extracts token counts. Providers report under
// different keys, so all known spellings are checked.
func usageFromGenerationInfo(info map[string]any) Usage {
	u := Usage{
		PromptTokens:     intFromInfo(info, "PromptTokens", "InputTokens", "prompt_tokens", "input_tokens"),
		CompletionTokens: intFromInfo(info, "CompletionTokens", "OutputTokens", "completion_tokens", "output_tokens"),
	}
	u.TotalTokens = intFromInfo(info, "TotalTokens", "total_tokens")
	if u.TotalTokens == 0 {
		u.TotalTokens = u.PromptTokens + u.CompletionTokens
	}
	return u
}

func intFromInfo(info map[string]any, keys ...string) int {
	for _, k := range keys {
		switch v := info[k].(type) {
		case int:
			if v > 0 {
				return v
			}
		case int32:
			if v > 0 {
				return int(v)
			}
		case int64:
			if v > 0 {
				return int(v)
			}
		case float64:
			if v > 0 {
				return int(v)
			}
		}
	}
	return 0
}
