package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/llmprovider"
	"github.com/docrouter-ce/docrouter/pkg/config"
	"github.com/docrouter-ce/docrouter/pkg/crypto"
)

// ProviderSpec is one canonical provider definition. AllowedModels is the
// curated allow-list; the reconciled row exposes its intersection with the
// catalog's advertised models, in allow-list order.
type ProviderSpec struct {
	Name          string
	DisplayName   string
	AllowedModels []string
}

// Providers is the canonical provider list. Rows not on this list are
// removed during reconciliation.
var Providers = []ProviderSpec{
	{
		Name:        "openai",
		DisplayName: "OpenAI",
		AllowedModels: []string{
			"gpt-4o-mini", "gpt-4o", "gpt-4.1", "gpt-4.1-mini",
		},
	},
	{
		Name:        "anthropic",
		DisplayName: "Anthropic",
		AllowedModels: []string{
			"claude-3-5-sonnet-latest", "claude-3-5-haiku-latest", "claude-3-opus-latest",
		},
	},
	{
		Name:        "gemini",
		DisplayName: "Google Gemini",
		AllowedModels: []string{
			"gemini-1.5-flash", "gemini-1.5-pro",
		},
	},
	{
		Name:        "groq",
		DisplayName: "Groq",
		AllowedModels: []string{
			"llama-3.3-70b-versatile", "llama-3.1-8b-instant",
		},
	},
	{
		Name:        "mistral",
		DisplayName: "Mistral",
		AllowedModels: []string{
			"mistral-large-latest", "mistral-small-latest",
		},
	},
	{
		Name:        "bedrock",
		DisplayName: "AWS Bedrock",
		AllowedModels: []string{
			"anthropic.claude-3-5-sonnet-20241022-v2:0",
			"anthropic.claude-3-haiku-20240307-v1:0",
		},
	},
}

// Registry reconciles stored provider rows against the canonical list.
type Registry struct {
	client *ent.Client
	cipher *crypto.Cipher
}

// NewRegistry creates a Registry. The cipher encrypts tokens at rest.
func NewRegistry(client *ent.Client, cipher *crypto.Cipher) *Registry {
	return &Registry{client: client, cipher: cipher}
}

// Reconcile brings the provider table in line with the canonical list:
// missing providers are created, model lists are refreshed against the
// catalog, stale providers are removed, and environment-supplied API keys
// are seeded into providers that have no token yet.
func (r *Registry) Reconcile(ctx context.Context) error {
	names := make([]string, 0, len(Providers))
	for _, spec := range Providers {
		names = append(names, spec.Name)
		if err := r.reconcileProvider(ctx, spec); err != nil {
			return err
		}
	}

	// Rows for providers that left the canonical list are removed.
	n, err := r.client.LLMProvider.Delete().
		Where(llmprovider.NameNotIn(names...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("removing stale providers: %w", err)
	}
	if n > 0 {
		slog.Info("Removed stale LLM providers", "count", n)
	}
	return nil
}

func (r *Registry) reconcileProvider(ctx context.Context, spec ProviderSpec) error {
	available := intersectAllowed(spec)

	row, err := r.client.LLMProvider.Query().
		Where(llmprovider.NameEQ(spec.Name)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		row, err = r.client.LLMProvider.Create().
			SetName(spec.Name).
			SetDisplayName(spec.DisplayName).
			SetLitellmProvider(spec.Name).
			SetLitellmModelsAvailable(available).
			SetLitellmModelsEnabled(available).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("creating provider %s: %w", spec.Name, err)
		}
		slog.Info("Created LLM provider", "provider", spec.Name, "models", len(available))
	case err != nil:
		return fmt.Errorf("querying provider %s: %w", spec.Name, err)
	default:
		enabled := intersect(row.LitellmModelsEnabled, available)
		if len(enabled) == 0 {
			enabled = available
		}
		row, err = row.Update().
			SetDisplayName(spec.DisplayName).
			SetLitellmProvider(spec.Name).
			SetLitellmModelsAvailable(available).
			SetLitellmModelsEnabled(enabled).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("updating provider %s: %w", spec.Name, err)
		}
	}

	// The default model must stay reachable: when its provider drops it from
	// the enabled set, force it back in (or fall back to the first available).
	if prov, bare := ParseModel(DefaultModel); prov == spec.Name {
		if err := r.ensureDefaultEnabled(ctx, row, bare, available); err != nil {
			return err
		}
	}

	return r.seedToken(ctx, row)
}

// ensureDefaultEnabled guarantees the default model (or a substitute) is in
// the provider's enabled set.
func (r *Registry) ensureDefaultEnabled(ctx context.Context, row *ent.LLMProvider, model string, available []string) error {
	if !contains(available, model) {
		if len(available) == 0 {
			return nil
		}
		slog.Warn("Default model unavailable, substituting first available",
			"provider", row.Name, "default", model, "substitute", available[0])
		model = available[0]
	}
	if contains(row.LitellmModelsEnabled, model) {
		return nil
	}
	enabled := append(append([]string{}, row.LitellmModelsEnabled...), model)
	if err := row.Update().SetLitellmModelsEnabled(enabled).Exec(ctx); err != nil {
		return fmt.Errorf("enabling default model on %s: %w", row.Name, err)
	}
	return nil
}

// seedToken installs an environment-supplied API key into a provider row
// that does not have a token yet, enabling the provider. Tokens already set
// through the API are never overwritten.
func (r *Registry) seedToken(ctx context.Context, row *ent.LLMProvider) error {
	if row.Token != "" {
		return nil
	}
	key := config.ProviderAPIKey(row.Name)
	if key == "" {
		return nil
	}
	encrypted, err := r.cipher.Encrypt(key)
	if err != nil {
		return fmt.Errorf("encrypting %s token: %w", row.Name, err)
	}
	if err := row.Update().
		SetToken(encrypted).
		SetTokenCreatedAt(time.Now()).
		SetEnabled(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("seeding %s token: %w", row.Name, err)
	}
	slog.Info("Seeded LLM provider token from environment", "provider", row.Name)
	return nil
}

// intersectAllowed keeps allow-list order while dropping models the catalog
// no longer advertises as usable.
func intersectAllowed(spec ProviderSpec) []string {
	advertised := advertisedModels(spec.Name)
	out := make([]string, 0, len(spec.AllowedModels))
	for _, m := range spec.AllowedModels {
		if advertised[m] && IsSupportedModel(m) {
			out = append(out, m)
		}
	}
	return out
}

func intersect(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, m := range b {
		set[m] = true
	}
	out := make([]string, 0, len(a))
	for _, m := range a {
		if set[m] {
			out = append(out, m)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
