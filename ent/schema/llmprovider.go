package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/docrouter-ce/docrouter/pkg/models"
)

// LLMProvider holds the schema definition for one configured LLM vendor.
// Rows are reconciled against the canonical provider list at startup.
type LLMProvider struct {
	ent.Schema
}

// Fields of the LLMProvider.
func (LLMProvider) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(models.NewID).
			Unique().
			Immutable(),
		field.String("name").
			Unique().
			NotEmpty(),
		field.String("display_name"),
		field.String("litellm_provider").
			Comment("Catalog provider key used for model qualification"),
		field.JSON("litellm_models_available", []string{}).
			Optional(),
		field.JSON("litellm_models_enabled", []string{}).
			Optional(),
		field.Bool("enabled").
			Default(false),
		field.String("token").
			Optional().
			Sensitive().
			Comment("Encrypted provider API token"),
		field.Time("token_created_at").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
