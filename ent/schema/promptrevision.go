package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/docrouter-ce/docrouter/pkg/models"
)

// PromptRevision holds the schema definition for one immutable revision of a
// prompt. Revisions share a stable prompt_id; prompt_version increases
// monotonically and contiguously from 1. The sentinel revision id "default"
// never appears here — it denotes the built-in classification prompt.
type PromptRevision struct {
	ent.Schema
}

// Fields of the PromptRevision.
func (PromptRevision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_revid").
			DefaultFunc(models.NewID).
			Unique().
			Immutable(),
		field.String("prompt_id").
			NotEmpty().
			Immutable(),
		field.Int("prompt_version").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Text("content"),
		field.String("schema_id").
			Optional().
			Comment("Bound schema stable id; empty when unbound"),
		field.Int("schema_version").
			Optional(),
		field.JSON("tag_ids", []string{}).
			Optional(),
		field.String("model").
			Default("gpt-4o-mini").
			Comment("Provider-qualified model string"),
		field.String("organization_id").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("created_by").
			Optional(),
	}
}

// Indexes of the PromptRevision.
func (PromptRevision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prompt_id", "prompt_version").
			Unique(),
		index.Fields("organization_id", "name"),
	}
}
