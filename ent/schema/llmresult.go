package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/docrouter-ce/docrouter/pkg/models"
)

// LLMResult holds the schema definition for one extraction result revision.
// Rows are append-only per (document_id, prompt_rev_id); reads return the
// newest revision. Result payloads are stored as serialized JSON text so the
// schema-declared key order survives storage.
type LLMResult struct {
	ent.Schema
}

// Fields of the LLMResult.
func (LLMResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(models.NewID).
			Unique().
			Immutable(),
		field.String("document_id").
			NotEmpty(),
		field.String("prompt_rev_id").
			NotEmpty(),
		field.String("prompt_id").
			Optional(),
		field.Int("prompt_version").
			Optional(),
		field.Text("llm_result").
			Comment("Original result, JSON text with ordered keys"),
		field.Text("updated_llm_result").
			Comment("Editable copy; top-level key set must equal llm_result"),
		field.Bool("is_edited").
			Default(false),
		field.Bool("is_verified").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Indexes of the LLMResult.
func (LLMResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "prompt_rev_id", "created_at"),
		index.Fields("document_id"),
	}
}
