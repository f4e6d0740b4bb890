package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/docrouter-ce/docrouter/pkg/models"
)

// UsageRecord holds the schema definition for one SPU usage record written
// by the credit gate after billable work succeeds.
type UsageRecord struct {
	ent.Schema
}

// Fields of the UsageRecord.
func (UsageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(models.NewID).
			Unique().
			Immutable(),
		field.String("organization_id").
			NotEmpty(),
		field.Int("spus"),
		field.String("source").
			Comment("Operation that consumed the SPUs, e.g. llm or monitoring"),
		field.String("provider").
			Optional(),
		field.String("model").
			Optional(),
		field.Int("prompt_tokens").
			Optional(),
		field.Int("completion_tokens").
			Optional(),
		field.Int("total_tokens").
			Optional(),
		field.Float("cost").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the UsageRecord.
func (UsageRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "created_at"),
	}
}
