package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/docrouter-ce/docrouter/pkg/models"
)

// QueueMessage holds the schema definition for one work-queue message.
// Messages on a named queue move pending → processing → completed/failed;
// the pending → processing transition is an atomic single-claim.
type QueueMessage struct {
	ent.Schema
}

// Fields of the QueueMessage.
func (QueueMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(models.NewID).
			Unique().
			Immutable(),
		field.String("queue").
			NotEmpty(),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.String("msg_type").
			Optional(),
		field.JSON("msg", map[string]any{}).
			Optional().
			Comment("Message payload"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("claimed_at").
			Optional(),
		field.Time("completed_at").
			Optional(),
	}
}

// Indexes of the QueueMessage.
func (QueueMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "status", "created_at"),
	}
}
