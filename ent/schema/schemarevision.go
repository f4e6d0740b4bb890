package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/docrouter-ce/docrouter/pkg/models"
)

// SchemaRevision holds the schema definition for one immutable revision of a
// JSON schema. Revisions share a stable schema_id; schema_version increases
// monotonically and contiguously from 1.
type SchemaRevision struct {
	ent.Schema
}

// Fields of the SchemaRevision.
func (SchemaRevision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("schema_revid").
			DefaultFunc(models.NewID).
			Unique().
			Immutable(),
		field.String("schema_id").
			NotEmpty().
			Immutable(),
		field.Int("schema_version").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.JSON("response_format", models.ResponseFormat{}).
			Comment("json_schema response format enforced on bound prompts"),
		field.String("organization_id").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("created_by").
			Optional(),
	}
}

// Indexes of the SchemaRevision.
func (SchemaRevision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("schema_id", "schema_version").
			Unique(),
		index.Fields("organization_id", "name"),
	}
}
