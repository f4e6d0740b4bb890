package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/docrouter-ce/docrouter/pkg/models"
)

// Document holds the schema definition for the Document entity — one
// per-organization registry row per uploaded document.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(models.NewID).
			Unique().
			Immutable(),
		field.String("organization_id").
			NotEmpty(),
		field.String("user_file_name").
			Comment("Original name as uploaded by the user"),
		field.String("mongo_file_name").
			Comment("Blob key of the original bytes"),
		field.String("pdf_file_name").
			Comment("Blob key of the PDF view; equals mongo_file_name when already PDF"),
		field.String("pdf_id").
			Optional(),
		field.Time("upload_date").
			Default(time.Now).
			Immutable(),
		field.String("uploaded_by").
			Optional(),
		field.Enum("state").
			Values("uploaded", "ocr_processing", "ocr_completed", "ocr_failed",
				"llm_processing", "llm_completed", "llm_failed").
			Default("uploaded"),
		field.Time("state_updated_at").
			Default(time.Now),
		field.JSON("tag_ids", []string{}).
			Optional(),
		field.JSON("metadata", map[string]string{}).
			Optional().
			Comment("User-defined string→string metadata"),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("organization_id", "upload_date"),
		index.Fields("state", "state_updated_at"),
	}
}
