package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/docrouter-ce/docrouter/pkg/models"
)

// BlobObject holds the schema definition for one stored blob, keyed by
// logical (bucket, key). Payload bytes live in BlobChunk rows.
type BlobObject struct {
	ent.Schema
}

// Fields of the BlobObject.
func (BlobObject) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(models.NewID).
			Unique().
			Immutable(),
		field.String("bucket"),
		field.String("key"),
		field.Int64("size"),
		field.JSON("metadata", map[string]string{}).
			Optional(),
		field.Time("upload_date").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the BlobObject.
func (BlobObject) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chunks", BlobChunk.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the BlobObject.
func (BlobObject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bucket", "key").
			Unique(),
	}
}

// BlobChunk holds one ~8 MiB slice of a blob's payload.
type BlobChunk struct {
	ent.Schema
}

// Fields of the BlobChunk.
func (BlobChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(models.NewID).
			Unique().
			Immutable(),
		field.String("blob_id"),
		field.Int("n").
			Comment("Chunk sequence number, 0-based"),
		field.Bytes("data"),
	}
}

// Edges of the BlobChunk.
func (BlobChunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("blob", BlobObject.Type).
			Ref("chunks").
			Field("blob_id").
			Unique().
			Required(),
	}
}

// Indexes of the BlobChunk.
func (BlobChunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blob_id", "n").
			Unique(),
	}
}
