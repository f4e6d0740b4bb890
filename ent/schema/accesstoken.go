package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/docrouter-ce/docrouter/pkg/models"
)

// AccessToken holds the schema definition for API access tokens. The token
// column stores ciphertext; plaintext tokens carry an org_ or acc_ prefix and
// are shown to the caller exactly once, at creation. An empty organization_id
// marks an account-level token.
type AccessToken struct {
	ent.Schema
}

// Fields of the AccessToken.
func (AccessToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(models.NewID).
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("organization_id").
			Optional(),
		field.String("name"),
		field.String("token").
			Unique().
			Sensitive().
			Comment("Encrypted token material"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Int64("lifetime").
			Default(0).
			Comment("Seconds; 0 means no expiry"),
	}
}

// Indexes of the AccessToken.
func (AccessToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("organization_id"),
	}
}
