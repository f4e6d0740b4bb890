package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/docrouter-ce/docrouter/pkg/models"
)

// User holds the schema definition for the User entity. The "admin" role is
// the system-administrator role, distinct from per-organization roles.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(models.NewID).
			Unique().
			Immutable(),
		field.String("email").
			Unique().
			NotEmpty(),
		field.String("name").
			Optional(),
		field.String("password_hash").
			Optional().
			Sensitive(),
		field.Enum("role").
			Values("admin", "user").
			Default("user"),
		field.Bool("email_verified").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
