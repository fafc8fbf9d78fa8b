package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Invitation struct{ ent.Schema }

func (Invitation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invitations"},
	}
}

func (Invitation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("email").NotEmpty(),
		field.String("token").NotEmpty().Unique().Sensitive(),
		field.Time("expires_at"),
		field.Bool("is_used").Default(false),
	}
}

func (Invitation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email", "is_used"),
	}
}
