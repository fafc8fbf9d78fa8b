package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Voyage struct{ ent.Schema }

func (Voyage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "voyages"},
	}
}

func (Voyage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("destination").NotEmpty(),
	}
}

func (Voyage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("voyages").
			Field("user_id").
			Required().
			Unique(),
		edge.To("passports", Passport.Type),
	}
}

func (Voyage) Indexes() []ent.Index {
	return []ent.Index{
		// one voyage per destination per user
		index.Fields("user_id", "destination").Unique(),
	}
}
