package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Passport struct{ ent.Schema }

func (Passport) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "passports"},
	}
}

func (Passport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("owner_id", uuid.UUID{}),
		field.UUID("voyage_id", uuid.UUID{}).Optional().Nillable(),
		field.String("first_name").NotEmpty(),
		field.String("last_name").NotEmpty(),
		field.Time("birth_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("delivery_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("expiration_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("nationality").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("passport_number").NotEmpty().MaxLen(9),
		field.Float("confidence_score").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Passport) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY passports -> ONE user (FK: passports.owner_id)
		edge.From("owner", User.Type).
			Ref("passports").
			Field("owner_id").
			Required().
			Unique(),
		// OPTIONAL: MANY passports -> ONE voyage (FK: passports.voyage_id)
		edge.From("voyage", Voyage.Type).
			Ref("passports").
			Field("voyage_id").
			Unique(),
	}
}

func (Passport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("voyage_id", "passport_number"),
	}
}
