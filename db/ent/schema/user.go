package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/voyagedesk/passport-tracker/constants"
	"github.com/voyagedesk/passport-tracker/utils"

	"github.com/google/uuid"
)

type User struct{ ent.Schema }

func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "users"},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("first_name").NotEmpty(),
		field.String("last_name").NotEmpty(),
		field.String("email").NotEmpty().Unique(),
		field.String("phone_number").Optional().Default(""),
		field.String("username").NotEmpty().Unique(),
		field.String("password_hash").NotEmpty().Sensitive(),
		field.String("role").Default(constants.RoleUser).
			Validate(utils.EnumValidator(constants.Roles...)),
		field.Int("uploaded_pages_count").Default(0).NonNegative(),
		field.Int("page_credits").Default(0).NonNegative(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("passports", Passport.Type),
		edge.To("voyages", Voyage.Type),
		edge.To("jobs", OcrJob.Type),
	}
}
