package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/voyagedesk/passport-tracker/constants"
	"github.com/voyagedesk/passport-tracker/utils"

	"github.com/google/uuid"
)

type OcrJob struct{ ent.Schema }

func (OcrJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_jobs"},
	}
}

func (OcrJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("user_id", uuid.UUID{}),
		field.String("file_name").NotEmpty(),
		field.String("status").Default(string(constants.JobStatusProcessing)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Int("progress").Default(0).Min(0).Max(100),
		field.Time("created_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.JSON("successes", json.RawMessage{}).Optional(),
		field.JSON("failures", json.RawMessage{}).Optional(),
	}
}

func (OcrJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("jobs").
			Field("user_id").
			Unique().
			Required(),
	}
}

func (OcrJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status", "created_at"),
	}
}
