package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/meridian-ml/data-curator/constants"
	"github.com/meridian-ml/data-curator/db/ent/schema/utils"
)

type CurationJob struct{ ent.Schema }

func (CurationJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "curation_jobs"},
	}
}

func (CurationJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("project_id").NotEmpty(),
		field.String("status").
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("raw_data_uri").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("curated_data_uri").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("images_for_feedback", json.RawMessage{}).
			Optional(),
		field.String("error_message").Optional().Nillable(),
		// optimistic concurrency check; bumped on every update
		field.Int("version").Default(1),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now),
	}
}

func (CurationJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status"),
		index.Fields("project_id", "created_at"),
	}
}
