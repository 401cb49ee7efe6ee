package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type ImageEmbedding struct{ ent.Schema }

func (ImageEmbedding) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "image_embeddings"},
	}
}

func (ImageEmbedding) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("project_id").NotEmpty(),
		field.String("image_uri").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("vector", []float32{}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ImageEmbedding) Indexes() []ent.Index {
	return []ent.Index{
		// exactly one embedding per (project, image URI)
		index.Fields("project_id", "image_uri").Unique(),
		index.Fields("project_id", "created_at"),
	}
}
