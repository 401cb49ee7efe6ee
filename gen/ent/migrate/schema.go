// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CurationJobsColumns holds the columns for the "curation_jobs" table.
	CurationJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "project_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "raw_data_uri", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "curated_data_uri", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "images_for_feedback", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CurationJobsTable holds the schema information for the "curation_jobs" table.
	CurationJobsTable = &schema.Table{
		Name:       "curation_jobs",
		Columns:    CurationJobsColumns,
		PrimaryKey: []*schema.Column{CurationJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "curationjob_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{CurationJobsColumns[1], CurationJobsColumns[2]},
			},
			{
				Name:    "curationjob_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CurationJobsColumns[1], CurationJobsColumns[8]},
			},
		},
	}
	// ImageEmbeddingsColumns holds the columns for the "image_embeddings" table.
	ImageEmbeddingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "project_id", Type: field.TypeString},
		{Name: "image_uri", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "vector", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ImageEmbeddingsTable holds the schema information for the "image_embeddings" table.
	ImageEmbeddingsTable = &schema.Table{
		Name:       "image_embeddings",
		Columns:    ImageEmbeddingsColumns,
		PrimaryKey: []*schema.Column{ImageEmbeddingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "imageembedding_project_id_image_uri",
				Unique:  true,
				Columns: []*schema.Column{ImageEmbeddingsColumns[1], ImageEmbeddingsColumns[2]},
			},
			{
				Name:    "imageembedding_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImageEmbeddingsColumns[1], ImageEmbeddingsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CurationJobsTable,
		ImageEmbeddingsTable,
	}
)

func init() {
	CurationJobsTable.Annotation = &entsql.Annotation{
		Table: "curation_jobs",
	}
	ImageEmbeddingsTable.Annotation = &entsql.Annotation{
		Table: "image_embeddings",
	}
}
