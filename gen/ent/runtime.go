// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/meridian-ml/data-curator/db/ent/schema"
	"github.com/meridian-ml/data-curator/gen/ent/curationjob"
	"github.com/meridian-ml/data-curator/gen/ent/imageembedding"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	curationjobFields := schema.CurationJob{}.Fields()
	_ = curationjobFields
	// curationjobDescProjectID is the schema descriptor for project_id field.
	curationjobDescProjectID := curationjobFields[1].Descriptor()
	// curationjob.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	curationjob.ProjectIDValidator = curationjobDescProjectID.Validators[0].(func(string) error)
	// curationjobDescStatus is the schema descriptor for status field.
	curationjobDescStatus := curationjobFields[2].Descriptor()
	// curationjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	curationjob.StatusValidator = curationjobDescStatus.Validators[0].(func(string) error)
	// curationjobDescRawDataURI is the schema descriptor for raw_data_uri field.
	curationjobDescRawDataURI := curationjobFields[3].Descriptor()
	// curationjob.RawDataURIValidator is a validator for the "raw_data_uri" field. It is called by the builders before save.
	curationjob.RawDataURIValidator = curationjobDescRawDataURI.Validators[0].(func(string) error)
	// curationjobDescVersion is the schema descriptor for version field.
	curationjobDescVersion := curationjobFields[7].Descriptor()
	// curationjob.DefaultVersion holds the default value on creation for the version field.
	curationjob.DefaultVersion = curationjobDescVersion.Default.(int)
	// curationjobDescCreatedAt is the schema descriptor for created_at field.
	curationjobDescCreatedAt := curationjobFields[8].Descriptor()
	// curationjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	curationjob.DefaultCreatedAt = curationjobDescCreatedAt.Default.(func() time.Time)
	// curationjobDescUpdatedAt is the schema descriptor for updated_at field.
	curationjobDescUpdatedAt := curationjobFields[9].Descriptor()
	// curationjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	curationjob.DefaultUpdatedAt = curationjobDescUpdatedAt.Default.(func() time.Time)
	// curationjobDescID is the schema descriptor for id field.
	curationjobDescID := curationjobFields[0].Descriptor()
	// curationjob.DefaultID holds the default value on creation for the id field.
	curationjob.DefaultID = curationjobDescID.Default.(func() uuid.UUID)
	imageembeddingFields := schema.ImageEmbedding{}.Fields()
	_ = imageembeddingFields
	// imageembeddingDescProjectID is the schema descriptor for project_id field.
	imageembeddingDescProjectID := imageembeddingFields[1].Descriptor()
	// imageembedding.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	imageembedding.ProjectIDValidator = imageembeddingDescProjectID.Validators[0].(func(string) error)
	// imageembeddingDescImageURI is the schema descriptor for image_uri field.
	imageembeddingDescImageURI := imageembeddingFields[2].Descriptor()
	// imageembedding.ImageURIValidator is a validator for the "image_uri" field. It is called by the builders before save.
	imageembedding.ImageURIValidator = imageembeddingDescImageURI.Validators[0].(func(string) error)
	// imageembeddingDescCreatedAt is the schema descriptor for created_at field.
	imageembeddingDescCreatedAt := imageembeddingFields[4].Descriptor()
	// imageembedding.DefaultCreatedAt holds the default value on creation for the created_at field.
	imageembedding.DefaultCreatedAt = imageembeddingDescCreatedAt.Default.(func() time.Time)
	// imageembeddingDescID is the schema descriptor for id field.
	imageembeddingDescID := imageembeddingFields[0].Descriptor()
	// imageembedding.DefaultID holds the default value on creation for the id field.
	imageembedding.DefaultID = imageembeddingDescID.Default.(func() uuid.UUID)
}
