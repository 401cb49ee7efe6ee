// Code generated by ent, DO NOT EDIT.

package imageembedding

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/meridian-ml/data-curator/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldEQ(FieldProjectID, v))
}

// ImageURI applies equality check predicate on the "image_uri" field. It's identical to ImageURIEQ.
func ImageURI(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldEQ(FieldImageURI, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldContainsFold(FieldProjectID, v))
}

// ImageURIEQ applies the EQ predicate on the "image_uri" field.
func ImageURIEQ(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldEQ(FieldImageURI, v))
}

// ImageURINEQ applies the NEQ predicate on the "image_uri" field.
func ImageURINEQ(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldNEQ(FieldImageURI, v))
}

// ImageURIIn applies the In predicate on the "image_uri" field.
func ImageURIIn(vs ...string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldIn(FieldImageURI, vs...))
}

// ImageURINotIn applies the NotIn predicate on the "image_uri" field.
func ImageURINotIn(vs ...string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldNotIn(FieldImageURI, vs...))
}

// ImageURIGT applies the GT predicate on the "image_uri" field.
func ImageURIGT(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldGT(FieldImageURI, v))
}

// ImageURIGTE applies the GTE predicate on the "image_uri" field.
func ImageURIGTE(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldGTE(FieldImageURI, v))
}

// ImageURILT applies the LT predicate on the "image_uri" field.
func ImageURILT(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldLT(FieldImageURI, v))
}

// ImageURILTE applies the LTE predicate on the "image_uri" field.
func ImageURILTE(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldLTE(FieldImageURI, v))
}

// ImageURIContains applies the Contains predicate on the "image_uri" field.
func ImageURIContains(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldContains(FieldImageURI, v))
}

// ImageURIHasPrefix applies the HasPrefix predicate on the "image_uri" field.
func ImageURIHasPrefix(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldHasPrefix(FieldImageURI, v))
}

// ImageURIHasSuffix applies the HasSuffix predicate on the "image_uri" field.
func ImageURIHasSuffix(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldHasSuffix(FieldImageURI, v))
}

// ImageURIEqualFold applies the EqualFold predicate on the "image_uri" field.
func ImageURIEqualFold(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldEqualFold(FieldImageURI, v))
}

// ImageURIContainsFold applies the ContainsFold predicate on the "image_uri" field.
func ImageURIContainsFold(v string) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldContainsFold(FieldImageURI, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImageEmbedding) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImageEmbedding) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImageEmbedding) predicate.ImageEmbedding {
	return predicate.ImageEmbedding(sql.NotPredicates(p))
}
