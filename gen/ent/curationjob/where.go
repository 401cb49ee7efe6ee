// Code generated by ent, DO NOT EDIT.

package curationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/meridian-ml/data-curator/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldProjectID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldStatus, v))
}

// RawDataURI applies equality check predicate on the "raw_data_uri" field. It's identical to RawDataURIEQ.
func RawDataURI(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldRawDataURI, v))
}

// CuratedDataURI applies equality check predicate on the "curated_data_uri" field. It's identical to CuratedDataURIEQ.
func CuratedDataURI(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldCuratedDataURI, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldContainsFold(FieldProjectID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldContainsFold(FieldStatus, v))
}

// RawDataURIEQ applies the EQ predicate on the "raw_data_uri" field.
func RawDataURIEQ(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldRawDataURI, v))
}

// RawDataURINEQ applies the NEQ predicate on the "raw_data_uri" field.
func RawDataURINEQ(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNEQ(FieldRawDataURI, v))
}

// RawDataURIIn applies the In predicate on the "raw_data_uri" field.
func RawDataURIIn(vs ...string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldIn(FieldRawDataURI, vs...))
}

// RawDataURINotIn applies the NotIn predicate on the "raw_data_uri" field.
func RawDataURINotIn(vs ...string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNotIn(FieldRawDataURI, vs...))
}

// RawDataURIGT applies the GT predicate on the "raw_data_uri" field.
func RawDataURIGT(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGT(FieldRawDataURI, v))
}

// RawDataURIGTE applies the GTE predicate on the "raw_data_uri" field.
func RawDataURIGTE(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGTE(FieldRawDataURI, v))
}

// RawDataURILT applies the LT predicate on the "raw_data_uri" field.
func RawDataURILT(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLT(FieldRawDataURI, v))
}

// RawDataURILTE applies the LTE predicate on the "raw_data_uri" field.
func RawDataURILTE(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLTE(FieldRawDataURI, v))
}

// RawDataURIContains applies the Contains predicate on the "raw_data_uri" field.
func RawDataURIContains(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldContains(FieldRawDataURI, v))
}

// RawDataURIHasPrefix applies the HasPrefix predicate on the "raw_data_uri" field.
func RawDataURIHasPrefix(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldHasPrefix(FieldRawDataURI, v))
}

// RawDataURIHasSuffix applies the HasSuffix predicate on the "raw_data_uri" field.
func RawDataURIHasSuffix(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldHasSuffix(FieldRawDataURI, v))
}

// RawDataURIEqualFold applies the EqualFold predicate on the "raw_data_uri" field.
func RawDataURIEqualFold(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEqualFold(FieldRawDataURI, v))
}

// RawDataURIContainsFold applies the ContainsFold predicate on the "raw_data_uri" field.
func RawDataURIContainsFold(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldContainsFold(FieldRawDataURI, v))
}

// CuratedDataURIEQ applies the EQ predicate on the "curated_data_uri" field.
func CuratedDataURIEQ(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldCuratedDataURI, v))
}

// CuratedDataURINEQ applies the NEQ predicate on the "curated_data_uri" field.
func CuratedDataURINEQ(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNEQ(FieldCuratedDataURI, v))
}

// CuratedDataURIIn applies the In predicate on the "curated_data_uri" field.
func CuratedDataURIIn(vs ...string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldIn(FieldCuratedDataURI, vs...))
}

// CuratedDataURINotIn applies the NotIn predicate on the "curated_data_uri" field.
func CuratedDataURINotIn(vs ...string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNotIn(FieldCuratedDataURI, vs...))
}

// CuratedDataURIGT applies the GT predicate on the "curated_data_uri" field.
func CuratedDataURIGT(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGT(FieldCuratedDataURI, v))
}

// CuratedDataURIGTE applies the GTE predicate on the "curated_data_uri" field.
func CuratedDataURIGTE(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGTE(FieldCuratedDataURI, v))
}

// CuratedDataURILT applies the LT predicate on the "curated_data_uri" field.
func CuratedDataURILT(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLT(FieldCuratedDataURI, v))
}

// CuratedDataURILTE applies the LTE predicate on the "curated_data_uri" field.
func CuratedDataURILTE(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLTE(FieldCuratedDataURI, v))
}

// CuratedDataURIContains applies the Contains predicate on the "curated_data_uri" field.
func CuratedDataURIContains(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldContains(FieldCuratedDataURI, v))
}

// CuratedDataURIHasPrefix applies the HasPrefix predicate on the "curated_data_uri" field.
func CuratedDataURIHasPrefix(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldHasPrefix(FieldCuratedDataURI, v))
}

// CuratedDataURIHasSuffix applies the HasSuffix predicate on the "curated_data_uri" field.
func CuratedDataURIHasSuffix(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldHasSuffix(FieldCuratedDataURI, v))
}

// CuratedDataURIIsNil applies the IsNil predicate on the "curated_data_uri" field.
func CuratedDataURIIsNil() predicate.CurationJob {
	return predicate.CurationJob(sql.FieldIsNull(FieldCuratedDataURI))
}

// CuratedDataURINotNil applies the NotNil predicate on the "curated_data_uri" field.
func CuratedDataURINotNil() predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNotNull(FieldCuratedDataURI))
}

// CuratedDataURIEqualFold applies the EqualFold predicate on the "curated_data_uri" field.
func CuratedDataURIEqualFold(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEqualFold(FieldCuratedDataURI, v))
}

// CuratedDataURIContainsFold applies the ContainsFold predicate on the "curated_data_uri" field.
func CuratedDataURIContainsFold(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldContainsFold(FieldCuratedDataURI, v))
}

// ImagesForFeedbackIsNil applies the IsNil predicate on the "images_for_feedback" field.
func ImagesForFeedbackIsNil() predicate.CurationJob {
	return predicate.CurationJob(sql.FieldIsNull(FieldImagesForFeedback))
}

// ImagesForFeedbackNotNil applies the NotNil predicate on the "images_for_feedback" field.
func ImagesForFeedbackNotNil() predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNotNull(FieldImagesForFeedback))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.CurationJob {
	return predicate.CurationJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CurationJob {
	return predicate.CurationJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CurationJob) predicate.CurationJob {
	return predicate.CurationJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CurationJob) predicate.CurationJob {
	return predicate.CurationJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CurationJob) predicate.CurationJob {
	return predicate.CurationJob(sql.NotPredicates(p))
}
