// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/meridian-ml/data-curator/gen/ent/curationjob"
	"github.com/meridian-ml/data-curator/gen/ent/predicate"
)

// CurationJobUpdate is the builder for updating CurationJob entities.
type CurationJobUpdate struct {
	config
	hooks    []Hook
	mutation *CurationJobMutation
}

// Where appends a list predicates to the CurationJobUpdate builder.
func (_u *CurationJobUpdate) Where(ps ...predicate.CurationJob) *CurationJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *CurationJobUpdate) SetProjectID(v string) *CurationJobUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *CurationJobUpdate) SetNillableProjectID(v *string) *CurationJobUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CurationJobUpdate) SetStatus(v string) *CurationJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CurationJobUpdate) SetNillableStatus(v *string) *CurationJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRawDataURI sets the "raw_data_uri" field.
func (_u *CurationJobUpdate) SetRawDataURI(v string) *CurationJobUpdate {
	_u.mutation.SetRawDataURI(v)
	return _u
}

// SetNillableRawDataURI sets the "raw_data_uri" field if the given value is not nil.
func (_u *CurationJobUpdate) SetNillableRawDataURI(v *string) *CurationJobUpdate {
	if v != nil {
		_u.SetRawDataURI(*v)
	}
	return _u
}

// SetCuratedDataURI sets the "curated_data_uri" field.
func (_u *CurationJobUpdate) SetCuratedDataURI(v string) *CurationJobUpdate {
	_u.mutation.SetCuratedDataURI(v)
	return _u
}

// SetNillableCuratedDataURI sets the "curated_data_uri" field if the given value is not nil.
func (_u *CurationJobUpdate) SetNillableCuratedDataURI(v *string) *CurationJobUpdate {
	if v != nil {
		_u.SetCuratedDataURI(*v)
	}
	return _u
}

// ClearCuratedDataURI clears the value of the "curated_data_uri" field.
func (_u *CurationJobUpdate) ClearCuratedDataURI() *CurationJobUpdate {
	_u.mutation.ClearCuratedDataURI()
	return _u
}

// SetImagesForFeedback sets the "images_for_feedback" field.
func (_u *CurationJobUpdate) SetImagesForFeedback(v json.RawMessage) *CurationJobUpdate {
	_u.mutation.SetImagesForFeedback(v)
	return _u
}

// AppendImagesForFeedback appends value to the "images_for_feedback" field.
func (_u *CurationJobUpdate) AppendImagesForFeedback(v json.RawMessage) *CurationJobUpdate {
	_u.mutation.AppendImagesForFeedback(v)
	return _u
}

// ClearImagesForFeedback clears the value of the "images_for_feedback" field.
func (_u *CurationJobUpdate) ClearImagesForFeedback() *CurationJobUpdate {
	_u.mutation.ClearImagesForFeedback()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CurationJobUpdate) SetErrorMessage(v string) *CurationJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CurationJobUpdate) SetNillableErrorMessage(v *string) *CurationJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CurationJobUpdate) ClearErrorMessage() *CurationJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetVersion sets the "version" field.
func (_u *CurationJobUpdate) SetVersion(v int) *CurationJobUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CurationJobUpdate) SetNillableVersion(v *int) *CurationJobUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CurationJobUpdate) AddVersion(v int) *CurationJobUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CurationJobUpdate) SetUpdatedAt(v time.Time) *CurationJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CurationJobUpdate) SetNillableUpdatedAt(v *time.Time) *CurationJobUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the CurationJobMutation object of the builder.
func (_u *CurationJobUpdate) Mutation() *CurationJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CurationJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CurationJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CurationJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CurationJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CurationJobUpdate) check() error {
	if v, ok := _u.mutation.ProjectID(); ok {
		if err := curationjob.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "CurationJob.project_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := curationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CurationJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawDataURI(); ok {
		if err := curationjob.RawDataURIValidator(v); err != nil {
			return &ValidationError{Name: "raw_data_uri", err: fmt.Errorf(`ent: validator failed for field "CurationJob.raw_data_uri": %w`, err)}
		}
	}
	return nil
}

func (_u *CurationJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(curationjob.Table, curationjob.Columns, sqlgraph.NewFieldSpec(curationjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(curationjob.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(curationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawDataURI(); ok {
		_spec.SetField(curationjob.FieldRawDataURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.CuratedDataURI(); ok {
		_spec.SetField(curationjob.FieldCuratedDataURI, field.TypeString, value)
	}
	if _u.mutation.CuratedDataURICleared() {
		_spec.ClearField(curationjob.FieldCuratedDataURI, field.TypeString)
	}
	if value, ok := _u.mutation.ImagesForFeedback(); ok {
		_spec.SetField(curationjob.FieldImagesForFeedback, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImagesForFeedback(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, curationjob.FieldImagesForFeedback, value)
		})
	}
	if _u.mutation.ImagesForFeedbackCleared() {
		_spec.ClearField(curationjob.FieldImagesForFeedback, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(curationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(curationjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(curationjob.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(curationjob.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(curationjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CurationJobUpdateOne is the builder for updating a single CurationJob entity.
type CurationJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CurationJobMutation
}

// SetProjectID sets the "project_id" field.
func (_u *CurationJobUpdateOne) SetProjectID(v string) *CurationJobUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *CurationJobUpdateOne) SetNillableProjectID(v *string) *CurationJobUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CurationJobUpdateOne) SetStatus(v string) *CurationJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CurationJobUpdateOne) SetNillableStatus(v *string) *CurationJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRawDataURI sets the "raw_data_uri" field.
func (_u *CurationJobUpdateOne) SetRawDataURI(v string) *CurationJobUpdateOne {
	_u.mutation.SetRawDataURI(v)
	return _u
}

// SetNillableRawDataURI sets the "raw_data_uri" field if the given value is not nil.
func (_u *CurationJobUpdateOne) SetNillableRawDataURI(v *string) *CurationJobUpdateOne {
	if v != nil {
		_u.SetRawDataURI(*v)
	}
	return _u
}

// SetCuratedDataURI sets the "curated_data_uri" field.
func (_u *CurationJobUpdateOne) SetCuratedDataURI(v string) *CurationJobUpdateOne {
	_u.mutation.SetCuratedDataURI(v)
	return _u
}

// SetNillableCuratedDataURI sets the "curated_data_uri" field if the given value is not nil.
func (_u *CurationJobUpdateOne) SetNillableCuratedDataURI(v *string) *CurationJobUpdateOne {
	if v != nil {
		_u.SetCuratedDataURI(*v)
	}
	return _u
}

// ClearCuratedDataURI clears the value of the "curated_data_uri" field.
func (_u *CurationJobUpdateOne) ClearCuratedDataURI() *CurationJobUpdateOne {
	_u.mutation.ClearCuratedDataURI()
	return _u
}

// SetImagesForFeedback sets the "images_for_feedback" field.
func (_u *CurationJobUpdateOne) SetImagesForFeedback(v json.RawMessage) *CurationJobUpdateOne {
	_u.mutation.SetImagesForFeedback(v)
	return _u
}

// AppendImagesForFeedback appends value to the "images_for_feedback" field.
func (_u *CurationJobUpdateOne) AppendImagesForFeedback(v json.RawMessage) *CurationJobUpdateOne {
	_u.mutation.AppendImagesForFeedback(v)
	return _u
}

// ClearImagesForFeedback clears the value of the "images_for_feedback" field.
func (_u *CurationJobUpdateOne) ClearImagesForFeedback() *CurationJobUpdateOne {
	_u.mutation.ClearImagesForFeedback()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CurationJobUpdateOne) SetErrorMessage(v string) *CurationJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CurationJobUpdateOne) SetNillableErrorMessage(v *string) *CurationJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CurationJobUpdateOne) ClearErrorMessage() *CurationJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetVersion sets the "version" field.
func (_u *CurationJobUpdateOne) SetVersion(v int) *CurationJobUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CurationJobUpdateOne) SetNillableVersion(v *int) *CurationJobUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CurationJobUpdateOne) AddVersion(v int) *CurationJobUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CurationJobUpdateOne) SetUpdatedAt(v time.Time) *CurationJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CurationJobUpdateOne) SetNillableUpdatedAt(v *time.Time) *CurationJobUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the CurationJobMutation object of the builder.
func (_u *CurationJobUpdateOne) Mutation() *CurationJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the CurationJobUpdate builder.
func (_u *CurationJobUpdateOne) Where(ps ...predicate.CurationJob) *CurationJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CurationJobUpdateOne) Select(field string, fields ...string) *CurationJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CurationJob entity.
func (_u *CurationJobUpdateOne) Save(ctx context.Context) (*CurationJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CurationJobUpdateOne) SaveX(ctx context.Context) *CurationJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CurationJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CurationJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CurationJobUpdateOne) check() error {
	if v, ok := _u.mutation.ProjectID(); ok {
		if err := curationjob.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "CurationJob.project_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := curationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CurationJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawDataURI(); ok {
		if err := curationjob.RawDataURIValidator(v); err != nil {
			return &ValidationError{Name: "raw_data_uri", err: fmt.Errorf(`ent: validator failed for field "CurationJob.raw_data_uri": %w`, err)}
		}
	}
	return nil
}

func (_u *CurationJobUpdateOne) sqlSave(ctx context.Context) (_node *CurationJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(curationjob.Table, curationjob.Columns, sqlgraph.NewFieldSpec(curationjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CurationJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, curationjob.FieldID)
		for _, f := range fields {
			if !curationjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != curationjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(curationjob.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(curationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawDataURI(); ok {
		_spec.SetField(curationjob.FieldRawDataURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.CuratedDataURI(); ok {
		_spec.SetField(curationjob.FieldCuratedDataURI, field.TypeString, value)
	}
	if _u.mutation.CuratedDataURICleared() {
		_spec.ClearField(curationjob.FieldCuratedDataURI, field.TypeString)
	}
	if value, ok := _u.mutation.ImagesForFeedback(); ok {
		_spec.SetField(curationjob.FieldImagesForFeedback, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImagesForFeedback(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, curationjob.FieldImagesForFeedback, value)
		})
	}
	if _u.mutation.ImagesForFeedbackCleared() {
		_spec.ClearField(curationjob.FieldImagesForFeedback, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(curationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(curationjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(curationjob.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(curationjob.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(curationjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CurationJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
