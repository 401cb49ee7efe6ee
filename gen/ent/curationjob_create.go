// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/meridian-ml/data-curator/gen/ent/curationjob"
)

// CurationJobCreate is the builder for creating a CurationJob entity.
type CurationJobCreate struct {
	config
	mutation *CurationJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *CurationJobCreate) SetProjectID(v string) *CurationJobCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CurationJobCreate) SetStatus(v string) *CurationJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetRawDataURI sets the "raw_data_uri" field.
func (_c *CurationJobCreate) SetRawDataURI(v string) *CurationJobCreate {
	_c.mutation.SetRawDataURI(v)
	return _c
}

// SetCuratedDataURI sets the "curated_data_uri" field.
func (_c *CurationJobCreate) SetCuratedDataURI(v string) *CurationJobCreate {
	_c.mutation.SetCuratedDataURI(v)
	return _c
}

// SetNillableCuratedDataURI sets the "curated_data_uri" field if the given value is not nil.
func (_c *CurationJobCreate) SetNillableCuratedDataURI(v *string) *CurationJobCreate {
	if v != nil {
		_c.SetCuratedDataURI(*v)
	}
	return _c
}

// SetImagesForFeedback sets the "images_for_feedback" field.
func (_c *CurationJobCreate) SetImagesForFeedback(v json.RawMessage) *CurationJobCreate {
	_c.mutation.SetImagesForFeedback(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CurationJobCreate) SetErrorMessage(v string) *CurationJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CurationJobCreate) SetNillableErrorMessage(v *string) *CurationJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *CurationJobCreate) SetVersion(v int) *CurationJobCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *CurationJobCreate) SetNillableVersion(v *int) *CurationJobCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CurationJobCreate) SetCreatedAt(v time.Time) *CurationJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CurationJobCreate) SetNillableCreatedAt(v *time.Time) *CurationJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CurationJobCreate) SetUpdatedAt(v time.Time) *CurationJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CurationJobCreate) SetNillableUpdatedAt(v *time.Time) *CurationJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CurationJobCreate) SetID(v uuid.UUID) *CurationJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CurationJobCreate) SetNillableID(v *uuid.UUID) *CurationJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CurationJobMutation object of the builder.
func (_c *CurationJobCreate) Mutation() *CurationJobMutation {
	return _c.mutation
}

// Save creates the CurationJob in the database.
func (_c *CurationJobCreate) Save(ctx context.Context) (*CurationJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CurationJobCreate) SaveX(ctx context.Context) *CurationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CurationJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CurationJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CurationJobCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := curationjob.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := curationjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := curationjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := curationjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CurationJobCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "CurationJob.project_id"`)}
	}
	if v, ok := _c.mutation.ProjectID(); ok {
		if err := curationjob.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "CurationJob.project_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CurationJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := curationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CurationJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawDataURI(); !ok {
		return &ValidationError{Name: "raw_data_uri", err: errors.New(`ent: missing required field "CurationJob.raw_data_uri"`)}
	}
	if v, ok := _c.mutation.RawDataURI(); ok {
		if err := curationjob.RawDataURIValidator(v); err != nil {
			return &ValidationError{Name: "raw_data_uri", err: fmt.Errorf(`ent: validator failed for field "CurationJob.raw_data_uri": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "CurationJob.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CurationJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CurationJob.updated_at"`)}
	}
	return nil
}

func (_c *CurationJobCreate) sqlSave(ctx context.Context) (*CurationJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CurationJobCreate) createSpec() (*CurationJob, *sqlgraph.CreateSpec) {
	var (
		_node = &CurationJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(curationjob.Table, sqlgraph.NewFieldSpec(curationjob.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(curationjob.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(curationjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RawDataURI(); ok {
		_spec.SetField(curationjob.FieldRawDataURI, field.TypeString, value)
		_node.RawDataURI = value
	}
	if value, ok := _c.mutation.CuratedDataURI(); ok {
		_spec.SetField(curationjob.FieldCuratedDataURI, field.TypeString, value)
		_node.CuratedDataURI = &value
	}
	if value, ok := _c.mutation.ImagesForFeedback(); ok {
		_spec.SetField(curationjob.FieldImagesForFeedback, field.TypeJSON, value)
		_node.ImagesForFeedback = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(curationjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(curationjob.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(curationjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(curationjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CurationJob.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CurationJobUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *CurationJobCreate) OnConflict(opts ...sql.ConflictOption) *CurationJobUpsertOne {
	_c.conflict = opts
	return &CurationJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CurationJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CurationJobCreate) OnConflictColumns(columns ...string) *CurationJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CurationJobUpsertOne{
		create: _c,
	}
}

type (
	// CurationJobUpsertOne is the builder for "upsert"-ing
	//  one CurationJob node.
	CurationJobUpsertOne struct {
		create *CurationJobCreate
	}

	// CurationJobUpsert is the "OnConflict" setter.
	CurationJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetProjectID sets the "project_id" field.
func (u *CurationJobUpsert) SetProjectID(v string) *CurationJobUpsert {
	u.Set(curationjob.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *CurationJobUpsert) UpdateProjectID() *CurationJobUpsert {
	u.SetExcluded(curationjob.FieldProjectID)
	return u
}

// SetStatus sets the "status" field.
func (u *CurationJobUpsert) SetStatus(v string) *CurationJobUpsert {
	u.Set(curationjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CurationJobUpsert) UpdateStatus() *CurationJobUpsert {
	u.SetExcluded(curationjob.FieldStatus)
	return u
}

// SetRawDataURI sets the "raw_data_uri" field.
func (u *CurationJobUpsert) SetRawDataURI(v string) *CurationJobUpsert {
	u.Set(curationjob.FieldRawDataURI, v)
	return u
}

// UpdateRawDataURI sets the "raw_data_uri" field to the value that was provided on create.
func (u *CurationJobUpsert) UpdateRawDataURI() *CurationJobUpsert {
	u.SetExcluded(curationjob.FieldRawDataURI)
	return u
}

// SetCuratedDataURI sets the "curated_data_uri" field.
func (u *CurationJobUpsert) SetCuratedDataURI(v string) *CurationJobUpsert {
	u.Set(curationjob.FieldCuratedDataURI, v)
	return u
}

// UpdateCuratedDataURI sets the "curated_data_uri" field to the value that was provided on create.
func (u *CurationJobUpsert) UpdateCuratedDataURI() *CurationJobUpsert {
	u.SetExcluded(curationjob.FieldCuratedDataURI)
	return u
}

// ClearCuratedDataURI clears the value of the "curated_data_uri" field.
func (u *CurationJobUpsert) ClearCuratedDataURI() *CurationJobUpsert {
	u.SetNull(curationjob.FieldCuratedDataURI)
	return u
}

// SetImagesForFeedback sets the "images_for_feedback" field.
func (u *CurationJobUpsert) SetImagesForFeedback(v json.RawMessage) *CurationJobUpsert {
	u.Set(curationjob.FieldImagesForFeedback, v)
	return u
}

// UpdateImagesForFeedback sets the "images_for_feedback" field to the value that was provided on create.
func (u *CurationJobUpsert) UpdateImagesForFeedback() *CurationJobUpsert {
	u.SetExcluded(curationjob.FieldImagesForFeedback)
	return u
}

// ClearImagesForFeedback clears the value of the "images_for_feedback" field.
func (u *CurationJobUpsert) ClearImagesForFeedback() *CurationJobUpsert {
	u.SetNull(curationjob.FieldImagesForFeedback)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *CurationJobUpsert) SetErrorMessage(v string) *CurationJobUpsert {
	u.Set(curationjob.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CurationJobUpsert) UpdateErrorMessage() *CurationJobUpsert {
	u.SetExcluded(curationjob.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CurationJobUpsert) ClearErrorMessage() *CurationJobUpsert {
	u.SetNull(curationjob.FieldErrorMessage)
	return u
}

// SetVersion sets the "version" field.
func (u *CurationJobUpsert) SetVersion(v int) *CurationJobUpsert {
	u.Set(curationjob.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *CurationJobUpsert) UpdateVersion() *CurationJobUpsert {
	u.SetExcluded(curationjob.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *CurationJobUpsert) AddVersion(v int) *CurationJobUpsert {
	u.Add(curationjob.FieldVersion, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CurationJobUpsert) SetUpdatedAt(v time.Time) *CurationJobUpsert {
	u.Set(curationjob.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CurationJobUpsert) UpdateUpdatedAt() *CurationJobUpsert {
	u.SetExcluded(curationjob.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CurationJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(curationjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CurationJobUpsertOne) UpdateNewValues() *CurationJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(curationjob.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(curationjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CurationJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CurationJobUpsertOne) Ignore() *CurationJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CurationJobUpsertOne) DoNothing() *CurationJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CurationJobCreate.OnConflict
// documentation for more info.
func (u *CurationJobUpsertOne) Update(set func(*CurationJobUpsert)) *CurationJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CurationJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *CurationJobUpsertOne) SetProjectID(v string) *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *CurationJobUpsertOne) UpdateProjectID() *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateProjectID()
	})
}

// SetStatus sets the "status" field.
func (u *CurationJobUpsertOne) SetStatus(v string) *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CurationJobUpsertOne) UpdateStatus() *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateStatus()
	})
}

// SetRawDataURI sets the "raw_data_uri" field.
func (u *CurationJobUpsertOne) SetRawDataURI(v string) *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetRawDataURI(v)
	})
}

// UpdateRawDataURI sets the "raw_data_uri" field to the value that was provided on create.
func (u *CurationJobUpsertOne) UpdateRawDataURI() *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateRawDataURI()
	})
}

// SetCuratedDataURI sets the "curated_data_uri" field.
func (u *CurationJobUpsertOne) SetCuratedDataURI(v string) *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetCuratedDataURI(v)
	})
}

// UpdateCuratedDataURI sets the "curated_data_uri" field to the value that was provided on create.
func (u *CurationJobUpsertOne) UpdateCuratedDataURI() *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateCuratedDataURI()
	})
}

// ClearCuratedDataURI clears the value of the "curated_data_uri" field.
func (u *CurationJobUpsertOne) ClearCuratedDataURI() *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.ClearCuratedDataURI()
	})
}

// SetImagesForFeedback sets the "images_for_feedback" field.
func (u *CurationJobUpsertOne) SetImagesForFeedback(v json.RawMessage) *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetImagesForFeedback(v)
	})
}

// UpdateImagesForFeedback sets the "images_for_feedback" field to the value that was provided on create.
func (u *CurationJobUpsertOne) UpdateImagesForFeedback() *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateImagesForFeedback()
	})
}

// ClearImagesForFeedback clears the value of the "images_for_feedback" field.
func (u *CurationJobUpsertOne) ClearImagesForFeedback() *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.ClearImagesForFeedback()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *CurationJobUpsertOne) SetErrorMessage(v string) *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CurationJobUpsertOne) UpdateErrorMessage() *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CurationJobUpsertOne) ClearErrorMessage() *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetVersion sets the "version" field.
func (u *CurationJobUpsertOne) SetVersion(v int) *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *CurationJobUpsertOne) AddVersion(v int) *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *CurationJobUpsertOne) UpdateVersion() *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CurationJobUpsertOne) SetUpdatedAt(v time.Time) *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CurationJobUpsertOne) UpdateUpdatedAt() *CurationJobUpsertOne {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CurationJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CurationJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CurationJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CurationJobUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CurationJobUpsertOne.ID is not supported by MySQL driver. Use CurationJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CurationJobUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CurationJobCreateBulk is the builder for creating many CurationJob entities in bulk.
type CurationJobCreateBulk struct {
	config
	err      error
	builders []*CurationJobCreate
	conflict []sql.ConflictOption
}

// Save creates the CurationJob entities in the database.
func (_c *CurationJobCreateBulk) Save(ctx context.Context) ([]*CurationJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CurationJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CurationJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CurationJobCreateBulk) SaveX(ctx context.Context) []*CurationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CurationJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CurationJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CurationJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CurationJobUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *CurationJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *CurationJobUpsertBulk {
	_c.conflict = opts
	return &CurationJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CurationJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CurationJobCreateBulk) OnConflictColumns(columns ...string) *CurationJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CurationJobUpsertBulk{
		create: _c,
	}
}

// CurationJobUpsertBulk is the builder for "upsert"-ing
// a bulk of CurationJob nodes.
type CurationJobUpsertBulk struct {
	create *CurationJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CurationJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(curationjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CurationJobUpsertBulk) UpdateNewValues() *CurationJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(curationjob.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(curationjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CurationJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CurationJobUpsertBulk) Ignore() *CurationJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CurationJobUpsertBulk) DoNothing() *CurationJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CurationJobCreateBulk.OnConflict
// documentation for more info.
func (u *CurationJobUpsertBulk) Update(set func(*CurationJobUpsert)) *CurationJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CurationJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *CurationJobUpsertBulk) SetProjectID(v string) *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *CurationJobUpsertBulk) UpdateProjectID() *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateProjectID()
	})
}

// SetStatus sets the "status" field.
func (u *CurationJobUpsertBulk) SetStatus(v string) *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CurationJobUpsertBulk) UpdateStatus() *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateStatus()
	})
}

// SetRawDataURI sets the "raw_data_uri" field.
func (u *CurationJobUpsertBulk) SetRawDataURI(v string) *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetRawDataURI(v)
	})
}

// UpdateRawDataURI sets the "raw_data_uri" field to the value that was provided on create.
func (u *CurationJobUpsertBulk) UpdateRawDataURI() *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateRawDataURI()
	})
}

// SetCuratedDataURI sets the "curated_data_uri" field.
func (u *CurationJobUpsertBulk) SetCuratedDataURI(v string) *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetCuratedDataURI(v)
	})
}

// UpdateCuratedDataURI sets the "curated_data_uri" field to the value that was provided on create.
func (u *CurationJobUpsertBulk) UpdateCuratedDataURI() *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateCuratedDataURI()
	})
}

// ClearCuratedDataURI clears the value of the "curated_data_uri" field.
func (u *CurationJobUpsertBulk) ClearCuratedDataURI() *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.ClearCuratedDataURI()
	})
}

// SetImagesForFeedback sets the "images_for_feedback" field.
func (u *CurationJobUpsertBulk) SetImagesForFeedback(v json.RawMessage) *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetImagesForFeedback(v)
	})
}

// UpdateImagesForFeedback sets the "images_for_feedback" field to the value that was provided on create.
func (u *CurationJobUpsertBulk) UpdateImagesForFeedback() *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateImagesForFeedback()
	})
}

// ClearImagesForFeedback clears the value of the "images_for_feedback" field.
func (u *CurationJobUpsertBulk) ClearImagesForFeedback() *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.ClearImagesForFeedback()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *CurationJobUpsertBulk) SetErrorMessage(v string) *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CurationJobUpsertBulk) UpdateErrorMessage() *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CurationJobUpsertBulk) ClearErrorMessage() *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetVersion sets the "version" field.
func (u *CurationJobUpsertBulk) SetVersion(v int) *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *CurationJobUpsertBulk) AddVersion(v int) *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *CurationJobUpsertBulk) UpdateVersion() *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CurationJobUpsertBulk) SetUpdatedAt(v time.Time) *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CurationJobUpsertBulk) UpdateUpdatedAt() *CurationJobUpsertBulk {
	return u.Update(func(s *CurationJobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CurationJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CurationJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CurationJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CurationJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
