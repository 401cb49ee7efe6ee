// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/meridian-ml/data-curator/gen/ent/imageembedding"
)

// ImageEmbeddingCreate is the builder for creating a ImageEmbedding entity.
type ImageEmbeddingCreate struct {
	config
	mutation *ImageEmbeddingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *ImageEmbeddingCreate) SetProjectID(v string) *ImageEmbeddingCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetImageURI sets the "image_uri" field.
func (_c *ImageEmbeddingCreate) SetImageURI(v string) *ImageEmbeddingCreate {
	_c.mutation.SetImageURI(v)
	return _c
}

// SetVector sets the "vector" field.
func (_c *ImageEmbeddingCreate) SetVector(v []float32) *ImageEmbeddingCreate {
	_c.mutation.SetVector(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ImageEmbeddingCreate) SetCreatedAt(v time.Time) *ImageEmbeddingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ImageEmbeddingCreate) SetNillableCreatedAt(v *time.Time) *ImageEmbeddingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImageEmbeddingCreate) SetID(v uuid.UUID) *ImageEmbeddingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImageEmbeddingCreate) SetNillableID(v *uuid.UUID) *ImageEmbeddingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ImageEmbeddingMutation object of the builder.
func (_c *ImageEmbeddingCreate) Mutation() *ImageEmbeddingMutation {
	return _c.mutation
}

// Save creates the ImageEmbedding in the database.
func (_c *ImageEmbeddingCreate) Save(ctx context.Context) (*ImageEmbedding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImageEmbeddingCreate) SaveX(ctx context.Context) *ImageEmbedding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImageEmbeddingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImageEmbeddingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImageEmbeddingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := imageembedding.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := imageembedding.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImageEmbeddingCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ImageEmbedding.project_id"`)}
	}
	if v, ok := _c.mutation.ProjectID(); ok {
		if err := imageembedding.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "ImageEmbedding.project_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImageURI(); !ok {
		return &ValidationError{Name: "image_uri", err: errors.New(`ent: missing required field "ImageEmbedding.image_uri"`)}
	}
	if v, ok := _c.mutation.ImageURI(); ok {
		if err := imageembedding.ImageURIValidator(v); err != nil {
			return &ValidationError{Name: "image_uri", err: fmt.Errorf(`ent: validator failed for field "ImageEmbedding.image_uri": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Vector(); !ok {
		return &ValidationError{Name: "vector", err: errors.New(`ent: missing required field "ImageEmbedding.vector"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImageEmbedding.created_at"`)}
	}
	return nil
}

func (_c *ImageEmbeddingCreate) sqlSave(ctx context.Context) (*ImageEmbedding, error) {
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

func (_c *ImageEmbeddingCreate) createSpec() (*ImageEmbedding, *sqlgraph.CreateSpec) {
	var (
		_node = &ImageEmbedding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(imageembedding.Table, sqlgraph.NewFieldSpec(imageembedding.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(imageembedding.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.ImageURI(); ok {
		_spec.SetField(imageembedding.FieldImageURI, field.TypeString, value)
		_node.ImageURI = value
	}
	if value, ok := _c.mutation.Vector(); ok {
		_spec.SetField(imageembedding.FieldVector, field.TypeJSON, value)
		_node.Vector = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(imageembedding.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ImageEmbedding.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ImageEmbeddingUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ImageEmbeddingCreate) OnConflict(opts ...sql.ConflictOption) *ImageEmbeddingUpsertOne {
	_c.conflict = opts
	return &ImageEmbeddingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ImageEmbedding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ImageEmbeddingCreate) OnConflictColumns(columns ...string) *ImageEmbeddingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ImageEmbeddingUpsertOne{
		create: _c,
	}
}

type (
	// ImageEmbeddingUpsertOne is the builder for "upsert"-ing
	//  one ImageEmbedding node.
	ImageEmbeddingUpsertOne struct {
		create *ImageEmbeddingCreate
	}

	// ImageEmbeddingUpsert is the "OnConflict" setter.
	ImageEmbeddingUpsert struct {
		*sql.UpdateSet
	}
)

// SetProjectID sets the "project_id" field.
func (u *ImageEmbeddingUpsert) SetProjectID(v string) *ImageEmbeddingUpsert {
	u.Set(imageembedding.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ImageEmbeddingUpsert) UpdateProjectID() *ImageEmbeddingUpsert {
	u.SetExcluded(imageembedding.FieldProjectID)
	return u
}

// SetImageURI sets the "image_uri" field.
func (u *ImageEmbeddingUpsert) SetImageURI(v string) *ImageEmbeddingUpsert {
	u.Set(imageembedding.FieldImageURI, v)
	return u
}

// UpdateImageURI sets the "image_uri" field to the value that was provided on create.
func (u *ImageEmbeddingUpsert) UpdateImageURI() *ImageEmbeddingUpsert {
	u.SetExcluded(imageembedding.FieldImageURI)
	return u
}

// SetVector sets the "vector" field.
func (u *ImageEmbeddingUpsert) SetVector(v []float32) *ImageEmbeddingUpsert {
	u.Set(imageembedding.FieldVector, v)
	return u
}

// UpdateVector sets the "vector" field to the value that was provided on create.
func (u *ImageEmbeddingUpsert) UpdateVector() *ImageEmbeddingUpsert {
	u.SetExcluded(imageembedding.FieldVector)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ImageEmbedding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(imageembedding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ImageEmbeddingUpsertOne) UpdateNewValues() *ImageEmbeddingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(imageembedding.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(imageembedding.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ImageEmbedding.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ImageEmbeddingUpsertOne) Ignore() *ImageEmbeddingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ImageEmbeddingUpsertOne) DoNothing() *ImageEmbeddingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ImageEmbeddingCreate.OnConflict
// documentation for more info.
func (u *ImageEmbeddingUpsertOne) Update(set func(*ImageEmbeddingUpsert)) *ImageEmbeddingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ImageEmbeddingUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ImageEmbeddingUpsertOne) SetProjectID(v string) *ImageEmbeddingUpsertOne {
	return u.Update(func(s *ImageEmbeddingUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ImageEmbeddingUpsertOne) UpdateProjectID() *ImageEmbeddingUpsertOne {
	return u.Update(func(s *ImageEmbeddingUpsert) {
		s.UpdateProjectID()
	})
}

// SetImageURI sets the "image_uri" field.
func (u *ImageEmbeddingUpsertOne) SetImageURI(v string) *ImageEmbeddingUpsertOne {
	return u.Update(func(s *ImageEmbeddingUpsert) {
		s.SetImageURI(v)
	})
}

// UpdateImageURI sets the "image_uri" field to the value that was provided on create.
func (u *ImageEmbeddingUpsertOne) UpdateImageURI() *ImageEmbeddingUpsertOne {
	return u.Update(func(s *ImageEmbeddingUpsert) {
		s.UpdateImageURI()
	})
}

// SetVector sets the "vector" field.
func (u *ImageEmbeddingUpsertOne) SetVector(v []float32) *ImageEmbeddingUpsertOne {
	return u.Update(func(s *ImageEmbeddingUpsert) {
		s.SetVector(v)
	})
}

// UpdateVector sets the "vector" field to the value that was provided on create.
func (u *ImageEmbeddingUpsertOne) UpdateVector() *ImageEmbeddingUpsertOne {
	return u.Update(func(s *ImageEmbeddingUpsert) {
		s.UpdateVector()
	})
}

// Exec executes the query.
func (u *ImageEmbeddingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ImageEmbeddingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ImageEmbeddingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ImageEmbeddingUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ImageEmbeddingUpsertOne.ID is not supported by MySQL driver. Use ImageEmbeddingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ImageEmbeddingUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ImageEmbeddingCreateBulk is the builder for creating many ImageEmbedding entities in bulk.
type ImageEmbeddingCreateBulk struct {
	config
	err      error
	builders []*ImageEmbeddingCreate
	conflict []sql.ConflictOption
}

// Save creates the ImageEmbedding entities in the database.
func (_c *ImageEmbeddingCreateBulk) Save(ctx context.Context) ([]*ImageEmbedding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImageEmbedding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImageEmbeddingMutation)
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
func (_c *ImageEmbeddingCreateBulk) SaveX(ctx context.Context) []*ImageEmbedding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImageEmbeddingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImageEmbeddingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ImageEmbedding.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ImageEmbeddingUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ImageEmbeddingCreateBulk) OnConflict(opts ...sql.ConflictOption) *ImageEmbeddingUpsertBulk {
	_c.conflict = opts
	return &ImageEmbeddingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ImageEmbedding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ImageEmbeddingCreateBulk) OnConflictColumns(columns ...string) *ImageEmbeddingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ImageEmbeddingUpsertBulk{
		create: _c,
	}
}

// ImageEmbeddingUpsertBulk is the builder for "upsert"-ing
// a bulk of ImageEmbedding nodes.
type ImageEmbeddingUpsertBulk struct {
	create *ImageEmbeddingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ImageEmbedding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(imageembedding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ImageEmbeddingUpsertBulk) UpdateNewValues() *ImageEmbeddingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(imageembedding.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(imageembedding.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ImageEmbedding.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ImageEmbeddingUpsertBulk) Ignore() *ImageEmbeddingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ImageEmbeddingUpsertBulk) DoNothing() *ImageEmbeddingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ImageEmbeddingCreateBulk.OnConflict
// documentation for more info.
func (u *ImageEmbeddingUpsertBulk) Update(set func(*ImageEmbeddingUpsert)) *ImageEmbeddingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ImageEmbeddingUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ImageEmbeddingUpsertBulk) SetProjectID(v string) *ImageEmbeddingUpsertBulk {
	return u.Update(func(s *ImageEmbeddingUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ImageEmbeddingUpsertBulk) UpdateProjectID() *ImageEmbeddingUpsertBulk {
	return u.Update(func(s *ImageEmbeddingUpsert) {
		s.UpdateProjectID()
	})
}

// SetImageURI sets the "image_uri" field.
func (u *ImageEmbeddingUpsertBulk) SetImageURI(v string) *ImageEmbeddingUpsertBulk {
	return u.Update(func(s *ImageEmbeddingUpsert) {
		s.SetImageURI(v)
	})
}

// UpdateImageURI sets the "image_uri" field to the value that was provided on create.
func (u *ImageEmbeddingUpsertBulk) UpdateImageURI() *ImageEmbeddingUpsertBulk {
	return u.Update(func(s *ImageEmbeddingUpsert) {
		s.UpdateImageURI()
	})
}

// SetVector sets the "vector" field.
func (u *ImageEmbeddingUpsertBulk) SetVector(v []float32) *ImageEmbeddingUpsertBulk {
	return u.Update(func(s *ImageEmbeddingUpsert) {
		s.SetVector(v)
	})
}

// UpdateVector sets the "vector" field to the value that was provided on create.
func (u *ImageEmbeddingUpsertBulk) UpdateVector() *ImageEmbeddingUpsertBulk {
	return u.Update(func(s *ImageEmbeddingUpsert) {
		s.UpdateVector()
	})
}

// Exec executes the query.
func (u *ImageEmbeddingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ImageEmbeddingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ImageEmbeddingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ImageEmbeddingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
