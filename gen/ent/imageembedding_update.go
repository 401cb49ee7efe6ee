// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/meridian-ml/data-curator/gen/ent/imageembedding"
	"github.com/meridian-ml/data-curator/gen/ent/predicate"
)

// ImageEmbeddingUpdate is the builder for updating ImageEmbedding entities.
type ImageEmbeddingUpdate struct {
	config
	hooks    []Hook
	mutation *ImageEmbeddingMutation
}

// Where appends a list predicates to the ImageEmbeddingUpdate builder.
func (_u *ImageEmbeddingUpdate) Where(ps ...predicate.ImageEmbedding) *ImageEmbeddingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ImageEmbeddingUpdate) SetProjectID(v string) *ImageEmbeddingUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ImageEmbeddingUpdate) SetNillableProjectID(v *string) *ImageEmbeddingUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetImageURI sets the "image_uri" field.
func (_u *ImageEmbeddingUpdate) SetImageURI(v string) *ImageEmbeddingUpdate {
	_u.mutation.SetImageURI(v)
	return _u
}

// SetNillableImageURI sets the "image_uri" field if the given value is not nil.
func (_u *ImageEmbeddingUpdate) SetNillableImageURI(v *string) *ImageEmbeddingUpdate {
	if v != nil {
		_u.SetImageURI(*v)
	}
	return _u
}

// SetVector sets the "vector" field.
func (_u *ImageEmbeddingUpdate) SetVector(v []float32) *ImageEmbeddingUpdate {
	_u.mutation.SetVector(v)
	return _u
}

// AppendVector appends value to the "vector" field.
func (_u *ImageEmbeddingUpdate) AppendVector(v []float32) *ImageEmbeddingUpdate {
	_u.mutation.AppendVector(v)
	return _u
}

// Mutation returns the ImageEmbeddingMutation object of the builder.
func (_u *ImageEmbeddingUpdate) Mutation() *ImageEmbeddingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImageEmbeddingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImageEmbeddingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImageEmbeddingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImageEmbeddingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImageEmbeddingUpdate) check() error {
	if v, ok := _u.mutation.ProjectID(); ok {
		if err := imageembedding.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "ImageEmbedding.project_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageURI(); ok {
		if err := imageembedding.ImageURIValidator(v); err != nil {
			return &ValidationError{Name: "image_uri", err: fmt.Errorf(`ent: validator failed for field "ImageEmbedding.image_uri": %w`, err)}
		}
	}
	return nil
}

func (_u *ImageEmbeddingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(imageembedding.Table, imageembedding.Columns, sqlgraph.NewFieldSpec(imageembedding.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(imageembedding.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURI(); ok {
		_spec.SetField(imageembedding.FieldImageURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vector(); ok {
		_spec.SetField(imageembedding.FieldVector, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVector(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, imageembedding.FieldVector, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{imageembedding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImageEmbeddingUpdateOne is the builder for updating a single ImageEmbedding entity.
type ImageEmbeddingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImageEmbeddingMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ImageEmbeddingUpdateOne) SetProjectID(v string) *ImageEmbeddingUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ImageEmbeddingUpdateOne) SetNillableProjectID(v *string) *ImageEmbeddingUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetImageURI sets the "image_uri" field.
func (_u *ImageEmbeddingUpdateOne) SetImageURI(v string) *ImageEmbeddingUpdateOne {
	_u.mutation.SetImageURI(v)
	return _u
}

// SetNillableImageURI sets the "image_uri" field if the given value is not nil.
func (_u *ImageEmbeddingUpdateOne) SetNillableImageURI(v *string) *ImageEmbeddingUpdateOne {
	if v != nil {
		_u.SetImageURI(*v)
	}
	return _u
}

// SetVector sets the "vector" field.
func (_u *ImageEmbeddingUpdateOne) SetVector(v []float32) *ImageEmbeddingUpdateOne {
	_u.mutation.SetVector(v)
	return _u
}

// AppendVector appends value to the "vector" field.
func (_u *ImageEmbeddingUpdateOne) AppendVector(v []float32) *ImageEmbeddingUpdateOne {
	_u.mutation.AppendVector(v)
	return _u
}

// Mutation returns the ImageEmbeddingMutation object of the builder.
func (_u *ImageEmbeddingUpdateOne) Mutation() *ImageEmbeddingMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImageEmbeddingUpdate builder.
func (_u *ImageEmbeddingUpdateOne) Where(ps ...predicate.ImageEmbedding) *ImageEmbeddingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImageEmbeddingUpdateOne) Select(field string, fields ...string) *ImageEmbeddingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImageEmbedding entity.
func (_u *ImageEmbeddingUpdateOne) Save(ctx context.Context) (*ImageEmbedding, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImageEmbeddingUpdateOne) SaveX(ctx context.Context) *ImageEmbedding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImageEmbeddingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImageEmbeddingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImageEmbeddingUpdateOne) check() error {
	if v, ok := _u.mutation.ProjectID(); ok {
		if err := imageembedding.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "ImageEmbedding.project_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageURI(); ok {
		if err := imageembedding.ImageURIValidator(v); err != nil {
			return &ValidationError{Name: "image_uri", err: fmt.Errorf(`ent: validator failed for field "ImageEmbedding.image_uri": %w`, err)}
		}
	}
	return nil
}

func (_u *ImageEmbeddingUpdateOne) sqlSave(ctx context.Context) (_node *ImageEmbedding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(imageembedding.Table, imageembedding.Columns, sqlgraph.NewFieldSpec(imageembedding.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImageEmbedding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, imageembedding.FieldID)
		for _, f := range fields {
			if !imageembedding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != imageembedding.FieldID {
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
		_spec.SetField(imageembedding.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURI(); ok {
		_spec.SetField(imageembedding.FieldImageURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vector(); ok {
		_spec.SetField(imageembedding.FieldVector, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVector(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, imageembedding.FieldVector, value)
		})
	}
	_node = &ImageEmbedding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{imageembedding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
