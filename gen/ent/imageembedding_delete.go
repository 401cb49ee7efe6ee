// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meridian-ml/data-curator/gen/ent/imageembedding"
	"github.com/meridian-ml/data-curator/gen/ent/predicate"
)

// ImageEmbeddingDelete is the builder for deleting a ImageEmbedding entity.
type ImageEmbeddingDelete struct {
	config
	hooks    []Hook
	mutation *ImageEmbeddingMutation
}

// Where appends a list predicates to the ImageEmbeddingDelete builder.
func (_d *ImageEmbeddingDelete) Where(ps ...predicate.ImageEmbedding) *ImageEmbeddingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ImageEmbeddingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ImageEmbeddingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ImageEmbeddingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(imageembedding.Table, sqlgraph.NewFieldSpec(imageembedding.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ImageEmbeddingDeleteOne is the builder for deleting a single ImageEmbedding entity.
type ImageEmbeddingDeleteOne struct {
	_d *ImageEmbeddingDelete
}

// Where appends a list predicates to the ImageEmbeddingDelete builder.
func (_d *ImageEmbeddingDeleteOne) Where(ps ...predicate.ImageEmbedding) *ImageEmbeddingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ImageEmbeddingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{imageembedding.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ImageEmbeddingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
