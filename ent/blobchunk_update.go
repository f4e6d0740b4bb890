// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/blobchunk"
	"github.com/docrouter-ce/docrouter/ent/blobobject"
	"github.com/docrouter-ce/docrouter/ent/predicate"
)

// BlobChunkUpdate is the builder for updating BlobChunk entities.
type BlobChunkUpdate struct {
	config
	hooks    []Hook
	mutation *BlobChunkMutation
}

// Where appends a list predicates to the BlobChunkUpdate builder.
func (_u *BlobChunkUpdate) Where(ps ...predicate.BlobChunk) *BlobChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBlobID sets the "blob_id" field.
func (_u *BlobChunkUpdate) SetBlobID(v string) *BlobChunkUpdate {
	_u.mutation.SetBlobID(v)
	return _u
}

// SetNillableBlobID sets the "blob_id" field if the given value is not nil.
func (_u *BlobChunkUpdate) SetNillableBlobID(v *string) *BlobChunkUpdate {
	if v != nil {
		_u.SetBlobID(*v)
	}
	return _u
}

// SetN sets the "n" field.
func (_u *BlobChunkUpdate) SetN(v int) *BlobChunkUpdate {
	_u.mutation.ResetN()
	_u.mutation.SetN(v)
	return _u
}

// SetNillableN sets the "n" field if the given value is not nil.
func (_u *BlobChunkUpdate) SetNillableN(v *int) *BlobChunkUpdate {
	if v != nil {
		_u.SetN(*v)
	}
	return _u
}

// AddN adds value to the "n" field.
func (_u *BlobChunkUpdate) AddN(v int) *BlobChunkUpdate {
	_u.mutation.AddN(v)
	return _u
}

// SetData sets the "data" field.
func (_u *BlobChunkUpdate) SetData(v []byte) *BlobChunkUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetBlob sets the "blob" edge to the BlobObject entity.
func (_u *BlobChunkUpdate) SetBlob(v *BlobObject) *BlobChunkUpdate {
	return _u.SetBlobID(v.ID)
}

// Mutation returns the BlobChunkMutation object of the builder.
func (_u *BlobChunkUpdate) Mutation() *BlobChunkMutation {
	return _u.mutation
}

// ClearBlob clears the "blob" edge to the BlobObject entity.
func (_u *BlobChunkUpdate) ClearBlob() *BlobChunkUpdate {
	_u.mutation.ClearBlob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlobChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlobChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlobChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlobChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlobChunkUpdate) check() error {
	if _u.mutation.BlobCleared() && len(_u.mutation.BlobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BlobChunk.blob"`)
	}
	return nil
}

func (_u *BlobChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blobchunk.Table, blobchunk.Columns, sqlgraph.NewFieldSpec(blobchunk.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.N(); ok {
		_spec.SetField(blobchunk.FieldN, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedN(); ok {
		_spec.AddField(blobchunk.FieldN, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(blobchunk.FieldData, field.TypeBytes, value)
	}
	if _u.mutation.BlobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blobchunk.BlobTable,
			Columns: []string{blobchunk.BlobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blobobject.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blobchunk.BlobTable,
			Columns: []string{blobchunk.BlobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blobobject.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blobchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlobChunkUpdateOne is the builder for updating a single BlobChunk entity.
type BlobChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlobChunkMutation
}

// SetBlobID sets the "blob_id" field.
func (_u *BlobChunkUpdateOne) SetBlobID(v string) *BlobChunkUpdateOne {
	_u.mutation.SetBlobID(v)
	return _u
}

// SetNillableBlobID sets the "blob_id" field if the given value is not nil.
func (_u *BlobChunkUpdateOne) SetNillableBlobID(v *string) *BlobChunkUpdateOne {
	if v != nil {
		_u.SetBlobID(*v)
	}
	return _u
}

// SetN sets the "n" field.
func (_u *BlobChunkUpdateOne) SetN(v int) *BlobChunkUpdateOne {
	_u.mutation.ResetN()
	_u.mutation.SetN(v)
	return _u
}

// SetNillableN sets the "n" field if the given value is not nil.
func (_u *BlobChunkUpdateOne) SetNillableN(v *int) *BlobChunkUpdateOne {
	if v != nil {
		_u.SetN(*v)
	}
	return _u
}

// AddN adds value to the "n" field.
func (_u *BlobChunkUpdateOne) AddN(v int) *BlobChunkUpdateOne {
	_u.mutation.AddN(v)
	return _u
}

// SetData sets the "data" field.
func (_u *BlobChunkUpdateOne) SetData(v []byte) *BlobChunkUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetBlob sets the "blob" edge to the BlobObject entity.
func (_u *BlobChunkUpdateOne) SetBlob(v *BlobObject) *BlobChunkUpdateOne {
	return _u.SetBlobID(v.ID)
}

// Mutation returns the BlobChunkMutation object of the builder.
func (_u *BlobChunkUpdateOne) Mutation() *BlobChunkMutation {
	return _u.mutation
}

// ClearBlob clears the "blob" edge to the BlobObject entity.
func (_u *BlobChunkUpdateOne) ClearBlob() *BlobChunkUpdateOne {
	_u.mutation.ClearBlob()
	return _u
}

// Where appends a list predicates to the BlobChunkUpdate builder.
func (_u *BlobChunkUpdateOne) Where(ps ...predicate.BlobChunk) *BlobChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlobChunkUpdateOne) Select(field string, fields ...string) *BlobChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlobChunk entity.
func (_u *BlobChunkUpdateOne) Save(ctx context.Context) (*BlobChunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlobChunkUpdateOne) SaveX(ctx context.Context) *BlobChunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlobChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlobChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlobChunkUpdateOne) check() error {
	if _u.mutation.BlobCleared() && len(_u.mutation.BlobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BlobChunk.blob"`)
	}
	return nil
}

func (_u *BlobChunkUpdateOne) sqlSave(ctx context.Context) (_node *BlobChunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blobchunk.Table, blobchunk.Columns, sqlgraph.NewFieldSpec(blobchunk.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlobChunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blobchunk.FieldID)
		for _, f := range fields {
			if !blobchunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blobchunk.FieldID {
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
	if value, ok := _u.mutation.N(); ok {
		_spec.SetField(blobchunk.FieldN, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedN(); ok {
		_spec.AddField(blobchunk.FieldN, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(blobchunk.FieldData, field.TypeBytes, value)
	}
	if _u.mutation.BlobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blobchunk.BlobTable,
			Columns: []string{blobchunk.BlobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blobobject.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blobchunk.BlobTable,
			Columns: []string{blobchunk.BlobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blobobject.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BlobChunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blobchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
