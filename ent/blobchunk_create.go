// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/blobchunk"
	"github.com/docrouter-ce/docrouter/ent/blobobject"
)

// BlobChunkCreate is the builder for creating a BlobChunk entity.
type BlobChunkCreate struct {
	config
	mutation *BlobChunkMutation
	hooks    []Hook
}

// SetBlobID sets the "blob_id" field.
func (_c *BlobChunkCreate) SetBlobID(v string) *BlobChunkCreate {
	_c.mutation.SetBlobID(v)
	return _c
}

// SetN sets the "n" field.
func (_c *BlobChunkCreate) SetN(v int) *BlobChunkCreate {
	_c.mutation.SetN(v)
	return _c
}

// SetData sets the "data" field.
func (_c *BlobChunkCreate) SetData(v []byte) *BlobChunkCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BlobChunkCreate) SetID(v string) *BlobChunkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BlobChunkCreate) SetNillableID(v *string) *BlobChunkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBlob sets the "blob" edge to the BlobObject entity.
func (_c *BlobChunkCreate) SetBlob(v *BlobObject) *BlobChunkCreate {
	return _c.SetBlobID(v.ID)
}

// Mutation returns the BlobChunkMutation object of the builder.
func (_c *BlobChunkCreate) Mutation() *BlobChunkMutation {
	return _c.mutation
}

// Save creates the BlobChunk in the database.
func (_c *BlobChunkCreate) Save(ctx context.Context) (*BlobChunk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlobChunkCreate) SaveX(ctx context.Context) *BlobChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlobChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlobChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlobChunkCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := blobchunk.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlobChunkCreate) check() error {
	if _, ok := _c.mutation.BlobID(); !ok {
		return &ValidationError{Name: "blob_id", err: errors.New(`ent: missing required field "BlobChunk.blob_id"`)}
	}
	if _, ok := _c.mutation.N(); !ok {
		return &ValidationError{Name: "n", err: errors.New(`ent: missing required field "BlobChunk.n"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "BlobChunk.data"`)}
	}
	if len(_c.mutation.BlobIDs()) == 0 {
		return &ValidationError{Name: "blob", err: errors.New(`ent: missing required edge "BlobChunk.blob"`)}
	}
	return nil
}

func (_c *BlobChunkCreate) sqlSave(ctx context.Context) (*BlobChunk, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected BlobChunk.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlobChunkCreate) createSpec() (*BlobChunk, *sqlgraph.CreateSpec) {
	var (
		_node = &BlobChunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blobchunk.Table, sqlgraph.NewFieldSpec(blobchunk.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.N(); ok {
		_spec.SetField(blobchunk.FieldN, field.TypeInt, value)
		_node.N = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(blobchunk.FieldData, field.TypeBytes, value)
		_node.Data = value
	}
	if nodes := _c.mutation.BlobIDs(); len(nodes) > 0 {
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
		_node.BlobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BlobChunkCreateBulk is the builder for creating many BlobChunk entities in bulk.
type BlobChunkCreateBulk struct {
	config
	err      error
	builders []*BlobChunkCreate
}

// Save creates the BlobChunk entities in the database.
func (_c *BlobChunkCreateBulk) Save(ctx context.Context) ([]*BlobChunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlobChunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlobChunkMutation)
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
func (_c *BlobChunkCreateBulk) SaveX(ctx context.Context) []*BlobChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlobChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlobChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
