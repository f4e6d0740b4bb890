// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/blobchunk"
	"github.com/docrouter-ce/docrouter/ent/blobobject"
)

// BlobObjectCreate is the builder for creating a BlobObject entity.
type BlobObjectCreate struct {
	config
	mutation *BlobObjectMutation
	hooks    []Hook
}

// SetBucket sets the "bucket" field.
func (_c *BlobObjectCreate) SetBucket(v string) *BlobObjectCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *BlobObjectCreate) SetKey(v string) *BlobObjectCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *BlobObjectCreate) SetSize(v int64) *BlobObjectCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *BlobObjectCreate) SetMetadata(v map[string]string) *BlobObjectCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetUploadDate sets the "upload_date" field.
func (_c *BlobObjectCreate) SetUploadDate(v time.Time) *BlobObjectCreate {
	_c.mutation.SetUploadDate(v)
	return _c
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_c *BlobObjectCreate) SetNillableUploadDate(v *time.Time) *BlobObjectCreate {
	if v != nil {
		_c.SetUploadDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlobObjectCreate) SetID(v string) *BlobObjectCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BlobObjectCreate) SetNillableID(v *string) *BlobObjectCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddChunkIDs adds the "chunks" edge to the BlobChunk entity by IDs.
func (_c *BlobObjectCreate) AddChunkIDs(ids ...string) *BlobObjectCreate {
	_c.mutation.AddChunkIDs(ids...)
	return _c
}

// AddChunks adds the "chunks" edges to the BlobChunk entity.
func (_c *BlobObjectCreate) AddChunks(v ...*BlobChunk) *BlobObjectCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChunkIDs(ids...)
}

// Mutation returns the BlobObjectMutation object of the builder.
func (_c *BlobObjectCreate) Mutation() *BlobObjectMutation {
	return _c.mutation
}

// Save creates the BlobObject in the database.
func (_c *BlobObjectCreate) Save(ctx context.Context) (*BlobObject, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlobObjectCreate) SaveX(ctx context.Context) *BlobObject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlobObjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlobObjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlobObjectCreate) defaults() {
	if _, ok := _c.mutation.UploadDate(); !ok {
		v := blobobject.DefaultUploadDate()
		_c.mutation.SetUploadDate(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := blobobject.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlobObjectCreate) check() error {
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "BlobObject.bucket"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "BlobObject.key"`)}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "BlobObject.size"`)}
	}
	if _, ok := _c.mutation.UploadDate(); !ok {
		return &ValidationError{Name: "upload_date", err: errors.New(`ent: missing required field "BlobObject.upload_date"`)}
	}
	return nil
}

func (_c *BlobObjectCreate) sqlSave(ctx context.Context) (*BlobObject, error) {
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
			return nil, fmt.Errorf("unexpected BlobObject.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlobObjectCreate) createSpec() (*BlobObject, *sqlgraph.CreateSpec) {
	var (
		_node = &BlobObject{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blobobject.Table, sqlgraph.NewFieldSpec(blobobject.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(blobobject.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(blobobject.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(blobobject.FieldSize, field.TypeInt64, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(blobobject.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.UploadDate(); ok {
		_spec.SetField(blobobject.FieldUploadDate, field.TypeTime, value)
		_node.UploadDate = value
	}
	if nodes := _c.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blobobject.ChunksTable,
			Columns: []string{blobobject.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blobchunk.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BlobObjectCreateBulk is the builder for creating many BlobObject entities in bulk.
type BlobObjectCreateBulk struct {
	config
	err      error
	builders []*BlobObjectCreate
}

// Save creates the BlobObject entities in the database.
func (_c *BlobObjectCreateBulk) Save(ctx context.Context) ([]*BlobObject, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlobObject, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlobObjectMutation)
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
func (_c *BlobObjectCreateBulk) SaveX(ctx context.Context) []*BlobObject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlobObjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlobObjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
