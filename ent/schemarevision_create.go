// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/schemarevision"
	"github.com/docrouter-ce/docrouter/pkg/models"
)

// SchemaRevisionCreate is the builder for creating a SchemaRevision entity.
type SchemaRevisionCreate struct {
	config
	mutation *SchemaRevisionMutation
	hooks    []Hook
}

// SetSchemaID sets the "schema_id" field.
func (_c *SchemaRevisionCreate) SetSchemaID(v string) *SchemaRevisionCreate {
	_c.mutation.SetSchemaID(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *SchemaRevisionCreate) SetSchemaVersion(v int) *SchemaRevisionCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SchemaRevisionCreate) SetName(v string) *SchemaRevisionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetResponseFormat sets the "response_format" field.
func (_c *SchemaRevisionCreate) SetResponseFormat(v models.ResponseFormat) *SchemaRevisionCreate {
	_c.mutation.SetResponseFormat(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *SchemaRevisionCreate) SetOrganizationID(v string) *SchemaRevisionCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SchemaRevisionCreate) SetCreatedAt(v time.Time) *SchemaRevisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SchemaRevisionCreate) SetNillableCreatedAt(v *time.Time) *SchemaRevisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *SchemaRevisionCreate) SetCreatedBy(v string) *SchemaRevisionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *SchemaRevisionCreate) SetNillableCreatedBy(v *string) *SchemaRevisionCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SchemaRevisionCreate) SetID(v string) *SchemaRevisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SchemaRevisionCreate) SetNillableID(v *string) *SchemaRevisionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SchemaRevisionMutation object of the builder.
func (_c *SchemaRevisionCreate) Mutation() *SchemaRevisionMutation {
	return _c.mutation
}

// Save creates the SchemaRevision in the database.
func (_c *SchemaRevisionCreate) Save(ctx context.Context) (*SchemaRevision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchemaRevisionCreate) SaveX(ctx context.Context) *SchemaRevision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchemaRevisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchemaRevisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SchemaRevisionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := schemarevision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := schemarevision.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchemaRevisionCreate) check() error {
	if _, ok := _c.mutation.SchemaID(); !ok {
		return &ValidationError{Name: "schema_id", err: errors.New(`ent: missing required field "SchemaRevision.schema_id"`)}
	}
	if v, ok := _c.mutation.SchemaID(); ok {
		if err := schemarevision.SchemaIDValidator(v); err != nil {
			return &ValidationError{Name: "schema_id", err: fmt.Errorf(`ent: validator failed for field "SchemaRevision.schema_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "SchemaRevision.schema_version"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SchemaRevision.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := schemarevision.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SchemaRevision.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResponseFormat(); !ok {
		return &ValidationError{Name: "response_format", err: errors.New(`ent: missing required field "SchemaRevision.response_format"`)}
	}
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "SchemaRevision.organization_id"`)}
	}
	if v, ok := _c.mutation.OrganizationID(); ok {
		if err := schemarevision.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "SchemaRevision.organization_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SchemaRevision.created_at"`)}
	}
	return nil
}

func (_c *SchemaRevisionCreate) sqlSave(ctx context.Context) (*SchemaRevision, error) {
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
			return nil, fmt.Errorf("unexpected SchemaRevision.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SchemaRevisionCreate) createSpec() (*SchemaRevision, *sqlgraph.CreateSpec) {
	var (
		_node = &SchemaRevision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schemarevision.Table, sqlgraph.NewFieldSpec(schemarevision.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SchemaID(); ok {
		_spec.SetField(schemarevision.FieldSchemaID, field.TypeString, value)
		_node.SchemaID = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(schemarevision.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(schemarevision.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ResponseFormat(); ok {
		_spec.SetField(schemarevision.FieldResponseFormat, field.TypeJSON, value)
		_node.ResponseFormat = value
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(schemarevision.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(schemarevision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(schemarevision.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	return _node, _spec
}

// SchemaRevisionCreateBulk is the builder for creating many SchemaRevision entities in bulk.
type SchemaRevisionCreateBulk struct {
	config
	err      error
	builders []*SchemaRevisionCreate
}

// Save creates the SchemaRevision entities in the database.
func (_c *SchemaRevisionCreateBulk) Save(ctx context.Context) ([]*SchemaRevision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SchemaRevision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchemaRevisionMutation)
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
func (_c *SchemaRevisionCreateBulk) SaveX(ctx context.Context) []*SchemaRevision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchemaRevisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchemaRevisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
