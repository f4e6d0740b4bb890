// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/promptrevision"
)

// PromptRevisionCreate is the builder for creating a PromptRevision entity.
type PromptRevisionCreate struct {
	config
	mutation *PromptRevisionMutation
	hooks    []Hook
}

// SetPromptID sets the "prompt_id" field.
func (_c *PromptRevisionCreate) SetPromptID(v string) *PromptRevisionCreate {
	_c.mutation.SetPromptID(v)
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *PromptRevisionCreate) SetPromptVersion(v int) *PromptRevisionCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PromptRevisionCreate) SetName(v string) *PromptRevisionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *PromptRevisionCreate) SetContent(v string) *PromptRevisionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSchemaID sets the "schema_id" field.
func (_c *PromptRevisionCreate) SetSchemaID(v string) *PromptRevisionCreate {
	_c.mutation.SetSchemaID(v)
	return _c
}

// SetNillableSchemaID sets the "schema_id" field if the given value is not nil.
func (_c *PromptRevisionCreate) SetNillableSchemaID(v *string) *PromptRevisionCreate {
	if v != nil {
		_c.SetSchemaID(*v)
	}
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *PromptRevisionCreate) SetSchemaVersion(v int) *PromptRevisionCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_c *PromptRevisionCreate) SetNillableSchemaVersion(v *int) *PromptRevisionCreate {
	if v != nil {
		_c.SetSchemaVersion(*v)
	}
	return _c
}

// SetTagIds sets the "tag_ids" field.
func (_c *PromptRevisionCreate) SetTagIds(v []string) *PromptRevisionCreate {
	_c.mutation.SetTagIds(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *PromptRevisionCreate) SetModel(v string) *PromptRevisionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *PromptRevisionCreate) SetNillableModel(v *string) *PromptRevisionCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *PromptRevisionCreate) SetOrganizationID(v string) *PromptRevisionCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptRevisionCreate) SetCreatedAt(v time.Time) *PromptRevisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptRevisionCreate) SetNillableCreatedAt(v *time.Time) *PromptRevisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *PromptRevisionCreate) SetCreatedBy(v string) *PromptRevisionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *PromptRevisionCreate) SetNillableCreatedBy(v *string) *PromptRevisionCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptRevisionCreate) SetID(v string) *PromptRevisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PromptRevisionCreate) SetNillableID(v *string) *PromptRevisionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PromptRevisionMutation object of the builder.
func (_c *PromptRevisionCreate) Mutation() *PromptRevisionMutation {
	return _c.mutation
}

// Save creates the PromptRevision in the database.
func (_c *PromptRevisionCreate) Save(ctx context.Context) (*PromptRevision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptRevisionCreate) SaveX(ctx context.Context) *PromptRevision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptRevisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptRevisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptRevisionCreate) defaults() {
	if _, ok := _c.mutation.Model(); !ok {
		v := promptrevision.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promptrevision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := promptrevision.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptRevisionCreate) check() error {
	if _, ok := _c.mutation.PromptID(); !ok {
		return &ValidationError{Name: "prompt_id", err: errors.New(`ent: missing required field "PromptRevision.prompt_id"`)}
	}
	if v, ok := _c.mutation.PromptID(); ok {
		if err := promptrevision.PromptIDValidator(v); err != nil {
			return &ValidationError{Name: "prompt_id", err: fmt.Errorf(`ent: validator failed for field "PromptRevision.prompt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptVersion(); !ok {
		return &ValidationError{Name: "prompt_version", err: errors.New(`ent: missing required field "PromptRevision.prompt_version"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PromptRevision.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := promptrevision.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PromptRevision.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "PromptRevision.content"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "PromptRevision.model"`)}
	}
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "PromptRevision.organization_id"`)}
	}
	if v, ok := _c.mutation.OrganizationID(); ok {
		if err := promptrevision.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "PromptRevision.organization_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptRevision.created_at"`)}
	}
	return nil
}

func (_c *PromptRevisionCreate) sqlSave(ctx context.Context) (*PromptRevision, error) {
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
			return nil, fmt.Errorf("unexpected PromptRevision.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptRevisionCreate) createSpec() (*PromptRevision, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptRevision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptrevision.Table, sqlgraph.NewFieldSpec(promptrevision.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PromptID(); ok {
		_spec.SetField(promptrevision.FieldPromptID, field.TypeString, value)
		_node.PromptID = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(promptrevision.FieldPromptVersion, field.TypeInt, value)
		_node.PromptVersion = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(promptrevision.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(promptrevision.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.SchemaID(); ok {
		_spec.SetField(promptrevision.FieldSchemaID, field.TypeString, value)
		_node.SchemaID = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(promptrevision.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.TagIds(); ok {
		_spec.SetField(promptrevision.FieldTagIds, field.TypeJSON, value)
		_node.TagIds = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(promptrevision.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(promptrevision.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptrevision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(promptrevision.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	return _node, _spec
}

// PromptRevisionCreateBulk is the builder for creating many PromptRevision entities in bulk.
type PromptRevisionCreateBulk struct {
	config
	err      error
	builders []*PromptRevisionCreate
}

// Save creates the PromptRevision entities in the database.
func (_c *PromptRevisionCreateBulk) Save(ctx context.Context) ([]*PromptRevision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptRevision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptRevisionMutation)
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
func (_c *PromptRevisionCreateBulk) SaveX(ctx context.Context) []*PromptRevision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptRevisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptRevisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
