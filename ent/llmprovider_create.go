// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/llmprovider"
)

// LLMProviderCreate is the builder for creating a LLMProvider entity.
type LLMProviderCreate struct {
	config
	mutation *LLMProviderMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *LLMProviderCreate) SetName(v string) *LLMProviderCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *LLMProviderCreate) SetDisplayName(v string) *LLMProviderCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetLitellmProvider sets the "litellm_provider" field.
func (_c *LLMProviderCreate) SetLitellmProvider(v string) *LLMProviderCreate {
	_c.mutation.SetLitellmProvider(v)
	return _c
}

// SetLitellmModelsAvailable sets the "litellm_models_available" field.
func (_c *LLMProviderCreate) SetLitellmModelsAvailable(v []string) *LLMProviderCreate {
	_c.mutation.SetLitellmModelsAvailable(v)
	return _c
}

// SetLitellmModelsEnabled sets the "litellm_models_enabled" field.
func (_c *LLMProviderCreate) SetLitellmModelsEnabled(v []string) *LLMProviderCreate {
	_c.mutation.SetLitellmModelsEnabled(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *LLMProviderCreate) SetEnabled(v bool) *LLMProviderCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *LLMProviderCreate) SetNillableEnabled(v *bool) *LLMProviderCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetToken sets the "token" field.
func (_c *LLMProviderCreate) SetToken(v string) *LLMProviderCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_c *LLMProviderCreate) SetNillableToken(v *string) *LLMProviderCreate {
	if v != nil {
		_c.SetToken(*v)
	}
	return _c
}

// SetTokenCreatedAt sets the "token_created_at" field.
func (_c *LLMProviderCreate) SetTokenCreatedAt(v time.Time) *LLMProviderCreate {
	_c.mutation.SetTokenCreatedAt(v)
	return _c
}

// SetNillableTokenCreatedAt sets the "token_created_at" field if the given value is not nil.
func (_c *LLMProviderCreate) SetNillableTokenCreatedAt(v *time.Time) *LLMProviderCreate {
	if v != nil {
		_c.SetTokenCreatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMProviderCreate) SetCreatedAt(v time.Time) *LLMProviderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMProviderCreate) SetNillableCreatedAt(v *time.Time) *LLMProviderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMProviderCreate) SetID(v string) *LLMProviderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LLMProviderCreate) SetNillableID(v *string) *LLMProviderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LLMProviderMutation object of the builder.
func (_c *LLMProviderCreate) Mutation() *LLMProviderMutation {
	return _c.mutation
}

// Save creates the LLMProvider in the database.
func (_c *LLMProviderCreate) Save(ctx context.Context) (*LLMProvider, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMProviderCreate) SaveX(ctx context.Context) *LLMProvider {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMProviderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMProviderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMProviderCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := llmprovider.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmprovider.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := llmprovider.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMProviderCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "LLMProvider.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := llmprovider.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LLMProvider.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "LLMProvider.display_name"`)}
	}
	if _, ok := _c.mutation.LitellmProvider(); !ok {
		return &ValidationError{Name: "litellm_provider", err: errors.New(`ent: missing required field "LLMProvider.litellm_provider"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "LLMProvider.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMProvider.created_at"`)}
	}
	return nil
}

func (_c *LLMProviderCreate) sqlSave(ctx context.Context) (*LLMProvider, error) {
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
			return nil, fmt.Errorf("unexpected LLMProvider.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMProviderCreate) createSpec() (*LLMProvider, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMProvider{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmprovider.Table, sqlgraph.NewFieldSpec(llmprovider.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(llmprovider.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(llmprovider.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.LitellmProvider(); ok {
		_spec.SetField(llmprovider.FieldLitellmProvider, field.TypeString, value)
		_node.LitellmProvider = value
	}
	if value, ok := _c.mutation.LitellmModelsAvailable(); ok {
		_spec.SetField(llmprovider.FieldLitellmModelsAvailable, field.TypeJSON, value)
		_node.LitellmModelsAvailable = value
	}
	if value, ok := _c.mutation.LitellmModelsEnabled(); ok {
		_spec.SetField(llmprovider.FieldLitellmModelsEnabled, field.TypeJSON, value)
		_node.LitellmModelsEnabled = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(llmprovider.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(llmprovider.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.TokenCreatedAt(); ok {
		_spec.SetField(llmprovider.FieldTokenCreatedAt, field.TypeTime, value)
		_node.TokenCreatedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmprovider.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LLMProviderCreateBulk is the builder for creating many LLMProvider entities in bulk.
type LLMProviderCreateBulk struct {
	config
	err      error
	builders []*LLMProviderCreate
}

// Save creates the LLMProvider entities in the database.
func (_c *LLMProviderCreateBulk) Save(ctx context.Context) ([]*LLMProvider, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMProvider, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMProviderMutation)
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
func (_c *LLMProviderCreateBulk) SaveX(ctx context.Context) []*LLMProvider {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMProviderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMProviderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
