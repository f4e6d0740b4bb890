// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/llmresult"
)

// LLMResultCreate is the builder for creating a LLMResult entity.
type LLMResultCreate struct {
	config
	mutation *LLMResultMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *LLMResultCreate) SetDocumentID(v string) *LLMResultCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetPromptRevID sets the "prompt_rev_id" field.
func (_c *LLMResultCreate) SetPromptRevID(v string) *LLMResultCreate {
	_c.mutation.SetPromptRevID(v)
	return _c
}

// SetPromptID sets the "prompt_id" field.
func (_c *LLMResultCreate) SetPromptID(v string) *LLMResultCreate {
	_c.mutation.SetPromptID(v)
	return _c
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_c *LLMResultCreate) SetNillablePromptID(v *string) *LLMResultCreate {
	if v != nil {
		_c.SetPromptID(*v)
	}
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *LLMResultCreate) SetPromptVersion(v int) *LLMResultCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_c *LLMResultCreate) SetNillablePromptVersion(v *int) *LLMResultCreate {
	if v != nil {
		_c.SetPromptVersion(*v)
	}
	return _c
}

// SetLlmResult sets the "llm_result" field.
func (_c *LLMResultCreate) SetLlmResult(v string) *LLMResultCreate {
	_c.mutation.SetLlmResult(v)
	return _c
}

// SetUpdatedLlmResult sets the "updated_llm_result" field.
func (_c *LLMResultCreate) SetUpdatedLlmResult(v string) *LLMResultCreate {
	_c.mutation.SetUpdatedLlmResult(v)
	return _c
}

// SetIsEdited sets the "is_edited" field.
func (_c *LLMResultCreate) SetIsEdited(v bool) *LLMResultCreate {
	_c.mutation.SetIsEdited(v)
	return _c
}

// SetNillableIsEdited sets the "is_edited" field if the given value is not nil.
func (_c *LLMResultCreate) SetNillableIsEdited(v *bool) *LLMResultCreate {
	if v != nil {
		_c.SetIsEdited(*v)
	}
	return _c
}

// SetIsVerified sets the "is_verified" field.
func (_c *LLMResultCreate) SetIsVerified(v bool) *LLMResultCreate {
	_c.mutation.SetIsVerified(v)
	return _c
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_c *LLMResultCreate) SetNillableIsVerified(v *bool) *LLMResultCreate {
	if v != nil {
		_c.SetIsVerified(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMResultCreate) SetCreatedAt(v time.Time) *LLMResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMResultCreate) SetNillableCreatedAt(v *time.Time) *LLMResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LLMResultCreate) SetUpdatedAt(v time.Time) *LLMResultCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LLMResultCreate) SetNillableUpdatedAt(v *time.Time) *LLMResultCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMResultCreate) SetID(v string) *LLMResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LLMResultCreate) SetNillableID(v *string) *LLMResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LLMResultMutation object of the builder.
func (_c *LLMResultCreate) Mutation() *LLMResultMutation {
	return _c.mutation
}

// Save creates the LLMResult in the database.
func (_c *LLMResultCreate) Save(ctx context.Context) (*LLMResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMResultCreate) SaveX(ctx context.Context) *LLMResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMResultCreate) defaults() {
	if _, ok := _c.mutation.IsEdited(); !ok {
		v := llmresult.DefaultIsEdited
		_c.mutation.SetIsEdited(v)
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		v := llmresult.DefaultIsVerified
		_c.mutation.SetIsVerified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := llmresult.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := llmresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMResultCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "LLMResult.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := llmresult.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "LLMResult.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptRevID(); !ok {
		return &ValidationError{Name: "prompt_rev_id", err: errors.New(`ent: missing required field "LLMResult.prompt_rev_id"`)}
	}
	if v, ok := _c.mutation.PromptRevID(); ok {
		if err := llmresult.PromptRevIDValidator(v); err != nil {
			return &ValidationError{Name: "prompt_rev_id", err: fmt.Errorf(`ent: validator failed for field "LLMResult.prompt_rev_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LlmResult(); !ok {
		return &ValidationError{Name: "llm_result", err: errors.New(`ent: missing required field "LLMResult.llm_result"`)}
	}
	if _, ok := _c.mutation.UpdatedLlmResult(); !ok {
		return &ValidationError{Name: "updated_llm_result", err: errors.New(`ent: missing required field "LLMResult.updated_llm_result"`)}
	}
	if _, ok := _c.mutation.IsEdited(); !ok {
		return &ValidationError{Name: "is_edited", err: errors.New(`ent: missing required field "LLMResult.is_edited"`)}
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		return &ValidationError{Name: "is_verified", err: errors.New(`ent: missing required field "LLMResult.is_verified"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMResult.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LLMResult.updated_at"`)}
	}
	return nil
}

func (_c *LLMResultCreate) sqlSave(ctx context.Context) (*LLMResult, error) {
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
			return nil, fmt.Errorf("unexpected LLMResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMResultCreate) createSpec() (*LLMResult, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmresult.Table, sqlgraph.NewFieldSpec(llmresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(llmresult.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.PromptRevID(); ok {
		_spec.SetField(llmresult.FieldPromptRevID, field.TypeString, value)
		_node.PromptRevID = value
	}
	if value, ok := _c.mutation.PromptID(); ok {
		_spec.SetField(llmresult.FieldPromptID, field.TypeString, value)
		_node.PromptID = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(llmresult.FieldPromptVersion, field.TypeInt, value)
		_node.PromptVersion = value
	}
	if value, ok := _c.mutation.LlmResult(); ok {
		_spec.SetField(llmresult.FieldLlmResult, field.TypeString, value)
		_node.LlmResult = value
	}
	if value, ok := _c.mutation.UpdatedLlmResult(); ok {
		_spec.SetField(llmresult.FieldUpdatedLlmResult, field.TypeString, value)
		_node.UpdatedLlmResult = value
	}
	if value, ok := _c.mutation.IsEdited(); ok {
		_spec.SetField(llmresult.FieldIsEdited, field.TypeBool, value)
		_node.IsEdited = value
	}
	if value, ok := _c.mutation.IsVerified(); ok {
		_spec.SetField(llmresult.FieldIsVerified, field.TypeBool, value)
		_node.IsVerified = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(llmresult.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LLMResultCreateBulk is the builder for creating many LLMResult entities in bulk.
type LLMResultCreateBulk struct {
	config
	err      error
	builders []*LLMResultCreate
}

// Save creates the LLMResult entities in the database.
func (_c *LLMResultCreateBulk) Save(ctx context.Context) ([]*LLMResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMResultMutation)
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
func (_c *LLMResultCreateBulk) SaveX(ctx context.Context) []*LLMResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
