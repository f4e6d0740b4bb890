// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/llmresult"
	"github.com/docrouter-ce/docrouter/ent/predicate"
)

// LLMResultUpdate is the builder for updating LLMResult entities.
type LLMResultUpdate struct {
	config
	hooks    []Hook
	mutation *LLMResultMutation
}

// Where appends a list predicates to the LLMResultUpdate builder.
func (_u *LLMResultUpdate) Where(ps ...predicate.LLMResult) *LLMResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *LLMResultUpdate) SetDocumentID(v string) *LLMResultUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *LLMResultUpdate) SetNillableDocumentID(v *string) *LLMResultUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPromptRevID sets the "prompt_rev_id" field.
func (_u *LLMResultUpdate) SetPromptRevID(v string) *LLMResultUpdate {
	_u.mutation.SetPromptRevID(v)
	return _u
}

// SetNillablePromptRevID sets the "prompt_rev_id" field if the given value is not nil.
func (_u *LLMResultUpdate) SetNillablePromptRevID(v *string) *LLMResultUpdate {
	if v != nil {
		_u.SetPromptRevID(*v)
	}
	return _u
}

// SetPromptID sets the "prompt_id" field.
func (_u *LLMResultUpdate) SetPromptID(v string) *LLMResultUpdate {
	_u.mutation.SetPromptID(v)
	return _u
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_u *LLMResultUpdate) SetNillablePromptID(v *string) *LLMResultUpdate {
	if v != nil {
		_u.SetPromptID(*v)
	}
	return _u
}

// ClearPromptID clears the value of the "prompt_id" field.
func (_u *LLMResultUpdate) ClearPromptID() *LLMResultUpdate {
	_u.mutation.ClearPromptID()
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *LLMResultUpdate) SetPromptVersion(v int) *LLMResultUpdate {
	_u.mutation.ResetPromptVersion()
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *LLMResultUpdate) SetNillablePromptVersion(v *int) *LLMResultUpdate {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// AddPromptVersion adds value to the "prompt_version" field.
func (_u *LLMResultUpdate) AddPromptVersion(v int) *LLMResultUpdate {
	_u.mutation.AddPromptVersion(v)
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *LLMResultUpdate) ClearPromptVersion() *LLMResultUpdate {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetLlmResult sets the "llm_result" field.
func (_u *LLMResultUpdate) SetLlmResult(v string) *LLMResultUpdate {
	_u.mutation.SetLlmResult(v)
	return _u
}

// SetNillableLlmResult sets the "llm_result" field if the given value is not nil.
func (_u *LLMResultUpdate) SetNillableLlmResult(v *string) *LLMResultUpdate {
	if v != nil {
		_u.SetLlmResult(*v)
	}
	return _u
}

// SetUpdatedLlmResult sets the "updated_llm_result" field.
func (_u *LLMResultUpdate) SetUpdatedLlmResult(v string) *LLMResultUpdate {
	_u.mutation.SetUpdatedLlmResult(v)
	return _u
}

// SetNillableUpdatedLlmResult sets the "updated_llm_result" field if the given value is not nil.
func (_u *LLMResultUpdate) SetNillableUpdatedLlmResult(v *string) *LLMResultUpdate {
	if v != nil {
		_u.SetUpdatedLlmResult(*v)
	}
	return _u
}

// SetIsEdited sets the "is_edited" field.
func (_u *LLMResultUpdate) SetIsEdited(v bool) *LLMResultUpdate {
	_u.mutation.SetIsEdited(v)
	return _u
}

// SetNillableIsEdited sets the "is_edited" field if the given value is not nil.
func (_u *LLMResultUpdate) SetNillableIsEdited(v *bool) *LLMResultUpdate {
	if v != nil {
		_u.SetIsEdited(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *LLMResultUpdate) SetIsVerified(v bool) *LLMResultUpdate {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *LLMResultUpdate) SetNillableIsVerified(v *bool) *LLMResultUpdate {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LLMResultUpdate) SetUpdatedAt(v time.Time) *LLMResultUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *LLMResultUpdate) SetNillableUpdatedAt(v *time.Time) *LLMResultUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the LLMResultMutation object of the builder.
func (_u *LLMResultUpdate) Mutation() *LLMResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMResultUpdate) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := llmresult.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "LLMResult.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptRevID(); ok {
		if err := llmresult.PromptRevIDValidator(v); err != nil {
			return &ValidationError{Name: "prompt_rev_id", err: fmt.Errorf(`ent: validator failed for field "LLMResult.prompt_rev_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmresult.Table, llmresult.Columns, sqlgraph.NewFieldSpec(llmresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(llmresult.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptRevID(); ok {
		_spec.SetField(llmresult.FieldPromptRevID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptID(); ok {
		_spec.SetField(llmresult.FieldPromptID, field.TypeString, value)
	}
	if _u.mutation.PromptIDCleared() {
		_spec.ClearField(llmresult.FieldPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(llmresult.FieldPromptVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptVersion(); ok {
		_spec.AddField(llmresult.FieldPromptVersion, field.TypeInt, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(llmresult.FieldPromptVersion, field.TypeInt)
	}
	if value, ok := _u.mutation.LlmResult(); ok {
		_spec.SetField(llmresult.FieldLlmResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedLlmResult(); ok {
		_spec.SetField(llmresult.FieldUpdatedLlmResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsEdited(); ok {
		_spec.SetField(llmresult.FieldIsEdited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(llmresult.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(llmresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMResultUpdateOne is the builder for updating a single LLMResult entity.
type LLMResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMResultMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *LLMResultUpdateOne) SetDocumentID(v string) *LLMResultUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *LLMResultUpdateOne) SetNillableDocumentID(v *string) *LLMResultUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPromptRevID sets the "prompt_rev_id" field.
func (_u *LLMResultUpdateOne) SetPromptRevID(v string) *LLMResultUpdateOne {
	_u.mutation.SetPromptRevID(v)
	return _u
}

// SetNillablePromptRevID sets the "prompt_rev_id" field if the given value is not nil.
func (_u *LLMResultUpdateOne) SetNillablePromptRevID(v *string) *LLMResultUpdateOne {
	if v != nil {
		_u.SetPromptRevID(*v)
	}
	return _u
}

// SetPromptID sets the "prompt_id" field.
func (_u *LLMResultUpdateOne) SetPromptID(v string) *LLMResultUpdateOne {
	_u.mutation.SetPromptID(v)
	return _u
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_u *LLMResultUpdateOne) SetNillablePromptID(v *string) *LLMResultUpdateOne {
	if v != nil {
		_u.SetPromptID(*v)
	}
	return _u
}

// ClearPromptID clears the value of the "prompt_id" field.
func (_u *LLMResultUpdateOne) ClearPromptID() *LLMResultUpdateOne {
	_u.mutation.ClearPromptID()
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *LLMResultUpdateOne) SetPromptVersion(v int) *LLMResultUpdateOne {
	_u.mutation.ResetPromptVersion()
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *LLMResultUpdateOne) SetNillablePromptVersion(v *int) *LLMResultUpdateOne {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// AddPromptVersion adds value to the "prompt_version" field.
func (_u *LLMResultUpdateOne) AddPromptVersion(v int) *LLMResultUpdateOne {
	_u.mutation.AddPromptVersion(v)
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *LLMResultUpdateOne) ClearPromptVersion() *LLMResultUpdateOne {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetLlmResult sets the "llm_result" field.
func (_u *LLMResultUpdateOne) SetLlmResult(v string) *LLMResultUpdateOne {
	_u.mutation.SetLlmResult(v)
	return _u
}

// SetNillableLlmResult sets the "llm_result" field if the given value is not nil.
func (_u *LLMResultUpdateOne) SetNillableLlmResult(v *string) *LLMResultUpdateOne {
	if v != nil {
		_u.SetLlmResult(*v)
	}
	return _u
}

// SetUpdatedLlmResult sets the "updated_llm_result" field.
func (_u *LLMResultUpdateOne) SetUpdatedLlmResult(v string) *LLMResultUpdateOne {
	_u.mutation.SetUpdatedLlmResult(v)
	return _u
}

// SetNillableUpdatedLlmResult sets the "updated_llm_result" field if the given value is not nil.
func (_u *LLMResultUpdateOne) SetNillableUpdatedLlmResult(v *string) *LLMResultUpdateOne {
	if v != nil {
		_u.SetUpdatedLlmResult(*v)
	}
	return _u
}

// SetIsEdited sets the "is_edited" field.
func (_u *LLMResultUpdateOne) SetIsEdited(v bool) *LLMResultUpdateOne {
	_u.mutation.SetIsEdited(v)
	return _u
}

// SetNillableIsEdited sets the "is_edited" field if the given value is not nil.
func (_u *LLMResultUpdateOne) SetNillableIsEdited(v *bool) *LLMResultUpdateOne {
	if v != nil {
		_u.SetIsEdited(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *LLMResultUpdateOne) SetIsVerified(v bool) *LLMResultUpdateOne {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *LLMResultUpdateOne) SetNillableIsVerified(v *bool) *LLMResultUpdateOne {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LLMResultUpdateOne) SetUpdatedAt(v time.Time) *LLMResultUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *LLMResultUpdateOne) SetNillableUpdatedAt(v *time.Time) *LLMResultUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the LLMResultMutation object of the builder.
func (_u *LLMResultUpdateOne) Mutation() *LLMResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMResultUpdate builder.
func (_u *LLMResultUpdateOne) Where(ps ...predicate.LLMResult) *LLMResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMResultUpdateOne) Select(field string, fields ...string) *LLMResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMResult entity.
func (_u *LLMResultUpdateOne) Save(ctx context.Context) (*LLMResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMResultUpdateOne) SaveX(ctx context.Context) *LLMResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMResultUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := llmresult.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "LLMResult.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptRevID(); ok {
		if err := llmresult.PromptRevIDValidator(v); err != nil {
			return &ValidationError{Name: "prompt_rev_id", err: fmt.Errorf(`ent: validator failed for field "LLMResult.prompt_rev_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMResultUpdateOne) sqlSave(ctx context.Context) (_node *LLMResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmresult.Table, llmresult.Columns, sqlgraph.NewFieldSpec(llmresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmresult.FieldID)
		for _, f := range fields {
			if !llmresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmresult.FieldID {
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
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(llmresult.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptRevID(); ok {
		_spec.SetField(llmresult.FieldPromptRevID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptID(); ok {
		_spec.SetField(llmresult.FieldPromptID, field.TypeString, value)
	}
	if _u.mutation.PromptIDCleared() {
		_spec.ClearField(llmresult.FieldPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(llmresult.FieldPromptVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptVersion(); ok {
		_spec.AddField(llmresult.FieldPromptVersion, field.TypeInt, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(llmresult.FieldPromptVersion, field.TypeInt)
	}
	if value, ok := _u.mutation.LlmResult(); ok {
		_spec.SetField(llmresult.FieldLlmResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedLlmResult(); ok {
		_spec.SetField(llmresult.FieldUpdatedLlmResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsEdited(); ok {
		_spec.SetField(llmresult.FieldIsEdited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(llmresult.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(llmresult.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LLMResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
