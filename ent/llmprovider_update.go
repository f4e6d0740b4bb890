// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/llmprovider"
	"github.com/docrouter-ce/docrouter/ent/predicate"
)

// LLMProviderUpdate is the builder for updating LLMProvider entities.
type LLMProviderUpdate struct {
	config
	hooks    []Hook
	mutation *LLMProviderMutation
}

// Where appends a list predicates to the LLMProviderUpdate builder.
func (_u *LLMProviderUpdate) Where(ps ...predicate.LLMProvider) *LLMProviderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LLMProviderUpdate) SetName(v string) *LLMProviderUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LLMProviderUpdate) SetNillableName(v *string) *LLMProviderUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *LLMProviderUpdate) SetDisplayName(v string) *LLMProviderUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *LLMProviderUpdate) SetNillableDisplayName(v *string) *LLMProviderUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetLitellmProvider sets the "litellm_provider" field.
func (_u *LLMProviderUpdate) SetLitellmProvider(v string) *LLMProviderUpdate {
	_u.mutation.SetLitellmProvider(v)
	return _u
}

// SetNillableLitellmProvider sets the "litellm_provider" field if the given value is not nil.
func (_u *LLMProviderUpdate) SetNillableLitellmProvider(v *string) *LLMProviderUpdate {
	if v != nil {
		_u.SetLitellmProvider(*v)
	}
	return _u
}

// SetLitellmModelsAvailable sets the "litellm_models_available" field.
func (_u *LLMProviderUpdate) SetLitellmModelsAvailable(v []string) *LLMProviderUpdate {
	_u.mutation.SetLitellmModelsAvailable(v)
	return _u
}

// AppendLitellmModelsAvailable appends value to the "litellm_models_available" field.
func (_u *LLMProviderUpdate) AppendLitellmModelsAvailable(v []string) *LLMProviderUpdate {
	_u.mutation.AppendLitellmModelsAvailable(v)
	return _u
}

// ClearLitellmModelsAvailable clears the value of the "litellm_models_available" field.
func (_u *LLMProviderUpdate) ClearLitellmModelsAvailable() *LLMProviderUpdate {
	_u.mutation.ClearLitellmModelsAvailable()
	return _u
}

// SetLitellmModelsEnabled sets the "litellm_models_enabled" field.
func (_u *LLMProviderUpdate) SetLitellmModelsEnabled(v []string) *LLMProviderUpdate {
	_u.mutation.SetLitellmModelsEnabled(v)
	return _u
}

// AppendLitellmModelsEnabled appends value to the "litellm_models_enabled" field.
func (_u *LLMProviderUpdate) AppendLitellmModelsEnabled(v []string) *LLMProviderUpdate {
	_u.mutation.AppendLitellmModelsEnabled(v)
	return _u
}

// ClearLitellmModelsEnabled clears the value of the "litellm_models_enabled" field.
func (_u *LLMProviderUpdate) ClearLitellmModelsEnabled() *LLMProviderUpdate {
	_u.mutation.ClearLitellmModelsEnabled()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *LLMProviderUpdate) SetEnabled(v bool) *LLMProviderUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *LLMProviderUpdate) SetNillableEnabled(v *bool) *LLMProviderUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *LLMProviderUpdate) SetToken(v string) *LLMProviderUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *LLMProviderUpdate) SetNillableToken(v *string) *LLMProviderUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// ClearToken clears the value of the "token" field.
func (_u *LLMProviderUpdate) ClearToken() *LLMProviderUpdate {
	_u.mutation.ClearToken()
	return _u
}

// SetTokenCreatedAt sets the "token_created_at" field.
func (_u *LLMProviderUpdate) SetTokenCreatedAt(v time.Time) *LLMProviderUpdate {
	_u.mutation.SetTokenCreatedAt(v)
	return _u
}

// SetNillableTokenCreatedAt sets the "token_created_at" field if the given value is not nil.
func (_u *LLMProviderUpdate) SetNillableTokenCreatedAt(v *time.Time) *LLMProviderUpdate {
	if v != nil {
		_u.SetTokenCreatedAt(*v)
	}
	return _u
}

// ClearTokenCreatedAt clears the value of the "token_created_at" field.
func (_u *LLMProviderUpdate) ClearTokenCreatedAt() *LLMProviderUpdate {
	_u.mutation.ClearTokenCreatedAt()
	return _u
}

// Mutation returns the LLMProviderMutation object of the builder.
func (_u *LLMProviderUpdate) Mutation() *LLMProviderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMProviderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMProviderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMProviderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMProviderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMProviderUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := llmprovider.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LLMProvider.name": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMProviderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmprovider.Table, llmprovider.Columns, sqlgraph.NewFieldSpec(llmprovider.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(llmprovider.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(llmprovider.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LitellmProvider(); ok {
		_spec.SetField(llmprovider.FieldLitellmProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.LitellmModelsAvailable(); ok {
		_spec.SetField(llmprovider.FieldLitellmModelsAvailable, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLitellmModelsAvailable(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, llmprovider.FieldLitellmModelsAvailable, value)
		})
	}
	if _u.mutation.LitellmModelsAvailableCleared() {
		_spec.ClearField(llmprovider.FieldLitellmModelsAvailable, field.TypeJSON)
	}
	if value, ok := _u.mutation.LitellmModelsEnabled(); ok {
		_spec.SetField(llmprovider.FieldLitellmModelsEnabled, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLitellmModelsEnabled(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, llmprovider.FieldLitellmModelsEnabled, value)
		})
	}
	if _u.mutation.LitellmModelsEnabledCleared() {
		_spec.ClearField(llmprovider.FieldLitellmModelsEnabled, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(llmprovider.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(llmprovider.FieldToken, field.TypeString, value)
	}
	if _u.mutation.TokenCleared() {
		_spec.ClearField(llmprovider.FieldToken, field.TypeString)
	}
	if value, ok := _u.mutation.TokenCreatedAt(); ok {
		_spec.SetField(llmprovider.FieldTokenCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TokenCreatedAtCleared() {
		_spec.ClearField(llmprovider.FieldTokenCreatedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmprovider.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMProviderUpdateOne is the builder for updating a single LLMProvider entity.
type LLMProviderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMProviderMutation
}

// SetName sets the "name" field.
func (_u *LLMProviderUpdateOne) SetName(v string) *LLMProviderUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LLMProviderUpdateOne) SetNillableName(v *string) *LLMProviderUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *LLMProviderUpdateOne) SetDisplayName(v string) *LLMProviderUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *LLMProviderUpdateOne) SetNillableDisplayName(v *string) *LLMProviderUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetLitellmProvider sets the "litellm_provider" field.
func (_u *LLMProviderUpdateOne) SetLitellmProvider(v string) *LLMProviderUpdateOne {
	_u.mutation.SetLitellmProvider(v)
	return _u
}

// SetNillableLitellmProvider sets the "litellm_provider" field if the given value is not nil.
func (_u *LLMProviderUpdateOne) SetNillableLitellmProvider(v *string) *LLMProviderUpdateOne {
	if v != nil {
		_u.SetLitellmProvider(*v)
	}
	return _u
}

// SetLitellmModelsAvailable sets the "litellm_models_available" field.
func (_u *LLMProviderUpdateOne) SetLitellmModelsAvailable(v []string) *LLMProviderUpdateOne {
	_u.mutation.SetLitellmModelsAvailable(v)
	return _u
}

// AppendLitellmModelsAvailable appends value to the "litellm_models_available" field.
func (_u *LLMProviderUpdateOne) AppendLitellmModelsAvailable(v []string) *LLMProviderUpdateOne {
	_u.mutation.AppendLitellmModelsAvailable(v)
	return _u
}

// ClearLitellmModelsAvailable clears the value of the "litellm_models_available" field.
func (_u *LLMProviderUpdateOne) ClearLitellmModelsAvailable() *LLMProviderUpdateOne {
	_u.mutation.ClearLitellmModelsAvailable()
	return _u
}

// SetLitellmModelsEnabled sets the "litellm_models_enabled" field.
func (_u *LLMProviderUpdateOne) SetLitellmModelsEnabled(v []string) *LLMProviderUpdateOne {
	_u.mutation.SetLitellmModelsEnabled(v)
	return _u
}

// AppendLitellmModelsEnabled appends value to the "litellm_models_enabled" field.
func (_u *LLMProviderUpdateOne) AppendLitellmModelsEnabled(v []string) *LLMProviderUpdateOne {
	_u.mutation.AppendLitellmModelsEnabled(v)
	return _u
}

// ClearLitellmModelsEnabled clears the value of the "litellm_models_enabled" field.
func (_u *LLMProviderUpdateOne) ClearLitellmModelsEnabled() *LLMProviderUpdateOne {
	_u.mutation.ClearLitellmModelsEnabled()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *LLMProviderUpdateOne) SetEnabled(v bool) *LLMProviderUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *LLMProviderUpdateOne) SetNillableEnabled(v *bool) *LLMProviderUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *LLMProviderUpdateOne) SetToken(v string) *LLMProviderUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *LLMProviderUpdateOne) SetNillableToken(v *string) *LLMProviderUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// ClearToken clears the value of the "token" field.
func (_u *LLMProviderUpdateOne) ClearToken() *LLMProviderUpdateOne {
	_u.mutation.ClearToken()
	return _u
}

// SetTokenCreatedAt sets the "token_created_at" field.
func (_u *LLMProviderUpdateOne) SetTokenCreatedAt(v time.Time) *LLMProviderUpdateOne {
	_u.mutation.SetTokenCreatedAt(v)
	return _u
}

// SetNillableTokenCreatedAt sets the "token_created_at" field if the given value is not nil.
func (_u *LLMProviderUpdateOne) SetNillableTokenCreatedAt(v *time.Time) *LLMProviderUpdateOne {
	if v != nil {
		_u.SetTokenCreatedAt(*v)
	}
	return _u
}

// ClearTokenCreatedAt clears the value of the "token_created_at" field.
func (_u *LLMProviderUpdateOne) ClearTokenCreatedAt() *LLMProviderUpdateOne {
	_u.mutation.ClearTokenCreatedAt()
	return _u
}

// Mutation returns the LLMProviderMutation object of the builder.
func (_u *LLMProviderUpdateOne) Mutation() *LLMProviderMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMProviderUpdate builder.
func (_u *LLMProviderUpdateOne) Where(ps ...predicate.LLMProvider) *LLMProviderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMProviderUpdateOne) Select(field string, fields ...string) *LLMProviderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMProvider entity.
func (_u *LLMProviderUpdateOne) Save(ctx context.Context) (*LLMProvider, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMProviderUpdateOne) SaveX(ctx context.Context) *LLMProvider {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMProviderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMProviderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMProviderUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := llmprovider.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LLMProvider.name": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMProviderUpdateOne) sqlSave(ctx context.Context) (_node *LLMProvider, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmprovider.Table, llmprovider.Columns, sqlgraph.NewFieldSpec(llmprovider.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMProvider.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmprovider.FieldID)
		for _, f := range fields {
			if !llmprovider.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmprovider.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(llmprovider.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(llmprovider.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LitellmProvider(); ok {
		_spec.SetField(llmprovider.FieldLitellmProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.LitellmModelsAvailable(); ok {
		_spec.SetField(llmprovider.FieldLitellmModelsAvailable, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLitellmModelsAvailable(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, llmprovider.FieldLitellmModelsAvailable, value)
		})
	}
	if _u.mutation.LitellmModelsAvailableCleared() {
		_spec.ClearField(llmprovider.FieldLitellmModelsAvailable, field.TypeJSON)
	}
	if value, ok := _u.mutation.LitellmModelsEnabled(); ok {
		_spec.SetField(llmprovider.FieldLitellmModelsEnabled, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLitellmModelsEnabled(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, llmprovider.FieldLitellmModelsEnabled, value)
		})
	}
	if _u.mutation.LitellmModelsEnabledCleared() {
		_spec.ClearField(llmprovider.FieldLitellmModelsEnabled, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(llmprovider.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(llmprovider.FieldToken, field.TypeString, value)
	}
	if _u.mutation.TokenCleared() {
		_spec.ClearField(llmprovider.FieldToken, field.TypeString)
	}
	if value, ok := _u.mutation.TokenCreatedAt(); ok {
		_spec.SetField(llmprovider.FieldTokenCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TokenCreatedAtCleared() {
		_spec.ClearField(llmprovider.FieldTokenCreatedAt, field.TypeTime)
	}
	_node = &LLMProvider{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmprovider.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
