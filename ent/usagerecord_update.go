// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/predicate"
	"github.com/docrouter-ce/docrouter/ent/usagerecord"
)

// UsageRecordUpdate is the builder for updating UsageRecord entities.
type UsageRecordUpdate struct {
	config
	hooks    []Hook
	mutation *UsageRecordMutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdate) Where(ps ...predicate.UsageRecord) *UsageRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *UsageRecordUpdate) SetOrganizationID(v string) *UsageRecordUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableOrganizationID(v *string) *UsageRecordUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetSpus sets the "spus" field.
func (_u *UsageRecordUpdate) SetSpus(v int) *UsageRecordUpdate {
	_u.mutation.ResetSpus()
	_u.mutation.SetSpus(v)
	return _u
}

// SetNillableSpus sets the "spus" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableSpus(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetSpus(*v)
	}
	return _u
}

// AddSpus adds value to the "spus" field.
func (_u *UsageRecordUpdate) AddSpus(v int) *UsageRecordUpdate {
	_u.mutation.AddSpus(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *UsageRecordUpdate) SetSource(v string) *UsageRecordUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableSource(v *string) *UsageRecordUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *UsageRecordUpdate) SetProvider(v string) *UsageRecordUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableProvider(v *string) *UsageRecordUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *UsageRecordUpdate) ClearProvider() *UsageRecordUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetModel sets the "model" field.
func (_u *UsageRecordUpdate) SetModel(v string) *UsageRecordUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableModel(v *string) *UsageRecordUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *UsageRecordUpdate) ClearModel() *UsageRecordUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *UsageRecordUpdate) SetPromptTokens(v int) *UsageRecordUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillablePromptTokens(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *UsageRecordUpdate) AddPromptTokens(v int) *UsageRecordUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *UsageRecordUpdate) ClearPromptTokens() *UsageRecordUpdate {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *UsageRecordUpdate) SetCompletionTokens(v int) *UsageRecordUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableCompletionTokens(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *UsageRecordUpdate) AddCompletionTokens(v int) *UsageRecordUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *UsageRecordUpdate) ClearCompletionTokens() *UsageRecordUpdate {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *UsageRecordUpdate) SetTotalTokens(v int) *UsageRecordUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableTotalTokens(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *UsageRecordUpdate) AddTotalTokens(v int) *UsageRecordUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *UsageRecordUpdate) ClearTotalTokens() *UsageRecordUpdate {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetCost sets the "cost" field.
func (_u *UsageRecordUpdate) SetCost(v float64) *UsageRecordUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableCost(v *float64) *UsageRecordUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *UsageRecordUpdate) AddCost(v float64) *UsageRecordUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *UsageRecordUpdate) ClearCost() *UsageRecordUpdate {
	_u.mutation.ClearCost()
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdate) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageRecordUpdate) check() error {
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := usagerecord.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.organization_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(usagerecord.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Spus(); ok {
		_spec.SetField(usagerecord.FieldSpus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpus(); ok {
		_spec.AddField(usagerecord.FieldSpus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(usagerecord.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(usagerecord.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(usagerecord.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(usagerecord.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(usagerecord.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(usagerecord.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(usagerecord.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(usagerecord.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(usagerecord.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(usagerecord.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(usagerecord.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(usagerecord.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(usagerecord.FieldTotalTokens, field.TypeInt, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(usagerecord.FieldTotalTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(usagerecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(usagerecord.FieldCost, field.TypeFloat64, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(usagerecord.FieldCost, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageRecordUpdateOne is the builder for updating a single UsageRecord entity.
type UsageRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageRecordMutation
}

// SetOrganizationID sets the "organization_id" field.
func (_u *UsageRecordUpdateOne) SetOrganizationID(v string) *UsageRecordUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableOrganizationID(v *string) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetSpus sets the "spus" field.
func (_u *UsageRecordUpdateOne) SetSpus(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetSpus()
	_u.mutation.SetSpus(v)
	return _u
}

// SetNillableSpus sets the "spus" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableSpus(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetSpus(*v)
	}
	return _u
}

// AddSpus adds value to the "spus" field.
func (_u *UsageRecordUpdateOne) AddSpus(v int) *UsageRecordUpdateOne {
	_u.mutation.AddSpus(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *UsageRecordUpdateOne) SetSource(v string) *UsageRecordUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableSource(v *string) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *UsageRecordUpdateOne) SetProvider(v string) *UsageRecordUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableProvider(v *string) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *UsageRecordUpdateOne) ClearProvider() *UsageRecordUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetModel sets the "model" field.
func (_u *UsageRecordUpdateOne) SetModel(v string) *UsageRecordUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableModel(v *string) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *UsageRecordUpdateOne) ClearModel() *UsageRecordUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *UsageRecordUpdateOne) SetPromptTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillablePromptTokens(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *UsageRecordUpdateOne) AddPromptTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *UsageRecordUpdateOne) ClearPromptTokens() *UsageRecordUpdateOne {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *UsageRecordUpdateOne) SetCompletionTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableCompletionTokens(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *UsageRecordUpdateOne) AddCompletionTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *UsageRecordUpdateOne) ClearCompletionTokens() *UsageRecordUpdateOne {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *UsageRecordUpdateOne) SetTotalTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableTotalTokens(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *UsageRecordUpdateOne) AddTotalTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *UsageRecordUpdateOne) ClearTotalTokens() *UsageRecordUpdateOne {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetCost sets the "cost" field.
func (_u *UsageRecordUpdateOne) SetCost(v float64) *UsageRecordUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableCost(v *float64) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *UsageRecordUpdateOne) AddCost(v float64) *UsageRecordUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *UsageRecordUpdateOne) ClearCost() *UsageRecordUpdateOne {
	_u.mutation.ClearCost()
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdateOne) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdateOne) Where(ps ...predicate.UsageRecord) *UsageRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageRecordUpdateOne) Select(field string, fields ...string) *UsageRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageRecord entity.
func (_u *UsageRecordUpdateOne) Save(ctx context.Context) (*UsageRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) SaveX(ctx context.Context) *UsageRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageRecordUpdateOne) check() error {
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := usagerecord.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.organization_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageRecordUpdateOne) sqlSave(ctx context.Context) (_node *UsageRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagerecord.FieldID)
		for _, f := range fields {
			if !usagerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagerecord.FieldID {
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
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(usagerecord.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Spus(); ok {
		_spec.SetField(usagerecord.FieldSpus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpus(); ok {
		_spec.AddField(usagerecord.FieldSpus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(usagerecord.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(usagerecord.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(usagerecord.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(usagerecord.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(usagerecord.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(usagerecord.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(usagerecord.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(usagerecord.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(usagerecord.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(usagerecord.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(usagerecord.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(usagerecord.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(usagerecord.FieldTotalTokens, field.TypeInt, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(usagerecord.FieldTotalTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(usagerecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(usagerecord.FieldCost, field.TypeFloat64, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(usagerecord.FieldCost, field.TypeFloat64)
	}
	_node = &UsageRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
