// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/accesstoken"
	"github.com/docrouter-ce/docrouter/ent/predicate"
)

// AccessTokenUpdate is the builder for updating AccessToken entities.
type AccessTokenUpdate struct {
	config
	hooks    []Hook
	mutation *AccessTokenMutation
}

// Where appends a list predicates to the AccessTokenUpdate builder.
func (_u *AccessTokenUpdate) Where(ps ...predicate.AccessToken) *AccessTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AccessTokenUpdate) SetUserID(v string) *AccessTokenUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AccessTokenUpdate) SetNillableUserID(v *string) *AccessTokenUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *AccessTokenUpdate) SetOrganizationID(v string) *AccessTokenUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *AccessTokenUpdate) SetNillableOrganizationID(v *string) *AccessTokenUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *AccessTokenUpdate) ClearOrganizationID() *AccessTokenUpdate {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetName sets the "name" field.
func (_u *AccessTokenUpdate) SetName(v string) *AccessTokenUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AccessTokenUpdate) SetNillableName(v *string) *AccessTokenUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *AccessTokenUpdate) SetToken(v string) *AccessTokenUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *AccessTokenUpdate) SetNillableToken(v *string) *AccessTokenUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetLifetime sets the "lifetime" field.
func (_u *AccessTokenUpdate) SetLifetime(v int64) *AccessTokenUpdate {
	_u.mutation.ResetLifetime()
	_u.mutation.SetLifetime(v)
	return _u
}

// SetNillableLifetime sets the "lifetime" field if the given value is not nil.
func (_u *AccessTokenUpdate) SetNillableLifetime(v *int64) *AccessTokenUpdate {
	if v != nil {
		_u.SetLifetime(*v)
	}
	return _u
}

// AddLifetime adds value to the "lifetime" field.
func (_u *AccessTokenUpdate) AddLifetime(v int64) *AccessTokenUpdate {
	_u.mutation.AddLifetime(v)
	return _u
}

// Mutation returns the AccessTokenMutation object of the builder.
func (_u *AccessTokenUpdate) Mutation() *AccessTokenMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccessTokenUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccessTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccessTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccessTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccessTokenUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := accesstoken.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AccessToken.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AccessTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(accesstoken.Table, accesstoken.Columns, sqlgraph.NewFieldSpec(accesstoken.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(accesstoken.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(accesstoken.FieldOrganizationID, field.TypeString, value)
	}
	if _u.mutation.OrganizationIDCleared() {
		_spec.ClearField(accesstoken.FieldOrganizationID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(accesstoken.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(accesstoken.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lifetime(); ok {
		_spec.SetField(accesstoken.FieldLifetime, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLifetime(); ok {
		_spec.AddField(accesstoken.FieldLifetime, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accesstoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccessTokenUpdateOne is the builder for updating a single AccessToken entity.
type AccessTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccessTokenMutation
}

// SetUserID sets the "user_id" field.
func (_u *AccessTokenUpdateOne) SetUserID(v string) *AccessTokenUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AccessTokenUpdateOne) SetNillableUserID(v *string) *AccessTokenUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *AccessTokenUpdateOne) SetOrganizationID(v string) *AccessTokenUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *AccessTokenUpdateOne) SetNillableOrganizationID(v *string) *AccessTokenUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *AccessTokenUpdateOne) ClearOrganizationID() *AccessTokenUpdateOne {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetName sets the "name" field.
func (_u *AccessTokenUpdateOne) SetName(v string) *AccessTokenUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AccessTokenUpdateOne) SetNillableName(v *string) *AccessTokenUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *AccessTokenUpdateOne) SetToken(v string) *AccessTokenUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *AccessTokenUpdateOne) SetNillableToken(v *string) *AccessTokenUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetLifetime sets the "lifetime" field.
func (_u *AccessTokenUpdateOne) SetLifetime(v int64) *AccessTokenUpdateOne {
	_u.mutation.ResetLifetime()
	_u.mutation.SetLifetime(v)
	return _u
}

// SetNillableLifetime sets the "lifetime" field if the given value is not nil.
func (_u *AccessTokenUpdateOne) SetNillableLifetime(v *int64) *AccessTokenUpdateOne {
	if v != nil {
		_u.SetLifetime(*v)
	}
	return _u
}

// AddLifetime adds value to the "lifetime" field.
func (_u *AccessTokenUpdateOne) AddLifetime(v int64) *AccessTokenUpdateOne {
	_u.mutation.AddLifetime(v)
	return _u
}

// Mutation returns the AccessTokenMutation object of the builder.
func (_u *AccessTokenUpdateOne) Mutation() *AccessTokenMutation {
	return _u.mutation
}

// Where appends a list predicates to the AccessTokenUpdate builder.
func (_u *AccessTokenUpdateOne) Where(ps ...predicate.AccessToken) *AccessTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccessTokenUpdateOne) Select(field string, fields ...string) *AccessTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AccessToken entity.
func (_u *AccessTokenUpdateOne) Save(ctx context.Context) (*AccessToken, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccessTokenUpdateOne) SaveX(ctx context.Context) *AccessToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccessTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccessTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccessTokenUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := accesstoken.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AccessToken.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AccessTokenUpdateOne) sqlSave(ctx context.Context) (_node *AccessToken, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(accesstoken.Table, accesstoken.Columns, sqlgraph.NewFieldSpec(accesstoken.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AccessToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, accesstoken.FieldID)
		for _, f := range fields {
			if !accesstoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != accesstoken.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(accesstoken.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(accesstoken.FieldOrganizationID, field.TypeString, value)
	}
	if _u.mutation.OrganizationIDCleared() {
		_spec.ClearField(accesstoken.FieldOrganizationID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(accesstoken.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(accesstoken.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lifetime(); ok {
		_spec.SetField(accesstoken.FieldLifetime, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLifetime(); ok {
		_spec.AddField(accesstoken.FieldLifetime, field.TypeInt64, value)
	}
	_node = &AccessToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accesstoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
