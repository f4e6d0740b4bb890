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
	"github.com/docrouter-ce/docrouter/ent/schemarevision"
	"github.com/docrouter-ce/docrouter/pkg/models"
)

// SchemaRevisionUpdate is the builder for updating SchemaRevision entities.
type SchemaRevisionUpdate struct {
	config
	hooks    []Hook
	mutation *SchemaRevisionMutation
}

// Where appends a list predicates to the SchemaRevisionUpdate builder.
func (_u *SchemaRevisionUpdate) Where(ps ...predicate.SchemaRevision) *SchemaRevisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SchemaRevisionUpdate) SetName(v string) *SchemaRevisionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SchemaRevisionUpdate) SetNillableName(v *string) *SchemaRevisionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetResponseFormat sets the "response_format" field.
func (_u *SchemaRevisionUpdate) SetResponseFormat(v models.ResponseFormat) *SchemaRevisionUpdate {
	_u.mutation.SetResponseFormat(v)
	return _u
}

// SetNillableResponseFormat sets the "response_format" field if the given value is not nil.
func (_u *SchemaRevisionUpdate) SetNillableResponseFormat(v *models.ResponseFormat) *SchemaRevisionUpdate {
	if v != nil {
		_u.SetResponseFormat(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *SchemaRevisionUpdate) SetOrganizationID(v string) *SchemaRevisionUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *SchemaRevisionUpdate) SetNillableOrganizationID(v *string) *SchemaRevisionUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SchemaRevisionUpdate) SetCreatedBy(v string) *SchemaRevisionUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SchemaRevisionUpdate) SetNillableCreatedBy(v *string) *SchemaRevisionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *SchemaRevisionUpdate) ClearCreatedBy() *SchemaRevisionUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the SchemaRevisionMutation object of the builder.
func (_u *SchemaRevisionUpdate) Mutation() *SchemaRevisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchemaRevisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchemaRevisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchemaRevisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchemaRevisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchemaRevisionUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := schemarevision.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SchemaRevision.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := schemarevision.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "SchemaRevision.organization_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SchemaRevisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schemarevision.Table, schemarevision.Columns, sqlgraph.NewFieldSpec(schemarevision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(schemarevision.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseFormat(); ok {
		_spec.SetField(schemarevision.FieldResponseFormat, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(schemarevision.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(schemarevision.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(schemarevision.FieldCreatedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schemarevision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchemaRevisionUpdateOne is the builder for updating a single SchemaRevision entity.
type SchemaRevisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchemaRevisionMutation
}

// SetName sets the "name" field.
func (_u *SchemaRevisionUpdateOne) SetName(v string) *SchemaRevisionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SchemaRevisionUpdateOne) SetNillableName(v *string) *SchemaRevisionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetResponseFormat sets the "response_format" field.
func (_u *SchemaRevisionUpdateOne) SetResponseFormat(v models.ResponseFormat) *SchemaRevisionUpdateOne {
	_u.mutation.SetResponseFormat(v)
	return _u
}

// SetNillableResponseFormat sets the "response_format" field if the given value is not nil.
func (_u *SchemaRevisionUpdateOne) SetNillableResponseFormat(v *models.ResponseFormat) *SchemaRevisionUpdateOne {
	if v != nil {
		_u.SetResponseFormat(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *SchemaRevisionUpdateOne) SetOrganizationID(v string) *SchemaRevisionUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *SchemaRevisionUpdateOne) SetNillableOrganizationID(v *string) *SchemaRevisionUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SchemaRevisionUpdateOne) SetCreatedBy(v string) *SchemaRevisionUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SchemaRevisionUpdateOne) SetNillableCreatedBy(v *string) *SchemaRevisionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *SchemaRevisionUpdateOne) ClearCreatedBy() *SchemaRevisionUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the SchemaRevisionMutation object of the builder.
func (_u *SchemaRevisionUpdateOne) Mutation() *SchemaRevisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SchemaRevisionUpdate builder.
func (_u *SchemaRevisionUpdateOne) Where(ps ...predicate.SchemaRevision) *SchemaRevisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchemaRevisionUpdateOne) Select(field string, fields ...string) *SchemaRevisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SchemaRevision entity.
func (_u *SchemaRevisionUpdateOne) Save(ctx context.Context) (*SchemaRevision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchemaRevisionUpdateOne) SaveX(ctx context.Context) *SchemaRevision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchemaRevisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchemaRevisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchemaRevisionUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := schemarevision.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SchemaRevision.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := schemarevision.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "SchemaRevision.organization_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SchemaRevisionUpdateOne) sqlSave(ctx context.Context) (_node *SchemaRevision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schemarevision.Table, schemarevision.Columns, sqlgraph.NewFieldSpec(schemarevision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SchemaRevision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schemarevision.FieldID)
		for _, f := range fields {
			if !schemarevision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schemarevision.FieldID {
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
		_spec.SetField(schemarevision.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseFormat(); ok {
		_spec.SetField(schemarevision.FieldResponseFormat, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(schemarevision.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(schemarevision.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(schemarevision.FieldCreatedBy, field.TypeString)
	}
	_node = &SchemaRevision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schemarevision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
