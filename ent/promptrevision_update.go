// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/predicate"
	"github.com/docrouter-ce/docrouter/ent/promptrevision"
)

// PromptRevisionUpdate is the builder for updating PromptRevision entities.
type PromptRevisionUpdate struct {
	config
	hooks    []Hook
	mutation *PromptRevisionMutation
}

// Where appends a list predicates to the PromptRevisionUpdate builder.
func (_u *PromptRevisionUpdate) Where(ps ...predicate.PromptRevision) *PromptRevisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PromptRevisionUpdate) SetName(v string) *PromptRevisionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptRevisionUpdate) SetNillableName(v *string) *PromptRevisionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PromptRevisionUpdate) SetContent(v string) *PromptRevisionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PromptRevisionUpdate) SetNillableContent(v *string) *PromptRevisionUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSchemaID sets the "schema_id" field.
func (_u *PromptRevisionUpdate) SetSchemaID(v string) *PromptRevisionUpdate {
	_u.mutation.SetSchemaID(v)
	return _u
}

// SetNillableSchemaID sets the "schema_id" field if the given value is not nil.
func (_u *PromptRevisionUpdate) SetNillableSchemaID(v *string) *PromptRevisionUpdate {
	if v != nil {
		_u.SetSchemaID(*v)
	}
	return _u
}

// ClearSchemaID clears the value of the "schema_id" field.
func (_u *PromptRevisionUpdate) ClearSchemaID() *PromptRevisionUpdate {
	_u.mutation.ClearSchemaID()
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *PromptRevisionUpdate) SetSchemaVersion(v int) *PromptRevisionUpdate {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *PromptRevisionUpdate) SetNillableSchemaVersion(v *int) *PromptRevisionUpdate {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *PromptRevisionUpdate) AddSchemaVersion(v int) *PromptRevisionUpdate {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// ClearSchemaVersion clears the value of the "schema_version" field.
func (_u *PromptRevisionUpdate) ClearSchemaVersion() *PromptRevisionUpdate {
	_u.mutation.ClearSchemaVersion()
	return _u
}

// SetTagIds sets the "tag_ids" field.
func (_u *PromptRevisionUpdate) SetTagIds(v []string) *PromptRevisionUpdate {
	_u.mutation.SetTagIds(v)
	return _u
}

// AppendTagIds appends value to the "tag_ids" field.
func (_u *PromptRevisionUpdate) AppendTagIds(v []string) *PromptRevisionUpdate {
	_u.mutation.AppendTagIds(v)
	return _u
}

// ClearTagIds clears the value of the "tag_ids" field.
func (_u *PromptRevisionUpdate) ClearTagIds() *PromptRevisionUpdate {
	_u.mutation.ClearTagIds()
	return _u
}

// SetModel sets the "model" field.
func (_u *PromptRevisionUpdate) SetModel(v string) *PromptRevisionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *PromptRevisionUpdate) SetNillableModel(v *string) *PromptRevisionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *PromptRevisionUpdate) SetOrganizationID(v string) *PromptRevisionUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *PromptRevisionUpdate) SetNillableOrganizationID(v *string) *PromptRevisionUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PromptRevisionUpdate) SetCreatedBy(v string) *PromptRevisionUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PromptRevisionUpdate) SetNillableCreatedBy(v *string) *PromptRevisionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PromptRevisionUpdate) ClearCreatedBy() *PromptRevisionUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the PromptRevisionMutation object of the builder.
func (_u *PromptRevisionUpdate) Mutation() *PromptRevisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptRevisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptRevisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptRevisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptRevisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptRevisionUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := promptrevision.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PromptRevision.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := promptrevision.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "PromptRevision.organization_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptRevisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptrevision.Table, promptrevision.Columns, sqlgraph.NewFieldSpec(promptrevision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(promptrevision.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(promptrevision.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaID(); ok {
		_spec.SetField(promptrevision.FieldSchemaID, field.TypeString, value)
	}
	if _u.mutation.SchemaIDCleared() {
		_spec.ClearField(promptrevision.FieldSchemaID, field.TypeString)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(promptrevision.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(promptrevision.FieldSchemaVersion, field.TypeInt, value)
	}
	if _u.mutation.SchemaVersionCleared() {
		_spec.ClearField(promptrevision.FieldSchemaVersion, field.TypeInt)
	}
	if value, ok := _u.mutation.TagIds(); ok {
		_spec.SetField(promptrevision.FieldTagIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTagIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, promptrevision.FieldTagIds, value)
		})
	}
	if _u.mutation.TagIdsCleared() {
		_spec.ClearField(promptrevision.FieldTagIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(promptrevision.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(promptrevision.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(promptrevision.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(promptrevision.FieldCreatedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptrevision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptRevisionUpdateOne is the builder for updating a single PromptRevision entity.
type PromptRevisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptRevisionMutation
}

// SetName sets the "name" field.
func (_u *PromptRevisionUpdateOne) SetName(v string) *PromptRevisionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptRevisionUpdateOne) SetNillableName(v *string) *PromptRevisionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PromptRevisionUpdateOne) SetContent(v string) *PromptRevisionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PromptRevisionUpdateOne) SetNillableContent(v *string) *PromptRevisionUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSchemaID sets the "schema_id" field.
func (_u *PromptRevisionUpdateOne) SetSchemaID(v string) *PromptRevisionUpdateOne {
	_u.mutation.SetSchemaID(v)
	return _u
}

// SetNillableSchemaID sets the "schema_id" field if the given value is not nil.
func (_u *PromptRevisionUpdateOne) SetNillableSchemaID(v *string) *PromptRevisionUpdateOne {
	if v != nil {
		_u.SetSchemaID(*v)
	}
	return _u
}

// ClearSchemaID clears the value of the "schema_id" field.
func (_u *PromptRevisionUpdateOne) ClearSchemaID() *PromptRevisionUpdateOne {
	_u.mutation.ClearSchemaID()
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *PromptRevisionUpdateOne) SetSchemaVersion(v int) *PromptRevisionUpdateOne {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *PromptRevisionUpdateOne) SetNillableSchemaVersion(v *int) *PromptRevisionUpdateOne {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *PromptRevisionUpdateOne) AddSchemaVersion(v int) *PromptRevisionUpdateOne {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// ClearSchemaVersion clears the value of the "schema_version" field.
func (_u *PromptRevisionUpdateOne) ClearSchemaVersion() *PromptRevisionUpdateOne {
	_u.mutation.ClearSchemaVersion()
	return _u
}

// SetTagIds sets the "tag_ids" field.
func (_u *PromptRevisionUpdateOne) SetTagIds(v []string) *PromptRevisionUpdateOne {
	_u.mutation.SetTagIds(v)
	return _u
}

// AppendTagIds appends value to the "tag_ids" field.
func (_u *PromptRevisionUpdateOne) AppendTagIds(v []string) *PromptRevisionUpdateOne {
	_u.mutation.AppendTagIds(v)
	return _u
}

// ClearTagIds clears the value of the "tag_ids" field.
func (_u *PromptRevisionUpdateOne) ClearTagIds() *PromptRevisionUpdateOne {
	_u.mutation.ClearTagIds()
	return _u
}

// SetModel sets the "model" field.
func (_u *PromptRevisionUpdateOne) SetModel(v string) *PromptRevisionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *PromptRevisionUpdateOne) SetNillableModel(v *string) *PromptRevisionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *PromptRevisionUpdateOne) SetOrganizationID(v string) *PromptRevisionUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *PromptRevisionUpdateOne) SetNillableOrganizationID(v *string) *PromptRevisionUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PromptRevisionUpdateOne) SetCreatedBy(v string) *PromptRevisionUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PromptRevisionUpdateOne) SetNillableCreatedBy(v *string) *PromptRevisionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PromptRevisionUpdateOne) ClearCreatedBy() *PromptRevisionUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the PromptRevisionMutation object of the builder.
func (_u *PromptRevisionUpdateOne) Mutation() *PromptRevisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptRevisionUpdate builder.
func (_u *PromptRevisionUpdateOne) Where(ps ...predicate.PromptRevision) *PromptRevisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptRevisionUpdateOne) Select(field string, fields ...string) *PromptRevisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptRevision entity.
func (_u *PromptRevisionUpdateOne) Save(ctx context.Context) (*PromptRevision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptRevisionUpdateOne) SaveX(ctx context.Context) *PromptRevision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptRevisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptRevisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptRevisionUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := promptrevision.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PromptRevision.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := promptrevision.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "PromptRevision.organization_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptRevisionUpdateOne) sqlSave(ctx context.Context) (_node *PromptRevision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptrevision.Table, promptrevision.Columns, sqlgraph.NewFieldSpec(promptrevision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptRevision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptrevision.FieldID)
		for _, f := range fields {
			if !promptrevision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptrevision.FieldID {
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
		_spec.SetField(promptrevision.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(promptrevision.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaID(); ok {
		_spec.SetField(promptrevision.FieldSchemaID, field.TypeString, value)
	}
	if _u.mutation.SchemaIDCleared() {
		_spec.ClearField(promptrevision.FieldSchemaID, field.TypeString)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(promptrevision.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(promptrevision.FieldSchemaVersion, field.TypeInt, value)
	}
	if _u.mutation.SchemaVersionCleared() {
		_spec.ClearField(promptrevision.FieldSchemaVersion, field.TypeInt)
	}
	if value, ok := _u.mutation.TagIds(); ok {
		_spec.SetField(promptrevision.FieldTagIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTagIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, promptrevision.FieldTagIds, value)
		})
	}
	if _u.mutation.TagIdsCleared() {
		_spec.ClearField(promptrevision.FieldTagIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(promptrevision.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(promptrevision.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(promptrevision.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(promptrevision.FieldCreatedBy, field.TypeString)
	}
	_node = &PromptRevision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptrevision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
