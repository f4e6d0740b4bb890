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
	"github.com/docrouter-ce/docrouter/ent/document"
	"github.com/docrouter-ce/docrouter/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *DocumentUpdate) SetOrganizationID(v string) *DocumentUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOrganizationID(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetUserFileName sets the "user_file_name" field.
func (_u *DocumentUpdate) SetUserFileName(v string) *DocumentUpdate {
	_u.mutation.SetUserFileName(v)
	return _u
}

// SetNillableUserFileName sets the "user_file_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUserFileName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetUserFileName(*v)
	}
	return _u
}

// SetMongoFileName sets the "mongo_file_name" field.
func (_u *DocumentUpdate) SetMongoFileName(v string) *DocumentUpdate {
	_u.mutation.SetMongoFileName(v)
	return _u
}

// SetNillableMongoFileName sets the "mongo_file_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableMongoFileName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetMongoFileName(*v)
	}
	return _u
}

// SetPdfFileName sets the "pdf_file_name" field.
func (_u *DocumentUpdate) SetPdfFileName(v string) *DocumentUpdate {
	_u.mutation.SetPdfFileName(v)
	return _u
}

// SetNillablePdfFileName sets the "pdf_file_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePdfFileName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetPdfFileName(*v)
	}
	return _u
}

// SetPdfID sets the "pdf_id" field.
func (_u *DocumentUpdate) SetPdfID(v string) *DocumentUpdate {
	_u.mutation.SetPdfID(v)
	return _u
}

// SetNillablePdfID sets the "pdf_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePdfID(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetPdfID(*v)
	}
	return _u
}

// ClearPdfID clears the value of the "pdf_id" field.
func (_u *DocumentUpdate) ClearPdfID() *DocumentUpdate {
	_u.mutation.ClearPdfID()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *DocumentUpdate) SetUploadedBy(v string) *DocumentUpdate {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploadedBy(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (_u *DocumentUpdate) ClearUploadedBy() *DocumentUpdate {
	_u.mutation.ClearUploadedBy()
	return _u
}

// SetState sets the "state" field.
func (_u *DocumentUpdate) SetState(v document.State) *DocumentUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableState(v *document.State) *DocumentUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStateUpdatedAt sets the "state_updated_at" field.
func (_u *DocumentUpdate) SetStateUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetStateUpdatedAt(v)
	return _u
}

// SetNillableStateUpdatedAt sets the "state_updated_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStateUpdatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetStateUpdatedAt(*v)
	}
	return _u
}

// SetTagIds sets the "tag_ids" field.
func (_u *DocumentUpdate) SetTagIds(v []string) *DocumentUpdate {
	_u.mutation.SetTagIds(v)
	return _u
}

// AppendTagIds appends value to the "tag_ids" field.
func (_u *DocumentUpdate) AppendTagIds(v []string) *DocumentUpdate {
	_u.mutation.AppendTagIds(v)
	return _u
}

// ClearTagIds clears the value of the "tag_ids" field.
func (_u *DocumentUpdate) ClearTagIds() *DocumentUpdate {
	_u.mutation.ClearTagIds()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *DocumentUpdate) SetMetadata(v map[string]string) *DocumentUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *DocumentUpdate) ClearMetadata() *DocumentUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := document.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "Document.organization_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := document.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Document.state": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(document.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserFileName(); ok {
		_spec.SetField(document.FieldUserFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MongoFileName(); ok {
		_spec.SetField(document.FieldMongoFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PdfFileName(); ok {
		_spec.SetField(document.FieldPdfFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PdfID(); ok {
		_spec.SetField(document.FieldPdfID, field.TypeString, value)
	}
	if _u.mutation.PdfIDCleared() {
		_spec.ClearField(document.FieldPdfID, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(document.FieldUploadedBy, field.TypeString, value)
	}
	if _u.mutation.UploadedByCleared() {
		_spec.ClearField(document.FieldUploadedBy, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(document.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StateUpdatedAt(); ok {
		_spec.SetField(document.FieldStateUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TagIds(); ok {
		_spec.SetField(document.FieldTagIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTagIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldTagIds, value)
		})
	}
	if _u.mutation.TagIdsCleared() {
		_spec.ClearField(document.FieldTagIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(document.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(document.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetOrganizationID sets the "organization_id" field.
func (_u *DocumentUpdateOne) SetOrganizationID(v string) *DocumentUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOrganizationID(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetUserFileName sets the "user_file_name" field.
func (_u *DocumentUpdateOne) SetUserFileName(v string) *DocumentUpdateOne {
	_u.mutation.SetUserFileName(v)
	return _u
}

// SetNillableUserFileName sets the "user_file_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUserFileName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetUserFileName(*v)
	}
	return _u
}

// SetMongoFileName sets the "mongo_file_name" field.
func (_u *DocumentUpdateOne) SetMongoFileName(v string) *DocumentUpdateOne {
	_u.mutation.SetMongoFileName(v)
	return _u
}

// SetNillableMongoFileName sets the "mongo_file_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableMongoFileName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetMongoFileName(*v)
	}
	return _u
}

// SetPdfFileName sets the "pdf_file_name" field.
func (_u *DocumentUpdateOne) SetPdfFileName(v string) *DocumentUpdateOne {
	_u.mutation.SetPdfFileName(v)
	return _u
}

// SetNillablePdfFileName sets the "pdf_file_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePdfFileName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetPdfFileName(*v)
	}
	return _u
}

// SetPdfID sets the "pdf_id" field.
func (_u *DocumentUpdateOne) SetPdfID(v string) *DocumentUpdateOne {
	_u.mutation.SetPdfID(v)
	return _u
}

// SetNillablePdfID sets the "pdf_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePdfID(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetPdfID(*v)
	}
	return _u
}

// ClearPdfID clears the value of the "pdf_id" field.
func (_u *DocumentUpdateOne) ClearPdfID() *DocumentUpdateOne {
	_u.mutation.ClearPdfID()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *DocumentUpdateOne) SetUploadedBy(v string) *DocumentUpdateOne {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploadedBy(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (_u *DocumentUpdateOne) ClearUploadedBy() *DocumentUpdateOne {
	_u.mutation.ClearUploadedBy()
	return _u
}

// SetState sets the "state" field.
func (_u *DocumentUpdateOne) SetState(v document.State) *DocumentUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableState(v *document.State) *DocumentUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStateUpdatedAt sets the "state_updated_at" field.
func (_u *DocumentUpdateOne) SetStateUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetStateUpdatedAt(v)
	return _u
}

// SetNillableStateUpdatedAt sets the "state_updated_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStateUpdatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetStateUpdatedAt(*v)
	}
	return _u
}

// SetTagIds sets the "tag_ids" field.
func (_u *DocumentUpdateOne) SetTagIds(v []string) *DocumentUpdateOne {
	_u.mutation.SetTagIds(v)
	return _u
}

// AppendTagIds appends value to the "tag_ids" field.
func (_u *DocumentUpdateOne) AppendTagIds(v []string) *DocumentUpdateOne {
	_u.mutation.AppendTagIds(v)
	return _u
}

// ClearTagIds clears the value of the "tag_ids" field.
func (_u *DocumentUpdateOne) ClearTagIds() *DocumentUpdateOne {
	_u.mutation.ClearTagIds()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *DocumentUpdateOne) SetMetadata(v map[string]string) *DocumentUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *DocumentUpdateOne) ClearMetadata() *DocumentUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := document.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "Document.organization_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := document.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Document.state": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
		_spec.SetField(document.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserFileName(); ok {
		_spec.SetField(document.FieldUserFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MongoFileName(); ok {
		_spec.SetField(document.FieldMongoFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PdfFileName(); ok {
		_spec.SetField(document.FieldPdfFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PdfID(); ok {
		_spec.SetField(document.FieldPdfID, field.TypeString, value)
	}
	if _u.mutation.PdfIDCleared() {
		_spec.ClearField(document.FieldPdfID, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(document.FieldUploadedBy, field.TypeString, value)
	}
	if _u.mutation.UploadedByCleared() {
		_spec.ClearField(document.FieldUploadedBy, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(document.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StateUpdatedAt(); ok {
		_spec.SetField(document.FieldStateUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TagIds(); ok {
		_spec.SetField(document.FieldTagIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTagIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldTagIds, value)
		})
	}
	if _u.mutation.TagIdsCleared() {
		_spec.ClearField(document.FieldTagIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(document.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(document.FieldMetadata, field.TypeJSON)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
