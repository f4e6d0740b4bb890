// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docrouter-ce/docrouter/ent/document"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *DocumentCreate) SetOrganizationID(v string) *DocumentCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetUserFileName sets the "user_file_name" field.
func (_c *DocumentCreate) SetUserFileName(v string) *DocumentCreate {
	_c.mutation.SetUserFileName(v)
	return _c
}

// SetMongoFileName sets the "mongo_file_name" field.
func (_c *DocumentCreate) SetMongoFileName(v string) *DocumentCreate {
	_c.mutation.SetMongoFileName(v)
	return _c
}

// SetPdfFileName sets the "pdf_file_name" field.
func (_c *DocumentCreate) SetPdfFileName(v string) *DocumentCreate {
	_c.mutation.SetPdfFileName(v)
	return _c
}

// SetPdfID sets the "pdf_id" field.
func (_c *DocumentCreate) SetPdfID(v string) *DocumentCreate {
	_c.mutation.SetPdfID(v)
	return _c
}

// SetNillablePdfID sets the "pdf_id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePdfID(v *string) *DocumentCreate {
	if v != nil {
		_c.SetPdfID(*v)
	}
	return _c
}

// SetUploadDate sets the "upload_date" field.
func (_c *DocumentCreate) SetUploadDate(v time.Time) *DocumentCreate {
	_c.mutation.SetUploadDate(v)
	return _c
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUploadDate(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUploadDate(*v)
	}
	return _c
}

// SetUploadedBy sets the "uploaded_by" field.
func (_c *DocumentCreate) SetUploadedBy(v string) *DocumentCreate {
	_c.mutation.SetUploadedBy(v)
	return _c
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUploadedBy(v *string) *DocumentCreate {
	if v != nil {
		_c.SetUploadedBy(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *DocumentCreate) SetState(v document.State) *DocumentCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableState(v *document.State) *DocumentCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetStateUpdatedAt sets the "state_updated_at" field.
func (_c *DocumentCreate) SetStateUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetStateUpdatedAt(v)
	return _c
}

// SetNillableStateUpdatedAt sets the "state_updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableStateUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetStateUpdatedAt(*v)
	}
	return _c
}

// SetTagIds sets the "tag_ids" field.
func (_c *DocumentCreate) SetTagIds(v []string) *DocumentCreate {
	_c.mutation.SetTagIds(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *DocumentCreate) SetMetadata(v map[string]string) *DocumentCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v string) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *string) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.UploadDate(); !ok {
		v := document.DefaultUploadDate()
		_c.mutation.SetUploadDate(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := document.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.StateUpdatedAt(); !ok {
		v := document.DefaultStateUpdatedAt()
		_c.mutation.SetStateUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Document.organization_id"`)}
	}
	if v, ok := _c.mutation.OrganizationID(); ok {
		if err := document.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "Document.organization_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserFileName(); !ok {
		return &ValidationError{Name: "user_file_name", err: errors.New(`ent: missing required field "Document.user_file_name"`)}
	}
	if _, ok := _c.mutation.MongoFileName(); !ok {
		return &ValidationError{Name: "mongo_file_name", err: errors.New(`ent: missing required field "Document.mongo_file_name"`)}
	}
	if _, ok := _c.mutation.PdfFileName(); !ok {
		return &ValidationError{Name: "pdf_file_name", err: errors.New(`ent: missing required field "Document.pdf_file_name"`)}
	}
	if _, ok := _c.mutation.UploadDate(); !ok {
		return &ValidationError{Name: "upload_date", err: errors.New(`ent: missing required field "Document.upload_date"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Document.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := document.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Document.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StateUpdatedAt(); !ok {
		return &ValidationError{Name: "state_updated_at", err: errors.New(`ent: missing required field "Document.state_updated_at"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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
			return nil, fmt.Errorf("unexpected Document.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(document.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.UserFileName(); ok {
		_spec.SetField(document.FieldUserFileName, field.TypeString, value)
		_node.UserFileName = value
	}
	if value, ok := _c.mutation.MongoFileName(); ok {
		_spec.SetField(document.FieldMongoFileName, field.TypeString, value)
		_node.MongoFileName = value
	}
	if value, ok := _c.mutation.PdfFileName(); ok {
		_spec.SetField(document.FieldPdfFileName, field.TypeString, value)
		_node.PdfFileName = value
	}
	if value, ok := _c.mutation.PdfID(); ok {
		_spec.SetField(document.FieldPdfID, field.TypeString, value)
		_node.PdfID = value
	}
	if value, ok := _c.mutation.UploadDate(); ok {
		_spec.SetField(document.FieldUploadDate, field.TypeTime, value)
		_node.UploadDate = value
	}
	if value, ok := _c.mutation.UploadedBy(); ok {
		_spec.SetField(document.FieldUploadedBy, field.TypeString, value)
		_node.UploadedBy = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(document.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.StateUpdatedAt(); ok {
		_spec.SetField(document.FieldStateUpdatedAt, field.TypeTime, value)
		_node.StateUpdatedAt = value
	}
	if value, ok := _c.mutation.TagIds(); ok {
		_spec.SetField(document.FieldTagIds, field.TypeJSON, value)
		_node.TagIds = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(document.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
