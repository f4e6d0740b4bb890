// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docrouter-ce/docrouter/ent/document"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID string `json:"organization_id,omitempty"`
	// Original name as uploaded by the user
	UserFileName string `json:"user_file_name,omitempty"`
	// Blob key of the original bytes
	MongoFileName string `json:"mongo_file_name,omitempty"`
	// Blob key of the PDF view; equals mongo_file_name when already PDF
	PdfFileName string `json:"pdf_file_name,omitempty"`
	// PdfID holds the value of the "pdf_id" field.
	PdfID string `json:"pdf_id,omitempty"`
	// UploadDate holds the value of the "upload_date" field.
	UploadDate time.Time `json:"upload_date,omitempty"`
	// UploadedBy holds the value of the "uploaded_by" field.
	UploadedBy string `json:"uploaded_by,omitempty"`
	// State holds the value of the "state" field.
	State document.State `json:"state,omitempty"`
	// StateUpdatedAt holds the value of the "state_updated_at" field.
	StateUpdatedAt time.Time `json:"state_updated_at,omitempty"`
	// TagIds holds the value of the "tag_ids" field.
	TagIds []string `json:"tag_ids,omitempty"`
	// User-defined string→string metadata
	Metadata     map[string]string `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldTagIds, document.FieldMetadata:
			values[i] = new([]byte)
		case document.FieldID, document.FieldOrganizationID, document.FieldUserFileName, document.FieldMongoFileName, document.FieldPdfFileName, document.FieldPdfID, document.FieldUploadedBy, document.FieldState:
			values[i] = new(sql.NullString)
		case document.FieldUploadDate, document.FieldStateUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case document.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case document.FieldUserFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_file_name", values[i])
			} else if value.Valid {
				_m.UserFileName = value.String
			}
		case document.FieldMongoFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mongo_file_name", values[i])
			} else if value.Valid {
				_m.MongoFileName = value.String
			}
		case document.FieldPdfFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_file_name", values[i])
			} else if value.Valid {
				_m.PdfFileName = value.String
			}
		case document.FieldPdfID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_id", values[i])
			} else if value.Valid {
				_m.PdfID = value.String
			}
		case document.FieldUploadDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field upload_date", values[i])
			} else if value.Valid {
				_m.UploadDate = value.Time
			}
		case document.FieldUploadedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_by", values[i])
			} else if value.Valid {
				_m.UploadedBy = value.String
			}
		case document.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = document.State(value.String)
			}
		case document.FieldStateUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field state_updated_at", values[i])
			} else if value.Valid {
				_m.StateUpdatedAt = value.Time
			}
		case document.FieldTagIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tag_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TagIds); err != nil {
					return fmt.Errorf("unmarshal field tag_ids: %w", err)
				}
			}
		case document.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("user_file_name=")
	builder.WriteString(_m.UserFileName)
	builder.WriteString(", ")
	builder.WriteString("mongo_file_name=")
	builder.WriteString(_m.MongoFileName)
	builder.WriteString(", ")
	builder.WriteString("pdf_file_name=")
	builder.WriteString(_m.PdfFileName)
	builder.WriteString(", ")
	builder.WriteString("pdf_id=")
	builder.WriteString(_m.PdfID)
	builder.WriteString(", ")
	builder.WriteString("upload_date=")
	builder.WriteString(_m.UploadDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("uploaded_by=")
	builder.WriteString(_m.UploadedBy)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("state_updated_at=")
	builder.WriteString(_m.StateUpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tag_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.TagIds))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
