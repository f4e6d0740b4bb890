// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docrouter-ce/docrouter/ent/schemarevision"
	"github.com/docrouter-ce/docrouter/pkg/models"
)

// SchemaRevision is the model entity for the SchemaRevision schema.
type SchemaRevision struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SchemaID holds the value of the "schema_id" field.
	SchemaID string `json:"schema_id,omitempty"`
	// SchemaVersion holds the value of the "schema_version" field.
	SchemaVersion int `json:"schema_version,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// json_schema response format enforced on bound prompts
	ResponseFormat models.ResponseFormat `json:"response_format,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID string `json:"organization_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy    string `json:"created_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SchemaRevision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schemarevision.FieldResponseFormat:
			values[i] = new([]byte)
		case schemarevision.FieldSchemaVersion:
			values[i] = new(sql.NullInt64)
		case schemarevision.FieldID, schemarevision.FieldSchemaID, schemarevision.FieldName, schemarevision.FieldOrganizationID, schemarevision.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case schemarevision.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SchemaRevision fields.
func (_m *SchemaRevision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schemarevision.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case schemarevision.FieldSchemaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schema_id", values[i])
			} else if value.Valid {
				_m.SchemaID = value.String
			}
		case schemarevision.FieldSchemaVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field schema_version", values[i])
			} else if value.Valid {
				_m.SchemaVersion = int(value.Int64)
			}
		case schemarevision.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case schemarevision.FieldResponseFormat:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_format", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseFormat); err != nil {
					return fmt.Errorf("unmarshal field response_format: %w", err)
				}
			}
		case schemarevision.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case schemarevision.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case schemarevision.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SchemaRevision.
// This includes values selected through modifiers, order, etc.
func (_m *SchemaRevision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SchemaRevision.
// Note that you need to call SchemaRevision.Unwrap() before calling this method if this SchemaRevision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SchemaRevision) Update() *SchemaRevisionUpdateOne {
	return NewSchemaRevisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SchemaRevision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SchemaRevision) Unwrap() *SchemaRevision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SchemaRevision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SchemaRevision) String() string {
	var builder strings.Builder
	builder.WriteString("SchemaRevision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("schema_id=")
	builder.WriteString(_m.SchemaID)
	builder.WriteString(", ")
	builder.WriteString("schema_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchemaVersion))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("response_format=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseFormat))
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// SchemaRevisions is a parsable slice of SchemaRevision.
type SchemaRevisions []*SchemaRevision
