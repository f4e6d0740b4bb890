// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docrouter-ce/docrouter/ent/blobobject"
)

// BlobObject is the model entity for the BlobObject schema.
type BlobObject struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Bucket holds the value of the "bucket" field.
	Bucket string `json:"bucket,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// Size holds the value of the "size" field.
	Size int64 `json:"size,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]string `json:"metadata,omitempty"`
	// UploadDate holds the value of the "upload_date" field.
	UploadDate time.Time `json:"upload_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BlobObjectQuery when eager-loading is set.
	Edges        BlobObjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BlobObjectEdges holds the relations/edges for other nodes in the graph.
type BlobObjectEdges struct {
	// Chunks holds the value of the chunks edge.
	Chunks []*BlobChunk `json:"chunks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChunksOrErr returns the Chunks value or an error if the edge
// was not loaded in eager-loading.
func (e BlobObjectEdges) ChunksOrErr() ([]*BlobChunk, error) {
	if e.loadedTypes[0] {
		return e.Chunks, nil
	}
	return nil, &NotLoadedError{edge: "chunks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlobObject) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blobobject.FieldMetadata:
			values[i] = new([]byte)
		case blobobject.FieldSize:
			values[i] = new(sql.NullInt64)
		case blobobject.FieldID, blobobject.FieldBucket, blobobject.FieldKey:
			values[i] = new(sql.NullString)
		case blobobject.FieldUploadDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlobObject fields.
func (_m *BlobObject) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blobobject.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case blobobject.FieldBucket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bucket", values[i])
			} else if value.Valid {
				_m.Bucket = value.String
			}
		case blobobject.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case blobobject.FieldSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				_m.Size = value.Int64
			}
		case blobobject.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case blobobject.FieldUploadDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field upload_date", values[i])
			} else if value.Valid {
				_m.UploadDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BlobObject.
// This includes values selected through modifiers, order, etc.
func (_m *BlobObject) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChunks queries the "chunks" edge of the BlobObject entity.
func (_m *BlobObject) QueryChunks() *BlobChunkQuery {
	return NewBlobObjectClient(_m.config).QueryChunks(_m)
}

// Update returns a builder for updating this BlobObject.
// Note that you need to call BlobObject.Unwrap() before calling this method if this BlobObject
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlobObject) Update() *BlobObjectUpdateOne {
	return NewBlobObjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlobObject entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlobObject) Unwrap() *BlobObject {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlobObject is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlobObject) String() string {
	var builder strings.Builder
	builder.WriteString("BlobObject(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bucket=")
	builder.WriteString(_m.Bucket)
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", _m.Size))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("upload_date=")
	builder.WriteString(_m.UploadDate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BlobObjects is a parsable slice of BlobObject.
type BlobObjects []*BlobObject
