// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docrouter-ce/docrouter/ent/blobchunk"
	"github.com/docrouter-ce/docrouter/ent/blobobject"
)

// BlobChunk is the model entity for the BlobChunk schema.
type BlobChunk struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BlobID holds the value of the "blob_id" field.
	BlobID string `json:"blob_id,omitempty"`
	// Chunk sequence number, 0-based
	N int `json:"n,omitempty"`
	// Data holds the value of the "data" field.
	Data []byte `json:"data,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BlobChunkQuery when eager-loading is set.
	Edges        BlobChunkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BlobChunkEdges holds the relations/edges for other nodes in the graph.
type BlobChunkEdges struct {
	// Blob holds the value of the blob edge.
	Blob *BlobObject `json:"blob,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BlobOrErr returns the Blob value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlobChunkEdges) BlobOrErr() (*BlobObject, error) {
	if e.Blob != nil {
		return e.Blob, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: blobobject.Label}
	}
	return nil, &NotLoadedError{edge: "blob"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlobChunk) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blobchunk.FieldData:
			values[i] = new([]byte)
		case blobchunk.FieldN:
			values[i] = new(sql.NullInt64)
		case blobchunk.FieldID, blobchunk.FieldBlobID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlobChunk fields.
func (_m *BlobChunk) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blobchunk.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case blobchunk.FieldBlobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_id", values[i])
			} else if value.Valid {
				_m.BlobID = value.String
			}
		case blobchunk.FieldN:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field n", values[i])
			} else if value.Valid {
				_m.N = int(value.Int64)
			}
		case blobchunk.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil {
				_m.Data = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BlobChunk.
// This includes values selected through modifiers, order, etc.
func (_m *BlobChunk) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBlob queries the "blob" edge of the BlobChunk entity.
func (_m *BlobChunk) QueryBlob() *BlobObjectQuery {
	return NewBlobChunkClient(_m.config).QueryBlob(_m)
}

// Update returns a builder for updating this BlobChunk.
// Note that you need to call BlobChunk.Unwrap() before calling this method if this BlobChunk
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlobChunk) Update() *BlobChunkUpdateOne {
	return NewBlobChunkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlobChunk entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlobChunk) Unwrap() *BlobChunk {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlobChunk is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlobChunk) String() string {
	var builder strings.Builder
	builder.WriteString("BlobChunk(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("blob_id=")
	builder.WriteString(_m.BlobID)
	builder.WriteString(", ")
	builder.WriteString("n=")
	builder.WriteString(fmt.Sprintf("%v", _m.N))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// BlobChunks is a parsable slice of BlobChunk.
type BlobChunks []*BlobChunk
