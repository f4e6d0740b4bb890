// Code generated by ent, DO NOT EDIT.

package blobchunk

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the blobchunk type in the database.
	Label = "blob_chunk"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBlobID holds the string denoting the blob_id field in the database.
	FieldBlobID = "blob_id"
	// FieldN holds the string denoting the n field in the database.
	FieldN = "n"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// EdgeBlob holds the string denoting the blob edge name in mutations.
	EdgeBlob = "blob"
	// Table holds the table name of the blobchunk in the database.
	Table = "blob_chunks"
	// BlobTable is the table that holds the blob relation/edge.
	BlobTable = "blob_chunks"
	// BlobInverseTable is the table name for the BlobObject entity.
	// It exists in this package in order to avoid circular dependency with the "blobobject" package.
	BlobInverseTable = "blob_objects"
	// BlobColumn is the table column denoting the blob relation/edge.
	BlobColumn = "blob_id"
)

// Columns holds all SQL columns for blobchunk fields.
var Columns = []string{
	FieldID,
	FieldBlobID,
	FieldN,
	FieldData,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the BlobChunk queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBlobID orders the results by the blob_id field.
func ByBlobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobID, opts...).ToFunc()
}

// ByN orders the results by the n field.
func ByN(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldN, opts...).ToFunc()
}

// ByBlobField orders the results by blob field.
func ByBlobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlobStep(), sql.OrderByField(field, opts...))
	}
}
func newBlobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BlobTable, BlobColumn),
	)
}
