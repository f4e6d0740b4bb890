// Code generated by ent, DO NOT EDIT.

package document

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldUserFileName holds the string denoting the user_file_name field in the database.
	FieldUserFileName = "user_file_name"
	// FieldMongoFileName holds the string denoting the mongo_file_name field in the database.
	FieldMongoFileName = "mongo_file_name"
	// FieldPdfFileName holds the string denoting the pdf_file_name field in the database.
	FieldPdfFileName = "pdf_file_name"
	// FieldPdfID holds the string denoting the pdf_id field in the database.
	FieldPdfID = "pdf_id"
	// FieldUploadDate holds the string denoting the upload_date field in the database.
	FieldUploadDate = "upload_date"
	// FieldUploadedBy holds the string denoting the uploaded_by field in the database.
	FieldUploadedBy = "uploaded_by"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStateUpdatedAt holds the string denoting the state_updated_at field in the database.
	FieldStateUpdatedAt = "state_updated_at"
	// FieldTagIds holds the string denoting the tag_ids field in the database.
	FieldTagIds = "tag_ids"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the document in the database.
	Table = "documents"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldUserFileName,
	FieldMongoFileName,
	FieldPdfFileName,
	FieldPdfID,
	FieldUploadDate,
	FieldUploadedBy,
	FieldState,
	FieldStateUpdatedAt,
	FieldTagIds,
	FieldMetadata,
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
	// OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	OrganizationIDValidator func(string) error
	// DefaultUploadDate holds the default value on creation for the "upload_date" field.
	DefaultUploadDate func() time.Time
	// DefaultStateUpdatedAt holds the default value on creation for the "state_updated_at" field.
	DefaultStateUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// State defines the type for the "state" enum field.
type State string

// StateUploaded is the default value of the State enum.
const DefaultState = StateUploaded

// State values.
const (
	StateUploaded      State = "uploaded"
	StateOcrProcessing State = "ocr_processing"
	StateOcrCompleted  State = "ocr_completed"
	StateOcrFailed     State = "ocr_failed"
	StateLlmProcessing State = "llm_processing"
	StateLlmCompleted  State = "llm_completed"
	StateLlmFailed     State = "llm_failed"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateUploaded, StateOcrProcessing, StateOcrCompleted, StateOcrFailed, StateLlmProcessing, StateLlmCompleted, StateLlmFailed:
		return nil
	default:
		return fmt.Errorf("document: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByUserFileName orders the results by the user_file_name field.
func ByUserFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserFileName, opts...).ToFunc()
}

// ByMongoFileName orders the results by the mongo_file_name field.
func ByMongoFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMongoFileName, opts...).ToFunc()
}

// ByPdfFileName orders the results by the pdf_file_name field.
func ByPdfFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfFileName, opts...).ToFunc()
}

// ByPdfID orders the results by the pdf_id field.
func ByPdfID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfID, opts...).ToFunc()
}

// ByUploadDate orders the results by the upload_date field.
func ByUploadDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadDate, opts...).ToFunc()
}

// ByUploadedBy orders the results by the uploaded_by field.
func ByUploadedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedBy, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByStateUpdatedAt orders the results by the state_updated_at field.
func ByStateUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateUpdatedAt, opts...).ToFunc()
}
