// Code generated by ent, DO NOT EDIT.

package llmresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the llmresult type in the database.
	Label = "llm_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldPromptRevID holds the string denoting the prompt_rev_id field in the database.
	FieldPromptRevID = "prompt_rev_id"
	// FieldPromptID holds the string denoting the prompt_id field in the database.
	FieldPromptID = "prompt_id"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// FieldLlmResult holds the string denoting the llm_result field in the database.
	FieldLlmResult = "llm_result"
	// FieldUpdatedLlmResult holds the string denoting the updated_llm_result field in the database.
	FieldUpdatedLlmResult = "updated_llm_result"
	// FieldIsEdited holds the string denoting the is_edited field in the database.
	FieldIsEdited = "is_edited"
	// FieldIsVerified holds the string denoting the is_verified field in the database.
	FieldIsVerified = "is_verified"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the llmresult in the database.
	Table = "llm_results"
)

// Columns holds all SQL columns for llmresult fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldPromptRevID,
	FieldPromptID,
	FieldPromptVersion,
	FieldLlmResult,
	FieldUpdatedLlmResult,
	FieldIsEdited,
	FieldIsVerified,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	DocumentIDValidator func(string) error
	// PromptRevIDValidator is a validator for the "prompt_rev_id" field. It is called by the builders before save.
	PromptRevIDValidator func(string) error
	// DefaultIsEdited holds the default value on creation for the "is_edited" field.
	DefaultIsEdited bool
	// DefaultIsVerified holds the default value on creation for the "is_verified" field.
	DefaultIsVerified bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the LLMResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByPromptRevID orders the results by the prompt_rev_id field.
func ByPromptRevID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptRevID, opts...).ToFunc()
}

// ByPromptID orders the results by the prompt_id field.
func ByPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptID, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}

// ByLlmResult orders the results by the llm_result field.
func ByLlmResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmResult, opts...).ToFunc()
}

// ByUpdatedLlmResult orders the results by the updated_llm_result field.
func ByUpdatedLlmResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedLlmResult, opts...).ToFunc()
}

// ByIsEdited orders the results by the is_edited field.
func ByIsEdited(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEdited, opts...).ToFunc()
}

// ByIsVerified orders the results by the is_verified field.
func ByIsVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsVerified, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
