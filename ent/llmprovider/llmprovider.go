// Code generated by ent, DO NOT EDIT.

package llmprovider

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the llmprovider type in the database.
	Label = "llm_provider"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldLitellmProvider holds the string denoting the litellm_provider field in the database.
	FieldLitellmProvider = "litellm_provider"
	// FieldLitellmModelsAvailable holds the string denoting the litellm_models_available field in the database.
	FieldLitellmModelsAvailable = "litellm_models_available"
	// FieldLitellmModelsEnabled holds the string denoting the litellm_models_enabled field in the database.
	FieldLitellmModelsEnabled = "litellm_models_enabled"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldToken holds the string denoting the token field in the database.
	FieldToken = "token"
	// FieldTokenCreatedAt holds the string denoting the token_created_at field in the database.
	FieldTokenCreatedAt = "token_created_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the llmprovider in the database.
	Table = "llm_providers"
)

// Columns holds all SQL columns for llmprovider fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDisplayName,
	FieldLitellmProvider,
	FieldLitellmModelsAvailable,
	FieldLitellmModelsEnabled,
	FieldEnabled,
	FieldToken,
	FieldTokenCreatedAt,
	FieldCreatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the LLMProvider queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByLitellmProvider orders the results by the litellm_provider field.
func ByLitellmProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLitellmProvider, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByToken orders the results by the token field.
func ByToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToken, opts...).ToFunc()
}

// ByTokenCreatedAt orders the results by the token_created_at field.
func ByTokenCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCreatedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
