// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docrouter-ce/docrouter/ent/llmprovider"
)

// LLMProvider is the model entity for the LLMProvider schema.
type LLMProvider struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Catalog provider key used for model qualification
	LitellmProvider string `json:"litellm_provider,omitempty"`
	// LitellmModelsAvailable holds the value of the "litellm_models_available" field.
	LitellmModelsAvailable []string `json:"litellm_models_available,omitempty"`
	// LitellmModelsEnabled holds the value of the "litellm_models_enabled" field.
	LitellmModelsEnabled []string `json:"litellm_models_enabled,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Encrypted provider API token
	Token string `json:"-"`
	// TokenCreatedAt holds the value of the "token_created_at" field.
	TokenCreatedAt time.Time `json:"token_created_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMProvider) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmprovider.FieldLitellmModelsAvailable, llmprovider.FieldLitellmModelsEnabled:
			values[i] = new([]byte)
		case llmprovider.FieldEnabled:
			values[i] = new(sql.NullBool)
		case llmprovider.FieldID, llmprovider.FieldName, llmprovider.FieldDisplayName, llmprovider.FieldLitellmProvider, llmprovider.FieldToken:
			values[i] = new(sql.NullString)
		case llmprovider.FieldTokenCreatedAt, llmprovider.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMProvider fields.
func (_m *LLMProvider) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmprovider.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case llmprovider.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case llmprovider.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case llmprovider.FieldLitellmProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field litellm_provider", values[i])
			} else if value.Valid {
				_m.LitellmProvider = value.String
			}
		case llmprovider.FieldLitellmModelsAvailable:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field litellm_models_available", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LitellmModelsAvailable); err != nil {
					return fmt.Errorf("unmarshal field litellm_models_available: %w", err)
				}
			}
		case llmprovider.FieldLitellmModelsEnabled:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field litellm_models_enabled", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LitellmModelsEnabled); err != nil {
					return fmt.Errorf("unmarshal field litellm_models_enabled: %w", err)
				}
			}
		case llmprovider.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case llmprovider.FieldToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token", values[i])
			} else if value.Valid {
				_m.Token = value.String
			}
		case llmprovider.FieldTokenCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field token_created_at", values[i])
			} else if value.Valid {
				_m.TokenCreatedAt = value.Time
			}
		case llmprovider.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMProvider.
// This includes values selected through modifiers, order, etc.
func (_m *LLMProvider) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LLMProvider.
// Note that you need to call LLMProvider.Unwrap() before calling this method if this LLMProvider
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMProvider) Update() *LLMProviderUpdateOne {
	return NewLLMProviderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMProvider entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMProvider) Unwrap() *LLMProvider {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMProvider is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMProvider) String() string {
	var builder strings.Builder
	builder.WriteString("LLMProvider(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("litellm_provider=")
	builder.WriteString(_m.LitellmProvider)
	builder.WriteString(", ")
	builder.WriteString("litellm_models_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.LitellmModelsAvailable))
	builder.WriteString(", ")
	builder.WriteString("litellm_models_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.LitellmModelsEnabled))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("token_created_at=")
	builder.WriteString(_m.TokenCreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LLMProviders is a parsable slice of LLMProvider.
type LLMProviders []*LLMProvider
