// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docrouter-ce/docrouter/ent/llmresult"
)

// LLMResult is the model entity for the LLMResult schema.
type LLMResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// PromptRevID holds the value of the "prompt_rev_id" field.
	PromptRevID string `json:"prompt_rev_id,omitempty"`
	// PromptID holds the value of the "prompt_id" field.
	PromptID string `json:"prompt_id,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion int `json:"prompt_version,omitempty"`
	// Original result, JSON text with ordered keys
	LlmResult string `json:"llm_result,omitempty"`
	// Editable copy; top-level key set must equal llm_result
	UpdatedLlmResult string `json:"updated_llm_result,omitempty"`
	// IsEdited holds the value of the "is_edited" field.
	IsEdited bool `json:"is_edited,omitempty"`
	// IsVerified holds the value of the "is_verified" field.
	IsVerified bool `json:"is_verified,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmresult.FieldIsEdited, llmresult.FieldIsVerified:
			values[i] = new(sql.NullBool)
		case llmresult.FieldPromptVersion:
			values[i] = new(sql.NullInt64)
		case llmresult.FieldID, llmresult.FieldDocumentID, llmresult.FieldPromptRevID, llmresult.FieldPromptID, llmresult.FieldLlmResult, llmresult.FieldUpdatedLlmResult:
			values[i] = new(sql.NullString)
		case llmresult.FieldCreatedAt, llmresult.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMResult fields.
func (_m *LLMResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case llmresult.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case llmresult.FieldPromptRevID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_rev_id", values[i])
			} else if value.Valid {
				_m.PromptRevID = value.String
			}
		case llmresult.FieldPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_id", values[i])
			} else if value.Valid {
				_m.PromptID = value.String
			}
		case llmresult.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = int(value.Int64)
			}
		case llmresult.FieldLlmResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_result", values[i])
			} else if value.Valid {
				_m.LlmResult = value.String
			}
		case llmresult.FieldUpdatedLlmResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_llm_result", values[i])
			} else if value.Valid {
				_m.UpdatedLlmResult = value.String
			}
		case llmresult.FieldIsEdited:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_edited", values[i])
			} else if value.Valid {
				_m.IsEdited = value.Bool
			}
		case llmresult.FieldIsVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_verified", values[i])
			} else if value.Valid {
				_m.IsVerified = value.Bool
			}
		case llmresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case llmresult.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMResult.
// This includes values selected through modifiers, order, etc.
func (_m *LLMResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LLMResult.
// Note that you need to call LLMResult.Unwrap() before calling this method if this LLMResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMResult) Update() *LLMResultUpdateOne {
	return NewLLMResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMResult) Unwrap() *LLMResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMResult) String() string {
	var builder strings.Builder
	builder.WriteString("LLMResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("prompt_rev_id=")
	builder.WriteString(_m.PromptRevID)
	builder.WriteString(", ")
	builder.WriteString("prompt_id=")
	builder.WriteString(_m.PromptID)
	builder.WriteString(", ")
	builder.WriteString("prompt_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptVersion))
	builder.WriteString(", ")
	builder.WriteString("llm_result=")
	builder.WriteString(_m.LlmResult)
	builder.WriteString(", ")
	builder.WriteString("updated_llm_result=")
	builder.WriteString(_m.UpdatedLlmResult)
	builder.WriteString(", ")
	builder.WriteString("is_edited=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEdited))
	builder.WriteString(", ")
	builder.WriteString("is_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsVerified))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LLMResults is a parsable slice of LLMResult.
type LLMResults []*LLMResult
