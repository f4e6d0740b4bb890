// Code generated by ent, DO NOT EDIT.

package llmresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/docrouter-ce/docrouter/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldContainsFold(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldDocumentID, v))
}

// PromptRevID applies equality check predicate on the "prompt_rev_id" field. It's identical to PromptRevIDEQ.
func PromptRevID(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldPromptRevID, v))
}

// PromptID applies equality check predicate on the "prompt_id" field. It's identical to PromptIDEQ.
func PromptID(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldPromptID, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v int) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldPromptVersion, v))
}

// LlmResult applies equality check predicate on the "llm_result" field. It's identical to LlmResultEQ.
func LlmResult(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldLlmResult, v))
}

// UpdatedLlmResult applies equality check predicate on the "updated_llm_result" field. It's identical to UpdatedLlmResultEQ.
func UpdatedLlmResult(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldUpdatedLlmResult, v))
}

// IsEdited applies equality check predicate on the "is_edited" field. It's identical to IsEditedEQ.
func IsEdited(v bool) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldIsEdited, v))
}

// IsVerified applies equality check predicate on the "is_verified" field. It's identical to IsVerifiedEQ.
func IsVerified(v bool) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldIsVerified, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldContainsFold(FieldDocumentID, v))
}

// PromptRevIDEQ applies the EQ predicate on the "prompt_rev_id" field.
func PromptRevIDEQ(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldPromptRevID, v))
}

// PromptRevIDNEQ applies the NEQ predicate on the "prompt_rev_id" field.
func PromptRevIDNEQ(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNEQ(FieldPromptRevID, v))
}

// PromptRevIDIn applies the In predicate on the "prompt_rev_id" field.
func PromptRevIDIn(vs ...string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldIn(FieldPromptRevID, vs...))
}

// PromptRevIDNotIn applies the NotIn predicate on the "prompt_rev_id" field.
func PromptRevIDNotIn(vs ...string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNotIn(FieldPromptRevID, vs...))
}

// PromptRevIDGT applies the GT predicate on the "prompt_rev_id" field.
func PromptRevIDGT(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGT(FieldPromptRevID, v))
}

// PromptRevIDGTE applies the GTE predicate on the "prompt_rev_id" field.
func PromptRevIDGTE(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGTE(FieldPromptRevID, v))
}

// PromptRevIDLT applies the LT predicate on the "prompt_rev_id" field.
func PromptRevIDLT(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLT(FieldPromptRevID, v))
}

// PromptRevIDLTE applies the LTE predicate on the "prompt_rev_id" field.
func PromptRevIDLTE(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLTE(FieldPromptRevID, v))
}

// PromptRevIDContains applies the Contains predicate on the "prompt_rev_id" field.
func PromptRevIDContains(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldContains(FieldPromptRevID, v))
}

// PromptRevIDHasPrefix applies the HasPrefix predicate on the "prompt_rev_id" field.
func PromptRevIDHasPrefix(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldHasPrefix(FieldPromptRevID, v))
}

// PromptRevIDHasSuffix applies the HasSuffix predicate on the "prompt_rev_id" field.
func PromptRevIDHasSuffix(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldHasSuffix(FieldPromptRevID, v))
}

// PromptRevIDEqualFold applies the EqualFold predicate on the "prompt_rev_id" field.
func PromptRevIDEqualFold(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEqualFold(FieldPromptRevID, v))
}

// PromptRevIDContainsFold applies the ContainsFold predicate on the "prompt_rev_id" field.
func PromptRevIDContainsFold(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldContainsFold(FieldPromptRevID, v))
}

// PromptIDEQ applies the EQ predicate on the "prompt_id" field.
func PromptIDEQ(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldPromptID, v))
}

// PromptIDNEQ applies the NEQ predicate on the "prompt_id" field.
func PromptIDNEQ(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNEQ(FieldPromptID, v))
}

// PromptIDIn applies the In predicate on the "prompt_id" field.
func PromptIDIn(vs ...string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldIn(FieldPromptID, vs...))
}

// PromptIDNotIn applies the NotIn predicate on the "prompt_id" field.
func PromptIDNotIn(vs ...string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNotIn(FieldPromptID, vs...))
}

// PromptIDGT applies the GT predicate on the "prompt_id" field.
func PromptIDGT(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGT(FieldPromptID, v))
}

// PromptIDGTE applies the GTE predicate on the "prompt_id" field.
func PromptIDGTE(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGTE(FieldPromptID, v))
}

// PromptIDLT applies the LT predicate on the "prompt_id" field.
func PromptIDLT(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLT(FieldPromptID, v))
}

// PromptIDLTE applies the LTE predicate on the "prompt_id" field.
func PromptIDLTE(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLTE(FieldPromptID, v))
}

// PromptIDContains applies the Contains predicate on the "prompt_id" field.
func PromptIDContains(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldContains(FieldPromptID, v))
}

// PromptIDHasPrefix applies the HasPrefix predicate on the "prompt_id" field.
func PromptIDHasPrefix(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldHasPrefix(FieldPromptID, v))
}

// PromptIDHasSuffix applies the HasSuffix predicate on the "prompt_id" field.
func PromptIDHasSuffix(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldHasSuffix(FieldPromptID, v))
}

// PromptIDIsNil applies the IsNil predicate on the "prompt_id" field.
func PromptIDIsNil() predicate.LLMResult {
	return predicate.LLMResult(sql.FieldIsNull(FieldPromptID))
}

// PromptIDNotNil applies the NotNil predicate on the "prompt_id" field.
func PromptIDNotNil() predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNotNull(FieldPromptID))
}

// PromptIDEqualFold applies the EqualFold predicate on the "prompt_id" field.
func PromptIDEqualFold(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEqualFold(FieldPromptID, v))
}

// PromptIDContainsFold applies the ContainsFold predicate on the "prompt_id" field.
func PromptIDContainsFold(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldContainsFold(FieldPromptID, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v int) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v int) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...int) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...int) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v int) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v int) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v int) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v int) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionIsNil applies the IsNil predicate on the "prompt_version" field.
func PromptVersionIsNil() predicate.LLMResult {
	return predicate.LLMResult(sql.FieldIsNull(FieldPromptVersion))
}

// PromptVersionNotNil applies the NotNil predicate on the "prompt_version" field.
func PromptVersionNotNil() predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNotNull(FieldPromptVersion))
}

// LlmResultEQ applies the EQ predicate on the "llm_result" field.
func LlmResultEQ(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldLlmResult, v))
}

// LlmResultNEQ applies the NEQ predicate on the "llm_result" field.
func LlmResultNEQ(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNEQ(FieldLlmResult, v))
}

// LlmResultIn applies the In predicate on the "llm_result" field.
func LlmResultIn(vs ...string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldIn(FieldLlmResult, vs...))
}

// LlmResultNotIn applies the NotIn predicate on the "llm_result" field.
func LlmResultNotIn(vs ...string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNotIn(FieldLlmResult, vs...))
}

// LlmResultGT applies the GT predicate on the "llm_result" field.
func LlmResultGT(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGT(FieldLlmResult, v))
}

// LlmResultGTE applies the GTE predicate on the "llm_result" field.
func LlmResultGTE(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGTE(FieldLlmResult, v))
}

// LlmResultLT applies the LT predicate on the "llm_result" field.
func LlmResultLT(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLT(FieldLlmResult, v))
}

// LlmResultLTE applies the LTE predicate on the "llm_result" field.
func LlmResultLTE(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLTE(FieldLlmResult, v))
}

// LlmResultContains applies the Contains predicate on the "llm_result" field.
func LlmResultContains(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldContains(FieldLlmResult, v))
}

// LlmResultHasPrefix applies the HasPrefix predicate on the "llm_result" field.
func LlmResultHasPrefix(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldHasPrefix(FieldLlmResult, v))
}

// LlmResultHasSuffix applies the HasSuffix predicate on the "llm_result" field.
func LlmResultHasSuffix(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldHasSuffix(FieldLlmResult, v))
}

// LlmResultEqualFold applies the EqualFold predicate on the "llm_result" field.
func LlmResultEqualFold(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEqualFold(FieldLlmResult, v))
}

// LlmResultContainsFold applies the ContainsFold predicate on the "llm_result" field.
func LlmResultContainsFold(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldContainsFold(FieldLlmResult, v))
}

// UpdatedLlmResultEQ applies the EQ predicate on the "updated_llm_result" field.
func UpdatedLlmResultEQ(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldUpdatedLlmResult, v))
}

// UpdatedLlmResultNEQ applies the NEQ predicate on the "updated_llm_result" field.
func UpdatedLlmResultNEQ(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNEQ(FieldUpdatedLlmResult, v))
}

// UpdatedLlmResultIn applies the In predicate on the "updated_llm_result" field.
func UpdatedLlmResultIn(vs ...string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldIn(FieldUpdatedLlmResult, vs...))
}

// UpdatedLlmResultNotIn applies the NotIn predicate on the "updated_llm_result" field.
func UpdatedLlmResultNotIn(vs ...string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNotIn(FieldUpdatedLlmResult, vs...))
}

// UpdatedLlmResultGT applies the GT predicate on the "updated_llm_result" field.
func UpdatedLlmResultGT(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGT(FieldUpdatedLlmResult, v))
}

// UpdatedLlmResultGTE applies the GTE predicate on the "updated_llm_result" field.
func UpdatedLlmResultGTE(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGTE(FieldUpdatedLlmResult, v))
}

// UpdatedLlmResultLT applies the LT predicate on the "updated_llm_result" field.
func UpdatedLlmResultLT(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLT(FieldUpdatedLlmResult, v))
}

// UpdatedLlmResultLTE applies the LTE predicate on the "updated_llm_result" field.
func UpdatedLlmResultLTE(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLTE(FieldUpdatedLlmResult, v))
}

// UpdatedLlmResultContains applies the Contains predicate on the "updated_llm_result" field.
func UpdatedLlmResultContains(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldContains(FieldUpdatedLlmResult, v))
}

// UpdatedLlmResultHasPrefix applies the HasPrefix predicate on the "updated_llm_result" field.
func UpdatedLlmResultHasPrefix(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldHasPrefix(FieldUpdatedLlmResult, v))
}

// UpdatedLlmResultHasSuffix applies the HasSuffix predicate on the "updated_llm_result" field.
func UpdatedLlmResultHasSuffix(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldHasSuffix(FieldUpdatedLlmResult, v))
}

// UpdatedLlmResultEqualFold applies the EqualFold predicate on the "updated_llm_result" field.
func UpdatedLlmResultEqualFold(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEqualFold(FieldUpdatedLlmResult, v))
}

// UpdatedLlmResultContainsFold applies the ContainsFold predicate on the "updated_llm_result" field.
func UpdatedLlmResultContainsFold(v string) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldContainsFold(FieldUpdatedLlmResult, v))
}

// IsEditedEQ applies the EQ predicate on the "is_edited" field.
func IsEditedEQ(v bool) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldIsEdited, v))
}

// IsEditedNEQ applies the NEQ predicate on the "is_edited" field.
func IsEditedNEQ(v bool) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNEQ(FieldIsEdited, v))
}

// IsVerifiedEQ applies the EQ predicate on the "is_verified" field.
func IsVerifiedEQ(v bool) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldIsVerified, v))
}

// IsVerifiedNEQ applies the NEQ predicate on the "is_verified" field.
func IsVerifiedNEQ(v bool) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNEQ(FieldIsVerified, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LLMResult {
	return predicate.LLMResult(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMResult) predicate.LLMResult {
	return predicate.LLMResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMResult) predicate.LLMResult {
	return predicate.LLMResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMResult) predicate.LLMResult {
	return predicate.LLMResult(sql.NotPredicates(p))
}
