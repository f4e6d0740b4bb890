// Code generated by ent, DO NOT EDIT.

package llmprovider

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/docrouter-ce/docrouter/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldName, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldDisplayName, v))
}

// LitellmProvider applies equality check predicate on the "litellm_provider" field. It's identical to LitellmProviderEQ.
func LitellmProvider(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldLitellmProvider, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldEnabled, v))
}

// Token applies equality check predicate on the "token" field. It's identical to TokenEQ.
func Token(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldToken, v))
}

// TokenCreatedAt applies equality check predicate on the "token_created_at" field. It's identical to TokenCreatedAtEQ.
func TokenCreatedAt(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldTokenCreatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldContainsFold(FieldName, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldContainsFold(FieldDisplayName, v))
}

// LitellmProviderEQ applies the EQ predicate on the "litellm_provider" field.
func LitellmProviderEQ(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldLitellmProvider, v))
}

// LitellmProviderNEQ applies the NEQ predicate on the "litellm_provider" field.
func LitellmProviderNEQ(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNEQ(FieldLitellmProvider, v))
}

// LitellmProviderIn applies the In predicate on the "litellm_provider" field.
func LitellmProviderIn(vs ...string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldIn(FieldLitellmProvider, vs...))
}

// LitellmProviderNotIn applies the NotIn predicate on the "litellm_provider" field.
func LitellmProviderNotIn(vs ...string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNotIn(FieldLitellmProvider, vs...))
}

// LitellmProviderGT applies the GT predicate on the "litellm_provider" field.
func LitellmProviderGT(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGT(FieldLitellmProvider, v))
}

// LitellmProviderGTE applies the GTE predicate on the "litellm_provider" field.
func LitellmProviderGTE(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGTE(FieldLitellmProvider, v))
}

// LitellmProviderLT applies the LT predicate on the "litellm_provider" field.
func LitellmProviderLT(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLT(FieldLitellmProvider, v))
}

// LitellmProviderLTE applies the LTE predicate on the "litellm_provider" field.
func LitellmProviderLTE(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLTE(FieldLitellmProvider, v))
}

// LitellmProviderContains applies the Contains predicate on the "litellm_provider" field.
func LitellmProviderContains(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldContains(FieldLitellmProvider, v))
}

// LitellmProviderHasPrefix applies the HasPrefix predicate on the "litellm_provider" field.
func LitellmProviderHasPrefix(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldHasPrefix(FieldLitellmProvider, v))
}

// LitellmProviderHasSuffix applies the HasSuffix predicate on the "litellm_provider" field.
func LitellmProviderHasSuffix(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldHasSuffix(FieldLitellmProvider, v))
}

// LitellmProviderEqualFold applies the EqualFold predicate on the "litellm_provider" field.
func LitellmProviderEqualFold(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEqualFold(FieldLitellmProvider, v))
}

// LitellmProviderContainsFold applies the ContainsFold predicate on the "litellm_provider" field.
func LitellmProviderContainsFold(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldContainsFold(FieldLitellmProvider, v))
}

// LitellmModelsAvailableIsNil applies the IsNil predicate on the "litellm_models_available" field.
func LitellmModelsAvailableIsNil() predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldIsNull(FieldLitellmModelsAvailable))
}

// LitellmModelsAvailableNotNil applies the NotNil predicate on the "litellm_models_available" field.
func LitellmModelsAvailableNotNil() predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNotNull(FieldLitellmModelsAvailable))
}

// LitellmModelsEnabledIsNil applies the IsNil predicate on the "litellm_models_enabled" field.
func LitellmModelsEnabledIsNil() predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldIsNull(FieldLitellmModelsEnabled))
}

// LitellmModelsEnabledNotNil applies the NotNil predicate on the "litellm_models_enabled" field.
func LitellmModelsEnabledNotNil() predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNotNull(FieldLitellmModelsEnabled))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNEQ(FieldEnabled, v))
}

// TokenEQ applies the EQ predicate on the "token" field.
func TokenEQ(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldToken, v))
}

// TokenNEQ applies the NEQ predicate on the "token" field.
func TokenNEQ(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNEQ(FieldToken, v))
}

// TokenIn applies the In predicate on the "token" field.
func TokenIn(vs ...string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldIn(FieldToken, vs...))
}

// TokenNotIn applies the NotIn predicate on the "token" field.
func TokenNotIn(vs ...string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNotIn(FieldToken, vs...))
}

// TokenGT applies the GT predicate on the "token" field.
func TokenGT(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGT(FieldToken, v))
}

// TokenGTE applies the GTE predicate on the "token" field.
func TokenGTE(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGTE(FieldToken, v))
}

// TokenLT applies the LT predicate on the "token" field.
func TokenLT(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLT(FieldToken, v))
}

// TokenLTE applies the LTE predicate on the "token" field.
func TokenLTE(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLTE(FieldToken, v))
}

// TokenContains applies the Contains predicate on the "token" field.
func TokenContains(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldContains(FieldToken, v))
}

// TokenHasPrefix applies the HasPrefix predicate on the "token" field.
func TokenHasPrefix(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldHasPrefix(FieldToken, v))
}

// TokenHasSuffix applies the HasSuffix predicate on the "token" field.
func TokenHasSuffix(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldHasSuffix(FieldToken, v))
}

// TokenIsNil applies the IsNil predicate on the "token" field.
func TokenIsNil() predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldIsNull(FieldToken))
}

// TokenNotNil applies the NotNil predicate on the "token" field.
func TokenNotNil() predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNotNull(FieldToken))
}

// TokenEqualFold applies the EqualFold predicate on the "token" field.
func TokenEqualFold(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEqualFold(FieldToken, v))
}

// TokenContainsFold applies the ContainsFold predicate on the "token" field.
func TokenContainsFold(v string) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldContainsFold(FieldToken, v))
}

// TokenCreatedAtEQ applies the EQ predicate on the "token_created_at" field.
func TokenCreatedAtEQ(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldTokenCreatedAt, v))
}

// TokenCreatedAtNEQ applies the NEQ predicate on the "token_created_at" field.
func TokenCreatedAtNEQ(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNEQ(FieldTokenCreatedAt, v))
}

// TokenCreatedAtIn applies the In predicate on the "token_created_at" field.
func TokenCreatedAtIn(vs ...time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldIn(FieldTokenCreatedAt, vs...))
}

// TokenCreatedAtNotIn applies the NotIn predicate on the "token_created_at" field.
func TokenCreatedAtNotIn(vs ...time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNotIn(FieldTokenCreatedAt, vs...))
}

// TokenCreatedAtGT applies the GT predicate on the "token_created_at" field.
func TokenCreatedAtGT(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGT(FieldTokenCreatedAt, v))
}

// TokenCreatedAtGTE applies the GTE predicate on the "token_created_at" field.
func TokenCreatedAtGTE(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGTE(FieldTokenCreatedAt, v))
}

// TokenCreatedAtLT applies the LT predicate on the "token_created_at" field.
func TokenCreatedAtLT(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLT(FieldTokenCreatedAt, v))
}

// TokenCreatedAtLTE applies the LTE predicate on the "token_created_at" field.
func TokenCreatedAtLTE(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLTE(FieldTokenCreatedAt, v))
}

// TokenCreatedAtIsNil applies the IsNil predicate on the "token_created_at" field.
func TokenCreatedAtIsNil() predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldIsNull(FieldTokenCreatedAt))
}

// TokenCreatedAtNotNil applies the NotNil predicate on the "token_created_at" field.
func TokenCreatedAtNotNil() predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNotNull(FieldTokenCreatedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMProvider {
	return predicate.LLMProvider(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMProvider) predicate.LLMProvider {
	return predicate.LLMProvider(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMProvider) predicate.LLMProvider {
	return predicate.LLMProvider(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMProvider) predicate.LLMProvider {
	return predicate.LLMProvider(sql.NotPredicates(p))
}
