// Code generated by ent, DO NOT EDIT.

package promptrevision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/docrouter-ce/docrouter/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContainsFold(FieldID, id))
}

// PromptID applies equality check predicate on the "prompt_id" field. It's identical to PromptIDEQ.
func PromptID(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldPromptID, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldPromptVersion, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldName, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldContent, v))
}

// SchemaID applies equality check predicate on the "schema_id" field. It's identical to SchemaIDEQ.
func SchemaID(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldSchemaID, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldSchemaVersion, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldModel, v))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldOrganizationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldCreatedBy, v))
}

// PromptIDEQ applies the EQ predicate on the "prompt_id" field.
func PromptIDEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldPromptID, v))
}

// PromptIDNEQ applies the NEQ predicate on the "prompt_id" field.
func PromptIDNEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNEQ(FieldPromptID, v))
}

// PromptIDIn applies the In predicate on the "prompt_id" field.
func PromptIDIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIn(FieldPromptID, vs...))
}

// PromptIDNotIn applies the NotIn predicate on the "prompt_id" field.
func PromptIDNotIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotIn(FieldPromptID, vs...))
}

// PromptIDGT applies the GT predicate on the "prompt_id" field.
func PromptIDGT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGT(FieldPromptID, v))
}

// PromptIDGTE applies the GTE predicate on the "prompt_id" field.
func PromptIDGTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGTE(FieldPromptID, v))
}

// PromptIDLT applies the LT predicate on the "prompt_id" field.
func PromptIDLT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLT(FieldPromptID, v))
}

// PromptIDLTE applies the LTE predicate on the "prompt_id" field.
func PromptIDLTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLTE(FieldPromptID, v))
}

// PromptIDContains applies the Contains predicate on the "prompt_id" field.
func PromptIDContains(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContains(FieldPromptID, v))
}

// PromptIDHasPrefix applies the HasPrefix predicate on the "prompt_id" field.
func PromptIDHasPrefix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasPrefix(FieldPromptID, v))
}

// PromptIDHasSuffix applies the HasSuffix predicate on the "prompt_id" field.
func PromptIDHasSuffix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasSuffix(FieldPromptID, v))
}

// PromptIDEqualFold applies the EqualFold predicate on the "prompt_id" field.
func PromptIDEqualFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEqualFold(FieldPromptID, v))
}

// PromptIDContainsFold applies the ContainsFold predicate on the "prompt_id" field.
func PromptIDContainsFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContainsFold(FieldPromptID, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLTE(FieldPromptVersion, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContainsFold(FieldName, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContainsFold(FieldContent, v))
}

// SchemaIDEQ applies the EQ predicate on the "schema_id" field.
func SchemaIDEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldSchemaID, v))
}

// SchemaIDNEQ applies the NEQ predicate on the "schema_id" field.
func SchemaIDNEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNEQ(FieldSchemaID, v))
}

// SchemaIDIn applies the In predicate on the "schema_id" field.
func SchemaIDIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIn(FieldSchemaID, vs...))
}

// SchemaIDNotIn applies the NotIn predicate on the "schema_id" field.
func SchemaIDNotIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotIn(FieldSchemaID, vs...))
}

// SchemaIDGT applies the GT predicate on the "schema_id" field.
func SchemaIDGT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGT(FieldSchemaID, v))
}

// SchemaIDGTE applies the GTE predicate on the "schema_id" field.
func SchemaIDGTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGTE(FieldSchemaID, v))
}

// SchemaIDLT applies the LT predicate on the "schema_id" field.
func SchemaIDLT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLT(FieldSchemaID, v))
}

// SchemaIDLTE applies the LTE predicate on the "schema_id" field.
func SchemaIDLTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLTE(FieldSchemaID, v))
}

// SchemaIDContains applies the Contains predicate on the "schema_id" field.
func SchemaIDContains(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContains(FieldSchemaID, v))
}

// SchemaIDHasPrefix applies the HasPrefix predicate on the "schema_id" field.
func SchemaIDHasPrefix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasPrefix(FieldSchemaID, v))
}

// SchemaIDHasSuffix applies the HasSuffix predicate on the "schema_id" field.
func SchemaIDHasSuffix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasSuffix(FieldSchemaID, v))
}

// SchemaIDIsNil applies the IsNil predicate on the "schema_id" field.
func SchemaIDIsNil() predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIsNull(FieldSchemaID))
}

// SchemaIDNotNil applies the NotNil predicate on the "schema_id" field.
func SchemaIDNotNil() predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotNull(FieldSchemaID))
}

// SchemaIDEqualFold applies the EqualFold predicate on the "schema_id" field.
func SchemaIDEqualFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEqualFold(FieldSchemaID, v))
}

// SchemaIDContainsFold applies the ContainsFold predicate on the "schema_id" field.
func SchemaIDContainsFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContainsFold(FieldSchemaID, v))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v int) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLTE(FieldSchemaVersion, v))
}

// SchemaVersionIsNil applies the IsNil predicate on the "schema_version" field.
func SchemaVersionIsNil() predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIsNull(FieldSchemaVersion))
}

// SchemaVersionNotNil applies the NotNil predicate on the "schema_version" field.
func SchemaVersionNotNil() predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotNull(FieldSchemaVersion))
}

// TagIdsIsNil applies the IsNil predicate on the "tag_ids" field.
func TagIdsIsNil() predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIsNull(FieldTagIds))
}

// TagIdsNotNil applies the NotNil predicate on the "tag_ids" field.
func TagIdsNotNil() predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotNull(FieldTagIds))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContainsFold(FieldModel, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContainsFold(FieldOrganizationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLTE(FieldCreatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.PromptRevision {
	return predicate.PromptRevision(sql.FieldContainsFold(FieldCreatedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromptRevision) predicate.PromptRevision {
	return predicate.PromptRevision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromptRevision) predicate.PromptRevision {
	return predicate.PromptRevision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromptRevision) predicate.PromptRevision {
	return predicate.PromptRevision(sql.NotPredicates(p))
}
