// Code generated by ent, DO NOT EDIT.

package schemarevision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/docrouter-ce/docrouter/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldContainsFold(FieldID, id))
}

// SchemaID applies equality check predicate on the "schema_id" field. It's identical to SchemaIDEQ.
func SchemaID(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldSchemaID, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v int) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldSchemaVersion, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldName, v))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldOrganizationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldCreatedBy, v))
}

// SchemaIDEQ applies the EQ predicate on the "schema_id" field.
func SchemaIDEQ(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldSchemaID, v))
}

// SchemaIDNEQ applies the NEQ predicate on the "schema_id" field.
func SchemaIDNEQ(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNEQ(FieldSchemaID, v))
}

// SchemaIDIn applies the In predicate on the "schema_id" field.
func SchemaIDIn(vs ...string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldIn(FieldSchemaID, vs...))
}

// SchemaIDNotIn applies the NotIn predicate on the "schema_id" field.
func SchemaIDNotIn(vs ...string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNotIn(FieldSchemaID, vs...))
}

// SchemaIDGT applies the GT predicate on the "schema_id" field.
func SchemaIDGT(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGT(FieldSchemaID, v))
}

// SchemaIDGTE applies the GTE predicate on the "schema_id" field.
func SchemaIDGTE(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGTE(FieldSchemaID, v))
}

// SchemaIDLT applies the LT predicate on the "schema_id" field.
func SchemaIDLT(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLT(FieldSchemaID, v))
}

// SchemaIDLTE applies the LTE predicate on the "schema_id" field.
func SchemaIDLTE(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLTE(FieldSchemaID, v))
}

// SchemaIDContains applies the Contains predicate on the "schema_id" field.
func SchemaIDContains(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldContains(FieldSchemaID, v))
}

// SchemaIDHasPrefix applies the HasPrefix predicate on the "schema_id" field.
func SchemaIDHasPrefix(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldHasPrefix(FieldSchemaID, v))
}

// SchemaIDHasSuffix applies the HasSuffix predicate on the "schema_id" field.
func SchemaIDHasSuffix(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldHasSuffix(FieldSchemaID, v))
}

// SchemaIDEqualFold applies the EqualFold predicate on the "schema_id" field.
func SchemaIDEqualFold(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEqualFold(FieldSchemaID, v))
}

// SchemaIDContainsFold applies the ContainsFold predicate on the "schema_id" field.
func SchemaIDContainsFold(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldContainsFold(FieldSchemaID, v))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v int) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v int) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...int) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...int) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v int) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v int) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v int) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v int) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLTE(FieldSchemaVersion, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldContainsFold(FieldName, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldContainsFold(FieldOrganizationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLTE(FieldCreatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.FieldContainsFold(FieldCreatedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SchemaRevision) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SchemaRevision) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SchemaRevision) predicate.SchemaRevision {
	return predicate.SchemaRevision(sql.NotPredicates(p))
}
