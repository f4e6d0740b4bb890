// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docrouter-ce/docrouter/ent/accesstoken"
	"github.com/docrouter-ce/docrouter/ent/blobchunk"
	"github.com/docrouter-ce/docrouter/ent/blobobject"
	"github.com/docrouter-ce/docrouter/ent/document"
	"github.com/docrouter-ce/docrouter/ent/llmprovider"
	"github.com/docrouter-ce/docrouter/ent/llmresult"
	"github.com/docrouter-ce/docrouter/ent/organization"
	"github.com/docrouter-ce/docrouter/ent/promptrevision"
	"github.com/docrouter-ce/docrouter/ent/queuemessage"
	"github.com/docrouter-ce/docrouter/ent/schema"
	"github.com/docrouter-ce/docrouter/ent/schemarevision"
	"github.com/docrouter-ce/docrouter/ent/tag"
	"github.com/docrouter-ce/docrouter/ent/usagerecord"
	"github.com/docrouter-ce/docrouter/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accesstokenFields := schema.AccessToken{}.Fields()
	_ = accesstokenFields
	// accesstokenDescUserID is the schema descriptor for user_id field.
	accesstokenDescUserID := accesstokenFields[1].Descriptor()
	// accesstoken.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	accesstoken.UserIDValidator = accesstokenDescUserID.Validators[0].(func(string) error)
	// accesstokenDescCreatedAt is the schema descriptor for created_at field.
	accesstokenDescCreatedAt := accesstokenFields[5].Descriptor()
	// accesstoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	accesstoken.DefaultCreatedAt = accesstokenDescCreatedAt.Default.(func() time.Time)
	// accesstokenDescLifetime is the schema descriptor for lifetime field.
	accesstokenDescLifetime := accesstokenFields[6].Descriptor()
	// accesstoken.DefaultLifetime holds the default value on creation for the lifetime field.
	accesstoken.DefaultLifetime = accesstokenDescLifetime.Default.(int64)
	// accesstokenDescID is the schema descriptor for id field.
	accesstokenDescID := accesstokenFields[0].Descriptor()
	// accesstoken.DefaultID holds the default value on creation for the id field.
	accesstoken.DefaultID = accesstokenDescID.Default.(func() string)
	blobchunkFields := schema.BlobChunk{}.Fields()
	_ = blobchunkFields
	// blobchunkDescID is the schema descriptor for id field.
	blobchunkDescID := blobchunkFields[0].Descriptor()
	// blobchunk.DefaultID holds the default value on creation for the id field.
	blobchunk.DefaultID = blobchunkDescID.Default.(func() string)
	blobobjectFields := schema.BlobObject{}.Fields()
	_ = blobobjectFields
	// blobobjectDescUploadDate is the schema descriptor for upload_date field.
	blobobjectDescUploadDate := blobobjectFields[5].Descriptor()
	// blobobject.DefaultUploadDate holds the default value on creation for the upload_date field.
	blobobject.DefaultUploadDate = blobobjectDescUploadDate.Default.(func() time.Time)
	// blobobjectDescID is the schema descriptor for id field.
	blobobjectDescID := blobobjectFields[0].Descriptor()
	// blobobject.DefaultID holds the default value on creation for the id field.
	blobobject.DefaultID = blobobjectDescID.Default.(func() string)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescOrganizationID is the schema descriptor for organization_id field.
	documentDescOrganizationID := documentFields[1].Descriptor()
	// document.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	document.OrganizationIDValidator = documentDescOrganizationID.Validators[0].(func(string) error)
	// documentDescUploadDate is the schema descriptor for upload_date field.
	documentDescUploadDate := documentFields[6].Descriptor()
	// document.DefaultUploadDate holds the default value on creation for the upload_date field.
	document.DefaultUploadDate = documentDescUploadDate.Default.(func() time.Time)
	// documentDescStateUpdatedAt is the schema descriptor for state_updated_at field.
	documentDescStateUpdatedAt := documentFields[9].Descriptor()
	// document.DefaultStateUpdatedAt holds the default value on creation for the state_updated_at field.
	document.DefaultStateUpdatedAt = documentDescStateUpdatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() string)
	llmproviderFields := schema.LLMProvider{}.Fields()
	_ = llmproviderFields
	// llmproviderDescName is the schema descriptor for name field.
	llmproviderDescName := llmproviderFields[1].Descriptor()
	// llmprovider.NameValidator is a validator for the "name" field. It is called by the builders before save.
	llmprovider.NameValidator = llmproviderDescName.Validators[0].(func(string) error)
	// llmproviderDescEnabled is the schema descriptor for enabled field.
	llmproviderDescEnabled := llmproviderFields[6].Descriptor()
	// llmprovider.DefaultEnabled holds the default value on creation for the enabled field.
	llmprovider.DefaultEnabled = llmproviderDescEnabled.Default.(bool)
	// llmproviderDescCreatedAt is the schema descriptor for created_at field.
	llmproviderDescCreatedAt := llmproviderFields[9].Descriptor()
	// llmprovider.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmprovider.DefaultCreatedAt = llmproviderDescCreatedAt.Default.(func() time.Time)
	// llmproviderDescID is the schema descriptor for id field.
	llmproviderDescID := llmproviderFields[0].Descriptor()
	// llmprovider.DefaultID holds the default value on creation for the id field.
	llmprovider.DefaultID = llmproviderDescID.Default.(func() string)
	llmresultFields := schema.LLMResult{}.Fields()
	_ = llmresultFields
	// llmresultDescDocumentID is the schema descriptor for document_id field.
	llmresultDescDocumentID := llmresultFields[1].Descriptor()
	// llmresult.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	llmresult.DocumentIDValidator = llmresultDescDocumentID.Validators[0].(func(string) error)
	// llmresultDescPromptRevID is the schema descriptor for prompt_rev_id field.
	llmresultDescPromptRevID := llmresultFields[2].Descriptor()
	// llmresult.PromptRevIDValidator is a validator for the "prompt_rev_id" field. It is called by the builders before save.
	llmresult.PromptRevIDValidator = llmresultDescPromptRevID.Validators[0].(func(string) error)
	// llmresultDescIsEdited is the schema descriptor for is_edited field.
	llmresultDescIsEdited := llmresultFields[7].Descriptor()
	// llmresult.DefaultIsEdited holds the default value on creation for the is_edited field.
	llmresult.DefaultIsEdited = llmresultDescIsEdited.Default.(bool)
	// llmresultDescIsVerified is the schema descriptor for is_verified field.
	llmresultDescIsVerified := llmresultFields[8].Descriptor()
	// llmresult.DefaultIsVerified holds the default value on creation for the is_verified field.
	llmresult.DefaultIsVerified = llmresultDescIsVerified.Default.(bool)
	// llmresultDescCreatedAt is the schema descriptor for created_at field.
	llmresultDescCreatedAt := llmresultFields[9].Descriptor()
	// llmresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmresult.DefaultCreatedAt = llmresultDescCreatedAt.Default.(func() time.Time)
	// llmresultDescUpdatedAt is the schema descriptor for updated_at field.
	llmresultDescUpdatedAt := llmresultFields[10].Descriptor()
	// llmresult.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	llmresult.DefaultUpdatedAt = llmresultDescUpdatedAt.Default.(func() time.Time)
	// llmresultDescID is the schema descriptor for id field.
	llmresultDescID := llmresultFields[0].Descriptor()
	// llmresult.DefaultID holds the default value on creation for the id field.
	llmresult.DefaultID = llmresultDescID.Default.(func() string)
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[1].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = organizationDescName.Validators[0].(func(string) error)
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationFields[4].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationFields[5].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organizationDescID is the schema descriptor for id field.
	organizationDescID := organizationFields[0].Descriptor()
	// organization.DefaultID holds the default value on creation for the id field.
	organization.DefaultID = organizationDescID.Default.(func() string)
	promptrevisionFields := schema.PromptRevision{}.Fields()
	_ = promptrevisionFields
	// promptrevisionDescPromptID is the schema descriptor for prompt_id field.
	promptrevisionDescPromptID := promptrevisionFields[1].Descriptor()
	// promptrevision.PromptIDValidator is a validator for the "prompt_id" field. It is called by the builders before save.
	promptrevision.PromptIDValidator = promptrevisionDescPromptID.Validators[0].(func(string) error)
	// promptrevisionDescName is the schema descriptor for name field.
	promptrevisionDescName := promptrevisionFields[3].Descriptor()
	// promptrevision.NameValidator is a validator for the "name" field. It is called by the builders before save.
	promptrevision.NameValidator = promptrevisionDescName.Validators[0].(func(string) error)
	// promptrevisionDescModel is the schema descriptor for model field.
	promptrevisionDescModel := promptrevisionFields[8].Descriptor()
	// promptrevision.DefaultModel holds the default value on creation for the model field.
	promptrevision.DefaultModel = promptrevisionDescModel.Default.(string)
	// promptrevisionDescOrganizationID is the schema descriptor for organization_id field.
	promptrevisionDescOrganizationID := promptrevisionFields[9].Descriptor()
	// promptrevision.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	promptrevision.OrganizationIDValidator = promptrevisionDescOrganizationID.Validators[0].(func(string) error)
	// promptrevisionDescCreatedAt is the schema descriptor for created_at field.
	promptrevisionDescCreatedAt := promptrevisionFields[10].Descriptor()
	// promptrevision.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptrevision.DefaultCreatedAt = promptrevisionDescCreatedAt.Default.(func() time.Time)
	// promptrevisionDescID is the schema descriptor for id field.
	promptrevisionDescID := promptrevisionFields[0].Descriptor()
	// promptrevision.DefaultID holds the default value on creation for the id field.
	promptrevision.DefaultID = promptrevisionDescID.Default.(func() string)
	queuemessageFields := schema.QueueMessage{}.Fields()
	_ = queuemessageFields
	// queuemessageDescQueue is the schema descriptor for queue field.
	queuemessageDescQueue := queuemessageFields[1].Descriptor()
	// queuemessage.QueueValidator is a validator for the "queue" field. It is called by the builders before save.
	queuemessage.QueueValidator = queuemessageDescQueue.Validators[0].(func(string) error)
	// queuemessageDescCreatedAt is the schema descriptor for created_at field.
	queuemessageDescCreatedAt := queuemessageFields[5].Descriptor()
	// queuemessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	queuemessage.DefaultCreatedAt = queuemessageDescCreatedAt.Default.(func() time.Time)
	// queuemessageDescID is the schema descriptor for id field.
	queuemessageDescID := queuemessageFields[0].Descriptor()
	// queuemessage.DefaultID holds the default value on creation for the id field.
	queuemessage.DefaultID = queuemessageDescID.Default.(func() string)
	schemarevisionFields := schema.SchemaRevision{}.Fields()
	_ = schemarevisionFields
	// schemarevisionDescSchemaID is the schema descriptor for schema_id field.
	schemarevisionDescSchemaID := schemarevisionFields[1].Descriptor()
	// schemarevision.SchemaIDValidator is a validator for the "schema_id" field. It is called by the builders before save.
	schemarevision.SchemaIDValidator = schemarevisionDescSchemaID.Validators[0].(func(string) error)
	// schemarevisionDescName is the schema descriptor for name field.
	schemarevisionDescName := schemarevisionFields[3].Descriptor()
	// schemarevision.NameValidator is a validator for the "name" field. It is called by the builders before save.
	schemarevision.NameValidator = schemarevisionDescName.Validators[0].(func(string) error)
	// schemarevisionDescOrganizationID is the schema descriptor for organization_id field.
	schemarevisionDescOrganizationID := schemarevisionFields[5].Descriptor()
	// schemarevision.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	schemarevision.OrganizationIDValidator = schemarevisionDescOrganizationID.Validators[0].(func(string) error)
	// schemarevisionDescCreatedAt is the schema descriptor for created_at field.
	schemarevisionDescCreatedAt := schemarevisionFields[6].Descriptor()
	// schemarevision.DefaultCreatedAt holds the default value on creation for the created_at field.
	schemarevision.DefaultCreatedAt = schemarevisionDescCreatedAt.Default.(func() time.Time)
	// schemarevisionDescID is the schema descriptor for id field.
	schemarevisionDescID := schemarevisionFields[0].Descriptor()
	// schemarevision.DefaultID holds the default value on creation for the id field.
	schemarevision.DefaultID = schemarevisionDescID.Default.(func() string)
	tagFields := schema.Tag{}.Fields()
	_ = tagFields
	// tagDescOrganizationID is the schema descriptor for organization_id field.
	tagDescOrganizationID := tagFields[1].Descriptor()
	// tag.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	tag.OrganizationIDValidator = tagDescOrganizationID.Validators[0].(func(string) error)
	// tagDescName is the schema descriptor for name field.
	tagDescName := tagFields[2].Descriptor()
	// tag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tag.NameValidator = tagDescName.Validators[0].(func(string) error)
	// tagDescCreatedAt is the schema descriptor for created_at field.
	tagDescCreatedAt := tagFields[5].Descriptor()
	// tag.DefaultCreatedAt holds the default value on creation for the created_at field.
	tag.DefaultCreatedAt = tagDescCreatedAt.Default.(func() time.Time)
	// tagDescID is the schema descriptor for id field.
	tagDescID := tagFields[0].Descriptor()
	// tag.DefaultID holds the default value on creation for the id field.
	tag.DefaultID = tagDescID.Default.(func() string)
	usagerecordFields := schema.UsageRecord{}.Fields()
	_ = usagerecordFields
	// usagerecordDescOrganizationID is the schema descriptor for organization_id field.
	usagerecordDescOrganizationID := usagerecordFields[1].Descriptor()
	// usagerecord.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	usagerecord.OrganizationIDValidator = usagerecordDescOrganizationID.Validators[0].(func(string) error)
	// usagerecordDescCreatedAt is the schema descriptor for created_at field.
	usagerecordDescCreatedAt := usagerecordFields[10].Descriptor()
	// usagerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagerecord.DefaultCreatedAt = usagerecordDescCreatedAt.Default.(func() time.Time)
	// usagerecordDescID is the schema descriptor for id field.
	usagerecordDescID := usagerecordFields[0].Descriptor()
	// usagerecord.DefaultID holds the default value on creation for the id field.
	usagerecord.DefaultID = usagerecordDescID.Default.(func() string)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[5].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() string)
}
