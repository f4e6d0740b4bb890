// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccessTokensColumns holds the columns for the "access_tokens" table.
	AccessTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "organization_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lifetime", Type: field.TypeInt64, Default: 0},
	}
	// AccessTokensTable holds the schema information for the "access_tokens" table.
	AccessTokensTable = &schema.Table{
		Name:       "access_tokens",
		Columns:    AccessTokensColumns,
		PrimaryKey: []*schema.Column{AccessTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "accesstoken_user_id",
				Unique:  false,
				Columns: []*schema.Column{AccessTokensColumns[1]},
			},
			{
				Name:    "accesstoken_organization_id",
				Unique:  false,
				Columns: []*schema.Column{AccessTokensColumns[2]},
			},
		},
	}
	// BlobChunksColumns holds the columns for the "blob_chunks" table.
	BlobChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "n", Type: field.TypeInt},
		{Name: "data", Type: field.TypeBytes},
		{Name: "blob_id", Type: field.TypeString},
	}
	// BlobChunksTable holds the schema information for the "blob_chunks" table.
	BlobChunksTable = &schema.Table{
		Name:       "blob_chunks",
		Columns:    BlobChunksColumns,
		PrimaryKey: []*schema.Column{BlobChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blob_chunks_blob_objects_chunks",
				Columns:    []*schema.Column{BlobChunksColumns[3]},
				RefColumns: []*schema.Column{BlobObjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blobchunk_blob_id_n",
				Unique:  true,
				Columns: []*schema.Column{BlobChunksColumns[3], BlobChunksColumns[1]},
			},
		},
	}
	// BlobObjectsColumns holds the columns for the "blob_objects" table.
	BlobObjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "bucket", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "size", Type: field.TypeInt64},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "upload_date", Type: field.TypeTime},
	}
	// BlobObjectsTable holds the schema information for the "blob_objects" table.
	BlobObjectsTable = &schema.Table{
		Name:       "blob_objects",
		Columns:    BlobObjectsColumns,
		PrimaryKey: []*schema.Column{BlobObjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blobobject_bucket_key",
				Unique:  true,
				Columns: []*schema.Column{BlobObjectsColumns[1], BlobObjectsColumns[2]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "user_file_name", Type: field.TypeString},
		{Name: "mongo_file_name", Type: field.TypeString},
		{Name: "pdf_file_name", Type: field.TypeString},
		{Name: "pdf_id", Type: field.TypeString, Nullable: true},
		{Name: "upload_date", Type: field.TypeTime},
		{Name: "uploaded_by", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"uploaded", "ocr_processing", "ocr_completed", "ocr_failed", "llm_processing", "llm_completed", "llm_failed"}, Default: "uploaded"},
		{Name: "state_updated_at", Type: field.TypeTime},
		{Name: "tag_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_organization_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "document_organization_id_upload_date",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[6]},
			},
			{
				Name:    "document_state_state_updated_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[8], DocumentsColumns[9]},
			},
		},
	}
	// LlmProvidersColumns holds the columns for the "llm_providers" table.
	LlmProvidersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "litellm_provider", Type: field.TypeString},
		{Name: "litellm_models_available", Type: field.TypeJSON, Nullable: true},
		{Name: "litellm_models_enabled", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: false},
		{Name: "token", Type: field.TypeString, Nullable: true},
		{Name: "token_created_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmProvidersTable holds the schema information for the "llm_providers" table.
	LlmProvidersTable = &schema.Table{
		Name:       "llm_providers",
		Columns:    LlmProvidersColumns,
		PrimaryKey: []*schema.Column{LlmProvidersColumns[0]},
	}
	// LlmResultsColumns holds the columns for the "llm_results" table.
	LlmResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "prompt_rev_id", Type: field.TypeString},
		{Name: "prompt_id", Type: field.TypeString, Nullable: true},
		{Name: "prompt_version", Type: field.TypeInt, Nullable: true},
		{Name: "llm_result", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_llm_result", Type: field.TypeString, Size: 2147483647},
		{Name: "is_edited", Type: field.TypeBool, Default: false},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LlmResultsTable holds the schema information for the "llm_results" table.
	LlmResultsTable = &schema.Table{
		Name:       "llm_results",
		Columns:    LlmResultsColumns,
		PrimaryKey: []*schema.Column{LlmResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmresult_document_id_prompt_rev_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmResultsColumns[1], LlmResultsColumns[2], LlmResultsColumns[9]},
			},
			{
				Name:    "llmresult_document_id",
				Unique:  false,
				Columns: []*schema.Column{LlmResultsColumns[1]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "members", Type: field.TypeJSON},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"individual", "team", "enterprise"}, Default: "individual"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
	}
	// PromptRevisionsColumns holds the columns for the "prompt_revisions" table.
	PromptRevisionsColumns = []*schema.Column{
		{Name: "prompt_revid", Type: field.TypeString, Unique: true},
		{Name: "prompt_id", Type: field.TypeString},
		{Name: "prompt_version", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "schema_id", Type: field.TypeString, Nullable: true},
		{Name: "schema_version", Type: field.TypeInt, Nullable: true},
		{Name: "tag_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "model", Type: field.TypeString, Default: "gpt-4o-mini"},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
	}
	// PromptRevisionsTable holds the schema information for the "prompt_revisions" table.
	PromptRevisionsTable = &schema.Table{
		Name:       "prompt_revisions",
		Columns:    PromptRevisionsColumns,
		PrimaryKey: []*schema.Column{PromptRevisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "promptrevision_prompt_id_prompt_version",
				Unique:  true,
				Columns: []*schema.Column{PromptRevisionsColumns[1], PromptRevisionsColumns[2]},
			},
			{
				Name:    "promptrevision_organization_id_name",
				Unique:  false,
				Columns: []*schema.Column{PromptRevisionsColumns[9], PromptRevisionsColumns[3]},
			},
		},
	}
	// QueueMessagesColumns holds the columns for the "queue_messages" table.
	QueueMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "msg_type", Type: field.TypeString, Nullable: true},
		{Name: "msg", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// QueueMessagesTable holds the schema information for the "queue_messages" table.
	QueueMessagesTable = &schema.Table{
		Name:       "queue_messages",
		Columns:    QueueMessagesColumns,
		PrimaryKey: []*schema.Column{QueueMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuemessage_queue_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[1], QueueMessagesColumns[2], QueueMessagesColumns[5]},
			},
		},
	}
	// SchemaRevisionsColumns holds the columns for the "schema_revisions" table.
	SchemaRevisionsColumns = []*schema.Column{
		{Name: "schema_revid", Type: field.TypeString, Unique: true},
		{Name: "schema_id", Type: field.TypeString},
		{Name: "schema_version", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "response_format", Type: field.TypeJSON},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
	}
	// SchemaRevisionsTable holds the schema information for the "schema_revisions" table.
	SchemaRevisionsTable = &schema.Table{
		Name:       "schema_revisions",
		Columns:    SchemaRevisionsColumns,
		PrimaryKey: []*schema.Column{SchemaRevisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "schemarevision_schema_id_schema_version",
				Unique:  true,
				Columns: []*schema.Column{SchemaRevisionsColumns[1], SchemaRevisionsColumns[2]},
			},
			{
				Name:    "schemarevision_organization_id_name",
				Unique:  false,
				Columns: []*schema.Column{SchemaRevisionsColumns[5], SchemaRevisionsColumns[3]},
			},
		},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "color", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tag_organization_id_name",
				Unique:  true,
				Columns: []*schema.Column{TagsColumns[1], TagsColumns[2]},
			},
		},
	}
	// UsageRecordsColumns holds the columns for the "usage_records" table.
	UsageRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "spus", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "prompt_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "completion_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsageRecordsTable holds the schema information for the "usage_records" table.
	UsageRecordsTable = &schema.Table{
		Name:       "usage_records",
		Columns:    UsageRecordsColumns,
		PrimaryKey: []*schema.Column{UsageRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagerecord_organization_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageRecordsColumns[1], UsageRecordsColumns[10]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "user"}, Default: "user"},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccessTokensTable,
		BlobChunksTable,
		BlobObjectsTable,
		DocumentsTable,
		LlmProvidersTable,
		LlmResultsTable,
		OrganizationsTable,
		PromptRevisionsTable,
		QueueMessagesTable,
		SchemaRevisionsTable,
		TagsTable,
		UsageRecordsTable,
		UsersTable,
	}
)

func init() {
	BlobChunksTable.ForeignKeys[0].RefTable = BlobObjectsTable
}
