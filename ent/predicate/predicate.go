// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AccessToken is the predicate function for accesstoken builders.
type AccessToken func(*sql.Selector)

// BlobChunk is the predicate function for blobchunk builders.
type BlobChunk func(*sql.Selector)

// BlobObject is the predicate function for blobobject builders.
type BlobObject func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// LLMProvider is the predicate function for llmprovider builders.
type LLMProvider func(*sql.Selector)

// LLMResult is the predicate function for llmresult builders.
type LLMResult func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// PromptRevision is the predicate function for promptrevision builders.
type PromptRevision func(*sql.Selector)

// QueueMessage is the predicate function for queuemessage builders.
type QueueMessage func(*sql.Selector)

// SchemaRevision is the predicate function for schemarevision builders.
type SchemaRevision func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)

// UsageRecord is the predicate function for usagerecord builders.
type UsageRecord func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
