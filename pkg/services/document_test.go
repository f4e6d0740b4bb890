package services

import (
	"context"
	"encoding/base64"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/pkg/blob"
	"github.com/docrouter-ce/docrouter/pkg/database"
	"github.com/docrouter-ce/docrouter/pkg/intake"
	"github.com/docrouter-ce/docrouter/pkg/models"
	"github.com/docrouter-ce/docrouter/pkg/queue"
	testdb "github.com/docrouter-ce/docrouter/test/database"
)

func newDocumentService(t *testing.T) (*DocumentService, *database.Client, *queue.Queue) {
	t.Helper()
	client := testdb.NewTestClient(t)
	blobs := blob.NewStore(client.Client)
	q := queue.New(client.Client)
	converter := intake.NewConverter("soffice", filepath.Join(t.TempDir(), "convert.lock"))
	return NewDocumentService(client.Client, blobs, q, converter), client, q
}

func uploadRequest(name, content string) UploadRequest {
	return UploadRequest{
		Name:    name,
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
	}
}

func TestDocumentService_Upload(t *testing.T) {
	svc, client, q := newDocumentService(t)
	ctx := context.Background()

	req := uploadRequest("notes.txt", "plain text body")
	req.Metadata = models.DocumentMetadata{"case": "42"}
	doc, err := svc.Upload(ctx, "org1", "user1", req)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", doc.UserFileName)
	assert.Equal(t, "org1", doc.OrganizationID)
	assert.Equal(t, "user1", doc.UploadedBy)
	assert.Equal(t, "42", doc.Metadata["case"])

	// Original bytes are stored under the registry key.
	b, err := blob.NewStore(client.Client).Get(ctx, BucketFiles, doc.MongoFileName)
	require.NoError(t, err)
	assert.Equal(t, []byte("plain text body"), b.Bytes)
	assert.Equal(t, doc.ID, b.Metadata["document_id"])

	// Intake enqueues the OCR stage.
	msg, err := q.Recv(ctx, queue.QueueOCR)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, msg.Msg["document_id"])
}

func TestDocumentService_UploadValidation(t *testing.T) {
	svc, _, _ := newDocumentService(t)
	ctx := context.Background()

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.Upload(ctx, "org1", "user1", uploadRequest("", "x"))
		assert.True(t, IsValidation(err))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := svc.Upload(ctx, "org1", "user1", uploadRequest("malware.exe", "x"))
		assert.True(t, IsValidation(err))
	})

	t.Run("bad base64", func(t *testing.T) {
		_, err := svc.Upload(ctx, "org1", "user1", UploadRequest{Name: "a.txt", Content: "!!not base64!!"})
		assert.True(t, IsValidation(err))
	})

	t.Run("unknown tag", func(t *testing.T) {
		req := uploadRequest("a.txt", "x")
		req.TagIDs = []string{"missing"}
		_, err := svc.Upload(ctx, "org1", "user1", req)
		assert.True(t, IsValidation(err))
	})
}

func TestDocumentService_List(t *testing.T) {
	svc, client, _ := newDocumentService(t)
	tags := NewTagService(client.Client)
	ctx := context.Background()

	tag, err := tags.Create(ctx, "org1", "user1", TagRequest{Name: "invoices"})
	require.NoError(t, err)

	var docs []*ent.Document
	for _, name := range []string{"alpha.txt", "beta.txt", "invoice-march.txt"} {
		doc, err := svc.Upload(ctx, "org1", "user1", uploadRequest(name, "body of "+name))
		require.NoError(t, err)
		docs = append(docs, doc)
	}
	_, err = svc.Update(ctx, "org1", docs[2].ID, UpdateRequest{TagIDs: &[]string{tag.ID}})
	require.NoError(t, err)
	meta := models.DocumentMetadata{"department": "accounts payable"}
	_, err = svc.Update(ctx, "org1", docs[0].ID, UpdateRequest{Metadata: &meta})
	require.NoError(t, err)
	_, err = svc.Upload(ctx, "org2", "user1", uploadRequest("other-org.txt", "x"))
	require.NoError(t, err)

	t.Run("organization scoped", func(t *testing.T) {
		page, err := svc.List(ctx, "org1", ListFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalCount)
		assert.Len(t, page.Documents, 3)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := svc.List(ctx, "org1", ListFilter{Skip: 1, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalCount)
		assert.Len(t, page.Documents, 1)
		assert.Equal(t, 1, page.Skip)
	})

	t.Run("tag filter", func(t *testing.T) {
		page, err := svc.List(ctx, "org1", ListFilter{Limit: 10, TagIDs: []string{tag.ID}})
		require.NoError(t, err)
		require.Len(t, page.Documents, 1)
		assert.Equal(t, docs[2].ID, page.Documents[0].ID)
	})

	t.Run("name search", func(t *testing.T) {
		page, err := svc.List(ctx, "org1", ListFilter{Limit: 10, NameSearch: "INVOICE"})
		require.NoError(t, err)
		require.Len(t, page.Documents, 1)
		assert.Equal(t, "invoice-march.txt", page.Documents[0].UserFileName)
	})

	t.Run("metadata search", func(t *testing.T) {
		search := "department=" + url.QueryEscape("accounts payable")
		page, err := svc.List(ctx, "org1", ListFilter{Limit: 10, MetadataSearch: search})
		require.NoError(t, err)
		require.Len(t, page.Documents, 1)
		assert.Equal(t, docs[0].ID, page.Documents[0].ID)
	})

	t.Run("metadata search matches metacharacters literally", func(t *testing.T) {
		meta := models.DocumentMetadata{"discount": "100%"}
		_, err := svc.Update(ctx, "org1", docs[1].ID, UpdateRequest{Metadata: &meta})
		require.NoError(t, err)

		page, err := svc.List(ctx, "org1", ListFilter{
			Limit: 10, MetadataSearch: "discount=" + url.QueryEscape("0%"),
		})
		require.NoError(t, err)
		require.Len(t, page.Documents, 1)
		assert.Equal(t, docs[1].ID, page.Documents[0].ID)

		// A bare "%" is a literal character, not a wildcard.
		page, err = svc.List(ctx, "org1", ListFilter{
			Limit: 10, MetadataSearch: "department=" + url.QueryEscape("%"),
		})
		require.NoError(t, err)
		assert.Empty(t, page.Documents)
	})

	t.Run("malformed metadata search", func(t *testing.T) {
		_, err := svc.List(ctx, "org1", ListFilter{Limit: 10, MetadataSearch: "novalue"})
		assert.True(t, IsValidation(err))
	})

	t.Run("limit bounds", func(t *testing.T) {
		_, err := svc.List(ctx, "org1", ListFilter{Limit: 0})
		assert.True(t, IsValidation(err))
		_, err = svc.List(ctx, "org1", ListFilter{Limit: 101})
		assert.True(t, IsValidation(err))
		_, err = svc.List(ctx, "org1", ListFilter{Skip: -1, Limit: 10})
		assert.True(t, IsValidation(err))
	})
}

func TestDocumentService_GetBytes(t *testing.T) {
	svc, _, _ := newDocumentService(t)
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "org1", "user1", uploadRequest("a.txt", "content"))
	require.NoError(t, err)

	_, b, err := svc.GetBytes(ctx, "org1", doc.ID, "original")
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), b.Bytes)

	// Without conversion the PDF view is the original.
	_, b, err = svc.GetBytes(ctx, "org1", doc.ID, "pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), b.Bytes)

	_, _, err = svc.GetBytes(ctx, "org1", doc.ID, "jpeg")
	assert.True(t, IsValidation(err))

	// Cross-organization access resolves to not found.
	_, _, err = svc.GetBytes(ctx, "org2", doc.ID, "original")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentService_Update(t *testing.T) {
	svc, _, _ := newDocumentService(t)
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "org1", "user1", uploadRequest("old.txt", "x"))
	require.NoError(t, err)

	name := "renamed.txt"
	updated, err := svc.Update(ctx, "org1", doc.ID, UpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed.txt", updated.UserFileName)

	empty := ""
	_, err = svc.Update(ctx, "org1", doc.ID, UpdateRequest{Name: &empty})
	assert.True(t, IsValidation(err))

	// Nil fields stay untouched.
	meta := models.DocumentMetadata{"k": "v"}
	updated, err = svc.Update(ctx, "org1", doc.ID, UpdateRequest{Metadata: &meta})
	require.NoError(t, err)
	assert.Equal(t, "renamed.txt", updated.UserFileName)
	assert.Equal(t, "v", updated.Metadata["k"])
}

func TestDocumentService_DeleteCascades(t *testing.T) {
	svc, client, _ := newDocumentService(t)
	blobs := blob.NewStore(client.Client)
	results := NewResultService(client.Client)
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "org1", "user1", uploadRequest("gone.txt", "x"))
	require.NoError(t, err)
	require.NoError(t, blobs.Save(ctx, BucketOCR, doc.ID+"_text", []byte("ocr text"), nil))
	_, err = results.Save(ctx, doc.ID, "rev1", "p1", 1, `{"a": 1}`)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "org1", doc.ID))

	_, err = svc.Get(ctx, "org1", doc.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	exists, err := blobs.Exists(ctx, BucketFiles, doc.MongoFileName)
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = blobs.Exists(ctx, BucketOCR, doc.ID+"_text")
	require.NoError(t, err)
	assert.False(t, exists)
	_, err = results.Latest(ctx, doc.ID, "rev1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentService_SetState(t *testing.T) {
	svc, _, _ := newDocumentService(t)
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "org1", "user1", uploadRequest("a.txt", "x"))
	require.NoError(t, err)
	assert.Equal(t, string(models.StateUploaded), string(doc.State))

	require.NoError(t, svc.SetState(ctx, doc.ID, models.StateOCRProcessing))
	require.NoError(t, svc.SetState(ctx, doc.ID, models.StateOCRCompleted))

	// Skipping ahead in the state machine is refused.
	err = svc.SetState(ctx, doc.ID, models.StateLLMCompleted)
	assert.True(t, IsValidation(err))

	got, err := svc.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.StateOCRCompleted), string(got.State))
	assert.False(t, got.StateUpdatedAt.IsZero())
}

func TestDocumentService_StuckDocuments(t *testing.T) {
	svc, _, _ := newDocumentService(t)
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "org1", "user1", uploadRequest("slow.txt", "x"))
	require.NoError(t, err)
	require.NoError(t, svc.SetState(ctx, doc.ID, models.StateOCRProcessing))

	stuck, err := svc.StuckDocuments(ctx, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, stuck)

	stuck, err = svc.StuckDocuments(ctx, -time.Minute)
	require.NoError(t, err)
	require.Len(t, stuck, 1)
	assert.Equal(t, doc.ID, stuck[0].ID)
}
