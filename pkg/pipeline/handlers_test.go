package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/pkg/blob"
	"github.com/docrouter-ce/docrouter/pkg/models"
	"github.com/docrouter-ce/docrouter/pkg/ocr"
	"github.com/docrouter-ce/docrouter/pkg/queue"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// fakeOCR returns canned blocks or a fixed error.
type fakeOCR struct {
	blocks []ocr.Block
	err    error
	calls  int
}

func (f *fakeOCR) Run(ctx context.Context, data []byte, features ocr.Features) ([]ocr.Block, error) {
	f.calls++
	return f.blocks, f.err
}

// sendRecv enqueues a message and claims it back, as a worker would.
func sendRecv(t *testing.T, q *queue.Queue, queueName string, docID string) *ent.QueueMessage {
	t.Helper()
	ctx := context.Background()
	_, err := q.Send(ctx, queueName, queueName, map[string]any{"document_id": docID})
	require.NoError(t, err)
	msg, err := q.Recv(ctx, queueName)
	require.NoError(t, err)
	return msg
}

func TestOCRHandler_ProcessesPDF(t *testing.T) {
	f := newRunFixture(t)
	ctx := context.Background()
	q := queue.New(f.client)
	blobs := blob.NewStore(f.client)

	doc, err := f.docs.Upload(ctx, "org1", "user1", services.UploadRequest{
		Name:    "scan.pdf",
		Content: "JVBERi0xLjQ=", // "%PDF-1.4"
	})
	require.NoError(t, err)

	fake := &fakeOCR{blocks: []ocr.Block{
		{ID: "b1", BlockType: "LINE", Text: "hello", Page: 1},
	}}
	handler := NewOCRHandler(f.docs, blobs, fake, q)

	msg := sendRecv(t, q, queue.QueueOCR, doc.ID)
	require.NoError(t, handler.Handle(ctx, msg))
	assert.Equal(t, 1, fake.calls)

	got, err := f.docs.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.StateOCRCompleted), string(got.State))

	// Artifacts are persisted and the LLM stage is enqueued.
	text, pages, err := NewArtifacts(blobs).Text(ctx, doc.ID)
	require.NoError(t, err)
	assert.Contains(t, text, "hello")
	assert.Equal(t, 1, pages)

	next, err := q.Recv(ctx, queue.QueueLLM)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, next.Msg["document_id"])
}

func TestOCRHandler_SkipsNonOCRFormats(t *testing.T) {
	f := newRunFixture(t)
	ctx := context.Background()
	q := queue.New(f.client)
	blobs := blob.NewStore(f.client)

	doc := f.uploadTxt(t, "notes.txt", "plain text")
	fake := &fakeOCR{}
	handler := NewOCRHandler(f.docs, blobs, fake, q)

	msg := sendRecv(t, q, queue.QueueOCR, doc.ID)
	require.NoError(t, handler.Handle(ctx, msg))
	assert.Equal(t, 0, fake.calls)

	got, err := f.docs.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.StateOCRCompleted), string(got.State))

	// LLM still runs for formats that skip OCR.
	next, err := q.Recv(ctx, queue.QueueLLM)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, next.Msg["document_id"])
}

func TestOCRHandler_FailureForwardsToErrQueue(t *testing.T) {
	f := newRunFixture(t)
	ctx := context.Background()
	q := queue.New(f.client)
	blobs := blob.NewStore(f.client)

	doc, err := f.docs.Upload(ctx, "org1", "user1", services.UploadRequest{
		Name:    "scan.pdf",
		Content: "JVBERi0xLjQ=",
	})
	require.NoError(t, err)

	handler := NewOCRHandler(f.docs, blobs, &fakeOCR{err: assert.AnError}, q)

	msg := sendRecv(t, q, queue.QueueOCR, doc.ID)
	require.Error(t, handler.Handle(ctx, msg))

	got, err := f.docs.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.StateOCRFailed), string(got.State))

	errMsg, err := q.Recv(ctx, queue.QueueOCRErr)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, errMsg.Msg["document_id"])

	// The LLM stage is not reached.
	_, err = q.Recv(ctx, queue.QueueLLM)
	assert.ErrorIs(t, err, queue.ErrEmpty)
}

func TestLLMHandler_RunsDefaultAndTaggedPrompts(t *testing.T) {
	f := newRunFixture(t)
	ctx := context.Background()
	q := queue.New(f.client)

	tags := services.NewTagService(f.client)
	tag, err := tags.Create(ctx, "org1", "user1", services.TagRequest{Name: "letters"})
	require.NoError(t, err)

	rev, err := f.prompts.Create(ctx, "org1", "user1", services.PromptRequest{
		Name: "extract", Content: "Extract.", TagIDs: []string{tag.ID},
	})
	require.NoError(t, err)
	_, err = f.prompts.Create(ctx, "org1", "user1", services.PromptRequest{
		Name: "unrelated", Content: "Other.",
	})
	require.NoError(t, err)

	doc, err := f.docs.Upload(ctx, "org1", "user1", services.UploadRequest{
		Name:    "a.txt",
		Content: "Ym9keQ==", // "body"
		TagIDs:  []string{tag.ID},
	})
	require.NoError(t, err)
	// Move the document into the state the LLM stage expects.
	require.NoError(t, f.docs.SetState(ctx, doc.ID, models.StateOCRProcessing))
	require.NoError(t, f.docs.SetState(ctx, doc.ID, models.StateOCRCompleted))

	handler := NewLLMHandler(f.docs, f.orchestrator)
	msg := sendRecv(t, q, queue.QueueLLM, doc.ID)
	require.NoError(t, handler.Handle(ctx, msg))

	got, err := f.docs.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.StateLLMCompleted), string(got.State))

	// One result for the default prompt, one for the tag-matched prompt.
	results, err := f.results.ListLatestForDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	revIDs := map[string]bool{}
	for _, res := range results {
		revIDs[res.PromptRevID] = true
	}
	assert.True(t, revIDs[services.DefaultPromptRevID])
	assert.True(t, revIDs[rev.ID])
}

func TestLLMHandler_CreditRefusalMarksDocument(t *testing.T) {
	f := newRunFixture(t)
	ctx := context.Background()
	q := queue.New(f.client)

	doc := f.uploadTxt(t, "a.txt", "body")
	require.NoError(t, f.docs.SetState(ctx, doc.ID, models.StateOCRProcessing))
	require.NoError(t, f.docs.SetState(ctx, doc.ID, models.StateOCRCompleted))

	f.orchestrator.gate = &denyGate{}

	handler := NewLLMHandler(f.docs, f.orchestrator)
	msg := sendRecv(t, q, queue.QueueLLM, doc.ID)
	err := handler.Handle(ctx, msg)
	require.ErrorIs(t, err, services.ErrInsufficientCredits)

	got, err := f.docs.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.StateLLMFailed), string(got.State))

	n, err := f.client.LLMResult.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestLLMHandler_FailureMarksDocument(t *testing.T) {
	f := newRunFixture(t)
	ctx := context.Background()
	q := queue.New(f.client)

	doc := f.uploadTxt(t, "a.txt", "body")
	require.NoError(t, f.docs.SetState(ctx, doc.ID, models.StateOCRProcessing))
	require.NoError(t, f.docs.SetState(ctx, doc.ID, models.StateOCRCompleted))

	// No enabled provider rows makes every run fail.
	_, err := f.client.LLMProvider.Delete().Exec(ctx)
	require.NoError(t, err)

	handler := NewLLMHandler(f.docs, f.orchestrator)
	msg := sendRecv(t, q, queue.QueueLLM, doc.ID)
	require.Error(t, handler.Handle(ctx, msg))

	got, err := f.docs.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.StateLLMFailed), string(got.State))
}
