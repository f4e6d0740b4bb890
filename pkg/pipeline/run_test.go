package pipeline

import (
	"context"
	"encoding/base64"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/pkg/blob"
	"github.com/docrouter-ce/docrouter/pkg/credit"
	"github.com/docrouter-ce/docrouter/pkg/crypto"
	"github.com/docrouter-ce/docrouter/pkg/intake"
	"github.com/docrouter-ce/docrouter/pkg/llm"
	"github.com/docrouter-ce/docrouter/pkg/queue"
	"github.com/docrouter-ce/docrouter/pkg/services"
	testdb "github.com/docrouter-ce/docrouter/test/database"
)

// fakeChat returns a canned response and counts calls.
type fakeChat struct {
	response string
	calls    int
	lastIn   llm.GenerateInput
}

func (f *fakeChat) Generate(ctx context.Context, in llm.GenerateInput) (string, llm.Usage, error) {
	f.calls++
	f.lastIn = in
	return f.response, llm.Usage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120}, nil
}

// denyGate refuses every spend and counts what would have been recorded.
type denyGate struct {
	recorded int
}

func (g *denyGate) Check(ctx context.Context, organizationID string, spus int) (bool, error) {
	return false, nil
}

func (g *denyGate) Record(ctx context.Context, usage credit.Usage) error {
	g.recorded++
	return nil
}

type runFixture struct {
	client       *ent.Client
	docs         *services.DocumentService
	results      *services.ResultService
	prompts      *services.PromptService
	chat         *fakeChat
	orchestrator *Orchestrator
}

func newRunFixture(t *testing.T) *runFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	cipher, err := crypto.New("test-run-secret")
	require.NoError(t, err)

	blobs := blob.NewStore(client.Client)
	q := queue.New(client.Client)
	converter := intake.NewConverter("soffice", filepath.Join(t.TempDir(), "convert.lock"))
	docs := services.NewDocumentService(client.Client, blobs, q, converter)

	// An enabled provider with a stored token.
	token, err := cipher.Encrypt("sk-test")
	require.NoError(t, err)
	_, err = client.Client.LLMProvider.Create().
		SetName("openai").
		SetDisplayName("OpenAI").
		SetLitellmProvider("openai").
		SetEnabled(true).
		SetToken(token).
		Save(context.Background())
	require.NoError(t, err)

	chat := &fakeChat{response: `{"document_type":"invoice","document_date":"2024-01-01","summary":"x"}`}
	return &runFixture{
		client:       client.Client,
		docs:         docs,
		results:      services.NewResultService(client.Client),
		prompts:      services.NewPromptService(client.Client),
		chat:         chat,
		orchestrator: NewOrchestrator(client.Client, docs, blobs, chat, credit.NoopGate{}, cipher),
	}
}

func (f *runFixture) uploadTxt(t *testing.T, name, body string) *ent.Document {
	t.Helper()
	doc, err := f.docs.Upload(context.Background(), "org1", "user1", services.UploadRequest{
		Name:    name,
		Content: base64.StdEncoding.EncodeToString([]byte(body)),
	})
	require.NoError(t, err)
	return doc
}

func TestOrchestrator_RunLLMDefaultPrompt(t *testing.T) {
	f := newRunFixture(t)
	ctx := context.Background()
	doc := f.uploadTxt(t, "letter.txt", "Dear reader, this is a letter.")

	res, err := f.orchestrator.RunLLM(ctx, doc.ID, services.DefaultPromptRevID, "", false)
	require.NoError(t, err)
	assert.Equal(t, services.DefaultPromptRevID, res.PromptRevID)
	assert.Equal(t, 0, res.PromptVersion)
	assert.JSONEq(t, f.chat.response, res.LlmResult)

	// The document body rides along in the prompt; the token is decrypted.
	assert.Contains(t, f.chat.lastIn.Prompt, "this is a letter")
	assert.Equal(t, "sk-test", f.chat.lastIn.Token)
	assert.Equal(t, "openai", f.chat.lastIn.Provider)
}

func TestOrchestrator_RunLLMIdempotentWithoutForce(t *testing.T) {
	f := newRunFixture(t)
	ctx := context.Background()
	doc := f.uploadTxt(t, "a.txt", "body")

	first, err := f.orchestrator.RunLLM(ctx, doc.ID, services.DefaultPromptRevID, "", false)
	require.NoError(t, err)

	again, err := f.orchestrator.RunLLM(ctx, doc.ID, services.DefaultPromptRevID, "", false)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 1, f.chat.calls)

	// Force replaces the stored result with a fresh run.
	time.Sleep(10 * time.Millisecond)
	forced, err := f.orchestrator.RunLLM(ctx, doc.ID, services.DefaultPromptRevID, "", true)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, forced.ID)
	assert.Equal(t, 2, f.chat.calls)

	n, err := f.client.LLMResult.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOrchestrator_RunLLMCustomPrompt(t *testing.T) {
	f := newRunFixture(t)
	ctx := context.Background()
	doc := f.uploadTxt(t, "a.txt", "invoice 42, total 10")

	rev, err := f.prompts.Create(ctx, "org1", "user1", services.PromptRequest{
		Name:    "extract",
		Content: "Pull out the invoice number.",
	})
	require.NoError(t, err)

	f.chat.response = `{"invoice_number":"42"}`
	res, err := f.orchestrator.RunLLM(ctx, doc.ID, rev.ID, "", false)
	require.NoError(t, err)
	assert.Equal(t, rev.PromptID, res.PromptID)
	assert.Equal(t, 1, res.PromptVersion)
	assert.Contains(t, f.chat.lastIn.Prompt, "Pull out the invoice number.")
}

func TestOrchestrator_RunLLMUnknownPrompt(t *testing.T) {
	f := newRunFixture(t)
	doc := f.uploadTxt(t, "a.txt", "body")

	_, err := f.orchestrator.RunLLM(context.Background(), doc.ID, "no-such-rev", "", false)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestOrchestrator_RunLLMRefusedWithoutCredit(t *testing.T) {
	f := newRunFixture(t)
	ctx := context.Background()
	doc := f.uploadTxt(t, "a.txt", "body")

	gate := &denyGate{}
	f.orchestrator.gate = gate

	_, err := f.orchestrator.RunLLM(ctx, doc.ID, services.DefaultPromptRevID, "", false)
	require.ErrorIs(t, err, services.ErrInsufficientCredits)

	// The refusal fires before the provider call; nothing is stored or charged.
	assert.Equal(t, 0, f.chat.calls)
	assert.Equal(t, 0, gate.recorded)
	n, err := f.client.LLMResult.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestOrchestrator_RunLLMRecordsUsage(t *testing.T) {
	f := newRunFixture(t)
	ctx := context.Background()
	doc := f.uploadTxt(t, "a.txt", "body")

	gate := credit.NewDBGate(f.client)
	f.orchestrator.gate = gate

	_, err := f.orchestrator.RunLLM(ctx, doc.ID, services.DefaultPromptRevID, "", false)
	require.NoError(t, err)

	rows, err := f.client.UsageRecord.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "org1", rows[0].OrganizationID)
	assert.Equal(t, "llm", rows[0].Source)
	assert.Equal(t, 120, rows[0].TotalTokens)
	assert.Equal(t, llm.SPUCost(llm.DefaultModel)*credit.LLMMultiplier, rows[0].Spus)
}
