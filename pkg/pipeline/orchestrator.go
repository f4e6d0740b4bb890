// Package pipeline glues the stages together: intake enqueues OCR, OCR
// completion enqueues LLM, and the orchestrator drives extraction runs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/go-faster/jx"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/llmprovider"
	"github.com/docrouter-ce/docrouter/pkg/blob"
	"github.com/docrouter-ce/docrouter/pkg/credit"
	"github.com/docrouter-ce/docrouter/pkg/crypto"
	"github.com/docrouter-ce/docrouter/pkg/llm"
	"github.com/docrouter-ce/docrouter/pkg/models"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// systemMessage is prepended to every extraction call.
const systemMessage = "You are a document data extraction engine. " +
	"Respond with a single JSON object only. Do not include prose, " +
	"markdown, or code fences."

// defaultPromptContent is the built-in classification prompt behind the
// sentinel revision id "default".
const defaultPromptContent = `Classify the document. Return a JSON object with exactly these fields:
- "document_type": the kind of document (invoice, receipt, contract, letter, report, other)
- "document_date": the primary date on the document in YYYY-MM-DD form, or "" when unknown
- "summary": a short summary of the document`

// ocrTextSeparator introduces the document text in the assembled prompt.
const ocrTextSeparator = "\n\n----------------\nDocument text:\n\n"

// Orchestrator resolves prompts, calls providers, and persists results.
type Orchestrator struct {
	client  *ent.Client
	docs    *services.DocumentService
	prompts *services.PromptService
	schemas *services.SchemaService
	results *services.ResultService
	blobs   *blob.Store
	chat    llm.Client
	gate    credit.Gate
	cipher  *crypto.Cipher
}

// NewOrchestrator wires an Orchestrator.
func NewOrchestrator(client *ent.Client, docs *services.DocumentService, blobs *blob.Store, chat llm.Client, gate credit.Gate, cipher *crypto.Cipher) *Orchestrator {
	return &Orchestrator{
		client:  client,
		docs:    docs,
		prompts: services.NewPromptService(client),
		schemas: services.NewSchemaService(client),
		results: services.NewResultService(client),
		blobs:   blobs,
		chat:    chat,
		gate:    gate,
		cipher:  cipher,
	}
}

// RunLLM runs one prompt revision against one document. With force=false an
// existing result for the pair is returned as-is; with force=true any prior
// result is replaced by a fresh run.
func (o *Orchestrator) RunLLM(ctx context.Context, docID, promptRevID, modelOverride string, force bool) (*ent.LLMResult, error) {
	if !force {
		res, err := o.results.Latest(ctx, docID, promptRevID)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
	} else {
		if err := o.results.Delete(ctx, docID, promptRevID); err != nil && !errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
	}

	doc, err := o.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if doc.OrganizationID == "" {
		return nil, fmt.Errorf("document %s has no organization", docID)
	}

	var promptRev *ent.PromptRevision
	content := defaultPromptContent
	promptID := services.DefaultPromptRevID
	promptVersion := 0
	if promptRevID != services.DefaultPromptRevID {
		promptRev, err = o.prompts.GetRevision(ctx, promptRevID)
		if err != nil {
			return nil, err
		}
		content = promptRev.Content
		promptID = promptRev.PromptID
		promptVersion = promptRev.PromptVersion
	}

	model := o.chooseModel(modelOverride, promptRev)

	docText, pages, err := o.documentText(ctx, doc)
	if err != nil {
		return nil, err
	}

	spus := llm.SPUCost(model) * pages
	ok, err := o.gate.Check(ctx, doc.OrganizationID, spus)
	if err != nil {
		return nil, fmt.Errorf("checking credit for org %s: %w", doc.OrganizationID, err)
	}
	if !ok {
		return nil, fmt.Errorf("org %s lacks %d SPUs: %w",
			doc.OrganizationID, spus, services.ErrInsufficientCredits)
	}

	provider, bare := llm.ParseModel(model)
	token, err := o.providerToken(ctx, provider)
	if err != nil {
		return nil, err
	}

	responseFormat, propertyOrder, err := o.responseFormat(ctx, promptRevID, promptRev, model)
	if err != nil {
		return nil, err
	}

	raw, usage, err := o.chat.Generate(ctx, llm.GenerateInput{
		Provider:       provider,
		Model:          bare,
		Token:          token,
		System:         systemMessage,
		Prompt:         content + ocrTextSeparator + docText,
		ResponseFormat: responseFormat,
	})
	if err != nil {
		return nil, err
	}

	resultJSON, err := normalizeResult(raw, propertyOrder)
	if err != nil {
		return nil, err
	}

	info, _ := llm.CostInfo(model)
	if err := o.gate.Record(ctx, credit.Usage{
		OrganizationID:   doc.OrganizationID,
		SPUs:             spus * credit.LLMMultiplier,
		Source:           "llm",
		Provider:         provider,
		Model:            bare,
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
		Cost: float64(usage.PromptTokens)*info.InputCostPerToken +
			float64(usage.CompletionTokens)*info.OutputCostPerToken,
	}); err != nil {
		slog.Error("Failed to record SPU usage",
			"org_id", doc.OrganizationID, "model", model, "error", err)
	}

	res, err := o.results.Save(ctx, docID, promptRevID, promptID, promptVersion, resultJSON)
	if err != nil {
		return nil, err
	}
	slog.Info("LLM run completed",
		"document_id", docID, "prompt_rev_id", promptRevID, "model", model,
		"spus", spus, "total_tokens", usage.TotalTokens)
	return res, nil
}

// RunForPromptRevIDs runs one prompt revision per goroutine. Failures are
// isolated per revision; the joined error reports every failed revision.
func (o *Orchestrator) RunForPromptRevIDs(ctx context.Context, docID string, promptRevIDs []string, force bool) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, revID := range promptRevIDs {
		revID := revID
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := o.RunLLM(ctx, docID, revID, "", force); err != nil {
				slog.Error("LLM run failed",
					"document_id", docID, "prompt_rev_id", revID, "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("prompt %s: %w", revID, err))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}

// chooseModel picks the run model: explicit override, then prompt revision,
// then the default. Models that fail capability checks fall back to the
// default.
func (o *Orchestrator) chooseModel(override string, promptRev *ent.PromptRevision) string {
	model := override
	if model == "" && promptRev != nil {
		model = promptRev.Model
	}
	if model == "" {
		model = llm.DefaultModel
	}
	if !llm.IsChatModel(model) || !llm.IsSupportedModel(model) {
		slog.Warn("Model failed capability checks, falling back",
			"model", model, "fallback", llm.DefaultModel)
		model = llm.DefaultModel
	}
	return model
}

// documentText loads the document's OCR text and page count. Formats that
// skipped OCR fall back to their raw bytes.
func (o *Orchestrator) documentText(ctx context.Context, doc *ent.Document) (string, int, error) {
	b, err := o.blobs.Get(ctx, services.BucketOCR, doc.ID+"_text")
	if err == nil {
		pages := 1
		if n, convErr := strconv.Atoi(b.Metadata["n_pages"]); convErr == nil && n > 0 {
			pages = n
		}
		return string(b.Bytes), pages, nil
	}
	if !errors.Is(err, blob.ErrNotFound) {
		return "", 0, err
	}
	orig, err := o.blobs.Get(ctx, services.BucketFiles, doc.MongoFileName)
	if err != nil {
		return "", 0, err
	}
	return string(orig.Bytes), 1, nil
}

// providerToken returns the decrypted API token of an enabled provider.
// Bedrock authenticates through AWS credentials and needs no token.
func (o *Orchestrator) providerToken(ctx context.Context, provider string) (string, error) {
	row, err := o.client.LLMProvider.Query().
		Where(llmprovider.NameEQ(provider)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("provider %s is not configured", provider)
		}
		return "", fmt.Errorf("querying provider %s: %w", provider, err)
	}
	if !row.Enabled {
		return "", fmt.Errorf("provider %s is disabled", provider)
	}
	if row.Token == "" {
		if provider == "bedrock" {
			return "", nil
		}
		return "", fmt.Errorf("provider %s has no token", provider)
	}
	token, err := o.cipher.Decrypt(row.Token)
	if err != nil {
		return "", fmt.Errorf("decrypting %s token: %w", provider, err)
	}
	return token, nil
}

// responseFormat resolves the response format and, for bound schemas, the
// declared property order used to reorder the result keys.
func (o *Orchestrator) responseFormat(ctx context.Context, promptRevID string, promptRev *ent.PromptRevision, model string) (*models.ResponseFormat, []string, error) {
	if promptRevID == services.DefaultPromptRevID {
		return &models.ResponseFormat{Type: "json_object"}, nil, nil
	}
	if promptRev == nil || promptRev.SchemaID == "" {
		return nil, nil, nil
	}
	schemaRev, err := o.schemas.GetVersion(ctx, promptRev.OrganizationID, promptRev.SchemaID, promptRev.SchemaVersion)
	if err != nil {
		return nil, nil, err
	}
	order, err := models.SchemaPropertyOrder(schemaRev.ResponseFormat.JSONSchema.Schema)
	if err != nil {
		return nil, nil, err
	}
	if !llm.SupportsResponseSchema(model) {
		// The provider cannot enforce the schema; keys are still reordered.
		return &models.ResponseFormat{Type: "json_object"}, order, nil
	}
	rf := schemaRev.ResponseFormat
	return &rf, order, nil
}

// normalizeResult parses the provider output and, when a property order is
// declared, reorders the top-level keys to that order with any extra keys
// appended in their original order.
func normalizeResult(raw string, propertyOrder []string) (string, error) {
	raw = stripCodeFences(raw)

	type entry struct {
		key string
		raw jx.Raw
	}
	var entries []entry
	d := jx.DecodeStr(raw)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		val, err := d.Raw()
		if err != nil {
			return err
		}
		entries = append(entries, entry{key: key, raw: val})
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("provider returned invalid JSON: %w", err)
	}

	if len(propertyOrder) > 0 {
		byKey := make(map[string]jx.Raw, len(entries))
		for _, e := range entries {
			byKey[e.key] = e.raw
		}
		ordered := make([]entry, 0, len(entries))
		for _, key := range propertyOrder {
			if val, ok := byKey[key]; ok {
				ordered = append(ordered, entry{key: key, raw: val})
				delete(byKey, key)
			}
		}
		for _, e := range entries {
			if _, ok := byKey[e.key]; ok {
				ordered = append(ordered, e)
			}
		}
		entries = ordered
	}

	var e jx.Encoder
	e.ObjStart()
	for _, item := range entries {
		e.FieldStart(item.key)
		e.Raw(item.raw)
	}
	e.ObjEnd()
	return e.String(), nil
}

// stripCodeFences removes a surrounding markdown code fence when a provider
// ignores the JSON-only instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
