package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/pkg/blob"
	"github.com/docrouter-ce/docrouter/pkg/intake"
	"github.com/docrouter-ce/docrouter/pkg/models"
	"github.com/docrouter-ce/docrouter/pkg/ocr"
	"github.com/docrouter-ce/docrouter/pkg/queue"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// blobReadRetries covers the race where a freshly written blob is not yet
// visible to the OCR stage.
const (
	blobReadRetries = 5
	blobReadDelay   = 2 * time.Second
)

// OCRHandler drives the OCR stage for one queue message.
type OCRHandler struct {
	docs      *services.DocumentService
	blobs     *blob.Store
	artifacts *Artifacts
	ocrClient ocr.Client
	queue     *queue.Queue
}

// NewOCRHandler creates the OCR stage handler.
func NewOCRHandler(docs *services.DocumentService, blobs *blob.Store, ocrClient ocr.Client, q *queue.Queue) *OCRHandler {
	return &OCRHandler{
		docs:      docs,
		blobs:     blobs,
		artifacts: NewArtifacts(blobs),
		ocrClient: ocrClient,
		queue:     q,
	}
}

// Handle processes one OCR message. On failure the document is marked
// ocr_failed and the message payload is forwarded to the ocr_err queue for
// diagnostic retention.
func (h *OCRHandler) Handle(ctx context.Context, msg *ent.QueueMessage) error {
	docID, _ := msg.Msg["document_id"].(string)
	if docID == "" {
		return fmt.Errorf("ocr message %s has no document_id", msg.ID)
	}

	if err := h.process(ctx, docID); err != nil {
		if stateErr := h.docs.SetState(ctx, docID, models.StateOCRFailed); stateErr != nil {
			slog.Error("Failed to mark document ocr_failed",
				"document_id", docID, "error", stateErr)
		}
		if _, sendErr := h.queue.Send(ctx, queue.QueueOCRErr, msg.MsgType, msg.Msg); sendErr != nil {
			slog.Error("Failed to forward message to ocr_err",
				"document_id", docID, "error", sendErr)
		}
		return err
	}

	if _, err := h.queue.Send(ctx, queue.QueueLLM, "llm", map[string]any{
		"document_id": docID,
	}); err != nil {
		return err
	}
	return nil
}

func (h *OCRHandler) process(ctx context.Context, docID string) error {
	if err := h.docs.SetState(ctx, docID, models.StateOCRProcessing); err != nil {
		return err
	}
	doc, err := h.docs.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if !intake.IsOCRCapable(filepath.Ext(doc.PdfFileName)) {
		slog.Info("Document format skips OCR", "document_id", docID, "file", doc.PdfFileName)
		return h.docs.SetState(ctx, docID, models.StateOCRCompleted)
	}

	pdf, err := h.readWithRetry(ctx, services.BucketFiles, doc.PdfFileName)
	if err != nil {
		return err
	}

	blocks, err := h.ocrClient.Run(ctx, pdf.Bytes, ocr.Features{})
	if err != nil {
		return err
	}
	if err := h.artifacts.Save(ctx, docID, blocks); err != nil {
		return err
	}
	return h.docs.SetState(ctx, docID, models.StateOCRCompleted)
}

// readWithRetry reads a blob, retrying when a just-written object is not yet
// visible.
func (h *OCRHandler) readWithRetry(ctx context.Context, bucket, key string) (*blob.Blob, error) {
	var lastErr error
	for attempt := 1; attempt <= blobReadRetries; attempt++ {
		b, err := h.blobs.Get(ctx, bucket, key)
		if err == nil {
			return b, nil
		}
		lastErr = err
		if !errors.Is(err, blob.ErrNotFound) {
			return nil, err
		}
		slog.Warn("Blob not yet visible, retrying",
			"bucket", bucket, "key", key, "attempt", attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(blobReadDelay):
		}
	}
	return nil, lastErr
}

// LLMHandler drives the LLM stage for one queue message: the default prompt
// plus the latest revision of every prompt whose tag set intersects the
// document's tags.
type LLMHandler struct {
	docs         *services.DocumentService
	prompts      *services.PromptService
	orchestrator *Orchestrator
}

// NewLLMHandler creates the LLM stage handler.
func NewLLMHandler(docs *services.DocumentService, orchestrator *Orchestrator) *LLMHandler {
	return &LLMHandler{
		docs:         docs,
		prompts:      orchestrator.prompts,
		orchestrator: orchestrator,
	}
}

// Handle processes one LLM message.
func (h *LLMHandler) Handle(ctx context.Context, msg *ent.QueueMessage) error {
	docID, _ := msg.Msg["document_id"].(string)
	if docID == "" {
		return fmt.Errorf("llm message %s has no document_id", msg.ID)
	}

	if err := h.process(ctx, docID); err != nil {
		if stateErr := h.docs.SetState(ctx, docID, models.StateLLMFailed); stateErr != nil {
			slog.Error("Failed to mark document llm_failed",
				"document_id", docID, "error", stateErr)
		}
		return err
	}
	return nil
}

func (h *LLMHandler) process(ctx context.Context, docID string) error {
	if err := h.docs.SetState(ctx, docID, models.StateLLMProcessing); err != nil {
		return err
	}
	doc, err := h.docs.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	revIDs := []string{services.DefaultPromptRevID}
	matched, err := h.prompts.RevisionsByTags(ctx, doc.OrganizationID, doc.TagIds, true)
	if err != nil {
		return err
	}
	for _, rev := range matched {
		revIDs = append(revIDs, rev.ID)
	}

	if err := h.orchestrator.RunForPromptRevIDs(ctx, docID, revIDs, false); err != nil {
		return err
	}
	return h.docs.SetState(ctx, docID, models.StateLLMCompleted)
}
