package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/docrouter-ce/docrouter/pkg/blob"
	"github.com/docrouter-ce/docrouter/pkg/ocr"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// OCR artifact keys for a document id.
func blocksKey(docID string) string     { return docID + "_json" }
func legacyKey(docID string) string     { return docID + "_list" }
func textKey(docID string) string       { return docID + "_text" }
func pageKey(docID string, i int) string { return fmt.Sprintf("%s_text_page_%d", docID, i) }

// Artifacts reads and writes the OCR artifact triple for a document: the
// serialized block list, the whole-document text, and per-page texts.
type Artifacts struct {
	blobs *blob.Store
}

// NewArtifacts creates an Artifacts accessor.
func NewArtifacts(blobs *blob.Store) *Artifacts {
	return &Artifacts{blobs: blobs}
}

// Save persists all derived OCR views of a block list.
func (a *Artifacts) Save(ctx context.Context, docID string, blocks []ocr.Block) error {
	raw, err := json.Marshal(blocks)
	if err != nil {
		return fmt.Errorf("serializing OCR blocks: %w", err)
	}
	if err := a.blobs.Save(ctx, services.BucketOCR, blocksKey(docID), raw, nil); err != nil {
		return err
	}

	pages := ocr.PageTexts(blocks)
	if err := a.blobs.Save(ctx, services.BucketOCR, textKey(docID),
		[]byte(ocr.FullText(blocks)),
		map[string]string{"n_pages": strconv.Itoa(len(pages))}); err != nil {
		return err
	}
	for i, text := range pages {
		// Page artifacts are 0-indexed.
		if err := a.blobs.Save(ctx, services.BucketOCR, pageKey(docID, i), []byte(text), nil); err != nil {
			return err
		}
	}
	return nil
}

// Blocks returns the stored block list. The legacy key written by earlier
// releases remains readable.
func (a *Artifacts) Blocks(ctx context.Context, docID string) ([]ocr.Block, error) {
	b, err := a.blobs.Get(ctx, services.BucketOCR, blocksKey(docID))
	if errors.Is(err, blob.ErrNotFound) {
		b, err = a.blobs.Get(ctx, services.BucketOCR, legacyKey(docID))
	}
	if err != nil {
		return nil, err
	}
	var blocks []ocr.Block
	if err := json.Unmarshal(b.Bytes, &blocks); err != nil {
		return nil, fmt.Errorf("parsing stored OCR blocks for %s: %w", docID, err)
	}
	return blocks, nil
}

// Text returns the whole-document text and its page count.
func (a *Artifacts) Text(ctx context.Context, docID string) (string, int, error) {
	b, err := a.blobs.Get(ctx, services.BucketOCR, textKey(docID))
	if err != nil {
		return "", 0, err
	}
	pages, _ := strconv.Atoi(b.Metadata["n_pages"])
	return string(b.Bytes), pages, nil
}

// PageText returns one page's text (0-indexed).
func (a *Artifacts) PageText(ctx context.Context, docID string, page int) (string, error) {
	b, err := a.blobs.Get(ctx, services.BucketOCR, pageKey(docID, page))
	if err != nil {
		return "", err
	}
	return string(b.Bytes), nil
}
