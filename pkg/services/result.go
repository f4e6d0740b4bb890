package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/jx"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/llmresult"
)

// ResultService implements the append-only extraction result store. Result
// payloads are JSON text; key order is preserved as stored.
type ResultService struct {
	client *ent.Client
}

// NewResultService creates a ResultService.
func NewResultService(client *ent.Client) *ResultService {
	return &ResultService{client: client}
}

// Save appends a new result revision. The editable copy starts equal to the
// original.
func (s *ResultService) Save(ctx context.Context, docID, promptRevID, promptID string, promptVersion int, resultJSON string) (*ent.LLMResult, error) {
	res, err := s.client.LLMResult.Create().
		SetDocumentID(docID).
		SetPromptRevID(promptRevID).
		SetPromptID(promptID).
		SetPromptVersion(promptVersion).
		SetLlmResult(resultJSON).
		SetUpdatedLlmResult(resultJSON).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("saving result for document %s prompt %s: %w", docID, promptRevID, err)
	}
	return res, nil
}

// Latest returns the newest revision for (document, prompt revision).
func (s *ResultService) Latest(ctx context.Context, docID, promptRevID string) (*ent.LLMResult, error) {
	res, err := s.client.LLMResult.Query().
		Where(
			llmresult.DocumentIDEQ(docID),
			llmresult.PromptRevIDEQ(promptRevID),
		).
		Order(ent.Desc(llmresult.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("result for document %s prompt %s: %w", docID, promptRevID, ErrNotFound)
		}
		return nil, fmt.Errorf("querying result for document %s: %w", docID, err)
	}
	return res, nil
}

// Update rewrites the newest revision's editable copy. The top-level key set
// of the new payload must equal that of the original result.
func (s *ResultService) Update(ctx context.Context, docID, promptRevID, updatedJSON string, isVerified *bool) (*ent.LLMResult, error) {
	res, err := s.Latest(ctx, docID, promptRevID)
	if err != nil {
		return nil, err
	}

	origKeys, err := topLevelKeys(res.LlmResult)
	if err != nil {
		return nil, fmt.Errorf("reading stored result keys: %w", err)
	}
	newKeys, err := topLevelKeys(updatedJSON)
	if err != nil {
		return nil, Validationf("updated result is not a JSON object: %v", err)
	}
	if !sameKeySet(origKeys, newKeys) {
		return nil, Validationf("updated result keys must match the original result keys")
	}

	upd := res.Update().
		SetUpdatedLlmResult(updatedJSON).
		SetIsEdited(true).
		SetUpdatedAt(time.Now())
	if isVerified != nil {
		upd.SetIsVerified(*isVerified)
	}
	res, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating result for document %s: %w", docID, err)
	}
	return res, nil
}

// Delete removes every revision for (document, prompt revision).
func (s *ResultService) Delete(ctx context.Context, docID, promptRevID string) error {
	n, err := s.client.LLMResult.Delete().
		Where(
			llmresult.DocumentIDEQ(docID),
			llmresult.PromptRevIDEQ(promptRevID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting result for document %s prompt %s: %w", docID, promptRevID, err)
	}
	if n == 0 {
		return fmt.Errorf("result for document %s prompt %s: %w", docID, promptRevID, ErrNotFound)
	}
	return nil
}

// DeleteAllForDocument removes every result revision of a document. Invoked
// by document deletion; absence is not an error.
func (s *ResultService) DeleteAllForDocument(ctx context.Context, docID string) error {
	_, err := s.client.LLMResult.Delete().
		Where(llmresult.DocumentIDEQ(docID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting results for document %s: %w", docID, err)
	}
	return nil
}

// ListLatestForDocument returns the newest revision per prompt revision id.
func (s *ResultService) ListLatestForDocument(ctx context.Context, docID string) ([]*ent.LLMResult, error) {
	all, err := s.client.LLMResult.Query().
		Where(llmresult.DocumentIDEQ(docID)).
		Order(ent.Asc(llmresult.FieldPromptRevID), ent.Desc(llmresult.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing results for document %s: %w", docID, err)
	}
	var out []*ent.LLMResult
	seen := make(map[string]bool)
	for _, res := range all {
		if !seen[res.PromptRevID] {
			seen[res.PromptRevID] = true
			out = append(out, res)
		}
	}
	return out, nil
}

// topLevelKeys returns the ordered top-level keys of a JSON object.
func topLevelKeys(jsonText string) ([]string, error) {
	d := jx.DecodeStr(jsonText)
	var keys []string
	err := d.Obj(func(d *jx.Decoder, key string) error {
		keys = append(keys, key)
		return d.Skip()
	})
	return keys, err
}

// sameKeySet compares two key lists as sets.
func sameKeySet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, k := range a {
		set[k] = true
	}
	for _, k := range b {
		if !set[k] {
			return false
		}
	}
	return true
}
