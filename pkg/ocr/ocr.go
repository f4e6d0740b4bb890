// Package ocr submits document bytes to the external OCR service and
// normalizes its block output.
package ocr

import (
	"context"
	"errors"
	"sort"
	"strings"
)

// ErrOCRFailed indicates the external OCR pipeline reported failure.
var ErrOCRFailed = errors.New("ocr failed")

// Features selects optional OCR analyses.
type Features struct {
	Tables  bool
	Forms   bool
	Queries []string
}

// Analysis returns true when any optional feature is requested; plain text
// detection is used otherwise.
func (f Features) Analysis() bool {
	return f.Tables || f.Forms || len(f.Queries) > 0
}

// Relationship links a block to related block ids.
type Relationship struct {
	Type string   `json:"type"`
	IDs  []string `json:"ids"`
}

// Block is the normalized OCR block structure.
type Block struct {
	ID            string         `json:"id"`
	BlockType     string         `json:"block_type"`
	Text          string         `json:"text,omitempty"`
	Page          int            `json:"page"`
	EntityTypes   []string       `json:"entity_types,omitempty"`
	Relationships []Relationship `json:"relationships,omitempty"`
	Confidence    float64        `json:"confidence,omitempty"`
}

// Client runs OCR on raw document bytes and returns the raw block list.
type Client interface {
	Run(ctx context.Context, data []byte, features Features) ([]Block, error)
}

// BlockMap indexes blocks by id.
func BlockMap(blocks []Block) map[string]Block {
	m := make(map[string]Block, len(blocks))
	for _, b := range blocks {
		m[b.ID] = b
	}
	return m
}

// KeyValueMap derives key → value text pairs from KEY_VALUE_SET blocks.
func KeyValueMap(blocks []Block) map[string]string {
	byID := BlockMap(blocks)
	kv := make(map[string]string)

	for _, b := range blocks {
		if b.BlockType != "KEY_VALUE_SET" || !hasEntityType(b, "KEY") {
			continue
		}
		key := childText(b, byID)
		if key == "" {
			continue
		}
		var value string
		for _, rel := range b.Relationships {
			if rel.Type != "VALUE" {
				continue
			}
			for _, id := range rel.IDs {
				if vb, ok := byID[id]; ok {
					value = childText(vb, byID)
				}
			}
		}
		kv[key] = value
	}
	return kv
}

// PageTextMap derives page number → concatenated LINE text. The map is
// dense: pages with no lines are materialized as empty strings so every page
// from 1 to the maximum observed page is present.
func PageTextMap(blocks []Block) map[int]string {
	texts := make(map[int]string)
	maxPage := 0
	for _, b := range blocks {
		if b.Page > maxPage {
			maxPage = b.Page
		}
		if b.BlockType == "LINE" {
			texts[b.Page] += b.Text + "\n"
		}
	}
	for p := 1; p <= maxPage; p++ {
		if _, ok := texts[p]; !ok {
			texts[p] = ""
		}
	}
	return texts
}

// PageTexts returns the per-page texts sorted by page number.
func PageTexts(blocks []Block) []string {
	m := PageTextMap(blocks)
	pages := make([]int, 0, len(m))
	for p := range m {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		out = append(out, m[p])
	}
	return out
}

// FullText concatenates all page texts into the whole-document text.
func FullText(blocks []Block) string {
	return strings.Join(PageTexts(blocks), "")
}

func hasEntityType(b Block, t string) bool {
	for _, et := range b.EntityTypes {
		if et == t {
			return true
		}
	}
	return false
}

// childText concatenates the text of a block's CHILD relationships.
func childText(b Block, byID map[string]Block) string {
	var sb strings.Builder
	for _, rel := range b.Relationships {
		if rel.Type != "CHILD" {
			continue
		}
		for _, id := range rel.IDs {
			child, ok := byID[id]
			if !ok || child.Text == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(child.Text)
		}
	}
	return sb.String()
}
