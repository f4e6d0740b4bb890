package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lineBlock(id string, page int, text string) Block {
	return Block{ID: id, BlockType: "LINE", Page: page, Text: text}
}

func TestPageTextMap_DensePages(t *testing.T) {
	blocks := []Block{
		lineBlock("a", 1, "INVOICE #12345"),
		lineBlock("b", 1, "Total: $1,234.56"),
		// Page 2 has no lines at all, only a PAGE marker.
		{ID: "p2", BlockType: "PAGE", Page: 2},
		lineBlock("c", 3, "Vendor: Acme Corp"),
	}

	m := PageTextMap(blocks)
	assert.Len(t, m, 3)
	assert.Equal(t, "INVOICE #12345\nTotal: $1,234.56\n", m[1])
	assert.Equal(t, "", m[2], "missing page materialized as empty string")
	assert.Equal(t, "Vendor: Acme Corp\n", m[3])
}

func TestPageTexts_SortedByPage(t *testing.T) {
	blocks := []Block{
		lineBlock("c", 2, "second"),
		lineBlock("a", 1, "first"),
	}
	pages := PageTexts(blocks)
	assert.Equal(t, []string{"first\n", "second\n"}, pages)
	assert.Equal(t, "first\nsecond\n", FullText(blocks))
}

func TestKeyValueMap(t *testing.T) {
	blocks := []Block{
		{
			ID: "k1", BlockType: "KEY_VALUE_SET", Page: 1,
			EntityTypes: []string{"KEY"},
			Relationships: []Relationship{
				{Type: "CHILD", IDs: []string{"w1", "w2"}},
				{Type: "VALUE", IDs: []string{"v1"}},
			},
		},
		{
			ID: "v1", BlockType: "KEY_VALUE_SET", Page: 1,
			EntityTypes:   []string{"VALUE"},
			Relationships: []Relationship{{Type: "CHILD", IDs: []string{"w3"}}},
		},
		{ID: "w1", BlockType: "WORD", Page: 1, Text: "Invoice"},
		{ID: "w2", BlockType: "WORD", Page: 1, Text: "Number"},
		{ID: "w3", BlockType: "WORD", Page: 1, Text: "12345"},
	}

	kv := KeyValueMap(blocks)
	assert.Equal(t, map[string]string{"Invoice Number": "12345"}, kv)
}

func TestBlockMap(t *testing.T) {
	blocks := []Block{{ID: "x"}, {ID: "y"}}
	m := BlockMap(blocks)
	assert.Len(t, m, 2)
	assert.Equal(t, "x", m["x"].ID)
}

func TestFeatures_Analysis(t *testing.T) {
	assert.False(t, Features{}.Analysis())
	assert.True(t, Features{Tables: true}.Analysis())
	assert.True(t, Features{Queries: []string{"What is the total?"}}.Analysis())
}
