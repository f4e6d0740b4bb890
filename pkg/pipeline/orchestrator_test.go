package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeResult_ReordersToSchemaOrder(t *testing.T) {
	// Extra keys keep their original relative order after the declared ones.
	out, err := normalizeResult(`{"c":3,"a":1,"b":2,"x":9}`, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2,"c":3,"x":9}`, out)
}

func TestNormalizeResult_MissingDeclaredKeys(t *testing.T) {
	out, err := normalizeResult(`{"b":2}`, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, `{"b":2}`, out)
}

func TestNormalizeResult_NoOrderKeepsOriginal(t *testing.T) {
	out, err := normalizeResult(`{"z":1,"a":{"nested":true}}`, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":{"nested":true}}`, out)
}

func TestNormalizeResult_InvalidJSON(t *testing.T) {
	_, err := normalizeResult(`not json`, nil)
	assert.Error(t, err)
}

func TestNormalizeResult_StripsCodeFences(t *testing.T) {
	raw := "```json\n{\"a\": 1}\n```"
	out, err := normalizeResult(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}
