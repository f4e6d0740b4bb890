package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/docrouter-ce/docrouter/test/database"
)

func TestResultService_SaveAndLatest(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResultService(client.Client)
	ctx := context.Background()

	first, err := svc.Save(ctx, "doc1", "rev1", "p1", 1, `{"invoice_number": "A-1", "total": 10}`)
	require.NoError(t, err)
	assert.Equal(t, first.LlmResult, first.UpdatedLlmResult)
	assert.False(t, first.IsEdited)
	assert.False(t, first.IsVerified)

	// A re-run appends a fresh revision; the old one stays in place.
	time.Sleep(10 * time.Millisecond)
	second, err := svc.Save(ctx, "doc1", "rev1", "p1", 1, `{"invoice_number": "A-2", "total": 20}`)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	latest, err := svc.Latest(ctx, "doc1", "rev1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestResultService_LatestMissing(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResultService(client.Client)

	_, err := svc.Latest(context.Background(), "doc1", "rev1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResultService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResultService(client.Client)
	ctx := context.Background()

	_, err := svc.Save(ctx, "doc1", "rev1", "p1", 1, `{"invoice_number": "A-1", "total": 10}`)
	require.NoError(t, err)

	t.Run("same key set", func(t *testing.T) {
		verified := true
		res, err := svc.Update(ctx, "doc1", "rev1", `{"total": 12, "invoice_number": "A-1"}`, &verified)
		require.NoError(t, err)
		assert.True(t, res.IsEdited)
		assert.True(t, res.IsVerified)
		// Original payload is untouched.
		assert.JSONEq(t, `{"invoice_number": "A-1", "total": 10}`, res.LlmResult)
		assert.JSONEq(t, `{"invoice_number": "A-1", "total": 12}`, res.UpdatedLlmResult)
	})

	t.Run("extra key rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, "doc1", "rev1", `{"invoice_number": "A-1", "total": 12, "vat": 2}`, nil)
		assert.True(t, IsValidation(err))
	})

	t.Run("missing key rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, "doc1", "rev1", `{"invoice_number": "A-1"}`, nil)
		assert.True(t, IsValidation(err))
	})

	t.Run("non-object rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, "doc1", "rev1", `[1, 2]`, nil)
		assert.True(t, IsValidation(err))
	})

	t.Run("no result to update", func(t *testing.T) {
		_, err := svc.Update(ctx, "doc1", "other-rev", `{}`, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResultService_Delete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResultService(client.Client)
	ctx := context.Background()

	_, err := svc.Save(ctx, "doc1", "rev1", "p1", 1, `{"a": 1}`)
	require.NoError(t, err)
	_, err = svc.Save(ctx, "doc1", "rev1", "p1", 1, `{"a": 2}`)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "doc1", "rev1"))
	_, err = svc.Latest(ctx, "doc1", "rev1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "doc1", "rev1"), ErrNotFound)
}

func TestResultService_DeleteAllForDocument(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResultService(client.Client)
	ctx := context.Background()

	_, err := svc.Save(ctx, "doc1", "rev1", "p1", 1, `{"a": 1}`)
	require.NoError(t, err)
	_, err = svc.Save(ctx, "doc1", "rev2", "p2", 1, `{"b": 1}`)
	require.NoError(t, err)
	_, err = svc.Save(ctx, "doc2", "rev1", "p1", 1, `{"a": 1}`)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAllForDocument(ctx, "doc1"))
	// Absence is not an error.
	require.NoError(t, svc.DeleteAllForDocument(ctx, "doc1"))

	_, err = svc.Latest(ctx, "doc1", "rev1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Latest(ctx, "doc2", "rev1")
	assert.NoError(t, err)
}

func TestResultService_ListLatestForDocument(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResultService(client.Client)
	ctx := context.Background()

	_, err := svc.Save(ctx, "doc1", "rev1", "p1", 1, `{"a": 1}`)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	newer, err := svc.Save(ctx, "doc1", "rev1", "p1", 1, `{"a": 2}`)
	require.NoError(t, err)
	other, err := svc.Save(ctx, "doc1", "rev2", "p2", 1, `{"b": 1}`)
	require.NoError(t, err)
	_, err = svc.Save(ctx, "doc2", "rev1", "p1", 1, `{"a": 1}`)
	require.NoError(t, err)

	results, err := svc.ListLatestForDocument(ctx, "doc1")
	require.NoError(t, err)
	require.Len(t, results, 2)

	byRev := make(map[string]string)
	for _, res := range results {
		byRev[res.PromptRevID] = res.ID
	}
	assert.Equal(t, newer.ID, byRev["rev1"])
	assert.Equal(t, other.ID, byRev["rev2"])
}
