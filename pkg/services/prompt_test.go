package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docrouter-ce/docrouter/pkg/llm"
	testdb "github.com/docrouter-ce/docrouter/test/database"
)

func TestPromptService_CreateDefaultsModel(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	ctx := context.Background()

	rev, err := svc.Create(ctx, "org1", "user1", PromptRequest{
		Name:    "extract",
		Content: "Extract the invoice fields.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rev.PromptVersion)
	assert.Equal(t, llm.DefaultModel, rev.Model)
}

func TestPromptService_CreateValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	ctx := context.Background()

	t.Run("missing content", func(t *testing.T) {
		_, err := svc.Create(ctx, "org1", "user1", PromptRequest{Name: "x"})
		assert.True(t, IsValidation(err))
	})

	t.Run("unsupported model", func(t *testing.T) {
		_, err := svc.Create(ctx, "org1", "user1", PromptRequest{
			Name: "x", Content: "y", Model: "babbage-002",
		})
		assert.True(t, IsValidation(err))
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, err := svc.Create(ctx, "org1", "user1", PromptRequest{
			Name: "x", Content: "y", TagIDs: []string{"missing"},
		})
		assert.True(t, IsValidation(err))
	})

	t.Run("schema id without version", func(t *testing.T) {
		_, err := svc.Create(ctx, "org1", "user1", PromptRequest{
			Name: "x", Content: "y", SchemaID: "s1",
		})
		assert.True(t, IsValidation(err))
	})

	t.Run("unknown schema version", func(t *testing.T) {
		_, err := svc.Create(ctx, "org1", "user1", PromptRequest{
			Name: "x", Content: "y", SchemaID: "s1", SchemaVersion: 1,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPromptService_SchemaBinding(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	schemas := NewSchemaService(client.Client)
	ctx := context.Background()

	schemaRev, err := schemas.Create(ctx, "org1", "user1", invoiceSchemaRequest("invoice"))
	require.NoError(t, err)

	rev, err := svc.Create(ctx, "org1", "user1", PromptRequest{
		Name:          "extract",
		Content:       "Extract.",
		SchemaID:      schemaRev.SchemaID,
		SchemaVersion: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, schemaRev.SchemaID, rev.SchemaID)
	assert.Equal(t, 1, rev.SchemaVersion)
}

func TestPromptService_UpdateAppendsVersions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	ctx := context.Background()

	v1, err := svc.Create(ctx, "org1", "user1", PromptRequest{Name: "p", Content: "one"})
	require.NoError(t, err)

	v2, err := svc.Update(ctx, "org1", v1.PromptID, "user1", PromptRequest{Name: "p", Content: "two"})
	require.NoError(t, err)
	assert.Equal(t, 2, v2.PromptVersion)
	assert.Equal(t, v1.PromptID, v2.PromptID)

	latest, err := svc.Latest(ctx, "org1", v1.PromptID)
	require.NoError(t, err)
	assert.Equal(t, "two", latest.Content)

	// Older revision is immutable and still addressable.
	got, err := svc.GetRevision(ctx, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, "one", got.Content)
}

func TestPromptService_RevisionsByTags(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	tags := NewTagService(client.Client)
	ctx := context.Background()

	tagA, err := tags.Create(ctx, "org1", "user1", TagRequest{Name: "a"})
	require.NoError(t, err)
	tagB, err := tags.Create(ctx, "org1", "user1", TagRequest{Name: "b"})
	require.NoError(t, err)

	pA, err := svc.Create(ctx, "org1", "user1", PromptRequest{
		Name: "pa", Content: "v1", TagIDs: []string{tagA.ID},
	})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "org1", pA.PromptID, "user1", PromptRequest{
		Name: "pa", Content: "v2", TagIDs: []string{tagA.ID},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "org1", "user1", PromptRequest{
		Name: "pb", Content: "v1", TagIDs: []string{tagB.ID},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "org1", "user1", PromptRequest{Name: "untagged", Content: "v1"})
	require.NoError(t, err)

	t.Run("intersecting tag, latest only", func(t *testing.T) {
		revs, err := svc.RevisionsByTags(ctx, "org1", []string{tagA.ID}, true)
		require.NoError(t, err)
		require.Len(t, revs, 1)
		assert.Equal(t, pA.PromptID, revs[0].PromptID)
		assert.Equal(t, 2, revs[0].PromptVersion)
	})

	t.Run("all matching revisions", func(t *testing.T) {
		revs, err := svc.RevisionsByTags(ctx, "org1", []string{tagA.ID}, false)
		require.NoError(t, err)
		assert.Len(t, revs, 2)
	})

	t.Run("union across tags", func(t *testing.T) {
		revs, err := svc.RevisionsByTags(ctx, "org1", []string{tagA.ID, tagB.ID}, true)
		require.NoError(t, err)
		assert.Len(t, revs, 2)
	})

	t.Run("no tags matches nothing", func(t *testing.T) {
		revs, err := svc.RevisionsByTags(ctx, "org1", nil, true)
		require.NoError(t, err)
		assert.Empty(t, revs)
	})
}

func TestPromptService_Delete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	ctx := context.Background()

	v1, err := svc.Create(ctx, "org1", "user1", PromptRequest{Name: "p", Content: "one"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "org1", v1.PromptID, "user1", PromptRequest{Name: "p", Content: "two"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "org1", v1.PromptID))
	_, err = svc.Latest(ctx, "org1", v1.PromptID)
	assert.ErrorIs(t, err, ErrNotFound)
}
