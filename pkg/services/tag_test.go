package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/docrouter-ce/docrouter/test/database"
)

func TestTagService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	ctx := context.Background()

	tag, err := svc.Create(ctx, "org1", "user1", TagRequest{
		Name:        "invoices",
		Color:       "#ff0000",
		Description: "Invoice documents",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tag.ID)
	assert.Equal(t, "invoices", tag.Name)

	got, err := svc.Get(ctx, "org1", tag.ID)
	require.NoError(t, err)
	assert.Equal(t, tag.ID, got.ID)

	// Scoped to the owning organization.
	_, err = svc.Get(ctx, "org2", tag.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTagService_CreateValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	ctx := context.Background()

	_, err := svc.Create(ctx, "org1", "user1", TagRequest{})
	assert.True(t, IsValidation(err))
}

func TestTagService_DuplicateName(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	ctx := context.Background()

	_, err := svc.Create(ctx, "org1", "user1", TagRequest{Name: "dup"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "org1", "user1", TagRequest{Name: "dup"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Same name in a different organization is fine.
	_, err = svc.Create(ctx, "org2", "user1", TagRequest{Name: "dup"})
	assert.NoError(t, err)
}

func TestTagService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	ctx := context.Background()

	tag, err := svc.Create(ctx, "org1", "user1", TagRequest{Name: "old"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "org1", tag.ID, TagRequest{Name: "new", Color: "#00ff00"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Name)
	assert.Equal(t, "#00ff00", updated.Color)
}

func TestTagService_DeleteRefusedWhenReferenced(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	ctx := context.Background()

	tag, err := svc.Create(ctx, "org1", "user1", TagRequest{Name: "held"})
	require.NoError(t, err)

	// Referenced by a document.
	_, err = client.Document.Create().
		SetID("doc1").
		SetOrganizationID("org1").
		SetUserFileName("a.pdf").
		SetMongoFileName("doc1.pdf").
		SetPdfFileName("doc1.pdf").
		SetTagIds([]string{tag.ID}).
		Save(ctx)
	require.NoError(t, err)

	err = svc.Delete(ctx, "org1", tag.ID)
	assert.ErrorIs(t, err, ErrTagReferenced)

	// Dropping the reference unblocks deletion.
	require.NoError(t, client.Document.UpdateOneID("doc1").SetTagIds([]string{}).Exec(ctx))
	assert.NoError(t, svc.Delete(ctx, "org1", tag.ID))
}

func TestTagService_DeleteRefusedWhenPromptReferences(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	ctx := context.Background()

	tag, err := svc.Create(ctx, "org1", "user1", TagRequest{Name: "bound"})
	require.NoError(t, err)

	_, err = client.PromptRevision.Create().
		SetPromptID("p1").
		SetPromptVersion(1).
		SetName("extract").
		SetContent("Extract fields.").
		SetOrganizationID("org1").
		SetTagIds([]string{tag.ID}).
		Save(ctx)
	require.NoError(t, err)

	err = svc.Delete(ctx, "org1", tag.ID)
	assert.ErrorIs(t, err, ErrTagReferenced)
}

func TestTagService_ValidateTagIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	ctx := context.Background()

	tag, err := svc.Create(ctx, "org1", "user1", TagRequest{Name: "ok"})
	require.NoError(t, err)

	assert.NoError(t, svc.ValidateTagIDs(ctx, "org1", nil))
	assert.NoError(t, svc.ValidateTagIDs(ctx, "org1", []string{tag.ID}))

	err = svc.ValidateTagIDs(ctx, "org1", []string{tag.ID, "missing"})
	assert.True(t, IsValidation(err))

	// A tag from another organization does not validate.
	err = svc.ValidateTagIDs(ctx, "org2", []string{tag.ID})
	assert.True(t, IsValidation(err))
}
