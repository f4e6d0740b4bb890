package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docrouter-ce/docrouter/pkg/crypto"
	testdb "github.com/docrouter-ce/docrouter/test/database"
)

func newTokenService(t *testing.T) *TokenService {
	t.Helper()
	client := testdb.NewTestClient(t)
	cipher, err := crypto.New("test-token-secret")
	require.NoError(t, err)
	return NewTokenService(client.Client, cipher)
}

func TestTokenService_CreateAndResolve(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user1", "org1", "ci", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.Plaintext, TokenPrefixOrg))
	assert.Equal(t, "org1", created.OrganizationID)

	row, err := svc.Resolve(ctx, created.Plaintext)
	require.NoError(t, err)
	assert.Equal(t, created.ID, row.ID)
	assert.Equal(t, "user1", row.UserID)
	assert.Equal(t, "org1", row.OrganizationID)

	// Account tokens carry the account prefix and no organization.
	acc, err := svc.Create(ctx, "user1", "", "personal", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(acc.Plaintext, TokenPrefixAccount))

	row, err = svc.Resolve(ctx, acc.Plaintext)
	require.NoError(t, err)
	assert.Empty(t, row.OrganizationID)
}

func TestTokenService_CreateValidation(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user1", "org1", "", 0)
	assert.True(t, IsValidation(err))

	_, err = svc.Create(ctx, "user1", "org1", "x", -1)
	assert.True(t, IsValidation(err))
}

func TestTokenService_ResolveUnknown(t *testing.T) {
	svc := newTokenService(t)

	_, err := svc.Resolve(context.Background(), "org_deadbeef")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTokenService_ResolveExpired(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user1", "org1", "short", 1)
	require.NoError(t, err)

	// Backdate creation past the lifetime.
	require.NoError(t, svc.client.AccessToken.UpdateOneID(created.ID).
		SetCreatedAt(created.CreatedAt.Add(-10*time.Second)).
		Exec(ctx))

	_, err = svc.Resolve(ctx, created.Plaintext)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTokenService_ListScoping(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user1", "org1", "org token", 0)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user1", "", "account token", 0)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user2", "org1", "someone else", 0)
	require.NoError(t, err)

	rows, err := svc.List(ctx, "user1", "org1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "org token", rows[0].Name)

	rows, err = svc.List(ctx, "user1", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "account token", rows[0].Name)
}

func TestTokenService_Delete(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user1", "org1", "gone", 0)
	require.NoError(t, err)

	// Only the owning user can delete.
	assert.ErrorIs(t, svc.Delete(ctx, "user2", created.ID), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "user1", created.ID))

	_, err = svc.Resolve(ctx, created.Plaintext)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
