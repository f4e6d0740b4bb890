package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docrouter-ce/docrouter/ent/user"
	"github.com/docrouter-ce/docrouter/pkg/models"
	testdb "github.com/docrouter-ce/docrouter/test/database"
)

func TestUserService_BootstrapAdmin(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("disabled when unset", func(t *testing.T) {
		require.NoError(t, svc.BootstrapAdmin(ctx, "", ""))
		n, err := client.User.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("partial configuration refused", func(t *testing.T) {
		assert.True(t, IsValidation(svc.BootstrapAdmin(ctx, "admin@example.com", "")))
		assert.True(t, IsValidation(svc.BootstrapAdmin(ctx, "", "hunter2")))
	})

	t.Run("creates admin with individual organization", func(t *testing.T) {
		require.NoError(t, svc.BootstrapAdmin(ctx, "admin@example.com", "hunter2"))

		u, err := svc.GetByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, u.Role)
		assert.True(t, IsSystemAdmin(u))
		assert.True(t, CheckPassword(u, "hunter2"))
		assert.False(t, CheckPassword(u, "wrong"))

		orgs, err := svc.orgs.ListForUser(ctx, u.ID, false)
		require.NoError(t, err)
		require.Len(t, orgs, 1)
		assert.Equal(t, string(models.OrgTypeIndividual), string(orgs[0].Type))
	})

	t.Run("rerun refreshes credentials", func(t *testing.T) {
		require.NoError(t, svc.BootstrapAdmin(ctx, "admin@example.com", "rotated"))

		u, err := svc.GetByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.True(t, CheckPassword(u, "rotated"))

		// No duplicate user or organization is created.
		n, err := client.User.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestUserService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client)
	ctx := context.Background()

	created, err := client.User.Create().
		SetEmail("u@example.com").
		SetName("U").
		SetPasswordHash("x").
		Save(ctx)
	require.NoError(t, err)

	u, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "u@example.com", u.Email)
	assert.False(t, IsSystemAdmin(u))

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
