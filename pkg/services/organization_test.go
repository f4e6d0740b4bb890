package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docrouter-ce/docrouter/pkg/models"
	testdb "github.com/docrouter-ce/docrouter/test/database"
)

func TestOrganizationService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewOrganizationService(client.Client)
	ctx := context.Background()

	org, err := svc.Create(ctx, "user1", false, "Acme", models.OrgTypeTeam)
	require.NoError(t, err)
	assert.Equal(t, "Acme", org.Name)
	assert.Equal(t, models.OrgRoleAdmin, models.MemberRole(org.Members, "user1"))

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.Create(ctx, "user1", false, "", models.OrgTypeTeam)
		assert.True(t, IsValidation(err))
	})

	t.Run("type defaults to individual", func(t *testing.T) {
		org, err := svc.Create(ctx, "user1", false, "Solo", "")
		require.NoError(t, err)
		assert.Equal(t, string(models.OrgTypeIndividual), string(org.Type))
	})

	t.Run("enterprise requires system admin", func(t *testing.T) {
		_, err := svc.Create(ctx, "user1", false, "Big Corp", models.OrgTypeEnterprise)
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = svc.Create(ctx, "admin", true, "Big Corp", models.OrgTypeEnterprise)
		assert.NoError(t, err)
	})
}

func TestOrganizationService_ListForUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewOrganizationService(client.Client)
	ctx := context.Background()

	mine, err := svc.Create(ctx, "user1", false, "Mine", models.OrgTypeIndividual)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user2", false, "Theirs", models.OrgTypeIndividual)
	require.NoError(t, err)

	orgs, err := svc.ListForUser(ctx, "user1", false)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, mine.ID, orgs[0].ID)

	// System administrators see everything.
	orgs, err = svc.ListForUser(ctx, "admin", true)
	require.NoError(t, err)
	assert.Len(t, orgs, 2)
}

func TestOrganizationService_UpdateTypeLattice(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewOrganizationService(client.Client)
	ctx := context.Background()

	orgType := func(tp models.OrganizationType) *models.OrganizationType { return &tp }

	t.Run("individual to team", func(t *testing.T) {
		org, err := svc.Create(ctx, "user1", false, "Up", models.OrgTypeIndividual)
		require.NoError(t, err)

		updated, err := svc.Update(ctx, org.ID, false, OrganizationRequest{Type: orgType(models.OrgTypeTeam)})
		require.NoError(t, err)
		assert.Equal(t, string(models.OrgTypeTeam), string(updated.Type))
	})

	t.Run("downgrade refused", func(t *testing.T) {
		org, err := svc.Create(ctx, "user1", false, "Down", models.OrgTypeTeam)
		require.NoError(t, err)

		_, err = svc.Update(ctx, org.ID, false, OrganizationRequest{Type: orgType(models.OrgTypeIndividual)})
		assert.True(t, IsValidation(err))
	})

	t.Run("enterprise upgrade requires system admin", func(t *testing.T) {
		org, err := svc.Create(ctx, "user1", false, "Ent", models.OrgTypeTeam)
		require.NoError(t, err)

		_, err = svc.Update(ctx, org.ID, false, OrganizationRequest{Type: orgType(models.OrgTypeEnterprise)})
		assert.ErrorIs(t, err, ErrForbidden)

		updated, err := svc.Update(ctx, org.ID, true, OrganizationRequest{Type: orgType(models.OrgTypeEnterprise)})
		require.NoError(t, err)
		assert.Equal(t, string(models.OrgTypeEnterprise), string(updated.Type))
	})
}

func TestOrganizationService_UpdateMembers(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewOrganizationService(client.Client)
	ctx := context.Background()

	org, err := svc.Create(ctx, "user1", false, "Crew", models.OrgTypeTeam)
	require.NoError(t, err)

	t.Run("team must keep an admin", func(t *testing.T) {
		members := []models.OrganizationMember{{UserID: "user2", Role: models.OrgRoleUser}}
		_, err := svc.Update(ctx, org.ID, false, OrganizationRequest{Members: &members})
		assert.True(t, IsValidation(err))
	})

	t.Run("member roster replaced", func(t *testing.T) {
		members := []models.OrganizationMember{
			{UserID: "user1", Role: models.OrgRoleAdmin},
			{UserID: "user2", Role: models.OrgRoleUser},
		}
		updated, err := svc.Update(ctx, org.ID, false, OrganizationRequest{Members: &members})
		require.NoError(t, err)
		assert.Equal(t, models.OrgRoleUser, models.MemberRole(updated.Members, "user2"))
	})

	t.Run("empty name refused", func(t *testing.T) {
		empty := ""
		_, err := svc.Update(ctx, org.ID, false, OrganizationRequest{Name: &empty})
		assert.True(t, IsValidation(err))
	})
}

func TestOrganizationService_Delete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewOrganizationService(client.Client)
	ctx := context.Background()

	org, err := svc.Create(ctx, "user1", false, "Temp", models.OrgTypeIndividual)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, org.ID))
	_, err = svc.Get(ctx, org.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, org.ID), ErrNotFound)
}
