package services

import (
	"context"
	"fmt"
	"time"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/organization"
	"github.com/docrouter-ce/docrouter/pkg/models"
)

// OrganizationService implements organization CRUD with the type-upgrade
// lattice and admin checks.
type OrganizationService struct {
	client *ent.Client
}

// NewOrganizationService creates an OrganizationService.
func NewOrganizationService(client *ent.Client) *OrganizationService {
	return &OrganizationService{client: client}
}

// OrganizationRequest carries create/update fields. Nil fields on update are
// unchanged.
type OrganizationRequest struct {
	Name    *string                      `json:"name,omitempty"`
	Type    *models.OrganizationType     `json:"type,omitempty"`
	Members *[]models.OrganizationMember `json:"members,omitempty"`
}

// Create inserts an organization with the caller as admin. Enterprise
// creation requires a system administrator.
func (s *OrganizationService) Create(ctx context.Context, userID string, isSysAdmin bool, name string, orgType models.OrganizationType) (*ent.Organization, error) {
	if name == "" {
		return nil, Validationf("organization name is required")
	}
	if orgType == "" {
		orgType = models.OrgTypeIndividual
	}
	if orgType == models.OrgTypeEnterprise && !isSysAdmin {
		return nil, fmt.Errorf("enterprise organizations require a system administrator: %w", ErrForbidden)
	}
	org, err := s.client.Organization.Create().
		SetName(name).
		SetType(organization.Type(orgType)).
		SetMembers([]models.OrganizationMember{{UserID: userID, Role: models.OrgRoleAdmin}}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}
	return org, nil
}

// Get returns one organization.
func (s *OrganizationService) Get(ctx context.Context, orgID string) (*ent.Organization, error) {
	org, err := s.client.Organization.Get(ctx, orgID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("organization %s: %w", orgID, ErrNotFound)
		}
		return nil, fmt.Errorf("querying organization %s: %w", orgID, err)
	}
	return org, nil
}

// ListForUser returns the organizations where the user is a member. System
// administrators see all organizations.
func (s *OrganizationService) ListForUser(ctx context.Context, userID string, isSysAdmin bool) ([]*ent.Organization, error) {
	orgs, err := s.client.Organization.Query().
		Order(ent.Asc(organization.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	if isSysAdmin {
		return orgs, nil
	}
	var out []*ent.Organization
	for _, org := range orgs {
		if models.MemberRole(org.Members, userID) != "" {
			out = append(out, org)
		}
	}
	return out, nil
}

// Update applies name, member, and type changes. Type changes follow the
// upgrade lattice; upgrades to enterprise require a system administrator;
// team and enterprise organizations must keep a non-empty admin set.
func (s *OrganizationService) Update(ctx context.Context, orgID string, isSysAdmin bool, req OrganizationRequest) (*ent.Organization, error) {
	org, err := s.Get(ctx, orgID)
	if err != nil {
		return nil, err
	}

	upd := org.Update().SetUpdatedAt(time.Now())
	newType := models.OrganizationType(org.Type)
	if req.Type != nil && *req.Type != newType {
		from := models.OrganizationType(org.Type)
		if !models.CanUpgradeOrgType(from, *req.Type) {
			return nil, Validationf("organization type cannot change from %s to %s", from, *req.Type)
		}
		if *req.Type == models.OrgTypeEnterprise && !isSysAdmin {
			return nil, fmt.Errorf("upgrading to enterprise requires a system administrator: %w", ErrForbidden)
		}
		newType = *req.Type
		upd.SetType(organization.Type(newType))
	}

	members := org.Members
	if req.Members != nil {
		members = *req.Members
	}
	if newType != models.OrgTypeIndividual && !models.HasAdmin(members) {
		return nil, Validationf("%s organizations require at least one admin member", newType)
	}
	if req.Members != nil {
		upd.SetMembers(members)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, Validationf("organization name cannot be empty")
		}
		upd.SetName(*req.Name)
	}

	org, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating organization %s: %w", orgID, err)
	}
	return org, nil
}

// Delete removes an organization row. Documents and related data are owned
// by the organization id and are left to explicit cleanup.
func (s *OrganizationService) Delete(ctx context.Context, orgID string) error {
	if err := s.client.Organization.DeleteOneID(orgID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("organization %s: %w", orgID, ErrNotFound)
		}
		return fmt.Errorf("deleting organization %s: %w", orgID, err)
	}
	return nil
}
