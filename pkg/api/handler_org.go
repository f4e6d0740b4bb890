package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/pkg/models"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// OrganizationResponse is one organization on the wire.
type OrganizationResponse struct {
	ID        string                      `json:"id"`
	Name      string                      `json:"name"`
	Type      models.OrganizationType     `json:"type"`
	Members   []models.OrganizationMember `json:"members"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

func organizationResponse(o *ent.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Type:      models.OrganizationType(o.Type),
		Members:   o.Members,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// CreateOrganizationRequest is the POST organizations body.
type CreateOrganizationRequest struct {
	Name string                  `json:"name"`
	Type models.OrganizationType `json:"type,omitempty"`
}

func (s *Server) createOrganizationHandler(c *echo.Context) error {
	var req CreateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	org, err := s.orgs.Create(c.Request().Context(), currentUser(c).ID, isSysAdmin(c), req.Name, req.Type)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, organizationResponse(org))
}

func (s *Server) listOrganizationsHandler(c *echo.Context) error {
	orgs, err := s.orgs.ListForUser(c.Request().Context(), currentUser(c).ID, isSysAdmin(c))
	if err != nil {
		return mapServiceError(err)
	}
	out := make([]OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, organizationResponse(o))
	}
	return c.JSON(http.StatusOK, map[string]any{"organizations": out})
}

// getOrganizationHandler returns one organization the caller can see.
func (s *Server) getOrganizationHandler(c *echo.Context) error {
	org, err := s.orgs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	if !isSysAdmin(c) && models.MemberRole(org.Members, currentUser(c).ID) == "" {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	return c.JSON(http.StatusOK, organizationResponse(org))
}

func (s *Server) updateOrganizationHandler(c *echo.Context) error {
	orgID := c.Param("id")

	org, err := s.orgs.Get(c.Request().Context(), orgID)
	if err != nil {
		return mapServiceError(err)
	}
	// Member updates require org admin (or system admin).
	if !isSysAdmin(c) && models.MemberRole(org.Members, currentUser(c).ID) != models.OrgRoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "organization admin required")
	}

	var req services.OrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	org, err = s.orgs.Update(c.Request().Context(), orgID, isSysAdmin(c), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, organizationResponse(org))
}

func (s *Server) deleteOrganizationHandler(c *echo.Context) error {
	orgID := c.Param("id")

	org, err := s.orgs.Get(c.Request().Context(), orgID)
	if err != nil {
		return mapServiceError(err)
	}
	if !isSysAdmin(c) && models.MemberRole(org.Members, currentUser(c).ID) != models.OrgRoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "organization admin required")
	}
	if err := s.orgs.Delete(c.Request().Context(), orgID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
