package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/docrouter-ce/docrouter/ent"
)

// CreateTokenRequest is the POST access_tokens body. Lifetime is in seconds;
// zero means the token never expires.
type CreateTokenRequest struct {
	Name     string `json:"name"`
	Lifetime int64  `json:"lifetime"`
}

// TokenResponse is one stored token on the wire; the secret material is never
// included.
type TokenResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	OrganizationID string    `json:"organization_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	Lifetime       int64     `json:"lifetime"`
}

func tokenResponse(t *ent.AccessToken) TokenResponse {
	return TokenResponse{
		ID:             t.ID,
		Name:           t.Name,
		OrganizationID: t.OrganizationID,
		CreatedAt:      t.CreatedAt,
		Lifetime:       t.Lifetime,
	}
}

func (s *Server) createToken(c *echo.Context, orgID string) error {
	var req CreateTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	created, err := s.tokens.Create(c.Request().Context(), currentUser(c).ID, orgID, req.Name, req.Lifetime)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, created)
}

func (s *Server) listTokens(c *echo.Context, orgID string) error {
	rows, err := s.tokens.List(c.Request().Context(), currentUser(c).ID, orgID)
	if err != nil {
		return mapServiceError(err)
	}
	out := make([]TokenResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, tokenResponse(t))
	}
	return c.JSON(http.StatusOK, map[string]any{"access_tokens": out})
}

func (s *Server) deleteToken(c *echo.Context) error {
	if err := s.tokens.Delete(c.Request().Context(), currentUser(c).ID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) createOrgTokenHandler(c *echo.Context) error {
	return s.createToken(c, c.Param("org_id"))
}

func (s *Server) listOrgTokensHandler(c *echo.Context) error {
	return s.listTokens(c, c.Param("org_id"))
}

func (s *Server) deleteOrgTokenHandler(c *echo.Context) error {
	return s.deleteToken(c)
}

func (s *Server) createAccountTokenHandler(c *echo.Context) error {
	return s.createToken(c, "")
}

func (s *Server) listAccountTokensHandler(c *echo.Context) error {
	return s.listTokens(c, "")
}

func (s *Server) deleteAccountTokenHandler(c *echo.Context) error {
	return s.deleteToken(c)
}

// TokenOrganizationResponse resolves a presented token to its organization id,
// or null for account tokens.
type TokenOrganizationResponse struct {
	OrganizationID *string `json:"organization_id"`
}

func (s *Server) tokenOrganizationHandler(c *echo.Context) error {
	plaintext := c.QueryParam("token")
	if plaintext == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token query parameter is required")
	}
	row, err := s.tokens.Resolve(c.Request().Context(), plaintext)
	if err != nil {
		return mapServiceError(err)
	}
	resp := TokenOrganizationResponse{}
	if row.OrganizationID != "" {
		orgID := row.OrganizationID
		resp.OrganizationID = &orgID
	}
	return c.JSON(http.StatusOK, &resp)
}
