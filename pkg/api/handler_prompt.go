package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// PromptResponse is one prompt revision on the wire.
type PromptResponse struct {
	PromptRevID   string    `json:"prompt_revid"`
	PromptID      string    `json:"prompt_id"`
	PromptVersion int       `json:"prompt_version"`
	Name          string    `json:"name"`
	Content       string    `json:"content"`
	SchemaID      string    `json:"schema_id,omitempty"`
	SchemaVersion int       `json:"schema_version,omitempty"`
	TagIDs        []string  `json:"tag_ids"`
	Model         string    `json:"model"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by,omitempty"`
}

func promptResponse(p *ent.PromptRevision) PromptResponse {
	return PromptResponse{
		PromptRevID:   p.ID,
		PromptID:      p.PromptID,
		PromptVersion: p.PromptVersion,
		Name:          p.Name,
		Content:       p.Content,
		SchemaID:      p.SchemaID,
		SchemaVersion: p.SchemaVersion,
		TagIDs:        p.TagIds,
		Model:         p.Model,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

func (s *Server) createPromptHandler(c *echo.Context) error {
	var req services.PromptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	rev, err := s.prompts.Create(c.Request().Context(), c.Param("org_id"), currentUser(c).ID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, promptResponse(rev))
}

func (s *Server) listPromptsHandler(c *echo.Context) error {
	revs, err := s.prompts.List(c.Request().Context(), c.Param("org_id"))
	if err != nil {
		return mapServiceError(err)
	}
	out := make([]PromptResponse, 0, len(revs))
	for _, rev := range revs {
		out = append(out, promptResponse(rev))
	}
	return c.JSON(http.StatusOK, map[string]any{"prompts": out})
}

// getPromptHandler returns the latest revision of a prompt id.
func (s *Server) getPromptHandler(c *echo.Context) error {
	rev, err := s.prompts.Latest(c.Request().Context(), c.Param("org_id"), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, promptResponse(rev))
}

func (s *Server) updatePromptHandler(c *echo.Context) error {
	var req services.PromptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	rev, err := s.prompts.Update(c.Request().Context(),
		c.Param("org_id"), c.Param("id"), currentUser(c).ID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, promptResponse(rev))
}

func (s *Server) deletePromptHandler(c *echo.Context) error {
	if err := s.prompts.Delete(c.Request().Context(), c.Param("org_id"), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
