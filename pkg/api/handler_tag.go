package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// TagResponse is one tag on the wire.
type TagResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by,omitempty"`
}

func tagResponse(t *ent.Tag) TagResponse {
	return TagResponse{
		ID:          t.ID,
		Name:        t.Name,
		Color:       t.Color,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		CreatedBy:   t.CreatedBy,
	}
}

func (s *Server) createTagHandler(c *echo.Context) error {
	var req services.TagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	tag, err := s.tags.Create(c.Request().Context(), c.Param("org_id"), currentUser(c).ID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tagResponse(tag))
}

func (s *Server) listTagsHandler(c *echo.Context) error {
	tags, err := s.tags.List(c.Request().Context(), c.Param("org_id"))
	if err != nil {
		return mapServiceError(err)
	}
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagResponse(t))
	}
	return c.JSON(http.StatusOK, map[string]any{"tags": out})
}

func (s *Server) getTagHandler(c *echo.Context) error {
	tag, err := s.tags.Get(c.Request().Context(), c.Param("org_id"), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tagResponse(tag))
}

func (s *Server) updateTagHandler(c *echo.Context) error {
	var req services.TagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	tag, err := s.tags.Update(c.Request().Context(), c.Param("org_id"), c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tagResponse(tag))
}

func (s *Server) deleteTagHandler(c *echo.Context) error {
	if err := s.tags.Delete(c.Request().Context(), c.Param("org_id"), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
