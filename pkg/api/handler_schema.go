package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/pkg/models"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// SchemaResponse is one schema revision on the wire.
type SchemaResponse struct {
	SchemaRevID    string                `json:"schema_revid"`
	SchemaID       string                `json:"schema_id"`
	SchemaVersion  int                   `json:"schema_version"`
	Name           string                `json:"name"`
	ResponseFormat models.ResponseFormat `json:"response_format"`
	CreatedAt      time.Time             `json:"created_at"`
	CreatedBy      string                `json:"created_by,omitempty"`
}

func schemaResponse(r *ent.SchemaRevision) SchemaResponse {
	return SchemaResponse{
		SchemaRevID:    r.ID,
		SchemaID:       r.SchemaID,
		SchemaVersion:  r.SchemaVersion,
		Name:           r.Name,
		ResponseFormat: r.ResponseFormat,
		CreatedAt:      r.CreatedAt,
		CreatedBy:      r.CreatedBy,
	}
}

func (s *Server) createSchemaHandler(c *echo.Context) error {
	var req services.SchemaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	rev, err := s.schemas.Create(c.Request().Context(), c.Param("org_id"), currentUser(c).ID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, schemaResponse(rev))
}

func (s *Server) listSchemasHandler(c *echo.Context) error {
	revs, err := s.schemas.List(c.Request().Context(), c.Param("org_id"))
	if err != nil {
		return mapServiceError(err)
	}
	out := make([]SchemaResponse, 0, len(revs))
	for _, rev := range revs {
		out = append(out, schemaResponse(rev))
	}
	return c.JSON(http.StatusOK, map[string]any{"schemas": out})
}

// getSchemaHandler returns the latest revision of a schema id, or a specific
// version when schema_version is given.
func (s *Server) getSchemaHandler(c *echo.Context) error {
	orgID := c.Param("org_id")
	schemaID := c.Param("id")

	if v := c.QueryParam("schema_version"); v != "" {
		version, err := strconv.Atoi(v)
		if err != nil || version < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "schema_version must be a positive integer")
		}
		rev, err := s.schemas.GetVersion(c.Request().Context(), orgID, schemaID, version)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(http.StatusOK, schemaResponse(rev))
	}

	rev, err := s.schemas.Latest(c.Request().Context(), orgID, schemaID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, schemaResponse(rev))
}

func (s *Server) updateSchemaHandler(c *echo.Context) error {
	var req services.SchemaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	rev, err := s.schemas.Update(c.Request().Context(),
		c.Param("org_id"), c.Param("id"), currentUser(c).ID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, schemaResponse(rev))
}

func (s *Server) deleteSchemaHandler(c *echo.Context) error {
	if err := s.schemas.Delete(c.Request().Context(), c.Param("org_id"), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
