package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// OCR artifact downloads. The document is always resolved under the path's
// organization first so artifact keys cannot be probed across organizations.

func (s *Server) downloadOCRBlocksHandler(c *echo.Context) error {
	doc, err := s.docs.Get(c.Request().Context(), c.Param("org_id"), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	blocks, err := s.artifacts.Blocks(c.Request().Context(), doc.ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, blocks)
}

func (s *Server) downloadOCRTextHandler(c *echo.Context) error {
	doc, err := s.docs.Get(c.Request().Context(), c.Param("org_id"), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	// An explicit page_num selects one page (0-indexed); otherwise the whole
	// document text is returned.
	if v := c.QueryParam("page_num"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "page_num must be a non-negative integer")
		}
		text, err := s.artifacts.PageText(c.Request().Context(), doc.ID, page)
		if err != nil {
			return mapServiceError(err)
		}
		return c.String(http.StatusOK, text)
	}

	text, _, err := s.artifacts.Text(c.Request().Context(), doc.ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.String(http.StatusOK, text)
}

// OCRMetadataResponse is the OCR metadata body.
type OCRMetadataResponse struct {
	NPages int `json:"n_pages"`
}

func (s *Server) downloadOCRMetadataHandler(c *echo.Context) error {
	doc, err := s.docs.Get(c.Request().Context(), c.Param("org_id"), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	_, pages, err := s.artifacts.Text(c.Request().Context(), doc.ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &OCRMetadataResponse{NPages: pages})
}
