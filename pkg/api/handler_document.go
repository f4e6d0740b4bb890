package api

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/pkg/models"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// UploadDocumentsRequest is the POST documents body.
type UploadDocumentsRequest struct {
	Documents []services.UploadRequest `json:"documents"`
}

// UploadedDocument is one entry in the upload response.
type UploadedDocument struct {
	DocumentID string   `json:"document_id"`
	Name       string   `json:"document_name"`
	TagIDs     []string `json:"tag_ids"`
}

// UploadDocumentsResponse is the POST documents response.
type UploadDocumentsResponse struct {
	Documents []UploadedDocument `json:"documents"`
}

func (s *Server) uploadDocumentsHandler(c *echo.Context) error {
	orgID := c.Param("org_id")
	var req UploadDocumentsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.Documents) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "documents list is empty")
	}

	user := currentUser(c)
	resp := UploadDocumentsResponse{Documents: make([]UploadedDocument, 0, len(req.Documents))}
	for _, upload := range req.Documents {
		doc, err := s.docs.Upload(c.Request().Context(), orgID, user.ID, upload)
		if err != nil {
			return mapServiceError(err)
		}
		resp.Documents = append(resp.Documents, UploadedDocument{
			DocumentID: doc.ID,
			Name:       doc.UserFileName,
			TagIDs:     doc.TagIds,
		})
	}
	return c.JSON(http.StatusOK, &resp)
}

func (s *Server) listDocumentsHandler(c *echo.Context) error {
	orgID := c.Param("org_id")

	filter := services.ListFilter{
		Skip:           0,
		Limit:          10,
		NameSearch:     c.QueryParam("name_search"),
		MetadataSearch: c.QueryParam("metadata_search"),
	}
	if v := c.QueryParam("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "skip must be an integer")
		}
		filter.Skip = n
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		filter.Limit = n
	}
	if v := c.QueryParam("tag_ids"); v != "" {
		filter.TagIDs = strings.Split(v, ",")
	}

	resp, err := s.docs.List(c.Request().Context(), orgID, filter)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// DocumentContentResponse is one document's registry row plus its bytes.
type DocumentContentResponse struct {
	models.DocumentResponse
	Content  string `json:"content"`
	FileType string `json:"file_type"`
}

func (s *Server) getDocumentHandler(c *echo.Context) error {
	orgID := c.Param("org_id")
	docID := c.Param("id")
	fileType := c.QueryParam("file_type")

	doc, b, err := s.docs.GetBytes(c.Request().Context(), orgID, docID, fileType)
	if err != nil {
		return mapServiceError(err)
	}
	if fileType == "" {
		fileType = "original"
	}
	return c.JSON(http.StatusOK, &DocumentContentResponse{
		DocumentResponse: documentResponse(doc),
		Content:          base64.StdEncoding.EncodeToString(b.Bytes),
		FileType:         fileType,
	})
}

func (s *Server) updateDocumentHandler(c *echo.Context) error {
	orgID := c.Param("org_id")
	docID := c.Param("id")

	var req services.UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	doc, err := s.docs.Update(c.Request().Context(), orgID, docID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, documentResponse(doc))
}

func (s *Server) deleteDocumentHandler(c *echo.Context) error {
	orgID := c.Param("org_id")
	docID := c.Param("id")

	if err := s.docs.Delete(c.Request().Context(), orgID, docID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func documentResponse(d *ent.Document) models.DocumentResponse {
	return models.DocumentResponse{
		ID:             d.ID,
		OrganizationID: d.OrganizationID,
		UserFileName:   d.UserFileName,
		PDFID:          d.PdfID,
		UploadDate:     d.UploadDate,
		UploadedBy:     d.UploadedBy,
		State:          models.DocumentState(d.State),
		TagIDs:         d.TagIds,
		Metadata:       d.Metadata,
	}
}
