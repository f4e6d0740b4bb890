package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// ResultResponse is one extraction result revision on the wire. Result
// payloads are embedded raw so the schema-declared key order survives.
type ResultResponse struct {
	ID               string          `json:"id"`
	DocumentID       string          `json:"document_id"`
	PromptRevID      string          `json:"prompt_rev_id"`
	PromptID         string          `json:"prompt_id,omitempty"`
	PromptVersion    int             `json:"prompt_version,omitempty"`
	LLMResult        json.RawMessage `json:"llm_result"`
	UpdatedLLMResult json.RawMessage `json:"updated_llm_result"`
	IsEdited         bool            `json:"is_edited"`
	IsVerified       bool            `json:"is_verified"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func resultResponse(r *ent.LLMResult) ResultResponse {
	return ResultResponse{
		ID:               r.ID,
		DocumentID:       r.DocumentID,
		PromptRevID:      r.PromptRevID,
		PromptID:         r.PromptID,
		PromptVersion:    r.PromptVersion,
		LLMResult:        json.RawMessage(r.LlmResult),
		UpdatedLLMResult: json.RawMessage(r.UpdatedLlmResult),
		IsEdited:         r.IsEdited,
		IsVerified:       r.IsVerified,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// promptRevParam reads the prompt_rev_id selector, defaulting to the built-in
// classification prompt.
func promptRevParam(c *echo.Context) string {
	if v := c.QueryParam("prompt_rev_id"); v != "" {
		return v
	}
	return services.DefaultPromptRevID
}

func (s *Server) runLLMHandler(c *echo.Context) error {
	orgID := c.Param("org_id")
	docID := c.Param("id")

	// Scope check before running anything.
	if _, err := s.docs.Get(c.Request().Context(), orgID, docID); err != nil {
		return mapServiceError(err)
	}

	force := false
	if v := c.QueryParam("force"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "force must be a boolean")
		}
		force = b
	}

	result, err := s.orchestrator.RunLLM(c.Request().Context(),
		docID, promptRevParam(c), c.QueryParam("model"), force)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resultResponse(result))
}

func (s *Server) getResultHandler(c *echo.Context) error {
	orgID := c.Param("org_id")
	docID := c.Param("id")

	if _, err := s.docs.Get(c.Request().Context(), orgID, docID); err != nil {
		return mapServiceError(err)
	}
	result, err := s.results.Latest(c.Request().Context(), docID, promptRevParam(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resultResponse(result))
}

// UpdateResultRequest is the PUT result body. The updated payload must keep
// the original's top-level key set.
type UpdateResultRequest struct {
	UpdatedLLMResult json.RawMessage `json:"updated_llm_result"`
	IsVerified       *bool           `json:"is_verified,omitempty"`
}

func (s *Server) updateResultHandler(c *echo.Context) error {
	orgID := c.Param("org_id")
	docID := c.Param("id")

	if _, err := s.docs.Get(c.Request().Context(), orgID, docID); err != nil {
		return mapServiceError(err)
	}
	var req UpdateResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.UpdatedLLMResult) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "updated_llm_result is required")
	}

	result, err := s.results.Update(c.Request().Context(),
		docID, promptRevParam(c), string(req.UpdatedLLMResult), req.IsVerified)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resultResponse(result))
}

func (s *Server) deleteResultHandler(c *echo.Context) error {
	orgID := c.Param("org_id")
	docID := c.Param("id")

	if _, err := s.docs.Get(c.Request().Context(), orgID, docID); err != nil {
		return mapServiceError(err)
	}
	if err := s.results.Delete(c.Request().Context(), docID, promptRevParam(c)); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// DownloadResultsResponse carries the newest result of every prompt that has
// run against a document.
type DownloadResultsResponse struct {
	DocumentID string           `json:"document_id"`
	Results    []ResultResponse `json:"results"`
}

func (s *Server) downloadResultsHandler(c *echo.Context) error {
	orgID := c.Param("org_id")
	docID := c.Param("id")

	if _, err := s.docs.Get(c.Request().Context(), orgID, docID); err != nil {
		return mapServiceError(err)
	}
	results, err := s.results.ListLatestForDocument(c.Request().Context(), docID)
	if err != nil {
		return mapServiceError(err)
	}
	resp := DownloadResultsResponse{
		DocumentID: docID,
		Results:    make([]ResultResponse, 0, len(results)),
	}
	for _, r := range results {
		resp.Results = append(resp.Results, resultResponse(r))
	}
	return c.JSON(http.StatusOK, &resp)
}
