package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/docrouter-ce/docrouter/pkg/config"
	"github.com/docrouter-ce/docrouter/pkg/database"
	"github.com/docrouter-ce/docrouter/pkg/pipeline"
	"github.com/docrouter-ce/docrouter/pkg/queue"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// Services bundles the service layer handed to the API server.
type Services struct {
	Documents     *services.DocumentService
	Tags          *services.TagService
	Prompts       *services.PromptService
	Schemas       *services.SchemaService
	Results       *services.ResultService
	Organizations *services.OrganizationService
	Users         *services.UserService
	Tokens        *services.TokenService
}

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	secret     string

	dbClient   *database.Client
	workerPool *queue.WorkerPool

	docs         *services.DocumentService
	tags         *services.TagService
	prompts      *services.PromptService
	schemas      *services.SchemaService
	results      *services.ResultService
	orgs         *services.OrganizationService
	users        *services.UserService
	tokens       *services.TokenService
	artifacts    *pipeline.Artifacts
	orchestrator *pipeline.Orchestrator
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg *config.Config, db *database.Client, pool *queue.WorkerPool, svc Services, orchestrator *pipeline.Orchestrator, artifacts *pipeline.Artifacts) *Server {
	e := echo.New()
	e.HTTPErrorHandler = httpErrorHandler
	e.Use(securityHeaders())

	s := &Server{
		echo:         e,
		secret:       cfg.Secret,
		dbClient:     db,
		workerPool:   pool,
		docs:         svc.Documents,
		tags:         svc.Tags,
		prompts:      svc.Prompts,
		schemas:      svc.Schemas,
		results:      svc.Results,
		orgs:         svc.Organizations,
		users:        svc.Users,
		tokens:       svc.Tokens,
		artifacts:    artifacts,
		orchestrator: orchestrator,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo

	e.GET("/health", s.healthHandler)

	// Organization-scoped surface.
	org := func(h echo.HandlerFunc) echo.HandlerFunc { return s.requireOrg(h) }

	e.POST("/v0/orgs/:org_id/documents", org(s.uploadDocumentsHandler))
	e.GET("/v0/orgs/:org_id/documents", org(s.listDocumentsHandler))
	e.GET("/v0/orgs/:org_id/documents/:id", org(s.getDocumentHandler))
	e.PUT("/v0/orgs/:org_id/documents/:id", org(s.updateDocumentHandler))
	e.DELETE("/v0/orgs/:org_id/documents/:id", org(s.deleteDocumentHandler))

	e.GET("/v0/orgs/:org_id/ocr/download/blocks/:id", org(s.downloadOCRBlocksHandler))
	e.GET("/v0/orgs/:org_id/ocr/download/text/:id", org(s.downloadOCRTextHandler))
	e.GET("/v0/orgs/:org_id/ocr/download/metadata/:id", org(s.downloadOCRMetadataHandler))

	e.POST("/v0/orgs/:org_id/llm/run/:id", org(s.runLLMHandler))
	e.GET("/v0/orgs/:org_id/llm/result/:id", org(s.getResultHandler))
	e.PUT("/v0/orgs/:org_id/llm/result/:id", org(s.updateResultHandler))
	e.DELETE("/v0/orgs/:org_id/llm/result/:id", org(s.deleteResultHandler))
	e.GET("/v0/orgs/:org_id/llm/results/:id/download", org(s.downloadResultsHandler))

	e.POST("/v0/orgs/:org_id/tags", org(s.createTagHandler))
	e.GET("/v0/orgs/:org_id/tags", org(s.listTagsHandler))
	e.GET("/v0/orgs/:org_id/tags/:id", org(s.getTagHandler))
	e.PUT("/v0/orgs/:org_id/tags/:id", org(s.updateTagHandler))
	e.DELETE("/v0/orgs/:org_id/tags/:id", org(s.deleteTagHandler))

	e.POST("/v0/orgs/:org_id/prompts", org(s.createPromptHandler))
	e.GET("/v0/orgs/:org_id/prompts", org(s.listPromptsHandler))
	e.GET("/v0/orgs/:org_id/prompts/:id", org(s.getPromptHandler))
	e.PUT("/v0/orgs/:org_id/prompts/:id", org(s.updatePromptHandler))
	e.DELETE("/v0/orgs/:org_id/prompts/:id", org(s.deletePromptHandler))

	e.POST("/v0/orgs/:org_id/schemas", org(s.createSchemaHandler))
	e.GET("/v0/orgs/:org_id/schemas", org(s.listSchemasHandler))
	e.GET("/v0/orgs/:org_id/schemas/:id", org(s.getSchemaHandler))
	e.PUT("/v0/orgs/:org_id/schemas/:id", org(s.updateSchemaHandler))
	e.DELETE("/v0/orgs/:org_id/schemas/:id", org(s.deleteSchemaHandler))

	e.POST("/v0/orgs/:org_id/access_tokens", org(s.createOrgTokenHandler))
	e.GET("/v0/orgs/:org_id/access_tokens", org(s.listOrgTokensHandler))
	e.DELETE("/v0/orgs/:org_id/access_tokens/:id", org(s.deleteOrgTokenHandler))

	// Account-scoped surface.
	acc := func(h echo.HandlerFunc) echo.HandlerFunc { return s.requireAccount(h) }

	e.POST("/v0/account/access_tokens", acc(s.createAccountTokenHandler))
	e.GET("/v0/account/access_tokens", acc(s.listAccountTokensHandler))
	e.DELETE("/v0/account/access_tokens/:id", acc(s.deleteAccountTokenHandler))
	e.GET("/v0/account/token/organization", acc(s.tokenOrganizationHandler))

	e.POST("/v0/account/organizations", acc(s.createOrganizationHandler))
	e.GET("/v0/account/organizations", acc(s.listOrganizationsHandler))
	e.GET("/v0/account/organizations/:id", acc(s.getOrganizationHandler))
	e.PUT("/v0/account/organizations/:id", acc(s.updateOrganizationHandler))
	e.DELETE("/v0/account/organizations/:id", acc(s.deleteOrganizationHandler))
}

// Start runs the HTTP server. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
