// docrouterd runs the document extraction server: HTTP API, queue workers,
// and the OCR/LLM pipeline.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/docrouter-ce/docrouter/pkg/api"
	"github.com/docrouter-ce/docrouter/pkg/blob"
	"github.com/docrouter-ce/docrouter/pkg/config"
	"github.com/docrouter-ce/docrouter/pkg/credit"
	"github.com/docrouter-ce/docrouter/pkg/crypto"
	"github.com/docrouter-ce/docrouter/pkg/database"
	"github.com/docrouter-ce/docrouter/pkg/intake"
	"github.com/docrouter-ce/docrouter/pkg/llm"
	"github.com/docrouter-ce/docrouter/pkg/ocr"
	"github.com/docrouter-ce/docrouter/pkg/pipeline"
	"github.com/docrouter-ce/docrouter/pkg/queue"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

func main() {
	// Load .env when present; a deployed process gets real environment.
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	slog.Info("Starting docrouter", "env", cfg.Env, "http_port", cfg.HTTPPort)

	ctx := context.Background()

	// 1. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 2. Crypto and provider registry
	cipher, err := crypto.New(cfg.Secret)
	if err != nil {
		slog.Error("Failed to initialize cipher", "error", err)
		os.Exit(1)
	}
	registry := llm.NewRegistry(dbClient.Client, cipher)
	if err := registry.Reconcile(ctx); err != nil {
		slog.Error("Failed to reconcile LLM providers", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM provider registry reconciled")

	// 3. Services
	users := services.NewUserService(dbClient.Client)
	if err := users.BootstrapAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		slog.Error("Failed to bootstrap admin account", "error", err)
		os.Exit(1)
	}

	blobs := blob.NewStore(dbClient.Client)
	converter := intake.NewConverter(cfg.ConverterCommand, cfg.ConverterLockPath)

	workerPool := queue.NewWorkerPool(dbClient.Client, cfg.Queue)
	q := workerPool.Queue()

	docs := services.NewDocumentService(dbClient.Client, blobs, q, converter)
	svc := api.Services{
		Documents:     docs,
		Tags:          services.NewTagService(dbClient.Client),
		Prompts:       services.NewPromptService(dbClient.Client),
		Schemas:       services.NewSchemaService(dbClient.Client),
		Results:       services.NewResultService(dbClient.Client),
		Organizations: services.NewOrganizationService(dbClient.Client),
		Users:         users,
		Tokens:        services.NewTokenService(dbClient.Client, cipher),
	}
	slog.Info("Services initialized")

	// 4. Pipeline
	chat := llm.NewChatClient()
	gate := credit.NewDBGate(dbClient.Client)
	orchestrator := pipeline.NewOrchestrator(dbClient.Client, docs, blobs, chat, gate, cipher)
	artifacts := pipeline.NewArtifacts(blobs)

	ocrClient, err := ocr.NewTextractClient(ctx, cfg.AWSRegion, cfg.AWSS3Bucket)
	if err != nil {
		slog.Error("Failed to initialize OCR client", "error", err)
		os.Exit(1)
	}

	workerPool.RegisterStage(queue.QueueOCR, pipeline.NewOCRHandler(docs, blobs, ocrClient, q))
	workerPool.RegisterStage(queue.QueueLLM, pipeline.NewLLMHandler(docs, orchestrator))

	// 5. Start workers before accepting uploads
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	scanner := pipeline.NewStuckScanner(docs, cfg.Queue)
	scanner.Start(ctx)

	// 6. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, workerPool, svc, orchestrator, artifacts)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("docrouter started successfully", "workers", cfg.Queue.WorkerCount)

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: drain workers within budget, then stop HTTP.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	scanner.Stop()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight messages remain claimed")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
