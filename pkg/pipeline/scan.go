package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/docrouter-ce/docrouter/pkg/config"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// StuckScanner periodically reports documents sitting in a processing state
// past the configured threshold. It only logs; reprocessing stuck documents
// is an operator action (force-run).
type StuckScanner struct {
	docs     *services.DocumentService
	cfg      *config.QueueConfig
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewStuckScanner creates a StuckScanner.
func NewStuckScanner(docs *services.DocumentService, cfg *config.QueueConfig) *StuckScanner {
	return &StuckScanner{
		docs:   docs,
		cfg:    cfg,
		stopCh: make(chan struct{}),
	}
}

// Start launches the scan loop. A zero scan interval disables it.
func (s *StuckScanner) Start(ctx context.Context) {
	if s.cfg.StuckScanInterval <= 0 {
		return
	}
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop halts the scan loop.
func (s *StuckScanner) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *StuckScanner) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.StuckScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

func (s *StuckScanner) scan(ctx context.Context) {
	docs, err := s.docs.StuckDocuments(ctx, s.cfg.StuckThreshold)
	if err != nil {
		slog.Error("Stuck document scan failed", "error", err)
		return
	}
	for _, doc := range docs {
		slog.Warn("Document stuck in processing state",
			"document_id", doc.ID, "org_id", doc.OrganizationID,
			"state", doc.State, "since", doc.StateUpdatedAt)
	}
}
