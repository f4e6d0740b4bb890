package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/pkg/config"
)

// WorkerPool manages per-stage sets of queue workers. Each registered stage
// (queue name + handler) gets WorkerCount workers.
type WorkerPool struct {
	client  *ent.Client
	queue   *Queue
	config  *config.QueueConfig
	stages  map[string]Handler
	workers []*Worker
	mu      sync.Mutex
	started bool
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(client *ent.Client, cfg *config.QueueConfig) *WorkerPool {
	return &WorkerPool{
		client: client,
		queue:  New(client),
		config: cfg,
		stages: make(map[string]Handler),
	}
}

// Queue returns the pool's underlying queue, for senders.
func (p *WorkerPool) Queue() *Queue {
	return p.queue
}

// RegisterStage binds a handler to a named queue. Must be called before Start.
func (p *WorkerPool) RegisterStage(queueName string, handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stages[queueName] = handler
}

// Start spawns WorkerCount workers for every registered stage.
// Safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return nil
	}
	if len(p.stages) == 0 {
		return fmt.Errorf("no stages registered")
	}
	p.started = true

	slog.Info("Starting worker pool",
		"stages", len(p.stages), "workers_per_stage", p.config.WorkerCount)

	for queueName, handler := range p.stages {
		for i := 0; i < p.config.WorkerCount; i++ {
			workerID := fmt.Sprintf("%s-worker-%d", queueName, i)
			worker := NewWorker(workerID, queueName, p.queue, handler, p.config)
			p.workers = append(p.workers, worker)
			worker.Start(ctx)
		}
	}

	slog.Info("Worker pool started", "total_workers", len(p.workers))
	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// in-flight messages (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	var wg sync.WaitGroup
	for _, worker := range p.workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			w.Stop()
		}(worker)
	}
	wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	depths := make(map[string]int, len(p.stages))
	healthy := len(p.workers) > 0
	for queueName := range p.stages {
		depth, err := p.queue.Depth(ctx, queueName)
		if err != nil {
			slog.Error("Failed to query queue depth for health check",
				"queue", queueName, "error", err)
			healthy = false
			continue
		}
		depths[queueName] = depth
	}

	stats := make([]WorkerHealth, len(p.workers))
	for i, worker := range p.workers {
		stats[i] = worker.Health()
	}

	return &PoolHealth{
		IsHealthy:    healthy,
		TotalWorkers: len(p.workers),
		QueueDepths:  depths,
		WorkerStats:  stats,
	}
}
