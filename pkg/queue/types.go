package queue

import (
	"context"
	"time"

	"github.com/docrouter-ce/docrouter/ent"
)

// Handler processes one claimed message. A non-nil error marks the message
// failed; the handler is responsible for any domain-level state (document
// stage status, err-queue forwarding) before returning.
type Handler interface {
	Handle(ctx context.Context, msg *ent.QueueMessage) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, msg *ent.QueueMessage) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, msg *ent.QueueMessage) error {
	return f(ctx, msg)
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string       `json:"id"`
	Queue             string       `json:"queue"`
	Status            WorkerStatus `json:"status"`
	CurrentMessageID  string       `json:"current_message_id,omitempty"`
	MessagesProcessed int          `json:"messages_processed"`
	LastActivity      time.Time    `json:"last_activity"`
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy    bool           `json:"is_healthy"`
	TotalWorkers int            `json:"total_workers"`
	QueueDepths  map[string]int `json:"queue_depths"`
	WorkerStats  []WorkerHealth `json:"worker_stats"`
}
