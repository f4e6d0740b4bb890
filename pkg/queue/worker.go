package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/queuemessage"
	"github.com/docrouter-ce/docrouter/pkg/config"
)

// Worker is a single queue worker that polls one named queue and dispatches
// claimed messages to its handler.
type Worker struct {
	id        string
	queueName string
	queue     *Queue
	handler   Handler
	config    *config.QueueConfig
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentMessageID  string
	messagesProcessed int
	lastActivity      time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, queueName string, q *Queue, handler Handler, cfg *config.QueueConfig) *Worker {
	return &Worker{
		id:           id,
		queueName:    queueName,
		queue:        q,
		handler:      handler,
		config:       cfg,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish the message in
// flight. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Queue:             w.queueName,
		Status:            w.status,
		CurrentMessageID:  w.currentMessageID,
		MessagesProcessed: w.messagesProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.queueName)
	log.Info("Worker started")

	heartbeat := time.NewTicker(w.config.HeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		case <-heartbeat.C:
			w.mu.RLock()
			processed := w.messagesProcessed
			w.mu.RUnlock()
			log.Info("Worker heartbeat", "messages_processed", processed)
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrEmpty) {
					w.sleep(w.config.PollInterval)
					continue
				}
				log.Error("Error processing message", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next message and runs the handler on it.
// Handler failures are isolated: the message is marked failed and the worker
// keeps running.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	msg, err := w.queue.Recv(ctx, w.queueName)
	if err != nil {
		return err
	}

	log := slog.With("worker_id", w.id, "queue", w.queueName, "message_id", msg.ID)
	log.Info("Message claimed", "msg_type", msg.MsgType)

	w.setStatus(WorkerStatusWorking, msg.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	msgCtx, cancel := context.WithTimeout(ctx, w.config.MessageTimeout)
	defer cancel()

	status := queuemessage.StatusCompleted
	if err := w.handle(msgCtx, msg); err != nil {
		log.Error("Handler failed, marking message failed", "error", err)
		status = queuemessage.StatusFailed
	}

	// Terminal status write uses a background context — msgCtx may be done.
	if err := w.queue.Complete(context.Background(), msg.ID, status); err != nil {
		log.Error("Failed to mark message terminal status", "status", status, "error", err)
		return err
	}

	w.mu.Lock()
	w.messagesProcessed++
	w.mu.Unlock()

	log.Info("Message processing complete", "status", status)
	return nil
}

// handle runs the handler, converting panics into errors so a broken
// handler cannot terminate the worker.
func (w *Worker) handle(ctx context.Context, msg *ent.QueueMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return w.handler.Handle(ctx, msg)
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, messageID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentMessageID = messageID
	w.lastActivity = time.Now()
}
