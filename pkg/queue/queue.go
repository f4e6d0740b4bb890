// Package queue provides named FIFO work queues and the worker pool that
// drains them.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/queuemessage"
)

// Well-known queue names.
const (
	QueueOCR    = "ocr"
	QueueOCRErr = "ocr_err"
	QueueLLM    = "llm"
)

// ErrEmpty indicates no pending messages are on the queue.
var ErrEmpty = errors.New("queue empty")

// Queue sends and receives messages on named queues backed by the database.
type Queue struct {
	client *ent.Client
}

// New creates a Queue on the given database client.
func New(client *ent.Client) *Queue {
	return &Queue{client: client}
}

// Send inserts a pending message and returns its id.
func (q *Queue) Send(ctx context.Context, queue, msgType string, payload map[string]any) (string, error) {
	msg, err := q.client.QueueMessage.Create().
		SetQueue(queue).
		SetMsgType(msgType).
		SetMsg(payload).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("sending to queue %s: %w", queue, err)
	}
	return msg.ID, nil
}

// Recv atomically claims the oldest pending message on the queue, setting
// its status to processing. Returns ErrEmpty when nothing is pending.
// The claim uses FOR UPDATE SKIP LOCKED, so no two callers ever claim the
// same message.
func (q *Queue) Recv(ctx context.Context, queue string) (*ent.QueueMessage, error) {
	tx, err := q.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	msg, err := tx.QueueMessage.Query().
		Where(
			queuemessage.QueueEQ(queue),
			queuemessage.StatusEQ(queuemessage.StatusPending),
		).
		Order(ent.Asc(queuemessage.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("querying pending message on %s: %w", queue, err)
	}

	msg, err = msg.Update().
		SetStatus(queuemessage.StatusProcessing).
		SetClaimedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("claiming message %s: %w", msg.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing claim: %w", err)
	}
	return msg, nil
}

// Complete marks a claimed message with its terminal status, completed or
// failed.
func (q *Queue) Complete(ctx context.Context, id string, status queuemessage.Status) error {
	if status != queuemessage.StatusCompleted && status != queuemessage.StatusFailed {
		return fmt.Errorf("non-terminal status %q", status)
	}
	if err := q.client.QueueMessage.UpdateOneID(id).
		SetStatus(status).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("completing message %s: %w", id, err)
	}
	return nil
}

// Depth returns the number of pending messages on the queue.
func (q *Queue) Depth(ctx context.Context, queue string) (int, error) {
	n, err := q.client.QueueMessage.Query().
		Where(
			queuemessage.QueueEQ(queue),
			queuemessage.StatusEQ(queuemessage.StatusPending),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting pending messages on %s: %w", queue, err)
	}
	return n, nil
}
