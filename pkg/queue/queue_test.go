package queue_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/queuemessage"
	"github.com/docrouter-ce/docrouter/pkg/config"
	"github.com/docrouter-ce/docrouter/pkg/queue"
	testdb "github.com/docrouter-ce/docrouter/test/database"
)

func TestQueue_SendRecvFIFO(t *testing.T) {
	client := testdb.NewTestClient(t)
	q := queue.New(client.Client)
	ctx := context.Background()

	id1, err := q.Send(ctx, queue.QueueOCR, "ocr", map[string]any{"document_id": "d1"})
	require.NoError(t, err)
	id2, err := q.Send(ctx, queue.QueueOCR, "ocr", map[string]any{"document_id": "d2"})
	require.NoError(t, err)

	msg, err := q.Recv(ctx, queue.QueueOCR)
	require.NoError(t, err)
	assert.Equal(t, id1, msg.ID)
	assert.Equal(t, "d1", msg.Msg["document_id"])
	assert.Equal(t, queuemessage.StatusProcessing, msg.Status)

	msg, err = q.Recv(ctx, queue.QueueOCR)
	require.NoError(t, err)
	assert.Equal(t, id2, msg.ID)

	_, err = q.Recv(ctx, queue.QueueOCR)
	assert.ErrorIs(t, err, queue.ErrEmpty)
}

func TestQueue_QueuesAreIsolated(t *testing.T) {
	client := testdb.NewTestClient(t)
	q := queue.New(client.Client)
	ctx := context.Background()

	_, err := q.Send(ctx, queue.QueueLLM, "llm", map[string]any{"document_id": "d1"})
	require.NoError(t, err)

	_, err = q.Recv(ctx, queue.QueueOCR)
	assert.ErrorIs(t, err, queue.ErrEmpty)

	msg, err := q.Recv(ctx, queue.QueueLLM)
	require.NoError(t, err)
	assert.Equal(t, "d1", msg.Msg["document_id"])
}

// TestQueue_SingleClaim races many concurrent receivers over a fixed message
// set and asserts every message is claimed exactly once.
func TestQueue_SingleClaim(t *testing.T) {
	client := testdb.NewTestClient(t)
	q := queue.New(client.Client)
	ctx := context.Background()

	const messages = 20
	for i := 0; i < messages; i++ {
		_, err := q.Send(ctx, queue.QueueOCR, "ocr", map[string]any{"n": i})
		require.NoError(t, err)
	}

	var (
		mu      sync.Mutex
		claimed = make(map[string]int)
		wg      sync.WaitGroup
	)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				msg, err := q.Recv(ctx, queue.QueueOCR)
				if err != nil {
					return // ErrEmpty ends this worker
				}
				mu.Lock()
				claimed[msg.ID]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, claimed, messages)
	for id, n := range claimed {
		assert.Equal(t, 1, n, "message %s claimed more than once", id)
	}
}

func TestQueue_Complete(t *testing.T) {
	client := testdb.NewTestClient(t)
	q := queue.New(client.Client)
	ctx := context.Background()

	id, err := q.Send(ctx, queue.QueueOCR, "ocr", nil)
	require.NoError(t, err)
	msg, err := q.Recv(ctx, queue.QueueOCR)
	require.NoError(t, err)

	require.NoError(t, q.Complete(ctx, msg.ID, queuemessage.StatusCompleted))

	row, err := client.QueueMessage.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, queuemessage.StatusCompleted, row.Status)
	assert.False(t, row.CompletedAt.IsZero())

	// Only terminal statuses are accepted.
	assert.Error(t, q.Complete(ctx, msg.ID, queuemessage.StatusPending))
}

func TestQueue_Depth(t *testing.T) {
	client := testdb.NewTestClient(t)
	q := queue.New(client.Client)
	ctx := context.Background()

	depth, err := q.Depth(ctx, queue.QueueOCR)
	require.NoError(t, err)
	assert.Equal(t, 0, depth)

	_, err = q.Send(ctx, queue.QueueOCR, "ocr", nil)
	require.NoError(t, err)
	_, err = q.Send(ctx, queue.QueueOCR, "ocr", nil)
	require.NoError(t, err)

	depth, err = q.Depth(ctx, queue.QueueOCR)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	// Claimed messages no longer count as pending.
	_, err = q.Recv(ctx, queue.QueueOCR)
	require.NoError(t, err)
	depth, err = q.Depth(ctx, queue.QueueOCR)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 20 * time.Millisecond
	cfg.GracefulShutdownTimeout = 5 * time.Second
	return cfg
}

func TestWorkerPool_ProcessesMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	pool := queue.NewWorkerPool(client.Client, testQueueConfig())
	ctx := context.Background()

	var (
		mu   sync.Mutex
		seen []string
	)
	pool.RegisterStage(queue.QueueOCR, queue.HandlerFunc(func(ctx context.Context, msg *ent.QueueMessage) error {
		mu.Lock()
		seen = append(seen, msg.Msg["document_id"].(string))
		mu.Unlock()
		return nil
	}))

	q := pool.Queue()
	id, err := q.Send(ctx, queue.QueueOCR, "ocr", map[string]any{"document_id": "doc-a"})
	require.NoError(t, err)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 1
	}, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, []string{"doc-a"}, seen)

	require.Eventually(t, func() bool {
		row, err := client.QueueMessage.Get(ctx, id)
		return err == nil && row.Status == queuemessage.StatusCompleted
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWorkerPool_HandlerErrorMarksFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	pool := queue.NewWorkerPool(client.Client, testQueueConfig())
	ctx := context.Background()

	pool.RegisterStage(queue.QueueLLM, queue.HandlerFunc(func(ctx context.Context, msg *ent.QueueMessage) error {
		return assert.AnError
	}))

	id, err := pool.Queue().Send(ctx, queue.QueueLLM, "llm", map[string]any{"document_id": "doc-b"})
	require.NoError(t, err)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		row, err := client.QueueMessage.Get(ctx, id)
		return err == nil && row.Status == queuemessage.StatusFailed
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWorkerPool_StartWithoutStages(t *testing.T) {
	client := testdb.NewTestClient(t)
	pool := queue.NewWorkerPool(client.Client, testQueueConfig())
	assert.Error(t, pool.Start(context.Background()))
}

func TestWorkerPool_Health(t *testing.T) {
	client := testdb.NewTestClient(t)
	pool := queue.NewWorkerPool(client.Client, testQueueConfig())
	ctx := context.Background()

	pool.RegisterStage(queue.QueueOCR, queue.HandlerFunc(func(ctx context.Context, msg *ent.QueueMessage) error {
		return nil
	}))
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	health := pool.Health()
	require.NotNil(t, health)
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Contains(t, health.QueueDepths, queue.QueueOCR)
}
