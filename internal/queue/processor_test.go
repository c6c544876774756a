package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"frent-client/internal/logger"

	"github.com/stretchr/testify/assert"
)

// fakeSender records broadcast calls for testing.
type fakeSender struct {
	mu          sync.Mutex
	tokens      []string
	err         error
	hadDeadline bool
	cancelled   bool
}

func (f *fakeSender) SendDueDateWarnings(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	_, deadline := ctx.Deadline()
	f.hadDeadline = f.hadDeadline || deadline
	f.cancelled = f.cancelled || ctx.Err() != nil
	return f.err
}

func (f *fakeSender) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens...)
}

func TestNewProcessor(t *testing.T) {
	queue := NewMemoryQueue(10)
	sender := &fakeSender{}

	processor := NewProcessor(queue, sender, 0, logger.Discard())

	assert.NotNil(t, processor)
	assert.Equal(t, queue, processor.queue)
	assert.Equal(t, 1, processor.workerCount)
}

func TestProcessor_StartStop(t *testing.T) {
	t.Run("starts and stops cleanly", func(t *testing.T) {
		processor := NewProcessor(NewMemoryQueue(10), &fakeSender{}, 3, logger.Discard())
		processor.Start(context.Background())

		done := make(chan struct{})
		go func() {
			processor.Stop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Stop() timed out")
		}
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		processor := NewProcessor(NewMemoryQueue(10), &fakeSender{}, 1, logger.Discard())
		processor.Start(context.Background())

		processor.Stop()
		processor.Stop()
	})
}

func TestProcessor_Process(t *testing.T) {
	t.Run("sends every queued job before stopping", func(t *testing.T) {
		queue := NewMemoryQueue(10)
		sender := &fakeSender{}
		processor := NewProcessor(queue, sender, 2, logger.Discard())

		assert.NoError(t, queue.Enqueue(WarningJob{ID: "j1", Token: "t1", EnqueuedAt: time.Now()}))
		assert.NoError(t, queue.Enqueue(WarningJob{ID: "j2", Token: "t2", EnqueuedAt: time.Now()}))

		processor.Start(context.Background())
		processor.Stop()

		assert.ElementsMatch(t, []string{"t1", "t2"}, sender.calls())
	})

	t.Run("failed broadcast is not retried", func(t *testing.T) {
		queue := NewMemoryQueue(10)
		sender := &fakeSender{err: errors.New("mail provider down")}
		processor := NewProcessor(queue, sender, 1, logger.Discard())

		assert.NoError(t, queue.Enqueue(WarningJob{ID: "j1", Token: "t1"}))

		processor.Start(context.Background())
		processor.Stop()

		assert.Equal(t, []string{"t1"}, sender.calls())
		assert.Equal(t, 0, queue.Len())
	})

	t.Run("send carries no deadline and survives shutdown", func(t *testing.T) {
		queue := NewMemoryQueue(10)
		sender := &fakeSender{}
		processor := NewProcessor(queue, sender, 1, logger.Discard())

		assert.NoError(t, queue.Enqueue(WarningJob{ID: "j1", Token: "t1"}))

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		processor.Start(ctx)
		processor.Stop()
		cancel()

		assert.Equal(t, []string{"t1"}, sender.calls())
		sender.mu.Lock()
		defer sender.mu.Unlock()
		assert.False(t, sender.hadDeadline, "broadcast must not be time-bounded")
		assert.False(t, sender.cancelled)
	})
}
