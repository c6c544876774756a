// Package queue dispatches fire-and-forget admin broadcasts (due-date
// warnings) on background workers so the admin request returns immediately.
package queue

import (
	"context"
	"sync"
	"time"
)

// WarningJob asks the rental service to send due-date warnings on behalf of
// the admin whose token it carries.
type WarningJob struct {
	ID          string
	Token       string
	RequestedBy string
	EnqueuedAt  time.Time
}

// MemoryQueue is an in-memory job queue for warning jobs.
type MemoryQueue struct {
	jobs     chan WarningJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan WarningJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job to the queue. Returns error if queue is full or closed.
// Lock is held during the entire operation to prevent race condition with Close().
func (q *MemoryQueue) Enqueue(job WarningJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next job from the queue, blocking until one is available.
// Returns error if context is cancelled or queue is closed.
func (q *MemoryQueue) Dequeue(ctx context.Context) (WarningJob, error) {
	select {
	case <-ctx.Done():
		return WarningJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return WarningJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close closes the queue. No more jobs can be enqueued after closing.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len returns the current number of jobs in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
