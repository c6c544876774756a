package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// WarningSender performs the broadcast. The rental repository satisfies it.
type WarningSender interface {
	SendDueDateWarnings(ctx context.Context, token string) error
}

// Processor drains warning jobs. Failures are logged and dropped: the
// broadcast is fire-and-forget and is never retried.
type Processor struct {
	queue        Queue
	sender       WarningSender
	logger       *slog.Logger
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// NewProcessor creates a new warning job processor.
func NewProcessor(queue Queue, sender WarningSender, workerCount int, logger *slog.Logger) *Processor {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Processor{
		queue:       queue,
		sender:      sender,
		logger:      logger,
		workerCount: workerCount,
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.logger.Info("warning processor started", "workers", p.workerCount)
}

// Stop closes the queue and waits for workers to drain it.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		p.queue.Close()
	})
	p.wg.Wait()
	p.logger.Info("warning processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				p.logger.Debug("warning worker shutting down", "worker", id)
				return
			}
			continue
		}
		p.process(ctx, job)
	}
}

func (p *Processor) process(ctx context.Context, job WarningJob) {
	// Detached from ctx cancellation so a job dequeued before shutdown still
	// completes. No deadline here; HTTP_TIMEOUT on the client is the only bound.
	sendCtx := context.WithoutCancel(ctx)

	start := time.Now()
	if err := p.sender.SendDueDateWarnings(sendCtx, job.Token); err != nil {
		p.logger.Error("due-date warning broadcast failed",
			"job_id", job.ID,
			"requested_by", job.RequestedBy,
			"error", err,
		)
		return
	}

	p.logger.Info("due-date warnings sent",
		"job_id", job.ID,
		"requested_by", job.RequestedBy,
		"queued_for", start.Sub(job.EnqueuedAt),
		"duration", time.Since(start),
	)
}
