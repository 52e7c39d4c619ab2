package services

import (
	"context"
	"sync"
)

type persistJob struct {
	run  func(ctx context.Context) error
	done func(error)
}

// PersistQueue runs background writes one at a time in the order they were
// enqueued. Enqueue never blocks the caller.
type PersistQueue struct {
	ctx     context.Context
	mu      sync.Mutex
	cond    *sync.Cond
	jobs    []persistJob
	running bool
	closed  bool
	stopped chan struct{}
}

func NewPersistQueue(ctx context.Context) *PersistQueue {
	if ctx == nil {
		ctx = context.Background()
	}
	q := &PersistQueue{ctx: ctx, stopped: make(chan struct{})}
	q.cond = sync.NewCond(&q.mu)
	go q.loop()
	return q
}

// Enqueue schedules run. done, if non-nil, receives run's result on the
// worker goroutine. It reports false once the queue is closed.
func (q *PersistQueue) Enqueue(run func(ctx context.Context) error, done func(error)) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.jobs = append(q.jobs, persistJob{run: run, done: done})
	q.cond.Broadcast()
	return true
}

// Flush blocks until every job enqueued so far has finished.
func (q *PersistQueue) Flush() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.jobs) > 0 || q.running {
		q.cond.Wait()
	}
}

// Close drains the pending jobs and stops the worker.
func (q *PersistQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.stopped
		return
	}
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
	<-q.stopped
}

func (q *PersistQueue) loop() {
	defer close(q.stopped)
	for {
		q.mu.Lock()
		for len(q.jobs) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.jobs) == 0 && q.closed {
			q.mu.Unlock()
			return
		}
		job := q.jobs[0]
		q.jobs[0] = persistJob{}
		q.jobs = q.jobs[1:]
		q.running = true
		q.mu.Unlock()

		err := job.run(q.ctx)
		if job.done != nil {
			job.done(err)
		}

		q.mu.Lock()
		q.running = false
		q.cond.Broadcast()
		q.mu.Unlock()
	}
}
