package cron

import (
	"context"
	"sync"
	"time"
)

// Job is a named background task run on a fixed interval. Failures are the
// job's own to report; the scheduler only guards against overlap.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context)
}

type jobState struct {
	Job
	mu      sync.Mutex
	running bool
}

// Scheduler runs registered jobs until its context is cancelled. Overlapping
// runs of the same job are skipped, not queued.
type Scheduler struct {
	mu   sync.RWMutex
	jobs map[string]*jobState
}

func New() *Scheduler {
	return &Scheduler{jobs: make(map[string]*jobState)}
}

// Register adds a job. Must be called before Start.
func (s *Scheduler) Register(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.Name] = &jobState{Job: job}
}

// Start launches every registered job in its own goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, js := range s.jobs {
		go s.runLoop(ctx, js)
	}
}

func (s *Scheduler) runLoop(ctx context.Context, js *jobState) {
	ticker := time.NewTicker(js.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go s.execute(ctx, js)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, js *jobState) {
	js.mu.Lock()
	if js.running {
		js.mu.Unlock()
		return
	}
	js.running = true
	js.mu.Unlock()

	js.Fn(ctx)

	js.mu.Lock()
	js.running = false
	js.mu.Unlock()
}
