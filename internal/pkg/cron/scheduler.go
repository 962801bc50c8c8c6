package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DailyJob runs once per civil day at a fixed time of day.
type DailyJob struct {
	Name string
	Hour int
	Min  int
	Fn   func(ctx context.Context) error
}

// Scheduler runs daily jobs in the civil timezone. Each job gets its own
// goroutine that sleeps until the next occurrence of its scheduled time.
type Scheduler struct {
	loc    *time.Location
	jobs   []DailyJob
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler(loc *time.Location) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		loc:    loc,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a daily job. Must be called before Start.
func (s *Scheduler) Register(name string, hour, min int, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, DailyJob{Name: name, Hour: hour, Min: min, Fn: fn})
	slog.Info("Daily job registered", "name", name, "at", time.Date(0, 1, 1, hour, min, 0, 0, s.loc).Format("15:04"))
}

// Start begins running all registered jobs.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Scheduler started", "job_count", len(s.jobs))
}

// Stop cancels running jobs and waits for them to exit.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) runJob(job DailyJob) {
	defer s.wg.Done()

	for {
		wait := time.Until(s.nextRun(job))
		timer := time.NewTimer(wait)

		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("Daily job stopping", "name", job.Name)
			return
		case <-timer.C:
			s.executeJob(job)
		}
	}
}

// nextRun returns the next occurrence of the job's time of day, strictly in
// the future.
func (s *Scheduler) nextRun(job DailyJob) time.Time {
	now := time.Now().In(s.loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), job.Hour, job.Min, 0, 0, s.loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *Scheduler) executeJob(job DailyJob) {
	start := time.Now()

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("Daily job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Daily job completed", "name", job.Name, "duration", time.Since(start))
}

// RunOnce runs all registered jobs immediately. Used in tests.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Daily job failed", "name", job.Name, "error", err)
		}
	}
}
