// Package jobs runs background work for the outbound API on cron schedules
// using robfig/cron.
package jobs

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/prostech/outbound-api/internal/metrics"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is a named unit of background work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler manages background jobs using cron scheduling.
type Scheduler struct {
	cron    *cron.Cron
	metrics *metrics.Metrics
	logger  *zap.Logger
	mu      sync.Mutex
	jobs    map[string]cron.EntryID
}

// NewScheduler creates a job scheduler. Overlapping runs of the same job are
// skipped and panics are recovered.
func NewScheduler(m *metrics.Metrics, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds(), cron.WithChain(
			cron.SkipIfStillRunning(cron.DefaultLogger),
			cron.Recover(cron.DefaultLogger),
		)),
		metrics: m,
		logger:  logger,
		jobs:    make(map[string]cron.EntryID),
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting job scheduler", zap.Strings("jobs", s.Names()))
	s.cron.Start()
}

// Stop stops the scheduler. The returned context is done once running jobs
// complete.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("stopping job scheduler")
	return s.cron.Stop()
}

// Add schedules job on cronExpr. Each run gets its own context bounded by
// timeout; a zero timeout means no limit.
// Examples of cronExpr:
//   - "0 */15 * * * *" - every 15 minutes (with seconds field)
//   - "@every 10m"     - every 10 minutes
func (s *Scheduler) Add(cronExpr string, job Job, timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := job.Name()
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s already exists", name)
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() { s.run(job, timeout) })
	if err != nil {
		return fmt.Errorf("failed to add job %s: %w", name, err)
	}

	s.jobs[name] = entryID
	s.logger.Info("added scheduled job",
		zap.String("job_name", name),
		zap.String("cron_expr", cronExpr))
	return nil
}

// RunNow runs job once, synchronously, with the same instrumentation as a
// scheduled run.
func (s *Scheduler) RunNow(job Job, timeout time.Duration) error {
	return s.run(job, timeout)
}

func (s *Scheduler) run(job Job, timeout time.Duration) error {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	name := job.Name()
	start := time.Now()
	s.logger.Info("running scheduled job", zap.String("job_name", name))

	err := s.metrics.TrackJob(name).End(job.Run(ctx))
	if err != nil {
		s.logger.Error("scheduled job failed",
			zap.String("job_name", name),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return err
	}
	s.logger.Info("completed scheduled job",
		zap.String("job_name", name),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// Remove removes a job by name.
func (s *Scheduler) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entryID, exists := s.jobs[name]
	if !exists {
		return fmt.Errorf("job %s not found", name)
	}

	s.cron.Remove(entryID)
	delete(s.jobs, name)
	s.logger.Info("removed scheduled job", zap.String("job_name", name))
	return nil
}

// Names returns the registered job names in sorted order.
func (s *Scheduler) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
