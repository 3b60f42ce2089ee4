package scheduler

import (
	"sync"
	"time"

	"lingua/backend/internal/metrics"
	"lingua/backend/pkg/logger"
)

// Pruner removes stored files older than maxAge.
type Pruner interface {
	Prune(maxAge time.Duration) (int, error)
}

type Scheduler struct {
	pruner    Pruner
	interval  time.Duration
	retention time.Duration
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// New returns a scheduler that prunes files older than retention every interval.
func New(pruner Pruner, interval, retention time.Duration) *Scheduler {
	return &Scheduler{
		pruner:    pruner,
		interval:  interval,
		retention: retention,
		stopCh:    make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "interval", s.interval, "retention", s.retention)
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.prune()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.prune()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) prune() {
	removed, err := s.pruner.Prune(s.retention)
	metrics.RecordAudioPruned(removed)
	if err != nil {
		logger.Error("scheduled audio prune", "module", "scheduler", "action", "prune", "resource", "audio", "result", "failed", "removed", removed, "error", err)
		return
	}
	if removed > 0 {
		logger.Info("scheduled audio prune completed", "module", "scheduler", "action", "prune", "resource", "audio", "result", "ok", "removed", removed)
	}
}
