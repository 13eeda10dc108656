package backup

import (
	"sync"
	"time"

	"github.com/thatcatcamp/workbench/internal/logging"
	"go.uber.org/zap"
)

// Scheduler handles automatic backup scheduling
type Scheduler struct {
	Manager        *BackupManager
	BackupInterval time.Duration
	Retention      int // backups kept after each run; 0 keeps all
	logger         *zap.Logger
	done           chan struct{}
	stopChan       chan struct{}
	stopOnce       sync.Once
}

// NewScheduler creates a new backup scheduler
func NewScheduler(manager *BackupManager, interval time.Duration, retention int, logger *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour // Default: daily
	}
	return &Scheduler{
		Manager:        manager,
		BackupInterval: interval,
		Retention:      retention,
		logger:         logging.OrNop(logger).Named("backup"),
		done:           make(chan struct{}),
		stopChan:       make(chan struct{}),
	}
}

// Start begins the backup scheduler in a goroutine
// Returns a done channel that will be closed when scheduler stops
func (s *Scheduler) Start() <-chan struct{} {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.BackupInterval)
		defer ticker.Stop()

		// Run initial backup immediately
		s.runBackup()

		// Loop until stopped
		for {
			select {
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.runBackup()
			}
		}
	}()

	return s.done
}

// Stop stops the backup scheduler
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

// runBackup performs a single backup operation and prunes old ones
func (s *Scheduler) runBackup() {
	name, err := s.Manager.CreateBackup("scheduled")
	if err != nil {
		s.logger.Error("scheduled backup failed", zap.Error(err))
		return
	}
	s.logger.Info("backup created", zap.String("file", name))

	if s.Retention > 0 {
		removed, err := s.Manager.Prune(s.Retention)
		if err != nil {
			s.logger.Error("failed to prune backups", zap.Error(err))
			return
		}
		if removed > 0 {
			s.logger.Debug("old backups removed", zap.Int("count", removed))
		}
	}
}
