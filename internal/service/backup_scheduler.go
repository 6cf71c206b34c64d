package service

import (
	"sync"
	"time"

	"github.com/ManishJangid007/hirely-sub000/config"
	"github.com/rs/zerolog/log"
)

// BackupScheduler requests an automatic snapshot after a mutating
// operation. Scheduling is fire-and-forget: the snapshot is written in
// the background and its outcome never affects the operation that
// triggered it. Close cancels a pending write and waits for one in
// flight; after it returns no snapshot write is running.
type BackupScheduler interface {
	Schedule()
	Close()
}

// debouncedBackupScheduler coalesces bursts of mutations into a single
// snapshot write once the store has been quiet for the configured delay.
type debouncedBackupScheduler struct {
	backup BackupService
	delay  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	closed  bool
	running sync.WaitGroup
}

func NewBackupScheduler(backup BackupService, cfg *config.Config) BackupScheduler {
	delay := cfg.BackupDebounce
	if delay <= 0 {
		delay = 2 * time.Second
	}
	return &debouncedBackupScheduler{backup: backup, delay: delay}
}

func (s *debouncedBackupScheduler) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Reset(s.delay)
		return
	}
	s.timer = time.AfterFunc(s.delay, s.run)
}

func (s *debouncedBackupScheduler) run() {
	s.mu.Lock()
	s.timer = nil
	// A timer that fired while Close held the lock lands here with the
	// scheduler already closed. Nothing may be written then.
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.running.Add(1)
	s.mu.Unlock()
	defer s.running.Done()

	if _, err := s.backup.CreateBackup(); err != nil {
		log.Warn().Err(err).Msg("Automatic backup failed")
		return
	}
	log.Debug().Msg("Automatic backup written")
}

func (s *debouncedBackupScheduler) Close() {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.running.Wait()
}
