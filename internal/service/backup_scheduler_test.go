package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ManishJangid007/hirely-sub000/config"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
	"github.com/ManishJangid007/hirely-sub000/internal/model"
)

// countingBackup stubs BackupService so scheduler tests can count
// snapshot writes without a store.
type countingBackup struct {
	mu      sync.Mutex
	created int
	err     error
}

func (b *countingBackup) CreateBackup() (*dto.BackupStatusResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.created++
	if b.err != nil {
		return nil, b.err
	}
	return &dto.BackupStatusResponse{}, nil
}

func (b *countingBackup) writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.created
}

func (b *countingBackup) GetBackupInfo() (*dto.BackupInfoResponse, error)       { return nil, nil }
func (b *countingBackup) RestoreFromBackup() (*dto.RestoreResponse, error)      { return nil, nil }
func (b *countingBackup) ClearAllData() error                                   { return nil }
func (b *countingBackup) ExportData() (*model.BackupSnapshot, error)            { return nil, nil }
func (b *countingBackup) ImportData(raw []byte) error                           { return nil }
func (b *countingBackup) VerifyBackupCompleteness() (*dto.BackupCompletenessResponse, error) {
	return nil, nil
}
func (b *countingBackup) ImportJobDescriptions(raw []byte) (*dto.ImportJobDescriptionsResponse, error) {
	return nil, nil
}

// blockingBackup holds CreateBackup open until released so a test can
// observe Close with a write in flight.
type blockingBackup struct {
	countingBackup
	started chan struct{}
	release chan struct{}
}

func (b *blockingBackup) CreateBackup() (*dto.BackupStatusResponse, error) {
	b.started <- struct{}{}
	<-b.release
	return b.countingBackup.CreateBackup()
}

func waitForWrites(t *testing.T, b *countingBackup, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if b.writes() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("writes = %d, want %d", b.writes(), want)
}

func TestSchedulerCoalescesBurstsIntoOneWrite(t *testing.T) {
	backup := &countingBackup{}
	sched := NewBackupScheduler(backup, &config.Config{BackupDebounce: 25 * time.Millisecond})
	defer sched.Close()

	for i := 0; i < 10; i++ {
		sched.Schedule()
	}
	waitForWrites(t, backup, 1)

	// The burst has settled: no further writes may trickle in.
	time.Sleep(80 * time.Millisecond)
	if got := backup.writes(); got != 1 {
		t.Fatalf("writes = %d, want exactly 1 for one burst", got)
	}

	sched.Schedule()
	waitForWrites(t, backup, 2)
}

func TestSchedulerSwallowsBackupFailures(t *testing.T) {
	backup := &countingBackup{err: errors.New("store offline")}
	sched := NewBackupScheduler(backup, &config.Config{BackupDebounce: 10 * time.Millisecond})
	defer sched.Close()

	sched.Schedule()
	waitForWrites(t, backup, 1)

	// A failed write must not stop later schedules from trying again.
	sched.Schedule()
	waitForWrites(t, backup, 2)
}

func TestSchedulerCloseStopsPendingWrites(t *testing.T) {
	backup := &countingBackup{}
	sched := NewBackupScheduler(backup, &config.Config{BackupDebounce: 50 * time.Millisecond})

	sched.Schedule()
	sched.Close()

	time.Sleep(120 * time.Millisecond)
	if got := backup.writes(); got != 0 {
		t.Fatalf("writes after Close = %d, want 0", got)
	}

	// Scheduling after Close is a quiet no-op.
	sched.Schedule()
	time.Sleep(80 * time.Millisecond)
	if got := backup.writes(); got != 0 {
		t.Fatalf("writes after Close+Schedule = %d, want 0", got)
	}
}

func TestSchedulerCloseWaitsForInFlightWrite(t *testing.T) {
	backup := &blockingBackup{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	sched := NewBackupScheduler(backup, &config.Config{BackupDebounce: time.Millisecond})

	sched.Schedule()
	select {
	case <-backup.started:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot write never started")
	}

	closed := make(chan struct{})
	go func() {
		sched.Close()
		close(closed)
	}()
	select {
	case <-closed:
		t.Fatal("Close returned while a snapshot write was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(backup.release)
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return after the write finished")
	}
	if got := backup.writes(); got != 1 {
		t.Fatalf("writes = %d, want 1", got)
	}
}
