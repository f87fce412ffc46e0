// Package scheduler runs the periodic history retention sweep and
// writes encrypted snapshots of the assessment log.
package scheduler

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vitalsign/health-risk-api/crypto"
	"github.com/vitalsign/health-risk-api/store"
)

// Scheduler handles periodic background jobs for the assessment history
// store: enforcing the retention cap and dumping an encrypted JSON
// snapshot to disk.
type Scheduler struct {
	cron         *cron.Cron
	history      *store.History
	cipher       *crypto.Cipher
	snapshotPath string
	schedule     string
}

// New creates a scheduler. cipher may be nil to write snapshots in
// plaintext (not recommended outside tests); an empty snapshotPath
// skips snapshots and only trims.
func New(history *store.History, cipher *crypto.Cipher, snapshotPath string) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		history:      history,
		cipher:       cipher,
		snapshotPath: snapshotPath,
		schedule:     "@hourly",
	}
}

// Start registers the sweep job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.RunSweep(); err != nil {
			zap.S().Errorw("history sweep failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("register sweep job: %w", err)
	}
	s.cron.Start()
	zap.S().Infow("history sweeper started", "schedule", s.schedule, "snapshotPath", s.snapshotPath)
	return nil
}

// Stop halts the cron loop. Running jobs finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunSweep trims every user bucket to the retention cap and, when a
// snapshot path is configured, writes the full history as an encrypted
// JSON snapshot.
func (s *Scheduler) RunSweep() error {
	evicted := s.history.Trim()
	if evicted > 0 {
		zap.S().Infow("history retention applied", "evicted", evicted)
	}

	if s.snapshotPath == "" {
		return nil
	}

	snapshot := s.history.Snapshot()
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal history snapshot: %w", err)
	}
	if s.cipher != nil {
		payload, err = s.cipher.Encrypt(payload)
		if err != nil {
			return fmt.Errorf("encrypt history snapshot: %w", err)
		}
	}
	if err := os.WriteFile(s.snapshotPath, payload, 0o600); err != nil {
		return fmt.Errorf("write history snapshot %s: %w", s.snapshotPath, err)
	}

	zap.S().Debugw("history snapshot written",
		"path", s.snapshotPath,
		"users", len(snapshot),
		"bytes", len(payload),
	)
	return nil
}
