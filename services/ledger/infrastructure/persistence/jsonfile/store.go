// Package jsonfile persists the ledger aggregate as a single JSON document.
//
// Every mutation rewrites the whole aggregate, so write cost is O(total
// records). That is a documented scaling limit, acceptable for the hundreds
// to low thousands of records this system is sized for.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/services/ledger/domain/models"
)

// Store reads and writes the durable ledger snapshot at a fixed path.
type Store struct {
	path string
	log  logger.Logger
}

// NewStore returns a Store persisting to path.
func NewStore(path string, log logger.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load reads the snapshot if present. A missing or malformed file yields an
// empty aggregate and a diagnostic log entry — startup never fails on either,
// per the "last successfully written snapshot wins" recovery model.
func (s *Store) Load() *models.Snapshot {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("no snapshot found, starting with an empty ledger", "path", s.path)
		} else {
			s.log.Warn("snapshot unreadable, starting with an empty ledger", "path", s.path, "error", err)
		}
		return models.NewSnapshot()
	}

	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.log.Warn("snapshot malformed, starting with an empty ledger", "path", s.path, "error", err)
		return models.NewSnapshot()
	}

	snap.Normalize()
	s.log.Info("snapshot loaded",
		"path", s.path,
		"products", len(snap.Products),
		"inbound_records", len(snap.InboundRecords),
		"outbound_records", len(snap.OutboundRecords),
	)
	return &snap
}

// Persist serializes the whole aggregate and atomically replaces the snapshot
// file: the document is written to a temp file in the same directory and
// renamed over the target, so readers only ever see the previous or the new
// snapshot, never a torn write.
func (s *Store) Persist(snap *models.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("sync temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Ping verifies the snapshot directory exists and is writable, creating it if
// needed. Used by the health endpoint.
func (s *Store) Ping(_ context.Context) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot dir: %w", err)
	}
	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("snapshot dir not writable: %w", err)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return nil
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}
