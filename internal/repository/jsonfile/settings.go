package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/kintai-app/kintai-backend-go/internal/domain/settings"
)

// SettingsStore persists the monthly settings record as a single JSON
// document on disk. All access is serialized behind one mutex so
// concurrent category replacements cannot lose updates, and every write
// goes through a temp-file-then-rename so a crash mid-write can never
// leave a torn document behind.
type SettingsStore struct {
	path string
	mu   sync.Mutex
}

func NewSettingsStore(path string) (*SettingsStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}
	return &SettingsStore{path: path}, nil
}

// Read implements settings.Store.
func (s *SettingsStore) Read(ctx context.Context) (settings.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

// ReplaceWorkHours implements settings.Store.
func (s *SettingsStore) ReplaceWorkHours(ctx context.Context, hours map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.readLocked()
	if err != nil {
		return err
	}

	record = record.Clone()
	record.WorkHours = hours
	return s.writeLocked(record)
}

// ReplacePaidLeave implements settings.Store.
func (s *SettingsStore) ReplacePaidLeave(ctx context.Context, paidLeave settings.PaidLeave) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.readLocked()
	if err != nil {
		return err
	}

	record = record.Clone()
	record.PaidLeave = paidLeave
	return s.writeLocked(record)
}

// readLocked loads the persisted record. A missing file is initialized
// with the defaults and persisted; an unreadable or unparseable file is
// logged and answered with the in-memory defaults without touching the
// file, so an operator can still recover the original content.
func (s *SettingsStore) readLocked() (settings.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			record := settings.DefaultRecord()
			if writeErr := s.writeLocked(record); writeErr != nil {
				slog.Error("Failed to initialize settings file, serving defaults",
					"path", s.path, "error", writeErr)
			}
			return record, nil
		}
		slog.Error("Failed to read settings file, serving defaults",
			"path", s.path, "error", err)
		return settings.DefaultRecord(), nil
	}

	var record settings.Record
	if err := json.Unmarshal(data, &record); err != nil {
		slog.Error("Settings file is corrupt, serving defaults",
			"path", s.path, "error", err)
		return settings.DefaultRecord(), nil
	}

	return record, nil
}

func (s *SettingsStore) writeLocked(record settings.Record) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "settings-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp settings file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	return nil
}
