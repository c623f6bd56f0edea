// Package cache persists build outcomes and failure logs.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ResultCache on an afero.Fs.
//
// The outcome map lives in <root>/build-results.json and failure logs in <root>/logs.
// It is a single-writer store: concurrent processes sharing a root may lose updates.
type Store struct {
	fs       afero.Fs
	root     string
	logger   ports.Logger
	outcomes map[domain.UnitID]bool
}

// NewStore creates a Store rooted at root.
func NewStore(fsys afero.Fs, root string, logger ports.Logger) *Store {
	return &Store{
		fs:       fsys,
		root:     root,
		logger:   logger,
		outcomes: make(map[domain.UnitID]bool),
	}
}

// Root returns the cache root directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) resultsPath() string {
	return filepath.Join(s.root, domain.ResultsFileName)
}

func (s *Store) logPath(id domain.UnitID) string {
	return filepath.Join(s.root, domain.LogsDirName, id.BaseName())
}

// Load implements ports.ResultCache.
func (s *Store) Load() error {
	logsDir := filepath.Join(s.root, domain.LogsDirName)
	if err := s.fs.MkdirAll(logsDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", logsDir)
	}

	path := s.resultsPath()
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.outcomes = make(map[domain.UnitID]bool)
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	outcomes := make(map[domain.UnitID]bool)
	if err := json.Unmarshal(data, &outcomes); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCorrupt.Error()), "path", path)
	}
	s.outcomes = outcomes
	return nil
}

// Lookup implements ports.ResultCache.
func (s *Store) Lookup(id domain.UnitID) (succeeded, known bool) {
	succeeded, known = s.outcomes[id]
	return succeeded, known
}

// Outcomes returns a copy of the outcome map.
func (s *Store) Outcomes() map[domain.UnitID]bool {
	return maps.Clone(s.outcomes)
}

// CheckCached implements ports.ResultCache.
func (s *Store) CheckCached(ids []domain.UnitID) error {
	var failed []domain.UnitID
	for _, id := range ids {
		if succeeded, known := s.Lookup(id); known && !succeeded {
			failed = append(failed, id)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return domain.NewBuildFailure(failed...)
}

// RecordFailures implements ports.ResultCache.
// Logs are best-effort: a unit without a retrievable log is still recorded as failed.
func (s *Store) RecordFailures(ctx context.Context, ids []domain.UnitID, logs ports.LogSource) error {
	if s.outcomes == nil {
		s.outcomes = make(map[domain.UnitID]bool)
	}

	for _, id := range ids {
		s.outcomes[id] = false

		if logs == nil {
			continue
		}
		text, ok, err := logs.Log(ctx, id)
		if err != nil {
			s.logger.Warn("no log stored for " + id.String() + ": " + err.Error())
			continue
		}
		if !ok {
			s.logger.Debug("no log available for " + id.String())
			continue
		}
		if err := s.writeLog(id, text); err != nil {
			return err
		}
	}

	return s.Persist()
}

func (s *Store) writeLog(id domain.UnitID, text string) error {
	path := s.logPath(id)
	if err := writeFileAtomic(s.fs, path, []byte(text)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLogWriteFailed.Error()), "path", path)
	}
	return nil
}

// FailureLog implements ports.ResultCache.
func (s *Store) FailureLog(id domain.UnitID) (string, bool, error) {
	path := s.logPath(id)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrLogReadFailed.Error()), "path", path)
	}
	return string(data), true, nil
}

// Persist implements ports.ResultCache.
func (s *Store) Persist() error {
	outcomes := s.outcomes
	if outcomes == nil {
		outcomes = make(map[domain.UnitID]bool)
	}

	// encoding/json sorts map keys, so the file is stable across rewrites.
	data, err := json.MarshalIndent(outcomes, "", "    ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	data = append(data, '\n')

	path := s.resultsPath()
	if err := writeFileAtomic(s.fs, path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	return nil
}

// Clean removes the whole cache root.
func (s *Store) Clean() error {
	if err := s.fs.RemoveAll(s.root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", s.root)
	}
	s.outcomes = make(map[domain.UnitID]bool)
	return nil
}
