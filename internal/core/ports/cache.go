package ports

import (
	"context"

	"go.trai.ch/nixbisect/internal/core/domain"
)

// LogSource fetches build logs from the build tool's own log store.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type LogSource interface {
	// Log returns the log text of id. ok is false when no log is available.
	Log(ctx context.Context, id domain.UnitID) (text string, ok bool, err error)
}

// ResultCache persists the outcome of genuine build attempts and their failure logs.
//
// An id without a recorded outcome is treated as succeedable; only failures are recorded.
type ResultCache interface {
	// Load (re)reads the outcome map from storage, creating directories on first use.
	// A malformed map is a fatal error.
	Load() error

	// Lookup returns the recorded outcome of id. known is false when nothing was recorded.
	Lookup(id domain.UnitID) (succeeded, known bool)

	// CheckCached returns a *domain.BuildFailure naming every id with a recorded failure,
	// or nil when none of ids is known to fail.
	CheckCached(ids []domain.UnitID) error

	// RecordFailures marks every id as failed, stores its log when logs can provide one,
	// and persists the map.
	RecordFailures(ctx context.Context, ids []domain.UnitID, logs LogSource) error

	// FailureLog returns the persisted failure log of id.
	FailureLog(id domain.UnitID) (text string, ok bool, err error)

	// Persist rewrites the whole outcome map.
	Persist() error
}
