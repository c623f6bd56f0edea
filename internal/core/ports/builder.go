package ports

import (
	"context"

	"go.trai.ch/nixbisect/internal/core/domain"
)

// Builder builds units through the result cache.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Build realizes ids and returns their output locations.
	// Failures are reported as *domain.BuildFailure.
	Build(ctx context.Context, ids []domain.UnitID, policy domain.BuildPolicy) ([]string, error)

	// WouldSucceed reports build success, building only when the dry-run has work to do.
	WouldSucceed(ctx context.Context, ids []domain.UnitID, policy domain.BuildPolicy) (bool, error)
}

// LogClassifier decides whether a unit's failure log contains a phrase.
type LogClassifier interface {
	// LogContains classifies id's log, forcing a rebuild when no trusted log exists.
	LogContains(ctx context.Context, id domain.UnitID, phrase string, opts []domain.BuildOption) (domain.LogMatch, error)

	// KnownLogContains reports whether an already available log of id contains phrase.
	// It never builds.
	KnownLogContains(ctx context.Context, id domain.UnitID, phrase string) (bool, error)
}
