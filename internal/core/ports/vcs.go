package ports

import "context"

// Patcher applies patch commits to the working tree.
//
//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type Patcher interface {
	// Apply applies rev. A patch that does not apply cleanly leaves the tree untouched
	// and returns an error wrapping domain.ErrPatchApplyFailed.
	Apply(ctx context.Context, rev string) error
}

// WorkTree snapshots and restores the working tree around a bisection step.
type WorkTree interface {
	// Checkpoint records the current state and returns a function restoring it.
	Checkpoint(ctx context.Context) (restore func(context.Context) error, err error)
}
