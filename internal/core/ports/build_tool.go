package ports

import (
	"context"

	"go.trai.ch/nixbisect/internal/core/domain"
)

// BuildTool is the non-interactive surface of the external build system.
//
//go:generate mockgen -source=build_tool.go -destination=mocks/mock_build_tool.go -package=mocks
type BuildTool interface {
	LogSource

	// DryRun reports which units would be built or fetched to realize ids.
	DryRun(ctx context.Context, ids []domain.UnitID) (domain.DryRunPlan, error)

	// Instantiate resolves a target name into a unit. An empty system uses the host system.
	Instantiate(ctx context.Context, name, system string) (domain.UnitID, error)

	// Realize returns the output locations of already built ids.
	Realize(ctx context.Context, ids []domain.UnitID) ([]string, error)

	// BuildCommand returns the argv of the interactive build of ids.
	BuildCommand(ids []domain.UnitID, opts []domain.BuildOption) []string
}
