// Package builder puts the result cache in front of the build monitor.
package builder

import (
	"context"

	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports"
)

// Runner performs a live build of ids.
type Runner interface {
	Build(ctx context.Context, ids []domain.UnitID, opts []domain.BuildOption) ([]string, error)
}

// Builder implements ports.Builder.
type Builder struct {
	cache  ports.ResultCache
	runner Runner
	tool   ports.BuildTool
	logger ports.Logger
}

// New creates a Builder.
func New(cache ports.ResultCache, runner Runner, tool ports.BuildTool, logger ports.Logger) *Builder {
	return &Builder{
		cache:  cache,
		runner: runner,
		tool:   tool,
		logger: logger,
	}
}

// Build realizes ids through the cache.
//
// With policy.UseCache, ids with a recorded failure fail immediately without spawning a build.
// With policy.WriteCache, failures of a genuine build are recorded along with their logs.
func (b *Builder) Build(ctx context.Context, ids []domain.UnitID, policy domain.BuildPolicy) ([]string, error) {
	if err := b.cache.Load(); err != nil {
		return nil, err
	}

	if policy.UseCache {
		if err := b.cache.CheckCached(ids); err != nil {
			if failure, ok := domain.AsBuildFailure(err); ok {
				b.logger.Info(failure.Error() + " (cached)")
			}
			return nil, err
		}
	}

	outputs, err := b.runner.Build(ctx, ids, policy.Options)
	if err == nil {
		return outputs, nil
	}

	failure, ok := domain.AsBuildFailure(err)
	if !ok || !policy.WriteCache {
		return nil, err
	}

	if recErr := b.cache.RecordFailures(ctx, failure.Units, b.tool); recErr != nil {
		return nil, recErr
	}
	return nil, failure
}

// WouldSucceed reports whether ids build successfully.
// Nothing is built when the dry-run shows every output is already available.
func (b *Builder) WouldSucceed(ctx context.Context, ids []domain.UnitID, policy domain.BuildPolicy) (bool, error) {
	plan, err := b.tool.DryRun(ctx, ids)
	if err != nil {
		return false, err
	}
	if !plan.NeedsBuild() {
		return true, nil
	}

	if _, err := b.Build(ctx, ids, policy); err != nil {
		if _, ok := domain.AsBuildFailure(err); ok {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
