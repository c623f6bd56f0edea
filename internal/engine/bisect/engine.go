// Package bisect sequences one bisection step into a single good, bad or skip verdict.
package bisect

import (
	"context"
	"slices"
	"strconv"

	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports"
	"go.trai.ch/zerr"
)

// Config describes one bisection step.
type Config struct {
	// Target is the attribute to instantiate.
	Target string
	// System overrides the build platform when set.
	System string
	// Patches are revisions applied, in order, before resolving the target.
	Patches []string
	// MaxRebuilds, when set, skips revisions that would rebuild more units.
	MaxRebuilds *int
	// FailureLine, when set, distinguishes the tracked regression from unrelated failures.
	FailureLine string
	// BuildOptions are passed through to the build tool.
	BuildOptions []domain.BuildOption
}

// Engine is the bisection state machine.
type Engine struct {
	patcher    ports.Patcher
	tool       ports.BuildTool
	builder    ports.Builder
	classifier ports.LogClassifier
	tracer     ports.Tracer
	logger     ports.Logger
}

// New creates an Engine.
func New(
	patcher ports.Patcher,
	tool ports.BuildTool,
	builder ports.Builder,
	classifier ports.LogClassifier,
	tracer ports.Tracer,
	logger ports.Logger,
) *Engine {
	return &Engine{
		patcher:    patcher,
		tool:       tool,
		builder:    builder,
		classifier: classifier,
		tracer:     tracer,
		logger:     logger,
	}
}

// Run executes one step and returns its verdict.
// A non-nil error means the whole bisection must be aborted.
func (e *Engine) Run(ctx context.Context, cfg Config) (domain.Decision, error) {
	ctx, span := e.tracer.Start(ctx, "bisect.step")
	defer span.End()
	span.SetAttribute("target", cfg.Target)

	decision, err := e.run(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		return domain.Decision{}, err
	}

	span.SetAttribute("verdict", decision.Verdict.String())
	span.SetAttribute("reason", decision.Reason)
	return decision, nil
}

func (e *Engine) run(ctx context.Context, cfg Config) (domain.Decision, error) {
	if err := e.applyPatches(ctx, cfg.Patches); err != nil {
		return domain.Decision{}, err
	}

	id, err := e.resolve(ctx, cfg)
	if err != nil {
		return domain.Decision{}, err
	}

	plan, err := e.dryRun(ctx, "budget-check", id)
	if err != nil {
		return domain.Decision{}, err
	}

	if cfg.MaxRebuilds != nil && len(plan.ToBuild) > *cfg.MaxRebuilds {
		return domain.Skip(strconv.Itoa(len(plan.ToBuild)) + " units to build exceed the rebuild limit of " +
			strconv.Itoa(*cfg.MaxRebuilds)), nil
	}

	if decision, done, err := e.buildDependencies(ctx, cfg, id, plan); err != nil || done {
		return decision, err
	}

	if cfg.FailureLine != "" {
		if decision, done, err := e.cacheShortcut(ctx, cfg, id); err != nil || done {
			return decision, err
		}
	}

	return e.buildTarget(ctx, cfg, id)
}

func (e *Engine) applyPatches(ctx context.Context, patches []string) error {
	if len(patches) == 0 {
		return nil
	}

	ctx, span := e.tracer.Start(ctx, "bisect.patching")
	defer span.End()

	for _, rev := range patches {
		e.logger.Info("applying " + rev)
		if err := e.patcher.Apply(ctx, rev); err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}

func (e *Engine) resolve(ctx context.Context, cfg Config) (domain.UnitID, error) {
	ctx, span := e.tracer.Start(ctx, "bisect.resolving")
	defer span.End()

	id, err := e.tool.Instantiate(ctx, cfg.Target, cfg.System)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrResolutionFailed.Error()), "target", cfg.Target)
		span.RecordError(err)
		return "", err
	}

	span.SetAttribute("unit", id.String())
	e.logger.Debug("resolved " + cfg.Target + " to " + id.String())
	return id, nil
}

func (e *Engine) dryRun(ctx context.Context, phase string, id domain.UnitID) (domain.DryRunPlan, error) {
	ctx, span := e.tracer.Start(ctx, "bisect."+phase)
	defer span.End()

	plan, err := e.tool.DryRun(ctx, []domain.UnitID{id})
	if err != nil {
		span.RecordError(err)
		return domain.DryRunPlan{}, err
	}

	span.SetAttribute("to_build", len(plan.ToBuild))
	span.SetAttribute("to_fetch", len(plan.ToFetch))
	return plan, nil
}

func (e *Engine) buildDependencies(
	ctx context.Context,
	cfg Config,
	id domain.UnitID,
	plan domain.DryRunPlan,
) (domain.Decision, bool, error) {
	deps := plan.Dependencies([]domain.UnitID{id})
	if len(deps) == 0 {
		return domain.Decision{}, false, nil
	}

	ctx, span := e.tracer.Start(ctx, "bisect.dependency-build")
	defer span.End()
	span.SetAttribute("dependencies", len(deps))

	e.logger.Info("building " + strconv.Itoa(len(deps)) + " dependencies")
	_, err := e.builder.Build(ctx, deps, domain.CachedBuild(cfg.BuildOptions))
	if err == nil {
		return domain.Decision{}, false, nil
	}
	if failure, ok := domain.AsBuildFailure(err); ok {
		return domain.Skip("dependencies failed to build: " + failure.Error()), true, nil
	}
	span.RecordError(err)
	return domain.Decision{}, false, err
}

func (e *Engine) cacheShortcut(ctx context.Context, cfg Config, id domain.UnitID) (domain.Decision, bool, error) {
	plan, err := e.dryRun(ctx, "cache-shortcut", id)
	if err != nil {
		return domain.Decision{}, false, err
	}
	if !slices.Contains(plan.ToBuild, id) {
		return domain.Decision{}, false, nil
	}

	found, err := e.classifier.KnownLogContains(ctx, id, cfg.FailureLine)
	if err != nil {
		return domain.Decision{}, false, err
	}
	if found {
		return domain.Bad("cached failure log contains the failure line"), true, nil
	}
	return domain.Decision{}, false, nil
}

func (e *Engine) buildTarget(ctx context.Context, cfg Config, id domain.UnitID) (domain.Decision, error) {
	ctx, span := e.tracer.Start(ctx, "bisect.target-build")
	defer span.End()

	_, err := e.builder.Build(ctx, []domain.UnitID{id}, domain.CachedBuild(cfg.BuildOptions))
	if err != nil {
		if _, ok := domain.AsBuildFailure(err); !ok {
			span.RecordError(err)
			return domain.Decision{}, err
		}
		return e.classifyFailure(ctx, cfg, id)
	}

	if cfg.FailureLine == "" {
		return domain.Good("target built successfully"), nil
	}

	// Success does not imply a clean log.
	found, err := e.classifier.KnownLogContains(ctx, id, cfg.FailureLine)
	if err != nil {
		return domain.Decision{}, err
	}
	if found {
		return domain.Bad("target built but its log contains the failure line"), nil
	}
	return domain.Good("target built successfully"), nil
}

func (e *Engine) classifyFailure(ctx context.Context, cfg Config, id domain.UnitID) (domain.Decision, error) {
	ctx, span := e.tracer.Start(ctx, "bisect.final-check")
	defer span.End()

	if cfg.FailureLine == "" {
		return domain.Bad("target failed to build"), nil
	}

	found, err := e.classifier.KnownLogContains(ctx, id, cfg.FailureLine)
	if err != nil {
		span.RecordError(err)
		return domain.Decision{}, err
	}
	if found {
		return domain.Bad("target failed with the failure line"), nil
	}
	return domain.Skip("target failed without the failure line"), nil
}
