// Package classifier decides whether a unit's failure log contains a phrase.
package classifier

import (
	"context"
	"strings"

	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports"
)

// Classifier implements ports.LogClassifier.
//
// Logs are consulted in order of trust: a persisted failure log is authoritative,
// the build tool's log store only counts when it contains the phrase, and a forced
// rebuild is the last resort.
type Classifier struct {
	cache   ports.ResultCache
	tool    ports.BuildTool
	builder ports.Builder
	logger  ports.Logger
}

// New creates a Classifier.
func New(cache ports.ResultCache, tool ports.BuildTool, builder ports.Builder, logger ports.Logger) *Classifier {
	return &Classifier{
		cache:   cache,
		tool:    tool,
		builder: builder,
		logger:  logger,
	}
}

// LogContains classifies id's log as yes, no_fail or no_success.
func (c *Classifier) LogContains(
	ctx context.Context,
	id domain.UnitID,
	phrase string,
	opts []domain.BuildOption,
) (domain.LogMatch, error) {
	if err := c.cache.Load(); err != nil {
		return domain.LogMatchNoFail, err
	}

	text, ok, err := c.cache.FailureLog(id)
	if err != nil {
		return domain.LogMatchNoFail, err
	}
	if ok {
		// Only failures have a persisted log.
		if strings.Contains(text, phrase) {
			return domain.LogMatchYes, nil
		}
		return domain.LogMatchNoFail, nil
	}

	text, ok, err = c.tool.Log(ctx, id)
	if err != nil {
		return domain.LogMatchNoFail, err
	}
	if ok && strings.Contains(text, phrase) {
		return domain.LogMatchYes, nil
	}

	c.logger.Info("rebuilding " + id.String() + " to obtain an authoritative log")
	_, buildErr := c.builder.Build(ctx, []domain.UnitID{id}, domain.ForcedBuild(opts))
	if buildErr != nil {
		if _, failed := domain.AsBuildFailure(buildErr); !failed {
			return domain.LogMatchNoFail, buildErr
		}
	}

	found, err := c.forcedLogContains(ctx, id, phrase)
	if err != nil {
		return domain.LogMatchNoFail, err
	}

	switch {
	case found:
		return domain.LogMatchYes, nil
	case buildErr == nil:
		return domain.LogMatchNoSuccess, nil
	default:
		return domain.LogMatchNoFail, nil
	}
}

// KnownLogContains reports whether a log that is already available for id contains phrase.
func (c *Classifier) KnownLogContains(ctx context.Context, id domain.UnitID, phrase string) (bool, error) {
	if err := c.cache.Load(); err != nil {
		return false, err
	}

	text, ok, err := c.cache.FailureLog(id)
	if err != nil {
		return false, err
	}
	if ok && strings.Contains(text, phrase) {
		return true, nil
	}

	text, ok, err = c.tool.Log(ctx, id)
	if err != nil {
		return false, err
	}
	return ok && strings.Contains(text, phrase), nil
}

// forcedLogContains checks the logs written by a forced rebuild.
func (c *Classifier) forcedLogContains(ctx context.Context, id domain.UnitID, phrase string) (bool, error) {
	text, ok, err := c.tool.Log(ctx, id)
	if err != nil {
		return false, err
	}
	if ok && strings.Contains(text, phrase) {
		return true, nil
	}

	text, ok, err = c.cache.FailureLog(id)
	if err != nil {
		return false, err
	}
	return ok && strings.Contains(text, phrase), nil
}
