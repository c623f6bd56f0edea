// Package app implements the application layer for nix-bisect.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.trai.ch/nixbisect/internal/adapters/cache"  //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbisect/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbisect/internal/adapters/nix"    //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports"
	"go.trai.ch/nixbisect/internal/engine/bisect"
	"go.trai.ch/nixbisect/internal/engine/builder"
	"go.trai.ch/nixbisect/internal/engine/classifier"
	"go.trai.ch/nixbisect/internal/engine/monitor"
	"go.trai.ch/zerr"
)

// VCS applies patches and snapshots the working tree.
type VCS interface {
	ports.Patcher
	ports.WorkTree
}

// logFormatter is implemented by loggers that can switch to JSON output.
type logFormatter interface {
	SetJSON(enable bool)
}

// logAttributer is implemented by loggers that can attach attributes to every record.
type logAttributer interface {
	SetAttrs(args ...any)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	executor     ports.Executor
	resize       ports.ResizeSource
	vcs          VCS
	tracer       ports.Tracer
	fs           afero.Fs
	stdout       io.Writer
	tool         ports.BuildTool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	executor ports.Executor,
	resize ports.ResizeSource,
	vcs VCS,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		executor:     executor,
		resize:       resize,
		vcs:          vcs,
		tracer:       tracer,
		fs:           afero.NewOsFs(),
		stdout:       os.Stdout,
	}
}

// WithFs replaces the filesystem backing the result cache.
// This is primarily used for testing with an in-memory filesystem.
func (a *App) WithFs(fsys afero.Fs) *App {
	a.fs = fsys
	return a
}

// WithStdout sets where live build output is mirrored.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithBuildTool replaces the nix client built from the settings.
func (a *App) WithBuildTool(tool ports.BuildTool) *App {
	a.tool = tool
	return a
}

// CommonOptions are shared by every command that talks to the build tool.
type CommonOptions struct {
	// ConfigPath is an explicit settings file; empty means discovery.
	ConfigPath string
	// LogFormat overrides the settings file when set.
	LogFormat string
	// System overrides the settings file when set.
	System string
	// BuildOptions override settings options with the same name.
	BuildOptions []domain.BuildOption
}

// BisectOptions configuration for the Bisect method.
type BisectOptions struct {
	CommonOptions

	Target      string
	Patches     []string
	MaxRebuilds *int
	FailureLine string
}

// LogContainsOptions configuration for the LogContains method.
type LogContainsOptions struct {
	CommonOptions

	Target string
	Phrase string
}

// session holds the per-run components built from the settings.
type session struct {
	settings   domain.Settings
	store      *cache.Store
	tool       ports.BuildTool
	builder    *builder.Builder
	classifier *classifier.Classifier
}

// Bisect runs one bisection step for opts.Target and returns its verdict.
// The working tree is restored afterwards, whatever the verdict.
func (a *App) Bisect(ctx context.Context, opts BisectOptions) (decision domain.Decision, err error) {
	s, err := a.newSession(opts.CommonOptions)
	if err != nil {
		return domain.Decision{}, err
	}

	runID := uuid.NewString()
	ctx, span := a.tracer.Start(ctx, "bisect.run")
	span.SetAttribute("run_id", runID)
	if l, ok := a.logger.(logAttributer); ok {
		l.SetAttrs("run_id", runID)
	}
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	a.logger.Debug(fmt.Sprintf("bisect run %s for %s", runID, opts.Target))

	restore, err := a.vcs.Checkpoint(ctx)
	if err != nil {
		return domain.Decision{}, err
	}
	defer func() {
		if restoreErr := restore(context.WithoutCancel(ctx)); restoreErr != nil {
			err = errors.Join(err, restoreErr)
		}
	}()

	engine := bisect.New(a.vcs, s.tool, s.builder, s.classifier, a.tracer, a.logger)
	maxRebuilds := s.settings.MaxRebuilds
	if opts.MaxRebuilds != nil {
		maxRebuilds = opts.MaxRebuilds
	}
	failureLine := s.settings.FailureLine
	if opts.FailureLine != "" {
		failureLine = opts.FailureLine
	}

	return engine.Run(ctx, bisect.Config{
		Target:       opts.Target,
		System:       s.settings.System,
		Patches:      opts.Patches,
		MaxRebuilds:  maxRebuilds,
		FailureLine:  failureLine,
		BuildOptions: s.settings.BuildOptions,
	})
}

// LogContains resolves opts.Target and classifies whether its build log contains opts.Phrase.
func (a *App) LogContains(ctx context.Context, opts LogContainsOptions) (domain.LogMatch, error) {
	s, err := a.newSession(opts.CommonOptions)
	if err != nil {
		return 0, err
	}

	id, err := s.tool.Instantiate(ctx, opts.Target, s.settings.System)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrResolutionFailed.Error()), "target", opts.Target)
	}

	return s.classifier.LogContains(ctx, id, opts.Phrase, s.settings.BuildOptions)
}

// Clean removes the result cache.
func (a *App) Clean(_ context.Context, configPath string) error {
	s, err := a.newSession(CommonOptions{ConfigPath: configPath})
	if err != nil {
		return err
	}

	a.logger.Info("removing result cache...")
	if err := s.store.Clean(); err != nil {
		return err
	}
	a.logger.Info("removed " + s.store.Root())
	return nil
}

func (a *App) newSession(opts CommonOptions) (*session, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	settings, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.System != "" {
		settings.System = opts.System
	}
	settings.BuildOptions = mergeBuildOptions(settings.BuildOptions, opts.BuildOptions)

	format := settings.LogFormat
	if opts.LogFormat != "" {
		format = opts.LogFormat
	}
	if f, ok := a.logger.(logFormatter); ok {
		f.SetJSON(format == config.LogFormatJSON)
	}

	tool := a.tool
	if tool == nil {
		tool = nix.NewClient(settings.NixFile, a.logger)
	}

	store := cache.NewStore(a.fs, settings.CacheDir, a.logger)
	mon := monitor.New(a.executor, tool, a.resize, a.stdout)
	b := builder.New(store, mon, tool, a.logger)

	return &session{
		settings:   settings,
		store:      store,
		tool:       tool,
		builder:    b,
		classifier: classifier.New(store, tool, b, a.logger),
	}, nil
}

// mergeBuildOptions overlays overrides on base by name. The result is sorted by name.
func mergeBuildOptions(base, overrides []domain.BuildOption) []domain.BuildOption {
	if len(overrides) == 0 {
		return base
	}

	byName := make(map[string]string, len(base)+len(overrides))
	for _, opt := range base {
		byName[opt.Name] = opt.Value
	}
	for _, opt := range overrides {
		byName[opt.Name] = opt.Value
	}

	merged := make([]domain.BuildOption, 0, len(byName))
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		merged = append(merged, domain.BuildOption{Name: name, Value: byName[name]})
	}
	return merged
}
