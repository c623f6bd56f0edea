package bisect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports"
	"go.trai.ch/nixbisect/internal/core/ports/mocks"
	"go.trai.ch/nixbisect/internal/engine/bisect"
	"go.uber.org/mock/gomock"
)

const marker = "error: frobnicate is broken"

var (
	target = domain.UnitID("/nix/store/aaa-hello.drv")
	dep    = domain.UnitID("/nix/store/bbb-libfoo.drv")
	src    = domain.UnitID("/nix/store/ccc-source")
)

type fixture struct {
	patcher    *mocks.MockPatcher
	tool       *mocks.MockBuildTool
	builder    *mocks.MockBuilder
	classifier *mocks.MockLogClassifier
	engine     *bisect.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().End().AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	f := &fixture{
		patcher:    mocks.NewMockPatcher(ctrl),
		tool:       mocks.NewMockBuildTool(ctrl),
		builder:    mocks.NewMockBuilder(ctrl),
		classifier: mocks.NewMockLogClassifier(ctrl),
	}
	f.engine = bisect.New(f.patcher, f.tool, f.builder, f.classifier, tracer, logger)
	return f
}

func (f *fixture) resolves() {
	f.tool.EXPECT().Instantiate(gomock.Any(), "hello", "").Return(target, nil)
}

func (f *fixture) plans(plan domain.DryRunPlan) {
	f.tool.EXPECT().DryRun(gomock.Any(), []domain.UnitID{target}).Return(plan, nil)
}

func intPtr(n int) *int { return &n }

func TestEngine_RebuildCeilingExceeded(t *testing.T) {
	f := newFixture(t)
	f.resolves()

	toBuild := make([]domain.UnitID, 10)
	for i := range toBuild {
		toBuild[i] = domain.UnitID("/nix/store/unit-" + string(rune('a'+i)) + ".drv")
	}
	f.plans(domain.DryRunPlan{ToBuild: toBuild})
	// No Build expectation: any build call fails the test.

	decision, err := f.engine.Run(context.Background(), bisect.Config{Target: "hello", MaxRebuilds: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictSkip, decision.Verdict)
	assert.Contains(t, decision.Reason, "rebuild limit of 5")
}

func TestEngine_DependencyFailureSkips(t *testing.T) {
	f := newFixture(t)
	f.resolves()
	f.plans(domain.DryRunPlan{ToBuild: []domain.UnitID{dep, target}, ToFetch: []domain.UnitID{src}})
	f.builder.EXPECT().Build(gomock.Any(), []domain.UnitID{dep, src}, domain.CachedBuild(nil)).
		Return(nil, domain.NewBuildFailure(dep))

	decision, err := f.engine.Run(context.Background(), bisect.Config{Target: "hello"})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictSkip, decision.Verdict)
}

func TestEngine_TargetSuccessWithoutMarkerIsGood(t *testing.T) {
	f := newFixture(t)
	f.resolves()
	f.plans(domain.DryRunPlan{ToBuild: []domain.UnitID{target}})
	f.builder.EXPECT().Build(gomock.Any(), []domain.UnitID{target}, gomock.Any()).
		Return([]string{"/nix/store/ddd-hello"}, nil)

	decision, err := f.engine.Run(context.Background(), bisect.Config{Target: "hello"})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictGood, decision.Verdict)
}

func TestEngine_TargetFailureWithoutMarkerIsBad(t *testing.T) {
	f := newFixture(t)
	f.resolves()
	f.plans(domain.DryRunPlan{ToBuild: []domain.UnitID{target}})
	f.builder.EXPECT().Build(gomock.Any(), []domain.UnitID{target}, gomock.Any()).
		Return(nil, domain.NewBuildFailure(target))

	decision, err := f.engine.Run(context.Background(), bisect.Config{Target: "hello"})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictBad, decision.Verdict)
}

func TestEngine_TargetFailureWithMarker(t *testing.T) {
	tests := []struct {
		name   string
		found  bool
		expect domain.Verdict
	}{
		{name: "marker present", found: true, expect: domain.VerdictBad},
		{name: "marker absent", found: false, expect: domain.VerdictSkip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.resolves()
			f.tool.EXPECT().DryRun(gomock.Any(), []domain.UnitID{target}).
				Return(domain.DryRunPlan{ToBuild: []domain.UnitID{target}}, nil).Times(2)
			gomock.InOrder(
				// Nothing is known about the target before it is built.
				f.classifier.EXPECT().KnownLogContains(gomock.Any(), target, marker).Return(false, nil),
				f.builder.EXPECT().Build(gomock.Any(), []domain.UnitID{target}, gomock.Any()).
					Return(nil, domain.NewBuildFailure(target)),
				f.classifier.EXPECT().KnownLogContains(gomock.Any(), target, marker).Return(tt.found, nil),
			)

			decision, err := f.engine.Run(context.Background(), bisect.Config{Target: "hello", FailureLine: marker})
			require.NoError(t, err)
			assert.Equal(t, tt.expect, decision.Verdict)
		})
	}
}

func TestEngine_CacheShortcut(t *testing.T) {
	f := newFixture(t)
	f.resolves()
	f.tool.EXPECT().DryRun(gomock.Any(), []domain.UnitID{target}).
		Return(domain.DryRunPlan{ToBuild: []domain.UnitID{target}}, nil).Times(2)
	f.classifier.EXPECT().KnownLogContains(gomock.Any(), target, marker).Return(true, nil)

	decision, err := f.engine.Run(context.Background(), bisect.Config{Target: "hello", FailureLine: marker})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictBad, decision.Verdict)
}

func TestEngine_TargetSuccessWithMarker(t *testing.T) {
	tests := []struct {
		name   string
		found  bool
		expect domain.Verdict
	}{
		{name: "marker in log", found: true, expect: domain.VerdictBad},
		{name: "clean log", found: false, expect: domain.VerdictGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.resolves()
			// Already realized: no cache shortcut applies.
			f.tool.EXPECT().DryRun(gomock.Any(), []domain.UnitID{target}).
				Return(domain.DryRunPlan{}, nil).Times(2)
			f.builder.EXPECT().Build(gomock.Any(), []domain.UnitID{target}, gomock.Any()).
				Return([]string{"/nix/store/ddd-hello"}, nil)
			f.classifier.EXPECT().KnownLogContains(gomock.Any(), target, marker).Return(tt.found, nil)

			decision, err := f.engine.Run(context.Background(), bisect.Config{Target: "hello", FailureLine: marker})
			require.NoError(t, err)
			assert.Equal(t, tt.expect, decision.Verdict)
		})
	}
}

func TestEngine_PatchesAppliedInOrder(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.patcher.EXPECT().Apply(gomock.Any(), "abc123").Return(nil),
		f.patcher.EXPECT().Apply(gomock.Any(), "def456").Return(nil),
		f.tool.EXPECT().Instantiate(gomock.Any(), "hello", "aarch64-linux").Return(target, nil),
	)
	f.plans(domain.DryRunPlan{})
	f.builder.EXPECT().Build(gomock.Any(), []domain.UnitID{target}, gomock.Any()).Return(nil, nil)

	decision, err := f.engine.Run(context.Background(), bisect.Config{
		Target:  "hello",
		System:  "aarch64-linux",
		Patches: []string{"abc123", "def456"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictGood, decision.Verdict)
}

func TestEngine_FatalErrors(t *testing.T) {
	t.Run("patch does not apply", func(t *testing.T) {
		f := newFixture(t)
		f.patcher.EXPECT().Apply(gomock.Any(), "abc123").Return(domain.ErrPatchApplyFailed)

		_, err := f.engine.Run(context.Background(), bisect.Config{Target: "hello", Patches: []string{"abc123", "def456"}})
		require.ErrorIs(t, err, domain.ErrPatchApplyFailed)
	})

	t.Run("target does not resolve", func(t *testing.T) {
		f := newFixture(t)
		f.tool.EXPECT().Instantiate(gomock.Any(), "hello", "").Return(domain.UnitID(""), errors.New("undefined variable"))

		_, err := f.engine.Run(context.Background(), bisect.Config{Target: "hello"})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrResolutionFailed.Error())
	})

	t.Run("dry-run output cannot be parsed", func(t *testing.T) {
		f := newFixture(t)
		f.resolves()
		f.tool.EXPECT().DryRun(gomock.Any(), []domain.UnitID{target}).
			Return(domain.DryRunPlan{}, domain.ErrDryRunParseFailed)

		_, err := f.engine.Run(context.Background(), bisect.Config{Target: "hello"})
		require.ErrorIs(t, err, domain.ErrDryRunParseFailed)
	})
}
