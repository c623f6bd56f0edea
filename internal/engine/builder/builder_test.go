package builder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports/mocks"
	"go.trai.ch/nixbisect/internal/engine/builder"
	"go.uber.org/mock/gomock"
)

type fakeRunner struct {
	calls   int
	outputs []string
	err     error
}

func (r *fakeRunner) Build(_ context.Context, _ []domain.UnitID, _ []domain.BuildOption) ([]string, error) {
	r.calls++
	return r.outputs, r.err
}

var target = domain.UnitID("/nix/store/aaa-target.drv")

func newLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return logger
}

func TestBuilder_Build_CachedFailureNeverSpawns(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockResultCache(ctrl)
	tool := mocks.NewMockBuildTool(ctrl)
	runner := &fakeRunner{}

	cache.EXPECT().Load().Return(nil)
	cache.EXPECT().CheckCached([]domain.UnitID{target}).Return(domain.NewBuildFailure(target))

	b := builder.New(cache, runner, tool, newLogger(ctrl))

	_, err := b.Build(context.Background(), []domain.UnitID{target}, domain.CachedBuild(nil))
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Zero(t, runner.calls)
}

func TestBuilder_Build_ForcedIgnoresCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockResultCache(ctrl)
	tool := mocks.NewMockBuildTool(ctrl)
	runner := &fakeRunner{outputs: []string{"/nix/store/bbb-target"}}

	cache.EXPECT().Load().Return(nil)

	b := builder.New(cache, runner, tool, newLogger(ctrl))

	outputs, err := b.Build(context.Background(), []domain.UnitID{target}, domain.ForcedBuild(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"/nix/store/bbb-target"}, outputs)
	assert.Equal(t, 1, runner.calls)
}

func TestBuilder_Build_RecordsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockResultCache(ctrl)
	tool := mocks.NewMockBuildTool(ctrl)
	dep := domain.UnitID("/nix/store/ccc-dep.drv")
	runner := &fakeRunner{err: domain.NewBuildFailure(target, dep)}

	gomock.InOrder(
		cache.EXPECT().Load().Return(nil),
		cache.EXPECT().CheckCached([]domain.UnitID{target}).Return(nil),
		cache.EXPECT().RecordFailures(gomock.Any(), []domain.UnitID{target, dep}, tool).Return(nil),
	)

	b := builder.New(cache, runner, tool, newLogger(ctrl))

	_, err := b.Build(context.Background(), []domain.UnitID{target}, domain.CachedBuild(nil))
	failure, ok := domain.AsBuildFailure(err)
	require.True(t, ok)
	assert.Equal(t, []domain.UnitID{target, dep}, failure.Units)
}

func TestBuilder_Build_ReadOnlyPolicySkipsRecording(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockResultCache(ctrl)
	tool := mocks.NewMockBuildTool(ctrl)
	runner := &fakeRunner{err: domain.NewBuildFailure(target)}

	cache.EXPECT().Load().Return(nil)

	b := builder.New(cache, runner, tool, newLogger(ctrl))

	_, err := b.Build(context.Background(), []domain.UnitID{target}, domain.BuildPolicy{})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestBuilder_Build_OtherErrorsPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockResultCache(ctrl)
	tool := mocks.NewMockBuildTool(ctrl)
	boom := errors.New("boom")
	runner := &fakeRunner{err: boom}

	cache.EXPECT().Load().Return(nil)
	cache.EXPECT().CheckCached(gomock.Any()).Return(nil)

	b := builder.New(cache, runner, tool, newLogger(ctrl))

	_, err := b.Build(context.Background(), []domain.UnitID{target}, domain.CachedBuild(nil))
	require.ErrorIs(t, err, boom)
}

func TestBuilder_Build_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockResultCache(ctrl)
	tool := mocks.NewMockBuildTool(ctrl)
	runner := &fakeRunner{}
	corrupt := errors.New("corrupt")

	cache.EXPECT().Load().Return(corrupt)

	b := builder.New(cache, runner, tool, newLogger(ctrl))

	_, err := b.Build(context.Background(), []domain.UnitID{target}, domain.CachedBuild(nil))
	require.ErrorIs(t, err, corrupt)
	assert.Zero(t, runner.calls)
}

func TestBuilder_WouldSucceed(t *testing.T) {
	t.Run("nothing to build", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockResultCache(ctrl)
		tool := mocks.NewMockBuildTool(ctrl)
		runner := &fakeRunner{}

		tool.EXPECT().DryRun(gomock.Any(), []domain.UnitID{target}).
			Return(domain.DryRunPlan{ToFetch: []domain.UnitID{"/nix/store/ddd-src"}}, nil)

		b := builder.New(cache, runner, tool, newLogger(ctrl))

		ok, err := b.WouldSucceed(context.Background(), []domain.UnitID{target}, domain.CachedBuild(nil))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Zero(t, runner.calls)
	})

	t.Run("build fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockResultCache(ctrl)
		tool := mocks.NewMockBuildTool(ctrl)
		runner := &fakeRunner{}

		tool.EXPECT().DryRun(gomock.Any(), []domain.UnitID{target}).
			Return(domain.DryRunPlan{ToBuild: []domain.UnitID{target}}, nil)
		cache.EXPECT().Load().Return(nil)
		cache.EXPECT().CheckCached([]domain.UnitID{target}).Return(domain.NewBuildFailure(target))

		b := builder.New(cache, runner, tool, newLogger(ctrl))

		ok, err := b.WouldSucceed(context.Background(), []domain.UnitID{target}, domain.CachedBuild(nil))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("build succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockResultCache(ctrl)
		tool := mocks.NewMockBuildTool(ctrl)
		runner := &fakeRunner{outputs: []string{"/nix/store/bbb-target"}}

		tool.EXPECT().DryRun(gomock.Any(), []domain.UnitID{target}).
			Return(domain.DryRunPlan{ToBuild: []domain.UnitID{target}}, nil)
		cache.EXPECT().Load().Return(nil)
		cache.EXPECT().CheckCached([]domain.UnitID{target}).Return(nil)

		b := builder.New(cache, runner, tool, newLogger(ctrl))

		ok, err := b.WouldSucceed(context.Background(), []domain.UnitID{target}, domain.CachedBuild(nil))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, runner.calls)
	})
}
