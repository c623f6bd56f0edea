package domain_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixbisect/internal/core/domain"
)

func TestBuildFailure(t *testing.T) {
	f := domain.NewBuildFailure("/nix/store/bbb-b.drv", "/nix/store/aaa-a.drv", "/nix/store/bbb-b.drv")

	assert.Equal(t, []domain.UnitID{"/nix/store/aaa-a.drv", "/nix/store/bbb-b.drv"}, f.Units)
	assert.Equal(t, "build failed: '/nix/store/aaa-a.drv', '/nix/store/bbb-b.drv'", f.Error())
	assert.True(t, f.Contains("/nix/store/aaa-a.drv"))
	assert.False(t, f.Contains("/nix/store/ccc-c.drv"))
	assert.ErrorIs(t, f, domain.ErrBuildFailed)
}

func TestAsBuildFailure(t *testing.T) {
	wrapped := fmt.Errorf("dependency build: %w", domain.NewBuildFailure("/nix/store/aaa-a.drv"))

	got, ok := domain.AsBuildFailure(wrapped)
	require.True(t, ok)
	assert.Equal(t, []domain.UnitID{"/nix/store/aaa-a.drv"}, got.Units)

	_, ok = domain.AsBuildFailure(errors.New("other"))
	assert.False(t, ok)
}

func TestDryRunPlan_Dependencies(t *testing.T) {
	plan := domain.DryRunPlan{
		ToBuild: []domain.UnitID{"/nix/store/dep.drv", "/nix/store/target.drv"},
		ToFetch: []domain.UnitID{"/nix/store/glibc"},
	}

	assert.True(t, plan.NeedsBuild())
	assert.Equal(t,
		[]domain.UnitID{"/nix/store/dep.drv", "/nix/store/glibc"},
		plan.Dependencies([]domain.UnitID{"/nix/store/target.drv"}),
	)
	assert.False(t, domain.DryRunPlan{ToFetch: plan.ToFetch}.NeedsBuild())
}

func TestBuildOption_Validate(t *testing.T) {
	require.NoError(t, domain.BuildOption{Name: "cores", Value: ""}.Validate())
	assert.ErrorIs(t, domain.BuildOption{Name: " ", Value: "1"}.Validate(), domain.ErrInvalidBuildOption)
}

func TestVerdictAndLogMatchNames(t *testing.T) {
	assert.Equal(t, "good", domain.VerdictGood.String())
	assert.Equal(t, "bad", domain.VerdictBad.String())
	assert.Equal(t, "skip", domain.VerdictSkip.String())
	assert.Equal(t, "unknown", domain.Decision{}.Verdict.String())

	assert.Equal(t, "yes", domain.LogMatchYes.String())
	assert.Equal(t, "no_fail", domain.LogMatchNoFail.String())
	assert.Equal(t, "no_success", domain.LogMatchNoSuccess.String())
}

func TestUnitID_BaseName(t *testing.T) {
	assert.Equal(t, "aaa-hello.drv", domain.UnitID("/nix/store/aaa-hello.drv").BaseName())
}

func TestUnitSet(t *testing.T) {
	var s domain.UnitSet
	assert.False(t, s.Contains("a"))
	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("b"))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []domain.UnitID{"b", "a"}, s.Items())
}

func TestDefaultCacheRoot(t *testing.T) {
	t.Setenv(domain.CacheDirEnv, "/tmp/override")
	assert.Equal(t, "/tmp/override", domain.DefaultCacheRoot())

	t.Setenv(domain.CacheDirEnv, "")
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", domain.AppName), domain.DefaultCacheRoot())
}

func TestBuildPolicies(t *testing.T) {
	opts := []domain.BuildOption{{Name: "cores", Value: "2"}}

	assert.Equal(t, domain.BuildPolicy{UseCache: true, WriteCache: true, Options: opts}, domain.CachedBuild(opts))
	assert.Equal(t, domain.BuildPolicy{UseCache: false, WriteCache: true, Options: opts}, domain.ForcedBuild(opts))
}
