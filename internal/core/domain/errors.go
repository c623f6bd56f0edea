package domain

import "go.trai.ch/zerr"

var (
	// ErrResolutionFailed is returned when a target name cannot be instantiated into a build unit.
	ErrResolutionFailed = zerr.New("failed to resolve target to a build unit")

	// ErrBuildFailed is matched by every BuildFailure.
	ErrBuildFailed = zerr.New("build failed")

	// ErrBuildStartFailed is returned when the build process cannot be spawned.
	ErrBuildStartFailed = zerr.New("failed to start build process")

	// ErrRealizeFailed is returned when output locations cannot be queried after a successful build.
	ErrRealizeFailed = zerr.New("failed to realize build outputs")

	// ErrPatchApplyFailed is returned when a requested patch does not apply cleanly.
	ErrPatchApplyFailed = zerr.New("failed to apply patch")

	// ErrDryRunFailed is returned when the dry-run query itself fails.
	ErrDryRunFailed = zerr.New("dry-run query failed")

	// ErrDryRunParseFailed is returned when dry-run output contains an unexpected line.
	ErrDryRunParseFailed = zerr.New("dry-run parsing failed")

	// ErrLogQueryFailed is returned when the build tool's log store cannot be queried.
	ErrLogQueryFailed = zerr.New("failed to query build log")

	// ErrCacheCorrupt is returned when the persisted outcome map cannot be parsed.
	ErrCacheCorrupt = zerr.New("result cache is corrupt")

	// ErrCacheCreateFailed is returned when the cache directories cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create result cache directory")

	// ErrCacheReadFailed is returned when the persisted outcome map cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read result cache")

	// ErrCacheWriteFailed is returned when the outcome map cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write result cache")

	// ErrLogWriteFailed is returned when a failure log cannot be persisted.
	ErrLogWriteFailed = zerr.New("failed to write failure log")

	// ErrLogReadFailed is returned when a persisted failure log cannot be read.
	ErrLogReadFailed = zerr.New("failed to read failure log")

	// ErrCheckpointFailed is returned when the working tree cannot be snapshotted.
	ErrCheckpointFailed = zerr.New("failed to checkpoint working tree")

	// ErrRestoreFailed is returned when the working tree cannot be restored from a checkpoint.
	ErrRestoreFailed = zerr.New("failed to restore working tree")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidBuildOption is returned when a build option has an empty name.
	ErrInvalidBuildOption = zerr.New("invalid build option")

	// ErrInvalidMaxRebuilds is returned when the rebuild ceiling is negative.
	ErrInvalidMaxRebuilds = zerr.New("max rebuilds must not be negative")
)
