package domain

import (
	"errors"
	"slices"
	"strings"
)

// BuildFailure reports the units that failed during one build invocation.
// A single invocation can surface several independent failures.
type BuildFailure struct {
	Units []UnitID
}

// NewBuildFailure returns a BuildFailure over the deduplicated, sorted ids.
func NewBuildFailure(ids ...UnitID) *BuildFailure {
	units := slices.Clone(ids)
	slices.Sort(units)
	return &BuildFailure{Units: slices.Compact(units)}
}

// Error implements the error interface.
func (f *BuildFailure) Error() string {
	names := make([]string, len(f.Units))
	for i, id := range f.Units {
		names[i] = "'" + string(id) + "'"
	}
	return ErrBuildFailed.Error() + ": " + strings.Join(names, ", ")
}

// Is makes every BuildFailure match ErrBuildFailed.
func (f *BuildFailure) Is(target error) bool {
	return target == ErrBuildFailed
}

// Contains reports whether id is among the failed units.
func (f *BuildFailure) Contains(id UnitID) bool {
	return slices.Contains(f.Units, id)
}

// AsBuildFailure extracts a BuildFailure from an error chain.
func AsBuildFailure(err error) (*BuildFailure, bool) {
	var bf *BuildFailure
	if errors.As(err, &bf) {
		return bf, true
	}
	return nil, false
}
