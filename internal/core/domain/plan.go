package domain

import (
	"slices"
	"strings"
)

// DryRunPlan lists the units a realization would fetch or build, in tool order.
type DryRunPlan struct {
	ToBuild []UnitID
	ToFetch []UnitID
}

// NeedsBuild reports whether anything would have to be built.
func (p DryRunPlan) NeedsBuild() bool {
	return len(p.ToBuild) > 0
}

// Dependencies returns every unit to build or fetch, excluding the requested ids themselves.
func (p DryRunPlan) Dependencies(requested []UnitID) []UnitID {
	deps := make([]UnitID, 0, len(p.ToBuild)+len(p.ToFetch))
	for _, id := range slices.Concat(p.ToBuild, p.ToFetch) {
		if slices.Contains(requested, id) {
			continue
		}
		deps = append(deps, id)
	}
	return deps
}

// BuildOption is a key/value pair passed through to the build tool unmodified.
type BuildOption struct {
	Name  string
	Value string
}

// Validate checks that the option has a name.
func (o BuildOption) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return ErrInvalidBuildOption
	}
	return nil
}
