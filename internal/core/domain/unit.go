// Package domain contains the core value types of the bisection engine.
package domain

import (
	"path"
	"slices"
)

// UnitID names one buildable plan (a Nix derivation path).
// It is opaque and only ever parsed to derive a log file name.
type UnitID string

// String returns the raw identifier.
func (id UnitID) String() string {
	return string(id)
}

// BaseName returns the last path element of the identifier.
// Failure logs are stored under this name.
func (id UnitID) BaseName() string {
	return path.Base(string(id))
}

// UnitIDs converts raw strings into unit identifiers, preserving order.
func UnitIDs(raw []string) []UnitID {
	ids := make([]UnitID, 0, len(raw))
	for _, r := range raw {
		ids = append(ids, UnitID(r))
	}
	return ids
}

// UnitSet is an insertion-ordered set of unit identifiers.
type UnitSet struct {
	order []UnitID
	seen  map[UnitID]struct{}
}

// Add inserts id and reports whether it was not already present.
func (s *UnitSet) Add(id UnitID) bool {
	if s.seen == nil {
		s.seen = make(map[UnitID]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Contains reports whether id is in the set.
func (s *UnitSet) Contains(id UnitID) bool {
	_, ok := s.seen[id]
	return ok
}

// Len returns the number of identifiers in the set.
func (s *UnitSet) Len() int {
	return len(s.order)
}

// Items returns the identifiers in insertion order.
func (s *UnitSet) Items() []UnitID {
	return slices.Clone(s.order)
}
