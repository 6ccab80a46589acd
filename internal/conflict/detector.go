// Package conflict decides which trains are contending for the same scarce
// resource. Detection is a pure predicate over the snapshot; it never
// mutates state.
package conflict

import (
	"github.com/google/uuid"

	"github.com/railops/railway-traffic-optimizer/pkg/core"
)

// CompetesForResource reports whether two trains are contending for the same
// track section. Both trains must have a current section and the sections
// must be the identical section.
//
// Adjacent-section contention is not modeled: two trains on different
// sections never conflict, even where those sections share a junction. The
// precedence model relies on this same-section definition; extending it to
// adjacent sections would also require an explicit capacity constraint in
// the solver (see solver.Model).
func CompetesForResource(a, b *core.Train) bool {
	if a == nil || b == nil {
		return false
	}
	if a.CurrentSection == nil || b.CurrentSection == nil {
		return false
	}
	return a.CurrentSection.ID == b.CurrentSection.ID
}

// SectionLoad describes how many trains occupy one section relative to its
// track capacity.
type SectionLoad struct {
	Section *core.Section
	Trains  []*core.Train
}

// Overloaded reports whether more trains occupy the section than it has
// tracks.
func (l SectionLoad) Overloaded() bool {
	return l.Section != nil && len(l.Trains) > l.Section.Tracks
}

// SectionLoads groups trains by the section they occupy. Trains without a
// current section are skipped. The result is keyed by section identity.
func SectionLoads(trains []*core.Train) map[uuid.UUID]SectionLoad {
	loads := make(map[uuid.UUID]SectionLoad)
	for _, t := range trains {
		if t.CurrentSection == nil {
			continue
		}
		id := t.CurrentSection.ID
		load, ok := loads[id]
		if !ok {
			load = SectionLoad{Section: t.CurrentSection}
		}
		load.Trains = append(load.Trains, t)
		loads[id] = load
	}
	return loads
}
