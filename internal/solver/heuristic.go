package solver

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/railops/railway-traffic-optimizer/internal/logging"
	"github.com/railops/railway-traffic-optimizer/pkg/core"
)

// ordersAhead reports whether a goes ahead of b in the priority/delay total
// order: priority descending, then delay descending, with train number as
// the deterministic tie-breaker.
func ordersAhead(a, b *core.Train) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.DelayMinutes != b.DelayMinutes {
		return a.DelayMinutes > b.DelayMinutes
	}
	return a.Number < b.Number
}

// HeuristicSolver orders trains by priority descending, then delay
// descending, with train number as the deterministic tie-breaker. It is the
// fallback when the constraint solve cannot certify a result within budget.
type HeuristicSolver struct{}

// Solve sorts the trains and treats the sort order as the precedence order
// directly. It never fails and ignores the context deadline: the sort is
// effectively instantaneous.
func (s *HeuristicSolver) Solve(_ context.Context, trains []*core.Train) (*Solution, error) {
	ordered := make([]*core.Train, len(trains))
	copy(ordered, trains)

	sort.SliceStable(ordered, func(a, b int) bool {
		return ordersAhead(ordered[a], ordered[b])
	})

	ranks := make(map[uuid.UUID]int, len(ordered))
	for i, t := range ordered {
		ranks[t.ID] = i
	}

	logging.Log.V(logging.DEBUG).Info("heuristic ordering complete", "trains", len(ordered))

	return &Solution{
		Trains:        ordered,
		Ranks:         ranks,
		WeightedDelay: weightedDelay(ordered),
		Method:        MethodHeuristic,
	}, nil
}
