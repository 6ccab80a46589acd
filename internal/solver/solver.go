package solver

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/railops/railway-traffic-optimizer/pkg/core"
)

// Method identifies which path produced a precedence order. Decision
// confidence depends on it: a certified constraint solve is trusted more
// than the heuristic sort.
type Method string

const (
	// MethodConstraint means the order came from a certified solve of the
	// pairwise-ordering model.
	MethodConstraint Method = "constraint"
	// MethodHeuristic means the order came from the priority/delay sort.
	MethodHeuristic Method = "heuristic"
)

// Solution is a total precedence order over the eligible trains.
type Solution struct {
	// Trains in precedence order: index 0 goes first.
	Trains []*core.Train

	// Ranks maps train identity to the number of trains ordered strictly
	// before it.
	Ranks map[uuid.UUID]int

	// WeightedDelay is the objective value: the sum of priority-weighted
	// delay minutes over all trains in the solution.
	WeightedDelay int

	// Method records which path produced the order.
	Method Method
}

// Solver produces a precedence order for a set of eligible trains.
// Implementations hold no state across calls; every Solve is request-scoped.
type Solver interface {
	Solve(ctx context.Context, trains []*core.Train) (*Solution, error)
}

// Strategy selects a Solver implementation.
type Strategy int

const (
	// ConstraintStrategy solves the pairwise-ordering constraint model.
	ConstraintStrategy Strategy = iota
	// HeuristicStrategy sorts by priority and delay.
	HeuristicStrategy
)

// NewSolver is a factory that creates a Solver for the given strategy.
func NewSolver(strategy Strategy) (Solver, error) {
	switch strategy {
	case ConstraintStrategy:
		return &ConstraintSolver{}, nil
	case HeuristicStrategy:
		return &HeuristicSolver{}, nil
	default:
		return nil, fmt.Errorf("unsupported solver strategy: %v", strategy)
	}
}

// weightedDelay computes the objective value over a train set. The priority
// weight pushes the engine toward resolving high-priority trains' delays
// rather than minimizing raw delay minutes.
func weightedDelay(trains []*core.Train) int {
	total := 0
	for _, t := range trains {
		total += t.Priority * objectivePriorityWeight * t.DelayMinutes
	}
	return total
}
