package solver

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/railops/railway-traffic-optimizer/internal/conflict"
	"github.com/railops/railway-traffic-optimizer/internal/logging"
	"github.com/railops/railway-traffic-optimizer/pkg/core"
)

const (
	// objectivePriorityWeight scales each train's delay by its priority in
	// the objective.
	objectivePriorityWeight = 10

	// delayOverrideMinutes is the delay gap at which a lower-priority train
	// is allowed to overtake a higher-priority one. Below this gap, priority
	// dominance is a hard constraint.
	delayOverrideMinutes = 30
)

// ErrNoSolution is returned when the model cannot be solved within the
// caller's budget. The caller is expected to fall back to the heuristic
// ordering.
var ErrNoSolution = errors.New("no feasible precedence assignment found")

// varState is the assignment state of one ordering variable.
type varState int8

const (
	varUnset varState = iota
	varFalse
	varTrue
)

// model is the pairwise-ordering constraint model for one solve. It is
// built fresh per call and discarded afterwards; there is no process-wide
// solver state.
type model struct {
	trains []*core.Train

	// before[i][j] is the ordering variable "train i goes strictly before
	// train j". Diagonal entries are unused.
	before [][]varState

	// exclusive lists the conflicting pairs (i < j) for which exactly one
	// of before[i][j], before[j][i] must hold. conflicting mirrors it as a
	// symmetric matrix so propagation can test membership in O(1).
	exclusive   [][2]int
	conflicting [][]bool
}

// ConstraintSolver solves the pairwise-ordering model within the deadline
// carried by the context. It is stateless; every call builds its own model.
type ConstraintSolver struct{}

// Solve builds and solves the precedence model for the given trains. It
// returns ErrNoSolution (possibly wrapped) when the deadline expires before
// a feasible assignment is found.
func (s *ConstraintSolver) Solve(ctx context.Context, trains []*core.Train) (*Solution, error) {
	m, err := buildModel(trains)
	if err != nil {
		return nil, err
	}

	if err := m.search(ctx); err != nil {
		return nil, err
	}

	sol := m.extractSolution()
	logging.Log.V(logging.DEBUG).Info("constraint solve complete",
		"trains", len(trains),
		"conflictPairs", len(m.exclusive),
		"weightedDelay", sol.WeightedDelay)
	return sol, nil
}

// buildModel creates the variables and constraints for one solve.
//
// Constraints:
//  1. Exclusivity: for each conflicting pair, exactly one ordering holds.
//  2. Priority dominance with override: a strictly higher-priority train is
//     forced first unless the lower-priority train is at least
//     delayOverrideMinutes more delayed.
//  3. Capacity bookkeeping: trains are grouped by section; overloaded
//     sections are serialized by constraints (1)-(2) alone. No separate
//     capacity inequality is added. This holds for the same-section
//     conflict definition but would not survive extending conflicts to
//     adjacent sections.
func buildModel(trains []*core.Train) (*model, error) {
	n := len(trains)
	m := &model{trains: trains}
	m.before = make([][]varState, n)
	m.conflicting = make([][]bool, n)
	for i := range m.before {
		m.before[i] = make([]varState, n)
		m.conflicting[i] = make([]bool, n)
	}

	// Exclusivity on conflicting pairs.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if conflict.CompetesForResource(trains[i], trains[j]) {
				m.exclusive = append(m.exclusive, [2]int{i, j})
				m.conflicting[i][j] = true
				m.conflicting[j][i] = true
			}
		}
	}

	// Priority dominance with the delay override.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			ti, tj := trains[i], trains[j]
			if ti.Priority > tj.Priority && tj.DelayMinutes-ti.DelayMinutes < delayOverrideMinutes {
				if err := m.assign(i, j, varTrue); err != nil {
					return nil, fmt.Errorf("building priority constraints: %w", err)
				}
			}
		}
	}

	// Capacity bookkeeping: grouping only, no binding inequality.
	for _, load := range conflict.SectionLoads(trains) {
		if load.Overloaded() {
			logging.Log.V(logging.DEBUG).Info("section over capacity, serialized by precedence",
				"section", load.Section.ID,
				"tracks", load.Section.Tracks,
				"trains", len(load.Trains))
		}
	}

	return m, nil
}

// assign sets before[i][j] to the given value and propagates the
// complementary value across exclusivity for conflicting pairs. Returns an
// error when the assignment contradicts an existing one.
func (m *model) assign(i, j int, v varState) error {
	cur := m.before[i][j]
	if cur != varUnset {
		if cur != v {
			return fmt.Errorf("contradictory ordering between trains %s and %s",
				m.trains[i].Number, m.trains[j].Number)
		}
		return nil
	}
	m.before[i][j] = v

	if m.isExclusive(i, j) {
		comp := varTrue
		if v == varTrue {
			comp = varFalse
		}
		return m.assign(j, i, comp)
	}
	return nil
}

func (m *model) isExclusive(i, j int) bool {
	return m.conflicting[i][j]
}

// budgetExceeded reports, as an ErrNoSolution-wrapped error, whether the
// context is cancelled or its deadline has passed. The deadline is checked
// directly so an already-expired budget is seen before the context's timer
// fires.
func budgetExceeded(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrNoSolution, err)
	}
	if deadline, ok := ctx.Deadline(); ok && !time.Now().Before(deadline) {
		return fmt.Errorf("%w: %v", ErrNoSolution, context.DeadlineExceeded)
	}
	return nil
}

// search assigns all remaining exclusivity variables by depth-first search,
// honoring the context deadline. The model's constraints are pairwise, so
// backtracking is rarely needed, but the search still checks the deadline
// at every node so a near-zero budget returns promptly.
func (m *model) search(ctx context.Context) error {
	return m.searchFrom(ctx, 0)
}

func (m *model) searchFrom(ctx context.Context, idx int) error {
	if err := budgetExceeded(ctx); err != nil {
		return err
	}
	if idx >= len(m.exclusive) {
		return nil
	}

	i, j := m.exclusive[idx][0], m.exclusive[idx][1]
	if m.before[i][j] != varUnset {
		return m.searchFrom(ctx, idx+1)
	}

	// Branch along the priority/delay total order first. Every forced
	// dominance edge agrees with that order, so choosing free variables
	// consistently with it can never close an ordering cycle; a cycle would
	// leave a conflict group with no first train.
	values := [2]varState{varTrue, varFalse}
	if !ordersAhead(m.trains[i], m.trains[j]) {
		values = [2]varState{varFalse, varTrue}
	}
	for _, v := range values {
		m.before[i][j] = v
		if v == varTrue {
			m.before[j][i] = varFalse
		} else {
			m.before[j][i] = varTrue
		}
		if err := m.searchFrom(ctx, idx+1); err == nil {
			return nil
		} else if budgetExceeded(ctx) != nil {
			return err
		}
		m.before[i][j] = varUnset
		m.before[j][i] = varUnset
	}
	return ErrNoSolution
}

// extractSolution converts the variable assignment into a total precedence
// order. A train's rank is the count of trains ordered strictly before it;
// unset variables count as "not before", so unconstrained trains rank 0.
func (m *model) extractSolution() *Solution {
	n := len(m.trains)
	sol := &Solution{
		Ranks:         make(map[uuid.UUID]int, n),
		WeightedDelay: weightedDelay(m.trains),
		Method:        MethodConstraint,
	}

	type ranked struct {
		rank int
		idx  int
	}
	order := make([]ranked, n)
	for i := 0; i < n; i++ {
		rank := 0
		for j := 0; j < n; j++ {
			if i != j && m.before[j][i] == varTrue {
				rank++
			}
		}
		order[i] = ranked{rank: rank, idx: i}
		sol.Ranks[m.trains[i].ID] = rank
	}

	// Stable by rank, preserving input order within a rank.
	sort.SliceStable(order, func(a, b int) bool { return order[a].rank < order[b].rank })

	sol.Trains = make([]*core.Train, n)
	for pos, r := range order {
		sol.Trains[pos] = m.trains[r.idx]
	}
	return sol
}
