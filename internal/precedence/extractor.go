// Package precedence converts a solved precedence order into per-train
// decisions.
package precedence

import (
	"fmt"
	"time"

	"github.com/railops/railway-traffic-optimizer/internal/solver"
	"github.com/railops/railway-traffic-optimizer/pkg/core"
)

// WaitMinutesPerRank is the estimated wait credited per precedence rank.
const WaitMinutesPerRank = 5

// Decision confidences per solve path. A certified constraint solve is
// trusted more than the heuristic sort.
const (
	proceedConfidenceSolved    = 0.9
	waitConfidenceSolved       = 0.8
	proceedConfidenceHeuristic = 0.6
	waitConfidenceHeuristic    = 0.5
)

// Extract converts a precedence order into one decision per train. Rank 0
// trains are cleared to proceed into their current section; all others wait
// with an estimated wait of WaitMinutesPerRank minutes per rank, measured
// from the snapshot timestamp.
func Extract(sol *solver.Solution, state *core.SystemState) ([]*core.Decision, error) {
	if sol == nil {
		return nil, fmt.Errorf("nil solution")
	}

	proceedConfidence := proceedConfidenceSolved
	waitConfidence := waitConfidenceSolved
	proceedReason := "Highest priority in precedence order"
	if sol.Method == solver.MethodHeuristic {
		proceedConfidence = proceedConfidenceHeuristic
		waitConfidence = waitConfidenceHeuristic
		proceedReason = "Highest priority by heuristic"
	}

	decisions := make([]*core.Decision, 0, len(sol.Trains))
	for _, t := range sol.Trains {
		rank, ok := sol.Ranks[t.ID]
		if !ok {
			return nil, fmt.Errorf("train %s missing from solution ranks", t.Number)
		}

		var d *core.Decision
		if rank == 0 {
			d = core.NewDecision(t, core.ActionProceed, proceedReason, proceedConfidence)
			d.TargetSection = t.CurrentSection
		} else {
			d = core.NewDecision(t, core.ActionWait,
				fmt.Sprintf("Waiting for %d higher priority trains", rank),
				waitConfidence)
			eta := state.Timestamp.Add(time.Duration(rank*WaitMinutesPerRank) * time.Minute)
			d.EstimatedTime = &eta
		}
		decisions = append(decisions, d)
	}
	return decisions, nil
}
