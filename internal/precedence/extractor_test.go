package precedence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railops/railway-traffic-optimizer/internal/solver"
	"github.com/railops/railway-traffic-optimizer/pkg/core"
)

func placedTrain(number string, trainType core.TrainType, delay int, sec *core.Section) *core.Train {
	t := core.NewTrain(number, "svc "+number, trainType, 120, 200)
	t.Status = core.StatusRunning
	t.DelayMinutes = delay
	t.CurrentSection = sec
	return t
}

func singleTrackSection() *core.Section {
	from := core.NewStation("Central", "CTL", 51.5, -0.12, 12, true)
	to := core.NewStation("Harbour", "HBR", 51.5, -0.08, 4, false)
	return core.NewSection(from, to, 12.5, 160, 1)
}

func solveFor(t *testing.T, trains []*core.Train, strategy solver.Strategy) *solver.Solution {
	t.Helper()
	s, err := solver.NewSolver(strategy)
	require.NoError(t, err)
	sol, err := s.Solve(context.Background(), trains)
	require.NoError(t, err)
	return sol
}

func TestExtractSolvedPath(t *testing.T) {
	sec := singleTrackSection()
	express := placedTrain("E1", core.TrainExpress, 0, sec)
	freight := placedTrain("F1", core.TrainFreight, 10, sec)
	trains := []*core.Train{freight, express}

	state := core.NewSystemState(trains, []*core.Section{sec}, nil)
	sol := solveFor(t, trains, solver.ConstraintStrategy)

	decisions, err := Extract(sol, state)
	require.NoError(t, err)
	require.Len(t, decisions, 2)

	first, second := decisions[0], decisions[1]
	assert.Equal(t, express, first.Train)
	assert.Equal(t, core.ActionProceed, first.Action)
	assert.Equal(t, sec, first.TargetSection)
	assert.Equal(t, "Highest priority in precedence order", first.Reason)
	assert.Equal(t, 0.9, first.Confidence)
	assert.Nil(t, first.EstimatedTime)

	assert.Equal(t, freight, second.Train)
	assert.Equal(t, core.ActionWait, second.Action)
	assert.Nil(t, second.TargetSection, "waiting trains have no clearance")
	assert.Equal(t, "Waiting for 1 higher priority trains", second.Reason)
	assert.Equal(t, 0.8, second.Confidence)
	require.NotNil(t, second.EstimatedTime)
	assert.Equal(t, state.Timestamp.Add(WaitMinutesPerRank*time.Minute), *second.EstimatedTime)
}

func TestExtractHeuristicPath(t *testing.T) {
	sec := singleTrackSection()
	a := placedTrain("P1", core.TrainPassenger, 10, sec)
	b := placedTrain("P2", core.TrainPassenger, 5, sec)
	c := placedTrain("P3", core.TrainPassenger, 1, sec)
	trains := []*core.Train{c, a, b}

	state := core.NewSystemState(trains, []*core.Section{sec}, nil)
	sol := solveFor(t, trains, solver.HeuristicStrategy)

	decisions, err := Extract(sol, state)
	require.NoError(t, err)
	require.Len(t, decisions, 3)

	assert.Equal(t, a, decisions[0].Train)
	assert.Equal(t, core.ActionProceed, decisions[0].Action)
	assert.Equal(t, "Highest priority by heuristic", decisions[0].Reason)
	assert.Equal(t, 0.6, decisions[0].Confidence)

	assert.Equal(t, "Waiting for 1 higher priority trains", decisions[1].Reason)
	assert.Equal(t, 0.5, decisions[1].Confidence)
	assert.Equal(t, "Waiting for 2 higher priority trains", decisions[2].Reason)

	// Estimated wait grows linearly with rank.
	require.NotNil(t, decisions[2].EstimatedTime)
	assert.Equal(t, state.Timestamp.Add(2*WaitMinutesPerRank*time.Minute), *decisions[2].EstimatedTime)
}

func TestExtractCoversEligibleSetExactlyOnce(t *testing.T) {
	sec := singleTrackSection()
	other := singleTrackSection()
	trains := []*core.Train{
		placedTrain("A", core.TrainExpress, 3, sec),
		placedTrain("B", core.TrainFreight, 45, sec),
		placedTrain("C", core.TrainPassenger, 0, other),
	}
	state := core.NewSystemState(trains, []*core.Section{sec, other}, nil)
	sol := solveFor(t, trains, solver.ConstraintStrategy)

	decisions, err := Extract(sol, state)
	require.NoError(t, err)
	require.Len(t, decisions, len(trains))

	seen := map[string]int{}
	for _, d := range decisions {
		seen[d.Train.Number]++
	}
	for _, tr := range trains {
		assert.Equal(t, 1, seen[tr.Number], "train %s must get exactly one decision", tr.Number)
	}
}

func TestExtractNilSolution(t *testing.T) {
	_, err := Extract(nil, core.NewSystemState(nil, nil, nil))
	assert.Error(t, err)
}
