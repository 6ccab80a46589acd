package optimizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/railops/railway-traffic-optimizer/internal/logging"
	"github.com/railops/railway-traffic-optimizer/internal/metrics"
	"github.com/railops/railway-traffic-optimizer/internal/precedence"
	"github.com/railops/railway-traffic-optimizer/internal/solver"
	"github.com/railops/railway-traffic-optimizer/pkg/config"
	"github.com/railops/railway-traffic-optimizer/pkg/core"
)

// fallbackConfidence is the confidence of degraded-fallback decisions.
const fallbackConfidence = 0.3

// fallbackReason is the reason attached to degraded-fallback decisions.
const fallbackReason = "Fallback: proceed with caution"

// Engine runs one optimization pass per call. It holds only configuration
// and collaborators; all per-call state is request-scoped, so concurrent
// calls with separate snapshots are safe without locking.
type Engine struct {
	cfg        *config.Config
	constraint solver.Solver
	heuristic  solver.Solver
	log        logr.Logger
}

// NewEngine creates an engine with the default solver pair.
func NewEngine(cfg *config.Config, log logr.Logger) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	constraint, err := solver.NewSolver(solver.ConstraintStrategy)
	if err != nil {
		return nil, err
	}
	heuristic, err := solver.NewSolver(solver.HeuristicStrategy)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:        cfg,
		constraint: constraint,
		heuristic:  heuristic,
		log:        log,
	}, nil
}

// WithSolvers replaces the engine's solvers. Intended for tests.
func (e *Engine) WithSolvers(constraint, heuristic solver.Solver) *Engine {
	e.constraint = constraint
	e.heuristic = heuristic
	return e
}

// Optimize runs one decision pass over the snapshot. It is total: every
// input yields a well-formed result, never an error. Degraded quality is
// reported through confidences and reason strings.
func (e *Engine) Optimize(ctx context.Context, state *core.SystemState) (result *core.OptimizationResult) {
	start := time.Now()

	// The engine must never fail to return a result. A panic anywhere in
	// the pipeline degrades to the safety fallback.
	defer func() {
		if r := recover(); r != nil {
			e.log.Info("optimization panicked, using degraded fallback", "panic", r)
			result = e.fallbackResult(state)
		}
	}()

	result, err := e.run(ctx, state, start)
	if err != nil {
		e.log.Error(err, "optimization failed, using degraded fallback")
		return e.fallbackResult(state)
	}
	return result
}

// run executes the Filtering → Solving → Extracting → Scoring pipeline.
// Any returned error selects the degraded fallback in Optimize.
func (e *Engine) run(ctx context.Context, state *core.SystemState, start time.Time) (*core.OptimizationResult, error) {
	if state == nil {
		return nil, fmt.Errorf("nil system state")
	}

	// Filtering.
	eligible := eligibleTrains(state)
	if len(eligible) == 0 {
		e.log.V(logging.DEBUG).Info("no trains need decisions")
		return &core.OptimizationResult{
			Decisions:             []*core.Decision{},
			TotalDelayReduction:   0,
			ThroughputImprovement: 0.0,
			ConfidenceScore:       1.0,
			ComputationTime:       0.0,
			CreatedAt:             time.Now().UTC(),
		}, nil
	}

	// Solving, within the wall-clock budget.
	sol, err := e.solve(ctx, eligible)
	if err != nil {
		return nil, err
	}

	// Extracting.
	decisions, err := precedence.Extract(sol, state)
	if err != nil {
		return nil, fmt.Errorf("extracting decisions: %w", err)
	}

	// Scoring.
	result := &core.OptimizationResult{
		Decisions:             decisions,
		TotalDelayReduction:   metrics.DelayReduction(decisions),
		ThroughputImprovement: metrics.ThroughputImprovement(decisions),
		ConfidenceScore:       metrics.ConfidenceScore(decisions, state),
		ComputationTime:       time.Since(start).Seconds(),
		CreatedAt:             time.Now().UTC(),
	}

	e.log.Info("optimization complete",
		"method", sol.Method,
		"eligibleTrains", len(eligible),
		"decisions", len(decisions),
		"delayReduction", result.TotalDelayReduction,
		"confidence", result.ConfidenceScore,
		"computationTime", result.ComputationTime)

	return result, nil
}

// solve runs the constraint solver under the budget and falls back to the
// heuristic ordering when no solution is certified in time. Any other
// solver failure propagates to the degraded fallback.
func (e *Engine) solve(ctx context.Context, eligible []*core.Train) (*solver.Solution, error) {
	sctx, cancel := context.WithTimeout(ctx, e.cfg.SolveBudget)
	defer cancel()

	sol, err := e.constraint.Solve(sctx, eligible)
	if err == nil {
		return sol, nil
	}
	if !errors.Is(err, solver.ErrNoSolution) {
		return nil, fmt.Errorf("constraint solve: %w", err)
	}

	e.log.Info("constraint solve not certified within budget, using heuristic",
		"budget", e.cfg.SolveBudget, "reason", err.Error())

	sol, err = e.heuristic.Solve(ctx, eligible)
	if err != nil {
		return nil, fmt.Errorf("heuristic ordering: %w", err)
	}
	return sol, nil
}

// eligibleTrains selects trains that need an immediate decision: Running or
// Delayed, with a current section assigned.
func eligibleTrains(state *core.SystemState) []*core.Train {
	var eligible []*core.Train
	for _, t := range state.Trains {
		if (t.Status == core.StatusRunning || t.Status == core.StatusDelayed) && t.CurrentSection != nil {
			eligible = append(eligible, t)
		}
	}
	return eligible
}

// fallbackResult is the always-available degraded output: every Running or
// Delayed train is told to proceed with caution, regardless of conflicts.
func (e *Engine) fallbackResult(state *core.SystemState) *core.OptimizationResult {
	decisions := []*core.Decision{}
	if state != nil {
		for _, t := range state.Trains {
			if t.Status != core.StatusRunning && t.Status != core.StatusDelayed {
				continue
			}
			d := core.NewDecision(t, core.ActionProceed, fallbackReason, fallbackConfidence)
			d.TargetSection = t.CurrentSection
			decisions = append(decisions, d)
		}
	}

	return &core.OptimizationResult{
		Decisions:             decisions,
		TotalDelayReduction:   0,
		ThroughputImprovement: 0.0,
		ConfidenceScore:       fallbackConfidence,
		ComputationTime:       0.0,
		CreatedAt:             time.Now().UTC(),
	}
}
