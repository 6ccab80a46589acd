// Package optimizer implements the precedence-decision engine.
//
// The optimizer orchestrates a single-shot decision pass over an immutable
// network snapshot: which trains may proceed onto their contested section
// and which must wait, minimizing priority-weighted delay.
//
// Architecture:
//
// The engine follows a pipeline pattern:
//
//	Filtering → Solving → Extracting → Scoring
//	 (engine)   (solver)  (precedence)  (metrics)
//
// The engine sits on top, orchestrating these stages and owning the
// failure fallbacks.
//
// Example usage:
//
//	eng, err := optimizer.NewEngine(config.Default(), logger)
//	if err != nil {
//	    return err
//	}
//
//	result := eng.Optimize(ctx, state)
//
//	log.Info("optimization complete",
//	    "decisions", len(result.Decisions),
//	    "delayReduction", result.TotalDelayReduction,
//	    "confidence", result.ConfidenceScore)
//
// Optimization Flow:
//
//  1. Filtering
//     - Select eligible trains: Running or Delayed, with a current section
//     - An empty eligible set short-circuits to a trivial result
//
//  2. Solving
//     - Build and solve the pairwise-ordering constraint model within the
//       configured wall-clock budget
//     - No certified solution within budget → heuristic priority/delay sort
//
//  3. Extracting
//     - Convert the precedence order into proceed/wait decisions
//
//  4. Scoring
//     - Derive delay-reduction, throughput and confidence metrics
//
// Error Handling:
//
// Failure handling is layered:
//   - Model infeasible or budget exhausted → heuristic ordering, not an error
//   - Any unexpected stage failure → degraded fallback: a low-confidence
//     "proceed with caution" decision for every Running/Delayed train
//
// Optimize is total: the caller always receives a well-formed result, and
// degraded quality is communicated only through confidences and reasons.
//
// The engine is designed to be:
//   - Pure per call: one snapshot in, one result out, no shared mutable state
//   - Composable with dependency injection
//   - Observable with structured logging
package optimizer
