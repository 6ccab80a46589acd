// Package metrics derives the reported delay-reduction, throughput and
// confidence figures from a decision set.
package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/railops/railway-traffic-optimizer/pkg/core"
)

const (
	// maxCreditedDelayReduction caps the delay reduction credited to a
	// single proceeding train, in minutes.
	maxCreditedDelayReduction = 10

	// throughputScalePercent is the throughput improvement when every
	// decision is a proceed.
	throughputScalePercent = 20.0

	// confidenceSaturationTrains is the system size at which the
	// small-sample confidence discount saturates.
	confidenceSaturationTrains = 20.0
)

// DelayReduction estimates the delay saved by the decision set, in minutes.
// Each proceeding train that is currently delayed credits at most
// maxCreditedDelayReduction minutes.
func DelayReduction(decisions []*core.Decision) int {
	total := 0
	for _, d := range decisions {
		if d.Action != core.ActionProceed || d.Train == nil || !d.Train.IsDelayed() {
			continue
		}
		credit := d.Train.DelayMinutes
		if credit > maxCreditedDelayReduction {
			credit = maxCreditedDelayReduction
		}
		total += credit
	}
	return total
}

// ThroughputImprovement estimates the throughput gain as a percentage:
// the proceed fraction scaled to throughputScalePercent. Zero decisions
// yield 0.
func ThroughputImprovement(decisions []*core.Decision) float64 {
	if len(decisions) == 0 {
		return 0.0
	}
	proceeds := 0
	for _, d := range decisions {
		if d.Action == core.ActionProceed {
			proceeds++
		}
	}
	return float64(proceeds) / float64(len(decisions)) * throughputScalePercent
}

// ConfidenceScore aggregates individual decision confidences into one score.
// The mean confidence is discounted for small systems: with fewer than
// confidenceSaturationTrains trains in the snapshot the sample is treated as
// less reliable. Zero decisions are vacuously certain.
func ConfidenceScore(decisions []*core.Decision, state *core.SystemState) float64 {
	if len(decisions) == 0 {
		return 1.0
	}

	confidences := make([]float64, len(decisions))
	for i, d := range decisions {
		confidences[i] = d.Confidence
	}
	mean := stat.Mean(confidences, nil)

	discount := float64(len(state.Trains)) / confidenceSaturationTrains
	if discount > 1.0 {
		discount = 1.0
	}
	return mean * discount
}
