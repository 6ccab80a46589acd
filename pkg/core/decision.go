/*
Copyright 2025 The RailOps Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package core

import (
	"time"

	"github.com/google/uuid"
)

// DecisionAction is the recommended action for a train.
type DecisionAction string

const (
	ActionProceed DecisionAction = "proceed"
	ActionWait    DecisionAction = "wait"

	// ActionReroute and ActionCross are reserved for future extensions.
	// The current engine never emits them.
	ActionReroute DecisionAction = "reroute"
	ActionCross   DecisionAction = "cross"
)

// Decision is a single precedence recommendation for one train.
type Decision struct {
	ID uuid.UUID `json:"id"`

	// Train is the train this decision applies to.
	Train *Train `json:"train"`

	// Action is the recommended action.
	Action DecisionAction `json:"action"`

	// TargetSection is set on proceed decisions: the section the train is
	// cleared into. Waiting trains have no clearance and no target.
	TargetSection *Section `json:"targetSection,omitempty"`

	// TargetStation is reserved for reroute/cross decisions.
	TargetStation *Station `json:"targetStation,omitempty"`

	// EstimatedTime is the estimated clock time for the action, when known
	// (e.g., the projected end of a wait).
	EstimatedTime *time.Time `json:"estimatedTime,omitempty"`

	// Reason explains the decision to the operator.
	Reason string `json:"reason"`

	// Confidence is the engine's confidence in this decision, in [0, 1].
	Confidence float64 `json:"confidence"`

	// Applied is owned by the caller; the engine never sets it.
	Applied bool `json:"applied"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewDecision creates a decision for a train with a fresh identity.
func NewDecision(train *Train, action DecisionAction, reason string, confidence float64) *Decision {
	return &Decision{
		ID:         uuid.New(),
		Train:      train,
		Action:     action,
		Reason:     reason,
		Confidence: confidence,
		CreatedAt:  time.Now().UTC(),
	}
}

// OptimizationResult is the outcome of one optimization pass.
type OptimizationResult struct {
	// Decisions holds one decision per train that needed one.
	Decisions []*Decision `json:"decisions"`

	// TotalDelayReduction is the estimated delay saved, in minutes.
	TotalDelayReduction int `json:"totalDelayReduction"`

	// ThroughputImprovement is the estimated throughput gain, in percent.
	ThroughputImprovement float64 `json:"throughputImprovement"`

	// ConfidenceScore is the aggregate confidence over all decisions, in [0, 1].
	ConfidenceScore float64 `json:"confidenceScore"`

	// ComputationTime is the wall-clock time of the pass, in seconds.
	ComputationTime float64 `json:"computationTime"`

	CreatedAt time.Time `json:"createdAt"`
}
