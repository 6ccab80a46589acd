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

// TrainType classifies a train service. The type determines the train's
// precedence priority.
type TrainType string

const (
	// TrainSpecial is a special service (royal, relief, inspection). Highest priority.
	TrainSpecial TrainType = "special"
	// TrainExpress is a long-distance express service.
	TrainExpress TrainType = "express"
	// TrainPassenger is a regular stopping passenger service.
	TrainPassenger TrainType = "passenger"
	// TrainFreight is a freight service. Lowest priority.
	TrainFreight TrainType = "freight"
)

// TrainStatus represents the operational state of a train.
type TrainStatus string

const (
	StatusOnTime    TrainStatus = "on_time"
	StatusDelayed   TrainStatus = "delayed"
	StatusCancelled TrainStatus = "cancelled"
	StatusRunning   TrainStatus = "running"
	StatusStopped   TrainStatus = "stopped"
)

// Priority levels derived from train type.
const (
	PrioritySpecial   = 4
	PriorityExpress   = 3
	PriorityPassenger = 2
	PriorityFreight   = 1
)

// PriorityForType returns the precedence priority for a train type.
// Unknown types get freight priority.
func PriorityForType(t TrainType) int {
	switch t {
	case TrainSpecial:
		return PrioritySpecial
	case TrainExpress:
		return PriorityExpress
	case TrainPassenger:
		return PriorityPassenger
	case TrainFreight:
		return PriorityFreight
	default:
		return PriorityFreight
	}
}

// Train represents a train and its current placement in the network.
//
// Priority is derived from Type at construction and is deliberately not a
// NewTrain parameter: a train can never carry a priority inconsistent with
// its type.
type Train struct {
	// ID uniquely identifies the train within a snapshot.
	ID uuid.UUID `json:"id"`

	// Number is the operating number (e.g., "IC204"). Unique per snapshot.
	Number string `json:"number"`

	// Name is the human-readable service name.
	Name string `json:"name"`

	// Type classifies the service and determines Priority.
	Type TrainType `json:"type"`

	// MaxSpeedKmh is the maximum speed the rolling stock can run at.
	MaxSpeedKmh int `json:"maxSpeedKmh"`

	// LengthM is the train length in metres.
	LengthM int `json:"lengthM"`

	// CurrentSection is the section the train currently occupies, if any.
	CurrentSection *Section `json:"currentSection,omitempty"`

	// CurrentStation is the station the train is currently at, if any.
	CurrentStation *Station `json:"currentStation,omitempty"`

	// Status is the operational state of the train.
	Status TrainStatus `json:"status"`

	// ScheduledDeparture and ActualDeparture bound the departure delay.
	ScheduledDeparture *time.Time `json:"scheduledDeparture,omitempty"`
	ActualDeparture    *time.Time `json:"actualDeparture,omitempty"`

	// ScheduledArrival is the timetabled arrival at the next stop.
	ScheduledArrival *time.Time `json:"scheduledArrival,omitempty"`
	ActualArrival    *time.Time `json:"actualArrival,omitempty"`

	// DelayMinutes is the current delay against the timetable.
	DelayMinutes int `json:"delayMinutes"`

	// Priority is the precedence priority derived from Type. Higher wins.
	Priority int `json:"priority"`
}

// NewTrain creates a train with its priority derived from the train type.
func NewTrain(number, name string, trainType TrainType, maxSpeedKmh, lengthM int) *Train {
	return &Train{
		ID:          uuid.New(),
		Number:      number,
		Name:        name,
		Type:        trainType,
		MaxSpeedKmh: maxSpeedKmh,
		LengthM:     lengthM,
		Status:      StatusOnTime,
		Priority:    PriorityForType(trainType),
	}
}

// IsDelayed reports whether the train is currently behind its timetable.
func (t *Train) IsDelayed() bool {
	return t.DelayMinutes > 0
}

// EstimatedArrival returns the scheduled arrival shifted by the current
// delay, or nil if no arrival is scheduled.
func (t *Train) EstimatedArrival() *time.Time {
	if t.ScheduledArrival == nil {
		return nil
	}
	est := t.ScheduledArrival.Add(time.Duration(t.DelayMinutes) * time.Minute)
	return &est
}

// DepartureDelay computes the departure delay in whole minutes from the
// scheduled and actual departure times. Returns 0 when either is unset or
// the train left early.
func (t *Train) DepartureDelay() int {
	if t.ScheduledDeparture == nil || t.ActualDeparture == nil {
		return 0
	}
	delay := int(t.ActualDeparture.Sub(*t.ScheduledDeparture).Minutes())
	if delay < 0 {
		return 0
	}
	return delay
}
