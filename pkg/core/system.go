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

// SystemState is an instantaneous snapshot of the railway network. The
// engine treats it as read-only input; callers build a fresh snapshot per
// optimization pass.
type SystemState struct {
	// Timestamp is when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	Trains   []*Train   `json:"trains"`
	Sections []*Section `json:"sections"`
	Stations []*Station `json:"stations"`

	// ActiveDecisions are decisions issued earlier but not yet applied.
	ActiveDecisions []*Decision `json:"activeDecisions,omitempty"`
}

// NewSystemState creates a snapshot timestamped now.
func NewSystemState(trains []*Train, sections []*Section, stations []*Station) *SystemState {
	return &SystemState{
		Timestamp: time.Now().UTC(),
		Trains:    trains,
		Sections:  sections,
		Stations:  stations,
	}
}

// TrainByID returns the train with the given identity, or nil.
func (s *SystemState) TrainByID(id uuid.UUID) *Train {
	for _, t := range s.Trains {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// SectionByID returns the section with the given identity, or nil.
func (s *SystemState) SectionByID(id uuid.UUID) *Section {
	for _, sec := range s.Sections {
		if sec.ID == id {
			return sec
		}
	}
	return nil
}

// StationByID returns the station with the given identity, or nil.
func (s *SystemState) StationByID(id uuid.UUID) *Station {
	for _, st := range s.Stations {
		if st.ID == id {
			return st
		}
	}
	return nil
}
