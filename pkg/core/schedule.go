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

// Schedule is a train's planned calling pattern: the ordered stations it
// serves, the timings at each, and the sections travelled between them.
type Schedule struct {
	ID uuid.UUID `json:"id"`

	Train *Train `json:"train"`

	// Stations are the calling points in order.
	Stations []*Station `json:"stations"`

	// ArrivalTimes and DepartureTimes are index-aligned with Stations.
	ArrivalTimes   []time.Time `json:"arrivalTimes"`
	DepartureTimes []time.Time `json:"departureTimes"`

	// SectionSequence are the sections travelled, in running order.
	SectionSequence []*Section `json:"sectionSequence"`
}

// NewSchedule creates a schedule for a train with a fresh identity.
func NewSchedule(train *Train, stations []*Station, arrivals, departures []time.Time, sections []*Section) *Schedule {
	return &Schedule{
		ID:              uuid.New(),
		Train:           train,
		Stations:        stations,
		ArrivalTimes:    arrivals,
		DepartureTimes:  departures,
		SectionSequence: sections,
	}
}

// NextStation returns the calling point after the given station, or nil if
// the station is the terminus or not on the schedule.
func (s *Schedule) NextStation(current *Station) *Station {
	for i, st := range s.Stations {
		if st.ID == current.ID {
			if i < len(s.Stations)-1 {
				return s.Stations[i+1]
			}
			return nil
		}
	}
	return nil
}

// SectionToNextStation returns the section connecting the given station to
// the next calling point, or nil if there is none.
func (s *Schedule) SectionToNextStation(current *Station) *Section {
	next := s.NextStation(current)
	if next == nil {
		return nil
	}
	for _, sec := range s.SectionSequence {
		if sec.FromStation != nil && sec.ToStation != nil &&
			sec.FromStation.ID == current.ID && sec.ToStation.ID == next.ID {
			return sec
		}
	}
	return nil
}
