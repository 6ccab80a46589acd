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

import "github.com/google/uuid"

// Station represents a railway station. Reference data for the engine;
// created and maintained by external collaborators.
type Station struct {
	ID uuid.UUID `json:"id"`

	// Name is the full station name.
	Name string `json:"name"`

	// Code is the unique short code (e.g., "CTL").
	Code string `json:"code"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Platforms is the number of platforms at the station.
	Platforms int `json:"platforms"`

	// IsJunction marks stations where lines diverge.
	IsJunction bool `json:"isJunction"`
}

// NewStation creates a station with a fresh identity.
func NewStation(name, code string, lat, lon float64, platforms int, junction bool) *Station {
	return &Station{
		ID:         uuid.New(),
		Name:       name,
		Code:       code,
		Latitude:   lat,
		Longitude:  lon,
		Platforms:  platforms,
		IsJunction: junction,
	}
}

// SectionStatus represents the availability of a track section.
type SectionStatus string

const (
	SectionAvailable   SectionStatus = "available"
	SectionOccupied    SectionStatus = "occupied"
	SectionMaintenance SectionStatus = "maintenance"
	SectionBlocked     SectionStatus = "blocked"
)

// Section represents a directed track section between two stations.
type Section struct {
	ID uuid.UUID `json:"id"`

	// FromStation and ToStation are the section endpoints.
	FromStation *Station `json:"fromStation"`
	ToStation   *Station `json:"toStation"`

	// LengthKm is the section length in kilometres.
	LengthKm float64 `json:"lengthKm"`

	// MaxSpeedKmh is the line speed limit on this section.
	MaxSpeedKmh int `json:"maxSpeedKmh"`

	// Tracks is the number of parallel tracks, i.e. the section capacity.
	Tracks int `json:"tracks"`

	// Status is the current availability of the section.
	Status SectionStatus `json:"status"`

	// CurrentTrains are the trains occupying the section right now.
	CurrentTrains []*Train `json:"currentTrains,omitempty"`
}

// NewSection creates an available section between two stations.
func NewSection(from, to *Station, lengthKm float64, maxSpeedKmh, tracks int) *Section {
	return &Section{
		ID:          uuid.New(),
		FromStation: from,
		ToStation:   to,
		LengthKm:    lengthKm,
		MaxSpeedKmh: maxSpeedKmh,
		Tracks:      tracks,
		Status:      SectionAvailable,
	}
}

// IsAvailable reports whether the section has spare track capacity.
func (s *Section) IsAvailable() bool {
	return s.Status == SectionAvailable && len(s.CurrentTrains) < s.Tracks
}

// CanAccommodate reports whether the section can take the given train:
// spare capacity and the train not exceeding the line speed.
func (s *Section) CanAccommodate(t *Train) bool {
	return s.IsAvailable() && t.MaxSpeedKmh <= s.MaxSpeedKmh
}
