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

// Package scenario loads network snapshots from YAML scenario files. It is
// the file-based collaborator that builds the SystemState the engine
// consumes; production deployments build snapshots from live data instead.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/railops/railway-traffic-optimizer/internal/logging"
	"github.com/railops/railway-traffic-optimizer/pkg/core"
)

// StationSpec describes one station in a scenario file.
type StationSpec struct {
	Name       string  `yaml:"name"`
	Code       string  `yaml:"code"`
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
	Platforms  int     `yaml:"platforms"`
	IsJunction bool    `yaml:"isJunction,omitempty"`
}

// SectionSpec describes one section. Stations are referenced by code.
type SectionSpec struct {
	Name        string  `yaml:"name"`
	From        string  `yaml:"from"`
	To          string  `yaml:"to"`
	LengthKm    float64 `yaml:"lengthKm"`
	MaxSpeedKmh int     `yaml:"maxSpeedKmh"`
	Tracks      int     `yaml:"tracks"`
	Status      string  `yaml:"status,omitempty"`
}

// TrainSpec describes one train. Placement references a section by name or
// a station by code.
type TrainSpec struct {
	Number       string `yaml:"number"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	MaxSpeedKmh  int    `yaml:"maxSpeedKmh"`
	LengthM      int    `yaml:"lengthM"`
	Status       string `yaml:"status,omitempty"`
	DelayMinutes int    `yaml:"delayMinutes,omitempty"`
	Section      string `yaml:"section,omitempty"`
	Station      string `yaml:"station,omitempty"`
}

// Scenario is the YAML schema for a network snapshot.
type Scenario struct {
	Stations []StationSpec `yaml:"stations"`
	Sections []SectionSpec `yaml:"sections"`
	Trains   []TrainSpec   `yaml:"trains"`
}

// Validate checks cross-references and value ranges.
func (s *Scenario) Validate() error {
	codes := make(map[string]bool, len(s.Stations))
	for _, st := range s.Stations {
		if st.Code == "" {
			return fmt.Errorf("station %q has no code", st.Name)
		}
		if codes[st.Code] {
			return fmt.Errorf("duplicate station code %q", st.Code)
		}
		codes[st.Code] = true
	}

	names := make(map[string]bool, len(s.Sections))
	for _, sec := range s.Sections {
		if !codes[sec.From] || !codes[sec.To] {
			return fmt.Errorf("section %q references unknown station (%q -> %q)", sec.Name, sec.From, sec.To)
		}
		if sec.Tracks < 1 {
			return fmt.Errorf("section %q must have at least one track, got %d", sec.Name, sec.Tracks)
		}
		if names[sec.Name] {
			return fmt.Errorf("duplicate section name %q", sec.Name)
		}
		names[sec.Name] = true
	}

	numbers := make(map[string]bool, len(s.Trains))
	for _, t := range s.Trains {
		if t.Number == "" {
			return fmt.Errorf("train %q has no number", t.Name)
		}
		if numbers[t.Number] {
			return fmt.Errorf("duplicate train number %q", t.Number)
		}
		numbers[t.Number] = true
		if t.Section != "" && !names[t.Section] {
			return fmt.Errorf("train %q references unknown section %q", t.Number, t.Section)
		}
		if t.Station != "" && !codes[t.Station] {
			return fmt.Errorf("train %q references unknown station %q", t.Number, t.Station)
		}
		if t.DelayMinutes < 0 {
			return fmt.Errorf("train %q has negative delay %d", t.Number, t.DelayMinutes)
		}
	}
	return nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

// LoadFile reads a scenario file and builds the snapshot it describes.
func LoadFile(path string) (*core.SystemState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return s.Build()
}

// Build materializes the scenario into a SystemState, resolving station
// codes and section names and registering each placed train as an occupant
// of its section.
func (s *Scenario) Build() (*core.SystemState, error) {
	stations := make([]*core.Station, 0, len(s.Stations))
	byCode := make(map[string]*core.Station, len(s.Stations))
	for _, spec := range s.Stations {
		st := core.NewStation(spec.Name, spec.Code, spec.Latitude, spec.Longitude, spec.Platforms, spec.IsJunction)
		stations = append(stations, st)
		byCode[spec.Code] = st
	}

	sections := make([]*core.Section, 0, len(s.Sections))
	byName := make(map[string]*core.Section, len(s.Sections))
	for _, spec := range s.Sections {
		sec := core.NewSection(byCode[spec.From], byCode[spec.To], spec.LengthKm, spec.MaxSpeedKmh, spec.Tracks)
		if spec.Status != "" {
			sec.Status = core.SectionStatus(spec.Status)
		}
		sections = append(sections, sec)
		byName[spec.Name] = sec
	}

	trains := make([]*core.Train, 0, len(s.Trains))
	for _, spec := range s.Trains {
		t := core.NewTrain(spec.Number, spec.Name, core.TrainType(spec.Type), spec.MaxSpeedKmh, spec.LengthM)
		if spec.Status != "" {
			t.Status = core.TrainStatus(spec.Status)
		}
		t.DelayMinutes = spec.DelayMinutes
		if spec.Section != "" {
			sec := byName[spec.Section]
			t.CurrentSection = sec
			sec.CurrentTrains = append(sec.CurrentTrains, t)
		}
		if spec.Station != "" {
			t.CurrentStation = byCode[spec.Station]
		}
		trains = append(trains, t)
	}

	state := core.NewSystemState(trains, sections, stations)

	logging.Log.V(logging.DEBUG).Info("scenario built",
		"stations", len(stations),
		"sections", len(sections),
		"trains", len(trains))

	return state, nil
}
