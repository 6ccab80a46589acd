package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railops/railway-traffic-optimizer/pkg/core"
)

const fixture = `
stations:
  - name: Central
    code: CTL
    latitude: 51.5074
    longitude: -0.1278
    platforms: 12
    isJunction: true
  - name: Harbour
    code: HBR
    latitude: 51.5033
    longitude: -0.0870
    platforms: 4
sections:
  - name: ctl-hbr
    from: CTL
    to: HBR
    lengthKm: 12.5
    maxSpeedKmh: 160
    tracks: 1
trains:
  - number: IC204
    name: Coastal Express
    type: express
    maxSpeedKmh: 160
    lengthM: 220
    status: running
    section: ctl-hbr
  - number: GF310
    name: Harbour Freight
    type: freight
    maxSpeedKmh: 90
    lengthM: 650
    status: delayed
    delayMinutes: 35
    section: ctl-hbr
  - number: LP115
    name: Local
    type: passenger
    maxSpeedKmh: 120
    lengthM: 140
    station: CTL
`

func TestParseAndBuild(t *testing.T) {
	s, err := Parse([]byte(fixture))
	require.NoError(t, err)

	state, err := s.Build()
	require.NoError(t, err)

	require.Len(t, state.Stations, 2)
	require.Len(t, state.Sections, 1)
	require.Len(t, state.Trains, 3)

	sec := state.Sections[0]
	assert.Equal(t, "CTL", sec.FromStation.Code)
	assert.Equal(t, "HBR", sec.ToStation.Code)
	assert.Equal(t, 1, sec.Tracks)
	assert.Len(t, sec.CurrentTrains, 2, "both placed trains registered as occupants")

	var express, freight, local *core.Train
	for _, tr := range state.Trains {
		switch tr.Number {
		case "IC204":
			express = tr
		case "GF310":
			freight = tr
		case "LP115":
			local = tr
		}
	}
	require.NotNil(t, express)
	require.NotNil(t, freight)
	require.NotNil(t, local)

	assert.Equal(t, core.StatusRunning, express.Status)
	assert.Equal(t, 3, express.Priority, "priority derived from type, not from the file")
	assert.Equal(t, sec, express.CurrentSection)

	assert.Equal(t, core.StatusDelayed, freight.Status)
	assert.Equal(t, 35, freight.DelayMinutes)
	assert.Equal(t, 1, freight.Priority)

	assert.Nil(t, local.CurrentSection)
	assert.Equal(t, "CTL", local.CurrentStation.Code)
}

func TestParseRejectsBadScenarios(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown station reference",
			yaml: `
stations:
  - {name: A, code: AAA, platforms: 2}
sections:
  - {name: s1, from: AAA, to: ZZZ, lengthKm: 1, maxSpeedKmh: 100, tracks: 1}
`,
		},
		{
			name: "duplicate station code",
			yaml: `
stations:
  - {name: A, code: AAA, platforms: 2}
  - {name: B, code: AAA, platforms: 2}
`,
		},
		{
			name: "zero tracks",
			yaml: `
stations:
  - {name: A, code: AAA, platforms: 2}
  - {name: B, code: BBB, platforms: 2}
sections:
  - {name: s1, from: AAA, to: BBB, lengthKm: 1, maxSpeedKmh: 100, tracks: 0}
`,
		},
		{
			name: "train on unknown section",
			yaml: `
stations:
  - {name: A, code: AAA, platforms: 2}
trains:
  - {number: T1, name: t, type: passenger, maxSpeedKmh: 100, lengthM: 100, section: nope}
`,
		},
		{
			name: "duplicate train number",
			yaml: `
trains:
  - {number: T1, name: t, type: passenger, maxSpeedKmh: 100, lengthM: 100}
  - {number: T1, name: u, type: freight, maxSpeedKmh: 80, lengthM: 500}
`,
		},
		{
			name: "negative delay",
			yaml: `
trains:
  - {number: T1, name: t, type: passenger, maxSpeedKmh: 100, lengthM: 100, delayMinutes: -4}
`,
		},
		{
			name: "not yaml",
			yaml: `{{{`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	state, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, state.Trains, 3)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
