// Package core provides the domain model for the railway traffic precedence engine.
//
// This package contains the value types that represent the entities and
// relationships in a railway network snapshot:
//
//   - Station: stations with platform capacity and junction topology
//   - Section: track sections between stations, with speed and track limits
//   - Train: trains with type-derived priority and current placement
//   - Schedule: a train's planned stops and the sections between them
//   - Decision: a proceed/wait recommendation for a single train
//   - OptimizationResult: the full outcome of one optimization pass
//   - SystemState: an immutable snapshot of the whole network
//
// These types form the foundation for the precedence solver and are shared by
// every stage of the optimization pipeline.
//
// Example usage:
//
//	// Stations and the section connecting them
//	a := core.NewStation("Central", "CTL", 51.5074, -0.1278, 12, true)
//	b := core.NewStation("Harbour", "HBR", 51.5033, -0.0870, 4, false)
//	sec := core.NewSection(a, b, 12.5, 160, 2)
//
//	// Priority is derived from the train type, never supplied
//	t := core.NewTrain("IC204", "Coastal Express", core.TrainExpress, 160, 220)
//	t.CurrentSection = sec
//
//	state := core.NewSystemState([]*core.Train{t}, []*core.Section{sec}, []*core.Station{a, b})
//
// The core package is designed to be:
//   - Immutable per snapshot (the engine never mutates a SystemState)
//   - Type-safe with strong domain boundaries
//   - Independent of transport and persistence (pure domain logic)
package core
