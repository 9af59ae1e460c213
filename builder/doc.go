// Package builder generates synthetic road networks as roadgraph.Dataset
// values, for tests, benchmarks and demos.
//
// One orchestrator composes constructors under functional options:
//
//	ds, err := builder.BuildDataset(
//		[]builder.Option{builder.WithSeed(7), builder.WithDropRate(0.1),
//			builder.WithSpeedFn(builder.UniformSpeed(5, 30))},
//		builder.Grid(20, 20),
//	)
//
// Constructors:
//
//   - Grid(rows, cols): a street grid, two-way blocks to the right and below
//     each intersection.
//   - Corridor(n): a single two-way road through n intersections.
//
// Geometry: intersections start at the origin (WithOrigin) and step by
// WithSpacing degrees, optionally jittered (WithJitter). Each directed edge
// gets Distance = great-circle metres and TravelTime = Distance / speed,
// with speed drawn from the SpeedFn per direction.
//
// Determinism: same options, seed and constructor order give identical
// datasets. Node ids continue across constructors, so several networks can
// share one dataset; the networks are not linked to each other.
//
// Option constructors panic on meaningless input (negative spacing, drop
// rate outside [0,1]); constructors return sentinel errors and never panic.
package builder
