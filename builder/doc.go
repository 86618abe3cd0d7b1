// Package builder generates synthetic city maps for tests, benchmarks and
// demos.
//
// A map is assembled by BuildMap from one or more Constructors:
//
//	g, err := builder.BuildMap(nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithSpacing(25)},
//		builder.RandomSparse(200, 300),
//	)
//
// Constructors:
//
//	Grid(rows, cols)         rows×cols lattice, 4-neighbourhood roads
//	Ring(n)                  n cities on a circle, consecutive roads (C_n)
//	Star(n)                  hub plus n-1 spokes
//	RandomSparse(n, extra)   random connected map (needs WithSeed/WithRand)
//
// Options:
//
//	WithNameScheme(fn)  index -> city name (default "C0", "C1", ...)
//	WithSeed(s)         deterministic RNG
//	WithRand(r)         explicit RNG
//	WithSpacing(d)      layout unit (default 10)
//	WithOrigin(x, y)    shift every placed city
//
// Composing constructors on one graph requires distinct names: use
// WithNameScheme, or build separately. A repeated name keeps the first
// position (core.Graph semantics), so roads of the later constructor attach
// to the earlier city.
//
// Errors: ErrTooFewCities, ErrNeedRandSource, ErrConstructFailed, always
// wrapped with the constructor name. Option constructors panic on
// meaningless input (nil functions, spacing < 1).
package builder
