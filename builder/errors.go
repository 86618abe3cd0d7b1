// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewCities indicates that a size parameter (n, rows, cols) is smaller
// than the minimum for the requested constructor.
var ErrTooFewCities = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the store rejected a city or road the
// constructor had to place (e.g. an empty name from a custom name scheme).
var ErrConstructFailed = errors.New("builder: construction failed")

// Method names used as error context.
const (
	MethodGrid         = "Grid"
	MethodRing         = "Ring"
	MethodStar         = "Star"
	MethodRandomSparse = "RandomSparse"
)

// wrapf adds "<method>: <what>: " context to err.
func wrapf(method, what string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, what, err)
}
