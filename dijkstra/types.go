// SPDX-License-Identifier: MIT
//
// Package dijkstra defines the result value and options of the shortest-path
// solver.
//
// Options:
//
//	– MaxDistance: optional cap on distances to explore; cities beyond it are
//	  reported as unreached.
//
// There are no error returns: an unknown start or end city, a nil graph or an
// unreachable target all produce an empty Path whose Distance is Unreached.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/citymap/core"
)

// Unreached is the distance reported for a city the search never reached.
// Callers must test for it (Path.Reached, math.IsInf) instead of trusting a
// zero default.
var Unreached = math.Inf(1)

// ErrBadMaxDistance is the panic value of WithMaxDistance for a negative or NaN cap.
var ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

// Path is the immutable result of a single-pair query.
//
// Roads lists the traversed records in travel order: Roads[0].From is Start,
// Roads[len-1].To is End and each record starts where the previous one ends.
// Distance is the sum of their weights, 0 when Start == End, Unreached when
// no path exists.
type Path struct {
	Start    string
	End      string
	Roads    []core.Road
	Distance float64
}

// Reached reports whether End was reached from Start.
func (p Path) Reached() bool {
	return !math.IsInf(p.Distance, 1)
}

// Cities returns the names of the cities visited along the path, Start first.
// An unreached path yields nil; a zero-length path yields just Start.
func (p Path) Cities() []string {
	if !p.Reached() {
		return nil
	}
	out := make([]string, 0, len(p.Roads)+1)
	out = append(out, p.Start)
	for _, r := range p.Roads {
		out = append(out, r.To.Name)
	}

	return out
}

// Options configures the behavior of the solver.
//
// MaxDistance – cities whose shortest distance would exceed this value are
// not explored. Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Passing a negative value or NaN panics with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early, like a bad literal.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
