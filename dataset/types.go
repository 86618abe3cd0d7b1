// SPDX-License-Identifier: MIT
//
// Package dataset defines the on-disk description of a city map and the
// sentinel errors of its decoders.
package dataset

import "errors"

// Sentinel errors.
var (
	// ErrUnsupportedFormat indicates a map file whose extension is neither
	// .hcl nor .toml.
	ErrUnsupportedFormat = errors.New("dataset: unsupported map format")

	// ErrDecode wraps HCL or TOML syntax and schema failures.
	ErrDecode = errors.New("dataset: cannot decode map")
)

// Supported file formats, by extension.
const (
	FormatHCL  = ".hcl"
	FormatTOML = ".toml"
)

// CitySpec declares one city.
//
//	city "Oakland" { ... }     # HCL
//	[[city]] name = "Oakland"  # TOML
type CitySpec struct {
	Name string `hcl:"name,label" toml:"name"`
	X    int    `hcl:"x" toml:"x"`
	Y    int    `hcl:"y" toml:"y"`
}

// RoadSpec declares one undirected road between two named cities.
type RoadSpec struct {
	From string `hcl:"from,label" toml:"from"`
	To   string `hcl:"to,label" toml:"to"`
}

// Map is a decoded map file. Order of Cities and Roads is file order.
type Map struct {
	Name   string     `hcl:"name,optional" toml:"name,omitempty"`
	Cities []CitySpec `hcl:"city,block" toml:"city"`
	Roads  []RoadSpec `hcl:"road,block" toml:"road"`
}

// BuildReport summarizes what Map.Build did with each declaration.
// Build never fails: declarations the graph store ignores are counted here.
type BuildReport struct {
	Cities          int        // cities added
	Roads           int        // roads added
	DuplicateCities []string   // names declared more than once; first position wins
	InvalidCities   int        // cities with an empty name
	SkippedRoads    []RoadSpec // roads naming an unknown city, or a loop
	RepeatedRoads   int        // roads collapsed onto an existing connection
}

// Clean reports whether every declaration made it into the graph unchanged.
func (r BuildReport) Clean() bool {
	return len(r.DuplicateCities) == 0 && r.InvalidCities == 0 &&
		len(r.SkippedRoads) == 0 && r.RepeatedRoads == 0
}
