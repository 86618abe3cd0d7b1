// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: City, Road and Graph declarations, graph options, sentinel errors
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyCityName - city name is the empty string.
package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrEmptyCityName indicates that AddCity was called with an empty name.
var ErrEmptyCityName = errors.New("core: city name is empty")

// City is a labeled, positioned node of the map.
//
// Name is the case-sensitive identity of the city within its Graph.
// X and Y are integer map coordinates; they never change after insertion.
type City struct {
	Name string
	X    int
	Y    int
}

// Point returns the city position as a planar point.
func (c City) Point() orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}

// DistanceTo returns the Euclidean distance between c and other.
func (c City) DistanceTo(other City) float64 {
	return planar.Distance(c.Point(), other.Point())
}

// Road is one direction of travel From → To between two cities.
//
// An undirected connection is stored as two Road records, one in the
// adjacency of each endpoint. Both records carry the same ID, which is the
// canonical identity of the connection: Roads() and the MST solver rely on it
// to count a connection once.
//
// Weight is the Euclidean distance between the endpoint positions. It is
// computed once, when the connection is created, and is never negative.
type Road struct {
	// ID is shared by the two directional records of one connection ("r1", "r2", ...).
	ID string

	// From is the city this record leaves.
	From City

	// To is the city this record arrives at.
	To City

	// Weight is the travel cost of the road.
	Weight float64
}

// Reverse returns the record describing the opposite direction of travel.
func (r Road) Reverse() Road {
	return Road{ID: r.ID, From: r.To, To: r.From, Weight: r.Weight}
}

// Connects reports whether r joins a and b, in either direction.
func (r Road) Connects(a, b string) bool {
	return (r.From.Name == a && r.To.Name == b) || (r.From.Name == b && r.To.Name == a)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithParallelRoads lets AddRoad create a second connection between an
// already connected pair of cities. Each call then produces its own pair of
// records with a fresh ID, and Roads() lists every one of them.
//
// Without it, AddRoad on a connected pair is a no-op that returns the
// existing record.
func WithParallelRoads() GraphOption {
	return func(g *Graph) { g.allowParallel = true }
}

// Graph is the in-memory city map: cities keyed by name plus, for every city,
// the ordered list of road records leaving it.
//
// The store is insert-only. mu guards every map, so concurrent use never
// races; the intended lifecycle is still "populate once, then query".
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowParallel bool

	// Storage
	nextRoadID uint64            // atomic road ID generator
	cities     map[string]City   // name → City
	adjacency  map[string][]Road // name → outgoing records, insertion order
	origin     map[string]string // road ID → name of the city passed first to AddRoad
}

// NewGraph creates an empty Graph with the given options.
// By default parallel roads are collapsed into the first connection.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		cities:    make(map[string]City),
		adjacency: make(map[string][]Road),
		origin:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// ParallelRoads reports whether the graph was built with WithParallelRoads.
func (g *Graph) ParallelRoads() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowParallel
}
