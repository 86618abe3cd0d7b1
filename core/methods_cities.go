// SPDX-License-Identifier: MIT
//
// File: methods_cities.go
// Role: City insertion and enumeration: AddCity/HasCity/City/CityNames/Cities/
//       CityCount, plus the Bounds() helper used to fit a view to the map.
// Determinism:
//   - CityNames() and Cities() are sorted by name ascending.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"sort"

	"github.com/paulmach/orb"
)

// AddCity inserts a city named name at (x, y) if no city with that name exists.
//
// Steps:
//  1. Reject the empty name with ErrEmptyCityName.
//  2. Under the write lock, return early if name is already present
//     (first write wins: the original position is kept).
//  3. Register the city and an empty adjacency entry.
//
// Complexity: O(1) amortized.
func (g *Graph) AddCity(name string, x, y int) error {
	if name == "" {
		return ErrEmptyCityName
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.cities[name]; exists {
		return nil
	}
	g.cities[name] = City{Name: name, X: x, Y: y}
	g.adjacency[name] = []Road{}

	return nil
}

// HasCity reports whether a city with the given name exists.
// Complexity: O(1).
func (g *Graph) HasCity(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.cities[name]

	return ok
}

// City returns the city stored under name and whether it was found.
// Complexity: O(1).
func (g *Graph) City(name string) (City, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.cities[name]

	return c, ok
}

// CityNames returns all city names in lexicographic order.
//
// The order is part of the contract: callers seed selection lists with it, and
// the MST solver roots its tree at the first name.
// Complexity: O(V log V).
func (g *Graph) CityNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedNames()
}

// Cities returns a snapshot of every city, sorted by name.
// Complexity: O(V log V).
func (g *Graph) Cities() []City {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := g.sortedNames()
	out := make([]City, len(names))
	for i, name := range names {
		out[i] = g.cities[name]
	}

	return out
}

// CityCount returns the number of cities.
// Complexity: O(1).
func (g *Graph) CityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.cities)
}

// Bounds returns the smallest axis-aligned box containing every city.
// An empty graph yields the zero orb.Bound.
// Complexity: O(V).
func (g *Graph) Bounds() orb.Bound {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.cities) == 0 {
		return orb.Bound{}
	}
	points := make(orb.MultiPoint, 0, len(g.cities))
	for _, c := range g.cities {
		points = append(points, c.Point())
	}

	return points.Bound()
}

// sortedNames returns the city names in ascending order.
// Caller must hold mu.
func (g *Graph) sortedNames() []string {
	names := make([]string, 0, len(g.cities))
	for name := range g.cities {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
