// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: turn a decoded Map into a core.Graph and back.
// Determinism: declarations are applied in file order.
package dataset

import "github.com/katalvlaran/citymap/core"

// Build creates a graph holding every valid declaration of m.
// opts are passed to core.NewGraph. Build never fails; ignored declarations
// are reported.
//
// Steps:
//  1. Add cities in file order. An empty name is counted as invalid; a
//     repeated name keeps its first position and is listed as a duplicate.
//  2. Add roads in file order. A road naming an unknown city, or joining a
//     city to itself, is skipped. A road repeating an existing connection is
//     counted as repeated (unless the graph allows parallel roads).
func (m *Map) Build(opts ...core.GraphOption) (*core.Graph, BuildReport) {
	g := core.NewGraph(opts...)
	var rep BuildReport

	// 1. Cities.
	for _, c := range m.Cities {
		if c.Name != "" && g.HasCity(c.Name) {
			rep.DuplicateCities = append(rep.DuplicateCities, c.Name)
			continue
		}
		if err := g.AddCity(c.Name, c.X, c.Y); err != nil {
			rep.InvalidCities++
			continue
		}
		rep.Cities++
	}

	// 2. Roads.
	for _, r := range m.Roads {
		road, ok := g.AddRoad(r.From, r.To)
		switch {
		case ok:
			rep.Roads++
		case road.ID != "":
			rep.RepeatedRoads++
		default:
			rep.SkippedRoads = append(rep.SkippedRoads, r)
		}
	}

	return g, rep
}

// FromGraph describes g as a Map: cities sorted by name, roads in creation
// order and orientation.
func FromGraph(name string, g *core.Graph) *Map {
	m := &Map{Name: name, Cities: []CitySpec{}, Roads: []RoadSpec{}}
	if g == nil {
		return m
	}
	for _, c := range g.Cities() {
		m.Cities = append(m.Cities, CitySpec{Name: c.Name, X: c.X, Y: c.Y})
	}
	for _, r := range g.Roads() {
		m.Roads = append(m.Roads, RoadSpec{From: r.From.Name, To: r.To.Name})
	}

	return m
}
