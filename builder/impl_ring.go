// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// impl_ring.go - cities on a circle (Ring) and hub-and-spoke (Star) layouts.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/citymap/core"
)

// circlePoint returns the rounded position of slot i of n on a circle whose
// neighbouring slots are about spacing apart.
func circlePoint(i, n, spacing int) (int, int) {
	radius := float64(n*spacing) / (2 * math.Pi)
	angle := 2 * math.Pi * float64(i) / float64(n)

	return int(math.Round(radius * math.Cos(angle))), int(math.Round(radius * math.Sin(angle)))
}

// Ring places n cities on a circle and joins consecutive ones, closing the
// loop (C_n). n ≥ 3.
//
// Road order: (0,1), (1,2), …, (n-1,0).
// Complexity: O(n) cities + O(n) roads.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 3 {
			return wrapf(MethodRing, fmt.Sprintf("n=%d", n), ErrTooFewCities)
		}
		names := make([]string, n)
		for i := 0; i < n; i++ {
			x, y := circlePoint(i, n, cfg.spacing)
			name, err := cfg.place(g, MethodRing, i, x, y)
			if err != nil {
				return err
			}
			names[i] = name
		}
		for i := 0; i < n; i++ {
			g.AddRoad(names[i], names[(i+1)%n])
		}

		return nil
	}
}

// Star places a hub at the origin (index 0) and n-1 cities on a circle
// around it, each joined to the hub only. n ≥ 2.
//
// Road order: (0,1), (0,2), …, (0,n-1).
// Complexity: O(n) cities + O(n-1) roads.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return wrapf(MethodStar, fmt.Sprintf("n=%d", n), ErrTooFewCities)
		}
		hub, err := cfg.place(g, MethodStar, 0, 0, 0)
		if err != nil {
			return err
		}
		leaves := n - 1
		for i := 1; i < n; i++ {
			// Keep leaves at least one spacing away from the hub.
			x, y := circlePoint(i-1, max(leaves, 7), cfg.spacing)
			name, err := cfg.place(g, MethodStar, i, x, y)
			if err != nil {
				return err
			}
			g.AddRoad(hub, name)
		}

		return nil
	}
}
