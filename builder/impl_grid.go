// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// impl_grid.go - rows×cols grid of cities joined by 4-neighbourhood roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

// Grid places rows×cols cities in row-major order, city i at
// (col*spacing, row*spacing), and joins each city to its right and lower
// neighbour. rows, cols ≥ 1.
//
// Road order: for each city in row-major order, right road first, then down.
// Complexity: O(R*C) cities + O(2*R*C) roads.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return wrapf(MethodGrid, fmt.Sprintf("rows=%d cols=%d", rows, cols), ErrTooFewCities)
		}

		names := make([]string, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				name, err := cfg.place(g, MethodGrid, i, c*cfg.spacing, r*cfg.spacing)
				if err != nil {
					return err
				}
				names[i] = name
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					g.AddRoad(names[i], names[i+1])
				}
				if r+1 < rows {
					g.AddRoad(names[i], names[i+cols])
				}
			}
		}

		return nil
	}
}
