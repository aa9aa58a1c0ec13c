// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_grid.go — rectangular 4-neighbourhood lattice.
//
// Vertex IDs are "r,c" (row, column), independent of cfg.idFn, so callers
// can address cells directly. Vertices are registered row-major; for each
// cell the right edge is emitted before the down edge.

package builder

import "strconv"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID returns the vertex ID Grid assigns to cell (r, c).
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor for a rows×cols lattice. Requires rows ≥ 1 and
// cols ≥ 1.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(GridID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					connect(g, cfg, GridID(r, c), GridID(r, c+1))
				}
				if r+1 < rows {
					connect(g, cfg, GridID(r, c), GridID(r+1, c))
				}
			}
		}

		return nil
	}
}
