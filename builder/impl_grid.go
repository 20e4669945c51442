package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/mstree/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// gridID renders a cell coordinate as "r,c".
func gridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor for a rows×cols 4-neighbourhood grid with
// vertex IDs "r,c" (cfg.idFn is not used). Vertices are added row-major;
// edges are emitted per cell as right neighbour then down neighbour.
//
// Complexity: O(rows·cols) vertices and edges.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := gridID(r, c)
				if _, err := g.AddVertex(id); err != nil {
					return builderErrorf(methodGrid, err, "AddVertex(%s)", id)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, gridID(r, c), gridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, gridID(r, c), gridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
