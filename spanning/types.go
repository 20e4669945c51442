package spanning

import (
	"errors"

	"github.com/katalvlaran/mstree/core"
)

var (
	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("spanning: graph is nil")

	// ErrDisconnected indicates that no spanning tree exists.
	ErrDisconnected = errors.New("spanning: graph is disconnected")

	// ErrEmptyRoot indicates Prim was called with an empty root name.
	ErrEmptyRoot = errors.New("spanning: root vertex is empty")

	// ErrEdgeCount indicates an edge set whose size is not |V|−1.
	ErrEdgeCount = errors.New("spanning: edge count is not |V|-1")

	// ErrForeignEdge indicates an edge that does not exist in the graph.
	ErrForeignEdge = errors.New("spanning: edge not in graph")

	// ErrCycle indicates an edge set containing a cycle.
	ErrCycle = errors.New("spanning: edge set contains a cycle")
)

// Weight sums the weights of edges.
func Weight(edges []core.Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
