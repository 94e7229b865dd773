package dag

import "slices"

// edge is a direct inter-layer connection resolved to a draw position.
// Edges are regenerated from the row-sorted adjacency after ordering, not
// kept in sync with the input.
type edge struct {
	up   int
	down int
	x    int
	y    int
}

// layer is one rank of the diagram. Its inter-layer connections are drawn
// either as the direct edges in edges, or routed through bus when the
// crossing resolver decides straight strokes would be ambiguous; a non-nil
// bus means edges is empty and the layer is bus-routed.
type layer struct {
	vertices []int
	edges    []edge
	bus      *bus
}

// level assigns every vertex a layer by iterative relaxation: any child at
// or above its parent is pushed one layer below it, until a full pass over
// the arena changes nothing. Layers only ever grow and are bounded by the
// vertex count in an acyclic graph, so a fixpoint that fails to stabilize
// within n² passes proves a cycle.
func (g *Graph) level() error {
	bound := len(g.verts) * len(g.verts)
	for pass := 0; ; pass++ {
		changed := false
		for a := range g.verts {
			for _, b := range g.verts[a].downward {
				if g.verts[b].layer <= g.verts[a].layer {
					g.verts[b].layer = g.verts[a].layer + 1
					changed = true
				}
			}
		}
		if !changed {
			return nil
		}
		if pass >= bound {
			return ErrCycleFound
		}
	}
}

// complete splices connectors into every edge spanning more than one
// layer, so that after it returns layer(down) == layer(up)+1 holds for all
// edges. Each splice strictly shortens some edge's span, which guarantees
// termination.
func (g *Graph) complete() {
	for {
		again := false
		n := len(g.verts)
		for a := 0; a < n; a++ {
			layerA := g.verts[a].layer
			downs := slices.Clone(g.verts[a].downward)
			for _, b := range downs {
				if layerA+1 != g.verts[b].layer {
					g.addConnector(a, b)
					again = true
					break
				}
			}
		}
		if !again {
			return
		}
	}
}

// buildLayers groups vertices into layers, fixes each layer's row order,
// computes row-sorted adjacency and materializes the per-layer edge lists.
func (g *Graph) buildLayers() {
	last := 0
	for i := range g.verts {
		last = max(last, g.verts[i].layer)
	}
	g.layers = make([]layer, last+1)
	for i := range g.verts {
		ly := &g.layers[g.verts[i].layer]
		ly.vertices = append(ly.vertices, i)
	}

	g.orderRows()

	for i := range g.verts {
		v := &g.verts[i]
		v.upSorted = sortByRow(g, v.upward)
		v.downSorted = sortByRow(g, v.downward)
	}

	for li := range g.layers {
		ly := &g.layers[li]
		for _, up := range ly.vertices {
			for _, down := range g.verts[up].downSorted {
				ly.edges = append(ly.edges, edge{up: up, down: down})
			}
		}
	}
}

func sortByRow(g *Graph, s intset) []int {
	out := slices.Clone([]int(s))
	slices.SortStableFunc(out, func(a, b int) int {
		return g.verts[a].row - g.verts[b].row
	})
	return out
}
