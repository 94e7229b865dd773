package dag

import "slices"

// resolveCrossings decides, per layer, whether direct strokes can connect
// the layer to the next one. Direct edges work only when reading them
// top-down gives the same pairing as reading them bottom-up; otherwise two
// strokes would cross and the drawing becomes ambiguous, so the layer's
// edges are discarded and the gap is routed through a bus instead.
func (g *Graph) resolveCrossings() {
	for li := range g.layers {
		ly := &g.layers[li]
		up := slices.Clone(ly.edges)
		down := slices.Clone(ly.edges)
		slices.SortFunc(up, func(a, b edge) int {
			if c := g.verts[a.up].row - g.verts[b.up].row; c != 0 {
				return c
			}
			return g.verts[a.down].row - g.verts[b.down].row
		})
		slices.SortFunc(down, func(a, b edge) int {
			if c := g.verts[a.down].row - g.verts[b.down].row; c != 0 {
				return c
			}
			return g.verts[a.up].row - g.verts[b.up].row
		})
		if !slices.Equal(up, down) {
			ly.edges = nil
			ly.bus = new(bus)
		}
	}
}
