// Package dag renders directed acyclic graphs as Unicode box-drawing
// diagrams for terminal display.
//
// The input is an edge-list description, one chain of vertex names per
// line:
//
//	A -> B -> C
//	D -> C
//	D -> E
//
// [Render] turns it into a rectangular character grid:
//
//	┌───┐┌───┐
//	│ A ││ D │
//	└┬──┘└┬─┬┘
//	┌▽──┐ │┌▽──┐
//	│ B │ ││ E │
//	└┬──┘ │└───┘
//	┌▽────▽─┐
//	│   C   │
//	└───────┘
//
// # Pipeline
//
// Rendering runs a fixed sequence of stages: vertices are leveled into
// layers (detecting cycles), long edges are split with invisible connector
// vertices, each layer's vertical order is optimized to keep related
// subtrees together, layers whose edges would cross are rerouted through a
// bus of horizontal and vertical strokes, a constraint-relaxation solver
// assigns box sizes and positions, and the result is rasterized onto a
// [screen.Screen].
//
// The same input always produces the same output. Graphs with cycles are
// rejected with [ErrCycleFound]; nothing is ever dropped or reordered to
// force a rendering.
package dag
