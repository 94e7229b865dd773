package dag

import (
	"time"

	"github.com/matzehuels/asciidag/pkg/observability"
	"github.com/matzehuels/asciidag/pkg/screen"
)

// Render parses an edge-list description and renders it as a box-drawing
// diagram. It is shorthand for [Parse] followed by [Graph.Render].
func Render(input string) (string, error) {
	var g *Graph
	stage("parse", func() { g = Parse(input) })
	return g.Render()
}

// Render lays the graph out and flattens the diagram to text. An empty
// graph renders as the empty string; a graph with a directed cycle returns
// [ErrCycleFound] and no diagram.
func (g *Graph) Render() (string, error) {
	s, err := g.RenderScreen()
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// RenderScreen runs the full layout pipeline and draws the diagram onto a
// fresh screen, which callers may post-process (for example with
// [screen.Screen.Asciify]) before flattening it. The pipeline mutates the
// graph, so call it at most once per graph.
func (g *Graph) RenderScreen() (*screen.Screen, error) {
	if len(g.verts) == 0 {
		return screen.New(0, 0), nil
	}

	if err := g.level(); err != nil {
		return nil, err
	}
	stage("complete", g.complete)
	stage("order", g.buildLayers)
	stage("crossings", g.resolveCrossings)
	stage("layout", g.layout)

	var s *screen.Screen
	stage("draw", func() { s = g.draw() })
	return s, nil
}

// stage runs one pipeline step and reports its timing to the registered
// observability hooks.
func stage(name string, fn func()) {
	observability.Pipeline().OnStageStart(name)
	start := time.Now()
	fn()
	observability.Pipeline().OnStageComplete(name, time.Since(start))
}

// draw rasterizes the laid-out graph. Boxes and labels go first, then the
// direct edge strokes, then the bus rasters, which may rewrite border cells
// into branch and arrow glyphs.
func (g *Graph) draw() *screen.Screen {
	w, h := 0, 0
	for i := range g.verts {
		w = max(w, g.verts[i].x+g.verts[i].width)
		h = max(h, g.verts[i].y+g.verts[i].height)
	}
	s := screen.New(w, h)

	for i := range g.verts {
		v := &g.verts[i]
		switch {
		case v.connector && v.width == 1:
			s.DrawVerticalLine(v.y, v.y+2, v.x, '│')
		case v.connector:
			s.DrawBox(v.x, v.y, v.width, v.height)
		default:
			s.DrawBox(v.x, v.y, v.width, v.height)
			s.DrawTextCentered(v.x, v.y, v.width, v.label)
		}
	}

	for li := range g.layers {
		for _, e := range g.layers[li].edges {
			up, down := '┬', '▽'
			if g.verts[e.up].connector {
				up = '│'
			}
			if g.verts[e.down].connector {
				down = '│'
			}
			s.DrawPixel(e.x, e.y, up)
			s.DrawPixel(e.x, e.y+1, down)
		}
	}

	for li := range g.layers {
		if b := g.layers[li].bus; b != nil {
			b.overlay(s)
		}
	}
	return s
}
