package dag

import (
	"errors"
	"fmt"
)

var (
	// ErrCycleFound is returned by [Graph.Render] and [Render] when the
	// input graph contains a directed cycle. No partial diagram is produced.
	ErrCycleFound = errors.New("graph contains a cycle")

	// ErrUnknownVertex is returned by [Graph.AddEdge] when one of the
	// endpoints has not been registered with [Graph.AddVertex]. Pipeline
	// code always registers vertices before edges, so hitting this error
	// indicates a caller bug rather than bad user input.
	ErrUnknownVertex = errors.New("unknown vertex")
)

// vertex is a node in the arena. Indices into Graph.verts are stable for
// the life of the graph; adjacency is kept as sorted index sets so every
// traversal order is deterministic.
type vertex struct {
	label     string
	upward    intset
	downward  intset
	connector bool
	padding   int

	// assigned by layering and ordering
	layer      int
	row        int
	closure    intset // all indices transitively reachable downward
	upSorted   []int  // upward, sorted by neighbor row
	downSorted []int  // downward, sorted by neighbor row

	// assigned by the geometry solver
	width  int
	height int
	x      int
	y      int
}

// Graph holds the vertex arena and directed adjacency for one diagram.
// Build it with [New]+[Graph.AddVertex]+[Graph.AddEdge], [Parse], or
// [FromGraph], then call [Graph.Render] exactly once.
//
// A Graph is not safe for concurrent use, but independent Graph instances
// may be built and rendered in parallel; no state is shared between them.
type Graph struct {
	verts  []vertex
	index  map[string]int
	layers []layer
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// AddVertex registers a vertex under the given name. Adding a name that
// already exists is a no-op, so repeated mentions in the input are cheap.
func (g *Graph) AddVertex(name string) {
	if _, ok := g.index[name]; ok {
		return
	}
	g.index[name] = len(g.verts)
	g.verts = append(g.verts, vertex{label: name, padding: 1})
}

// AddEdge inserts a directed edge from a to b. Both names must already be
// registered; duplicate edges collapse because adjacency is a set.
func (g *Graph) AddEdge(a, b string) error {
	ia, ok := g.index[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, a)
	}
	ib, ok := g.index[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, b)
	}
	g.verts[ia].downward.add(ib)
	g.verts[ib].upward.add(ia)
	return nil
}

// addConnector splices a synthetic vertex between a and b, replacing the
// edge (a,b) with (a,c) and (c,b). Connectors carry no label, zero padding
// and live one layer below a.
func (g *Graph) addConnector(a, b int) {
	c := len(g.verts)
	g.verts = append(g.verts, vertex{
		connector: true,
		layer:     g.verts[a].layer + 1,
	})

	g.verts[a].downward.remove(b)
	g.verts[b].upward.remove(a)

	g.verts[a].downward.add(c)
	g.verts[c].upward.add(a)

	g.verts[c].downward.add(b)
	g.verts[b].upward.add(c)
}

// VertexCount returns the number of named vertices, excluding synthetic
// connectors inserted during layout.
func (g *Graph) VertexCount() int {
	n := 0
	for i := range g.verts {
		if !g.verts[i].connector {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of directed edges currently in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for i := range g.verts {
		n += len(g.verts[i].downward)
	}
	return n
}

// Vertices returns the vertex names in insertion order. Connectors are
// omitted. Call this before [Graph.Render]; rendering splices connectors
// into the adjacency and the edge list then reflects the layered form.
func (g *Graph) Vertices() []string {
	names := make([]string, 0, len(g.verts))
	for i := range g.verts {
		if !g.verts[i].connector {
			names = append(names, g.verts[i].label)
		}
	}
	return names
}

// Edges returns all directed edges as [from, to] name pairs, ordered by
// the endpoints' insertion order. Like [Graph.Vertices], this reflects the
// constructed graph and should be read before rendering.
func (g *Graph) Edges() [][2]string {
	var pairs [][2]string
	for a := range g.verts {
		if g.verts[a].connector {
			continue
		}
		for _, b := range g.verts[a].downward {
			if g.verts[b].connector {
				continue
			}
			pairs = append(pairs, [2]string{g.verts[a].label, g.verts[b].label})
		}
	}
	return pairs
}

// intset is a sorted set of vertex indices. Keeping adjacency sorted makes
// every iteration over neighbors deterministic, which the whole pipeline
// relies on for byte-identical output.
type intset []int

func (s intset) has(v int) bool {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(s) && s[lo] == v
}

func (s *intset) add(v int) {
	lo, hi := 0, len(*s)
	for lo < hi {
		mid := (lo + hi) / 2
		if (*s)[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(*s) && (*s)[lo] == v {
		return
	}
	*s = append(*s, 0)
	copy((*s)[lo+1:], (*s)[lo:])
	(*s)[lo] = v
}

func (s *intset) remove(v int) {
	for i, x := range *s {
		if x == v {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}
