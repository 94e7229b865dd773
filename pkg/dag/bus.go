package dag

import (
	"container/heap"

	"github.com/matzehuels/asciidag/pkg/screen"
)

// bus routes all connections between two layers through a shared band of
// horizontal and vertical strokes. inputs and outputs hold, per column, the
// connection ids that may enter at the top or leave at the bottom of the
// band; route fills height and the character raster.
type bus struct {
	inputs  []intset
	outputs []intset
	height  int
	y       int
	raster  [][]rune
}

const unreached = 1 << 15

// The routing grid has three lanes per cell: lane 0 carries the vertical
// segment leaving the cell downward, lane 1 the horizontal segment leaving
// it rightward, and lane 2 the corner joining the two lanes within the
// cell. Graph nodes are cell×{vertical,horizontal} endpoints; graph edges
// are the segments, indexed so that edge index == lane index of its cell.
type busNode struct {
	visited bool
	cost    int
	edges   []int
}

type busEdge struct {
	a        int
	b        int
	weight   int
	assigned int
}

type busGrid struct {
	width  int
	height int
	nodes  []busNode
	edges  []busEdge
}

func newBusGrid(width, height int) *busGrid {
	g := &busGrid{
		width:  width,
		height: height,
		nodes:  make([]busNode, width*height*2),
		edges:  make([]busEdge, width*height*3),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if y != height-1 {
				g.connect(g.index(x, y, 0), g.index(x, y, 0), g.index(x, y+1, 0), 1)
			}
			// Horizontal runs avoid the rows reserved for the entry and exit
			// stubs so routes cannot slide along the band's rim.
			if y >= 1 && y <= height-3 && x != width-1 {
				g.connect(g.index(x, y, 1), g.index(x, y, 1), g.index(x+1, y, 1), 1)
			}
			dy := height/2 - y
			g.connect(g.index(x, y, 2), g.index(x, y, 0), g.index(x, y, 1), 10+dy*dy)
		}
	}
	return g
}

func (g *busGrid) index(x, y, lane int) int {
	return x + g.width*(y+g.height*lane)
}

func (g *busGrid) connect(idx, a, b, w int) {
	g.edges[idx].a = a
	g.edges[idx].b = b
	g.edges[idx].weight = w
	g.nodes[a].edges = append(g.nodes[a].edges, idx)
	g.nodes[b].edges = append(g.nodes[b].edges, idx)
}

func (g *busGrid) isAssigned(x, y, lane int) bool {
	return g.edges[g.index(x, y, lane)].assigned != 0
}

// pqItem orders the Dijkstra frontier by cost ascending; ties break toward
// the larger node index so expansion order is fully determined.
type pqItem struct {
	cost int
	node int
}

type busPQ []pqItem

func (q busPQ) Len() int { return len(q) }
func (q busPQ) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].node > q[j].node
}
func (q busPQ) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *busPQ) Push(x any)   { *q = append(*q, x.(pqItem)) }
func (q *busPQ) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// route finds a stroke path for every connection id, one at a time in id
// order, on a grid of the bus's width. Each path claims its segments so
// later connections cannot reuse them, and crossing an already-claimed
// perpendicular segment is made expensive so routes cross only when going
// around would cost more. If some connection cannot be placed the band
// grows one row taller and routing restarts; past 30 rows the partial
// solution is accepted as-is rather than growing forever.
func (b *bus) route() {
	width := len(b.inputs)
	maxID := 0
	for x := 0; x < width; x++ {
		for _, c := range b.inputs[x] {
			maxID = max(maxID, c)
		}
	}

	for height := 3; ; height++ {
		grid := newBusGrid(width, height)

		solved := true
		for id := 1; id <= maxID; id++ {
			if !grid.routeOne(b, id) {
				solved = false
				break
			}
		}
		if height > 30 {
			solved = true
		}
		if !solved {
			continue
		}

		b.height = height
		b.rasterize(grid)
		return
	}
}

func (g *busGrid) routeOne(b *bus, id int) bool {
	for i := range g.nodes {
		g.nodes[i].visited = false
		g.nodes[i].cost = unreached
	}

	start := make(map[int]bool)
	var ends []int
	for x := 0; x < g.width; x++ {
		if b.inputs[x].has(id) {
			start[g.index(x, 0, 0)] = true
		}
		if b.outputs[x].has(id) {
			ends = append(ends, g.index(x, g.height-1, 0))
		}
	}

	pq := make(busPQ, 0, len(start))
	for s := range start {
		pq = append(pq, pqItem{cost: 0, node: s})
	}
	heap.Init(&pq)

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(pqItem)
		if g.nodes[it.node].visited {
			continue
		}
		g.nodes[it.node].visited = true
		g.nodes[it.node].cost = it.cost
		for _, ei := range g.nodes[it.node].edges {
			if g.edges[ei].assigned != 0 {
				continue
			}
			v := g.edges[ei].b
			if v == it.node {
				v = g.edges[ei].a
			}
			if g.nodes[v].visited {
				continue
			}
			heap.Push(&pq, pqItem{cost: it.cost + g.edges[ei].weight, node: v})
		}
	}

	best := unreached
	cur := -1
	for _, e := range ends {
		if g.nodes[e].cost < best {
			best = g.nodes[e].cost
			cur = e
		}
	}
	if cur < 0 {
		return false
	}

	// Walk back along any predecessor whose cost plus the connecting
	// segment's weight lands exactly on the current cost, claiming the
	// segments as we go.
	for !start[cur] {
		for _, ei := range g.nodes[cur].edges {
			prev := g.edges[ei].b
			if cur == prev {
				prev = g.edges[ei].a
			}
			if g.nodes[prev].cost+g.edges[ei].weight == g.nodes[cur].cost {
				g.edges[ei].assigned = id
				cur = prev
				break
			}
		}
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			e0 := g.index(x, y, 0)
			e1 := g.index(x, y, 1)
			if g.edges[e0].assigned != 0 {
				g.edges[e1].weight = 20
			}
			if g.edges[e1].assigned != 0 {
				g.edges[e0].weight = 20
			}
		}
	}
	return true
}

// rasterize turns the claimed segments into characters. A cell with both a
// corner and straight segments becomes the box-drawing corner matching
// which straights it joins; plain segments become strokes.
func (b *bus) rasterize(grid *busGrid) {
	b.raster = make([][]rune, b.height)
	for y := range b.raster {
		b.raster[y] = make([]rune, grid.width)
		for x := range b.raster[y] {
			b.raster[y][x] = ' '
		}
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < grid.width; x++ {
			c := &b.raster[y][x]
			if grid.isAssigned(x, y, 1) {
				*c = '─'
			}
			if grid.isAssigned(x, y, 0) {
				*c = '│'
			}
			if grid.isAssigned(x, y, 2) {
				if grid.isAssigned(x, y, 0) {
					if grid.isAssigned(x, y, 1) {
						*c = '┌'
					} else {
						*c = '┐'
					}
				} else if grid.isAssigned(x, y, 1) {
					*c = '└'
				} else {
					*c = '┘'
				}
			}
		}
	}
}

// overlay blits the raster onto the screen. Where a route meets a box
// border it turns into a branch or arrow head; the raster's last row only
// contributes those heads, since the next layer's border occupies it.
func (b *bus) overlay(s *screen.Screen) {
	for dy := 0; dy < b.height-1; dy++ {
		for x, c := range b.raster[dy] {
			if c == ' ' {
				continue
			}
			switch p := s.Get(x, b.y+dy); {
			case dy == 0 && p == '─':
				s.DrawPixel(x, b.y+dy, '┬')
			case dy == b.height-2 && p == '─':
				s.DrawPixel(x, b.y+dy, '▽')
			default:
				s.DrawPixel(x, b.y+dy, c)
			}
		}
	}
}
