package dag

// layout assigns every vertex and edge its final position and size. Sizing
// is local; positions come out of a constraint-relaxation loop whose passes
// each enforce one geometric rule and report whether they had to move
// anything. The loop runs until a full chain of passes leaves the layout
// untouched. Coordinates only ever grow, so the loop settles; the iteration
// cap is a safety net against a rule interaction that never does.
func (g *Graph) layout() {
	g.sizeVertices()

	for i := 0; i < 1000; i++ {
		if g.separateVertices() &&
			g.separateEdges() &&
			g.growVertices() &&
			g.shiftEdges() &&
			g.shiftConnectors() {
			break
		}
	}

	g.populateBuses()
	g.assignY()
}

// sizeVertices computes each vertex's box size. A label needs at least two
// columns of margin, and the interior must be wide enough for one stroke
// per incident edge. Width and label length keep the same parity so the
// label centers exactly. Connectors are a single bare stroke.
func (g *Graph) sizeVertices() {
	for i := range g.verts {
		v := &g.verts[i]
		if v.connector {
			v.width = 1
		} else {
			chars := len([]rune(v.label))
			width := max(chars, len(v.upward), len(v.downward))
			for width-chars < 2 {
				width++
			}
			if width%2 != chars%2 {
				width++
			}
			v.width = width + 2
		}
		v.height = 3
	}
}

// separateVertices pushes each layer's vertices apart left to right so
// boxes never overlap. Returns true when nothing moved.
func (g *Graph) separateVertices() bool {
	stable := true
	for li := range g.layers {
		x := 0
		for _, n := range g.layers[li].vertices {
			if g.verts[n].x < x {
				g.verts[n].x = x
				stable = false
			}
			x = g.verts[n].x + g.verts[n].width
		}
	}
	return stable
}

// separateEdges pushes each layer's edges apart left to right so no two
// strokes share a column. Edge lists are ordered top-down, which after
// crossing resolution is also left to right.
func (g *Graph) separateEdges() bool {
	stable := true
	for li := range g.layers {
		x := 0
		for ei := range g.layers[li].edges {
			e := &g.layers[li].edges[ei]
			if e.x < x {
				e.x = x
				stable = false
			}
			x = e.x + 1
		}
	}
	return stable
}

// growVertices widens a box whose interior cannot reach an edge assigned
// beyond its right margin, preserving width parity. Returns on the first
// change so the cheaper separation passes rerun before anything else grows.
func (g *Graph) growVertices() bool {
	for li := range g.layers {
		for _, e := range g.layers[li].edges {
			for _, n := range [2]int{e.up, e.down} {
				v := &g.verts[n]
				if v.x+v.width-2 < e.x && !v.connector {
					parity := v.width % 2
					v.width = e.x + 2 - v.x
					if parity != v.width%2 {
						v.width++
					}
					return false
				}
			}
		}
	}
	return true
}

// shiftEdges moves each edge right until its column lies inside the padded
// interior of both endpoints. Returns on the first change.
func (g *Graph) shiftEdges() bool {
	for li := range g.layers {
		for ei := range g.layers[li].edges {
			e := &g.layers[li].edges[ei]
			minx := max(
				g.verts[e.up].x+g.verts[e.up].padding,
				g.verts[e.down].x+g.verts[e.down].padding,
			)
			if e.x < minx {
				e.x = minx
				return false
			}
		}
	}
	return true
}

// shiftConnectors moves each connector under the rightmost edge that
// touches it, so its stroke lines up with both the incoming and outgoing
// edge columns. Returns on the first change.
func (g *Graph) shiftConnectors() bool {
	for i := range g.verts {
		if !g.verts[i].connector {
			continue
		}
		layer := g.verts[i].layer
		minx := 0
		for _, e := range g.layers[layer-1].edges {
			if e.down == i {
				minx = max(minx, e.x)
			}
		}
		for _, e := range g.layers[layer].edges {
			if e.up == i {
				minx = max(minx, e.x)
			}
		}
		if g.verts[i].x < minx {
			g.verts[i].x = minx
			return false
		}
	}
	return true
}

// populateBuses fills each bus layer's per-column connection sets and runs
// the router. A connection id is assigned per (parent, child) pair in
// top-down, row-sorted order, so ids and therefore routing order are
// deterministic. Every column of a vertex's padded interior carries all of
// its connection ids, which gives the router the full span to start or end
// a route in.
func (g *Graph) populateBuses() {
	for y := 0; y < len(g.layers)-1; y++ {
		up := &g.layers[y]
		down := &g.layers[y+1]
		if up.bus == nil {
			continue
		}

		width := 0
		for _, n := range up.vertices {
			width = max(width, g.verts[n].x+g.verts[n].width)
		}
		for _, n := range down.vertices {
			width = max(width, g.verts[n].x+g.verts[n].width)
		}

		ids := make(map[[2]int]int)
		nextID := 1
		getID := func(a, b int) int {
			if id, ok := ids[[2]int{a, b}]; ok {
				return id
			}
			ids[[2]int{a, b}] = nextID
			nextID++
			return nextID - 1
		}

		inputs := make([]intset, width)
		outputs := make([]intset, width)

		for _, a := range up.vertices {
			n := &g.verts[a]
			for x := n.x + n.padding; x < n.x+n.width-n.padding; x++ {
				for _, b := range n.downSorted {
					inputs[x].add(getID(a, b))
				}
			}
		}
		for _, b := range down.vertices {
			n := &g.verts[b]
			for x := n.x + n.padding; x < n.x+n.width-n.padding; x++ {
				for _, a := range n.upSorted {
					outputs[x].add(getID(a, b))
				}
			}
		}

		up.bus.inputs = inputs
		up.bus.outputs = outputs
		up.bus.route()
	}
}

// assignY stacks the layers vertically. Boxes are 3 rows tall and edge
// strokes occupy the 2 rows below a layer's boxes; the first of those rows
// is shared with the bottom border row. Bus layers replace the 2 stroke
// rows with their routed raster, whose last row overlaps the next layer's
// top border.
func (g *Graph) assignY() {
	y := 0
	for li := range g.layers {
		ly := &g.layers[li]
		for _, n := range ly.vertices {
			g.verts[n].y = y
		}
		for ei := range ly.edges {
			ly.edges[ei].y = y + 2
		}
		if ly.bus != nil {
			ly.bus.y = y + 2
			y += ly.bus.height - 3
		}
		y += 3
	}
}
