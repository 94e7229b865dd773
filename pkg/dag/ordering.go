package dag

// orderRows fixes the vertical order of each layer's vertices. The goal is
// twofold: vertices whose subtrees reconverge soon should sit next to each
// other, and every vertex should sit close to the mean row of its parents
// so edges stay short.
//
// Both goals are folded into a single score per permutation and minimized
// with a swap-improve local search starting from the insertion order. The
// search only accepts strict improvements, so it is deterministic and
// terminates.
func (g *Graph) orderRows() {
	// Downward closures, from the next-to-last layer up. The last layer has
	// no children, so its closures stay empty.
	for y := len(g.layers) - 2; y >= 0; y-- {
		for _, up := range g.layers[y].vertices {
			var closure intset
			for _, d := range g.verts[up].downward {
				closure.add(d)
				for _, c := range g.verts[d].closure {
					closure.add(c)
				}
			}
			g.verts[up].closure = closure
		}
	}

	for li := range g.layers {
		ly := &g.layers[li]
		w := len(ly.vertices)
		if w <= 1 {
			continue
		}

		// Mean parent row per vertex. The epsilon keeps parentless vertices
		// anchored near the top instead of dividing by zero.
		parentMean := make([]float32, w)
		for i, n := range ly.vertices {
			sum := 0
			for _, p := range g.verts[n].upward {
				sum += g.verts[p].row
			}
			parentMean[i] = float32(sum) / (float32(len(g.verts[n].upward)) + 0.01)
		}

		// dist[a][b] is the number of layers until a's and b's subtrees
		// reconverge, or big if they never do.
		big := len(g.verts) * 2
		dist := make([][]int, w)
		for a := 0; a < w; a++ {
			dist[a] = make([]int, w)
			for b := 0; b < w; b++ {
				na := &g.verts[ly.vertices[a]]
				nb := &g.verts[ly.vertices[b]]
				best := big
				for _, c := range na.closure {
					if nb.closure.has(c) {
						best = min(best, g.verts[c].layer-na.layer)
					}
				}
				dist[a][b] = best
			}
		}

		perm := make([]int, w)
		for i := range perm {
			perm[i] = i
		}
		score := func(perm []int) float32 {
			var s float32
			for i := 0; i < w-1; i++ {
				s += float32(dist[perm[i]][perm[i+1]])
			}
			for i := 0; i < w; i++ {
				d := float32(i) - parentMean[perm[i]]
				s += d * d * 15.0
			}
			return s
		}
		current := score(perm)
		for {
			improved := false
			for a := 0; a < w; a++ {
				for b := a + 1; b < w; b++ {
					perm[a], perm[b] = perm[b], perm[a]
					if ns := score(perm); ns < current {
						current = ns
						improved = true
					} else {
						perm[a], perm[b] = perm[b], perm[a]
					}
				}
			}
			if !improved {
				break
			}
		}

		ordered := make([]int, w)
		for i, p := range perm {
			ordered[i] = ly.vertices[p]
		}
		ly.vertices = ordered

		for i, n := range ly.vertices {
			g.verts[n].row = i
		}
	}
}
