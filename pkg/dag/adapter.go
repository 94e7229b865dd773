package dag

// FromGraph builds a [Graph] from an existing in-memory graph structure
// instead of the textual edge-list format. nodes supplies the roots to
// expand from, children enumerates a node's direct successors and label
// names a node; nodes reached only through children are picked up during
// traversal. Labels must be unique per node, since they are the graph's
// identity.
func FromGraph[N comparable](nodes []N, children func(N) []N, label func(N) string) *Graph {
	g := New()
	seen := make(map[N]bool)

	var walk func(n N)
	walk = func(n N) {
		if seen[n] {
			return
		}
		seen[n] = true
		g.AddVertex(label(n))
		for _, c := range children(n) {
			walk(c)
			if err := g.AddEdge(label(n), label(c)); err != nil {
				panic(err) // both endpoints were just registered
			}
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return g
}
