package dag

import "strings"

// DefaultSeparator is the arrow token that splits a chain of vertex names.
const DefaultSeparator = "->"

// Parse builds a graph from an edge-list description. Each line is a chain
// of names separated by "->"; a name introduces a vertex on first mention
// and an edge to the following name in the same chain:
//
//	A -> B -> C
//	A -> D -> C
//
// Tokens are trimmed of surrounding whitespace; empty lines and empty
// tokens are skipped. Repeated names are idempotent.
func Parse(input string) *Graph {
	return ParseSeparator(input, DefaultSeparator)
}

// ParseSeparator is [Parse] with a custom arrow token, for inputs written
// with "=>", "→" or similar.
func ParseSeparator(input, sep string) *Graph {
	g := New()
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		prev := ""
		seen := false
		for _, part := range strings.Split(line, sep) {
			name := strings.TrimSpace(part)
			if name == "" {
				continue
			}
			g.AddVertex(name)
			if seen {
				if err := g.AddEdge(prev, name); err != nil {
					panic(err) // both endpoints were just registered
				}
			}
			prev = name
			seen = true
		}
	}
	return g
}
