package dag

import "testing"

func prepare(t *testing.T, input string) *Graph {
	t.Helper()
	g := Parse(input)
	if err := g.level(); err != nil {
		t.Fatalf("level() = %v", err)
	}
	g.complete()
	g.buildLayers()
	return g
}

func TestOrderRowsKeepsConnectorBetweenSiblings(t *testing.T) {
	// The D->C connector is created after B and E, so insertion order puts
	// it last in the middle layer. Ordering must pull it between B and E:
	// its subtree reconverges with B's at C, and E has no reason to sit
	// between them.
	g := prepare(t, "A -> B -> C\nD -> C\nD -> E")

	rows := map[string]int{}
	for i := range g.verts {
		if g.verts[i].connector {
			rows["connector"] = g.verts[i].row
		}
	}
	rows["B"] = g.verts[g.index["B"]].row
	rows["E"] = g.verts[g.index["E"]].row

	if rows["B"] != 0 || rows["connector"] != 1 || rows["E"] != 2 {
		t.Errorf("middle layer rows = B:%d connector:%d E:%d, want 0 1 2",
			rows["B"], rows["connector"], rows["E"])
	}
}

func TestOrderRowsFollowsParentRows(t *testing.T) {
	// y hangs only off A (row 0) while x is pulled down by B (row 1), so
	// ordering must place y above x despite x being inserted first.
	g := prepare(t, "A -> x\nA -> y\nB -> x")

	ry := g.verts[g.index["y"]].row
	rx := g.verts[g.index["x"]].row
	if ry != 0 || rx != 1 {
		t.Errorf("rows y:%d x:%d, want y:0 x:1", ry, rx)
	}
}

func TestOrderRowsDeterministic(t *testing.T) {
	const input = "A -> B -> C\nD -> C\nD -> E\nA -> E\nF -> B\nF -> E"
	first := prepare(t, input)
	for i := 0; i < 5; i++ {
		g := prepare(t, input)
		for j := range g.verts {
			if g.verts[j].row != first.verts[j].row {
				t.Fatalf("run %d: verts[%d].row = %d, first run had %d",
					i, j, g.verts[j].row, first.verts[j].row)
			}
		}
	}
}
