package dag

import (
	"errors"
	"testing"
)

func TestLevelAssignsLayers(t *testing.T) {
	g := Parse("A -> B -> D\nA -> C -> D")
	if err := g.level(); err != nil {
		t.Fatalf("level() = %v", err)
	}
	want := map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}
	for name, layer := range want {
		if got := g.verts[g.index[name]].layer; got != layer {
			t.Errorf("layer(%s) = %d, want %d", name, got, layer)
		}
	}
}

func TestLevelPushesSharedChildDown(t *testing.T) {
	// C is reachable both directly and through B, so it must sit below B.
	g := Parse("A -> C\nA -> B -> C")
	if err := g.level(); err != nil {
		t.Fatalf("level() = %v", err)
	}
	if got := g.verts[g.index["C"]].layer; got != 2 {
		t.Errorf("layer(C) = %d, want 2", got)
	}
}

func TestLevelDetectsCycle(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"self loop", "A -> A"},
		{"two cycle", "A -> B -> A"},
		{"long cycle", "A -> B\nA -> D\nB -> D\nD -> E\nE -> A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Parse(tt.input)
			if err := g.level(); !errors.Is(err, ErrCycleFound) {
				t.Errorf("level() = %v, want ErrCycleFound", err)
			}
		})
	}
}

func TestCompleteSplicesLongEdges(t *testing.T) {
	g := Parse("A -> C\nA -> B -> C")
	if err := g.level(); err != nil {
		t.Fatalf("level() = %v", err)
	}
	g.complete()

	// The direct A->C edge spans two layers and must gain a connector.
	if got := len(g.verts); got != 4 {
		t.Fatalf("len(verts) = %d, want 4 (one connector)", got)
	}
	c := 3
	if !g.verts[c].connector {
		t.Fatalf("verts[3].connector = false, want true")
	}
	if got := g.verts[c].layer; got != 1 {
		t.Errorf("connector layer = %d, want 1", got)
	}
	if got := g.verts[c].padding; got != 0 {
		t.Errorf("connector padding = %d, want 0", got)
	}

	// Every remaining edge spans exactly one layer.
	for a := range g.verts {
		for _, b := range g.verts[a].downward {
			if g.verts[b].layer != g.verts[a].layer+1 {
				t.Errorf("edge %d->%d spans layers %d->%d",
					a, b, g.verts[a].layer, g.verts[b].layer)
			}
		}
	}
}

func TestBuildLayersGroupsVertices(t *testing.T) {
	g := Parse("A -> B -> C\nD -> C\nD -> E")
	if err := g.level(); err != nil {
		t.Fatalf("level() = %v", err)
	}
	g.complete()
	g.buildLayers()

	if got := len(g.layers); got != 3 {
		t.Fatalf("len(layers) = %d, want 3", got)
	}
	wantSizes := []int{2, 3, 1} // D->C gets a connector in the middle layer
	for i, want := range wantSizes {
		if got := len(g.layers[i].vertices); got != want {
			t.Errorf("len(layers[%d].vertices) = %d, want %d", i, got, want)
		}
	}

	// Rows are dense per layer and adjacency is sorted by row.
	for li := range g.layers {
		for i, n := range g.layers[li].vertices {
			if g.verts[n].row != i {
				t.Errorf("layer %d position %d has row %d", li, i, g.verts[n].row)
			}
		}
	}
	for i := range g.verts {
		for j := 1; j < len(g.verts[i].downSorted); j++ {
			a, b := g.verts[i].downSorted[j-1], g.verts[i].downSorted[j]
			if g.verts[a].row > g.verts[b].row {
				t.Errorf("downSorted of %d not row-sorted: %v", i, g.verts[i].downSorted)
			}
		}
	}
}
