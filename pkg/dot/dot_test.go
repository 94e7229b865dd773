package dot

import (
	"strings"
	"testing"

	"github.com/matzehuels/asciidag/pkg/dag"
)

func TestMarshal(t *testing.T) {
	g := dag.Parse("A -> B -> C\nD -> C")
	out := Marshal(g)

	if !strings.HasPrefix(out, "digraph G {") {
		t.Errorf("output does not open a digraph:\n%s", out)
	}
	for _, want := range []string{
		`  "A";`,
		`  "B";`,
		`  "C";`,
		`  "D";`,
		`  "A" -> "B";`,
		`  "B" -> "C";`,
		`  "D" -> "C";`,
	} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "->"); got != 3 {
		t.Errorf("output has %d edges, want 3:\n%s", got, out)
	}
}

func TestMarshalQuotesNames(t *testing.T) {
	g := dag.Parse(`load "config" -> start`)
	out := Marshal(g)
	if !strings.Contains(out, `"load \"config\""`) {
		t.Errorf("name not quoted:\n%s", out)
	}
}

func TestMarshalEmptyGraph(t *testing.T) {
	out := Marshal(dag.New())
	if !strings.HasPrefix(out, "digraph G {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("empty graph output malformed:\n%s", out)
	}
	if strings.Contains(out, "->") {
		t.Errorf("empty graph output has edges:\n%s", out)
	}
}
