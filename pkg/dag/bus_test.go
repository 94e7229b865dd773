package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteStraightConnection(t *testing.T) {
	b := &bus{
		inputs:  []intset{{}, {1}, {}},
		outputs: []intset{{}, {1}, {}},
	}
	b.route()

	require.Equal(t, 3, b.height, "a straight drop needs no extra rows")
	assert.Equal(t, '│', b.raster[0][1])
	assert.Equal(t, '│', b.raster[1][1])
}

func TestRouteCrossingConnections(t *testing.T) {
	// Connection 1 enters left and exits right, connection 2 the reverse.
	b := &bus{
		inputs:  []intset{{1}, {}, {2}},
		outputs: []intset{{2}, {}, {1}},
	}
	b.route()

	require.GreaterOrEqual(t, b.height, 4, "crossing routes need a horizontal run")
	require.Len(t, b.raster, b.height)

	glyphs := map[rune]bool{}
	for _, row := range b.raster {
		require.Len(t, row, 3)
		for _, c := range row {
			glyphs[c] = true
		}
	}
	assert.True(t, glyphs['─'], "expected a horizontal stroke")
	assert.True(t, glyphs['│'], "expected vertical strokes")
	assert.True(t, glyphs['┐'] || glyphs['┌'] || glyphs['┘'] || glyphs['└'],
		"expected corner glyphs")

	// Both exits are reached.
	assert.NotEqual(t, ' ', b.raster[b.height-2][0])
	assert.NotEqual(t, ' ', b.raster[b.height-2][2])
}

func TestRouteDeterministic(t *testing.T) {
	render := func() [][]rune {
		b := &bus{
			inputs:  []intset{{1, 2}, {1, 2}, {}, {3}, {3}},
			outputs: []intset{{3}, {}, {2}, {}, {1}},
		}
		b.route()
		return b.raster
	}

	first := render()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, render(), "run %d diverged", i)
	}
}
