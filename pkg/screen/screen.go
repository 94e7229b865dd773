package screen

import "strings"

// Screen is a mutable grid of runes used to compose box-drawing diagrams.
// Coordinates are zero-based with (0,0) in the top-left corner; x grows to
// the right and y grows downward. Out-of-range writes are a programming
// error and panic, matching slice semantics.
//
// The zero value is an empty 0×0 screen. Use [New] to allocate a grid of a
// known size.
type Screen struct {
	width  int
	height int
	cells  [][]rune
}

// New creates a screen of the given dimensions filled with spaces.
func New(width, height int) *Screen {
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &Screen{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (s *Screen) Width() int { return s.width }

// Height returns the number of rows.
func (s *Screen) Height() int { return s.height }

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune { return s.cells[y][x] }

// DrawPixel writes a single rune at (x, y), overwriting what was there.
func (s *Screen) DrawPixel(x, y int, c rune) { s.cells[y][x] = c }

// DrawText writes text starting at (x, y), left to right. Runes that would
// fall outside the right edge are dropped.
func (s *Screen) DrawText(x, y int, text string) {
	for i, c := range []rune(text) {
		if x+i < s.width {
			s.cells[y][x+i] = c
		}
	}
}

// DrawTextCentered writes text horizontally centered inside a box of the
// given width whose top-left corner is at (x, y). The text lands on the
// box's middle row. Callers must size the box so that width and the text
// length have the same parity, otherwise the text sits half a cell left of
// center.
func (s *Screen) DrawTextCentered(x, y, width int, text string) {
	margin := (width - len([]rune(text))) / 2
	s.DrawText(x+margin, y+1, text)
}

// DrawBox draws a rectangle border with box-drawing glyphs. The interior is
// left untouched so boxes can be drawn over existing content.
func (s *Screen) DrawBox(x, y, w, h int) {
	s.cells[y][x] = '┌'
	s.cells[y][x+w-1] = '┐'
	s.cells[y+h-1][x] = '└'
	s.cells[y+h-1][x+w-1] = '┘'

	for xx := 1; xx < w-1; xx++ {
		s.cells[y][x+xx] = '─'
		s.cells[y+h-1][x+xx] = '─'
	}
	for yy := 1; yy < h-1; yy++ {
		s.cells[y+yy][x] = '│'
		s.cells[y+yy][x+w-1] = '│'
	}
}

// DrawVerticalLine draws c in column x from row top through row bottom,
// inclusive on both ends.
func (s *Screen) DrawVerticalLine(top, bottom, x int, c rune) {
	for y := top; y <= bottom; y++ {
		s.cells[y][x] = c
	}
}

// Asciify rewrites all box-drawing glyphs into plain ASCII so the diagram
// survives terminals and fonts without Unicode support. Two junction styles
// exist: style 0 renders tees as line characters, style 1 renders them as
// corner markers.
func (s *Screen) Asciify(style int) {
	for _, row := range s.cells {
		for x, c := range row {
			row[x] = asciify(c, style)
		}
	}
}

func asciify(c rune, style int) rune {
	switch c {
	case '─':
		return '-'
	case '│':
		return '|'
	case '┐', '┌':
		return '.'
	case '┘', '└':
		return '\''
	case '┬':
		if style == 1 {
			return '.'
		}
		return '-'
	case '┴':
		if style == 1 {
			return '\''
		}
		return '-'
	case '├', '┤':
		return '-'
	case '△':
		return '^'
	case '▽':
		return 'V'
	default:
		return c
	}
}

// String flattens the grid row-major into text, each row terminated by a
// newline. An empty screen yields the empty string.
func (s *Screen) String() string {
	var b strings.Builder
	b.Grow((s.width + 1) * s.height)
	for _, row := range s.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
