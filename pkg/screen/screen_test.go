package screen

import (
	"strings"
	"testing"
)

func TestNewIsBlank(t *testing.T) {
	s := New(3, 2)
	if got, want := s.String(), "   \n   \n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if s.Width() != 3 || s.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", s.Width(), s.Height())
	}
}

func TestEmptyScreenIsEmptyString(t *testing.T) {
	if got := New(0, 0).String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestDrawBox(t *testing.T) {
	s := New(5, 3)
	s.DrawBox(0, 0, 5, 3)
	want := "┌───┐\n" +
		"│   │\n" +
		"└───┘\n"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestDrawBoxKeepsInterior(t *testing.T) {
	s := New(5, 3)
	s.DrawPixel(2, 1, 'x')
	s.DrawBox(0, 0, 5, 3)
	if got := s.Get(2, 1); got != 'x' {
		t.Errorf("interior pixel = %q, want 'x'", got)
	}
}

func TestDrawTextCentered(t *testing.T) {
	tests := []struct {
		name  string
		width int
		text  string
		want  string
	}{
		{"matching parity", 5, "abc", " abc "},
		{"exact fit", 3, "abc", "abc"},
		{"odd leftover leans left", 6, "abc", " abc  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.width, 3)
			s.DrawTextCentered(0, 0, tt.width, tt.text)
			row := strings.Split(s.String(), "\n")[1]
			if row != tt.want {
				t.Errorf("middle row = %q, want %q", row, tt.want)
			}
		})
	}
}

func TestDrawTextClipsAtRightEdge(t *testing.T) {
	s := New(3, 1)
	s.DrawText(1, 0, "abc")
	if got := s.String(); got != " ab\n" {
		t.Errorf("String() = %q, want %q", got, " ab\n")
	}
}

func TestDrawVerticalLine(t *testing.T) {
	s := New(3, 4)
	s.DrawVerticalLine(1, 3, 1, '│')
	want := "   \n │ \n │ \n │ \n"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAsciify(t *testing.T) {
	draw := func() *Screen {
		s := New(7, 3)
		s.DrawBox(0, 0, 7, 3)
		s.DrawPixel(1, 0, '┬')
		s.DrawPixel(2, 0, '┴')
		s.DrawPixel(3, 0, '△')
		s.DrawPixel(4, 0, '▽')
		return s
	}

	tests := []struct {
		style int
		want  string
	}{
		{0, ".--^V-.\n|     |\n'-----'\n"},
		{1, "..'^V-.\n|     |\n'-----'\n"},
	}
	for _, tt := range tests {
		s := draw()
		s.Asciify(tt.style)
		if got := s.String(); got != tt.want {
			t.Errorf("style %d = %q, want %q", tt.style, got, tt.want)
		}
	}
}
