// Package screen provides a mutable character grid for composing
// monochrome box-drawing diagrams.
//
// A [Screen] is a dense rune grid with primitives for boxes, centered
// text, strokes and single-cell writes. Rendering code composes a diagram
// by drawing onto the grid and finally calls [Screen.String] to flatten it
// into text, one newline-terminated line per row.
//
// Screens are not safe for concurrent use; each rendering pass should own
// its screen exclusively.
package screen
