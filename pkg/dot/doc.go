// Package dot exports graphs to Graphviz DOT and rasterizes them to SVG or
// PNG, as an alternative to the terminal box-drawing renderer.
package dot
