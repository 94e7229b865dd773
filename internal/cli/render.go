package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/dot"
)

const (
	formatText = "text" // Unicode (or ASCII) box-drawing diagram
	formatDOT  = "dot"  // Graphviz DOT source
	formatSVG  = "svg"  // SVG via Graphviz
	formatPNG  = "png"  // PNG via Graphviz
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file path; empty means stdout
	format     string // output format: text, dot, svg, png
	arrow      string // edge token splitting vertex names
	ascii      bool   // rewrite box-drawing glyphs to plain ASCII
	asciiStyle int    // ASCII junction style: 0 (lines) or 1 (corners)
	configPath string // config file path; empty means the default location
}

// newRenderCmd creates the render command. Input comes from the named file,
// or from stdin when the argument is omitted or "-".
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph description as a diagram",
		Long: `Render reads an edge-list graph description and draws it.

Each input line is a chain of vertex names joined by the arrow token:

    build -> test -> release
    lint -> release

The default output is a Unicode box-drawing diagram on stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}

			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			applyConfig(cmd, &opts, cfg)

			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runRender(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, dot, svg, png")
	cmd.Flags().StringVar(&opts.arrow, "arrow", dag.DefaultSeparator, "edge token between vertex names")
	cmd.Flags().BoolVar(&opts.ascii, "ascii", false, "emit plain ASCII instead of box-drawing glyphs")
	cmd.Flags().IntVar(&opts.asciiStyle, "ascii-style", 0, "ASCII junction style: 0 (lines) or 1 (corners)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/asciidag/config.toml)")

	return cmd
}

// applyConfig fills options from the config file without overriding flags
// the user set explicitly.
func applyConfig(cmd *cobra.Command, opts *renderOpts, cfg config) {
	if cfg.Arrow != "" && !cmd.Flags().Changed("arrow") {
		opts.arrow = cfg.Arrow
	}
	if !cmd.Flags().Changed("ascii") {
		opts.ascii = cfg.ASCII
	}
	if !cmd.Flags().Changed("ascii-style") {
		opts.asciiStyle = cfg.ASCIIStyle
	}
}

func validateFormat(f string) error {
	switch f {
	case formatText, formatDOT, formatSVG, formatPNG:
		return nil
	}
	return fmt.Errorf("invalid format: %s (must be 'text', 'dot', 'svg', or 'png')", f)
}

// runRender reads the graph description, renders it in the requested
// format and writes the result.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	text, err := readInput(input)
	if err != nil {
		return err
	}

	g := dag.ParseSeparator(text, opts.arrow)
	logger.Debugf("parsed graph: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

	data, err := renderGraph(ctx, g, opts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	printSuccess("Rendered %s diagram", opts.format)
	printStats(g.VertexCount(), g.EdgeCount())
	printFile(opts.output)
	return nil
}

// renderGraph dispatches on the output format. The DOT-based formats read
// the graph's edge lists, so they export before any layout runs.
func renderGraph(ctx context.Context, g *dag.Graph, opts *renderOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)

	switch opts.format {
	case formatDOT:
		logger.Debug("exporting DOT")
		return []byte(dot.Marshal(g)), nil
	case formatSVG:
		logger.Debug("rendering SVG via graphviz")
		return dot.RenderSVG(ctx, dot.Marshal(g))
	case formatPNG:
		logger.Debug("rendering PNG via graphviz")
		return dot.RenderPNG(ctx, dot.Marshal(g))
	}

	s, err := g.RenderScreen()
	if err != nil {
		return nil, err
	}
	if opts.ascii {
		logger.Debugf("converting to ASCII (style %d)", opts.asciiStyle)
		s.Asciify(opts.asciiStyle)
	}
	return []byte(s.String()), nil
}

// readInput loads the graph description from a file, or from stdin when
// the path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
