package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/quivertools/dtkit/pkg/quiver"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path; derived from the problem file if empty
	dotOnly bool   // print DOT to stdout instead of rendering
}

// newRenderCmd creates the render command, which draws the quiver of a
// problem file as an SVG via Graphviz.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <problem.toml>",
		Short: "Render the quiver of a problem file as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runRender(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: problem name with .svg)")
	cmd.Flags().BoolVar(&opts.dotOnly, "dot", false, "print DOT to stdout instead of rendering")

	return cmd
}

func runRender(ctx context.Context, path string, opts *renderOpts) error {
	cond, _, err := loadProblem(path)
	if err != nil {
		return err
	}
	dot := quiverDOT(cond.Category().Quiver())

	if opts.dotOnly {
		fmt.Print(dot)
		return nil
	}

	svg, err := renderSVG(ctx, dot)
	if err != nil {
		return err
	}
	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, ".toml") + ".svg"
	}
	if err := os.WriteFile(out, svg, 0o644); err != nil {
		return err
	}
	printSuccess("Wrote %s", out)
	return nil
}

// quiverDOT converts a quiver to Graphviz DOT format. Arrow classes with
// multiplicity above one are drawn once with a multiplicity label.
func quiverDOT(q *quiver.Quiver) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Q {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", q.Name())
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, fontsize=18];\n\n")

	for i := 0; i < q.NumVertices(); i++ {
		fmt.Fprintf(&buf, "  %d;\n", i)
	}
	buf.WriteString("\n")

	arrows := q.Arrows()
	keys := make([]quiver.Arrow, 0, len(arrows))
	for a := range arrows {
		keys = append(keys, a)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].To < keys[j].To
	})
	for _, a := range keys {
		if m := arrows[a]; m > 1 {
			fmt.Fprintf(&buf, "  %d -> %d [label=\"×%d\"];\n", a.From, a.To, m)
		} else {
			fmt.Fprintf(&buf, "  %d -> %d;\n", a.From, a.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// renderSVG renders a DOT graph to SVG using Graphviz.
func renderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
