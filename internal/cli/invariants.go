package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/quivertools/dtkit/pkg/motive"
	"github.com/quivertools/dtkit/pkg/quiver"
	"github.com/quivertools/dtkit/pkg/ring"
)

// invariantsOpts holds the command-line flags for the invariants command.
type invariantsOpts struct {
	dim     string // target dimension vector
	below   string // expansion bound for the whole phase series
	numeric bool   // also evaluate at R = -1
	output  string // JSON output file, stdout when "-"
}

// newInvariantsCmd creates the invariants command.
//
// By default it computes the single invariant DT(d). With --below it expands
// the full series of the phase of d up to a bound, which shares one memo
// table across all terms.
func newInvariantsCmd() *cobra.Command {
	var opts invariantsOpts

	cmd := &cobra.Command{
		Use:   "invariants <problem.toml>",
		Short: "Compute motivic DT invariants",
		Long: `Compute motivic DT invariants of the quiver and stability condition
described in a problem file.

Examples:
  dtkit invariants conifold.toml -d 1,1
  dtkit invariants conifold.toml -d 1,1 --numeric
  dtkit invariants conifold.toml -d 1,1 --below 3,3`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInvariants(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dim, "dim", "d", "", "dimension vector, e.g. 1,1")
	cmd.Flags().StringVar(&opts.below, "below", "", "expand the phase series below this bound")
	cmd.Flags().BoolVar(&opts.numeric, "numeric", false, "also evaluate at R = -1")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write results as JSON (\"-\" for stdout)")
	_ = cmd.MarkFlagRequired("dim")

	return cmd
}

func runInvariants(ctx context.Context, path string, opts *invariantsOpts) error {
	logger := loggerFromContext(ctx)

	cond, _, err := loadProblem(path)
	if err != nil {
		return err
	}
	q := cond.Category().Quiver()
	logger.Infof("Loaded %s: %d vertices, %d arrow classes", q.Name(), q.NumVertices(), len(q.Arrows()))

	d, err := parseDimVector(opts.dim)
	if err != nil {
		return err
	}

	solver := motive.NewSolver(cond)
	series := solver.DTInvariants()
	prog := newProgress(logger)

	spin := newSpinnerWithContext(ctx, "crossing walls")
	spin.Start()

	var terms []motive.Term
	if opts.below == "" {
		dt, err := series.At(d)
		spin.Stop()
		if err != nil {
			return err
		}
		prog.done("Solved wall crossing")
		terms = []motive.Term{{Vector: d, Coeff: dt}}
		printInvariant(d, dt, opts.numeric)
	} else {
		bound, err := parseDimVector(opts.below)
		if err != nil {
			spin.Stop()
			return err
		}
		phi, err := cond.Phase(d)
		if err != nil {
			spin.Stop()
			return err
		}
		sum, err := series.AtPhase(phi).Below(bound)
		if err != nil {
			spin.Stop()
			return err
		}
		terms, err = sum.Expand()
		spin.Stop()
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Computed %d invariants at %s", len(terms), phi))
		for _, term := range terms {
			printInvariant(term.Vector, term.Coeff, opts.numeric)
		}
	}

	st := solver.Stats()
	logger.Debugf("memo table: %d classes, %d hits, %d misses", st.Entries, st.Hits, st.Misses)

	if opts.output != "" {
		path := opts.output
		if path == "-" {
			path = ""
		}
		return writeTerms(terms, path, logger)
	}
	return nil
}

// printInvariant prints one invariant, optionally with its value at R = -1.
func printInvariant(d quiver.DimVector, dt *ring.Expr, numeric bool) {
	fmt.Printf("  %s = %s\n",
		StyleHighlight.Render("DT("+d.Key()+")"),
		StyleValue.Render(dt.String()))
	if !numeric {
		return
	}
	if v, ok := dt.EvalRat(big.NewRat(-1, 1)); ok {
		printDetail("at R = -1: %s", v.RatString())
	} else {
		printWarning("DT(%s) does not reduce at R = -1 (non-generic stability)", d.Key())
	}
}
