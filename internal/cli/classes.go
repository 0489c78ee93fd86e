package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quivertools/dtkit/pkg/motive"
)

// newClassesCmd creates the classes command, a debugging view of the motivic
// classes behind an invariant: the full stack class, the semistable class at
// the vector's own phase, and the phase itself.
func newClassesCmd() *cobra.Command {
	var dim string

	cmd := &cobra.Command{
		Use:   "classes <problem.toml>",
		Short: "Print the motivic stack and semistable classes of a dimension vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runClasses(c.Context(), args[0], dim)
		},
	}

	cmd.Flags().StringVarP(&dim, "dim", "d", "", "dimension vector, e.g. 1,1")
	_ = cmd.MarkFlagRequired("dim")

	return cmd
}

func runClasses(ctx context.Context, path, dim string) error {
	logger := loggerFromContext(ctx)

	cond, _, err := loadProblem(path)
	if err != nil {
		return err
	}
	d, err := parseDimVector(dim)
	if err != nil {
		return err
	}

	phi, err := cond.Phase(d)
	if err != nil {
		return err
	}
	stack, err := cond.Category().StackClass(d)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	solver := motive.NewSolver(cond)
	cls, err := solver.SemistableClass(d)
	if err != nil {
		return err
	}
	st := solver.Stats()
	prog.done(fmt.Sprintf("Solved wall crossing (%d classes)", st.Entries))

	fmt.Printf("  %s\n", StyleTitle.Render(d.String()))
	printDetail("phase        %s", phi)
	fmt.Printf("  %s  %s\n", StyleHighlight.Render("[Rep/GL]"), StyleValue.Render(stack.String()))
	fmt.Printf("  %s         %s\n", StyleHighlight.Render("S"), StyleValue.Render(cls.String()))
	return nil
}
