package motive_test

import (
	"fmt"

	"github.com/quivertools/dtkit/pkg/motive"
	"github.com/quivertools/dtkit/pkg/quiver"
	"github.com/quivertools/dtkit/pkg/stability"
)

func Example() {
	q, _ := quiver.New(2, map[quiver.Arrow]int{{From: 0, To: 1}: 1}, quiver.WithName("A2"))
	z, _ := stability.NewCentralCharge([]int{0, 1})
	cond, _ := stability.New(q.Reps(), z)

	series := motive.NewSolver(cond).DTInvariants()
	dt, _ := series.At(quiver.DimVector{1, 1})
	fmt.Println(dt)
	// Output: 1
}

func ExampleSeries_At() {
	// On a wall (all phases equal) the invariant keeps its pole at R = −1.
	q, _ := quiver.New(2, map[quiver.Arrow]int{{From: 0, To: 1}: 1})
	z, _ := stability.NewCentralCharge([]int{0, 0})
	cond, _ := stability.New(q.Reps(), z)

	series := motive.NewSolver(cond).DTInvariants()
	dt, _ := series.At(quiver.DimVector{1, 1})
	fmt.Println(dt)
	// Output: R/(R + 1)
}
