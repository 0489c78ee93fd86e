package ring_test

import (
	"fmt"
	"math/big"

	"github.com/quivertools/dtkit/pkg/ring"
)

func ExampleExpr_String() {
	e := ring.PowL(2).Sub(ring.One()).Div(ring.L().Sub(ring.One()))
	fmt.Println(e)
	// Output: L + 1
}

func ExampleExpr_EvalRat() {
	e := ring.One().Div(ring.L().Sub(ring.One()))
	if _, ok := e.EvalRat(big.NewRat(-1, 1)); !ok {
		fmt.Println("pole at R = -1")
	}
	v, _ := e.EvalRat(big.NewRat(2, 1))
	fmt.Println(v)
	// Output:
	// pole at R = -1
	// 1/3
}
