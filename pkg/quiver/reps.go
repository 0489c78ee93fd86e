package quiver

import (
	"github.com/quivertools/dtkit/pkg/ring"
)

// RepCategory is the abelian category of representations of a quiver,
// reduced to the algebra the wall-crossing solver needs: the motivic class
// of the full representation variety modulo its gauge group. Obtain
// instances from [Quiver.Reps].
type RepCategory struct {
	quiver *Quiver

	stack map[string]*ring.Expr // StackClass memo, keyed by DimVector.Key
}

func newRepCategory(q *Quiver) *RepCategory {
	return &RepCategory{quiver: q, stack: make(map[string]*ring.Expr)}
}

// Quiver returns the underlying quiver.
func (c *RepCategory) Quiver() *Quiver { return c.quiver }

// Rank returns the number of vertices, i.e. the dimension-vector length.
func (c *RepCategory) Rank() int { return c.quiver.numVertices }

// GLClass returns the motivic class of GL_n,
//
//	[GL_n] = Π_{k<n} (L^n − L^k),
//
// the automorphism group of an n-dimensional vector space. GLClass(0) = 1.
func GLClass(n int) *ring.Expr {
	out := ring.One()
	ln := ring.PowL(n)
	for k := 0; k < n; k++ {
		out = out.Mul(ln.Sub(ring.PowL(k)))
	}
	return out
}

// gaugeClass is [GL](d) = Π_i [GL_{d_i}], the gauge group acting on the
// representation variety of d.
func gaugeClass(d DimVector) *ring.Expr {
	out := ring.One()
	for _, n := range d {
		out = out.Mul(GLClass(n))
	}
	return out
}

// StackClass returns the motivic class of the stack of all representations
// of dimension vector d (no stability imposed),
//
//	[Rep(d)/GL(d)] = L^{ext(d,d)} / [GL](d),
//
// the base case every wall-crossing identity is checked against. The
// dimension vector is validated against the quiver; results are memoized
// per category instance.
func (c *RepCategory) StackClass(d DimVector) (*ring.Expr, error) {
	if err := d.Validate(c.quiver.numVertices); err != nil {
		return nil, err
	}
	key := d.Key()
	if cls, ok := c.stack[key]; ok {
		return cls, nil
	}
	cls := ring.PowL(c.quiver.ext.Apply(d, d)).Div(gaugeClass(d))
	c.stack[key] = cls
	return cls, nil
}
