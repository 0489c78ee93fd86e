package motive

import (
	"math/big"

	"github.com/quivertools/dtkit/pkg/quiver"
	"github.com/quivertools/dtkit/pkg/ring"
	"github.com/quivertools/dtkit/pkg/stability"
)

// partMult is one part of a multiset partition: the vector e taken m times.
type partMult struct {
	vec  quiver.DimVector
	mult int
}

// logValue computes the plethystic logarithm T of the twisted semistable
// series Ñ(e) = R^(χ(e,e))·S(e) at d, restricted to the phase cone of d.
// The fill is bottom-up over the same-phase vectors dominated by d, so the
// recursion below each value only ever reads memoized entries:
//
//	T(e) = Ñ(e) − ψ(e) − Σ_{partitions p of e, p ≠ {e}} Π_f (ψ(f)+T(f))^m / m!
//	ψ(e) = Σ_{k | gcd(e), k ≥ 2} T(e/k)|_{R → −(−R)^k} / k
//
// Partitions run over multisets of nonzero vectors sharing the phase of e.
// The ψ divisor sum is the multi-cover correction; it vanishes on
// primitive vectors.
func (se *Series) logValue(d quiver.DimVector, phi stability.Phase) (*ring.Expr, error) {
	if t, ok := se.logT[d.Key()]; ok {
		return t, nil
	}

	// Same-phase cone below d, in dominance order.
	var cone []quiver.DimVector
	for _, e := range quiver.EnumerateBelow(d) {
		if e.IsZero() {
			continue
		}
		psi, err := se.solver.phase(e)
		if err != nil {
			return nil, err
		}
		if psi.Equal(phi) {
			cone = append(cone, e)
		}
	}

	for _, e := range cone {
		key := e.Key()
		if _, ok := se.logT[key]; ok {
			continue
		}
		t, err := se.logAt(e, cone)
		if err != nil {
			return nil, err
		}
		se.logT[key] = t
	}
	return se.logT[d.Key()], nil
}

// logAt computes T(e) given that T is memoized for every same-phase vector
// strictly dominated by e. cone is the dominance-ordered same-phase cone of
// the enclosing query; only parts dominated by e are drawn from it.
func (se *Series) logAt(e quiver.DimVector, cone []quiver.DimVector) (*ring.Expr, error) {
	twisted, err := se.twistedClass(e)
	if err != nil {
		return nil, err
	}
	total := twisted.Sub(se.psiValue(e))

	var parts []partMult
	emit := func() {
		if len(parts) == 1 && parts[0].mult == 1 {
			return // the trivial partition {e} is the unknown being solved for
		}
		term := ring.One()
		for _, p := range parts {
			base := se.psiValue(p.vec).Add(se.logT[p.vec.Key()])
			term = term.Mul(base.Pow(p.mult)).Mul(invFactorial(p.mult))
		}
		total = total.Sub(term)
	}

	// Multiset partitions of e into cone vectors, canonical by drawing
	// parts in cone order with bounded multiplicity.
	var choose func(idx int, rem quiver.DimVector)
	choose = func(idx int, rem quiver.DimVector) {
		if rem.IsZero() {
			emit()
			return
		}
		for i := idx; i < len(cone); i++ {
			c := cone[i]
			if !c.LessEq(rem) {
				continue
			}
			m := 0
			left := rem
			for c.LessEq(left) {
				m++
				left = left.Sub(c)
				parts = append(parts, partMult{vec: c, mult: m})
				choose(i+1, left)
				parts = parts[:len(parts)-1]
			}
		}
	}
	choose(0, e)

	return total, nil
}

// twistedClass returns Ñ(e) = R^(χ(e,e))·S(e). The solver's memo table is
// warm for every vector this is called with.
func (se *Series) twistedClass(e quiver.DimVector) (*ring.Expr, error) {
	q := se.solver.Condition().Category().Quiver()
	cls, err := se.solver.SemistableClass(e)
	if err != nil {
		return nil, err
	}
	return ring.PowR(q.Euler(e, e)).Mul(cls), nil
}

// psiValue returns the memoized multi-cover correction ψ(e). T(e/k) is
// already memoized for every divisor k of gcd(e): e/k shares e's phase and
// is strictly dominated by it.
func (se *Series) psiValue(e quiver.DimVector) *ring.Expr {
	key := e.Key()
	if v, ok := se.psi[key]; ok {
		return v
	}
	total := ring.Zero()
	g := e.GCD()
	for k := 2; k <= g; k++ {
		if g%k != 0 {
			continue
		}
		total = total.Add(se.logT[e.Quo(k).Key()].Frobenius(k).Mul(ring.Rat(1, int64(k))))
	}
	se.psi[key] = total
	return total
}

// invFactorial returns 1/m! as a ring constant.
func invFactorial(m int) *ring.Expr {
	f := new(big.Int).MulRange(1, int64(m))
	return ring.FromRat(new(big.Rat).SetFrac(big.NewInt(1), f))
}
