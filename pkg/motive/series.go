package motive

import (
	"strings"

	"github.com/quivertools/dtkit/pkg/quiver"
	"github.com/quivertools/dtkit/pkg/ring"
	"github.com/quivertools/dtkit/pkg/stability"
)

// Series is the generating series of DT invariants of one stability
// condition, lazily populated by its solver. Obtain one from
// [Solver.DTInvariants]. Querying by dimension vector ([Series.At]) and by
// phase ([Series.AtPhase]) are two distinct operations; there is no
// argument-type dispatch.
type Series struct {
	solver *Solver

	dt   map[string]*ring.Expr // DT(d) by DimVector.Key
	logT map[string]*ring.Expr // plethystic log values
	psi  map[string]*ring.Expr // multi-cover corrections
}

func newSeries(s *Solver) *Series {
	return &Series{
		solver: s,
		dt:     make(map[string]*ring.Expr),
		logT:   make(map[string]*ring.Expr),
		psi:    make(map[string]*ring.Expr),
	}
}

// Solver returns the backing solver.
func (se *Series) Solver() *Solver { return se.solver }

// At returns the DT invariant at an exact dimension vector. The vector is
// validated (negative entries and length mismatches are domain errors);
// an undefined phase anywhere below d propagates. DT(0) = 1.
func (se *Series) At(d quiver.DimVector) (*ring.Expr, error) {
	if err := d.Validate(se.solver.Condition().Category().Rank()); err != nil {
		return nil, err
	}
	if d.IsZero() {
		return ring.One(), nil
	}
	key := d.Key()
	if v, ok := se.dt[key]; ok {
		return v, nil
	}

	phi, err := se.solver.phase(d)
	if err != nil {
		return nil, err
	}
	if err := se.solver.Warm(d); err != nil {
		return nil, err
	}
	t, err := se.logValue(d, phi)
	if err != nil {
		return nil, err
	}

	chi := se.solver.Condition().Category().Quiver().Euler(d, d)
	v := ring.L().Sub(ring.One()).Mul(ring.PowR(chi - 2)).Mul(t)
	se.dt[key] = v
	return v, nil
}

// AtPhase returns the phase-indexed view of the series: the sub-series of
// DT invariants whose dimension vectors lie on the given ray.
func (se *Series) AtPhase(phi stability.Phase) *PhaseSeries {
	return &PhaseSeries{series: se, phi: phi}
}

// PhaseSeries is the restriction of a DT series to a single phase.
type PhaseSeries struct {
	series *Series
	phi    stability.Phase
}

// Phase returns the ray the series is restricted to.
func (p *PhaseSeries) Phase() stability.Phase { return p.phi }

// Below restricts the phase series to nonzero dimension vectors dominated
// by bound that lie on this phase. The returned sum is unevaluated: no
// solver work happens until [BoundedSum.Expand].
func (p *PhaseSeries) Below(bound quiver.DimVector) (*BoundedSum, error) {
	if err := bound.Validate(p.series.solver.Condition().Category().Rank()); err != nil {
		return nil, err
	}
	var vectors []quiver.DimVector
	for _, e := range quiver.EnumerateBelow(bound) {
		if e.IsZero() {
			continue
		}
		psi, err := p.series.solver.phase(e)
		if err != nil {
			return nil, err
		}
		if psi.Equal(p.phi) {
			vectors = append(vectors, e)
		}
	}
	return &BoundedSum{series: p.series, phi: p.phi, bound: bound, vectors: vectors}, nil
}

// Expand is shorthand for Below(bound) followed by [BoundedSum.Expand].
func (p *PhaseSeries) Expand(bound quiver.DimVector) ([]Term, error) {
	sum, err := p.Below(bound)
	if err != nil {
		return nil, err
	}
	return sum.Expand()
}

// Term is one explicit summand of an expanded bounded sum.
type Term struct {
	Vector quiver.DimVector
	Coeff  *ring.Expr
}

// BoundedSum is a finite, possibly unevaluated restriction of a DT series:
// the dimension vectors of one phase below a bound. String renders the
// symbolic sum without computing anything; Expand evaluates every
// coefficient, warming the solver once for the whole bound.
type BoundedSum struct {
	series  *Series
	phi     stability.Phase
	bound   quiver.DimVector
	vectors []quiver.DimVector
}

// Vectors returns the dimension vectors the sum ranges over, in the
// bottom-up enumeration order.
func (b *BoundedSum) Vectors() []quiver.DimVector {
	return append([]quiver.DimVector(nil), b.vectors...)
}

// Expand evaluates the sum into explicit (dimension vector, coefficient)
// terms, in enumeration order. The solver is warmed for the whole bound
// first, so shared sub-results are derived exactly once.
func (b *BoundedSum) Expand() ([]Term, error) {
	if err := b.series.solver.Warm(b.bound); err != nil {
		return nil, err
	}
	terms := make([]Term, 0, len(b.vectors))
	for _, d := range b.vectors {
		coeff, err := b.series.At(d)
		if err != nil {
			return nil, err
		}
		terms = append(terms, Term{Vector: d, Coeff: coeff})
	}
	return terms, nil
}

// String renders the unevaluated symbolic sum.
func (b *BoundedSum) String() string {
	if len(b.vectors) == 0 {
		return "0"
	}
	parts := make([]string, len(b.vectors))
	for i, d := range b.vectors {
		parts[i] = "DT(" + d.String() + ")·x^" + d.String()
	}
	return strings.Join(parts, " + ")
}
