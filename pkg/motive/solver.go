package motive

import (
	"github.com/quivertools/dtkit/pkg/quiver"
	"github.com/quivertools/dtkit/pkg/ring"
	"github.com/quivertools/dtkit/pkg/stability"
)

// Solver computes semistable stack classes for one stability condition.
// It owns the memoization for that condition: every S(d) is computed at
// most once per Solver and never evicted or invalidated. Solvers are not
// shared across stability conditions (each starts cold) and are not safe
// for concurrent use; the computation model is single-threaded throughout.
type Solver struct {
	cond *stability.Condition

	classes map[string]*ring.Expr      // S(d) by DimVector.Key
	phases  map[string]stability.Phase // phase by DimVector.Key
	hits    uint64
	misses  uint64
}

// Stats describes the state of a solver's memo table.
type Stats struct {
	Entries int    // cached semistable classes
	Hits    uint64 // lookups served from the table
	Misses  uint64 // classes actually computed
}

// NewSolver creates a cold solver for the given stability condition.
func NewSolver(cond *stability.Condition) *Solver {
	return &Solver{
		cond:    cond,
		classes: make(map[string]*ring.Expr),
		phases:  make(map[string]stability.Phase),
	}
}

// Condition returns the stability condition the solver is bound to.
func (s *Solver) Condition() *stability.Condition { return s.cond }

// Stats returns a snapshot of the memo table counters.
func (s *Solver) Stats() Stats {
	return Stats{Entries: len(s.classes), Hits: s.hits, Misses: s.misses}
}

// DTInvariants returns the DT invariant series backed by this solver.
func (s *Solver) DTInvariants() *Series { return newSeries(s) }

// SemistableClass returns S(d), the motivic class of the stack of
// semistable representations of dimension vector d at its own phase.
// Evaluation is bottom-up: all S(e) for e dominated by d are filled into
// the memo table first, so a failure (an undefined phase somewhere below d)
// leaves every already-computed smaller entry valid for retries.
func (s *Solver) SemistableClass(d quiver.DimVector) (*ring.Expr, error) {
	if err := d.Validate(s.cond.Category().Rank()); err != nil {
		return nil, err
	}
	if err := s.Warm(d); err != nil {
		return nil, err
	}
	return s.lookup(d), nil
}

// Warm fills the memo table for every dimension vector dominated by bound.
// A bulk query (Series expansion below a bound) warms once instead of
// re-deriving shared sub-results per top-level vector.
func (s *Solver) Warm(bound quiver.DimVector) error {
	if err := bound.Validate(s.cond.Category().Rank()); err != nil {
		return err
	}
	for _, e := range quiver.EnumerateBelow(bound) {
		if _, ok := s.classes[e.Key()]; ok {
			s.hits++
			continue
		}
		cls, err := s.classAt(e)
		if err != nil {
			return err
		}
		s.misses++
		s.classes[e.Key()] = cls
	}
	return nil
}

// lookup reads a filled entry. Callers guarantee the table is warm.
func (s *Solver) lookup(d quiver.DimVector) *ring.Expr {
	s.hits++
	return s.classes[d.Key()]
}

// phase memoizes exact phases per dimension vector.
func (s *Solver) phase(d quiver.DimVector) (stability.Phase, error) {
	key := d.Key()
	if phi, ok := s.phases[key]; ok {
		return phi, nil
	}
	phi, err := s.cond.Phase(d)
	if err != nil {
		return stability.Phase{}, err
	}
	s.phases[key] = phi
	return phi, nil
}

// classAt computes S(d) assuming every strictly dominated vector is
// already in the memo table (guaranteed by the enumeration order).
func (s *Solver) classAt(d quiver.DimVector) (*ring.Expr, error) {
	if d.IsZero() {
		return ring.One(), nil
	}
	stack, err := s.cond.Category().StackClass(d)
	if err != nil {
		return nil, err
	}
	correction, err := s.strataSum(d)
	if err != nil {
		return nil, err
	}
	return stack.Sub(correction), nil
}

// strataSum accumulates Π_i S(d_i) · L^(−Σ_{i<j} χ(d_j, d_i)) over every
// ordered decomposition of d into k ≥ 2 nonzero parts with strictly
// decreasing phases. Each part is automatically the full stratum of its
// phase: two parts can never share a phase under strict decrease.
func (s *Solver) strataSum(d quiver.DimVector) (*ring.Expr, error) {
	q := s.cond.Category().Quiver()
	total := ring.Zero()

	var seq []quiver.DimVector
	var walk func(rem quiver.DimVector, last *stability.Phase) error
	walk = func(rem quiver.DimVector, last *stability.Phase) error {
		if rem.IsZero() {
			if len(seq) < 2 {
				return nil
			}
			term := ring.One()
			weight := 0
			for i, di := range seq {
				term = term.Mul(s.lookup(di))
				for j := i + 1; j < len(seq); j++ {
					weight -= q.Euler(seq[j], di)
				}
			}
			total = total.Add(term.Mul(ring.PowL(weight)))
			return nil
		}
		for _, e := range quiver.EnumerateBelow(rem) {
			if e.IsZero() {
				continue
			}
			phi, err := s.phase(e)
			if err != nil {
				return err
			}
			if last != nil && !phi.Less(*last) {
				continue
			}
			seq = append(seq, e)
			if err := walk(rem.Sub(e), &phi); err != nil {
				return err
			}
			seq = seq[:len(seq)-1]
		}
		return nil
	}

	if err := walk(d, nil); err != nil {
		return nil, err
	}
	return total, nil
}
