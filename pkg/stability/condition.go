package stability

import (
	"errors"
	"fmt"

	"github.com/quivertools/dtkit/pkg/quiver"
)

// ErrRankMismatch is returned by [New] when the central charge and the
// representation category disagree on the number of vertices.
var ErrRankMismatch = errors.New("central charge rank does not match quiver")

// Condition pairs a representation category with a central charge. It owns
// the semistability predicate; the wall-crossing solver in pkg/motive holds
// one Condition and scopes its memoization to it, so dropping a Condition
// (and its solver) releases everything computed under it.
type Condition struct {
	category *quiver.RepCategory
	charge   *CentralCharge
}

// New validates that the charge fits the category's quiver and binds them.
func New(category *quiver.RepCategory, charge *CentralCharge) (*Condition, error) {
	if category.Rank() != charge.Rank() {
		return nil, fmt.Errorf("%w: quiver has %d vertices, charge rank %d",
			ErrRankMismatch, category.Rank(), charge.Rank())
	}
	return &Condition{category: category, charge: charge}, nil
}

// Category returns the bound representation category.
func (c *Condition) Category() *quiver.RepCategory { return c.category }

// Charge returns the bound central charge.
func (c *Condition) Charge() *CentralCharge { return c.charge }

// Phase returns the phase of d under the bound charge.
func (c *Condition) Phase(d quiver.DimVector) (Phase, error) {
	return c.charge.Phase(d)
}

// Semistable reports whether a representation of dimension vector d is
// semistable: every nonzero proper sub-dimension-vector e < d satisfies
// phase(e) ≤ phase(d). The test is phase-only: each componentwise-smaller
// vector counts as an achievable subrepresentation dimension.
func (c *Condition) Semistable(d quiver.DimVector) (bool, error) {
	return c.subobjectTest(d, Phase.LessEq)
}

// Stable reports the strict variant: every nonzero proper
// sub-dimension-vector has phase strictly below phase(d).
func (c *Condition) Stable(d quiver.DimVector) (bool, error) {
	return c.subobjectTest(d, Phase.Less)
}

func (c *Condition) subobjectTest(d quiver.DimVector, ok func(Phase, Phase) bool) (bool, error) {
	if err := d.Validate(c.category.Rank()); err != nil {
		return false, err
	}
	if d.IsZero() {
		return true, nil
	}
	phi, err := c.charge.Phase(d)
	if err != nil {
		return false, err
	}
	for _, e := range quiver.EnumerateBelow(d) {
		if e.IsZero() || e.Equal(d) {
			continue
		}
		psi, err := c.charge.Phase(e)
		if err != nil {
			return false, err
		}
		if !ok(psi, phi) {
			return false, nil
		}
	}
	return true, nil
}
