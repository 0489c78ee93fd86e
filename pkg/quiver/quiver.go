package quiver

import (
	"errors"
	"fmt"
)

var (
	// ErrBadVertexCount is returned by [New] when the vertex count is not
	// positive.
	ErrBadVertexCount = errors.New("number of vertices must be positive")

	// ErrVertexRange is returned by [New] when an arrow references a
	// vertex outside [0, numVertices).
	ErrVertexRange = errors.New("arrow vertex out of range")

	// ErrNegativeArrows is returned by [New] when an arrow multiplicity
	// is negative.
	ErrNegativeArrows = errors.New("arrow multiplicity must be non-negative")
)

// Arrow identifies a directed arrow class between two vertices.
// From == To describes loops.
type Arrow struct {
	From int
	To   int
}

// Quiver is a directed multigraph given by a vertex count and arrow
// multiplicities. It is immutable after construction and carries the three
// bilinear forms of its representation theory: the standard scalar product
// (hom), the arrow form (ext), and the derived Euler form
//
//	χ(d, e) = Σ_i d_i·e_i − Σ_{(i,j)} mult(i,j)·d_i·e_j.
type Quiver struct {
	numVertices int
	name        string
	arrows      map[Arrow]int

	hom   *Pairing
	ext   *Pairing
	euler *Pairing

	reps *RepCategory
}

// Option configures optional quiver attributes.
type Option func(*Quiver)

// WithName attaches a display name to the quiver.
func WithName(name string) Option {
	return func(q *Quiver) { q.name = name }
}

// New validates and builds a quiver. Zero-multiplicity arrows are dropped.
func New(numVertices int, arrows map[Arrow]int, opts ...Option) (*Quiver, error) {
	if numVertices <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, numVertices)
	}

	kept := make(map[Arrow]int, len(arrows))
	extCoeff := make(map[[2]int]int, len(arrows))
	eulerCoeff := make(map[[2]int]int, len(arrows)+numVertices)
	for a, mult := range arrows {
		if a.From < 0 || a.From >= numVertices || a.To < 0 || a.To >= numVertices {
			return nil, fmt.Errorf("%w: (%d → %d) with %d vertices", ErrVertexRange, a.From, a.To, numVertices)
		}
		if mult < 0 {
			return nil, fmt.Errorf("%w: %d arrows (%d → %d)", ErrNegativeArrows, mult, a.From, a.To)
		}
		if mult == 0 {
			continue
		}
		kept[a] = mult
		extCoeff[[2]int{a.From, a.To}] = mult
		eulerCoeff[[2]int{a.From, a.To}] = -mult
	}
	for i := 0; i < numVertices; i++ {
		eulerCoeff[[2]int{i, i}]++
	}

	q := &Quiver{numVertices: numVertices, arrows: kept}
	var err error
	if q.hom, err = NewPairing(numVertices, nil); err != nil {
		return nil, err
	}
	if q.ext, err = NewPairing(numVertices, extCoeff); err != nil {
		return nil, err
	}
	if q.euler, err = NewPairing(numVertices, eulerCoeff); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(q)
	}
	if q.name == "" {
		q.name = fmt.Sprintf("Q(%d)", numVertices)
	}
	return q, nil
}

// NumVertices returns the number of vertices.
func (q *Quiver) NumVertices() int { return q.numVertices }

// Name returns the quiver's display name.
func (q *Quiver) Name() string { return q.name }

// Arrows returns a copy of the arrow multiplicity map.
func (q *Quiver) Arrows() map[Arrow]int {
	out := make(map[Arrow]int, len(q.arrows))
	for a, m := range q.arrows {
		out[a] = m
	}
	return out
}

// Hom returns the standard scalar product on dimension vectors.
func (q *Quiver) Hom() *Pairing { return q.hom }

// Ext returns the arrow bilinear form Σ mult(i,j)·d_i·e_j.
func (q *Quiver) Ext() *Pairing { return q.ext }

// EulerPairing returns the Euler form as a [Pairing].
func (q *Quiver) EulerPairing() *Pairing { return q.euler }

// Euler evaluates the Euler form χ(d, e).
func (q *Quiver) Euler(d, e DimVector) int { return q.euler.Apply(d, e) }

// Reps returns the representation category of the quiver. The category is
// built on first access and memoized on the quiver instance.
func (q *Quiver) Reps() *RepCategory {
	if q.reps == nil {
		q.reps = newRepCategory(q)
	}
	return q.reps
}
