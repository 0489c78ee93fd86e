package quiver

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRank is returned by [NewPairing] when the rank is not positive.
	ErrBadRank = errors.New("pairing rank must be positive")

	// ErrIndexRange is returned by [NewPairing] when a coefficient index
	// lies outside [0, rank).
	ErrIndexRange = errors.New("pairing index out of range")
)

// Pairing is a sparse integer bilinear form on dimension vectors:
// (d, e) ↦ Σ coeff[i][j]·d_i·e_j.
type Pairing struct {
	rank  int
	coeff map[[2]int]int
}

// NewPairing builds a bilinear form from a sparse coefficient matrix.
// A nil matrix yields the standard scalar product (identity matrix).
func NewPairing(rank int, coeff map[[2]int]int) (*Pairing, error) {
	if rank <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRank, rank)
	}
	if coeff == nil {
		coeff = make(map[[2]int]int, rank)
		for i := 0; i < rank; i++ {
			coeff[[2]int{i, i}] = 1
		}
	}
	m := make(map[[2]int]int, len(coeff))
	for idx, c := range coeff {
		if idx[0] < 0 || idx[0] >= rank || idx[1] < 0 || idx[1] >= rank {
			return nil, fmt.Errorf("%w: (%d,%d) with rank %d", ErrIndexRange, idx[0], idx[1], rank)
		}
		if c != 0 {
			m[idx] = c
		}
	}
	return &Pairing{rank: rank, coeff: m}, nil
}

// Rank returns the length of dimension vectors the pairing acts on.
func (p *Pairing) Rank() int { return p.rank }

// Apply evaluates the form on two dimension vectors. Both vectors must
// have the pairing's rank; length is validated once at the query surfaces,
// not per evaluation.
func (p *Pairing) Apply(d, e DimVector) int {
	total := 0
	for idx, c := range p.coeff {
		total += c * d[idx[0]] * e[idx[1]]
	}
	return total
}
