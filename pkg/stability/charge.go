package stability

import (
	"errors"
	"fmt"

	"github.com/quivertools/dtkit/pkg/quiver"
)

var (
	// ErrEmptyCharge is returned by [NewCentralCharge] when no real
	// coefficients are given.
	ErrEmptyCharge = errors.New("central charge needs at least one coefficient")

	// ErrChargeLength is returned by [NewCentralCharge] when the imaginary
	// row's length differs from the real row's.
	ErrChargeLength = errors.New("real and imaginary parts must have equal length")

	// ErrNegativeImag is returned by [NewCentralCharge] when an imaginary
	// coefficient is negative. Non-negative imaginary rows keep Z(d) in the
	// closed upper half plane for every dimension vector.
	ErrNegativeImag = errors.New("imaginary coefficients must be non-negative")
)

// CentralCharge is the integer linear functional
//
//	Z(d) = (Σ real_i·d_i, Σ imag_i·d_i)
//
// on dimension vectors. The imaginary row defaults to all ones, making
// im Z(d) the total dimension, which is positive for every nonzero
// dimension vector, the standard choice guaranteeing well-defined phases.
type CentralCharge struct {
	real []int
	imag []int
}

// ChargeOption configures optional central charge attributes.
type ChargeOption func(*CentralCharge)

// WithImag overrides the default all-ones imaginary row.
func WithImag(imag []int) ChargeOption {
	return func(z *CentralCharge) { z.imag = imag }
}

// NewCentralCharge validates and builds a central charge from its real
// coefficients, one per vertex.
func NewCentralCharge(real []int, opts ...ChargeOption) (*CentralCharge, error) {
	if len(real) == 0 {
		return nil, ErrEmptyCharge
	}
	z := &CentralCharge{real: append([]int(nil), real...)}
	for _, opt := range opts {
		opt(z)
	}
	if z.imag == nil {
		z.imag = make([]int, len(real))
		for i := range z.imag {
			z.imag[i] = 1
		}
	}
	if len(z.imag) != len(z.real) {
		return nil, fmt.Errorf("%w: real %d, imag %d", ErrChargeLength, len(z.real), len(z.imag))
	}
	for i, b := range z.imag {
		if b < 0 {
			return nil, fmt.Errorf("%w: %d at vertex %d", ErrNegativeImag, b, i)
		}
	}
	z.imag = append([]int(nil), z.imag...)
	return z, nil
}

// Rank returns the expected dimension-vector length.
func (z *CentralCharge) Rank() int { return len(z.real) }

// Eval returns the charge value (re, im) at d. The vector must have the
// charge's rank.
func (z *CentralCharge) Eval(d quiver.DimVector) (re, im int) {
	for i, x := range d {
		re += z.real[i] * x
		im += z.imag[i] * x
	}
	return re, im
}

// Phase returns the normalized argument of Z(d) in (0, 1]. It reports
// ErrUndefinedPhase when Z(d) is zero or lies on the open positive real
// axis, and ErrLengthMismatch for vectors of the wrong length.
func (z *CentralCharge) Phase(d quiver.DimVector) (Phase, error) {
	if len(d) != len(z.real) {
		return Phase{}, fmt.Errorf("%w: got length %d, want %d", quiver.ErrLengthMismatch, len(d), len(z.real))
	}
	re, im := z.Eval(d)
	if im < 0 || (im == 0 && re >= 0) {
		return Phase{}, fmt.Errorf("%w: Z(%s) = (%d, %d)", ErrUndefinedPhase, d, re, im)
	}
	return newPhase(re, im), nil
}
