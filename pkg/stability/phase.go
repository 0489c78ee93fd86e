package stability

import (
	"errors"
	"fmt"
	"math"
)

// ErrUndefinedPhase is returned when a phase is requested for a dimension
// vector whose central charge value is zero, or lies on the open positive
// real axis where the normalized argument leaves (0, 1]. It propagates out
// of any computation that needs the phase of a summand.
var ErrUndefinedPhase = errors.New("central charge has no phase here")

// Phase is the exact direction of a central charge value in the closed
// upper half plane: the normalized argument φ ∈ (0, 1] of re + i·im.
// Phases are value types; compare them with [Phase.Less] and [Phase.Equal],
// never through floats.
type Phase struct {
	re, im int
}

// newPhase normalizes a charge value to a primitive direction.
// Callers guarantee im > 0 or (im == 0 and re < 0).
func newPhase(re, im int) Phase {
	g := gcd(abs(re), abs(im))
	if g > 1 {
		re, im = re/g, im/g
	}
	return Phase{re: re, im: im}
}

// Equal reports whether p and q are the same ray.
func (p Phase) Equal(q Phase) bool { return p.re == q.re && p.im == q.im }

// Less reports whether p's argument is strictly smaller than q's.
// Both directions lie in (0, π], where the sign of the cross product
// re_p·im_q − im_p·re_q decides the angular order exactly.
func (p Phase) Less(q Phase) bool {
	return p.re*q.im-p.im*q.re > 0
}

// LessEq reports Less or Equal.
func (p Phase) LessEq(q Phase) bool {
	return p.re*q.im-p.im*q.re >= 0
}

// Key returns a stable map key for the ray.
func (p Phase) Key() string { return fmt.Sprintf("%d/%d", p.re, p.im) }

// Float returns φ ∈ (0, 1] as a float64, for display only.
func (p Phase) Float() float64 {
	return math.Atan2(float64(p.im), float64(p.re)) / math.Pi
}

func (p Phase) String() string { return fmt.Sprintf("φ(%g)", p.Float()) }

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
