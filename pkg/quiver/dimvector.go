package quiver

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNegativeEntry is returned when a dimension vector carries a
	// negative component. Representation dimensions are non-negative.
	ErrNegativeEntry = errors.New("dimension vector entry must be non-negative")

	// ErrLengthMismatch is returned when a dimension vector's length does
	// not match the number of vertices it is used with.
	ErrLengthMismatch = errors.New("dimension vector length mismatch")
)

// DimVector assigns a non-negative integer to each vertex of a quiver.
// Treat values as immutable: all arithmetic returns fresh vectors, and
// vectors are shared as map keys via [DimVector.Key].
type DimVector []int

// Zero returns the zero vector of the given length.
func Zero(n int) DimVector { return make(DimVector, n) }

// Unit returns the i-th basis vector of the given length.
func Unit(n, i int) DimVector {
	d := make(DimVector, n)
	d[i] = 1
	return d
}

// Validate checks d against a vertex count. It reports ErrLengthMismatch
// or ErrNegativeEntry, wrapped with the offending value.
func (d DimVector) Validate(numVertices int) error {
	if len(d) != numVertices {
		return fmt.Errorf("%w: got length %d, want %d", ErrLengthMismatch, len(d), numVertices)
	}
	for i, x := range d {
		if x < 0 {
			return fmt.Errorf("%w: entry %d at vertex %d", ErrNegativeEntry, x, i)
		}
	}
	return nil
}

// Add returns d + e componentwise. The vectors must have equal length.
func (d DimVector) Add(e DimVector) DimVector {
	out := make(DimVector, len(d))
	for i := range d {
		out[i] = d[i] + e[i]
	}
	return out
}

// Sub returns d − e componentwise. The vectors must have equal length.
func (d DimVector) Sub(e DimVector) DimVector {
	out := make(DimVector, len(d))
	for i := range d {
		out[i] = d[i] - e[i]
	}
	return out
}

// Scale returns k·d.
func (d DimVector) Scale(k int) DimVector {
	out := make(DimVector, len(d))
	for i := range d {
		out[i] = k * d[i]
	}
	return out
}

// Quo returns d/k componentwise; k must divide every entry (callers pass
// divisors of [DimVector.GCD]).
func (d DimVector) Quo(k int) DimVector {
	out := make(DimVector, len(d))
	for i := range d {
		out[i] = d[i] / k
	}
	return out
}

// LessEq reports the dominance order: every component of d is ≤ the
// corresponding component of e. Equal vectors compare true.
func (d DimVector) LessEq(e DimVector) bool {
	for i := range d {
		if d[i] > e[i] {
			return false
		}
	}
	return true
}

// Dominates reports the converse order: every component of e is ≤ the
// corresponding component of d.
func (d DimVector) Dominates(e DimVector) bool { return e.LessEq(d) }

// Equal reports componentwise equality.
func (d DimVector) Equal(e DimVector) bool {
	if len(d) != len(e) {
		return false
	}
	for i := range d {
		if d[i] != e[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every component vanishes.
func (d DimVector) IsZero() bool {
	for _, x := range d {
		if x != 0 {
			return false
		}
	}
	return true
}

// Sum returns the total dimension Σ d_i.
func (d DimVector) Sum() int {
	total := 0
	for _, x := range d {
		total += x
	}
	return total
}

// GCD returns the greatest common divisor of the entries, 0 for the zero
// vector. A vector is primitive when its GCD is 1.
func (d DimVector) GCD() int {
	g := 0
	for _, x := range d {
		g = gcd(g, abs(x))
	}
	return g
}

// Key returns a stable map key for d.
func (d DimVector) Key() string {
	parts := make([]string, len(d))
	for i, x := range d {
		parts[i] = fmt.Sprintf("%d", x)
	}
	return strings.Join(parts, ",")
}

// Clone returns a copy of d.
func (d DimVector) Clone() DimVector {
	out := make(DimVector, len(d))
	copy(out, d)
	return out
}

func (d DimVector) String() string { return "d(" + d.Key() + ")" }

// EnumerateBelow returns every dimension vector componentwise ≤ bound,
// ordered by total dimension and lexicographically within equal totals.
// The order is compatible with dominance: a vector appears after every
// vector it dominates, which is what the bottom-up wall-crossing fill
// requires. The result has Π(bound_i + 1) entries; callers are expected
// to keep bounds small, as downstream cost is combinatorial.
func EnumerateBelow(bound DimVector) []DimVector {
	count := 1
	for _, b := range bound {
		count *= b + 1
	}
	out := make([]DimVector, 0, count)
	cur := Zero(len(bound))
	for {
		out = append(out, cur.Clone())
		i := len(bound) - 1
		for i >= 0 && cur[i] == bound[i] {
			cur[i] = 0
			i--
		}
		if i < 0 {
			break
		}
		cur[i]++
	}
	sort.Slice(out, func(a, b int) bool {
		sa, sb := out[a].Sum(), out[b].Sum()
		if sa != sb {
			return sa < sb
		}
		for i := range out[a] {
			if out[a][i] != out[b][i] {
				return out[a][i] < out[b][i]
			}
		}
		return false
	})
	return out
}

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
