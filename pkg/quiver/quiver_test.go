package quiver

import (
	"errors"
	"testing"
)

func mustQuiver(t *testing.T, n int, arrows map[Arrow]int, opts ...Option) *Quiver {
	t.Helper()
	q, err := New(n, arrows, opts...)
	if err != nil {
		t.Fatalf("New(%d, %v): %v", n, arrows, err)
	}
	return q
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		arrows map[Arrow]int
		want   error
	}{
		{"zero vertices", 0, nil, ErrBadVertexCount},
		{"negative vertices", -3, nil, ErrBadVertexCount},
		{"source out of range", 2, map[Arrow]int{{From: 2, To: 0}: 1}, ErrVertexRange},
		{"target out of range", 2, map[Arrow]int{{From: 0, To: -1}: 1}, ErrVertexRange},
		{"negative multiplicity", 2, map[Arrow]int{{From: 0, To: 1}: -2}, ErrNegativeArrows},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.n, tt.arrows); !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestZeroMultiplicityDropped(t *testing.T) {
	q := mustQuiver(t, 2, map[Arrow]int{
		{From: 0, To: 1}: 0,
		{From: 1, To: 0}: 3,
	})
	arrows := q.Arrows()
	if len(arrows) != 1 {
		t.Fatalf("Arrows() = %v, want the zero-multiplicity class dropped", arrows)
	}
	if arrows[Arrow{From: 1, To: 0}] != 3 {
		t.Errorf("Arrows()[1→0] = %d, want 3", arrows[Arrow{From: 1, To: 0}])
	}
}

func TestPairingsDoubleLoop(t *testing.T) {
	// Three vertices, two loops at the first.
	q := mustQuiver(t, 3, map[Arrow]int{{From: 0, To: 0}: 2})
	d := DimVector{2, 1, 1}
	e := DimVector{2, 1, 0}

	tests := []struct {
		name string
		p    *Pairing
		a, b DimVector
		want int
	}{
		{"hom(d,d)", q.Hom(), d, d, 6},
		{"hom(d,e)", q.Hom(), d, e, 5},
		{"ext(d,d)", q.Ext(), d, d, 8},
		{"ext(d,e)", q.Ext(), d, e, 8},
		{"euler(d,d)", q.EulerPairing(), d, d, -2},
		{"euler(d,e)", q.EulerPairing(), d, e, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Apply(tt.a, tt.b); got != tt.want {
				t.Errorf("Apply(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEulerAsymmetry(t *testing.T) {
	// One arrow 0 → 1: the Euler form sees it in one direction only.
	q := mustQuiver(t, 2, map[Arrow]int{{From: 0, To: 1}: 1})
	if got := q.Euler(DimVector{1, 0}, DimVector{0, 1}); got != -1 {
		t.Errorf("Euler((1,0),(0,1)) = %d, want -1", got)
	}
	if got := q.Euler(DimVector{0, 1}, DimVector{1, 0}); got != 0 {
		t.Errorf("Euler((0,1),(1,0)) = %d, want 0", got)
	}
	if got := q.Euler(DimVector{1, 1}, DimVector{1, 1}); got != 1 {
		t.Errorf("Euler((1,1),(1,1)) = %d, want 1", got)
	}
}

func TestName(t *testing.T) {
	q := mustQuiver(t, 2, nil)
	if q.Name() != "Q(2)" {
		t.Errorf("default Name() = %q, want %q", q.Name(), "Q(2)")
	}
	q = mustQuiver(t, 2, nil, WithName("A2"))
	if q.Name() != "A2" {
		t.Errorf("Name() = %q, want %q", q.Name(), "A2")
	}
}

func TestRepsMemoized(t *testing.T) {
	q := mustQuiver(t, 1, nil)
	if q.Reps() != q.Reps() {
		t.Error("Reps() should return the same category instance")
	}
}
