package quiver

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := (DimVector{1, 0, 2}).Validate(3); err != nil {
		t.Errorf("Validate(3) = %v, want nil", err)
	}
	if err := (DimVector{1, 0}).Validate(3); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Validate(3) = %v, want ErrLengthMismatch", err)
	}
	if err := (DimVector{1, -1, 2}).Validate(3); !errors.Is(err, ErrNegativeEntry) {
		t.Errorf("Validate(3) = %v, want ErrNegativeEntry", err)
	}
}

func TestArithmetic(t *testing.T) {
	d := DimVector{2, 1}
	e := DimVector{1, 1}
	if got := d.Add(e); !got.Equal(DimVector{3, 2}) {
		t.Errorf("Add = %v, want (3,2)", got)
	}
	if got := d.Sub(e); !got.Equal(DimVector{1, 0}) {
		t.Errorf("Sub = %v, want (1,0)", got)
	}
	if got := e.Scale(3); !got.Equal(DimVector{3, 3}) {
		t.Errorf("Scale = %v, want (3,3)", got)
	}
	if got := (DimVector{4, 2}).Quo(2); !got.Equal(DimVector{2, 1}) {
		t.Errorf("Quo = %v, want (2,1)", got)
	}
	if d.Sum() != 3 {
		t.Errorf("Sum = %d, want 3", d.Sum())
	}
}

func TestDominance(t *testing.T) {
	d := DimVector{1, 2}
	if !d.LessEq(DimVector{1, 2}) {
		t.Error("LessEq should hold for equal vectors")
	}
	if !d.LessEq(DimVector{2, 2}) {
		t.Error("(1,2) ≤ (2,2) should hold")
	}
	if d.LessEq(DimVector{2, 1}) {
		t.Error("(1,2) ≤ (2,1) should not hold")
	}
	if !(DimVector{2, 2}).Dominates(d) {
		t.Error("(2,2) should dominate (1,2)")
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		d    DimVector
		want int
	}{
		{DimVector{0, 0}, 0},
		{DimVector{1, 1}, 1},
		{DimVector{2, 4}, 2},
		{DimVector{6, 0, 9}, 3},
	}
	for _, tt := range tests {
		if got := tt.d.GCD(); got != tt.want {
			t.Errorf("%v.GCD() = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestKeyAndString(t *testing.T) {
	d := DimVector{1, 0, 2}
	if d.Key() != "1,0,2" {
		t.Errorf("Key() = %q, want %q", d.Key(), "1,0,2")
	}
	if d.String() != "d(1,0,2)" {
		t.Errorf("String() = %q, want %q", d.String(), "d(1,0,2)")
	}
}

func TestUnitZero(t *testing.T) {
	if got := Zero(3); !got.IsZero() || len(got) != 3 {
		t.Errorf("Zero(3) = %v", got)
	}
	if got := Unit(3, 1); !got.Equal(DimVector{0, 1, 0}) {
		t.Errorf("Unit(3, 1) = %v", got)
	}
}

func TestEnumerateBelow(t *testing.T) {
	got := EnumerateBelow(DimVector{1, 2})
	want := []DimVector{
		{0, 0},
		{0, 1}, {1, 0},
		{0, 2}, {1, 1},
		{1, 2},
	}
	if len(got) != len(want) {
		t.Fatalf("EnumerateBelow((1,2)) has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("entry %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEnumerateBelowDominanceOrder(t *testing.T) {
	// Every vector must come after each vector it strictly dominates.
	out := EnumerateBelow(DimVector{2, 1, 2})
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			if out[j].LessEq(out[i]) && !out[j].Equal(out[i]) {
				t.Fatalf("%v at %d appears after %v at %d but is dominated by it",
					out[j], j, out[i], i)
			}
		}
	}
}
