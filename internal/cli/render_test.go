package cli

import (
	"strings"
	"testing"

	"github.com/quivertools/dtkit/pkg/quiver"
)

func TestQuiverDOT(t *testing.T) {
	q, err := quiver.New(2, map[quiver.Arrow]int{
		{From: 0, To: 1}: 2,
		{From: 1, To: 0}: 1,
		{From: 0, To: 0}: 1,
	}, quiver.WithName("test"))
	if err != nil {
		t.Fatalf("quiver.New: %v", err)
	}

	dot := quiverDOT(q)
	for _, want := range []string{
		`label="test";`,
		`0 -> 1 [label="×2"];`,
		"1 -> 0;",
		"0 -> 0;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `1 -> 0 [`) {
		t.Errorf("single arrows should carry no multiplicity label:\n%s", dot)
	}
}
