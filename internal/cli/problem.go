package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/quivertools/dtkit/pkg/quiver"
	"github.com/quivertools/dtkit/pkg/stability"
)

// problemFile is the TOML description of a quiver with a stability
// condition:
//
//	name = "conifold"
//
//	[quiver]
//	vertices = 2
//
//	[[quiver.arrows]]
//	from = 0
//	to = 1
//	count = 2
//
//	[charge]
//	real = [0, 1]
//	imag = [1, 1]   # optional, defaults to all ones
//
// An omitted arrow count means a single arrow. Multiple arrow blocks for
// the same vertex pair accumulate.
type problemFile struct {
	Name   string         `toml:"name"`
	Quiver quiverSection  `toml:"quiver"`
	Charge *chargeSection `toml:"charge"`
}

type quiverSection struct {
	Vertices int            `toml:"vertices"`
	Arrows   []arrowSection `toml:"arrows"`
}

type arrowSection struct {
	From  int `toml:"from"`
	To    int `toml:"to"`
	Count int `toml:"count"`
}

type chargeSection struct {
	Real []int `toml:"real"`
	Imag []int `toml:"imag"`
}

// loadProblem reads and validates a problem file, returning the bound
// stability condition together with the parsed description.
func loadProblem(path string) (*stability.Condition, *problemFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var pf problemFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if pf.Charge == nil {
		return nil, nil, fmt.Errorf("parse %s: missing [charge] section", path)
	}

	arrows := make(map[quiver.Arrow]int, len(pf.Quiver.Arrows))
	for _, a := range pf.Quiver.Arrows {
		count := a.Count
		if count == 0 {
			count = 1
		}
		arrows[quiver.Arrow{From: a.From, To: a.To}] += count
	}

	var opts []quiver.Option
	if pf.Name != "" {
		opts = append(opts, quiver.WithName(pf.Name))
	}
	q, err := quiver.New(pf.Quiver.Vertices, arrows, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	var chargeOpts []stability.ChargeOption
	if pf.Charge.Imag != nil {
		chargeOpts = append(chargeOpts, stability.WithImag(pf.Charge.Imag))
	}
	z, err := stability.NewCentralCharge(pf.Charge.Real, chargeOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	cond, err := stability.New(q.Reps(), z)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return cond, &pf, nil
}

// parseDimVector parses a comma-separated dimension vector like "1,2,0".
func parseDimVector(s string) (quiver.DimVector, error) {
	parts := strings.Split(s, ",")
	d := make(quiver.DimVector, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("dimension vector %q: %w", s, err)
		}
		d[i] = n
	}
	return d, nil
}
