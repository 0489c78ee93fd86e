package cli

import (
	"encoding/json"
	"io"
	"math/big"
	"os"

	"github.com/charmbracelet/log"

	"github.com/quivertools/dtkit/pkg/motive"
)

// invariantDoc is the JSON form of one computed invariant. The numeric field
// holds the value at R = -1 and is omitted when the expression does not
// reduce there.
type invariantDoc struct {
	Dim     string `json:"dim"`
	DT      string `json:"dt"`
	Numeric string `json:"numeric,omitempty"`
}

// writeTerms serializes computed invariants as indented JSON to path, or to
// stdout when path is empty.
func writeTerms(terms []motive.Term, path string, logger *log.Logger) error {
	docs := make([]invariantDoc, len(terms))
	for i, t := range terms {
		docs[i] = invariantDoc{Dim: t.Vector.Key(), DT: t.Coeff.String()}
		if v, ok := t.Coeff.EvalRat(big.NewRat(-1, 1)); ok {
			docs[i].Numeric = v.RatString()
		}
	}

	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(docs); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote %s", path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method, making os.Stdout
// compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path, defaulting to stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
