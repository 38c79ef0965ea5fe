package report

import (
	"fmt"
	"io"

	"github.com/samcharles93/elfinfo/pkg/elf"
)

// FieldDiff is one row that differs between two headers.
type FieldDiff struct {
	Section string `json:"section" yaml:"section"`
	Field   string `json:"field" yaml:"field"`
	A       string `json:"a" yaml:"a"`
	B       string `json:"b" yaml:"b"`
}

// Diff compares two headers field by field using their display values.
func Diff(a, b elf.Header) []FieldDiff {
	identA, headerA := fields(a)
	identB, headerB := fields(b)

	var out []FieldDiff
	collect := func(section string, xs, ys []field) {
		for i := range xs {
			if xs[i].value != ys[i].value {
				out = append(out, FieldDiff{Section: section, Field: xs[i].key, A: xs[i].value, B: ys[i].value})
			}
		}
	}
	collect("Identifier", identA, identB)
	collect("Header", headerA, headerB)
	return out
}

// WriteDiff prints diffs one per line, or "identical" when there are none.
func WriteDiff(w io.Writer, diffs []FieldDiff) error {
	if len(diffs) == 0 {
		_, err := fmt.Fprintln(w, "identical")
		return err
	}
	for _, d := range diffs {
		if _, err := fmt.Fprintf(w, "%s.%s: %s -> %s\n", d.Section, d.Field, d.A, d.B); err != nil {
			return err
		}
	}
	return nil
}
