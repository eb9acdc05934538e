package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/umldoc/uml"
)

// LineEncoder writes one tab separated line per reference: from, notation,
// to, both cardinalities and the notes. Empty fields are written as "-".
type LineEncoder struct {
	w   io.Writer
	ref uml.Reference
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(ref uml.Reference) error {
	e.ref = ref
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.ref
	fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\t%s\t%s\n",
		r.From.QualifiedName,
		r.Type,
		r.To.QualifiedName,
		orDash(r.From.Cardinality),
		orDash(r.To.Cardinality),
		orDash(strings.Join(r.Notes(), `\n`)),
	)
	return []byte(sb.String()), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
