// Package format encodes resolved references for the refs command.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/umldoc/uml"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(ref uml.Reference) error
}

// NewEncoder returns the encoder registered under name: "line" or "json".
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "", "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q (expected line or json)", name)
}
