package format

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/dhamidi/umldoc/uml"
)

// JSONEncoder writes one JSON object per line.
type JSONEncoder struct {
	w   io.Writer
	ref uml.Reference
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(ref uml.Reference) error {
	e.ref = ref
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

// MarshalText leaves arrows like "<|--" unescaped.
func (e *JSONEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e.buildReferenceData()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

type jsonReference struct {
	From     jsonSide `json:"from"`
	Notation string   `json:"notation"`
	To       jsonSide `json:"to"`
	Notes    []string `json:"notes,omitempty"`
}

type jsonSide struct {
	Name        string `json:"name"`
	Cardinality string `json:"cardinality,omitempty"`
}

func (e *JSONEncoder) buildReferenceData() jsonReference {
	r := e.ref
	data := jsonReference{
		From:     jsonSide{Name: r.From.QualifiedName, Cardinality: r.From.Cardinality},
		Notation: string(r.Type),
		To:       jsonSide{Name: r.To.QualifiedName, Cardinality: r.To.Cardinality},
	}
	if notes := r.Notes(); len(notes) > 0 {
		data.Notes = notes
	}
	return data
}
