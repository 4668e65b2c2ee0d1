package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/ertrie/match"
	"github.com/revelaction/ertrie/model"
	"github.com/revelaction/ertrie/paragraph"
)

// JSONRenderer writes results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

func (r *JSONRenderer) Model(m model.Model) error {
	return json.NewEncoder(r.W).Encode(m)
}

func (r *JSONRenderer) Match(sm *match.SentenceMatch) error {
	return json.NewEncoder(r.W).Encode(sm)
}

func (r *JSONRenderer) Outcome(o *paragraph.Outcome) error {
	return json.NewEncoder(r.W).Encode(o)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
