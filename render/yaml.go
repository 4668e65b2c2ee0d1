package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/ertrie/match"
	"github.com/revelaction/ertrie/model"
	"github.com/revelaction/ertrie/paragraph"
)

// YAMLRenderer writes results as YAML documents, using the plain map form
// of the models.
type YAMLRenderer struct {
	W io.Writer
}

func NewYAMLRenderer(w io.Writer) *YAMLRenderer {
	return &YAMLRenderer{W: w}
}

func (r *YAMLRenderer) encode(v any) error {
	enc := yaml.NewEncoder(r.W)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (r *YAMLRenderer) Model(m model.Model) error {
	return r.encode(m.Map())
}

func (r *YAMLRenderer) Match(sm *match.SentenceMatch) error {
	return r.encode(matchMap(sm))
}

func (r *YAMLRenderer) Outcome(o *paragraph.Outcome) error {
	sentences := make([]any, 0, len(o.Sentences))
	for _, so := range o.Sentences {
		sm := map[string]any{
			"index":  so.Index,
			"status": string(so.Status),
		}
		if so.Match != nil {
			sm["words"] = so.Match.Sentence.Words()
			sm["path"] = so.Match.Path
			sm["cost"] = so.Match.Cost
		}
		if so.Error != "" {
			sm["error"] = so.Error
		}
		sentences = append(sentences, sm)
	}

	return r.encode(map[string]any{
		"title":     o.Title,
		"sentences": sentences,
		"model":     o.Model.Map(),
	})
}

func matchMap(sm *match.SentenceMatch) map[string]any {
	m := map[string]any{
		"words":      sm.Sentence.Words(),
		"path":       sm.Path,
		"cost":       sm.Cost,
		"mismatches": sm.Mismatches,
		"strategy":   string(sm.Strategy),
		"model":      sm.Model.Map(),
	}
	if len(sm.Warnings) > 0 {
		m["warnings"] = sm.Warnings
	}
	return m
}

var _ Renderer = (*YAMLRenderer)(nil)
