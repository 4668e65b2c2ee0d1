package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/ertrie/match"
	"github.com/revelaction/ertrie/model"
	"github.com/revelaction/ertrie/paragraph"
	sent "github.com/revelaction/ertrie/sentence"
)

// TextRenderer writes human readable results. Entity words are green,
// attribute words teal and relationship words yellow.
type TextRenderer struct {
	W        io.Writer
	HasColor bool
}

var _ Renderer = (*TextRenderer)(nil)

func (r *TextRenderer) Model(m model.Model) error {
	_, err := io.WriteString(r.W, r.model(m, "  "))
	return err
}

func (r *TextRenderer) Match(sm *match.SentenceMatch) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Sentence(sm.Sentence, sm.Model))
	fmt.Fprintf(&b, "%s\n", r.color(Grey256, fmt.Sprintf("  %s  cost %d  mismatches %d  (%s)", strings.Join(sm.Path, " "), sm.Cost, sm.Mismatches, sm.Strategy)))
	b.WriteString(r.model(sm.Model, "  "))
	for _, w := range sm.Warnings {
		fmt.Fprintf(&b, "  ⚠ %s\n", w)
	}

	_, err := io.WriteString(r.W, b.String())
	return err
}

func (r *TextRenderer) Outcome(o *paragraph.Outcome) error {
	var b strings.Builder
	if o.Title != "" {
		fmt.Fprintf(&b, "%s\n", r.color(White, "📄 "+o.Title))
	}

	for _, so := range o.Sentences {
		prefix := fmt.Sprintf("[%3d] %s ", so.Index, statusIcon(so.Status))
		switch {
		case so.Match != nil:
			fmt.Fprintf(&b, "%s%s\n", prefix, r.Sentence(so.Match.Sentence, so.Match.Model))
		default:
			fmt.Fprintf(&b, "%s%s\n", prefix, r.color(Gray, so.Error))
		}
	}

	fmt.Fprintf(&b, "%s\n", r.color(Grey256, fmt.Sprintf("%d entities (%d merged), %d relationships (%d merged)",
		len(o.Model.Entities), o.Stats.EntitiesMerged, len(o.Model.Relationships), o.Stats.RelationshipsMerged)))
	b.WriteString(r.model(o.Model, "  "))

	_, err := io.WriteString(r.W, b.String())
	return err
}

func statusIcon(s paragraph.Status) string {
	switch s {
	case paragraph.StatusMatched:
		return "✔"
	case paragraph.StatusPartial:
		return "◐"
	case paragraph.StatusNoMatch:
		return "✘"
	case paragraph.StatusEmpty:
		return "∅"
	}
	return "!"
}

func (r *TextRenderer) model(m model.Model, indent string) string {
	var b strings.Builder
	for _, e := range m.Entities {
		fmt.Fprintf(&b, "%s● %d %s", indent, e.Id, r.color(Green256, e.Name))
		if len(e.Attributes) > 0 {
			names := make([]string, len(e.Attributes))
			for i, a := range e.Attributes {
				names[i] = a.Name
			}
			fmt.Fprintf(&b, " [%s]", r.color(Teal, strings.Join(names, ", ")))
		}
		if e.Superclass != "" {
			fmt.Fprintf(&b, " ⊂ %s", e.Superclass)
		}
		b.WriteString("\n")
	}

	for _, rel := range m.Relationships {
		ends := make([]string, len(rel.Connects))
		for i, c := range rel.Connects {
			ends[i] = fmt.Sprintf("%s(%d)", c.Name, c.EntityId)
		}
		fmt.Fprintf(&b, "%s↔ %d %s: %s\n", indent, rel.Id, r.color(Yellow256, rel.Name), strings.Join(ends, " → "))
	}

	return b.String()
}

// Sentence returns the words of s, colored by the role they play in m.
func (r *TextRenderer) Sentence(s sent.Sentence, m model.Model) string {
	roles := make([]string, s.Len())
	mark := func(w, l int, color string) {
		for i := w; i < w+l && i < len(roles); i++ {
			if i >= 0 {
				roles[i] = color
			}
		}
	}

	for _, rel := range m.Relationships {
		mark(rel.WordId, rel.Length, Yellow256)
	}
	for _, e := range m.Entities {
		mark(e.WordId, e.Length, Green256)
		for _, a := range e.Attributes {
			mark(a.WordId, a.Length, Teal)
		}
	}

	words := make([]string, s.Len())
	for i, t := range s.Tokens {
		words[i] = t.Text
		if roles[i] != "" {
			words[i] = r.color(roles[i], t.Text)
		}
	}
	return strings.Join(words, " ")
}

func (r *TextRenderer) color(c, s string) string {
	if !r.HasColor || s == "" {
		return s
	}
	return c + s + Off
}
