package model

import (
	"fmt"

	"github.com/revelaction/ertrie/errors"
	sent "github.com/revelaction/ertrie/sentence"
)

// Example is a training example: a tagged sentence and the template authored
// against its tag sequence.
type Example struct {
	Name     string       `json:"name"`
	Tokens   []sent.Token `json:"tokens"`
	Template Model        `json:"template"`
}

// Library is a collection of Example
type Library []Example

func (e Example) Sentence() sent.Sentence {
	return sent.Sentence{Tokens: e.Tokens}
}

// Validate checks that every span of the template lies inside the tokens and
// that every relationship connects an existing entity.
func (e Example) Validate() error {
	n := len(e.Tokens)
	if n == 0 {
		return errors.Wrapf(errors.ErrEmptySentence, "example %q", e.Name)
	}

	inside := func(w, l int) bool { return w >= 0 && l >= 1 && w+l <= n }

	for i, en := range e.Template.Entities {
		if !inside(en.WordId, en.Length) {
			return errors.Wrapf(errors.ErrMalformedTemplate, "example %q: entity %d %s outside %d tokens", e.Name, i, spanString(en.WordId, en.Length), n)
		}
		for j, a := range en.Attributes {
			if !inside(a.WordId, a.Length) {
				return errors.Wrapf(errors.ErrMalformedTemplate, "example %q: attribute %d of entity %d %s outside %d tokens", e.Name, j, i, spanString(a.WordId, a.Length), n)
			}
		}
	}

	for i, r := range e.Template.Relationships {
		if !inside(r.WordId, r.Length) {
			return errors.Wrapf(errors.ErrMalformedTemplate, "example %q: relationship %d %s outside %d tokens", e.Name, i, spanString(r.WordId, r.Length), n)
		}
		for _, c := range r.Connects {
			if c.EntityId < 0 || c.EntityId >= len(e.Template.Entities) {
				return errors.Wrapf(errors.ErrMalformedTemplate, "example %q: relationship %d connects unknown entity %d", e.Name, i, c.EntityId)
			}
		}
	}

	return nil
}

// Strip removes the tokens whose tag is in tags and moves the template
// spans onto the remaining tokens. Spans left without tokens are dropped,
// together with the relationships connecting a dropped entity.
func (e Example) Strip(tags map[string]bool) Example {
	s, kept := e.Sentence().Strip(tags)
	if len(kept) == len(e.Tokens) {
		return e
	}
	return Example{
		Name:     e.Name,
		Tokens:   s.Tokens,
		Template: e.Template.Reindex(kept),
	}
}

// Reindex moves the spans of the template m onto a shorter token list;
// kept[i] is the old position of the new token i.
func (m Model) Reindex(kept []int) Model {
	pos := make(map[int]int, len(kept))
	for i, k := range kept {
		pos[k] = i
	}

	move := func(w, l int) (int, int, bool) {
		first, count := -1, 0
		for old := w; old < w+l; old++ {
			if p, ok := pos[old]; ok {
				if first < 0 {
					first = p
				}
				count++
			}
		}
		return first, count, count > 0
	}

	out := Model{}
	index := make(map[int]int, len(m.Entities))
	for i, e := range m.Entities {
		w, l, ok := move(e.WordId, e.Length)
		if !ok {
			continue
		}
		ne := Entity{
			Id:         e.Id,
			WordId:     w,
			Length:     l,
			Name:       e.Name,
			Lemma:      e.Lemma,
			Superclass: e.Superclass,
		}
		for _, a := range e.Attributes {
			if aw, al, ok := move(a.WordId, a.Length); ok {
				ne.Attributes = append(ne.Attributes, Attribute{WordId: aw, Length: al, Name: a.Name})
			}
		}
		index[i] = len(out.Entities)
		out.Entities = append(out.Entities, ne)
	}

	for _, r := range m.Relationships {
		w, l, ok := move(r.WordId, r.Length)
		if !ok {
			continue
		}
		nr := Relationship{Id: r.Id, WordId: w, Length: l, Name: r.Name}
		for _, c := range r.Connects {
			k, found := index[c.EntityId]
			if !found {
				ok = false
				break
			}
			nr.Connects = append(nr.Connects, RelationEntity{EntityId: k, Name: c.Name})
		}
		if ok {
			out.Relationships = append(out.Relationships, nr)
		}
	}

	return out
}

func (e Example) String() string {
	return fmt.Sprintf("%s (%d tokens, %d entities, %d relationships)", e.Name, len(e.Tokens), len(e.Template.Entities), len(e.Template.Relationships))
}
