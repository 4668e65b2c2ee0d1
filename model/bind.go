package model

import (
	"fmt"
	"strings"

	"github.com/revelaction/ertrie/errors"
	sent "github.com/revelaction/ertrie/sentence"
)

// Key returns the lemma of the entity, or its name when there is no lemma.
// Entities with the same key are the same entity in a paragraph.
func (e Entity) Key() string {
	if e.Lemma != "" {
		return e.Lemma
	}
	return e.Name
}

// Bind resolves the names of the template tpl against the words of s and
// returns a new, numbered model. tpl is not modified.
//
// Spans outside s are dropped: an entity with its relationships, a single
// attribute, or a relationship. The returned error then wraps
// errors.ErrMalformedTemplate, and the model holds everything that could be
// bound.
func Bind(tpl Model, s sent.Sentence) (Model, error) {
	var dropped []string

	bound := Model{
		Entities:      make([]Entity, 0, len(tpl.Entities)),
		Relationships: make([]Relationship, 0, len(tpl.Relationships)),
	}

	// template entity index -> bound entity index
	index := make(map[int]int, len(tpl.Entities))

	for i, e := range tpl.Entities {
		name, ok := bindSpan(s, e.WordId, e.Length)
		if !ok {
			dropped = append(dropped, fmt.Sprintf("entity %d %s", i, spanString(e.WordId, e.Length)))
			continue
		}
		lemma, _ := s.LemmaSpan(e.WordId, e.Length)

		b := Entity{
			WordId:     e.WordId,
			Length:     e.Length,
			Name:       name,
			Lemma:      lemma,
			Superclass: e.Superclass,
		}

		for j, a := range e.Attributes {
			an, ok := bindSpan(s, a.WordId, a.Length)
			if !ok {
				dropped = append(dropped, fmt.Sprintf("attribute %d of entity %d %s", j, i, spanString(a.WordId, a.Length)))
				continue
			}
			b.AddAttributes([]Attribute{{WordId: a.WordId, Length: a.Length, Name: an}})
		}

		index[i] = len(bound.Entities)
		bound.Entities = append(bound.Entities, b)
	}

	for i, r := range tpl.Relationships {
		name, ok := bindSpan(s, r.WordId, r.Length)
		if !ok {
			dropped = append(dropped, fmt.Sprintf("relationship %d %s", i, spanString(r.WordId, r.Length)))
			continue
		}

		b := Relationship{WordId: r.WordId, Length: r.Length, Name: name}
		valid := true
		for _, c := range r.Connects {
			k, ok := index[c.EntityId]
			if !ok {
				dropped = append(dropped, fmt.Sprintf("relationship %d (no entity %d)", i, c.EntityId))
				valid = false
				break
			}
			b.Connects = append(b.Connects, RelationEntity{EntityId: k, Name: bound.Entities[k].Key()})
		}
		if !valid {
			continue
		}

		bound.Relationships = append(bound.Relationships, b)
	}

	number(&bound)

	if len(dropped) > 0 {
		return bound, errors.Wrapf(errors.ErrMalformedTemplate, "dropped %s", strings.Join(dropped, ", "))
	}
	return bound, nil
}

// number assigns ids from 1, entities first. Connects hold entity indexes on
// entry and entity ids on return.
func number(m *Model) {
	id := 1
	for i := range m.Entities {
		m.Entities[i].Id = id
		id++
	}
	for i := range m.Relationships {
		m.Relationships[i].Id = id
		id++
		for j := range m.Relationships[i].Connects {
			m.Relationships[i].Connects[j].EntityId = m.Entities[m.Relationships[i].Connects[j].EntityId].Id
		}
	}
}

func bindSpan(s sent.Sentence, wordId, length int) (string, bool) {
	if length < 1 {
		return "", false
	}
	return s.Span(wordId, length)
}

func spanString(wordId, length int) string {
	return fmt.Sprintf("[%d,%d)", wordId, wordId+length)
}
