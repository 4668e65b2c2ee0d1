// Package model holds the entity/relationship data model.
//
// The same types serve two roles. Stored on a trie leaf, a Model is a
// template: names are placeholders and every RelationEntity.EntityId is an
// index into the Entities list of that template. Returned by Bind or
// Consolidate, a Model is bound: names are words of a query sentence, ids
// are dense from 1 and RelationEntity.EntityId holds the id of the entity
// it connects.
package model

import (
	"slices"
)

// Attribute qualifies an entity, f.ex. the adjective of a noun.
type Attribute struct {
	WordId int    `json:"wordId"`
	Length int    `json:"length"`
	Name   string `json:"name"`
}

type Entity struct {
	Id     int    `json:"id"`
	WordId int    `json:"wordId"`
	Length int    `json:"length"`
	Name   string `json:"name"`

	// Lemma is the deduplication key of the entity in a paragraph.
	Lemma string `json:"lemma,omitempty"`

	Attributes []Attribute `json:"attributes,omitempty"`
	Superclass string      `json:"superclass,omitempty"`
}

// HasAttribute reports whether a value equal attribute is already present.
func (e Entity) HasAttribute(a Attribute) bool {
	return slices.Contains(e.Attributes, a)
}

// AddAttributes appends the attributes of as not yet present in e.
func (e *Entity) AddAttributes(as []Attribute) {
	for _, a := range as {
		if !e.HasAttribute(a) {
			e.Attributes = append(e.Attributes, a)
		}
	}
}

type RelationEntity struct {
	EntityId int    `json:"entityId"`
	Name     string `json:"name"`
}

type Relationship struct {
	Id       int              `json:"id"`
	WordId   int              `json:"wordId"`
	Length   int              `json:"length"`
	Name     string           `json:"name"`
	Connects []RelationEntity `json:"connects,omitempty"`
}

// Equal compares the source span, the name and the names of the connected
// entities. Ids are not compared: they differ between sentences.
func (r Relationship) Equal(o Relationship) bool {
	if r.WordId != o.WordId || r.Length != o.Length || r.Name != o.Name {
		return false
	}
	if len(r.Connects) != len(o.Connects) {
		return false
	}
	for i := range r.Connects {
		if r.Connects[i].Name != o.Connects[i].Name {
			return false
		}
	}
	return true
}

type Model struct {
	Entities      []Entity       `json:"entities"`
	Relationships []Relationship `json:"relationships"`
}

// IsEmpty reports whether the model has neither entities nor relationships.
func (m Model) IsEmpty() bool {
	return len(m.Entities) == 0 && len(m.Relationships) == 0
}

// Clone returns a deep copy of m.
func (m Model) Clone() Model {
	c := Model{
		Entities:      make([]Entity, len(m.Entities)),
		Relationships: make([]Relationship, len(m.Relationships)),
	}
	for i, e := range m.Entities {
		e.Attributes = slices.Clone(e.Attributes)
		c.Entities[i] = e
	}
	for i, r := range m.Relationships {
		r.Connects = slices.Clone(r.Connects)
		c.Relationships[i] = r
	}
	return c
}

// EntityByID returns the entity with the given id.
func (m Model) EntityByID(id int) (Entity, bool) {
	for _, e := range m.Entities {
		if e.Id == id {
			return e, true
		}
	}
	return Entity{}, false
}

// Map returns the model as plain maps and slices, ready for any serializer.
func (m Model) Map() map[string]any {
	entities := make([]any, 0, len(m.Entities))
	for _, e := range m.Entities {
		attrs := make([]any, 0, len(e.Attributes))
		for _, a := range e.Attributes {
			attrs = append(attrs, map[string]any{
				"wordId": a.WordId,
				"length": a.Length,
				"name":   a.Name,
			})
		}
		em := map[string]any{
			"id":         e.Id,
			"wordId":     e.WordId,
			"length":     e.Length,
			"name":       e.Name,
			"lemma":      e.Lemma,
			"attributes": attrs,
		}
		if e.Superclass != "" {
			em["superclass"] = e.Superclass
		}
		entities = append(entities, em)
	}

	rels := make([]any, 0, len(m.Relationships))
	for _, r := range m.Relationships {
		connects := make([]any, 0, len(r.Connects))
		for _, c := range r.Connects {
			connects = append(connects, map[string]any{
				"entityId": c.EntityId,
				"name":     c.Name,
			})
		}
		rels = append(rels, map[string]any{
			"id":       r.Id,
			"wordId":   r.WordId,
			"length":   r.Length,
			"name":     r.Name,
			"connects": connects,
		})
	}

	return map[string]any{
		"entities":      entities,
		"relationships": rels,
	}
}
