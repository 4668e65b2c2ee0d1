// Package consolidate merges the models bound to the sentences of a
// paragraph into a single model.
package consolidate

import (
	"slices"
	"strconv"
	"strings"

	"github.com/revelaction/ertrie/model"
)

type Stats struct {
	Models              int `json:"models"`
	EntitiesIn          int `json:"entities_in"`
	EntitiesMerged      int `json:"entities_merged"`
	RelationshipsIn     int `json:"relationships_in"`
	RelationshipsMerged int `json:"relationships_merged"`
}

// Consolidate merges models, given in sentence order, into one model.
//
// Entities with the same key (lemma) are merged into the first one: its
// attributes become the union of both attribute sets, and it takes the
// superclass of the later entity if it had none. Equal relationships are
// kept once, the first occurrence. Ids are then assigned from 1, entities
// first, and every connected entity id points to the merged entity of the
// same key.
func Consolidate(models []model.Model) model.Model {
	m, _ := ConsolidateWithStats(models)
	return m
}

func ConsolidateWithStats(models []model.Model) (model.Model, Stats) {
	st := Stats{Models: len(models)}
	out := model.Model{
		Entities:      []model.Entity{},
		Relationships: []model.Relationship{},
	}

	byKey := map[string]int{}
	for _, m := range models {
		for _, e := range m.Entities {
			st.EntitiesIn++
			if i, ok := byKey[e.Key()]; ok {
				out.Entities[i].AddAttributes(e.Attributes)
				if out.Entities[i].Superclass == "" {
					out.Entities[i].Superclass = e.Superclass
				}
				st.EntitiesMerged++
				continue
			}

			e.Attributes = slices.Clone(e.Attributes)
			byKey[e.Key()] = len(out.Entities)
			out.Entities = append(out.Entities, e)
		}
	}

	seen := map[string]bool{}
	for _, m := range models {
		for _, r := range m.Relationships {
			st.RelationshipsIn++
			k := relationshipKey(r)
			if seen[k] {
				st.RelationshipsMerged++
				continue
			}
			seen[k] = true

			r.Connects = slices.Clone(r.Connects)
			out.Relationships = append(out.Relationships, r)
		}
	}

	id := 1
	for i := range out.Entities {
		out.Entities[i].Id = id
		id++
	}
	for i := range out.Relationships {
		out.Relationships[i].Id = id
		id++
		for j, c := range out.Relationships[i].Connects {
			out.Relationships[i].Connects[j].EntityId = 0
			if k, ok := byKey[c.Name]; ok {
				out.Relationships[i].Connects[j].EntityId = out.Entities[k].Id
			}
		}
	}

	return out, st
}

// relationshipKey is equal for relationships that model.Relationship.Equal
// reports equal.
func relationshipKey(r model.Relationship) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(r.WordId))
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(r.Length))
	b.WriteByte(0)
	b.WriteString(r.Name)
	for _, c := range r.Connects {
		b.WriteByte(0)
		b.WriteString(c.Name)
	}
	return b.String()
}
