package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/ertrie/model"
)

func entity(id int, lemma string, attrs ...string) model.Entity {
	e := model.Entity{Id: id, WordId: 0, Length: 1, Name: lemma, Lemma: lemma}
	for i, a := range attrs {
		e.Attributes = append(e.Attributes, model.Attribute{WordId: i + 1, Length: 1, Name: a})
	}
	return e
}

func relation(id int, name string, connects ...model.Entity) model.Relationship {
	r := model.Relationship{Id: id, WordId: 1, Length: 1, Name: name}
	for _, e := range connects {
		r.Connects = append(r.Connects, model.RelationEntity{EntityId: e.Id, Name: e.Key()})
	}
	return r
}

func TestConsolidateMergesEntitiesByLemma(t *testing.T) {
	first := model.Model{Entities: []model.Entity{entity(1, "invoice", "unpaid")}}
	second := model.Model{Entities: []model.Entity{
		entity(1, "customer"),
		entity(2, "invoice", "unpaid", "overdue"),
	}}

	got := Consolidate([]model.Model{first, second})

	require.Len(t, got.Entities, 2)
	inv := got.Entities[0]
	assert.Equal(t, "invoice", inv.Name)
	assert.Equal(t, 1, inv.Id)
	assert.Equal(t, []model.Attribute{
		{WordId: 1, Length: 1, Name: "unpaid"},
		{WordId: 2, Length: 1, Name: "overdue"},
	}, inv.Attributes)

	assert.Equal(t, "customer", got.Entities[1].Name)
	assert.Equal(t, 2, got.Entities[1].Id)
}

func TestConsolidateKeepsDistinctAttributeSpans(t *testing.T) {
	a := entity(1, "car")
	a.Attributes = []model.Attribute{{WordId: 0, Length: 1, Name: "red"}}
	b := entity(1, "car")
	b.Attributes = []model.Attribute{{WordId: 2, Length: 1, Name: "red"}}

	got := Consolidate([]model.Model{{Entities: []model.Entity{a}}, {Entities: []model.Entity{b}}})
	require.Len(t, got.Entities, 1)
	assert.Len(t, got.Entities[0].Attributes, 2)
}

func TestConsolidateRelationshipOnce(t *testing.T) {
	john, car := entity(1, "john"), entity(2, "car")
	s1 := model.Model{
		Entities:      []model.Entity{john, car},
		Relationships: []model.Relationship{relation(3, "owns", john, car)},
	}
	s2 := model.Model{
		Entities:      []model.Entity{john, car},
		Relationships: []model.Relationship{relation(3, "owns", john, car)},
	}

	got, st := ConsolidateWithStats([]model.Model{s1, s2})

	require.Len(t, got.Relationships, 1)
	assert.Equal(t, 3, got.Relationships[0].Id)
	assert.Equal(t, Stats{Models: 2, EntitiesIn: 4, EntitiesMerged: 2, RelationshipsIn: 2, RelationshipsMerged: 1}, st)
}

func TestConsolidateRelationshipsDifferingInConnects(t *testing.T) {
	john, car, bike := entity(1, "john"), entity(2, "car"), entity(3, "bike")
	m := model.Model{
		Entities: []model.Entity{john, car, bike},
		Relationships: []model.Relationship{
			relation(4, "owns", john, car),
			relation(5, "owns", john, bike),
		},
	}

	got := Consolidate([]model.Model{m})
	assert.Len(t, got.Relationships, 2)
}

func TestConsolidateRemapsConnects(t *testing.T) {
	// sentence 1: Mary sells the car
	mary, car := entity(1, "mary"), entity(2, "car")
	s1 := model.Model{
		Entities:      []model.Entity{mary, car},
		Relationships: []model.Relationship{relation(3, "sells", mary, car)},
	}
	// sentence 2: Tom buys the car
	tom, car2 := entity(1, "tom"), entity(2, "car")
	s2 := model.Model{
		Entities:      []model.Entity{tom, car2},
		Relationships: []model.Relationship{relation(3, "buys", tom, car2)},
	}

	got := Consolidate([]model.Model{s1, s2})

	require.Len(t, got.Entities, 3)
	assert.Equal(t, []string{"mary", "car", "tom"}, []string{got.Entities[0].Name, got.Entities[1].Name, got.Entities[2].Name})

	require.Len(t, got.Relationships, 2)
	assert.Equal(t, 4, got.Relationships[0].Id)
	assert.Equal(t, 5, got.Relationships[1].Id)

	buys := got.Relationships[1]
	assert.Equal(t, []model.RelationEntity{{EntityId: 3, Name: "tom"}, {EntityId: 2, Name: "car"}}, buys.Connects)
}

func TestConsolidateSuperclass(t *testing.T) {
	a := entity(1, "rex")
	b := entity(1, "rex")
	b.Superclass = "dog"
	c := entity(1, "rex")
	c.Superclass = "animal"

	got := Consolidate([]model.Model{{Entities: []model.Entity{a}}, {Entities: []model.Entity{b}}, {Entities: []model.Entity{c}}})
	assert.Equal(t, "dog", got.Entities[0].Superclass)
}

func TestConsolidateIsIdempotent(t *testing.T) {
	john, car := entity(1, "john", "young"), entity(2, "car", "red")
	s1 := model.Model{
		Entities:      []model.Entity{john, car},
		Relationships: []model.Relationship{relation(3, "owns", john, car)},
	}
	s2 := model.Model{
		Entities:      []model.Entity{entity(1, "car", "fast"), entity(2, "garage")},
		Relationships: []model.Relationship{relation(3, "in", entity(1, "car"), entity(2, "garage"))},
	}

	once := Consolidate([]model.Model{s1, s2})
	twice := Consolidate([]model.Model{once})
	assert.Equal(t, once, twice)
}

func TestConsolidateDoesNotAliasInput(t *testing.T) {
	in := model.Model{Entities: []model.Entity{entity(1, "car", "red")}}
	got := Consolidate([]model.Model{in, {Entities: []model.Entity{entity(1, "car", "blue")}}})

	require.Len(t, got.Entities[0].Attributes, 2)
	assert.Len(t, in.Entities[0].Attributes, 1)
}

func TestConsolidateEmpty(t *testing.T) {
	got := Consolidate(nil)
	assert.True(t, got.IsEmpty())
	assert.NotNil(t, got.Entities)
	assert.NotNil(t, got.Relationships)
}
