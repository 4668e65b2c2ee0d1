package paragraph

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/revelaction/ertrie/match"
	"github.com/revelaction/ertrie/model"
	sent "github.com/revelaction/ertrie/sentence"
	"github.com/revelaction/ertrie/trie"
)

func sentence(id int, words, tags string) sent.Sentence {
	s := sent.New(strings.Fields(words), strings.Fields(tags))
	s.Id = id
	return s
}

// invoices is trained with:
//
//	customer receives invoice      NN VBZ NN
//	unpaid invoice                 JJ NN
func invoices(t *testing.T) *trie.Trie {
	t.Helper()
	tr := trie.New()
	require.NoError(t, tr.Insert(sentence(0, "customer receives invoice", "NN VBZ NN"), model.Model{
		Entities: []model.Entity{
			{WordId: 0, Length: 1},
			{WordId: 2, Length: 1},
		},
		Relationships: []model.Relationship{
			{WordId: 1, Length: 1, Connects: []model.RelationEntity{{EntityId: 0}, {EntityId: 1}}},
		},
	}))
	require.NoError(t, tr.Insert(sentence(0, "unpaid invoice", "JJ NN"), model.Model{
		Entities: []model.Entity{
			{WordId: 1, Length: 1, Attributes: []model.Attribute{{WordId: 0, Length: 1}}},
		},
	}))
	return tr
}

func doc() sent.Doc {
	return sent.Doc{
		Title: "billing",
		Sentences: []sent.Sentence{
			sentence(0, "customer receives invoice", "NN VBZ NN"),
			sentence(1, "overdue invoice", "JJ NN"),
			sentence(2, "quickly !", "RB ."),
			sentence(3, ", 's", ", POS"),
			sentence(4, "customer receives invoice", "NN VBZ NN"),
		},
	}
}

func TestProcess(t *testing.T) {
	m := match.NewMatcher(invoices(t), match.WithStrategy(match.Strict))
	p := NewProcessor(m, 1, zaptest.NewLogger(t).Sugar())

	out, err := p.Process(context.Background(), doc())
	require.NoError(t, err)

	require.Len(t, out.Sentences, 5)
	assert.Equal(t, StatusMatched, out.Sentences[0].Status)
	assert.Equal(t, StatusMatched, out.Sentences[1].Status)
	assert.Equal(t, StatusNoMatch, out.Sentences[2].Status)
	assert.Equal(t, StatusEmpty, out.Sentences[3].Status)
	assert.Equal(t, StatusMatched, out.Sentences[4].Status)
	assert.NotEmpty(t, out.Sentences[2].Error)
	assert.Error(t, out.Sentences[2].GetError())

	require.Len(t, out.Model.Entities, 2)
	cust, inv := out.Model.Entities[0], out.Model.Entities[1]
	assert.Equal(t, "customer", cust.Name)
	assert.Equal(t, 1, cust.Id)
	assert.Equal(t, "invoice", inv.Name)
	assert.Equal(t, 2, inv.Id)
	assert.Equal(t, []model.Attribute{{WordId: 0, Length: 1, Name: "overdue"}}, inv.Attributes)

	// the relationship of sentence 0 and 4 is the same
	require.Len(t, out.Model.Relationships, 1)
	r := out.Model.Relationships[0]
	assert.Equal(t, 3, r.Id)
	assert.Equal(t, "receives", r.Name)
	assert.Equal(t, []model.RelationEntity{{EntityId: 1, Name: "customer"}, {EntityId: 2, Name: "invoice"}}, r.Connects)

	assert.Equal(t, 3, out.Count(StatusMatched))
	assert.Equal(t, 3, out.Stats.EntitiesMerged)
	assert.Equal(t, 1, out.Stats.RelationshipsMerged)
}

func TestProcessParallelKeepsOrder(t *testing.T) {
	m := match.NewMatcher(invoices(t))

	d := sent.Doc{Title: "long"}
	for i := 0; i < 200; i++ {
		// every sentence introduces a new customer
		d.Sentences = append(d.Sentences, sentence(i, fmt.Sprintf("c%d receives invoice", i), "NN VBZ NN"))
	}

	seq, err := NewProcessor(m, 1, nil).Process(context.Background(), d)
	require.NoError(t, err)
	par, err := NewProcessor(m, 8, nil).Process(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, seq.Model, par.Model)
	require.Len(t, par.Model.Entities, 201)
	assert.Equal(t, "c0", par.Model.Entities[0].Name)
	assert.Equal(t, "invoice", par.Model.Entities[1].Name)
	assert.Equal(t, "c1", par.Model.Entities[2].Name)
	for i, so := range par.Sentences {
		assert.Equal(t, i, so.Index)
	}
}

func TestProcessCancelled(t *testing.T) {
	m := match.NewMatcher(invoices(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProcessor(m, 2, nil).Process(ctx, doc())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessEmptyDoc(t *testing.T) {
	m := match.NewMatcher(invoices(t))
	out, err := NewProcessor(m, 2, nil).Process(context.Background(), sent.Doc{Title: "empty"})
	require.NoError(t, err)
	assert.True(t, out.Model.IsEmpty())
	assert.Empty(t, out.Sentences)
}

func TestProcessPartial(t *testing.T) {
	tr := trie.New()
	require.NoError(t, tr.Insert(sentence(0, "dogs bark", "NNS VBP"), model.Model{
		Entities: []model.Entity{{WordId: 0, Length: 1}, {WordId: 4, Length: 1}},
	}))
	m := match.NewMatcher(tr)

	out, err := NewProcessor(m, 1, nil).Process(context.Background(), sent.Doc{Sentences: []sent.Sentence{
		sentence(0, "cats purr", "NNS VBP"),
	}})
	require.NoError(t, err)
	assert.Equal(t, StatusPartial, out.Sentences[0].Status)
	require.Len(t, out.Model.Entities, 1)
	assert.Equal(t, "cats", out.Model.Entities[0].Name)
}
