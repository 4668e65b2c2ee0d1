package query

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/match"
	"github.com/revelaction/ertrie/model"
	sent "github.com/revelaction/ertrie/sentence"
	"github.com/revelaction/ertrie/trie"
)

func newHandler(t *testing.T) (*Handler, *bytes.Buffer) {
	t.Helper()

	tr := trie.New()
	tpl := model.Model{
		Entities: []model.Entity{{WordId: 0, Length: 1}, {WordId: 2, Length: 1}},
		Relationships: []model.Relationship{
			{WordId: 1, Length: 1, Connects: []model.RelationEntity{{EntityId: 0}, {EntityId: 1}}},
		},
	}
	require.NoError(t, tr.Insert(sent.New([]string{"dogs", "chase", "cats"}, []string{"NNS", "VBP", "NNS"}), tpl))

	var buf bytes.Buffer
	return NewHandler(match.NewMatcher(tr), tr.Tags(), "text", false, &buf), &buf
}

func TestEvalMatch(t *testing.T) {
	h, buf := newHandler(t)

	done, err := h.Eval(context.Background(), "Birds/NNS eat/VBP worms/NNS")
	require.NoError(t, err)
	assert.False(t, done)

	assert.Contains(t, buf.String(), "Birds eat worms")
	assert.Contains(t, buf.String(), "↔ 3 eat: birds(1) → worms(2)")
}

func TestEvalNoMatch(t *testing.T) {
	h, _ := newHandler(t)

	_, err := h.Eval(context.Background(), "Stop/VB")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoMatch))
}

func TestEvalQuitAndEmpty(t *testing.T) {
	h, buf := newHandler(t)

	done, err := h.Eval(context.Background(), "  ")
	require.NoError(t, err)
	assert.False(t, done)

	done, err = h.Eval(context.Background(), "quit")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Empty(t, buf.String())
}

func TestEvalCommands(t *testing.T) {
	h, buf := newHandler(t)
	ctx := context.Background()

	_, err := h.Eval(ctx, ":strict")
	require.NoError(t, err)
	assert.Equal(t, match.Strict, h.Matcher.Strategy())

	_, err = h.Eval(ctx, ":budget 25 1")
	require.NoError(t, err)
	assert.Equal(t, trie.Budget{MaxCost: 25, MaxMismatches: 1}, h.Matcher.Budget())
	assert.Contains(t, buf.String(), "Budget set to (25,1)")

	tests := []string{":fuzzy", ":budget 1", ":budget x 1", ":budget 1 -1", ":"}
	for _, in := range tests {
		_, err := h.Eval(ctx, in)
		assert.Error(t, err, in)
	}
}

func TestEvalFormat(t *testing.T) {
	h, buf := newHandler(t)
	h.Format = "json"

	_, err := h.Eval(context.Background(), "dogs/NNS chase/VBP cats/NNS")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"strategy":"strict"`)
}

func TestSuggest(t *testing.T) {
	h, _ := newHandler(t)

	got := h.suggest("dogs/N", "dogs/N")
	require.Len(t, got, 1)
	assert.Equal(t, "dogs/NNS", got[0].Text)

	got = h.suggest(":st", ":st")
	require.Len(t, got, 1)
	assert.Equal(t, ":strict", got[0].Text)

	assert.Empty(t, h.suggest("dogs", "dogs"))
	assert.Empty(t, h.suggest("", ""))
}
