package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/revelaction/ertrie/match"
	"github.com/revelaction/ertrie/model"
	"github.com/revelaction/ertrie/paragraph"
	sent "github.com/revelaction/ertrie/sentence"
)

func testMatch() *match.SentenceMatch {
	return &match.SentenceMatch{
		Sentence: sent.New([]string{"Dogs", "chase", "cats"}, []string{"NNS", "VBP", "NNS"}),
		Model: model.Model{
			Entities: []model.Entity{
				{Id: 1, WordId: 0, Length: 1, Name: "Dogs", Lemma: "dogs"},
				{Id: 2, WordId: 2, Length: 1, Name: "cats", Lemma: "cats"},
			},
			Relationships: []model.Relationship{
				{Id: 3, WordId: 1, Length: 1, Name: "chase", Connects: []model.RelationEntity{{EntityId: 1, Name: "dogs"}, {EntityId: 2, Name: "cats"}}},
			},
		},
		Path:     []string{"NNS", "VBZ", "NNS"},
		Cost:     25,
		Strategy: match.Approximate,
	}
}

func TestJSONRendererModelEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Model(model.Model{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var m model.Model
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if !m.IsEmpty() {
		t.Fatalf("expected empty model, got %+v", m)
	}
}

func TestJSONRendererMatch(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Match(testMatch()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result match.SentenceMatch
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if result.Cost != 25 {
		t.Errorf("expected cost 25, got %d", result.Cost)
	}

	if result.Strategy != match.Approximate {
		t.Errorf("expected strategy approx, got %q", result.Strategy)
	}

	if len(result.Model.Relationships) != 1 {
		t.Fatalf("expected 1 relationship, got %d", len(result.Model.Relationships))
	}

	if got := result.Model.Relationships[0].Connects[1].EntityId; got != 2 {
		t.Errorf("expected connected entity 2, got %d", got)
	}
}

func TestJSONRendererOutcome(t *testing.T) {
	o := &paragraph.Outcome{
		Title: "pets",
		Sentences: []*paragraph.SentenceOutcome{
			{Index: 0, Status: paragraph.StatusMatched, Match: testMatch()},
			{Index: 1, Status: paragraph.StatusNoMatch, Error: "no match"},
		},
		Model: testMatch().Model,
	}

	var buf bytes.Buffer
	if err := NewJSONRenderer(&buf).Outcome(o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got paragraph.Outcome
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(got.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(got.Sentences))
	}

	if got.Sentences[1].Status != paragraph.StatusNoMatch {
		t.Errorf("expected status no_match, got %q", got.Sentences[1].Status)
	}

	if len(got.Model.Entities) != 2 {
		t.Errorf("expected 2 entities, got %d", len(got.Model.Entities))
	}
}
