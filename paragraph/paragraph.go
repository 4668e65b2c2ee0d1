// Package paragraph runs the sentences of a paragraph through a matcher and
// consolidates the bound models.
package paragraph

import (
	"context"

	"go.uber.org/zap"

	"github.com/revelaction/ertrie/consolidate"
	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/logger"
	"github.com/revelaction/ertrie/match"
	"github.com/revelaction/ertrie/model"
	sent "github.com/revelaction/ertrie/sentence"
	"github.com/revelaction/ertrie/worker"
)

type Status string

const (
	StatusMatched Status = "matched"

	// StatusPartial is a match whose template could only be bound in part.
	StatusPartial Status = "partial"

	StatusNoMatch Status = "no_match"
	StatusEmpty   Status = "empty"
	StatusFailed  Status = "failed"
)

// SentenceOutcome is the result of one sentence of the paragraph.
type SentenceOutcome struct {
	// Index is the position of the sentence in the paragraph.
	Index int `json:"index"`

	Id     int                  `json:"id"`
	Status Status               `json:"status"`
	Match  *match.SentenceMatch `json:"match,omitempty"`
	Error  string               `json:"error,omitempty"`

	err error
}

func (o *SentenceOutcome) GetError() error {
	return o.err
}

// HasModel reports whether the sentence contributes to the paragraph model.
func (o *SentenceOutcome) HasModel() bool {
	return o.Status == StatusMatched || o.Status == StatusPartial
}

type Outcome struct {
	Title     string             `json:"title"`
	Model     model.Model        `json:"model"`
	Sentences []*SentenceOutcome `json:"sentences"`
	Stats     consolidate.Stats  `json:"stats"`
}

// Count returns the number of sentences with the given status.
func (o *Outcome) Count(s Status) int {
	n := 0
	for _, so := range o.Sentences {
		if so.Status == s {
			n++
		}
	}
	return n
}

type Processor struct {
	matcher *match.Matcher
	pool    *worker.Pool
	logger  *zap.SugaredLogger
}

// NewProcessor returns a processor matching up to workers sentences at a
// time. l may be nil.
func NewProcessor(m *match.Matcher, workers int, l *zap.SugaredLogger) *Processor {
	return &Processor{
		matcher: m,
		pool:    worker.NewPool(workers),
		logger:  logger.OrNop(l),
	}
}

// Process matches every sentence of doc and consolidates the models in
// sentence order. A sentence that fails does not stop the others. An error
// is returned only when ctx is done before all sentences are processed.
func (p *Processor) Process(ctx context.Context, doc sent.Doc) (*Outcome, error) {
	jobs := make([]worker.Job, len(doc.Sentences))
	for i, s := range doc.Sentences {
		jobs[i] = worker.JobFunc(func(ctx context.Context) worker.Result {
			return p.sentence(ctx, i, s)
		})
	}

	results, err := p.pool.Run(ctx, jobs)
	if err != nil {
		return nil, errors.Wrapf(err, "paragraph %q", doc.Title)
	}

	out := &Outcome{Title: doc.Title, Sentences: make([]*SentenceOutcome, len(results))}
	models := make([]model.Model, 0, len(results))
	for i, r := range results {
		so := r.(*SentenceOutcome)
		out.Sentences[i] = so
		if so.HasModel() {
			models = append(models, so.Match.Model)
		}
	}

	out.Model, out.Stats = consolidate.ConsolidateWithStats(models)

	p.logger.Infow("paragraph",
		"title", doc.Title,
		"sentences", len(doc.Sentences),
		"matched", out.Count(StatusMatched)+out.Count(StatusPartial),
		"no_match", out.Count(StatusNoMatch),
		"entities", len(out.Model.Entities),
		"relationships", len(out.Model.Relationships),
		"entities_merged", out.Stats.EntitiesMerged,
	)

	return out, nil
}

func (p *Processor) sentence(ctx context.Context, index int, s sent.Sentence) *SentenceOutcome {
	so := &SentenceOutcome{Index: index, Id: s.Id}

	sm, err := p.matcher.MatchSentence(ctx, s)
	switch {
	case err == nil:
		so.Match = sm
		so.Status = StatusMatched
		if len(sm.Warnings) > 0 {
			so.Status = StatusPartial
		}
		return so
	case errors.Is(err, errors.ErrNoMatch):
		so.Status = StatusNoMatch
	case errors.Is(err, errors.ErrEmptySentence):
		so.Status = StatusEmpty
		p.logger.Debugw("empty sentence skipped", "index", index)
	default:
		so.Status = StatusFailed
		p.logger.Errorw("sentence failed", "index", index, "error", err.Error())
	}

	so.err = err
	so.Error = err.Error()
	return so
}
