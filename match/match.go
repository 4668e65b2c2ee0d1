// Package match maps tagged sentences onto the templates of a trained trie
// and binds them to the words of the sentence.
package match

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/logger"
	"github.com/revelaction/ertrie/model"
	sent "github.com/revelaction/ertrie/sentence"
	"github.com/revelaction/ertrie/trie"
)

// Strategy selects the lookup.
type Strategy string

const (
	// Strict is the greedy single path lookup.
	Strict Strategy = "strict"

	// Approximate is the cost-bounded lookup.
	Approximate Strategy = "approx"

	// Auto accepts an exact Strict path, otherwise it runs Approximate.
	Auto Strategy = "auto"

	DefaultStrategy = Auto
)

func SupportedStrategies() []string {
	return []string{string(Strict), string(Approximate), string(Auto)}
}

// ParseStrategy returns the Strategy named s.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range SupportedStrategies() {
		if s == st {
			return Strategy(s), nil
		}
	}
	return "", errors.Wrapf(errors.ErrInvalidInput, "unknown strategy %q, allowed values are %s", s, strings.Join(SupportedStrategies(), ", "))
}

// DefaultPunctuation are the tags removed from a sentence before lookup.
var DefaultPunctuation = []string{"POS", ","}

// SentenceMatch is a sentence bound to the template it matched.
type SentenceMatch struct {
	// Sentence is the sentence without punctuation, the one the model is
	// bound to.
	Sentence sent.Sentence `json:"sentence"`

	Model model.Model `json:"model"`

	// Path is the tag path of the matched template.
	Path []string `json:"path"`

	Cost       int      `json:"cost"`
	Mismatches int      `json:"mismatches"`
	Strategy   Strategy `json:"strategy"`

	// Warnings lists the template parts that could not be bound.
	Warnings []string `json:"warnings,omitempty"`
}

// Matcher looks sentences up in a trained trie. A Matcher is safe for
// concurrent use as long as the trie is not modified.
type Matcher struct {
	trie        *trie.Trie
	strategy    Strategy
	budget      trie.Budget
	punctuation map[string]bool
	cache       *gocache.Cache
	logger      *zap.SugaredLogger
}

type Option func(*Matcher)

func WithStrategy(s Strategy) Option {
	return func(m *Matcher) { m.strategy = s }
}

func WithBudget(b trie.Budget) Option {
	return func(m *Matcher) { m.budget = b }
}

// WithPunctuation replaces the tags stripped before lookup.
func WithPunctuation(tags []string) Option {
	return func(m *Matcher) { m.punctuation = sent.TagSet(tags) }
}

// WithCache memoizes lookups by tag sequence for ttl.
func WithCache(ttl time.Duration) Option {
	return func(m *Matcher) {
		m.cache = gocache.New(ttl, 2*ttl)
	}
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(m *Matcher) { m.logger = logger.OrNop(l) }
}

func NewMatcher(t *trie.Trie, opts ...Option) *Matcher {
	m := &Matcher{
		trie:        t,
		strategy:    DefaultStrategy,
		budget:      trie.DefaultBudget,
		punctuation: sent.TagSet(DefaultPunctuation),
		logger:      logger.OrNop(nil),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Matcher) Strategy() Strategy {
	return m.strategy
}

func (m *Matcher) Budget() trie.Budget {
	return m.budget
}

// With returns a copy of the matcher with opts applied. The copy shares the
// trie and the cache.
func (m *Matcher) With(opts ...Option) *Matcher {
	c := *m
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// MatchSentence strips the punctuation of s, looks its tags up and binds the
// found template.
//
// errors.ErrEmptySentence and errors.ErrNoMatch are returned as errors. A
// template that binds only partially is not an error: the parts that could
// not be bound are listed in Warnings.
func (m *Matcher) MatchSentence(ctx context.Context, s sent.Sentence) (*SentenceMatch, error) {
	stripped, _ := s.Strip(m.punctuation)
	if stripped.Len() == 0 {
		return nil, errors.Wrapf(errors.ErrEmptySentence, "sentence %d", s.Id)
	}

	tags := stripped.Tags()
	c, used, err := m.lookup(ctx, tags)
	if err != nil {
		if errors.Is(err, errors.ErrNoMatch) {
			m.logger.Infow("no match", "sentence", s.Id, "tags", strings.Join(tags, " "), "strategy", string(m.strategy), "budget", m.budget.String())
		}
		return nil, err
	}

	tpl, _ := c.Node.Template()
	bound, err := model.Bind(tpl, stripped)

	sm := &SentenceMatch{
		Sentence:   stripped,
		Model:      bound,
		Path:       c.Tags(),
		Cost:       c.Cost,
		Mismatches: c.Mismatches,
		Strategy:   used,
	}

	if err != nil {
		if !errors.Is(err, errors.ErrMalformedTemplate) {
			return nil, err
		}
		m.logger.Warnw("malformed template", "sentence", s.Id, "path", strings.Join(sm.Path, " "), "error", err.Error())
		sm.Warnings = append(sm.Warnings, err.Error())
	}

	m.logger.Debugw("match", "sentence", s.Id, "strategy", string(used), "cost", c.Cost, "mismatches", c.Mismatches)
	return sm, nil
}

// Match is MatchSentence for a sentence given as parallel words and tags.
func (m *Matcher) Match(ctx context.Context, words, tags []string) (*SentenceMatch, error) {
	return m.MatchSentence(ctx, sent.New(words, tags))
}

type cached struct {
	candidate trie.Candidate
	strategy  Strategy
	found     bool
}

func (m *Matcher) lookup(ctx context.Context, tags []string) (trie.Candidate, Strategy, error) {
	key := m.cacheKey(tags)
	if m.cache != nil {
		if v, ok := m.cache.Get(key); ok {
			e := v.(cached)
			if !e.found {
				return trie.Candidate{}, "", errors.Wrapf(errors.ErrNoMatch, "%s %s (cached)", m.strategy, strings.Join(tags, " "))
			}
			return e.candidate, e.strategy, nil
		}
	}

	c, used, err := m.search(ctx, tags)
	if err != nil && !errors.Is(err, errors.ErrNoMatch) {
		return c, used, err
	}

	if m.cache != nil {
		m.cache.Set(key, cached{candidate: c, strategy: used, found: err == nil}, gocache.DefaultExpiration)
	}
	return c, used, err
}

func (m *Matcher) search(ctx context.Context, tags []string) (trie.Candidate, Strategy, error) {
	switch m.strategy {
	case Strict:
		c, err := m.trie.Strict(tags)
		return c, Strict, err
	case Approximate:
		c, err := m.trie.Approximate(ctx, tags, m.budget)
		return c, Approximate, err
	case Auto:
		// only an exact path short-circuits; family hits go through the budget
		c, err := m.trie.Strict(tags)
		if err == nil && c.Cost == trie.ExactCost {
			return c, Strict, nil
		}
		if err != nil && !errors.Is(err, errors.ErrNoMatch) {
			return c, Strict, err
		}
		c, err = m.trie.Approximate(ctx, tags, m.budget)
		return c, Approximate, err
	}

	return trie.Candidate{}, "", errors.Wrapf(errors.ErrInvalidInput, "unknown strategy %q", m.strategy)
}

func (m *Matcher) cacheKey(tags []string) string {
	var b strings.Builder
	b.WriteString(string(m.strategy))
	b.WriteByte(0)
	b.WriteString(m.budget.String())
	for _, t := range tags {
		b.WriteByte(0)
		b.WriteString(t)
	}
	return b.String()
}
