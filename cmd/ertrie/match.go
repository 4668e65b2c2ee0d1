package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/ertrie/match"
	sent "github.com/revelaction/ertrie/sentence"
	"github.com/revelaction/ertrie/tagger"
	"github.com/revelaction/ertrie/trie"
)

func matchCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "match one slash tagged sentence and print its model",
		ArgsUsage: "word/TAG[/lemma] ...",
		Action: func(c *cli.Context) error {
			opts, err := parseMatchOptions(c)
			if err != nil {
				return err
			}
			return matchCommand(c, e, opts)
		},
	}
}

func matchCommand(c *cli.Context, e *env, opts MatchOptions) error {
	tokens, err := tagger.ParseSlash(opts.Sentence)
	if err != nil {
		return err
	}

	t, _, _, err := e.trie()
	if err != nil {
		return err
	}

	sm, err := e.matcher(t).MatchSentence(c.Context, sent.Sentence{Tokens: tokens})
	if err != nil {
		return err
	}

	r, err := e.renderer()
	if err != nil {
		return err
	}
	return r.Match(sm)
}

func (e *env) matcher(t *trie.Trie) *match.Matcher {
	opts := append(e.cfg.MatchOptions(), match.WithLogger(e.logger))
	return match.NewMatcher(t, opts...)
}
