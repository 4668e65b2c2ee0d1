package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/ertrie/model"
	sent "github.com/revelaction/ertrie/sentence"
	"github.com/revelaction/ertrie/storage"
	"github.com/revelaction/ertrie/trie"
)

func trainCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "train",
		Usage: "build the trie from the example repository and report invalid examples",
		Action: func(c *cli.Context) error {
			return trainCommand(e, e.ui)
		},
	}
}

func trainCommand(e *env, ui UI) error {
	t, lib, skipped, err := e.trie()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(ui.Out, "Trained %d examples (%d skipped) into %d nodes, %d templates\n", len(lib)-skipped, skipped, t.Len(), t.Leaves())
	return err
}

// trie trains a trie with the examples of the configured repository.
// Examples that fail validation are logged and skipped.
func (e *env) trie() (*trie.Trie, model.Library, int, error) {
	repo, err := NewExampleRepository(e.pool, e.cfg.Storage.Examples, e.logger)
	if err != nil {
		return nil, nil, 0, err
	}
	return train(repo, e.cfg.Lookup.PunctuationTags, e)
}

func train(repo storage.ExampleReader, punctuation []string, e *env) (*trie.Trie, model.Library, int, error) {
	names, err := repo.Names()
	if err != nil {
		return nil, nil, 0, err
	}

	var bar *uiprogress.Bar
	if !e.quiet && len(names) > 0 {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(names))
		bar.AppendCompleted()
		bar.PrependElapsed()
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			if b.Current() == 0 {
				return ""
			}
			return names[b.Current()-1]
		})
		defer uiprogress.Stop()
	}

	punct := sent.TagSet(punctuation)
	t := trie.New()
	var all model.Library
	skipped := 0

	for _, name := range names {
		lib, err := repo.Read(name)
		if err != nil {
			return nil, nil, 0, err
		}

		for _, ex := range lib {
			all = append(all, ex)
			// spans are checked against the tokens as written, before stripping
			err := ex.Validate()
			if err == nil {
				err = t.InsertExample(ex.Strip(punct))
			}
			if err != nil {
				e.logger.Warnw("skipping example", "set", name, "example", ex.Name, "error", err.Error())
				skipped++
			}
		}

		if bar != nil {
			bar.Incr()
		}
	}

	e.logger.Debugw("trained", "examples", len(all), "skipped", skipped, "nodes", t.Len(), "templates", t.Leaves())
	return t, all, skipped, nil
}
