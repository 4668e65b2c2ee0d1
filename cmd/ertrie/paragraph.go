package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/paragraph"
	sent "github.com/revelaction/ertrie/sentence"
	"github.com/revelaction/ertrie/storage/filesystem"
)

func paragraphCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "paragraph",
		Usage:     "match every sentence of a paragraph and consolidate the models",
		ArgsUsage: "<file|dir>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Usage: "title of the paragraph, default the file name"},
			&cli.BoolFlag{Name: "save", Usage: "store the consolidated model in the model repository"},
		},
		Action: func(c *cli.Context) error {
			opts, err := parseParagraphOptions(c)
			if err != nil {
				return err
			}
			return paragraphCommand(c, e, opts, e.ui)
		},
	}
}

func paragraphCommand(c *cli.Context, e *env, opts ParagraphOptions, ui UI) error {
	docs, err := readDocs(opts.Path)
	if err != nil {
		return err
	}

	t, _, _, err := e.trie()
	if err != nil {
		return err
	}

	r, err := e.renderer()
	if err != nil {
		return err
	}

	p := paragraph.NewProcessor(e.matcher(t), e.cfg.Workers, e.logger)
	for _, doc := range docs {
		if opts.Title != "" && len(docs) == 1 {
			doc.Title = opts.Title
		}

		out, err := p.Process(c.Context, doc)
		if err != nil {
			return err
		}

		if err := r.Outcome(out); err != nil {
			return err
		}

		if !opts.Save {
			continue
		}

		repo, err := NewModelRepository(e.pool, e.cfg.Storage.Models, e.logger)
		if err != nil {
			return err
		}
		id, err := repo.WriteModel(out.Title, out.Model)
		if err != nil {
			return err
		}
		fmt.Fprintf(ui.Err, "✔ saved model %s (%s)\n", id, out.Title)
	}

	return nil
}

// readDocs reads a paragraph file, or every paragraph file of a directory.
func readDocs(path string) ([]sent.Doc, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "paragraph %s", path)
	}

	if !info.IsDir() {
		doc, err := filesystem.ReadDoc(path)
		if err != nil {
			return nil, err
		}
		if doc.Title == "" {
			doc.Title = filepath.Base(path)
		}
		return []sent.Doc{doc}, nil
	}

	ds, err := filesystem.NewDocStore(path)
	if err != nil {
		return nil, err
	}
	list, err := ds.List()
	if err != nil {
		return nil, err
	}

	docs := make([]sent.Doc, 0, len(list))
	for _, d := range list {
		doc, err := ds.Read(d.Id)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
