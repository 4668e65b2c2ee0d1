package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/ertrie/render"
)

func treeCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "tree",
		Usage: "print the trained trie",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "words", Usage: "print the word that created each node"},
		},
		Action: func(c *cli.Context) error {
			return treeCommand(e, parseTreeOptions(c), e.ui)
		},
	}
}

func treeCommand(e *env, opts TreeOptions, ui UI) error {
	t, _, _, err := e.trie()
	if err != nil {
		return err
	}

	d := render.TagsOnly
	if opts.Words {
		d = render.TagsAndWords
	}
	return render.Tree(ui.Out, t, d, e.color)
}
