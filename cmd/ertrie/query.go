package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/ertrie/query"
)

func queryCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "interactive matching of slash tagged sentences",
		Action: func(c *cli.Context) error {
			return queryCommand(c, e, e.ui)
		},
	}
}

// Query command
func queryCommand(c *cli.Context, e *env, ui UI) error {
	t, _, _, err := e.trie()
	if err != nil {
		return err
	}

	// now present the REPL
	h := query.NewHandler(e.matcher(t), t.Tags(), e.format, e.color, ui.Out)
	return h.Run(c.Context)
}
