package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/ertrie/config"
)

func configCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "manage the ertrie configuration",
		Description: `Configuration hierarchy (highest to lowest priority):
1. command line flags
2. environment variables (ERTRIE_*)
3. config file (~/.ertrie/config.yaml)
4. defaults`,
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "show the current configuration",
				Action: func(c *cli.Context) error {
					return configShowCommand(e, e.ui)
				},
			},
			{
				Name:      "init",
				Usage:     "write the default configuration file",
				ArgsUsage: "[path]",
				Action: func(c *cli.Context) error {
					return configInitCommand(c.Args().First(), e.ui)
				},
			},
		},
	}
}

func configShowCommand(e *env, ui UI) error {
	if e.file != "" {
		fmt.Fprintf(ui.Err, "Configuration file: %s\n\n", e.file)
	} else {
		fmt.Fprintf(ui.Err, "No configuration file found (using defaults)\n\n")
	}

	data, err := e.cfg.YAML()
	if err != nil {
		return err
	}
	_, err = ui.Out.Write(data)
	return err
}

func configInitCommand(path string, ui UI) error {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := config.Init(path); err != nil {
		return err
	}

	_, err := fmt.Fprintf(ui.Out, "✓ Created default configuration: %s\n", path)
	return err
}
