package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/ertrie/errors"
)

func modelsCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "models",
		Usage: "list the stored paragraph models, newest first",
		Action: func(c *cli.Context) error {
			return modelsCommand(e, e.ui)
		},
	}
}

func modelCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "model",
		Usage:     "print a stored paragraph model",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.Wrap(errors.ErrInvalidInput, "model requires an id")
			}
			return modelCommand(e, c.Args().First(), e.ui)
		},
	}
}

func modelsCommand(e *env, ui UI) error {
	repo, err := NewModelRepository(e.pool, e.cfg.Storage.Models, e.logger)
	if err != nil {
		return err
	}

	list, err := repo.ListModels()
	if err != nil {
		return err
	}

	for _, sm := range list {
		fmt.Fprintf(ui.Out, "%s  %s  %3de %3dr  %s\n", sm.Id, sm.Created.Local().Format(time.DateTime),
			len(sm.Model.Entities), len(sm.Model.Relationships), sm.Title)
	}
	return nil
}

func modelCommand(e *env, id string, ui UI) error {
	repo, err := NewModelRepository(e.pool, e.cfg.Storage.Models, e.logger)
	if err != nil {
		return err
	}

	sm, err := repo.ReadModel(id)
	if err != nil {
		return err
	}

	r, err := e.renderer()
	if err != nil {
		return err
	}

	if e.format == "text" {
		fmt.Fprintf(ui.Out, "📄 %s\n", sm.Title)
	}
	return r.Model(sm.Model)
}
