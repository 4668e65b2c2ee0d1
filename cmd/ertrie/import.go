package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/storage"
	"github.com/revelaction/ertrie/storage/filesystem"
	"github.com/revelaction/ertrie/storage/sqlite/zombiezen"
)

func importCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "copy the example sets of a directory into a sqlite database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Required: true, Usage: "example directory"},
			&cli.StringFlag{Name: "to", Required: true, Usage: "sqlite database"},
		},
		Action: func(c *cli.Context) error {
			return importCommand(e, parseImportOptions(c), e.ui)
		},
	}
}

func exportCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "copy the example sets of a sqlite database into a directory",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Required: true, Usage: "sqlite database"},
			&cli.StringFlag{Name: "to", Required: true, Usage: "example directory"},
		},
		Action: func(c *cli.Context) error {
			return exportCommand(e, parseExportOptions(c), e.ui)
		},
	}
}

func importCommand(e *env, opts ImportOptions, ui UI) error {
	info, err := os.Stat(opts.From)
	if err != nil || !info.IsDir() {
		return errors.Wrapf(errors.ErrInvalidInput, "import source %s is not a directory", opts.From)
	}
	if !isDatabase(opts.To) {
		return errors.WithHint(errors.Wrapf(errors.ErrInvalidInput, "import target %s is not a database", opts.To), "use a .db file")
	}

	pool, err := e.pool.Open(opts.To)
	if err != nil {
		return err
	}

	n, err := copyExamples(filesystem.NewExampleStore(opts.From), zombiezen.NewExampleStore(pool, e.logger))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ui.Err, "Successfully imported %d examples from %s to %s\n", n, opts.From, opts.To)
	return nil
}

func exportCommand(e *env, opts ExportOptions, ui UI) error {
	if _, err := os.Stat(opts.From); err != nil || !isDatabase(opts.From) {
		return errors.Wrapf(errors.ErrInvalidInput, "export source %s is not a database", opts.From)
	}

	pool, err := e.pool.Open(opts.From)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.To, 0o755); err != nil {
		return errors.Wrapf(err, "export target %s", opts.To)
	}

	n, err := copyExamples(zombiezen.NewExampleStore(pool, e.logger), filesystem.NewExampleStore(opts.To))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ui.Err, "Successfully exported %d examples from %s to %s\n", n, opts.From, opts.To)
	return nil
}

func copyExamples(src storage.ExampleReader, dst storage.ExampleWriter) (int, error) {
	names, err := src.Names()
	if err != nil {
		return 0, err
	}

	n := 0
	for _, name := range names {
		lib, err := src.Read(name)
		if err != nil {
			return n, err
		}
		if err := dst.Write(name, lib); err != nil {
			return n, errors.Wrapf(err, "failed to copy example set %s", name)
		}
		n += len(lib)
	}
	return n, nil
}
