package main

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/ertrie/config"
	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/match"
	"github.com/revelaction/ertrie/render"
)

// Option structs for the commands that have flags
type GlobalOptions struct {
	Config  string
	Format  string
	NoColor bool
	Quiet   bool
}

type TreeOptions struct {
	Words bool
}

type MatchOptions struct {
	Sentence string
}

type ParagraphOptions struct {
	Path  string
	Title string
	Save  bool
}

type ImportOptions struct {
	From string
	To   string
}

type ExportOptions struct {
	From string
	To   string
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "config file (default ~/.ertrie/config.yaml)"},
		&cli.StringFlag{Name: "examples", Aliases: []string{"e"}, Usage: "example repository, a directory or a sqlite file"},
		&cli.StringFlag{Name: "models", Aliases: []string{"m"}, Usage: "model repository, a directory or a sqlite file"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: render.DefaultFormat, Usage: "output format: " + strings.Join(render.SupportedFormats(), ", ")},
		&cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "no progress bars"},
		&cli.StringFlag{Name: "strategy", Aliases: []string{"s"}, Usage: "lookup strategy: " + strings.Join(match.SupportedStrategies(), ", ")},
		&cli.IntFlag{Name: "max-cost", Usage: "maximum cumulative tag cost of the approximate lookup"},
		&cli.IntFlag{Name: "max-mismatches", Usage: "maximum number of non identical tags of the approximate lookup"},
		&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "sentences matched in parallel"},
		&cli.BoolFlag{Name: "no-cache", Usage: "disable the lookup cache"},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		&cli.BoolFlag{Name: "log-json", Usage: "log as JSON"},
	}
}

func parseGlobalOptions(c *cli.Context) GlobalOptions {
	return GlobalOptions{
		Config:  c.String("config"),
		Format:  c.String("format"),
		NoColor: c.Bool("no-color"),
		Quiet:   c.Bool("quiet"),
	}
}

// apply validates the options and overrides the configuration with the
// flags set on the command line.
func (o GlobalOptions) apply(c *cli.Context, cfg *config.Config) error {
	if !isSupported(o.Format, render.SupportedFormats()) {
		return errors.Wrapf(errors.ErrInvalidInput, "format %q: allowed values are %s", o.Format, strings.Join(render.SupportedFormats(), ", "))
	}

	if c.IsSet("examples") {
		cfg.Storage.Examples = c.String("examples")
	}
	if c.IsSet("models") {
		cfg.Storage.Models = c.String("models")
	}
	if c.IsSet("strategy") {
		cfg.Lookup.Strategy = c.String("strategy")
	}
	if c.IsSet("max-cost") {
		cfg.Budget.MaxCost = c.Int("max-cost")
	}
	if c.IsSet("max-mismatches") {
		cfg.Budget.MaxMismatches = c.Int("max-mismatches")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.Bool("no-cache") {
		cfg.Lookup.CacheEnabled = false
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-json") {
		cfg.Log.JSON = c.Bool("log-json")
	}

	return cfg.Validate()
}

func isSupported(v string, allowed []string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

func parseTreeOptions(c *cli.Context) TreeOptions {
	return TreeOptions{Words: c.Bool("words")}
}

func parseMatchOptions(c *cli.Context) (MatchOptions, error) {
	if c.NArg() == 0 {
		return MatchOptions{}, errors.WithHint(
			errors.Wrap(errors.ErrInvalidInput, "match requires a sentence"),
			`tag every word, f.ex. ertrie match "Dogs/NNS chase/VBP cats/NNS"`)
	}
	return MatchOptions{Sentence: strings.Join(c.Args().Slice(), " ")}, nil
}

func parseParagraphOptions(c *cli.Context) (ParagraphOptions, error) {
	if c.NArg() != 1 {
		return ParagraphOptions{}, errors.Wrap(errors.ErrInvalidInput, "paragraph requires one file or directory")
	}
	return ParagraphOptions{
		Path:  c.Args().First(),
		Title: c.String("title"),
		Save:  c.Bool("save"),
	}, nil
}

func parseImportOptions(c *cli.Context) ImportOptions {
	return ImportOptions{From: c.String("from"), To: c.String("to")}
}

func parseExportOptions(c *cli.Context) ExportOptions {
	return ExportOptions{From: c.String("from"), To: c.String("to")}
}
