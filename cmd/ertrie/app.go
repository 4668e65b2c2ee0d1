package main

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/ertrie/config"
	"github.com/revelaction/ertrie/logger"
	"github.com/revelaction/ertrie/render"
)

// env is the state shared by the commands of one invocation. It is filled
// by the Before hook of the app.
type env struct {
	ui     UI
	cfg    *config.Config
	file   string
	logger *zap.SugaredLogger
	pool   *Pool

	format string
	color  bool
	quiet  bool
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui, pool: &Pool{}}

	return &cli.App{
		Name:                 "ertrie",
		Usage:                "map POS tagged sentences onto entity/relationship templates",
		Version:              BuildTag,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Before:               e.setup,
		After:                e.teardown,
		Commands: []*cli.Command{
			trainCmd(e),
			treeCmd(e),
			matchCmd(e),
			paragraphCmd(e),
			queryCmd(e),
			statCmd(e),
			importCmd(e),
			exportCmd(e),
			modelsCmd(e),
			modelCmd(e),
			configCmd(e),
			versionCmd(e),
		},
	}
}

func (e *env) setup(c *cli.Context) error {
	opts := parseGlobalOptions(c)

	cfg, v, err := config.Load(opts.Config)
	if err != nil {
		return err
	}
	if err := opts.apply(c, cfg); err != nil {
		return err
	}

	l, err := logger.New(cfg.Log.JSON, cfg.Log.Level)
	if err != nil {
		return err
	}

	e.cfg = cfg
	e.file = v.ConfigFileUsed()
	e.logger = l
	e.format = opts.Format
	e.color = !opts.NoColor
	e.quiet = opts.Quiet
	return nil
}

func (e *env) teardown(c *cli.Context) error {
	if e.logger != nil {
		_ = e.logger.Sync()
	}
	return e.pool.Close()
}

func (e *env) renderer() (render.Renderer, error) {
	return render.New(e.format, e.ui.Out, e.color)
}
