package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/coverart"
	"github.com/simonhull/coverart/internal/config"
	"github.com/simonhull/coverart/internal/logger"
)

// app carries state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "coverart",
		Short:         "Read and write embedded cover art with TagLib",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", os.Getenv("COVERART_CONFIG"), "path to coverart.toml")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newExtractCmd(a),
		newEmbedCmd(a),
		newInfoCmd(a),
		newBatchCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration and installs the command logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	a.cfg = cfg
	log := logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format).With("command", cmd.Name())
	cmd.SetContext(logger.WithContext(cmd.Context(), log))
	return nil
}

// readOptions turns the [extract] config section into cover read options.
func (a *app) readOptions(log *slog.Logger) []coverart.Option {
	opts := []coverart.Option{
		coverart.WithLogger(log),
		coverart.WithMaxCoverSize(a.cfg.Extract.MaxCoverSize),
	}
	if a.cfg.Extract.Measure {
		opts = append(opts, coverart.WithCoverMeasure())
	}
	return opts
}
