package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/coverart"
	"github.com/simonhull/coverart/internal/logger"
)

func newEmbedCmd(a *app) *cobra.Command {
	var (
		mime          string
		backup        string
		strict        bool
		preserveMTime bool
		validate      bool
	)

	cmd := &cobra.Command{
		Use:   "embed <image> <audio-file>...",
		Short: "Replace the cover of audio files with an image",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}

			opts := a.writeOptions(cmd, backup, strict, preserveMTime, validate)
			log := logger.FromContext(cmd.Context())

			var errs []error
			for _, path := range args[1:] {
				if err := embedOne(log, path, data, mime, opts); err != nil {
					log.Error("embed failed", "path", path, "error", err)
					errs = append(errs, err)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return errors.Join(errs...)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&mime, "mime", "", "MIME type to store (default: detected from the image)")
	flags.StringVar(&backup, "backup", "", "copy each file to <file><suffix> before writing")
	flags.BoolVar(&strict, "strict", false, "reject --mime values that do not match the image")
	flags.BoolVar(&preserveMTime, "preserve-mtime", false, "keep the original modification time")
	flags.BoolVar(&validate, "validate", false, "read the cover back after writing")
	return cmd
}

// writeOptions merges embed flags over the [embed] config section. A flag
// only wins when it was set on the command line.
func (a *app) writeOptions(cmd *cobra.Command, backup string, strict, preserveMTime, validate bool) []coverart.WriteOption {
	cfg := a.cfg.Embed
	flags := cmd.Flags()
	if flags.Changed("backup") {
		cfg.BackupSuffix = backup
	}
	if flags.Changed("strict") {
		cfg.StrictMIME = strict
	}
	if flags.Changed("preserve-mtime") {
		cfg.PreserveModTime = preserveMTime
	}
	if flags.Changed("validate") {
		cfg.Validate = validate
	}

	var opts []coverart.WriteOption
	if cfg.BackupSuffix != "" {
		opts = append(opts, coverart.WithBackup(cfg.BackupSuffix))
	}
	if cfg.StrictMIME {
		opts = append(opts, coverart.WithStrictMIME())
	}
	if cfg.PreserveModTime {
		opts = append(opts, coverart.WithPreserveModTime())
	}
	if cfg.Validate {
		opts = append(opts, coverart.WithValidation())
	}
	return opts
}

func embedOne(log *slog.Logger, path string, data []byte, mime string, opts []coverart.WriteOption) error {
	file, err := coverart.Open(path, coverart.WithLogger(log))
	if err != nil {
		return err
	}
	defer file.Close()

	if err := file.WriteCover(data, mime, opts...); err != nil {
		return err
	}
	log.Info("embedded cover", "path", path, "format", file.Format.String())
	return nil
}
