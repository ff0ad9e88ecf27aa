package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/coverart"
	"github.com/simonhull/coverart/internal/logger"
)

func newExtractCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "extract <audio-file>",
		Short: "Write the embedded cover to an image file",
		Long: `Write the embedded cover to an image file.

Without -o the image is written next to the working directory as
<audio name><image extension>, or into extract.output_dir when configured.
Use -o - to write the raw image to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			log := logger.FromContext(cmd.Context())

			pic, err := coverart.ReadCoverFile(src, a.readOptions(log)...)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(pic.Data)
				return err
			}

			dst := output
			if dst == "" {
				base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
				dst = filepath.Join(a.cfg.Extract.OutputDir, base+coverart.MIMEExtension(pic.MIMEType))
			}
			if dir := filepath.Dir(dst); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}
			if err := os.WriteFile(dst, pic.Data, 0o644); err != nil {
				return fmt.Errorf("write cover: %w", err)
			}

			attrs := []any{"path", src, "output", dst, "mime", pic.MIMEType, "bytes", len(pic.Data)}
			if pic.Width > 0 {
				attrs = append(attrs, "width", pic.Width, "height", pic.Height, "depth", pic.Depth)
			}
			log.Info("extracted cover", attrs...)
			fmt.Fprintln(cmd.OutOrStdout(), dst)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output image path, or - for stdout")
	return cmd
}
