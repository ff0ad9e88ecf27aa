package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/coverart"
	"github.com/simonhull/coverart/internal/logger"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <audio-file>...",
		Short: "Describe the embedded cover of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			log := logger.FromContext(cmd.Context())

			var errs []error
			for _, path := range args {
				file, err := coverart.Open(path, coverart.WithLogger(log), coverart.WithCoverMeasure())
				if err != nil {
					errs = append(errs, err)
					continue
				}

				pic, err := file.ReadCover()
				file.Close()

				switch {
				case coverart.IsNoCover(err):
					fmt.Fprintf(out, "%s\t%s\tno cover\n", path, file.Format)
				case err != nil:
					errs = append(errs, err)
				default:
					fmt.Fprintf(out, "%s\t%s\t%s\n", path, file.Format, pic)
				}
			}
			return errors.Join(errs...)
		},
	}
}
