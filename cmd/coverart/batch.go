package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/coverart"
	"github.com/simonhull/coverart/internal/coverstore"
	"github.com/simonhull/coverart/internal/logger"
)

func newBatchCmd(a *app) *cobra.Command {
	var storeDir string

	cmd := &cobra.Command{
		Use:   "batch <dir>...",
		Short: "Extract covers from every audio file under the given directories",
		Long: `Extract covers from every audio file under the given directories.

Covers are stored once per distinct image in a content-addressed store.
For each file with a cover, a line "<key>\t<path>" is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("store") {
				a.cfg.Batch.StoreDir = storeDir
			}

			log := logger.FromContext(cmd.Context())

			paths, err := collectAudio(args, a.cfg.Batch.Extensions)
			if err != nil {
				return err
			}
			log.Info("scanning", "files", len(paths))

			results, err := coverart.ReadCovers(cmd.Context(), paths, a.readOptions(log)...)
			if err != nil {
				return err
			}

			store := coverstore.NewStore(a.cfg.Batch.StoreDir)
			var stored, missing, failed, created int

			for _, r := range results {
				switch {
				case coverart.IsNoCover(r.Err):
					missing++
					log.Debug("no cover", "path", r.Path)
					continue
				case r.Err != nil:
					failed++
					log.Warn("read failed", "path", r.Path, "error", r.Err)
					continue
				}

				key, isNew, err := store.Put(r.Picture.Data, coverart.MIMEExtension(r.Picture.MIMEType))
				if err != nil {
					return fmt.Errorf("store cover of %s: %w", r.Path, err)
				}
				log.Debug("stored cover", "path", r.Path, "key", key,
					"width", r.Picture.Width, "height", r.Picture.Height)
				stored++
				if isNew {
					created++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key, r.Path)
			}

			log.Info("batch done",
				"stored", stored, "unique", created, "no_cover", missing, "failed", failed,
				"store", a.cfg.Batch.StoreDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&storeDir, "store", "", "cover store directory (default from config)")
	return cmd
}

// collectAudio walks roots and returns files whose extension is in exts,
// in walk order.
func collectAudio(roots []string, exts []string) ([]string, error) {
	var paths []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
	}
	return paths, nil
}
