package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/coverart"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			info := coverart.GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "coverart %s (commit %s, built %s, %s, taglib %s)\n",
				info.Version, info.GitCommit, info.BuildTime, info.GoVersion, info.TagLibVersion)
		},
	}
}
