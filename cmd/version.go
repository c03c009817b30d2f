package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := semver.Make(VERSION)
		if err != nil {
			return fmt.Errorf("invalid build version %q: %w", VERSION, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "patterns %s %s/%s\n", v, runtime.GOOS, runtime.GOARCH)
		return nil
	},
}
