// Package cmd is the patterns command line.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codifire/designpatterns/config"
	"github.com/codifire/designpatterns/internal/logger"
)

// VERSION is set at build time with -ldflags "-X .../cmd.VERSION=x.y.z".
var VERSION = "0.1.0"

var envFile string
var logCloser io.Closer
var initLog = config.InitLog

var rootCmd = &cobra.Command{
	Use:           "patterns",
	Short:         "Observer and delegate pattern playground",
	Long:          "Replays notification scenarios against the observer and delegate hubs.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		// Development echo goes with diagnostics, never with command output.
		logger.Console = cmd.ErrOrStderr()
		logCloser, err = initLog(cfg.Log)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", "", "Load environment variables from this .env file")
	rootCmd.AddCommand(versionCmd, observerCmd)
}

// run executes the root command. The log file, if any, is closed whether
// the command succeeds or fails.
func run() error {
	defer closeLog()
	return rootCmd.Execute()
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %s", err))
		os.Exit(1)
	}
}
