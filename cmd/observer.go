package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/codifire/designpatterns/config"
	"github.com/codifire/designpatterns/internal/metrics"
	"github.com/codifire/designpatterns/scenario"
)

var (
	observerMode    string
	observerPolicy  string
	observerJSON    bool
	observerMetrics bool
)

var observerCmd = &cobra.Command{
	Use:   "observer [scenario.yaml]",
	Short: "Replay a notification scenario",
	Long: `Replay a notification scenario and print what every client receives.

Without a file the built-in demo runs: George listens on Arts, Brad on Gadgets
and Nicolas on the catch-all Anything; Arts "Monalisa" and Gadgets "iPhoneX"
are pushed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runObserver(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
	},
}

func init() {
	observerCmd.Flags().StringVarP(&observerMode, "mode", "m", "", "Hub variant: observer or delegate (default: from the scenario)")
	observerCmd.Flags().StringVarP(&observerPolicy, "policy", "p", "", "Catch-all policy: always or unmatched (default: from the scenario)")
	observerCmd.Flags().BoolVar(&observerJSON, "json", false, "Print the run transcript as JSON")
	observerCmd.Flags().BoolVar(&observerMetrics, "metrics", false, "Print dispatch counters after the run")
}

func runObserver(out, errOut io.Writer, args []string) error {
	sc := scenario.Default()
	policy := observerPolicy
	if len(args) == 1 {
		loaded, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		sc = loaded
	} else if policy == "" {
		policy = config.Conf.CatchAll
	}

	runner := scenario.Runner{Mode: observerMode, Policy: policy}

	var prom *metrics.Prom
	if observerMetrics || config.Conf.Metrics {
		prom = metrics.NewProm()
		runner.Recorder = prom
	}

	if !observerJSON {
		paint := painter(out)
		runner.OnLine = func(client, message string) {
			fmt.Fprintf(out, "%s: %s\n", paint(client), message)
		}
	}

	transcript, err := runner.Run(sc)
	if err != nil {
		return err
	}

	metricsOut := out
	if observerJSON {
		data, err := transcript.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		metricsOut = errOut
	}

	if prom != nil {
		fmt.Fprintln(metricsOut, "# dispatch metrics")
		if _, err := prom.WriteTo(metricsOut); err != nil {
			return err
		}
	}
	return nil
}

// painter colors client names when out is a terminal.
func painter(out io.Writer) func(string) string {
	f, ok := out.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return func(s string) string { return s }
	}
	name := color.New(color.FgCyan, color.Bold)
	name.EnableColor()
	return func(s string) string { return name.Sprint(s) }
}
