package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qntx/zcheck/internal/probe"
	"github.com/qntx/zcheck/internal/ui"
)

var probeCmd = &cobra.Command{
	Use:   "probe [module]",
	Short: "Show compile-time and runtime codec library versions",
	Long: `Probe reports, for each codec's backing library, the version zcheck was
built against and the version actually linked into the running binary.

The runtime version comes from the binary's embedded build info, reduced
to numeric form (major*10000 + minor*100 + patch). A library whose
runtime version cannot be determined fails the probe.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		r, err := probe.Run(args[0], probe.BuildInfoQuery)
		if err != nil {
			return err
		}
		printReport(r)
		return nil
	}

	ui.Header("Codec Libraries")

	reports, err := probe.All(probe.BuildInfoQuery)
	for _, r := range reports {
		printReport(r)
	}
	if err != nil {
		return err
	}

	ui.Success("all codec libraries linked and usable")
	return nil
}

func printReport(r *probe.Report) {
	fmt.Printf("%s\n", r.Module)
	fmt.Printf("  compile-time: %s\n", r.Compiled)
	fmt.Printf("  runtime:      %d\n", r.Runtime)
}
