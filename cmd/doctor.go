package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andytrench/next-express/npm"
	"github.com/andytrench/next-express/preflight"
	"github.com/andytrench/next-express/runtime"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local toolchain for project creation",
	Long: "doctor probes Node.js, npm, git and the required global packages,\n" +
		"and with --fix installs whatever is missing.",
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "install missing global packages")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	runner := runtime.NewExecRunner()
	client := npm.New(runner)
	ctx := cmd.Context()

	report := preflight.Check(ctx, runner, client)
	printReport(report)

	if report.OK() {
		fmt.Println("\nAll required tools are available.")
		return nil
	}

	if !doctorFix {
		return fmt.Errorf("missing tools: %v (rerun with --fix to install the global packages)", report.Missing())
	}

	fmt.Println("\nInstalling missing global packages...")
	if err := preflight.Fix(ctx, client, func(line string) { fmt.Println(line) }); err != nil {
		return err
	}

	report = preflight.Check(ctx, runner, client)
	printReport(report)
	if !report.OK() {
		return fmt.Errorf("still missing after fix: %v", report.Missing())
	}
	fmt.Println("\nAll required tools are available.")
	return nil
}

func printReport(report *preflight.Report) {
	for _, res := range report.Results {
		mark := "[MISS]"
		if res.OK {
			mark = "[ OK ]"
		}
		fmt.Printf("%s %-16s %s\n", mark, res.Name, res.Detail)
	}
}
