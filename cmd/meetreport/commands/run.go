package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrpower/meetreport/internal/pipeline"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Pokreni cijeli proces",
	Long: `Izvodi cijeli proces odjednom: obrada, CSV-ovi klubova i Excel
izvještaj.

Example:
  meetreport run`,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}

	PrintHeader("Cijeli proces")

	runner := pipeline.NewRunner(cfg, log)
	table, summary, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	PrintSummary(summary)
	PrintSuccess(fmt.Sprintf("Gotovo: %d zapisa, izlaz u %s", table.Len(), cfg.OutputDir))
	return nil
}
