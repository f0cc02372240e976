package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrpower/meetreport/internal/pipeline"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generiraj Excel izvještaj",
	Long: `Obrađuje rezultate i gradi završni Excel izvještaj: listove po
disciplinama, poredak klubova i statistiku.

Example:
  meetreport report
  meetreport report --output ./objava`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}

	PrintHeader("Excel izvještaj")

	runner := pipeline.NewRunner(cfg, log)
	table, _, err := runner.Process(cmd.Context())
	if err != nil {
		return err
	}

	path, err := runner.WriteWorkbook(table)
	if err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("Izvještaj zapisan u %s", path))
	return nil
}
