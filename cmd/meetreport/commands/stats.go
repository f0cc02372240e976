package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hrpower/meetreport/internal/pipeline"
	"github.com/hrpower/meetreport/internal/report"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Ispiši statistiku natjecanja",
	Long: `Obrađuje rezultate i ispisuje sažetak: broj zapisa i klubova,
prosjeke GL bodova po disciplini i spolu te najbolje izvedbe.

Example:
  meetreport stats`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(cfg, log)
	table, _, err := runner.Process(cmd.Context())
	if err != nil {
		return err
	}

	stats := report.ComputeStats(table)

	PrintHeader("Statistika")
	PrintKeyValue("Zapisa", strconv.Itoa(stats.Records), 14)
	PrintKeyValue("Klubova", strconv.Itoa(stats.Clubs), 14)
	PrintKeyValue("Prosjek GL", formatFloat(stats.Overall.Average), 14)
	PrintKeyValue("Najviše GL", formatFloat(stats.Overall.Max), 14)
	if stats.Repaired > 0 {
		PrintKeyValue("Popravljeno", strconv.Itoa(stats.Repaired), 14)
	}
	if stats.ZeroPoints > 0 {
		PrintKeyValue("Bez bodova", strconv.Itoa(stats.ZeroPoints), 14)
	}

	fmt.Println()
	PrintSeparator()
	fmt.Println("  Najbolje izvedbe")
	PrintSeparator()
	widths := []int{4, 26, 24, 10}
	PrintTableHeader([]string{"#", "Ime", "Klub", "Bodovi"}, widths)
	for i, top := range stats.Top {
		PrintTableRow([]string{
			strconv.Itoa(i + 1),
			top.Name,
			top.Club,
			formatFloat(top.Points),
		}, widths)
	}
	return nil
}
