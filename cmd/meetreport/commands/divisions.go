package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrpower/meetreport/internal/division"
	"github.com/hrpower/meetreport/internal/report"
)

// divisionsCmd represents the divisions command
var divisionsCmd = &cobra.Command{
	Use:   "divisions [label...]",
	Short: "Provjeri razvrstavanje kategorija",
	Long: `Bez argumenata ispisuje sve poznate dobne kategorije redoslijedom
prikaza. S argumentima razvrstava zadane oznake, što je korisno za
provjeru prljavih izvora podataka.

Example:
  meetreport divisions
  meetreport divisions "Men's Open" "Women's Raw Sub-Juniors"`,
	RunE: runDivisions,
}

func init() {
	rootCmd.AddCommand(divisionsCmd)
}

func runDivisions(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadRuntime()
	if err != nil {
		return err
	}

	classifier := division.New(division.WithStripSuffixes(cfg.StripSuffixes...))

	if len(args) == 0 {
		PrintHeader("Dobne kategorije")
		widths := []int{4, 14, 14}
		PrintTableHeader([]string{"#", "Kategorija", "Naziv"}, widths)
		for _, t := range division.Types() {
			PrintTableRow([]string{
				fmt.Sprintf("%d", t.Order()),
				t.String(),
				report.DivisionBanner(t, false),
			}, widths)
		}
		return nil
	}

	PrintHeader("Razvrstavanje oznaka")
	widths := []int{34, 14, 6, 8}
	PrintTableHeader([]string{"Oznaka", "Kategorija", "EQ", "Poznata"}, widths)
	for _, label := range args {
		t := classifier.Classify(label)
		eq := ""
		if classifier.IsEquipped(label) {
			eq = "da"
		}
		known := "da"
		if !classifier.Recognized(label) {
			known = "ne"
		}
		PrintTableRow([]string{label, t.String(), eq, known}, widths)
	}
	return nil
}
