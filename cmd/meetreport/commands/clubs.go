package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrpower/meetreport/internal/pipeline"
)

// clubsCmd represents the clubs command
var clubsCmd = &cobra.Command{
	Use:   "clubs",
	Short: "Generiraj CSV-ove s poretkom klubova",
	Long: `Obrađuje rezultate i za svaku kategoriju piše dvije CSV datoteke:
bodovane natjecatelje po klubu i poredak klubova.

Example:
  meetreport clubs`,
	RunE: runClubs,
}

func init() {
	rootCmd.AddCommand(clubsCmd)
}

func runClubs(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}

	PrintHeader("Poredak klubova")

	runner := pipeline.NewRunner(cfg, log)
	table, _, err := runner.Process(cmd.Context())
	if err != nil {
		return err
	}

	written, err := runner.WriteClubFiles(table)
	if err != nil {
		return err
	}

	for _, path := range written {
		fmt.Printf("   • %s\n", path)
	}
	PrintSuccess(fmt.Sprintf("Zapisano %d datoteka", len(written)))
	return nil
}
