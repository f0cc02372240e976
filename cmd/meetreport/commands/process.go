package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrpower/meetreport/internal/pipeline"
	"github.com/hrpower/meetreport/internal/results"
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Učitaj i obradi rezultate",
	Long: `Učitava izvoz rezultata iz ulaznog direktorija, dopunjava podatke o
klubovima, računa nedostajuće IPF GL bodove i piše obrađeni CSV.

Ako za nekog natjecatelja nije poznat klub, obrada staje bez izlaza:
poredak klubova bez tog podatka ne bi bio valjan.

Example:
  meetreport process
  meetreport process --input ./rezultati`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}

	PrintHeader("Obrada rezultata")

	runner := pipeline.NewRunner(cfg, log)
	table, summary, err := runner.Process(cmd.Context())
	if err != nil {
		var missing *results.MissingClubError
		if errors.As(err, &missing) {
			PrintError(missing.Error())
			return err
		}
		return err
	}

	path, err := runner.WriteProcessed(table)
	if err != nil {
		return err
	}

	PrintSummary(summary)
	PrintSuccess(fmt.Sprintf("Obrađeni rezultati zapisani u %s", path))
	return nil
}
