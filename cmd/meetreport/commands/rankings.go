package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hrpower/meetreport/internal/pipeline"
	"github.com/hrpower/meetreport/internal/rankings"
	"github.com/hrpower/meetreport/internal/results"
	"github.com/hrpower/meetreport/internal/scoring"
)

// rankingsCmd represents the rankings command
var rankingsCmd = &cobra.Command{
	Use:   "rankings [sex] [event]",
	Short: "Ispiši poredak klubova za jednu kategoriju",
	Long: `Obrađuje rezultate i ispisuje poredak klubova za zadanu kategoriju.

Sex: M ili F. Event: SBD (powerlifting) ili B (potisak s klupe).

Example:
  meetreport rankings M SBD
  meetreport rankings F B --equipment eq`,
	Args: cobra.ExactArgs(2),
	RunE: runRankings,
}

var rankingsEquipment string

func init() {
	rootCmd.AddCommand(rankingsCmd)

	rankingsCmd.Flags().StringVar(&rankingsEquipment, "equipment", "raw", "oprema: raw ili eq")
}

func runRankings(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}

	sex := scoring.Sex(strings.ToUpper(args[0]))
	event := scoring.Event(strings.ToUpper(args[1]))
	if sex != scoring.SexMale && sex != scoring.SexFemale {
		return fmt.Errorf("nepoznat spol %q (M ili F)", args[0])
	}
	if event != scoring.EventSBD && event != scoring.EventBench {
		return fmt.Errorf("nepoznata disciplina %q (SBD ili B)", args[1])
	}

	equipment := results.EquipmentRaw
	if strings.EqualFold(rankingsEquipment, "eq") {
		equipment = results.EquipmentEquipped
	}

	runner := pipeline.NewRunner(cfg, log)
	table, _, err := runner.Process(cmd.Context())
	if err != nil {
		return err
	}

	cat := pipeline.Category{Sex: sex, Event: event, Equipment: equipment}
	standings := runner.Standings(table, cat)
	if len(standings) == 0 {
		PrintWarning("Nema bodovanih rezultata za ovu kategoriju")
		return nil
	}

	PrintHeader(fmt.Sprintf("Poredak klubova — %s %s %s",
		args[0], args[1], strings.ToUpper(rankingsEquipment)))
	printStandings(standings)
	return nil
}

func printStandings(standings []rankings.ClubStanding) {
	widths := []int{4, 32, 10, 8}
	PrintTableHeader([]string{"#", "Klub", "Bodovi", "Brojano"}, widths)
	for _, s := range standings {
		PrintTableRow([]string{
			strconv.Itoa(s.Place),
			s.Club,
			formatFloat(s.Points),
			strconv.Itoa(s.Counted),
		}, widths)
	}
}
