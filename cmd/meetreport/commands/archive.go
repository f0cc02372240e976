package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hrpower/meetreport/internal/archive"
	"github.com/hrpower/meetreport/internal/pipeline"
	"github.com/hrpower/meetreport/internal/rankings"
	"github.com/hrpower/meetreport/pkg/database"
)

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Pohrani natjecanje u arhivu",
	Long: `Obrađuje rezultate i sprema ih u PostgreSQL arhivu pod ključem
MEET_SLUG. Ponovna pohrana istog natjecanja zamjenjuje stare zapise.

Zahtijeva DATABASE_URL u konfiguraciji.

Example:
  meetreport archive
  meetreport archive list
  meetreport archive lifter "Ana Anić"`,
	RunE: runArchive,
}

// archiveListCmd lists archived meets.
var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "Ispiši arhivirana natjecanja",
	RunE:  runArchiveList,
}

// archiveLifterCmd shows one lifter's archived results.
var archiveLifterCmd = &cobra.Command{
	Use:   "lifter [name]",
	Short: "Ispiši povijest natjecatelja",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveLifter,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveLifterCmd)
}

func openArchive() (*database.DB, *archive.Repository, error) {
	cfg, _, err := loadRuntime()
	if err != nil {
		return nil, nil, err
	}
	if !cfg.HasDatabase() {
		return nil, nil, fmt.Errorf("arhiva zahtijeva DATABASE_URL")
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	return db, archive.NewRepository(db.Pool), nil
}

func runArchive(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	if !cfg.HasDatabase() {
		return fmt.Errorf("arhiva zahtijeva DATABASE_URL")
	}
	if cfg.MeetSlug == "" {
		return fmt.Errorf("arhiva zahtijeva MEET_SLUG")
	}

	PrintHeader("Arhiviranje natjecanja")

	runner := pipeline.NewRunner(cfg, log)
	table, summary, err := runner.Process(cmd.Context())
	if err != nil {
		return err
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	repo := archive.NewRepository(db.Pool)
	if err := repo.EnsureSchema(cmd.Context()); err != nil {
		return err
	}

	standings := make(map[string][]rankings.ClubStanding)
	for _, cat := range runner.Categories(table) {
		standings[cat.Name] = runner.Standings(table, cat)
	}

	if err := repo.SaveMeet(cmd.Context(), cfg.MeetSlug, cfg.MeetName, table.Entries(), standings); err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("Arhivirano %d zapisa pod %q", summary.Records, cfg.MeetSlug))
	return nil
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	db, repo, err := openArchive()
	if err != nil {
		return err
	}
	defer db.Close()

	meets, err := repo.ListMeets(cmd.Context())
	if err != nil {
		return err
	}
	if len(meets) == 0 {
		PrintWarning("Arhiva je prazna")
		return nil
	}

	PrintHeader("Arhivirana natjecanja")
	widths := []int{22, 34, 12, 8}
	PrintTableHeader([]string{"Ključ", "Naziv", "Datum", "Zapisa"}, widths)
	for _, m := range meets {
		PrintTableRow([]string{
			m.Slug,
			m.Name,
			m.ArchivedAt.Format("2006-01-02"),
			strconv.Itoa(m.Records),
		}, widths)
	}
	return nil
}

func runArchiveLifter(cmd *cobra.Command, args []string) error {
	db, repo, err := openArchive()
	if err != nil {
		return err
	}
	defer db.Close()

	history, err := repo.LifterHistory(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(history) == 0 {
		PrintWarning(fmt.Sprintf("Nema arhiviranih rezultata za %q", args[0]))
		return nil
	}

	PrintHeader(fmt.Sprintf("Povijest — %s", args[0]))
	widths := []int{22, 8, 14, 10, 10}
	PrintTableHeader([]string{"Natjecanje", "Plasman", "Kategorija", "Ukupno", "Bodovi"}, widths)
	for _, r := range history {
		PrintTableRow([]string{
			r.MeetSlug,
			r.Place,
			r.Division,
			formatFloat(r.TotalKg),
			formatFloat(r.Points),
		}, widths)
	}
	return nil
}
