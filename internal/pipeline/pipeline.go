// Package pipeline orchestrates a full report run: ingest, repair,
// invariant checks, aggregation and output writing. Each CLI step calls
// into one stage; run and watch execute all of them.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hrpower/meetreport/internal/division"
	"github.com/hrpower/meetreport/internal/ingest"
	"github.com/hrpower/meetreport/internal/rankings"
	"github.com/hrpower/meetreport/internal/report"
	"github.com/hrpower/meetreport/internal/results"
	"github.com/hrpower/meetreport/internal/scoring"
	"github.com/hrpower/meetreport/pkg/config"
	"github.com/hrpower/meetreport/pkg/logger"
)

// ProcessedFileName is the interchange CSV consumed by downstream tooling.
const ProcessedFileName = "povijest_rezultata_obradjeno.csv"

// WorkbookFileName is the final Excel report.
const WorkbookFileName = "Rezultati.xlsx"

// Runner wires the pipeline stages together for one configuration.
type Runner struct {
	cfg        *config.Config
	log        *logger.Logger
	classifier *division.Classifier
	loader     *ingest.Loader
}

// Summary is the run report shown to the operator after processing.
type Summary struct {
	SourceFile    string `json:"source_file"`
	Format        string `json:"format"`
	Records       int    `json:"records"`
	ClubsResolved int    `json:"clubs_resolved"`
	Repaired      int    `json:"repaired"`
	ZeroPoints    int    `json:"zero_points"`
	Unrecognized  int    `json:"unrecognized_divisions"`
}

// Category describes one independent ranking pool.
type Category struct {
	Name      string
	Sex       scoring.Sex
	Event     scoring.Event
	Equipment results.Equipment
}

// FileBase returns the category's output file base name, e.g.
// "Male_Powerlifting" or "Female_Bench_Only_EQ".
func (c Category) FileBase() string {
	return c.Name
}

// NewRunner builds a Runner from config.
func NewRunner(cfg *config.Config, log *logger.Logger) *Runner {
	classifier := division.New(division.WithStripSuffixes(cfg.StripSuffixes...))
	return &Runner{
		cfg:        cfg,
		log:        log,
		classifier: classifier,
		loader:     ingest.NewLoader(classifier),
	}
}

// Classifier returns the venue-configured division classifier.
func (r *Runner) Classifier() *division.Classifier {
	return r.classifier
}

// Process runs ingestion: detect and load the results export, backfill club
// and birth-year data from the nominations file, repair missing points and
// enforce the club invariant. On a missing-club error no output may be
// produced by later stages.
func (r *Runner) Process(ctx context.Context) (*results.Table, *Summary, error) {
	path, format, err := ingest.DetectResultsFile(r.cfg.InputDir, r.cfg.ClubsFile)
	if err != nil {
		return nil, nil, err
	}

	r.log.WithFields(map[string]interface{}{
		"file":   path,
		"format": string(format),
	}).Info("Pronađena datoteka rezultata")

	entries, err := r.loader.LoadFile(path, format)
	if err != nil {
		return nil, nil, err
	}

	lookup, err := ingest.LoadClubs(filepath.Join(r.cfg.InputDir, r.cfg.ClubsFile))
	if err != nil {
		return nil, nil, err
	}
	r.log.WithField("mappings", lookup.Size()).Info("Učitana mapiranja klubova")

	table := results.New(r.classifier)
	summary := &Summary{SourceFile: path, Format: string(format)}

	for _, e := range entries {
		if e.Club == "" {
			e.Club = lookup.Club(e.Name)
		}
		if e.BirthYear == 0 {
			e.BirthYear = lookup.BirthYear(e.Name)
		}
		if e.Club != "" {
			summary.ClubsResolved++
		}

		if !r.classifier.Recognized(e.Division) {
			summary.Unrecognized++
			r.log.WithFields(map[string]interface{}{
				"name":     e.Name,
				"division": e.Division,
			}).Warn("Nepoznata kategorija, koristi se Open")
		}

		table.Add(e)
	}

	summary.Records = table.Len()
	summary.Repaired = table.Repaired()
	summary.ZeroPoints = table.ZeroPoints()

	if err := table.CheckClubs(); err != nil {
		return nil, summary, err
	}

	select {
	case <-ctx.Done():
		return nil, summary, ctx.Err()
	default:
	}

	return table, summary, nil
}

// Categories lists the ranking pools present in the table: the four raw
// sex × discipline combinations, plus EQ pools where equipped lifters
// count toward the standings.
func (r *Runner) Categories(table *results.Table) []Category {
	base := []struct {
		name  string
		sex   scoring.Sex
		event scoring.Event
	}{
		{"Male_Powerlifting", scoring.SexMale, scoring.EventSBD},
		{"Female_Powerlifting", scoring.SexFemale, scoring.EventSBD},
		{"Male_Bench_Only", scoring.SexMale, scoring.EventBench},
		{"Female_Bench_Only", scoring.SexFemale, scoring.EventBench},
	}

	var out []Category
	for _, b := range base {
		out = append(out, Category{
			Name: b.name, Sex: b.sex, Event: b.event, Equipment: results.EquipmentRaw,
		})
	}
	for _, b := range base {
		eq := table.Competitive(results.Filter{
			Sex: b.sex, Event: b.event, Equipment: results.EquipmentEquipped,
		})
		if len(eq) > 0 {
			out = append(out, Category{
				Name: b.name + "_EQ", Sex: b.sex, Event: b.event,
				Equipment: results.EquipmentEquipped,
			})
		}
	}
	return out
}

// Standings computes the club ranking for one category.
func (r *Runner) Standings(table *results.Table, cat Category) []rankings.ClubStanding {
	entries := table.Competitive(results.Filter{
		Sex: cat.Sex, Event: cat.Event, Equipment: cat.Equipment,
	})
	return rankings.Clubs(entries, r.cfg.TopPerClub)
}

// Members computes the counted per-club lifters for one category.
func (r *Runner) Members(table *results.Table, cat Category) []rankings.ClubMember {
	entries := table.Competitive(results.Filter{
		Sex: cat.Sex, Event: cat.Event, Equipment: cat.Equipment,
	})
	return rankings.ClubMembers(entries, r.cfg.TopPerClub)
}

// WriteProcessed writes the processed interchange CSV in display order.
func (r *Runner) WriteProcessed(table *results.Table) (string, error) {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	sorted := append([]*results.Entry(nil), table.Entries()...)
	table.SortForDisplay(sorted)

	path := filepath.Join(r.cfg.OutputDir, ProcessedFileName)
	if err := report.WriteProcessed(path, sorted); err != nil {
		return "", err
	}
	return path, nil
}

// WriteClubFiles writes the per-category club member and ranking CSVs.
func (r *Runner) WriteClubFiles(table *results.Table) ([]string, error) {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	var written []string
	for _, cat := range r.Categories(table) {
		memberPath := filepath.Join(r.cfg.OutputDir, cat.FileBase()+".csv")
		if err := report.WriteClubMembers(memberPath, r.Members(table, cat)); err != nil {
			return written, err
		}
		written = append(written, memberPath)

		rankingPath := filepath.Join(r.cfg.OutputDir, cat.FileBase()+"_Ranking.csv")
		if err := report.WriteClubRanking(rankingPath, r.Standings(table, cat)); err != nil {
			return written, err
		}
		written = append(written, rankingPath)
	}
	return written, nil
}

// WriteWorkbook renders and saves the Excel report.
func (r *Runner) WriteWorkbook(table *results.Table) (string, error) {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	wb, err := report.BuildWorkbook(table, r.cfg.MeetName, r.cfg.TopPerClub)
	if err != nil {
		return "", fmt.Errorf("failed to build workbook: %w", err)
	}

	path := filepath.Join(r.cfg.OutputDir, WorkbookFileName)
	if err := wb.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

// Run executes the whole pipeline: process, club files, workbook.
func (r *Runner) Run(ctx context.Context) (*results.Table, *Summary, error) {
	table, summary, err := r.Process(ctx)
	if err != nil {
		return nil, summary, err
	}

	if _, err := r.WriteProcessed(table); err != nil {
		return nil, summary, err
	}
	if _, err := r.WriteClubFiles(table); err != nil {
		return nil, summary, err
	}
	if _, err := r.WriteWorkbook(table); err != nil {
		return nil, summary, err
	}

	return table, summary, nil
}
