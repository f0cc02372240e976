// Package ingest loads competition result exports and nomination files
// into the in-memory result table.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Format is the detected layout of a results file.
type Format string

const (
	// FormatCSV is a plain export with the header on the first line.
	FormatCSV Format = "csv"
	// FormatOPL is the OPL variant with a metadata preamble of
	// unpredictable length before the header.
	FormatOPL Format = "opl"
)

// DetectResultsFile finds the results file in inputDir. The clubs file is
// never a candidate. With several candidates the .opl.csv export wins,
// otherwise the first plain CSV in name order.
func DetectResultsFile(inputDir, clubsFile string) (string, Format, error) {
	dirEntries, err := os.ReadDir(inputDir)
	if err != nil {
		return "", "", fmt.Errorf("failed to read input dir %s: %w", inputDir, err)
	}

	var candidates []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".csv") || name == clubsFile {
			continue
		}
		candidates = append(candidates, name)
	}
	sort.Strings(candidates)

	if len(candidates) == 0 {
		return "", "", fmt.Errorf("nema datoteka s rezultatima u %q (očekivano *.csv ili *.opl.csv)", inputDir)
	}

	pick := ""
	for _, name := range candidates {
		if strings.HasSuffix(strings.ToLower(name), ".opl.csv") {
			pick = name
			break
		}
	}
	if pick == "" {
		pick = candidates[0]
	}

	format := FormatCSV
	if strings.HasSuffix(strings.ToLower(pick), ".opl.csv") {
		format = FormatOPL
	}
	return filepath.Join(inputDir, pick), format, nil
}
