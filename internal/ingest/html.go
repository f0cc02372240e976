package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hrpower/meetreport/internal/results"
)

// LoadHTML imports results from an HTML scoreboard export: the first table
// whose header carries the required columns is read like a CSV, one entry
// per body row. Scoreboard programs publish these pages when no OPL export
// is available.
func (l *Loader) LoadHTML(r io.Reader) ([]*results.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML export: %w", err)
	}

	var entries []*results.Entry
	var tableErr error
	found := false

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		header, rows := tableCells(table)
		if !hasRequiredColumns(header) {
			return true // keep looking
		}

		found = true
		entries, tableErr = l.mapRows(header, rows)
		return false
	})

	if tableErr != nil {
		return nil, tableErr
	}
	if !found {
		return nil, fmt.Errorf("HTML export ne sadrži tablicu s kolonama %v", requiredColumns)
	}
	return entries, nil
}

// tableCells flattens an HTML table into a header row and body rows. The
// header is the first row containing <th> cells, or the very first row.
func tableCells(table *goquery.Selection) ([]string, [][]string) {
	var header []string
	var rows [][]string

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		isHeader := tr.Find("th").Length() > 0

		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})

		if len(cells) == 0 {
			return
		}
		if header == nil && (isHeader || len(rows) == 0) {
			header = cells
			return
		}
		rows = append(rows, cells)
	})

	return header, rows
}
