package commands

import (
	"fmt"
	"strconv"

	"github.com/hrpower/meetreport/internal/pipeline"
)

// Common formatting utilities so every command prints the same way.

// PrintSeparator prints a visual separator.
func PrintSeparator() {
	fmt.Println("───────────────────────────────────────────────────────────")
}

// PrintDoubleSeparator prints a double-line separator.
func PrintDoubleSeparator() {
	fmt.Println("═══════════════════════════════════════════════════════════")
}

// PrintHeader prints a command header.
func PrintHeader(title string) {
	fmt.Println()
	PrintDoubleSeparator()
	fmt.Printf("  %s\n", title)
	PrintSeparator()
}

// PrintSuccess prints a success message.
func PrintSuccess(message string) {
	fmt.Printf("✅ %s\n", message)
}

// PrintError prints an error message.
func PrintError(message string) {
	fmt.Printf("❌ %s\n", message)
}

// PrintWarning prints a warning message.
func PrintWarning(message string) {
	fmt.Printf("⚠️  %s\n", message)
}

// PrintKeyValue prints an aligned key-value pair.
func PrintKeyValue(key string, value string, keyWidth int) {
	fmt.Printf("   %-*s : %s\n", keyWidth, key, value)
}

// PrintTableHeader prints a table header with a separator line.
func PrintTableHeader(columns []string, widths []int) {
	for i, col := range columns {
		fmt.Printf("%-*s", widths[i], col)
		if i < len(columns)-1 {
			fmt.Print("  ")
		}
	}
	fmt.Println()

	totalWidth := 0
	for i, width := range widths {
		totalWidth += width
		if i < len(widths)-1 {
			totalWidth += 2
		}
	}
	for i := 0; i < totalWidth; i++ {
		fmt.Print("─")
	}
	fmt.Println()
}

// PrintTableRow prints a table row.
func PrintTableRow(values []string, widths []int) {
	for i, val := range values {
		fmt.Printf("%-*s", widths[i], val)
		if i < len(values)-1 {
			fmt.Print("  ")
		}
	}
	fmt.Println()
}

// PrintSummary prints the processing summary block.
func PrintSummary(summary *pipeline.Summary) {
	fmt.Println()
	PrintSeparator()
	PrintKeyValue("Datoteka", summary.SourceFile, 18)
	PrintKeyValue("Format", summary.Format, 18)
	PrintKeyValue("Zapisa", strconv.Itoa(summary.Records), 18)
	PrintKeyValue("Klubovi povezani", strconv.Itoa(summary.ClubsResolved), 18)
	PrintKeyValue("Popravljeni bodovi", strconv.Itoa(summary.Repaired), 18)
	if summary.ZeroPoints > 0 {
		PrintKeyValue("Bez bodova", strconv.Itoa(summary.ZeroPoints), 18)
	}
	if summary.Unrecognized > 0 {
		PrintKeyValue("Nepoznate kategorije", strconv.Itoa(summary.Unrecognized), 18)
	}
	PrintSeparator()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
