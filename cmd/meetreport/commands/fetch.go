package commands

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hrpower/meetreport/pkg/httputil"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Preuzmi izvoz rezultata",
	Long: `Preuzima izvoz rezultata s udaljene adrese u ulazni direktorij,
uz ograničenje broja zahtjeva i ponavljanje neuspjelih preuzimanja.

Example:
  meetreport fetch https://example.org/meet/rezultati.opl.csv
  meetreport fetch https://example.org/meet/rezultati.csv --name rezultati.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

var fetchName string

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchName, "name", "", "naziv odredišne datoteke (default iz URL-a)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}

	source := args[0]
	name := fetchName
	if name == "" {
		u, err := url.Parse(source)
		if err != nil || path.Base(u.Path) == "." || path.Base(u.Path) == "/" {
			return fmt.Errorf("ne mogu odrediti naziv datoteke iz %q, zadaj --name", source)
		}
		name = path.Base(u.Path)
	}

	if err := os.MkdirAll(cfg.InputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create input dir: %w", err)
	}

	dest := filepath.Join(cfg.InputDir, name)
	client := httputil.New(cfg, log)

	n, err := client.Download(cmd.Context(), source, dest)
	if err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("Preuzeto %d bajtova u %s", n, dest))
	return nil
}
