package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrpower/meetreport/pkg/config"
	"github.com/hrpower/meetreport/pkg/logger"
)

var (
	// Global flags
	inputDir  string
	outputDir string
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "meetreport",
	Short: "Obrada rezultata powerlifting natjecanja",
	Long: `meetreport - obrada i objava rezultata powerlifting natjecanja

Učitava izvoz rezultata, računa IPF GL bodove, razvrstava kategorije,
gradi poredak klubova i generira Excel izvještaj.

Usage:
  meetreport [command]

Examples:
  meetreport run
  meetreport process
  meetreport rankings M SBD
  meetreport serve --port 8090`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&inputDir, "input", "", "ulazni direktorij (default iz konfiguracije)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", "", "izlazni direktorij (default iz konfiguracije)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "detaljan ispis")
}

// loadRuntime loads config and logger, applying the global flag overrides.
func loadRuntime() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if inputDir != "" {
		cfg.InputDir = inputDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, logger.New(cfg), nil
}
