package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hrpower/meetreport/internal/api"
	"github.com/hrpower/meetreport/internal/api/handlers"
	"github.com/hrpower/meetreport/internal/pipeline"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Pokreni poslužitelj izvještaja",
	Long: `Obrađuje rezultate i poslužuje ih preko HTTP-a, uz websocket kanal
kojim dvorana saznaje za nove verzije.

Endpoints:
  GET /health                        - Health check
  GET /api/results                   - Lista rezultata
  GET /api/rankings/{sex}/{event}    - Poredak klubova
  GET /api/top/{sex}/{event}         - Najboljih 5
  GET /api/stats                     - Statistika
  GET /ws                            - Obavijesti o novim verzijama

Example:
  meetreport serve
  meetreport serve --port 8090`,
	RunE: runServe,
}

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "port poslužitelja (default iz konfiguracije)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	runner := pipeline.NewRunner(cfg, log)
	table, summary, err := runner.Process(cmd.Context())
	if err != nil {
		return err
	}

	store := api.NewStore()
	store.Update(table)

	hub := api.NewHub(log)
	handler := handlers.NewResultsHandler(store, runner, log)
	router := api.NewRouter(api.RouterDeps{Results: handler, Hub: hub}, log)

	server := api.New(cfg, log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	PrintSuccess(fmt.Sprintf("Poslužitelj pokrenut na portu %s (%d zapisa)", cfg.Port, summary.Records))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hub.Close()
	return server.Shutdown(ctx)
}
