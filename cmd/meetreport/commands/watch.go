package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hrpower/meetreport/internal/api"
	"github.com/hrpower/meetreport/internal/api/handlers"
	"github.com/hrpower/meetreport/internal/pipeline"
	"github.com/hrpower/meetreport/internal/scheduler"
	"github.com/hrpower/meetreport/internal/scheduler/jobs"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Prati ulaz i obnavljaj izvještaj",
	Long: `Pokreće poslužitelj izvještaja i periodički ponovno izvodi cijeli
proces dok se rezultati još unose. Nakon svake obnove dvorana dobiva
websocket obavijest.

Raspored se zadaje cron izrazom sa sekundama (WATCH_SCHEDULE).

Example:
  meetreport watch
  meetreport watch --schedule "0 */2 * * * *"`,
	RunE: runWatch,
}

var watchSchedule string

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "", "cron raspored obnove (default iz konfiguracije)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	if watchSchedule != "" {
		cfg.WatchSchedule = watchSchedule
	}

	runner := pipeline.NewRunner(cfg, log)
	store := api.NewStore()
	hub := api.NewHub(log)

	// First build happens synchronously so the server never starts empty.
	table, summary, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}
	store.Update(table)

	handler := handlers.NewResultsHandler(store, runner, log)
	router := api.NewRouter(api.RouterDeps{Results: handler, Hub: hub}, log)
	server := api.New(cfg, log, router)

	sched := scheduler.New(log)
	rebuild := jobs.NewRebuildJob(runner, store, hub, cfg.WatchSchedule, log)
	if err := sched.AddJob(rebuild); err != nil {
		return err
	}
	sched.Start()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	PrintSuccess(fmt.Sprintf("Praćenje pokrenuto: port %s, raspored %q, %d zapisa",
		cfg.Port, cfg.WatchSchedule, summary.Records))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		sched.Stop()
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	sched.Stop()
	printRebuildHistory(sched, rebuild.Name())
	hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

// printRebuildHistory summarizes the scheduled rebuilds on shutdown.
func printRebuildHistory(sched *scheduler.Scheduler, jobName string) {
	history, err := sched.GetJobHistory(jobName)
	if err != nil || len(history.Results) == 0 {
		return
	}

	last := history.GetLatestResults(1)[0]

	PrintHeader("Obnove izvještaja")
	PrintKeyValue("Izvedeno", strconv.Itoa(len(history.Results)), 14)
	PrintKeyValue("Uspješnost", fmt.Sprintf("%.0f%%", history.GetSuccessRate()*100), 14)
	PrintKeyValue("Zadnja obnova", last.EndTime.Format(time.RFC3339), 14)
	if !last.Success {
		PrintWarning("Zadnja obnova nije uspjela: " + last.Error)
	}
	PrintSeparator()
}
