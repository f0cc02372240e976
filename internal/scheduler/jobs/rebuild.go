// Package jobs holds the scheduled jobs run in watch mode.
package jobs

import (
	"context"

	"github.com/hrpower/meetreport/internal/api"
	"github.com/hrpower/meetreport/internal/pipeline"
	"github.com/hrpower/meetreport/pkg/logger"
)

// RebuildJob re-runs the whole pipeline on a schedule while results are
// still being entered, then swaps the served snapshot and notifies the
// connected displays.
type RebuildJob struct {
	runner   *pipeline.Runner
	store    *api.Store
	hub      *api.Hub
	schedule string
	logger   *logger.Logger
}

// NewRebuildJob creates a new rebuild job. The hub may be nil when no
// report server is running.
func NewRebuildJob(runner *pipeline.Runner, store *api.Store, hub *api.Hub, schedule string, log *logger.Logger) *RebuildJob {
	return &RebuildJob{
		runner:   runner,
		store:    store,
		hub:      hub,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name.
func (j *RebuildJob) Name() string {
	return "report_rebuild"
}

// Schedule returns the cron schedule expression.
func (j *RebuildJob) Schedule() string {
	return j.schedule
}

// Run executes one full pipeline pass.
func (j *RebuildJob) Run(ctx context.Context) error {
	table, summary, err := j.runner.Run(ctx)
	if err != nil {
		return err
	}

	j.store.Update(table)

	if j.hub != nil {
		_, builtAt, _ := j.store.Snapshot()
		j.hub.Broadcast(api.RefreshEvent{
			Type:    "rebuild",
			BuiltAt: builtAt,
			Records: summary.Records,
		})
	}

	j.logger.WithFields(map[string]interface{}{
		"records":  summary.Records,
		"repaired": summary.Repaired,
	}).Info("Izvještaj ponovno izgrađen")

	return nil
}
