package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"newsagent/internal/service"
	"newsagent/internal/store"
	"newsagent/models"
)

// Options toggle the side effects of a run.
type Options struct {
	SnapshotPath string // local JSON snapshot; empty disables the file
	Publish      bool   // push the snapshot to the configured GitHub repo
	DryRun       bool   // fetch and snapshot only: no store, no publish
}

// Agent drives one collection pass: fetch every source, persist, export,
// publish.
type Agent struct {
	fetcher   service.NewsFetcher
	store     store.Store
	writer    service.SnapshotWriter
	publisher service.SnapshotPublisher // nil when publishing is not configured
	sources   []models.Source
	log       *zap.Logger
}

func NewAgent(
	fetcher service.NewsFetcher,
	st store.Store,
	writer service.SnapshotWriter,
	publisher service.SnapshotPublisher,
	sources []models.Source,
	log *zap.Logger,
) *Agent {
	return &Agent{
		fetcher:   fetcher,
		store:     st,
		writer:    writer,
		publisher: publisher,
		sources:   sources,
		log:       log,
	}
}

// Run collects all sources in order. A failing source is reported and skipped;
// the run itself fails only when every source failed or a downstream step
// (store, snapshot, publish) did.
func (a *Agent) Run(ctx context.Context, opts Options) (*models.RunReport, error) {
	report := &models.RunReport{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
	defer func() {
		report.Duration = time.Since(report.StartedAt)
	}()

	var all []models.NewsItem
	failed := 0

	for _, src := range a.sources {
		sr := models.SourceReport{Source: src.Name}

		collected, err := a.fetcher.Collect(ctx, src)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			sr.Error = err.Error()
			failed++
			report.Sources = append(report.Sources, sr)
			continue
		}

		sr.Strategy = collected.Strategy
		sr.Fetched = len(collected.Items)

		if !opts.DryRun && len(collected.Items) > 0 {
			stats, err := a.store.SaveAll(ctx, collected.Items)
			if err != nil {
				sr.Error = err.Error()
				failed++
				report.Sources = append(report.Sources, sr)
				continue
			}
			sr.Inserted = stats.Inserted
			sr.Known = stats.Known
		}

		all = append(all, collected.Items...)
		report.Sources = append(report.Sources, sr)
	}

	if len(a.sources) > 0 && failed == len(a.sources) {
		return report, fmt.Errorf("running collection: all %d sources failed", failed)
	}

	if opts.SnapshotPath != "" {
		if err := a.writer.WriteFile(opts.SnapshotPath, all); err != nil {
			return report, err
		}
	}

	if !opts.DryRun && opts.Publish && a.publisher != nil {
		result, err := a.publisher.Publish(ctx, all)
		if err != nil {
			return report, err
		}
		a.log.Info("publish finished",
			zap.String("run", report.ID),
			zap.String("action", result.Action))
	}

	return report, nil
}
