package daemon

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"newsagent/internal/sources"
	"newsagent/models"
)

// DefaultSchedule matches the production workflow: daily at 12:00 UTC.
const DefaultSchedule = "0 12 * * *"

// reloadDebounce absorbs the event bursts editors emit on save.
const reloadDebounce = 500 * time.Millisecond

// RunFunc executes one collection pass over the given sources.
type RunFunc func(ctx context.Context, srcs []models.Source) error

// Daemon triggers collection passes on a cron schedule and hot-reloads the
// sources file when it changes on disk.
type Daemon struct {
	mu          sync.RWMutex
	srcs        []models.Source
	sourcesPath string // empty disables the file watcher
	schedule    string
	run         RunFunc
	log         *zap.Logger
}

func New(schedule string, srcs []models.Source, sourcesPath string, run RunFunc, log *zap.Logger) *Daemon {
	if sourcesPath != "" {
		sourcesPath = filepath.Clean(sourcesPath)
	}
	return &Daemon{
		srcs:        srcs,
		sourcesPath: sourcesPath,
		schedule:    schedule,
		run:         run,
		log:         log,
	}
}

// Sources returns the currently loaded source list.
func (d *Daemon) Sources() []models.Source {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.srcs
}

// Run blocks until ctx is canceled, then waits for a running pass to finish.
func (d *Daemon) Run(ctx context.Context) error {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(zap.NewStdLog(d.log)))),
	)
	if _, err := c.AddFunc(d.schedule, func() { d.runOnce(ctx) }); err != nil {
		return fmt.Errorf("parsing schedule %q: %w", d.schedule, err)
	}

	if d.sourcesPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("creating sources watcher: %w", err)
		}
		defer watcher.Close()

		// Watch the directory: editors replace files on save, which would
		// drop a watch set on the file itself.
		dir := filepath.Dir(d.sourcesPath)
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		go d.watchSources(ctx, watcher)
	}

	c.Start()
	next := time.Time{}
	if entries := c.Entries(); len(entries) > 0 {
		next = entries[0].Next
	}
	d.log.Info("scheduler started",
		zap.String("schedule", d.schedule),
		zap.Time("next_run", next))

	<-ctx.Done()
	<-c.Stop().Done()
	d.log.Info("scheduler stopped")
	return nil
}

func (d *Daemon) runOnce(ctx context.Context) {
	srcs := d.Sources()
	d.log.Info("scheduled run starting", zap.Int("sources", len(srcs)))
	if err := d.run(ctx, srcs); err != nil {
		d.log.Error("scheduled run failed", zap.Error(err))
	}
}

func (d *Daemon) watchSources(ctx context.Context, watcher *fsnotify.Watcher) {
	debounce := time.NewTimer(reloadDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != d.sourcesPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending && !debounce.Stop() {
				<-debounce.C
			}
			debounce.Reset(reloadDebounce)
			pending = true
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			d.log.Warn("watching sources file", zap.Error(err))
		case <-debounce.C:
			pending = false
			d.reload()
		}
	}
}

// reload swaps in the sources file if it parses; an invalid file keeps the
// previous list.
func (d *Daemon) reload() {
	srcs, err := sources.Load(d.sourcesPath)
	if err != nil {
		d.log.Warn("keeping previous sources",
			zap.String("path", d.sourcesPath),
			zap.Error(err))
		return
	}

	d.mu.Lock()
	d.srcs = srcs
	d.mu.Unlock()

	d.log.Info("sources reloaded",
		zap.String("path", d.sourcesPath),
		zap.Int("count", len(srcs)))
}
