package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"newsagent/internal/config"
	"newsagent/internal/daemon"
	"newsagent/internal/github"
	"newsagent/internal/orchestrator"
	"newsagent/internal/scrape"
	"newsagent/internal/server"
	"newsagent/internal/service"
	"newsagent/internal/sources"
	"newsagent/internal/store"
	"newsagent/models"
)

var (
	// Global flags
	verbose     bool
	sourcesPath string

	// fetch / watch flags
	output    string
	limit     int
	dryRun    bool
	noPublish bool

	// serve / watch flags
	addr     string
	schedule string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "newsagent",
	Short: "Collects gaming news into MongoDB and JSON snapshots",
	Long: `newsagent scrapes configured news sites, trying the WordPress REST API,
the RSS feed and an HTML fallback in order, and keeps everything it finds
in MongoDB keyed by article URL.

Each pass also writes a pretty-printed JSON snapshot, and can commit it
to a GitHub repository when GITHUB_TOKEN and GITHUB_REPO are set.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logCfg := zap.NewProductionConfig()
		if verbose {
			logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = logCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// fetchCmd runs a single collection pass
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Run one collection pass over all sources",
	Long: `Fetches news from every configured source, stores new items in MongoDB,
writes the JSON snapshot and, when publishing is configured, commits the
snapshot to the GitHub repository.`,
	RunE: runFetch,
}

// serveCmd exposes the stored news over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve stored news over HTTP",
	RunE:  runServe,
}

// watchCmd runs collection passes on a cron schedule
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Collect on a cron schedule until interrupted",
	Long: `Runs collection passes on a cron schedule (UTC). The sources file, when
given with --sources, is watched for changes and reloaded between runs.`,
	RunE: runWatch,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&sourcesPath, "sources", "", "Sources YAML file (default: built-in list)")

	fetchCmd.Flags().StringVarP(&output, "output", "o", "output.json", "Path of the JSON snapshot")
	fetchCmd.Flags().IntVar(&limit, "limit", 0, "Cap the items kept per source (0 = no cap)")
	fetchCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Fetch and report only, without storing or publishing")
	fetchCmd.Flags().BoolVar(&noPublish, "no-publish", false, "Skip committing the snapshot to GitHub")

	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")

	watchCmd.Flags().StringVarP(&output, "output", "o", "output.json", "Path of the JSON snapshot")
	watchCmd.Flags().StringVar(&schedule, "schedule", daemon.DefaultSchedule, "Cron schedule, UTC")
	watchCmd.Flags().BoolVar(&noPublish, "no-publish", false, "Skip committing the snapshot to GitHub")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, cancel := interruptContext()
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	srcs, err := loadSources()
	if err != nil {
		return err
	}
	srcs = capSources(srcs, limit)

	fetcher := service.NewNewsFetcher(scrape.NewClient(logger), logger)

	var st store.Store
	if !dryRun {
		st, err = store.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoCollection, logger)
		if err != nil {
			return err
		}
		defer closeStore(st)
	}

	publisher, err := newPublisher(cfg)
	if err != nil {
		return err
	}

	agent := orchestrator.NewAgent(fetcher, st, service.NewSnapshotWriter(logger), publisher, srcs, logger)

	report, err := agent.Run(ctx, orchestrator.Options{
		SnapshotPath: output,
		Publish:      !noPublish && publisher != nil,
		DryRun:       dryRun,
	})
	logReport(report)
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := interruptContext()
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoCollection, logger)
	if err != nil {
		return err
	}
	defer closeStore(st)

	return server.New(addr, st, logger).ListenAndServe(ctx)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := interruptContext()
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	srcs, err := loadSources()
	if err != nil {
		return err
	}

	fetcher := service.NewNewsFetcher(scrape.NewClient(logger), logger)

	st, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoCollection, logger)
	if err != nil {
		return err
	}
	defer closeStore(st)

	publisher, err := newPublisher(cfg)
	if err != nil {
		return err
	}
	writer := service.NewSnapshotWriter(logger)

	run := func(ctx context.Context, srcs []models.Source) error {
		agent := orchestrator.NewAgent(fetcher, st, writer, publisher, srcs, logger)
		report, err := agent.Run(ctx, orchestrator.Options{
			SnapshotPath: output,
			Publish:      !noPublish && publisher != nil,
		})
		logReport(report)
		return err
	}

	return daemon.New(schedule, srcs, sourcesPath, run, logger).Run(ctx)
}

// interruptContext cancels on SIGINT or SIGTERM.
func interruptContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()
	return ctx, cancel
}

func loadSources() ([]models.Source, error) {
	if sourcesPath != "" {
		return sources.Load(sourcesPath)
	}
	return sources.Default(), nil
}

func closeStore(st store.Store) {
	if err := st.Close(context.Background()); err != nil {
		logger.Warn("closing store", zap.Error(err))
	}
}

// capSources applies the --limit flag on top of each source's own limit.
func capSources(srcs []models.Source, n int) []models.Source {
	if n <= 0 {
		return srcs
	}
	for i := range srcs {
		if srcs[i].Limit == 0 || srcs[i].Limit > n {
			srcs[i].Limit = n
		}
	}
	return srcs
}

func newPublisher(cfg *config.Config) (service.SnapshotPublisher, error) {
	if !cfg.PublishEnabled() {
		return nil, nil
	}
	owner, repo, err := cfg.SplitRepo()
	if err != nil {
		return nil, err
	}
	gh := github.New(cfg.GithubToken, owner, repo)
	return service.NewSnapshotPublisher(gh, cfg.SnapshotPath, cfg.GithubBranch, logger), nil
}

func logReport(report *models.RunReport) {
	if report == nil {
		return
	}
	logger.Info("run finished",
		zap.String("run", report.ID),
		zap.Duration("took", report.Duration),
		zap.Int("fetched", report.TotalFetched()),
		zap.Int("inserted", report.TotalInserted()),
		zap.Int("failed", report.Failed()))
}
