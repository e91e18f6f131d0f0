package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lazypower/metacog/internal/engine"
	"github.com/lazypower/metacog/internal/evidence"
	"github.com/lazypower/metacog/internal/store"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the periodic gather → compile → inject loop",
	Long: "Runs the injection cycle on the configured schedule (default every 15\n" +
		"minutes). Cycles never overlap: the engine assumes a single sequential\n" +
		"writer.",
	RunE: runDaemon,
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	eng := engine.New(store.New(cfg.Database.Path, logger), cfg, logger)
	gatherer := evidence.New(cfg.Evidence, logger)

	run := func() {
		if err := injectOnce(eng, gatherer); err != nil {
			logger.Warn("injection cycle failed", zap.Error(err))
			return
		}
		logger.Info("injection cycle complete", zap.String("boot", cfg.Boot.Path))
	}

	// Run once at startup, then on the schedule.
	run()

	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.PrintfLogger(zap.NewStdLog(logger))),
	))
	if _, err := c.AddFunc(cfg.Daemon.Schedule, run); err != nil {
		return fmt.Errorf("bad daemon schedule %q: %w", cfg.Daemon.Schedule, err)
	}
	c.Start()

	logger.Info("daemon running",
		zap.String("schedule", cfg.Daemon.Schedule),
		zap.String("db", cfg.Database.Path))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	fmt.Fprintln(os.Stderr, "\nshutting down...")
	<-c.Stop().Done()
	return nil
}
