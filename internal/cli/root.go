package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lazypower/metacog/internal/config"
	"github.com/lazypower/metacog/internal/engine"
	"github.com/lazypower/metacog/internal/evidence"
	"github.com/lazypower/metacog/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "metacog",
	Short: "Self-evolving metacognitive lens for AI agents",
	Long: "Metacog maintains a small persisted set of beliefs about an agent's behavior,\n" +
		"reinforces or decays them from experience and feedback, and compiles the\n" +
		"strongest ones into a lens injected into the agent's boot document.",
}

var (
	flagWorkspace string
	flagVerbose   bool
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagWorkspace, "workspace", "w", "", "Workspace directory (default: METACOG_WORKSPACE or cwd)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(injectCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(decayCmd)
	rootCmd.AddCommand(curiosityCmd)
	rootCmd.AddCommand(daemonCmd)
}

func loadConfig() (config.Config, error) {
	if flagWorkspace != "" {
		return config.LoadFrom(flagWorkspace)
	}
	return config.Load()
}

// newLogger builds the CLI logger. Plain commands stay quiet and speak
// through printed text; --verbose enables development logging.
func newLogger() *zap.Logger {
	if flagVerbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			return logger
		}
	}
	return zap.NewNop()
}

// openEngine is the helper every command uses to build the engine.
func openEngine() (*engine.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger()
	st := store.New(cfg.Database.Path, logger)
	return engine.New(st, cfg, logger), nil
}

func newGatherer(e *engine.Engine) *evidence.Gatherer {
	return evidence.New(e.Cfg.Evidence, e.Log)
}
