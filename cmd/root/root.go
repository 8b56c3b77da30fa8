// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mbeck/finance-analyzer/internal/category"
	"mbeck/finance-analyzer/internal/config"
	"mbeck/finance-analyzer/internal/currencyutils"
	"mbeck/finance-analyzer/internal/export"
	"mbeck/finance-analyzer/internal/fixedcost"
	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/pipeline"
	"mbeck/finance-analyzer/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, populated in PersistentPreRun
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-analyzer",
		Short: "Analyze German bank CSV exports: recurrence, fixed costs, budget split.",
		Long: `finance-analyzer ingests DKB and Sparkasse CSV exports, normalizes them,
detects recurring payments and fixed costs, reconstructs the balance history
and aggregates a 50/30/20 budget split. It runs as an HTTP server or over
local files.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finance-analyzer!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Invalid configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Hand the configured logger to packages with module-level logging.
			currencyutils.SetLogger(Log)
			export.SetLogger(Logger())
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
}

// Logger returns the shared logger behind the logging.Logger interface.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// BuildPipeline wires the classifier components from the loaded configuration.
// Rule files are optional overrides; missing files fall back to the built-in
// rule sets.
func BuildPipeline() *pipeline.Pipeline {
	logger := Logger()

	rules := store.NewRulesStore(Cfg.Classifier.CategoriesFile, Cfg.Classifier.FixedCostsFile, logger)

	categories, err := rules.LoadCategories()
	if err != nil {
		logger.WithError(err).Warn("Could not load category rules, using defaults")
	}

	fixedCfg, err := rules.LoadFixedCostConfig()
	if err != nil {
		logger.WithError(err).Warn("Could not load fixed-cost rules, using defaults")
		fixedCfg = fixedcost.Config{}
	}
	if len(fixedCfg.Rules) == 0 {
		fixedCfg = fixedcost.DefaultConfig()
	}
	if Cfg.Classifier.FixedCostThreshold > 0 {
		fixedCfg.FixedCostThreshold = Cfg.Classifier.FixedCostThreshold
	}

	detector := fixedcost.NewDetector(fixedCfg, logger)
	tagger := category.NewTagger(categories)

	return pipeline.New(detector, tagger, logger)
}
