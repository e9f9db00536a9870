package commands

import (
	"os"

	"shiptracker/internal/app"
	"shiptracker/internal/config"
	"shiptracker/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose       bool
	format        string
	workers       int
	requireLocale bool
	mermaid       bool
	withRecords   bool

	cfg      *config.AppConfig
	analyzer *app.Analyzer
)

var rootCmd = &cobra.Command{
	Use:   "shiptracker <FILE> [OUTPUT]",
	Short: "Shiptracker reports transit and layover times from shipment tracking logs",
	Long: `Shiptracker reads a shipment tracking export (.txt or .csv), rebuilds the chronological
event history, infers the country of every event and reports total transit time, layover
time per country and the longest delay between two consecutive events.`,
	Args:          cobra.RangeArgs(0, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Console only until the log directory is known.
		log.Logger = logging.New(os.Stderr, nil, verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		applyFlagOverrides(cmd)
		logging.Init(verbose, cfg.LogDir)

		analyzer, err = app.New(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize analyzer")
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Int("workers", cfg.Workers).
			Msg("Shiptracker starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runAnalyze(cmd, args)
	},
}

func applyFlagOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("require-locale") {
		cfg.RequireLocale = requireLocale
	}
	if flags.Changed("mermaid") {
		cfg.EnableMermaidCharts = mermaid
	}
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	pf.IntVarP(&workers, "workers", "w", 0, "parallel line extraction workers (default: number of CPUs)")
	pf.BoolVar(&requireLocale, "require-locale", false, "fail when no event resolves to a known country")

	addReportFlags(rootCmd)

	rootCmd.AddCommand(analyzeCmd, serveCmd, versionCmd)
}
