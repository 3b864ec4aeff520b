// Package cmd contains the entrypoints to the binary
package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Bibendus83/period/pkg/metrics"
)

var logLevel = "INFO"
var friendlyLog bool
var statsAddr = ""

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", logLevel, "Set log level: INFO, DEBUG")
	rootCmd.PersistentFlags().BoolVarP(&friendlyLog, "friendly-log", "L", false, "Use a human-friendly logging style")
	rootCmd.PersistentFlags().StringVarP(&statsAddr, "stats-addr", "s", statsAddr, "Statsd addr (host:port) - metrics stay disabled when empty")
}

var rootCmd = &cobra.Command{
	Use:   "period",
	Short: "period builds, inspects and combines time intervals",
	Long: `period is a CLI over the interval algebra library: calendar-aligned
interval construction, and bulk analysis (covering span, gaps, pairwise
intersections, unions) of interval collections.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setLogLevel()
		metrics.InitMetrics(statsAddr)
	},
}

// Execute root cmd by default
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Send()
		os.Exit(1)
	}
}

func setLogLevel() {
	lvl, err := zerolog.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		log.Fatal().Str("LevelStr", logLevel).Msg("Invalid log-level provided")
	}
	zerolog.SetGlobalLevel(lvl)
	if friendlyLog {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().
			Timestamp().
			Logger()
	}
}
