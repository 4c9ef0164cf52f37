package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/csrkernel/config"
	"github.com/katalvlaran/csrkernel/xlog"
)

var (
	// Persistent flags
	flagThreads  int
	flagLogLevel string
	flagConfig   string

	cfg    *config.Config
	logger zerolog.Logger
)

// rootCmd is graphkit's base command.
var rootCmd = &cobra.Command{
	Use:   "graphkit",
	Short: "Parallel graph kernels over a compressed sparse-row graph",
	Long: `graphkit runs BFS, WCC, and PageRank over directed graphs loaded from
an edge-list file, each in a sequential reference form and one or more
parallel forms built on a common CSR representation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if cmd.Flags().Changed("threads") {
			v.Set("threads", flagThreads)
		}
		if cmd.Flags().Changed("log-level") {
			v.Set("log_level", flagLogLevel)
		}

		resolved, err := config.Load(v, flagConfig)
		if err != nil {
			return err
		}
		cfg = resolved
		logger = xlog.New(cfg.LogLevel)
		return nil
	},
}

// Execute runs the root command, exiting the process with a non-zero
// status on parse/IO/argument errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 4, "worker thread count for parallel kernels")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "optional config file path")

	rootCmd.AddCommand(bfsCmd)
	rootCmd.AddCommand(wccCmd)
	rootCmd.AddCommand(pagerankCmd)
	rootCmd.AddCommand(benchmarkCmd)
}
