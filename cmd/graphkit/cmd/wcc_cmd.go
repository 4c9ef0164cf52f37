package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/csrkernel/report"
	"github.com/katalvlaran/csrkernel/wcc"
)

var (
	wccInput string
	wccMode  string
	wccOut   string
)

var wccCmd = &cobra.Command{
	Use:   "wcc",
	Short: "Compute weakly connected components",
	RunE:  runWCC,
}

func init() {
	wccCmd.Flags().StringVarP(&wccInput, "input", "i", "", "input edge-list file (required)")
	wccCmd.Flags().StringVar(&wccMode, "mode", "seq", "kernel mode: seq or par")
	wccCmd.Flags().StringVar(&wccOut, "out", "", "output file (default stdout)")
	wccCmd.MarkFlagRequired("input")
}

func runWCC(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(wccInput)
	if err != nil {
		return err
	}

	start := time.Now()
	var res *wcc.Result
	switch wccMode {
	case "seq":
		res, err = wcc.Sequential(g)
	case "par":
		res, err = wcc.Parallel(g, cfg.Threads)
	default:
		return fmt.Errorf("wcc: unknown mode %q (valid: seq, par)", wccMode)
	}
	if err != nil {
		return err
	}
	logger.Info().Str("mode", wccMode).Dur("elapsed", time.Since(start)).Msg("wcc complete")

	out, err := openOutput(wccOut)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := report.WriteWCC(out, res); err != nil {
		return err
	}

	statsOut, err := openOutput(companionPath(wccOut, "_stats"))
	if err != nil {
		return err
	}
	defer statsOut.Close()
	return report.WriteWCCStats(statsOut, res)
}
