package main

import (
	"encoding/json"
	"fmt"

	"github.com/katahira/mekiki/internal/batch"
	"github.com/katahira/mekiki/internal/config"
	"github.com/katahira/mekiki/internal/report"
	"github.com/katahira/mekiki/internal/store"
	"github.com/spf13/cobra"
)

type analyzeFlags struct {
	asJSON bool
}

func newAnalyzeCommand() *cobra.Command {
	flags := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Summarize the evaluation ledger",
		Long: `Summarize the evaluation ledger: score distribution, verdict counts,
the best and worst skills, and anomalies where the stored verdict disagrees
with the score. Runs entirely offline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyzeCommand(flags)
		},
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Emit the summary as JSON")

	return cmd
}

func runAnalyzeCommand(flags *analyzeFlags) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	ledger, err := store.OpenLedger(cfg.LedgerPath())
	if err != nil {
		return err
	}

	summary := batch.Analyze(ledger.Records())

	if flags.asJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(report.Analysis(summary))
	return nil
}
