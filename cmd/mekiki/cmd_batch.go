package main

import (
	"fmt"

	"github.com/katahira/mekiki/internal/batch"
	"github.com/katahira/mekiki/internal/config"
	"github.com/katahira/mekiki/internal/store"
	"github.com/spf13/cobra"
)

type batchFlags struct {
	engine string
	model  string
	limit  int
	force  bool
}

func newBatchCommand() *cobra.Command {
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate every crawled skill and record scores in the ledger",
		Long: `Evaluate all crawled skills sequentially, writing each result to the
evaluation ledger as it lands. Skills already in the ledger are skipped, so
an interrupted run resumes where it stopped. A single failed evaluation is
logged and skipped; the run continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatchCommand(cmd, flags)
		},
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flags.engine, "engine", "", "Engine to use (gemini, copilot-sdk)")
	cmd.Flags().StringVar(&flags.model, "model", "", "Model to use for evaluation")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Stop after evaluating this many skills (0 = no limit)")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Re-evaluate skills already in the ledger")

	return cmd
}

func runBatchCommand(cmd *cobra.Command, flags *batchFlags) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	skills, err := store.LoadSkills(cfg.SkillsCachePath())
	if err != nil {
		return fmt.Errorf("loading crawled skills (run `mekiki crawl` first): %w", err)
	}

	ledger, err := store.OpenLedger(cfg.LedgerPath())
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg, flags.engine, flags.model)
	if err != nil {
		return err
	}
	defer shutdownEngine(engine)

	driver := &batch.Driver{
		Engine: engine,
		Ledger: ledger,
		Limit:  flags.limit,
		Force:  flags.force,
	}

	stats, err := driver.Run(cmd.Context(), skills)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s: %d evaluated, %d skipped, %d failed (%d total in ledger)\n",
		stats.RunID, stats.Evaluated, stats.Skipped, stats.Failed, ledger.Len())
	return nil
}
