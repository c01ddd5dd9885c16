package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mekiki",
		Short: "Mekiki - quality and security grader for agent skill files",
		Long: `Mekiki grades SKILL.md files before you install them.

It scores documentation quality against a weighted rubric, scans for
prompt-injection and other security risks, and ranks crawled skills by
relevance to your project.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			color.NoColor = true
		}
	}

	cmd.AddCommand(newEvaluateCommand())
	cmd.AddCommand(newScanCommand())
	cmd.AddCommand(newClassifyCommand())
	cmd.AddCommand(newRecommendCommand())
	cmd.AddCommand(newGenerateCommand())
	cmd.AddCommand(newCrawlCommand())
	cmd.AddCommand(newBatchCommand())
	cmd.AddCommand(newAnalyzeCommand())
	cmd.AddCommand(newPublishCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
