package main

import (
	"fmt"

	"github.com/katahira/mekiki/internal/config"
	"github.com/katahira/mekiki/internal/evaluator"
	"github.com/katahira/mekiki/internal/generate"
	"github.com/katahira/mekiki/internal/report"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	engine   string
	model    string
	stack    string
	notes    string
	output   string
	evaluate bool
}

func newGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Draft a new SKILL.md on a topic",
		Long: `Generate a SKILL.md draft for a topic, modeled on what scores well in
evaluation: concrete trigger phrases, runnable examples, explicit
boundaries.

With --evaluate, the draft is immediately scored so you can see where it
falls short before editing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateCommand(cmd, args[0], flags)
		},
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flags.engine, "engine", "", "Engine to use (gemini, copilot-sdk)")
	cmd.Flags().StringVar(&flags.model, "model", "", "Model to use for generation")
	cmd.Flags().StringVar(&flags.stack, "stack", "", "Tech stack the skill should target")
	cmd.Flags().StringVar(&flags.notes, "notes", "", "Extra requirements for the draft")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write the draft to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.evaluate, "evaluate", false, "Score the draft after generating it")

	return cmd
}

func runGenerateCommand(cmd *cobra.Command, topic string, flags *generateFlags) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg, flags.engine, flags.model)
	if err != nil {
		return err
	}
	defer shutdownEngine(engine)

	draft, err := generate.Generate(cmd.Context(), engine, generate.Options{
		Topic:      topic,
		TechStack:  flags.stack,
		ExtraNotes: flags.notes,
	})
	if err != nil {
		return fmt.Errorf("generating draft for %q: %w", topic, err)
	}

	if err := writeOutput(draft, flags.output); err != nil {
		return err
	}
	if flags.output != "" {
		fmt.Printf("Draft written to %s\n", flags.output)
	}

	if flags.evaluate {
		eval, err := evaluator.Evaluate(cmd.Context(), engine, topic, draft)
		if err != nil {
			return fmt.Errorf("evaluating draft: %w", err)
		}
		fmt.Println()
		fmt.Print(report.Evaluation(topic, eval))
	}
	return nil
}
