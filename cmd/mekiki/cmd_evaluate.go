package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katahira/mekiki/internal/config"
	"github.com/katahira/mekiki/internal/evaluator"
	"github.com/katahira/mekiki/internal/report"
	"github.com/spf13/cobra"
)

type evaluateFlags struct {
	engine string
	model  string
	asJSON bool
	output string
}

func newEvaluateCommand() *cobra.Command {
	flags := &evaluateFlags{}

	cmd := &cobra.Command{
		Use:   "evaluate <skill-file>",
		Short: "Score a skill file against the quality rubric",
		Long: `Evaluate a SKILL.md against five weighted quality dimensions and print
a scored report with a verdict (INSTALL, MAYBE, or SKIP).

The prompt adapts to the skill's structure: index-style files that mostly
point at other documents are judged as a table of contents, self-contained
files as a complete reference.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluateCommand(cmd, args[0], flags)
		},
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flags.engine, "engine", "", "Engine to use (gemini, copilot-sdk)")
	cmd.Flags().StringVar(&flags.model, "model", "", "Model to use for evaluation")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Emit the full evaluation as JSON")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

func runEvaluateCommand(cmd *cobra.Command, skillPath string, flags *evaluateFlags) error {
	content, err := readSkillFile(skillPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg, flags.engine, flags.model)
	if err != nil {
		return err
	}
	defer shutdownEngine(engine)

	skillName := skillNameFromPath(skillPath)
	eval, err := evaluator.Evaluate(cmd.Context(), engine, skillName, content)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", skillName, err)
	}

	if flags.asJSON {
		data, err := json.MarshalIndent(report.NewJSONReport(skillName, eval), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return writeOutput(string(data)+"\n", flags.output)
	}

	return writeOutput(report.Evaluation(skillName, eval), flags.output)
}

// skillNameFromPath derives a display name: the parent directory for
// SKILL.md files, otherwise the file stem.
func skillNameFromPath(path string) string {
	base := filepath.Base(path)
	if strings.EqualFold(base, "SKILL.md") || strings.EqualFold(base, "SKILLS.md") {
		if dir := filepath.Base(filepath.Dir(path)); dir != "." && dir != string(filepath.Separator) {
			return dir
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
