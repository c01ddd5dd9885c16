package main

import (
	"encoding/json"
	"fmt"

	"github.com/katahira/mekiki/internal/config"
	"github.com/katahira/mekiki/internal/models"
	"github.com/katahira/mekiki/internal/report"
	"github.com/katahira/mekiki/internal/security"
	"github.com/spf13/cobra"
)

type scanFlags struct {
	engine string
	model  string
	asJSON bool
	output string
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan <skill-file>",
		Short: "Scan a skill file for security risks",
		Long: `Scan a SKILL.md for prompt injection, data exfiltration, destructive
commands, and other risks before installing it.

A fast regex pass catches known-bad patterns; a model pass reads the whole
file for risks regexes miss. Findings from both are merged and the higher
risk level wins. Exits 1 when the scan recommends REJECT.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanCommand(cmd, args[0], flags)
		},
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flags.engine, "engine", "", "Engine to use (gemini, copilot-sdk)")
	cmd.Flags().StringVar(&flags.model, "model", "", "Model to use for the deep scan")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Emit the scan report as JSON")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

func runScanCommand(cmd *cobra.Command, skillPath string, flags *scanFlags) error {
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
	rep, err := security.Scan(cmd.Context(), engine, skillName, content)
	if err != nil {
		return fmt.Errorf("scanning %q: %w", skillName, err)
	}

	if flags.asJSON {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		if err := writeOutput(string(data)+"\n", flags.output); err != nil {
			return err
		}
	} else if err := writeOutput(report.SecurityScan(skillName, rep), flags.output); err != nil {
		return err
	}

	if rep.Recommendation == models.ScanReject {
		return &RejectionError{Message: fmt.Sprintf("scan recommends against installing %q (risk: %s)", skillName, rep.RiskLevel)}
	}
	return nil
}
