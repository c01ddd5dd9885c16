package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katahira/mekiki/internal/doctype"
	"github.com/spf13/cobra"
)

type classifyFlags struct {
	asJSON bool
}

func newClassifyCommand() *cobra.Command {
	flags := &classifyFlags{}

	cmd := &cobra.Command{
		Use:   "classify <skill-file>",
		Short: "Show how a skill file would be classified, without a model call",
		Long: `Classify a SKILL.md as index-style or self-contained and show the
structural signals behind the decision. Runs entirely offline — useful for
checking which evaluation rubric a file will get before spending tokens.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassifyCommand(args[0], flags)
		},
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Emit the classification as JSON")

	return cmd
}

func runClassifyCommand(skillPath string, flags *classifyFlags) error {
	content, err := readSkillFile(skillPath)
	if err != nil {
		return err
	}

	det := doctype.Explain(content)

	if flags.asJSON {
		data, err := json.MarshalIndent(det, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding classification: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s: %s\n", skillNameFromPath(skillPath), det.Kind)
	fmt.Printf("  index signals (%d): %s\n", len(det.IndexSignalsFound), orNone(strings.Join(det.IndexSignalsFound, ", ")))
	fmt.Printf("  file references: %s\n", orNone(strings.Join(det.FileReferences, ", ")))
	fmt.Printf("  self-contained signals: %d\n", det.SelfContainedSignals)
	fmt.Printf("  code blocks: %d  headings: %d\n", det.CodeBlocks, det.Headings)
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
