package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/katahira/mekiki/internal/config"
	"github.com/katahira/mekiki/internal/models"
	"github.com/katahira/mekiki/internal/recommend"
	"github.com/katahira/mekiki/internal/report"
	"github.com/katahira/mekiki/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type recommendFlags struct {
	engine     string
	model      string
	stack      string
	project    string
	notes      string
	minQuality float64
	showSkip   bool
	asJSON     bool
}

func newRecommendCommand() *cobra.Command {
	flags := &recommendFlags{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank evaluated skills by relevance to your project",
		Long: `Rank the skills in the evaluation ledger by how relevant they are to
your project, combining stored quality scores (60%) with a model relevance
judgment (40%).

Describe your project with --stack and --type, or answer the interactive
prompts when run from a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommendCommand(cmd, flags)
		},
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flags.engine, "engine", "", "Engine to use (gemini, copilot-sdk)")
	cmd.Flags().StringVar(&flags.model, "model", "", "Model to use for relevance matching")
	cmd.Flags().StringVar(&flags.stack, "stack", "", "Tech stack, e.g. \"Go, PostgreSQL, Kubernetes\"")
	cmd.Flags().StringVar(&flags.project, "type", "", "Project type, e.g. \"backend API\"")
	cmd.Flags().StringVar(&flags.notes, "notes", "", "Anything else the matcher should know")
	cmd.Flags().Float64Var(&flags.minQuality, "min-quality", 0, "Quality floor (default from config)")
	cmd.Flags().BoolVar(&flags.showSkip, "show-skip", false, "List skipped skills instead of a count")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Emit ranked results as JSON")

	return cmd
}

func runRecommendCommand(cmd *cobra.Command, flags *recommendFlags) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	ledger, err := store.OpenLedger(cfg.LedgerPath())
	if err != nil {
		return err
	}
	if ledger.Len() == 0 {
		return fmt.Errorf("evaluation ledger %q is empty; run `mekiki batch` first", cfg.LedgerPath())
	}

	profile := models.ProjectProfile{
		TechStack:   flags.stack,
		ProjectType: flags.project,
		ExtraNotes:  flags.notes,
	}
	if profile.TechStack == "" && profile.ProjectType == "" {
		if err := promptForProfile(&profile); err != nil {
			return err
		}
	}

	minQuality := flags.minQuality
	if minQuality == 0 {
		minQuality = cfg.Recommend.MinQuality
	}

	candidates := make([]recommend.Candidate, 0, ledger.Len())
	for _, rec := range ledger.Records() {
		candidates = append(candidates, recommend.Candidate{
			Name:          rec.SkillName,
			WeightedScore: rec.WeightedScore,
			Verdict:       rec.Verdict,
			Summary:       rec.OverallSummary,
			URL:           rec.URL,
		})
	}
	candidates = recommend.FilterQuality(candidates, minQuality)
	if len(candidates) == 0 {
		fmt.Printf("No skills passed the quality floor (%.1f); nothing to rank.\n", minQuality)
		return nil
	}

	engine, err := newEngine(cfg, flags.engine, flags.model)
	if err != nil {
		return err
	}
	defer shutdownEngine(engine)

	matches, err := recommend.MatchRelevance(cmd.Context(), engine, profile, candidates)
	if err != nil {
		return fmt.Errorf("judging relevance: %w", err)
	}
	results := recommend.Rank(candidates, matches)

	if flags.asJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(report.Recommendations(results, flags.showSkip))
	return nil
}

// promptForProfile asks for the project description interactively. Refuses
// to prompt when stdin is not a terminal, so scripted runs fail fast with a
// usable message instead of hanging.
func promptForProfile(profile *models.ProjectProfile) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("no project profile given; pass --stack and --type, or run interactively")
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tech stack").
				Description("Languages, frameworks, infrastructure — e.g. \"Go, PostgreSQL, Kubernetes\"").
				Value(&profile.TechStack),
			huh.NewInput().
				Title("Project type").
				Description("e.g. \"backend API\", \"CLI tool\", \"data pipeline\"").
				Value(&profile.ProjectType),
			huh.NewInput().
				Title("Anything else?").
				Description("Team conventions, constraints, priorities (optional)").
				Value(&profile.ExtraNotes),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("reading project profile: %w", err)
	}
	return nil
}
