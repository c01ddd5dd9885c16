package main

import (
	"fmt"
	"os"

	"github.com/katahira/mekiki/internal/config"
	"github.com/katahira/mekiki/internal/crawler"
	"github.com/katahira/mekiki/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type crawlFlags struct {
	sourcesFile string
	token       string
}

func newCrawlCommand() *cobra.Command {
	flags := &crawlFlags{}

	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Fetch skill files from GitHub skill collections",
		Long: `Crawl GitHub repositories that collect agent skills and cache every
SKILL.md found, ready for the batch command.

Without --sources, a built-in list of known collections is crawled.
Unauthenticated GitHub API limits are low; set GITHUB_TOKEN or --token for
larger crawls.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrawlCommand(cmd, flags)
		},
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flags.sourcesFile, "sources", "", "YAML file listing repositories to crawl")
	cmd.Flags().StringVar(&flags.token, "token", "", "GitHub token (default: GITHUB_TOKEN env)")

	return cmd
}

func runCrawlCommand(cmd *cobra.Command, flags *crawlFlags) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	sources := crawler.DefaultSources
	if flags.sourcesFile != "" {
		sources, err = loadSources(flags.sourcesFile)
		if err != nil {
			return err
		}
	}

	token := flags.token
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	c := crawler.New(crawler.Options{Token: token})
	skills, err := c.Crawl(cmd.Context(), sources)
	if err != nil {
		return fmt.Errorf("crawling: %w", err)
	}
	if len(skills) == 0 {
		return fmt.Errorf("no skill files found in %d source(s)", len(sources))
	}

	cachePath := cfg.SkillsCachePath()
	if err := store.SaveSkills(cachePath, skills); err != nil {
		return err
	}

	fmt.Printf("Cached %d skill(s) from %d source(s) to %s\n", len(skills), len(sources), cachePath)
	return nil
}

func loadSources(path string) ([]crawler.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sources file %q: %w", path, err)
	}
	var sources []crawler.Source
	if err := yaml.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("parsing sources file %q: %w", path, err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("sources file %q lists no repositories", path)
	}
	return sources, nil
}
