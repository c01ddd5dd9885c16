package main

import (
	"fmt"
	"os"

	"github.com/katahira/mekiki/internal/config"
	"github.com/katahira/mekiki/internal/publish"
	"github.com/spf13/cobra"
)

type publishFlags struct {
	accountURL string
	container  string
	blobName   string
}

func newPublishCommand() *cobra.Command {
	flags := &publishFlags{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the evaluation ledger to Azure Blob Storage",
		Long: `Upload the evaluation ledger to an Azure Blob Storage container so the
whole team shares one set of scores.

Authentication uses the default Azure credential chain (az login,
environment variables, managed identity).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublishCommand(cmd, flags)
		},
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flags.accountURL, "account-url", "", "Blob service URL (default from config)")
	cmd.Flags().StringVar(&flags.container, "container", "", "Target container (default from config)")
	cmd.Flags().StringVar(&flags.blobName, "blob-name", "", "Blob name (default: timestamped)")

	return cmd
}

func runPublishCommand(cmd *cobra.Command, flags *publishFlags) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	ledgerPath := cfg.LedgerPath()
	if _, err := os.Stat(ledgerPath); err != nil {
		return fmt.Errorf("no ledger at %q; run `mekiki batch` first", ledgerPath)
	}

	opts := publish.Options{
		AccountURL: cfg.Publish.AccountURL,
		Container:  cfg.Publish.Container,
		BlobName:   flags.blobName,
	}
	if flags.accountURL != "" {
		opts.AccountURL = flags.accountURL
	}
	if flags.container != "" {
		opts.Container = flags.container
	}

	blobName, err := publish.Ledger(cmd.Context(), ledgerPath, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Published %s to %s/%s\n", ledgerPath, opts.Container, blobName)
	return nil
}
