// Package publish uploads the evaluation ledger to Azure Blob Storage so a
// team can share one set of scores instead of burning tokens re-evaluating.
package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// Options configures one ledger upload.
type Options struct {
	// AccountURL is the blob service endpoint, e.g.
	// https://myaccount.blob.core.windows.net.
	AccountURL string

	// Container receives the ledger blob. It must already exist.
	Container string

	// BlobName overrides the default timestamped name.
	BlobName string
}

// defaultBlobName stamps uploads so older ledgers stay retrievable.
func defaultBlobName(now time.Time) string {
	return fmt.Sprintf("evaluations-%s.json", now.UTC().Format("2006-01-02T15-04-05Z"))
}

// Ledger uploads the ledger file at path and returns the blob name.
// Authentication uses the default Azure credential chain (CLI login,
// environment, managed identity).
func Ledger(ctx context.Context, path string, opts Options) (string, error) {
	if opts.AccountURL == "" {
		return "", errors.New("publish: account_url is not configured (set publish.account_url in .mekiki.yaml)")
	}
	if opts.Container == "" {
		return "", errors.New("publish: container is not configured (set publish.container in .mekiki.yaml)")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading ledger %q: %w", path, err)
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return "", fmt.Errorf("building Azure credential: %w", err)
	}

	client, err := azblob.NewClient(opts.AccountURL, cred, nil)
	if err != nil {
		return "", fmt.Errorf("creating blob client for %q: %w", opts.AccountURL, err)
	}

	blobName := opts.BlobName
	if blobName == "" {
		blobName = defaultBlobName(time.Now())
	}

	slog.Debug("uploading ledger", "container", opts.Container, "blob", blobName, "bytes", len(data))

	if _, err := client.UploadBuffer(ctx, opts.Container, blobName, data, nil); err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.ErrorCode == "ContainerNotFound" {
			return "", fmt.Errorf("container %q does not exist in %s: %w", opts.Container, opts.AccountURL, err)
		}
		return "", fmt.Errorf("uploading %q: %w", blobName, err)
	}

	return blobName, nil
}
