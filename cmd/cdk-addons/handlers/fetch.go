// Package handlers implements the business logic for CLI commands.
//
// Handlers are framework-agnostic and can be tested independently of the
// CLI framework. External collaborators are created through package-level
// function vars so tests can substitute fakes.
package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmed-kubernetes/cdk-addons/internal/fetch"
	"github.com/charmed-kubernetes/cdk-addons/internal/platform/git"
	"github.com/charmed-kubernetes/cdk-addons/internal/ui"
	"github.com/charmed-kubernetes/cdk-addons/internal/util/run"
)

// newCloner creates the upstream repository cloner.
var newCloner = func(logger *slog.Logger) fetch.Cloner {
	return git.NewClient(run.NewLocal(logger))
}

// FetchTemplates populates destDir with the addon templates pinned by
// KUBE_VERSION and KUBE_DASHBOARD_VERSION.
func FetchTemplates(ctx context.Context, destDir string) error {
	logger := slog.Default()
	printer := ui.NewPrinter(os.Stdout)

	printer.Step("Fetching addon templates")
	fetcher := fetch.NewFetcher(newCloner(logger), logger)
	if err := fetcher.Fetch(ctx, destDir); err != nil {
		printer.Fail("Template fetch failed")
		return err
	}
	printer.Success(fmt.Sprintf("Templates written to %s", destDir))
	return nil
}
