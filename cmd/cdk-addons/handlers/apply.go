package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmed-kubernetes/cdk-addons/internal/addons"
	"github.com/charmed-kubernetes/cdk-addons/internal/config"
	"github.com/charmed-kubernetes/cdk-addons/internal/k8s"
	"github.com/charmed-kubernetes/cdk-addons/internal/ui"
	"github.com/charmed-kubernetes/cdk-addons/internal/util/run"
)

// nodeCounter is the slice of the k8s client the render context needs.
type nodeCounter interface {
	NodeCount(ctx context.Context) (int, error)
}

// Factory function variables - replaced in tests for dependency injection.
var (
	newNodeCounter = func(kubeconfigPath string) (nodeCounter, error) {
		return k8s.NewClient(kubeconfigPath)
	}

	newRunner = func(logger *slog.Logger) run.Runner {
		return run.NewLocal(logger)
	}
)

// Apply renders the shipped templates with the current cluster
// configuration and reconciles the cluster against the result. Rendering
// always precedes the apply; a failure in either phase aborts the run
// without rollback.
func Apply(ctx context.Context) error {
	logger := slog.Default()
	printer := ui.NewPrinter(os.Stdout)

	kubeconfig, err := config.KubeconfigPath()
	if err != nil {
		return err
	}

	printer.Step("Rendering addon templates")
	renderCtx, enableDashboard, err := buildContext(ctx, kubeconfig)
	if err != nil {
		printer.Fail("Failed to assemble rendering context")
		return err
	}

	renderer := &addons.Renderer{
		TemplatesDir:    config.TemplatesDir(),
		AddonsDir:       config.AddonsDir(),
		Context:         renderCtx,
		EnableDashboard: enableDashboard,
		Logger:          logger,
	}
	if err := renderer.Render(); err != nil {
		printer.Fail("Template rendering failed")
		return err
	}
	printer.Success(fmt.Sprintf("Addon manifests written to %s", config.AddonsDir()))

	printer.Step("Applying addons to the cluster")
	applier := &addons.Applier{
		Runner:     newRunner(logger),
		Kubeconfig: kubeconfig,
		AddonsDir:  config.AddonsDir(),
	}
	if err := applier.Apply(ctx); err != nil {
		printer.Fail("Addon apply failed")
		return err
	}
	printer.Success("Cluster addons reconciled")
	return nil
}

// buildContext assembles the rendering context from snap configuration and
// a live node count query.
func buildContext(ctx context.Context, kubeconfig string) (addons.Context, bool, error) {
	arch, err := config.GetRequired(config.KeyArch)
	if err != nil {
		return addons.Context{}, false, err
	}
	dnsServer, err := config.GetRequired(config.KeyDNSIP)
	if err != nil {
		return addons.Context{}, false, err
	}
	dnsDomain, err := config.Get(config.KeyDNSDomain)
	if err != nil {
		return addons.Context{}, false, err
	}
	if dnsDomain == "" {
		dnsDomain = config.DefaultDNSDomain
	}
	enableDashboard, err := config.GetBool(config.KeyEnableDashboard)
	if err != nil {
		return addons.Context{}, false, err
	}

	client, err := newNodeCounter(kubeconfig)
	if err != nil {
		return addons.Context{}, false, err
	}
	numNodes, err := client.NodeCount(ctx)
	if err != nil {
		return addons.Context{}, false, fmt.Errorf("failed to query cluster node count: %w", err)
	}

	return addons.Context{
		Arch:      arch,
		DNSServer: dnsServer,
		DNSDomain: dnsDomain,
		NumNodes:  numNodes,
	}, enableDashboard, nil
}
