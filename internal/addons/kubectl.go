package addons

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmed-kubernetes/cdk-addons/internal/util/run"
)

const (
	addonNamespace         = "kube-system"
	clusterServiceSelector = labelClusterService + "=true"
)

// Applier reconciles live cluster state against the rendered addon
// directory with kubectl.
type Applier struct {
	Runner     run.Runner
	Kubeconfig string
	AddonsDir  string
}

// Apply runs the two-phase reconcile: the DNS service definition on its
// own, then the whole directory recursively with pruning. Both invocations
// scope to the kube-system namespace and the cluster-service selector, so
// pruning can only touch objects this tool manages. Failures are fatal and
// never retried.
func (a *Applier) Apply(ctx context.Context) error {
	if err := a.kubectl(ctx,
		"apply",
		"-f", filepath.Join(a.AddonsDir, dnsServiceFile),
		"--namespace="+addonNamespace,
		"-l", clusterServiceSelector,
	); err != nil {
		return fmt.Errorf("failed to apply DNS service: %w", err)
	}

	if err := a.kubectl(ctx,
		"apply",
		"-f", a.AddonsDir,
		"--recursive",
		"--namespace="+addonNamespace,
		"-l", clusterServiceSelector,
		"--prune=true",
	); err != nil {
		return fmt.Errorf("failed to apply addon directory: %w", err)
	}
	return nil
}

func (a *Applier) kubectl(ctx context.Context, args ...string) error {
	args = append([]string{"--kubeconfig", a.Kubeconfig}, args...)
	_, err := a.Runner.Run(ctx, "kubectl", args...)
	return err
}
