package commands

import (
	"github.com/spf13/cobra"

	"github.com/charmed-kubernetes/cdk-addons/cmd/cdk-addons/handlers"
)

// Apply returns the command that renders the shipped templates and
// reconciles the cluster against them.
//
// Configuration is read from per-key files under $SNAP_DATA/config:
//
//	arch:             target architecture substituted into manifests (required)
//	kubedns-ip:       cluster IP of the DNS service (required)
//	dns-domain:       cluster DNS domain (default: cluster.local)
//	kubeconfig:       kubeconfig path (default: $SNAP_DATA/kubeconfig)
//	enable-dashboard: "true" to include dashboard and monitoring addons
func Apply() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Render addon templates and apply them to the cluster",
		Long: `Render addon templates and apply them to the cluster.

Renders every shipped template with the current configuration, stamps the
management labels on each manifest document, and reconciles the cluster
with kubectl: the DNS service first, then the whole addon directory with
pruning enabled. Objects carrying the cluster-service label that are no
longer part of the rendered set are deleted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context())
		},
	}
}
