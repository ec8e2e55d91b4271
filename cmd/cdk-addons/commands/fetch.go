package commands

import (
	"github.com/spf13/cobra"

	"github.com/charmed-kubernetes/cdk-addons/cmd/cdk-addons/handlers"
)

// FetchTemplates returns the build-time command that pulls addon templates
// from the pinned upstream releases.
//
// Environment variables:
//
//	KUBE_VERSION:           kubernetes/kubernetes release tag (required)
//	KUBE_DASHBOARD_VERSION: kubernetes/dashboard release tag (required)
func FetchTemplates() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch-templates",
		Short: "Fetch addon templates from upstream releases",
		Long: `Fetch the addon manifest templates shipped with the snap.

Clones the pinned upstream repositories, copies the known template set,
and rewrites architecture literals into render-time placeholders. Meant
to run at snap build time; the output directory becomes $SNAP/templates
in the packaged snap.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.FetchTemplates(cmd.Context(), "./templates")
		},
	}

	return cmd
}
