// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the cdk-addons CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cdk-addons",
		Short: "Manage the addon manifests of a snap-packaged Kubernetes cluster",
	}

	cmd.AddCommand(FetchTemplates())
	cmd.AddCommand(Apply())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
