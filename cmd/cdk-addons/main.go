// Package main is the entry point for the cdk-addons CLI.
//
// cdk-addons manages the addon manifests of a snap-packaged Kubernetes
// distribution: fetch-templates pulls manifest templates from pinned
// upstream releases at build time, and apply renders those templates with
// runtime configuration and reconciles the cluster against the result.
//
// For detailed usage information, run:
//
//	cdk-addons --help
package main

import (
	"fmt"
	"os"

	"github.com/charmed-kubernetes/cdk-addons/cmd/cdk-addons/commands"
)

// Version information set by the snap build at link time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
