// Package run executes external commands behind a narrow interface.
//
// Both pipelines shell out to external binaries (git for template
// acquisition, kubectl for cluster reconciliation). Keeping the process
// boundary behind [Runner] lets tests substitute a fake without touching
// the network or a live cluster.
package run
