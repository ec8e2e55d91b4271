// Package git wraps the git binary for template acquisition.
package git

import (
	"context"
	"fmt"

	"github.com/charmed-kubernetes/cdk-addons/internal/util/run"
)

// Client performs git operations through an external command runner.
type Client struct {
	runner run.Runner
}

// NewClient returns a git client backed by the given runner.
func NewClient(runner run.Runner) *Client {
	return &Client{runner: runner}
}

// ShallowClone clones url at the given tag or branch into dir. The clone is
// depth-1 and single-branch; upstream history is never needed, only the
// tree at the pinned revision. A non-zero git exit surfaces as a
// *run.CommandError and is never retried.
func (c *Client) ShallowClone(ctx context.Context, url, ref, dir string) error {
	args := []string{"clone", "--depth", "1", "--branch", ref, "--single-branch", url, dir}
	if _, err := c.runner.Run(ctx, "git", args...); err != nil {
		return fmt.Errorf("failed to clone %s at %s: %w", url, ref, err)
	}
	return nil
}
