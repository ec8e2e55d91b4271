package run

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_Run(t *testing.T) {
	t.Parallel()

	t.Run("captures output on success", func(t *testing.T) {
		t.Parallel()
		runner := NewLocal(nil)

		output, err := runner.Run(context.Background(), "sh", "-c", "echo hello")
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(output))
	})

	t.Run("returns CommandError on non-zero exit", func(t *testing.T) {
		t.Parallel()
		runner := NewLocal(nil)

		output, err := runner.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
		require.Error(t, err)

		var cmdErr *CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Equal(t, 3, cmdErr.ExitCode)
		assert.Contains(t, cmdErr.Output, "boom")
		assert.Contains(t, cmdErr.Error(), "exited with code 3")
		assert.Contains(t, string(output), "boom")
	})

	t.Run("wraps missing binaries without CommandError", func(t *testing.T) {
		t.Parallel()
		runner := NewLocal(nil)

		_, err := runner.Run(context.Background(), "definitely-not-a-binary-xyz")
		require.Error(t, err)

		var cmdErr *CommandError
		assert.False(t, errors.As(err, &cmdErr))
	})
}

func TestFake_RecordsCalls(t *testing.T) {
	t.Parallel()

	fake := &Fake{}
	_, err := fake.Run(context.Background(), "git", "clone", "repo")
	require.NoError(t, err)

	_, err = fake.Run(context.Background(), "kubectl", "apply")
	require.NoError(t, err)

	assert.Equal(t, []string{"git clone repo", "kubectl apply"}, fake.Calls)
}
