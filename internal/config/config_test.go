package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setConfig writes a per-key config file under a fresh SNAP_DATA root.
func setConfig(t *testing.T, key, value string) {
	t.Helper()
	dir := filepath.Join(DataDir(), "config")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, key), []byte(value), 0o644))
}

func TestGet(t *testing.T) {
	t.Setenv("SNAP_DATA", t.TempDir())

	t.Run("strips trailing whitespace", func(t *testing.T) {
		setConfig(t, "arch", "arm64\n")

		value, err := Get("arch")
		require.NoError(t, err)
		assert.Equal(t, "arm64", value)
	})

	t.Run("missing key yields empty value without error", func(t *testing.T) {
		value, err := Get("no-such-key")
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}

func TestGetRequired(t *testing.T) {
	t.Setenv("SNAP_DATA", t.TempDir())

	t.Run("fails with MissingConfigError on empty value", func(t *testing.T) {
		setConfig(t, "kubedns-ip", "")

		_, err := GetRequired("kubedns-ip")
		require.Error(t, err)

		var missing *MissingConfigError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "kubedns-ip", missing.Key)
	})

	t.Run("fails when the key file is absent", func(t *testing.T) {
		_, err := GetRequired("absent")

		var missing *MissingConfigError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "absent", missing.Key)
	})

	t.Run("returns populated values", func(t *testing.T) {
		setConfig(t, "dns-domain", "cluster.local\n")

		value, err := GetRequired("dns-domain")
		require.NoError(t, err)
		assert.Equal(t, "cluster.local", value)
	})
}

func TestGetBool(t *testing.T) {
	t.Setenv("SNAP_DATA", t.TempDir())

	setConfig(t, "enable-dashboard", "true\n")
	enabled, err := GetBool("enable-dashboard")
	require.NoError(t, err)
	assert.True(t, enabled)

	setConfig(t, "enable-dashboard", "false")
	enabled, err = GetBool("enable-dashboard")
	require.NoError(t, err)
	assert.False(t, enabled)

	enabled, err = GetBool("unset-flag")
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestKubeconfigPath(t *testing.T) {
	t.Setenv("SNAP_DATA", t.TempDir())

	t.Run("defaults under SNAP_DATA", func(t *testing.T) {
		path, err := KubeconfigPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(DataDir(), "kubeconfig"), path)
	})

	t.Run("honors the kubeconfig key", func(t *testing.T) {
		setConfig(t, "kubeconfig", "/etc/kubernetes/admin.conf\n")

		path, err := KubeconfigPath()
		require.NoError(t, err)
		assert.Equal(t, "/etc/kubernetes/admin.conf", path)
	})
}
