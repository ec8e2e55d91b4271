package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Keys understood by the render pipeline.
const (
	KeyArch            = "arch"
	KeyDNSIP           = "kubedns-ip"
	KeyDNSDomain       = "dns-domain"
	KeyKubeconfig      = "kubeconfig"
	KeyEnableDashboard = "enable-dashboard"
)

// DefaultDNSDomain is used when the dns-domain key is unset.
const DefaultDNSDomain = "cluster.local"

// MissingConfigError reports a required configuration key with no value.
type MissingConfigError struct {
	Key string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing required config %q", e.Key)
}

// SnapDir returns the read-only snap root ($SNAP).
func SnapDir() string {
	return envOr("SNAP", ".")
}

// DataDir returns the writable snap data root ($SNAP_DATA).
func DataDir() string {
	return envOr("SNAP_DATA", ".")
}

// UserDataDir returns the per-user data root ($SNAP_USER_DATA).
func UserDataDir() string {
	return envOr("SNAP_USER_DATA", ".")
}

// TemplatesDir is where fetch-templates output is shipped inside the snap.
func TemplatesDir() string {
	return filepath.Join(SnapDir(), "templates")
}

// AddonsDir is the destination for rendered addon manifests.
func AddonsDir() string {
	return filepath.Join(UserDataDir(), "addons")
}

// KubeconfigPath returns the kubeconfig location, honoring the kubeconfig
// config key when set.
func KubeconfigPath() (string, error) {
	value, err := Get(KeyKubeconfig)
	if err != nil {
		return "", err
	}
	if value != "" {
		return value, nil
	}
	return filepath.Join(DataDir(), "kubeconfig"), nil
}

// Get returns the trimmed value of key, or "" when the key is unset.
func Get(key string) (string, error) {
	data, err := os.ReadFile(filepath.Join(DataDir(), "config", key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read config %q: %w", key, err)
	}
	return strings.TrimRight(string(data), " \t\r\n"), nil
}

// GetRequired returns the trimmed value of key, failing with a
// *MissingConfigError when the value is empty.
func GetRequired(key string) (string, error) {
	value, err := Get(key)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", &MissingConfigError{Key: key}
	}
	return value, nil
}

// GetBool interprets the value of key as a boolean; only the literal
// "true" enables it.
func GetBool(key string) (bool, error) {
	value, err := Get(key)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
