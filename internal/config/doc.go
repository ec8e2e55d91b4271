// Package config reads snap-style configuration for the addon pipelines.
//
// Each configuration key is a plain-text file under $SNAP_DATA/config; the
// file contents, stripped of trailing whitespace, are the value. Directory
// roots come from the snap environment (SNAP, SNAP_DATA, SNAP_USER_DATA)
// with working-directory fallbacks so the binary stays usable outside a
// snap confinement, e.g. in tests.
package config
