// Package fetch populates the template directory from upstream addon
// sources at build time.
//
// Each upstream repository is shallow-cloned at a pinned revision into a
// temporary workspace, the required manifest templates are copied out, and
// architecture-specific literals are rewritten into render-time
// placeholders. The clone workspace is removed on every exit path.
package fetch
