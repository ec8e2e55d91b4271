package addons

import (
	"fmt"
	"text/template"
)

// Context carries the values substituted into addon templates. It is
// assembled fresh for every render run and never persisted.
type Context struct {
	Arch      string
	DNSServer string
	DNSDomain string
	NumNodes  int
}

// Heapster memory sizing: a fixed base plus a per-node increment, matching
// the upstream addon-resizer defaults.
const (
	baseMetricsMemoryMB    = 140
	metricsMemoryPerNodeMB = 4
)

// funcs exposes the context values as zero-argument template functions so
// the fetcher's placeholder grammar ({{ arch }}, {{ dns_server }}, ...)
// parses as plain text/template syntax.
func (c Context) funcs() template.FuncMap {
	return template.FuncMap{
		"arch":       func() string { return c.Arch },
		"dns_server": func() string { return c.DNSServer },
		"dns_domain": func() string { return c.DNSDomain },
		"num_nodes":  func() int { return c.NumNodes },
		"base_metrics_memory": func() string {
			return fmt.Sprintf("%dMi", baseMetricsMemoryMB)
		},
		"metrics_memory": func() string {
			return fmt.Sprintf("%dMi", baseMetricsMemoryMB+metricsMemoryPerNodeMB*c.NumNodes)
		},
	}
}
