package fetch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Version pins consumed from the build environment.
const (
	EnvKubeVersion      = "KUBE_VERSION"
	EnvDashboardVersion = "KUBE_DASHBOARD_VERSION"
)

// Upstream template sources.
const (
	kubernetesRepo = "https://github.com/kubernetes/kubernetes.git"
	dashboardRepo  = "https://github.com/kubernetes/dashboard.git"
)

// Cloner acquires an upstream repository tree at a pinned revision.
type Cloner interface {
	ShallowClone(ctx context.Context, url, ref, dir string) error
}

// templateFile maps one upstream manifest to its shipped template name.
type templateFile struct {
	dest string
	src  string

	// optional files are skipped silently when the upstream tree does not
	// carry them (they appeared or disappeared across releases).
	optional bool
}

// kubernetesTemplates are copied from the kubernetes/kubernetes clone. The
// kubedns controller/service pair is handled separately because of its
// legacy naming generation.
var kubernetesTemplates = []templateFile{
	{dest: "kubedns-sa.yaml", src: "cluster/addons/dns/kubedns-sa.yaml", optional: true},
	{dest: "kubedns-cm.yaml", src: "cluster/addons/dns/kubedns-cm.yaml", optional: true},
	{dest: "grafana-service.yaml", src: "cluster/addons/cluster-monitoring/influxdb/grafana-service.yaml"},
	{dest: "heapster-controller.yaml", src: "cluster/addons/cluster-monitoring/influxdb/heapster-controller.yaml"},
	{dest: "heapster-service.yaml", src: "cluster/addons/cluster-monitoring/influxdb/heapster-service.yaml"},
	{dest: "influxdb-grafana-controller.yaml", src: "cluster/addons/cluster-monitoring/influxdb/influxdb-grafana-controller.yaml"},
	{dest: "influxdb-service.yaml", src: "cluster/addons/cluster-monitoring/influxdb/influxdb-service.yaml"},
}

// The kubedns pair exists under two naming generations upstream. The
// current names are tried first; a not-found failure falls back to the
// skydns-era names. Either generation lands under the same destination
// filenames so the render pipeline never sees the difference.
var (
	kubednsCurrent = []templateFile{
		{dest: "kubedns-controller.yaml", src: "cluster/addons/dns/kubedns-controller.yaml.in"},
		{dest: "kubedns-svc.yaml", src: "cluster/addons/dns/kubedns-svc.yaml.in"},
	}
	kubednsLegacy = []templateFile{
		{dest: "kubedns-controller.yaml", src: "cluster/addons/dns/skydns-rc.yaml.in"},
		{dest: "kubedns-svc.yaml", src: "cluster/addons/dns/skydns-svc.yaml.in"},
	}
)

// dashboardTemplates are copied from the kubernetes/dashboard clone.
var dashboardTemplates = []templateFile{
	{dest: "kubernetes-dashboard.yaml", src: "src/deploy/recommended/kubernetes-dashboard.yaml"},
}

// pillarRef matches salt-era placeholder syntax still present in some
// upstream templates, e.g. {{ pillar['dns_server'] }}.
var pillarRef = regexp.MustCompile(`\{\{\s*pillar\[['"]([A-Za-z0-9_]+)['"]\]\s*\}\}`)

// Fetcher copies addon templates out of pinned upstream clones.
type Fetcher struct {
	cloner Cloner
	logger *slog.Logger
}

// NewFetcher returns a Fetcher using the given cloner.
func NewFetcher(cloner Cloner, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{cloner: cloner, logger: logger}
}

// Fetch populates destDir with the full template set. Version pins are
// read from KUBE_VERSION and KUBE_DASHBOARD_VERSION; both are required.
func (f *Fetcher) Fetch(ctx context.Context, destDir string) error {
	kubeVersion := os.Getenv(EnvKubeVersion)
	if kubeVersion == "" {
		return fmt.Errorf("%s must be set", EnvKubeVersion)
	}
	dashboardVersion := os.Getenv(EnvDashboardVersion)
	if dashboardVersion == "" {
		return fmt.Errorf("%s must be set", EnvDashboardVersion)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create template directory: %w", err)
	}

	if err := f.fetchKubernetes(ctx, kubeVersion, destDir); err != nil {
		return err
	}
	return f.fetchDashboard(ctx, dashboardVersion, destDir)
}

func (f *Fetcher) fetchKubernetes(ctx context.Context, version, destDir string) error {
	cloneDir, cleanup, err := f.clone(ctx, kubernetesRepo, version)
	if err != nil {
		return err
	}
	defer cleanup()

	for _, tmpl := range kubernetesTemplates {
		if err := f.copyTemplate(cloneDir, destDir, tmpl); err != nil {
			return err
		}
	}
	return f.copyKubedns(cloneDir, destDir)
}

func (f *Fetcher) fetchDashboard(ctx context.Context, version, destDir string) error {
	cloneDir, cleanup, err := f.clone(ctx, dashboardRepo, version)
	if err != nil {
		return err
	}
	defer cleanup()

	for _, tmpl := range dashboardTemplates {
		if err := f.copyTemplate(cloneDir, destDir, tmpl); err != nil {
			return err
		}
	}
	return nil
}

// clone checks out repo at ref into a temporary workspace and returns the
// workspace path plus a cleanup func. The caller must invoke cleanup on
// every exit path.
func (f *Fetcher) clone(ctx context.Context, repo, ref string) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "cdk-addons-clone-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create clone workspace: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	f.logger.Info("fetching upstream templates", slog.String("repo", repo), slog.String("ref", ref))
	if err := f.cloner.ShallowClone(ctx, repo, ref, tmpDir); err != nil {
		cleanup()
		return "", nil, err
	}
	return tmpDir, cleanup, nil
}

// copyKubedns copies the kubedns controller/service pair, falling back to
// the legacy skydns names when the current ones are absent. Only
// not-exist failures trigger the fallback; if the legacy pair is missing
// too, the legacy attempt's error surfaces.
func (f *Fetcher) copyKubedns(cloneDir, destDir string) error {
	err := f.copyAll(cloneDir, destDir, kubednsCurrent)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	f.logger.Info("current kubedns templates not found, trying legacy names")
	return f.copyAll(cloneDir, destDir, kubednsLegacy)
}

func (f *Fetcher) copyAll(cloneDir, destDir string, templates []templateFile) error {
	for _, tmpl := range templates {
		if err := f.copyTemplate(cloneDir, destDir, tmpl); err != nil {
			return err
		}
	}
	return nil
}

// copyTemplate copies one upstream file into the template directory,
// applying the content transforms on the way.
func (f *Fetcher) copyTemplate(cloneDir, destDir string, tmpl templateFile) error {
	data, err := os.ReadFile(filepath.Join(cloneDir, tmpl.src))
	if err != nil {
		if tmpl.optional && errors.Is(err, fs.ErrNotExist) {
			f.logger.Debug("skipping optional template", slog.String("src", tmpl.src))
			return nil
		}
		return fmt.Errorf("failed to read template %s: %w", tmpl.src, err)
	}

	dest := filepath.Join(destDir, tmpl.dest)
	if err := os.WriteFile(dest, []byte(transform(string(data))), 0o644); err != nil {
		return fmt.Errorf("failed to write template %s: %w", tmpl.dest, err)
	}
	f.logger.Debug("copied template", slog.String("src", tmpl.src), slog.String("dest", tmpl.dest))
	return nil
}

// transform rewrites upstream content for render-time substitution:
// architecture literals become the arch placeholder, and salt pillar
// references collapse to the flat placeholder grammar.
func transform(content string) string {
	content = strings.ReplaceAll(content, "amd64", "{{ arch }}")
	return pillarRef.ReplaceAllString(content, "{{ $1 }}")
}
