package addons

// addonTemplate names one shipped template and its render disposition.
type addonTemplate struct {
	name string

	// optional templates may be absent from the shipped set (upstream
	// releases gained or lost them); missing required templates abort the
	// run.
	optional bool

	// dashboard templates render only when the enable-dashboard flag is on.
	dashboard bool
}

// addonTemplates is the fixed render list. Order matches the fetch table;
// it has no behavioral significance beyond stable output.
var addonTemplates = []addonTemplate{
	{name: "kubedns-sa.yaml", optional: true},
	{name: "kubedns-cm.yaml", optional: true},
	{name: "kubedns-controller.yaml"},
	{name: "kubedns-svc.yaml"},
	{name: "kubernetes-dashboard.yaml", dashboard: true},
	{name: "grafana-service.yaml", dashboard: true},
	{name: "heapster-controller.yaml", dashboard: true},
	{name: "heapster-service.yaml", dashboard: true},
	{name: "influxdb-grafana-controller.yaml", dashboard: true},
	{name: "influxdb-service.yaml", dashboard: true},
}

// dnsServiceFile is applied on its own before the recursive apply so the
// cluster DNS service exists when dependent objects reconcile.
const dnsServiceFile = "kubedns-svc.yaml"
