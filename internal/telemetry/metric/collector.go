package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/postmask-go/internal/infra/buildinfo"
)

// Collector reports build information as a constant gauge.
type Collector struct {
	info *prometheus.Desc
}

// NewCollector creates a build information collector.
func NewCollector() *Collector {
	return &Collector{
		info: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "build_info"),
			"Build information, value is always 1",
			[]string{"version", "commit", "go_version"},
			nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.info
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	bi := buildinfo.Get()
	ch <- prometheus.MustNewConstMetric(c.info, prometheus.GaugeValue, 1, bi.Version, bi.Commit, bi.GoVersion)
}
