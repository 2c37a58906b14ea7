package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "postmask"

// Encode and decode kinds.
const (
	KindChecksum = "checksum"
	KindKey      = "key"
	KindPayload  = "payload"
)

// Decode results.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	EncodeTotal  *prometheus.CounterVec
	DecodeTotal  *prometheus.CounterVec
	ScanBytes    prometheus.Counter
	ScanDuration prometheus.Histogram
}

// NewRegistry creates a registry with all postmask metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		EncodeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "encode_total",
			Help:      "Values encoded, by kind",
		}, []string{"kind"}),
		DecodeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_total",
			Help:      "Decode attempts, by kind and result",
		}, []string{"kind", "result"}),
		ScanBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "bytes_total",
			Help:      "Post text bytes scanned",
		}),
		ScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "duration_seconds",
			Help:      "Time spent scanning one post",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}

	r.reg.MustRegister(
		r.EncodeTotal,
		r.DecodeTotal,
		r.ScanBytes,
		r.ScanDuration,
		NewCollector(),
	)
	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// ObserveEncode counts one encode of the given kind.
func (r *Registry) ObserveEncode(kind string) {
	r.EncodeTotal.WithLabelValues(kind).Inc()
}

// ObserveDecode counts one decode attempt.
func (r *Registry) ObserveDecode(kind string, ok bool) {
	result := ResultMiss
	if ok {
		result = ResultHit
	}
	r.DecodeTotal.WithLabelValues(kind, result).Inc()
}

// ObserveScan records the size and duration of one post scan.
func (r *Registry) ObserveScan(size int, elapsed time.Duration) {
	r.ScanBytes.Add(float64(size))
	r.ScanDuration.Observe(elapsed.Seconds())
}

// WriteTextfile writes all metrics to path in text exposition format.
// The file is written atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
