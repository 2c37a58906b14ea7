// Package metric provides Prometheus metrics for postmask.
//
//   - prometheus.go: the registry and codec counters
//   - collector.go: build information collector
//
// Metrics include:
//
//   - Encode counts by kind (checksum, key, payload)
//   - Decode counts by kind and result (hit, miss)
//   - Scanned bytes and scan latency
//
// The CLI does not serve HTTP. Metrics are written in node_exporter
// textfile format, so a node_exporter textfile collector can pick them up.
package metric
