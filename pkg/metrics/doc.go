// Package metrics holds the gauge vectors exported for the machine
// inventory.
//
// A GaugeSink owns its own prometheus.Registry so that the inventory series
// can be served next to, but independently from, the process metrics of
// the default registry:
//
//	sink := metrics.NewGaugeSink()
//	_ = sink.EnsureGauge("juju_machine_state", "Running status of juju machines", labels.Names())
//	_ = sink.Set("juju_machine_state", ls, 1)
//	sink.Remove("juju_machine_state", stale)
//
// Series are keyed by hostname. Setting a hostname under a new label tuple
// deletes the series exported under the previous tuple.
package metrics
