// Package telemetry exposes growth-run counters and final graph metrics as
// Prometheus metrics in a private registry.
//
// A Collector observes every growth step (growth.Observer) and can absorb a
// metrics.Report. The batch CLI dumps the registry with WriteTextfile in the
// node_exporter textfile format; Gather serves tests and embedders.
package telemetry
