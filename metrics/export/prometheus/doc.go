// Package prometheus provides Prometheus collectors for nexAuth metrics.
//
// [NewPrometheusExporter] accepts an [nexAuth.Engine] and exposes an [http.Handler]
// that renders all nexAuth counters and histograms in Prometheus text exposition format.
// Counter names are prefixed nexauth_*_total; the single histogram is
// nexauth_verify_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
