/*
Package metrics provides a metrics wrapper.

Metrics must be initialized at startup as early as possible:
  import "github.com/Bibendus83/period/pkg/metrics"
  ...
  metrics.InitMetrics(metricsCollectorAddr)

Until then every helper is a no-op, so library code can emit metrics
unconditionally.
*/
package metrics
