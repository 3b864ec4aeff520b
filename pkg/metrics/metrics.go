package metrics

import (
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/rs/zerolog/log"
)

// Client is the global metrics client for sending statsd compatible metrics.
// It stays nil, and every helper a no-op, until InitMetrics is called.
var Client *statsd.Client

// InitMetrics idempotently initializes a Client. An empty address leaves
// metrics disabled.
func InitMetrics(statsAddr string) {
	if Client != nil || statsAddr == "" {
		return
	}
	var err error
	Client, err = statsd.NewBuffered(statsAddr, 500)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot initialize metrics client")
	}
	Client.Namespace = "period."
}

// Time sends timing metrics when called.
// Ideally used with defer as Time("metricname", time.Now())
func Time(name string, start time.Time) {
	if Client == nil {
		return
	}
	_ = Client.Timing(name, time.Since(start), nil, 1)
}

// Incr increments the given metric name
func Incr(name string) {
	if Client == nil {
		return
	}
	_ = Client.Incr(name, nil, 1)
}

// Gauge sends a gauge metric
func Gauge(name string, val float64) {
	if Client == nil {
		return
	}
	_ = Client.Gauge(name, val, nil, 1)
}
