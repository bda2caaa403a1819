package observability

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	exchanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ledgerctl",
			Subsystem: "simulator",
			Name:      "exchanges_total",
			Help:      "Total command exchanges answered by the simulator.",
		},
		[]string{"status"},
	)
	exchangeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ledgerctl",
			Subsystem: "simulator",
			Name:      "exchange_duration_seconds",
			Help:      "Command exchange handling duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(exchanges, exchangeDuration)
	})
}

// RecordExchange counts one answered exchange, labeled by the status word
// returned to the client.
func RecordExchange(status uint16, duration time.Duration) {
	RegisterMetrics()
	label := fmt.Sprintf("0x%04X", status)
	exchanges.WithLabelValues(label).Inc()
	exchangeDuration.WithLabelValues(label).Observe(duration.Seconds())
}
