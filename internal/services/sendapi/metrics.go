package sendapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSent   = "sent"
	statusFailed = "failed"
)

var deliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ecobot_send_api_deliveries_total",
	Help: "Total Send API deliveries by outcome",
}, []string{"status"})

var deliveryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "ecobot_send_api_delivery_seconds",
	Help:    "Latency of Send API deliveries",
	Buckets: prometheus.DefBuckets,
})
