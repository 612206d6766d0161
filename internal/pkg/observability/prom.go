package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "nicodash"
)

var (
	SelectionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "selection", "total"),
		Help: "Number of metric snapshots selected, by the series direction they were read from",
	}, []string{"direction"})
	DashboardRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "dashboard", "renders_total"),
		Help: "Number of dashboard frames rendered, by trigger",
	}, []string{"trigger"})
	ChartRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "chart", "render_duration_seconds"),
		Help:    "Duration of server-side chart rasterisation in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"chart", "format"})
)
