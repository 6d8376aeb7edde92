// Package metrics exposes Prometheus metrics for the alchemy server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// gRPC Metrics
var (
	GRPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGRPCRequestsTotal,
			Help: HelpTextGRPCRequestsTotal,
		},
		[]string{LabelMethod, LabelCode},
	)

	GRPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameGRPCRequestDuration,
			Help:    HelpTextGRPCRequestDuration,
			Buckets: GRPCLatencyBuckets,
		},
		[]string{LabelMethod},
	)

	GRPCRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameGRPCRequestsInFlight,
			Help: HelpTextGRPCRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	DiscountTotal = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDiscountTotal,
			Help:    HelpTextDiscountTotal,
			Buckets: DiscountBuckets,
		},
	)

	EffectsEvaluated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEffectsEvaluated,
			Help: HelpTextEffectsEvaluated,
		},
		[]string{LabelCurve},
	)
)
