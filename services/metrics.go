package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsRouted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "healthgennie_commands_routed_total",
		Help: "Commands resolved by the router, by intent.",
	}, []string{"intent"})

	metricLogsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "healthgennie_metric_logs_total",
		Help: "Metric log entries written, by kind.",
	}, []string{"kind"})

	wellnessFetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthgennie_wellness_fetch_errors_total",
		Help: "Failed calls to the external wellness content API.",
	})
)
