package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

// writeLintMetrics writes the lint counters of result to path in the
// Prometheus text exposition format, for node_exporter's textfile
// collector.
func writeLintMetrics(path string, result *lintResult) error {
	reg := prometheus.NewRegistry()

	documents := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gosbml",
		Subsystem: "lint",
		Name:      "documents",
		Help:      "Number of documents checked.",
	})
	failed := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gosbml",
		Subsystem: "lint",
		Name:      "failed_checks",
		Help:      "Number of consistency checks that failed at error or fatal severity.",
	})
	messages := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "gosbml",
		Subsystem: "lint",
		Name:      "messages",
		Help:      "Number of logged messages by severity and code.",
	}, []string{"severity", "code"})
	reg.MustRegister(documents, failed, messages)

	documents.Set(float64(result.Summary.Documents))
	failed.Set(float64(result.Summary.FailedChecks))
	for _, m := range result.Messages {
		messages.WithLabelValues(m.Severity, m.Code).Inc()
	}
	return prometheus.WriteToTextfile(path, reg)
}
