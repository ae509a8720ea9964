package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// OrderPreviewTotal counts draft recompute outcomes.
	OrderPreviewTotal *prometheus.CounterVec
	// SubmissionTotal counts submission attempts by outcome (ok, rejected, indeterminate).
	SubmissionTotal *prometheus.CounterVec
	// SubmissionRecordsTotal counts individual records appended to the sink.
	SubmissionRecordsTotal prometheus.Counter
	// SinkAppendFailures counts sink append errors surfaced as indeterminate submissions.
	SinkAppendFailures prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		OrderPreviewTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_preview_total",
			Help:      "Count of order preview recompute outcomes.",
		}, []string{"result"})
		SubmissionTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submission_total",
			Help:      "Count of order submission outcomes.",
		}, []string{"result"})
		SubmissionRecordsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submission_records_total",
			Help:      "Number of submission records appended to the sink.",
		})
		SinkAppendFailures = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sink_append_failures_total",
			Help:      "Number of sink append failures that produced an indeterminate submission.",
		})

		mustRegisterCollector(reg, OrderPreviewTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				OrderPreviewTotal = v
			}
		})
		mustRegisterCollector(reg, SubmissionTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				SubmissionTotal = v
			}
		})
		mustRegisterCollector(reg, SubmissionRecordsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				SubmissionRecordsTotal = v
			}
		})
		mustRegisterCollector(reg, SinkAppendFailures, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				SinkAppendFailures = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
