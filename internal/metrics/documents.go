package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "document",
			Name:      "generated_total",
			Help:      "PDF 生成次数，按结果区分。",
		},
		[]string{"result"},
	)

	documentRenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "document",
			Name:      "render_duration_seconds",
			Help:      "HTML 转 PDF 的耗时分布（秒）。",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	exportsEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "enqueued_total",
			Help:      "异步导出请求数，按结果区分（accepted / throttled / failed）。",
		},
		[]string{"result"},
	)
)

// ObserveDocument records one generateDocument call.
func ObserveDocument(renderTime time.Duration, err error) {
	if err != nil {
		documentsGenerated.WithLabelValues("error").Inc()
		return
	}
	documentsGenerated.WithLabelValues("ok").Inc()
	documentRenderDuration.Observe(renderTime.Seconds())
}

// ObserveExportEnqueue records the outcome of an export request.
func ObserveExportEnqueue(result string) {
	exportsEnqueued.WithLabelValues(result).Inc()
}
