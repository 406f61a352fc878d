package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Registry holds every surveykit metric.
var Registry = prometheus.NewRegistry()

var (
	// Export metrics
	exportTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "surveykit",
			Name:      "export_total",
			Help:      "Total number of survey exports by result",
		},
		[]string{"result"},
	)

	exportDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "surveykit",
			Name:      "export_duration_seconds",
			Help:      "Duration of archive generation in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8), // 1ms to ~16s
		},
	)

	exportArchiveBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "surveykit",
			Name:      "export_archive_bytes",
			Help:      "Size of generated archives in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8), // 1KiB to 16MiB
		},
	)

	exportImagesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "surveykit",
			Name:      "export_images_total",
			Help:      "Total number of images written into archives",
		},
	)

	// Upload metrics
	uploadTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "surveykit",
			Name:      "upload_total",
			Help:      "Total number of archive uploads by result",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		exportTotal,
		exportDuration,
		exportArchiveBytes,
		exportImagesTotal,
		uploadTotal,
	)
}

// RecordExport records a finished export. Size and image count are only
// observed for successful exports.
func RecordExport(result string, seconds float64, size int64, images int) {
	exportTotal.WithLabelValues(result).Inc()
	exportDuration.Observe(seconds)
	if result == ResultSuccess {
		exportArchiveBytes.Observe(float64(size))
		exportImagesTotal.Add(float64(images))
	}
}

// RecordUpload records a finished upload.
func RecordUpload(result string) {
	uploadTotal.WithLabelValues(result).Inc()
}

// Result maps an error to a result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
