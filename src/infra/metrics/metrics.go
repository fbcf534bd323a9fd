package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RunMetrics are the collectors of one generation run. They live in their
// own registry so a run can be dumped to a node-exporter textfile.
type RunMetrics struct {
	Registry *prometheus.Registry

	RecordsGenerated *prometheus.CounterVec
	ArtifactsWritten *prometheus.CounterVec
	ArtifactFailures *prometheus.CounterVec
	EncodeDuration   *prometheus.HistogramVec
	ArtifactBytes    *prometheus.GaugeVec
}

func NewRunMetrics(prefix string) *RunMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &RunMetrics{
		Registry: reg,

		RecordsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_records_generated_total",
			Help: "Total number of generated records",
		}, []string{"entity"}),

		ArtifactsWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_artifacts_written_total",
			Help: "Total number of artifacts written to the output directory",
		}, []string{"format"}),

		ArtifactFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_artifact_failures_total",
			Help: "Total number of failed artifacts by stage",
		}, []string{"format", "stage"}),

		EncodeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_encode_duration_seconds",
			Help:    "Time spent encoding one collection",
			Buckets: prometheus.DefBuckets,
		}, []string{"format"}),

		ArtifactBytes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "_artifact_bytes",
			Help: "Size of the last written artifact",
		}, []string{"entity", "format"}),
	}
}

// WriteTextfile dumps the run collectors in the text exposition format.
func (m *RunMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

// ServerMetrics instrument the static artifact server.
type ServerMetrics struct {
	Registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func NewServerMetrics(prefix string) *ServerMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &ServerMetrics{
		Registry: reg,

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}
