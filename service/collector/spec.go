package collector

import "github.com/prometheus/client_golang/prometheus"

// AzureAPIMetrics hands out metric vectors shared by all Azure API clients.
type AzureAPIMetrics interface {
	GetCounterVec(opts prometheus.Opts, labelNames []string) *prometheus.CounterVec
	GetHistogramVec(opts prometheus.Opts, labelNames []string) *prometheus.HistogramVec
}
