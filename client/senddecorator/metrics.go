package senddecorator

import (
	"net/http"
	"strings"
	"time"

	"github.com/Azure/go-autorest/autorest"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/giantswarm/azure-arm-api/service/collector"
)

const metricsNamespace = "azure_arm_api_azure_api"

var (
	totalCallsOpts       = prometheus.Opts{Namespace: metricsNamespace, Name: "total_calls", Help: "Total number of API calls"}
	ratelimitedCallsOpts = prometheus.Opts{Namespace: metricsNamespace, Name: "ratelimited_calls", Help: "Total number of API calls ratelimited"}
	errorRespOpts        = prometheus.Opts{Namespace: metricsNamespace, Name: "error_resp", Help: "Total number of API error responses"}
	callLatencyOpts      = prometheus.Opts{Namespace: metricsNamespace, Name: "req_latency", Help: "API request latency"}

	labelNames = []string{"api_service", "subscription_id"}
)

// MetricsDecorator counts calls, error responses and throttled responses of
// the named client and observes their latency.
func MetricsDecorator(name, subscriptionID string, metricsCollector collector.AzureAPIMetrics) autorest.SendDecorator {
	labels := prometheus.Labels{
		"api_service":     strings.ToLower(name),
		"subscription_id": subscriptionID,
	}

	return func(s autorest.Sender) autorest.Sender {
		return autorest.SenderFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()

			// Pass the request to next SendDecorator.
			resp, err := s.Do(r)

			elapsed := time.Since(start)

			metricsCollector.GetCounterVec(totalCallsOpts, labelNames).With(labels).Inc()
			metricsCollector.GetHistogramVec(callLatencyOpts, labelNames).With(labels).Observe(elapsed.Seconds())

			if resp != nil && resp.StatusCode >= 400 {
				metricsCollector.GetCounterVec(errorRespOpts, labelNames).With(labels).Inc()

				if resp.StatusCode == http.StatusTooManyRequests {
					metricsCollector.GetCounterVec(ratelimitedCallsOpts, labelNames).With(labels).Inc()
				}
			}

			return resp, err
		})
	}
}
