package client

import (
	"strings"
	"testing"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/giantswarm/micrologger/microloggertest"

	"github.com/giantswarm/azure-arm-api/service/collector"
)

func Test_NewAzureClientSet(t *testing.T) {
	metrics, err := collector.NewAzureAPIMetricsCollector(collector.AzureAPIMetricsConfig{Logger: microloggertest.New()})
	if err != nil {
		t.Fatal(err)
	}

	config := AzureClientSetConfig{
		Authorizer:     autorest.NullAuthorizer{},
		Environment:    azure.Environment{ResourceManagerEndpoint: "https://management.example.com/"},
		Metrics:        metrics,
		SubscriptionID: "sub",
	}

	clientSet, err := NewAzureClientSet(config)
	if err != nil {
		t.Fatal(err)
	}

	if clientSet.SubscriptionID != "sub" {
		t.Fatalf("expected subscription %#q got %#q", "sub", clientSet.SubscriptionID)
	}

	clients := map[string]autorest.Client{
		"deployments": clientSet.DeploymentsClient.Client,
		"groups":      clientSet.GroupsClient.Client,
		"resources":   clientSet.ResourcesClient.Client,
	}
	for name, c := range clients {
		if !strings.Contains(c.UserAgent, "pid-"+defaultAzureGUID) {
			t.Fatalf("%s: expected default partner id in user agent %#q", name, c.UserAgent)
		}
		// Circuit breaker and metrics.
		if len(c.SendDecorators) != 2 {
			t.Fatalf("%s: expected 2 send decorators got %d", name, len(c.SendDecorators))
		}
	}

	if clientSet.GroupsClient.BaseURI != "https://management.example.com/" {
		t.Fatalf("expected base URI from environment got %#q", clientSet.GroupsClient.BaseURI)
	}
}

func Test_NewAzureClientSet_PartnerID(t *testing.T) {
	config := AzureClientSetConfig{
		Authorizer:     autorest.NullAuthorizer{},
		Environment:    azure.PublicCloud,
		PartnerID:      "partner",
		SubscriptionID: "sub",
	}

	clientSet, err := NewAzureClientSet(config)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(clientSet.DeploymentsClient.UserAgent, "pid-partner") {
		t.Fatalf("expected partner id in user agent %#q", clientSet.DeploymentsClient.UserAgent)
	}
	if len(clientSet.DeploymentsClient.SendDecorators) != 1 {
		t.Fatalf("expected only the circuit breaker without metrics got %d decorators", len(clientSet.DeploymentsClient.SendDecorators))
	}
}

func Test_AzureClientSetConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		config AzureClientSetConfig
	}{
		{
			name: "case 0: missing authorizer",
			config: AzureClientSetConfig{
				Environment:    azure.PublicCloud,
				SubscriptionID: "sub",
			},
		},
		{
			name: "case 1: missing environment",
			config: AzureClientSetConfig{
				Authorizer:     autorest.NullAuthorizer{},
				SubscriptionID: "sub",
			},
		},
		{
			name: "case 2: missing subscription",
			config: AzureClientSetConfig{
				Authorizer:  autorest.NullAuthorizer{},
				Environment: azure.PublicCloud,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAzureClientSet(tc.config)
			if !IsInvalidConfig(err) {
				t.Fatalf("expected invalid config error got %#v", err)
			}
		})
	}
}
