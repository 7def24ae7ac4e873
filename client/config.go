package client

import (
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-arm-api/pkg/backpressure"
	"github.com/giantswarm/azure-arm-api/service/collector"
)

type AzureClientSetConfig struct {
	// Authorizer signs every ARM request, usually with the bearer token of the
	// service principal.
	Authorizer autorest.Authorizer
	// Backpressure is shared by all clients of the set so a throttled call
	// holds off the others too. A new one is created when nil.
	Backpressure *backpressure.Backpressure
	// Environment is the Azure cloud the clients talk to. Only its resource
	// manager endpoint is used here.
	Environment azure.Environment
	// Metrics collects per client call metrics. Optional.
	Metrics collector.AzureAPIMetrics
	// PartnerID is the ID used for the Azure Partner Program.
	PartnerID string
	// SubscriptionID is the ID of the Azure subscription.
	SubscriptionID string
}

func (c AzureClientSetConfig) Validate() error {
	if c.Authorizer == nil {
		return microerror.Maskf(invalidConfigError, "%T.Authorizer must not be empty", c)
	}
	if c.Environment.ResourceManagerEndpoint == "" {
		return microerror.Maskf(invalidConfigError, "%T.Environment.ResourceManagerEndpoint must not be empty", c)
	}
	if c.SubscriptionID == "" {
		return microerror.Maskf(invalidConfigError, "%T.SubscriptionID must not be empty", c)
	}

	return nil
}
