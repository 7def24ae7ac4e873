package client

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-arm-api/client/senddecorator"
	"github.com/giantswarm/azure-arm-api/pkg/backpressure"
)

const (
	defaultAzureGUID = "37f13270-5c7a-56ff-9211-8426baaeaabd"
)

// AzureClientSet is the collection of Azure API clients.
type AzureClientSet struct {
	// The subscription ID this client set is configured with.
	SubscriptionID string

	// DeploymentsClient manages deployments of ARM templates.
	DeploymentsClient *resources.DeploymentsClient
	// GroupsClient manages ARM resource groups.
	GroupsClient *resources.GroupsClient
	// ResourcesClient lists generic resources of the subscription.
	ResourcesClient *resources.Client
}

// NewAzureClientSet returns the Azure API clients using the configured
// Authorizer.
func NewAzureClientSet(config AzureClientSetConfig) (*AzureClientSet, error) {
	err := config.Validate()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	if config.Backpressure == nil {
		config.Backpressure = &backpressure.Backpressure{}
	}

	partnerID := config.PartnerID
	if partnerID == "" {
		partnerID = defaultAzureGUID
	}
	partnerID = fmt.Sprintf("pid-%s", partnerID)

	baseURI := config.Environment.ResourceManagerEndpoint

	deploymentsClient := resources.NewDeploymentsClientWithBaseURI(baseURI, config.SubscriptionID)
	prepareClient(&deploymentsClient.Client, config, "deployments", partnerID)

	groupsClient := resources.NewGroupsClientWithBaseURI(baseURI, config.SubscriptionID)
	prepareClient(&groupsClient.Client, config, "groups", partnerID)

	resourcesClient := resources.NewClientWithBaseURI(baseURI, config.SubscriptionID)
	prepareClient(&resourcesClient.Client, config, "resources", partnerID)

	clientSet := &AzureClientSet{
		SubscriptionID: config.SubscriptionID,

		DeploymentsClient: &deploymentsClient,
		GroupsClient:      &groupsClient,
		ResourcesClient:   &resourcesClient,
	}

	return clientSet, nil
}

func prepareClient(client *autorest.Client, config AzureClientSetConfig, name, partnerID string) *autorest.Client {
	client.Authorizer = config.Authorizer
	_ = client.AddToUserAgent(partnerID)
	senddecorator.ConfigureClient(config.Backpressure, client)

	if config.Metrics != nil {
		client.SendDecorators = append(client.SendDecorators, senddecorator.MetricsDecorator(name, config.SubscriptionID, config.Metrics))
	}

	return client
}
