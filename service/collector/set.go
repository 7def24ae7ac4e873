package collector

import (
	"github.com/giantswarm/exporterkit/collector"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
)

const namespace = "azure_arm_api"

type SetConfig struct {
	AzureAPIMetrics   *AzureAPIMetricsCollector
	DeploymentsClient DeploymentLister
	GroupsClient      GroupLister
	Logger            micrologger.Logger
	Token             Token

	ClientID          string
	DeploymentTagName string
	SubscriptionID    string
}

// Set is basically only a wrapper for the service's collector implementations.
// It eases the initialization and prevents some weird import mess so we do not
// have to alias packages.
type Set struct {
	*collector.Set
}

func NewSet(config SetConfig) (*Set, error) {
	var err error

	if config.AzureAPIMetrics == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.AzureAPIMetrics must not be empty", config)
	}

	var deploymentCollector *Deployment
	{
		c := DeploymentConfig{
			DeploymentsClient: config.DeploymentsClient,
			GroupsClient:      config.GroupsClient,
			Logger:            config.Logger,

			TagName: config.DeploymentTagName,
		}

		deploymentCollector, err = NewDeployment(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var resourceGroupCollector *ResourceGroup
	{
		c := ResourceGroupConfig{
			GroupsClient: config.GroupsClient,
			Logger:       config.Logger,

			SubscriptionID: config.SubscriptionID,
		}

		resourceGroupCollector, err = NewResourceGroup(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var tokenExpirationCollector *TokenExpiration
	{
		c := TokenExpirationConfig{
			Logger: config.Logger,
			Token:  config.Token,

			ClientID:       config.ClientID,
			SubscriptionID: config.SubscriptionID,
		}

		tokenExpirationCollector, err = NewTokenExpiration(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var collectorSet *collector.Set
	{
		c := collector.SetConfig{
			Collectors: []collector.Interface{
				config.AzureAPIMetrics,
				deploymentCollector,
				resourceGroupCollector,
				tokenExpirationCollector,
			},
			Logger: config.Logger,
		}

		collectorSet, err = collector.NewSet(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	s := &Set{
		Set: collectorSet,
	}

	return s, nil
}
