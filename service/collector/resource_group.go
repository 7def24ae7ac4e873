package collector

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelID             = "id"
	labelName           = "name"
	labelState          = "state"
	labelLocation       = "location"
	labelManagedBy      = "managed_by"
	labelSubscriptionID = "subscription_id"
)

var (
	resourceGroupDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "resource_group", "info"),
		"Resource group information.",
		[]string{
			labelID,
			labelName,
			labelState,
			labelLocation,
			labelManagedBy,
			labelSubscriptionID,
		},
		nil,
	)

	gaugeValue float64 = 1
)

// GroupLister is implemented by *resources.GroupsClient.
type GroupLister interface {
	ListComplete(ctx context.Context, filter string, top *int32) (resources.GroupListResultIterator, error)
}

type ResourceGroupConfig struct {
	GroupsClient GroupLister
	Logger       micrologger.Logger

	SubscriptionID string
}

type ResourceGroup struct {
	groupsClient GroupLister
	logger       micrologger.Logger

	subscriptionID string
}

func NewResourceGroup(config ResourceGroupConfig) (*ResourceGroup, error) {
	if config.GroupsClient == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.GroupsClient must not be empty", config)
	}
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}

	if config.SubscriptionID == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.SubscriptionID must not be empty", config)
	}

	r := &ResourceGroup{
		groupsClient: config.GroupsClient,
		logger:       config.Logger,

		subscriptionID: config.SubscriptionID,
	}

	return r, nil
}

func (r *ResourceGroup) Collect(ch chan<- prometheus.Metric) error {
	ctx := context.Background()

	resultsPage, err := r.groupsClient.ListComplete(ctx, "", nil)
	if err != nil {
		return microerror.Mask(err)
	}

	for resultsPage.NotDone() {
		group := resultsPage.Value()
		ch <- prometheus.MustNewConstMetric(
			resourceGroupDesc,
			prometheus.GaugeValue,
			gaugeValue,
			to.String(group.ID),
			to.String(group.Name),
			getState(group),
			to.String(group.Location),
			to.String(group.ManagedBy),
			r.subscriptionID,
		)

		if err := resultsPage.NextWithContext(ctx); err != nil {
			return microerror.Mask(err)
		}
	}

	return nil
}

func (r *ResourceGroup) Describe(ch chan<- *prometheus.Desc) error {
	ch <- resourceGroupDesc

	return nil
}

func getState(group resources.Group) string {
	if group.Properties != nil {
		return to.String(group.Properties.ProvisioningState)
	}

	return ""
}
