package collector

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/giantswarm/azure-arm-api/pkg/odata"
)

const (
	statusCanceled  = "Canceled"
	statusDeploying = "Deploying"
	statusFailed    = "Failed"
	statusRunning   = "Running"
	statusSucceeded = "Succeeded"
	statusUpdating  = "Updating"
)

var (
	deploymentStatuses = []string{
		statusCanceled,
		statusDeploying,
		statusFailed,
		statusRunning,
		statusSucceeded,
		statusUpdating,
	}

	deploymentDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "deployment", "status"),
		"Provisioning state of deployments in resource groups created for deployments.",
		[]string{
			"resource_group",
			"deployment_name",
			"status",
		},
		nil,
	)
)

// DeploymentLister is implemented by *resources.DeploymentsClient.
type DeploymentLister interface {
	ListByResourceGroupComplete(ctx context.Context, resourceGroupName string, filter string, top *int32) (resources.DeploymentListResultIterator, error)
}

type DeploymentConfig struct {
	DeploymentsClient DeploymentLister
	GroupsClient      GroupLister
	Logger            micrologger.Logger

	// TagName selects the resource groups whose deployments are collected.
	TagName string
}

// Deployment exposes the provisioning state of the deployments in all
// resource groups carrying the configured tag.
type Deployment struct {
	deploymentsClient DeploymentLister
	groupsClient      GroupLister
	logger            micrologger.Logger

	tagName string
}

func NewDeployment(config DeploymentConfig) (*Deployment, error) {
	if config.DeploymentsClient == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.DeploymentsClient must not be empty", config)
	}
	if config.GroupsClient == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.GroupsClient must not be empty", config)
	}
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}

	if config.TagName == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.TagName must not be empty", config)
	}

	d := &Deployment{
		deploymentsClient: config.DeploymentsClient,
		groupsClient:      config.GroupsClient,
		logger:            config.Logger,

		tagName: config.TagName,
	}

	return d, nil
}

func (d *Deployment) Collect(ch chan<- prometheus.Metric) error {
	ctx := context.Background()

	groups, err := d.groupsClient.ListComplete(ctx, odata.Eq("tagname", d.tagName), nil)
	if err != nil {
		return microerror.Mask(err)
	}

	var g errgroup.Group

	for groups.NotDone() {
		resourceGroupName := to.String(groups.Value().Name)

		g.Go(func() error {
			err := d.collectForResourceGroup(ctx, ch, resourceGroupName)
			if err != nil {
				return microerror.Mask(err)
			}

			return nil
		})

		if err := groups.NextWithContext(ctx); err != nil {
			_ = g.Wait()
			return microerror.Mask(err)
		}
	}

	if err := g.Wait(); err != nil {
		return microerror.Mask(err)
	}

	return nil
}

func (d *Deployment) collectForResourceGroup(ctx context.Context, ch chan<- prometheus.Metric, resourceGroupName string) error {
	r, err := d.deploymentsClient.ListByResourceGroupComplete(ctx, resourceGroupName, "", nil)
	if err != nil {
		return microerror.Mask(err)
	}

	for r.NotDone() {
		v := r.Value()

		var state string
		if v.Properties != nil {
			state = to.String(v.Properties.ProvisioningState)
		}

		for _, s := range deploymentStatuses {
			ch <- prometheus.MustNewConstMetric(
				deploymentDesc,
				prometheus.GaugeValue,
				float64(matchedStringToInt(s, state)),
				resourceGroupName,
				to.String(v.Name),
				s,
			)
		}

		if err := r.NextWithContext(ctx); err != nil {
			return microerror.Mask(err)
		}
	}

	return nil
}

func (d *Deployment) Describe(ch chan<- *prometheus.Desc) error {
	ch <- deploymentDesc
	return nil
}

func matchedStringToInt(a, b string) int {
	if a == b {
		return 1
	}

	return 0
}
