package arm

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-arm-api/client"
)

type api struct {
	clientSet *client.AzureClientSet
}

// NewAPI returns the API backed by the given Azure clients.
func NewAPI(clientSet *client.AzureClientSet) API {
	return &api{
		clientSet: clientSet,
	}
}

func (a *api) ListGroups(ctx context.Context, filter string) (resources.GroupListResultPage, error) {
	page, err := a.clientSet.GroupsClient.List(ctx, filter, nil)
	if err != nil {
		return resources.GroupListResultPage{}, microerror.Mask(err)
	}

	return page, nil
}

func (a *api) CheckGroupExistence(ctx context.Context, name string) (autorest.Response, error) {
	res, err := a.clientSet.GroupsClient.CheckExistence(ctx, name)
	if err != nil {
		return res, microerror.Mask(err)
	}

	return res, nil
}

func (a *api) CreateOrUpdateGroup(ctx context.Context, name string, group resources.Group) (resources.Group, error) {
	g, err := a.clientSet.GroupsClient.CreateOrUpdate(ctx, name, group)
	if err != nil {
		return resources.Group{}, microerror.Mask(err)
	}

	return g, nil
}

func (a *api) DeleteGroup(ctx context.Context, name string) error {
	_, err := a.clientSet.GroupsClient.Delete(ctx, name)
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}

func (a *api) ListResources(ctx context.Context, filter string) (resources.ListResultPage, error) {
	page, err := a.clientSet.ResourcesClient.List(ctx, filter, "", nil)
	if err != nil {
		return resources.ListResultPage{}, microerror.Mask(err)
	}

	return page, nil
}

func (a *api) CreateOrUpdateDeployment(ctx context.Context, resourceGroupName, deploymentName string, deployment resources.Deployment) (resources.DeploymentExtended, error) {
	res, err := a.clientSet.DeploymentsClient.CreateOrUpdate(ctx, resourceGroupName, deploymentName, deployment)
	if err != nil {
		return resources.DeploymentExtended{}, microerror.Mask(err)
	}

	deploymentExtended, err := a.clientSet.DeploymentsClient.CreateOrUpdateResponder(res.Response())
	if err != nil {
		return resources.DeploymentExtended{}, microerror.Mask(err)
	}

	return deploymentExtended, nil
}
