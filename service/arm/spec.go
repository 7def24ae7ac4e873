package arm

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest"
)

//go:generate mockgen -destination ../../pkg/mock/mock_arm/api.go -source spec.go API

// API is the part of the Azure Resource Manager API the facade works with.
type API interface {
	// ListGroups returns the first page of resource groups matching the
	// OData filter. An empty filter lists all groups.
	ListGroups(ctx context.Context, filter string) (resources.GroupListResultPage, error)
	// CheckGroupExistence returns the raw response of the existence check.
	// Existing groups answer with 204, missing ones with 404.
	CheckGroupExistence(ctx context.Context, name string) (autorest.Response, error)
	// CreateOrUpdateGroup creates or replaces the named resource group.
	CreateOrUpdateGroup(ctx context.Context, name string, group resources.Group) (resources.Group, error)
	// DeleteGroup starts the deletion of the named resource group without
	// waiting for it to finish.
	DeleteGroup(ctx context.Context, name string) error
	// ListResources returns the first page of resources matching the OData
	// filter.
	ListResources(ctx context.Context, filter string) (resources.ListResultPage, error)
	// CreateOrUpdateDeployment submits the deployment and returns the
	// deployment as accepted by the API.
	CreateOrUpdateDeployment(ctx context.Context, resourceGroupName, deploymentName string, deployment resources.Deployment) (resources.DeploymentExtended, error)
}

// Existence is the outcome of a resource group existence check.
type Existence int

const (
	// ExistenceUnknown is returned when the API answered neither 204 nor 404.
	ExistenceUnknown Existence = iota
	Exists
	NotExists
)

func (e Existence) String() string {
	switch e {
	case Exists:
		return "Exists"
	case NotExists:
		return "NotExists"
	default:
		return "Unknown"
	}
}
