package endpoint

import (
	versionendpoint "github.com/giantswarm/microendpoint/endpoint/version"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	microserver "github.com/giantswarm/microkit/server"

	"github.com/giantswarm/azure-arm-api/server/endpoint/deployment"
	"github.com/giantswarm/azure-arm-api/server/endpoint/healthz"
	"github.com/giantswarm/azure-arm-api/server/endpoint/resource"
	"github.com/giantswarm/azure-arm-api/server/endpoint/resourcegroup"
	"github.com/giantswarm/azure-arm-api/service"
)

// Config represents the configuration used to create a endpoint.
type Config struct {
	Logger  micrologger.Logger
	Service *service.Service
}

// Endpoint is the endpoint collection.
type Endpoint struct {
	Healthz *healthz.Endpoint
	Version *versionendpoint.Endpoint

	ListResourceGroups         *resourcegroup.ListEndpoint
	ListResourceGroupsByTag    *resourcegroup.ListByTagEndpoint
	CreateResourceGroup        *resourcegroup.CreateEndpoint
	CreateResourceGroupWithTag *resourcegroup.CreateWithTagEndpoint
	DeleteResourceGroup        *resourcegroup.DeleteEndpoint

	ListWebApps         *resource.Endpoint
	ListVirtualMachines *resource.Endpoint

	DeployFromLinks         *deployment.Endpoint
	DeployFromEmbeddedFiles *deployment.Endpoint
	DeployFromTemplateLink  *deployment.Endpoint
}

// New creates a new configured endpoint collection.
func New(config Config) (*Endpoint, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Service == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Service must not be empty", config)
	}

	var err error
	e := &Endpoint{}

	{
		c := healthz.Config{
			Logger:  config.Logger,
			Service: config.Service.Healthz,
		}

		e.Healthz, err = healthz.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	{
		c := versionendpoint.Config{
			Logger:  config.Logger,
			Service: config.Service.Version,
		}

		e.Version, err = versionendpoint.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	{
		c := resourcegroup.Config{
			Logger:  config.Logger,
			Service: config.Service.ARM,
		}

		e.ListResourceGroups, err = resourcegroup.NewList(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
		e.ListResourceGroupsByTag, err = resourcegroup.NewListByTag(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
		e.CreateResourceGroup, err = resourcegroup.NewCreate(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
		e.CreateResourceGroupWithTag, err = resourcegroup.NewCreateWithTag(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
		e.DeleteResourceGroup, err = resourcegroup.NewDelete(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	{
		c := resource.Config{
			Logger:  config.Logger,
			Service: config.Service.ARM,
		}

		e.ListWebApps, err = resource.NewListWebApps(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
		e.ListVirtualMachines, err = resource.NewListVirtualMachines(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	{
		c := deployment.Config{
			Logger:  config.Logger,
			Service: config.Service.ARM,
		}

		e.DeployFromLinks, err = deployment.NewFromLinks(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
		e.DeployFromEmbeddedFiles, err = deployment.NewFromEmbeddedFiles(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
		e.DeployFromTemplateLink, err = deployment.NewFromTemplateLink(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	return e, nil
}

// All returns every endpoint in the order they are registered with the
// router.
func (e *Endpoint) All() []microserver.Endpoint {
	return []microserver.Endpoint{
		e.Healthz,
		e.Version,

		e.ListResourceGroups,
		e.ListResourceGroupsByTag,
		e.CreateResourceGroup,
		e.CreateResourceGroupWithTag,
		e.DeleteResourceGroup,

		e.ListWebApps,
		e.ListVirtualMachines,

		e.DeployFromLinks,
		e.DeployFromEmbeddedFiles,
		e.DeployFromTemplateLink,
	}
}
