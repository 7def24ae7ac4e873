// Package resource implements the endpoints listing resources by type.
package resource

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	kitendpoint "github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/giantswarm/azure-arm-api/server/endpoint/respond"
	"github.com/giantswarm/azure-arm-api/service/arm"
)

const (
	ListWebAppsMethod = "GET"
	ListWebAppsName   = "resource/listwebapps"
	ListWebAppsPath   = "/api/arm/resources/type/webapp"

	ListVirtualMachinesMethod = "GET"
	ListVirtualMachinesName   = "resource/listvirtualmachines"
	ListVirtualMachinesPath   = "/api/arm/resources/type/vm"
)

// Config represents the configuration used to create a resource endpoint.
type Config struct {
	Logger  micrologger.Logger
	Service *arm.Service
}

// Resource is the response representation of a resource.
type Resource struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Location string            `json:"location"`
	Tags     map[string]string `json:"tags,omitempty"`
}

// Endpoint lists the resources of one fixed resource type.
type Endpoint struct {
	logger micrologger.Logger
	list   func(ctx context.Context) (resources.ListResultPage, error)

	method string
	name   string
	path   string
}

// NewListWebApps creates the endpoint listing Microsoft.Web/sites resources.
func NewListWebApps(config Config) (*Endpoint, error) {
	err := validate(config)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	e := &Endpoint{
		logger: config.Logger,
		list:   config.Service.ListWebApps,

		method: ListWebAppsMethod,
		name:   ListWebAppsName,
		path:   ListWebAppsPath,
	}

	return e, nil
}

// NewListVirtualMachines creates the endpoint listing
// Microsoft.Compute/virtualMachines resources.
func NewListVirtualMachines(config Config) (*Endpoint, error) {
	err := validate(config)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	e := &Endpoint{
		logger: config.Logger,
		list:   config.Service.ListVirtualMachines,

		method: ListVirtualMachinesMethod,
		name:   ListVirtualMachinesName,
		path:   ListVirtualMachinesPath,
	}

	return e, nil
}

func validate(config Config) error {
	if config.Logger == nil {
		return microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Service == nil {
		return microerror.Maskf(invalidConfigError, "%T.Service must not be empty", config)
	}

	return nil
}

func (e *Endpoint) Decoder() kithttp.DecodeRequestFunc {
	return func(ctx context.Context, r *http.Request) (interface{}, error) {
		return nil, nil
	}
}

func (e *Endpoint) Encoder() kithttp.EncodeResponseFunc {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		return respond.JSON(w, http.StatusOK, response)
	}
}

func (e *Endpoint) Endpoint() kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		page, err := e.list(ctx)
		if err != nil {
			return nil, microerror.Mask(err)
		}

		list := []Resource{}
		for _, r := range page.Values() {
			list = append(list, Resource{
				ID:       to.String(r.ID),
				Name:     to.String(r.Name),
				Type:     to.String(r.Type),
				Location: to.String(r.Location),
				Tags:     to.StringMap(r.Tags),
			})
		}

		return list, nil
	}
}

func (e *Endpoint) Method() string {
	return e.method
}

func (e *Endpoint) Middlewares() []kitendpoint.Middleware {
	return []kitendpoint.Middleware{}
}

func (e *Endpoint) Name() string {
	return e.name
}

func (e *Endpoint) Path() string {
	return e.path
}
