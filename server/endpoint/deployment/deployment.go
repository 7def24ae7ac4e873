// Package deployment implements the endpoints triggering ARM template
// deployments into a resource group.
package deployment

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	kitendpoint "github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"

	"github.com/giantswarm/azure-arm-api/server/endpoint/respond"
	"github.com/giantswarm/azure-arm-api/service/arm"
)

const (
	FromLinksMethod = "PUT"
	FromLinksName   = "deployment/fromlinks"
	FromLinksPath   = "/api/arm/resourcegroup/{name}/{location}/deployment"

	FromEmbeddedFilesMethod = "PUT"
	FromEmbeddedFilesName   = "deployment/fromembeddedfiles"
	FromEmbeddedFilesPath   = "/api/arm/resourcegroup/{name}/{location}/{appName}/deployment"

	FromTemplateLinkMethod = "PUT"
	FromTemplateLinkName   = "deployment/fromtemplatelink"
	FromTemplateLinkPath   = "/api/arm/resourcegroup/{name}/{location}/deployment/templatelink/paramfile"
)

// Config represents the configuration used to create a deployment endpoint.
type Config struct {
	Logger  micrologger.Logger
	Service *arm.Service
}

// Deployment is the response representation of a submitted deployment.
type Deployment struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Mode              string `json:"mode,omitempty"`
	ProvisioningState string `json:"provisioningState,omitempty"`
	CorrelationID     string `json:"correlationId,omitempty"`
}

type deployRequest struct {
	Name     string
	Location string
	AppName  string
}

type deployFunc func(ctx context.Context, r deployRequest) (resources.DeploymentExtended, error)

type Endpoint struct {
	logger micrologger.Logger
	deploy deployFunc

	method string
	name   string
	path   string
}

// NewFromLinks creates the endpoint deploying the linked template and
// parameter files.
func NewFromLinks(config Config) (*Endpoint, error) {
	err := validate(config)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	e := &Endpoint{
		logger: config.Logger,
		deploy: func(ctx context.Context, r deployRequest) (resources.DeploymentExtended, error) {
			return config.Service.DeployFromLinks(ctx, r.Name, r.Location)
		},

		method: FromLinksMethod,
		name:   FromLinksName,
		path:   FromLinksPath,
	}

	return e, nil
}

// NewFromEmbeddedFiles creates the endpoint deploying the bundled web app
// template named after the app given in the path.
func NewFromEmbeddedFiles(config Config) (*Endpoint, error) {
	err := validate(config)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	e := &Endpoint{
		logger: config.Logger,
		deploy: func(ctx context.Context, r deployRequest) (resources.DeploymentExtended, error) {
			return config.Service.DeployFromEmbeddedFiles(ctx, r.Name, r.Location, r.AppName)
		},

		method: FromEmbeddedFilesMethod,
		name:   FromEmbeddedFilesName,
		path:   FromEmbeddedFilesPath,
	}

	return e, nil
}

// NewFromTemplateLink creates the endpoint deploying the linked template
// with the bundled parameters.
func NewFromTemplateLink(config Config) (*Endpoint, error) {
	err := validate(config)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	e := &Endpoint{
		logger: config.Logger,
		deploy: func(ctx context.Context, r deployRequest) (resources.DeploymentExtended, error) {
			return config.Service.DeployFromTemplateLinkAndEmbeddedParams(ctx, r.Name, r.Location)
		},

		method: FromTemplateLinkMethod,
		name:   FromTemplateLinkName,
		path:   FromTemplateLinkPath,
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
		vars := mux.Vars(r)

		req := deployRequest{
			Name:     vars["name"],
			Location: vars["location"],
			AppName:  vars["appName"],
		}

		return req, nil
	}
}

func (e *Endpoint) Encoder() kithttp.EncodeResponseFunc {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		return respond.JSON(w, http.StatusOK, response)
	}
}

func (e *Endpoint) Endpoint() kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		r := request.(deployRequest)

		d, err := e.deploy(ctx, r)
		if err != nil {
			return nil, microerror.Mask(err)
		}

		e.logger.Debugf(ctx, "submitted deployment %#q to resource group %#q", to.String(d.Name), r.Name)

		res := Deployment{
			ID:   to.String(d.ID),
			Name: to.String(d.Name),
		}
		if d.Properties != nil {
			res.Mode = string(d.Properties.Mode)
			res.ProvisioningState = to.String(d.Properties.ProvisioningState)
			res.CorrelationID = to.String(d.Properties.CorrelationID)
		}

		return res, nil
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
