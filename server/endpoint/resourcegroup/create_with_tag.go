package resourcegroup

import (
	"context"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	kitendpoint "github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/giantswarm/azure-arm-api/service/arm"
)

const (
	CreateWithTagMethod = "PUT"
	CreateWithTagName   = "resourcegroup/createwithtag"
	CreateWithTagPath   = "/api/arm/resourcegroup/{name}/{location}/tag/{tagName}/{tagValue}"
)

// CreateWithTagEndpoint creates or updates a resource group and replaces its
// tags with the single tag given in the path.
type CreateWithTagEndpoint struct {
	logger  micrologger.Logger
	service *arm.Service
}

func NewCreateWithTag(config Config) (*CreateWithTagEndpoint, error) {
	err := config.validate()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	e := &CreateWithTagEndpoint{
		logger:  config.Logger,
		service: config.Service,
	}

	return e, nil
}

func (e *CreateWithTagEndpoint) Decoder() kithttp.DecodeRequestFunc {
	return decodeRequest
}

func (e *CreateWithTagEndpoint) Encoder() kithttp.EncodeResponseFunc {
	return encodeOK
}

func (e *CreateWithTagEndpoint) Endpoint() kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		r := request.(groupRequest)

		group, err := e.service.CreateOrUpdateResourceGroupWithTag(ctx, r.Name, r.Location, r.TagName, r.TagValue)
		if err != nil {
			return nil, microerror.Mask(err)
		}

		return newResourceGroup(group), nil
	}
}

func (e *CreateWithTagEndpoint) Method() string {
	return CreateWithTagMethod
}

func (e *CreateWithTagEndpoint) Middlewares() []kitendpoint.Middleware {
	return noMiddlewares()
}

func (e *CreateWithTagEndpoint) Name() string {
	return CreateWithTagName
}

func (e *CreateWithTagEndpoint) Path() string {
	return CreateWithTagPath
}
