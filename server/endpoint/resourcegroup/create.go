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
	CreateMethod = "PUT"
	CreateName   = "resourcegroup/create"
	CreatePath   = "/api/arm/resourcegroup/{name}/{location}"
)

// CreateEndpoint creates or updates an untagged resource group.
type CreateEndpoint struct {
	logger  micrologger.Logger
	service *arm.Service
}

func NewCreate(config Config) (*CreateEndpoint, error) {
	err := config.validate()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	e := &CreateEndpoint{
		logger:  config.Logger,
		service: config.Service,
	}

	return e, nil
}

func (e *CreateEndpoint) Decoder() kithttp.DecodeRequestFunc {
	return decodeRequest
}

func (e *CreateEndpoint) Encoder() kithttp.EncodeResponseFunc {
	return encodeOK
}

func (e *CreateEndpoint) Endpoint() kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		r := request.(groupRequest)

		group, err := e.service.CreateOrUpdateResourceGroup(ctx, r.Name, r.Location)
		if err != nil {
			return nil, microerror.Mask(err)
		}

		return newResourceGroup(group), nil
	}
}

func (e *CreateEndpoint) Method() string {
	return CreateMethod
}

func (e *CreateEndpoint) Middlewares() []kitendpoint.Middleware {
	return noMiddlewares()
}

func (e *CreateEndpoint) Name() string {
	return CreateName
}

func (e *CreateEndpoint) Path() string {
	return CreatePath
}
