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
	// ListMethod is the HTTP method the list endpoint is registered for.
	ListMethod = "GET"
	// ListName identifies the list endpoint.
	ListName = "resourcegroup/list"
	// ListPath is the HTTP request path the list endpoint is registered for.
	ListPath = "/api/arm/resourcegroups"
)

// ListEndpoint lists all resource groups of the subscription.
type ListEndpoint struct {
	logger  micrologger.Logger
	service *arm.Service
}

func NewList(config Config) (*ListEndpoint, error) {
	err := config.validate()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	e := &ListEndpoint{
		logger:  config.Logger,
		service: config.Service,
	}

	return e, nil
}

func (e *ListEndpoint) Decoder() kithttp.DecodeRequestFunc {
	return decodeRequest
}

func (e *ListEndpoint) Encoder() kithttp.EncodeResponseFunc {
	return encodeOK
}

func (e *ListEndpoint) Endpoint() kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		page, err := e.service.ListResourceGroups(ctx)
		if err != nil {
			return nil, microerror.Mask(err)
		}

		return newResourceGroups(page), nil
	}
}

func (e *ListEndpoint) Method() string {
	return ListMethod
}

func (e *ListEndpoint) Middlewares() []kitendpoint.Middleware {
	return noMiddlewares()
}

func (e *ListEndpoint) Name() string {
	return ListName
}

func (e *ListEndpoint) Path() string {
	return ListPath
}
