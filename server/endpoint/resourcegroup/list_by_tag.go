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
	ListByTagMethod = "GET"
	ListByTagName   = "resourcegroup/listbytag"
	ListByTagPath   = "/api/arm/resourcegroups/tag/{tagName}"
)

// ListByTagEndpoint lists the resource groups carrying the tag given in the
// path, whatever its value.
type ListByTagEndpoint struct {
	logger  micrologger.Logger
	service *arm.Service
}

func NewListByTag(config Config) (*ListByTagEndpoint, error) {
	err := config.validate()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	e := &ListByTagEndpoint{
		logger:  config.Logger,
		service: config.Service,
	}

	return e, nil
}

func (e *ListByTagEndpoint) Decoder() kithttp.DecodeRequestFunc {
	return decodeRequest
}

func (e *ListByTagEndpoint) Encoder() kithttp.EncodeResponseFunc {
	return encodeOK
}

func (e *ListByTagEndpoint) Endpoint() kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		r := request.(groupRequest)

		page, err := e.service.ListResourceGroupsByTag(ctx, r.TagName)
		if err != nil {
			return nil, microerror.Mask(err)
		}

		return newResourceGroups(page), nil
	}
}

func (e *ListByTagEndpoint) Method() string {
	return ListByTagMethod
}

func (e *ListByTagEndpoint) Middlewares() []kitendpoint.Middleware {
	return noMiddlewares()
}

func (e *ListByTagEndpoint) Name() string {
	return ListByTagName
}

func (e *ListByTagEndpoint) Path() string {
	return ListByTagPath
}
