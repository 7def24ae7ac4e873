package resourcegroup

import (
	"context"
	"net/http"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	kitendpoint "github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/giantswarm/azure-arm-api/server/endpoint/respond"
	"github.com/giantswarm/azure-arm-api/service/arm"
)

const (
	DeleteMethod = "DELETE"
	DeleteName   = "resourcegroup/delete"
	DeletePath   = "/api/arm/resourcegroup/{name}"
)

// DeleteEndpoint starts the deletion of a resource group. It answers with 202
// since the deletion is still running in Azure.
type DeleteEndpoint struct {
	logger  micrologger.Logger
	service *arm.Service
}

func NewDelete(config Config) (*DeleteEndpoint, error) {
	err := config.validate()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	e := &DeleteEndpoint{
		logger:  config.Logger,
		service: config.Service,
	}

	return e, nil
}

func (e *DeleteEndpoint) Decoder() kithttp.DecodeRequestFunc {
	return decodeRequest
}

func (e *DeleteEndpoint) Encoder() kithttp.EncodeResponseFunc {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		return respond.JSON(w, http.StatusAccepted, nil)
	}
}

func (e *DeleteEndpoint) Endpoint() kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		r := request.(groupRequest)

		err := e.service.DeleteResourceGroup(ctx, r.Name)
		if err != nil {
			return nil, microerror.Mask(err)
		}

		return nil, nil
	}
}

func (e *DeleteEndpoint) Method() string {
	return DeleteMethod
}

func (e *DeleteEndpoint) Middlewares() []kitendpoint.Middleware {
	return noMiddlewares()
}

func (e *DeleteEndpoint) Name() string {
	return DeleteName
}

func (e *DeleteEndpoint) Path() string {
	return DeletePath
}
