package healthz

import (
	"context"
	"net/http"

	healthzservice "github.com/giantswarm/microendpoint/service/healthz"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	kitendpoint "github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/giantswarm/azure-arm-api/server/endpoint/respond"
)

const (
	// Method is the HTTP method this endpoint is registered for.
	Method = "GET"
	// Name identifies the endpoint. It is aligned to the package path.
	Name = "healthz"
	// Path is the HTTP request path this endpoint is registered for.
	Path = "/healthz"
)

// Checker is implemented by the Azure healthz service.
type Checker interface {
	GetHealthz(ctx context.Context) (healthzservice.Response, error)
}

// Config represents the configuration used to create a healthz endpoint.
type Config struct {
	Logger  micrologger.Logger
	Service Checker
}

// New creates a new configured healthz endpoint.
func New(config Config) (*Endpoint, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Service == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Service must not be empty", config)
	}

	newEndpoint := &Endpoint{
		logger:  config.Logger,
		service: config.Service,
	}

	return newEndpoint, nil
}

type Endpoint struct {
	logger  micrologger.Logger
	service Checker
}

func (e *Endpoint) Decoder() kithttp.DecodeRequestFunc {
	return func(ctx context.Context, r *http.Request) (interface{}, error) {
		return nil, nil
	}
}

// Encoder answers 503 when the Azure API could not be reached.
func (e *Endpoint) Encoder() kithttp.EncodeResponseFunc {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		r := response.(healthzservice.Response)

		status := http.StatusOK
		if r.Failed {
			status = http.StatusServiceUnavailable
		}

		return respond.JSON(w, status, r)
	}
}

func (e *Endpoint) Endpoint() kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		r, err := e.service.GetHealthz(ctx)
		if err != nil {
			return nil, microerror.Mask(err)
		}

		return r, nil
	}
}

func (e *Endpoint) Method() string {
	return Method
}

func (e *Endpoint) Middlewares() []kitendpoint.Middleware {
	return []kitendpoint.Middleware{}
}

func (e *Endpoint) Name() string {
	return Name
}

func (e *Endpoint) Path() string {
	return Path
}
