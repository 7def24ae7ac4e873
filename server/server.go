// Package server provides a server implementation to connect to actual
// handlers.
package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/giantswarm/microerror"
	microserver "github.com/giantswarm/microkit/server"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/viper"

	"github.com/giantswarm/azure-arm-api/server/endpoint"
	"github.com/giantswarm/azure-arm-api/service"
	"github.com/giantswarm/azure-arm-api/service/arm"
)

const (
	codeInvalidInput    = "INVALID_INPUT"
	codeNotFound        = "RESOURCE_NOT_FOUND"
	codeConflict        = "RESOURCE_CONFLICT"
	codeTooManyRequests = "TOO_MANY_REQUESTS"
	codeInternalError   = "INTERNAL_ERROR"
)

// Config represents the configuration used to create a new server object.
type Config struct {
	Logger  micrologger.Logger
	Service *service.Service
	Viper   *viper.Viper

	ProjectName string
}

type server struct {
	logger micrologger.Logger

	bootOnce     sync.Once
	config       microserver.Config
	shutdownOnce sync.Once
}

// New creates a new configured server object.
func New(config Config) (microserver.Server, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Service == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Service must not be empty", config)
	}
	if config.Viper == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Viper must not be empty", config)
	}
	if config.ProjectName == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.ProjectName must not be empty", config)
	}

	var err error

	var endpointCollection *endpoint.Endpoint
	{
		c := endpoint.Config{
			Logger:  config.Logger,
			Service: config.Service,
		}

		endpointCollection, err = endpoint.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	s := &server{
		logger: config.Logger,

		bootOnce: sync.Once{},
		config: microserver.Config{
			Logger:      config.Logger,
			ServiceName: config.ProjectName,
			Viper:       config.Viper,

			Endpoints:    endpointCollection.All(),
			ErrorEncoder: errorEncoder,
		},
		shutdownOnce: sync.Once{},
	}

	return s, nil
}

func (s *server) Boot() {
	s.bootOnce.Do(func() {
		// Insert here custom boot logic for server/endpoint/middleware if needed.
	})
}

func (s *server) Config() microserver.Config {
	return s.config
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// Insert here custom shutdown logic for server/endpoint/middleware if needed.
	})
}

func errorEncoder(ctx context.Context, err error, w http.ResponseWriter) {
	rErr := err.(microserver.ResponseError)
	uErr := rErr.Underlying()

	code, status := responseCode(uErr)

	rErr.SetCode(code)
	rErr.SetMessage(uErr.Error())
	w.WriteHeader(status)
}

// responseCode maps facade errors to the error code and HTTP status of the
// response.
func responseCode(err error) (string, int) {
	switch {
	case arm.IsInvalidInput(err):
		return codeInvalidInput, http.StatusBadRequest
	case arm.IsNotFound(err):
		return codeNotFound, http.StatusNotFound
	case arm.IsConflict(err):
		return codeConflict, http.StatusConflict
	case arm.IsTooManyRequests(err):
		return codeTooManyRequests, http.StatusTooManyRequests
	default:
		return codeInternalError, http.StatusInternalServerError
	}
}
