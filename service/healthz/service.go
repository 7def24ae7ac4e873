package healthz

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest/to"
	healthzservice "github.com/giantswarm/microendpoint/service/healthz"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
)

const (
	// Description describes which functionality this health check implements.
	Description = "Ensure Azure API availability."
	// Name is the identifier of the health check. This can be used for emitting
	// metrics.
	Name = "azure"
	// SuccessMessage is the message returned in case the health check did not
	// fail.
	SuccessMessage = "all good"
	// DefaultTimeout is the time being waited until timing out health check,
	// which renders its result unsuccessful.
	DefaultTimeout = 5 * time.Second

	// TopResultCount is how many results to return.
	TopResultCount = 1
)

// GroupLister is implemented by *resources.GroupsClient.
type GroupLister interface {
	List(ctx context.Context, filter string, top *int32) (resources.GroupListResultPage, error)
}

// Config represents the configuration used to create a healthz service.
type Config struct {
	GroupsClient GroupLister
	Logger       micrologger.Logger

	Timeout time.Duration
}

// Service implements the healthz service interface.
type Service struct {
	groupsClient GroupLister
	logger       micrologger.Logger

	timeout time.Duration
}

// New creates a new configured healthz service.
func New(config Config) (*Service, error) {
	if config.GroupsClient == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.GroupsClient must not be empty", config)
	}
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	s := &Service{
		groupsClient: config.GroupsClient,
		logger:       config.Logger,

		timeout: config.Timeout,
	}

	return s, nil
}

// GetHealthz implements the health check for Azure. It does this by calling
// Resource Groups API and getting the first Resource Group. This checks that
// we can connect to the API and the credentials are correct.
func (s *Service) GetHealthz(ctx context.Context) (healthzservice.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	failed := false
	message := SuccessMessage
	{
		ch := make(chan string, 1)

		go func() {
			_, err := s.groupsClient.List(ctx, "", to.Int32Ptr(TopResultCount))
			if err != nil {
				ch <- err.Error()
				return
			}

			ch <- ""
		}()

		select {
		case m := <-ch:
			if m != "" {
				failed = true
				message = m
			}
		case <-ctx.Done():
			failed = true
			message = fmt.Sprintf("timed out after %s", s.timeout)
		}
	}

	if failed {
		s.logger.Debugf(ctx, "health check failed: %s", message)
	}

	response := healthzservice.Response{
		Description: Description,
		Failed:      failed,
		Message:     message,
		Name:        Name,
	}

	return response, nil
}
