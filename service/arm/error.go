package arm

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-arm-api/client/senddecorator"
)

const unknown = "Unknown"

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError
}

var invalidInputError = &microerror.Error{
	Kind: "invalidInputError",
}

// IsInvalidInput asserts invalidInputError.
func IsInvalidInput(err error) bool {
	return microerror.Cause(err) == invalidInputError
}

// ProviderCallError describes a failed call to the Azure Resource Manager
// API.
type ProviderCallError struct {
	// Operation is the facade step that failed, e.g. CreateOrUpdateDeployment.
	Operation string
	// Category is the HTTP reason phrase of the failed response.
	Category string
	// Code and Message are taken from the ARM error body.
	Code    string
	Message string
	// StatusCode is 0 when no response was received.
	StatusCode int
}

func (e *ProviderCallError) Error() string {
	return fmt.Sprintf("%s: %s: %s : %s", e.Operation, e.Category, e.Code, e.Message)
}

// IsProviderCallFailed asserts *ProviderCallError.
func IsProviderCallFailed(err error) bool {
	_, ok := providerCallError(err)
	return ok
}

// IsNotFound asserts a *ProviderCallError caused by a 404 response.
func IsNotFound(err error) bool {
	return hasStatusCode(err, http.StatusNotFound)
}

// IsConflict asserts a *ProviderCallError caused by a 409 response.
func IsConflict(err error) bool {
	return hasStatusCode(err, http.StatusConflict)
}

// IsTooManyRequests asserts a *ProviderCallError caused by throttling, either
// by the API or by the local circuit breaker.
func IsTooManyRequests(err error) bool {
	return hasStatusCode(err, http.StatusTooManyRequests)
}

func hasStatusCode(err error, code int) bool {
	e, ok := providerCallError(err)
	return ok && e.StatusCode == code
}

func providerCallError(err error) (*ProviderCallError, bool) {
	if err == nil {
		return nil, false
	}

	var e *ProviderCallError
	if errors.As(err, &e) {
		return e, true
	}

	e, ok := microerror.Cause(err).(*ProviderCallError)
	return e, ok
}

// newProviderCallError describes err as returned by the Azure SDK.
func newProviderCallError(operation string, err error) *ProviderCallError {
	e := &ProviderCallError{
		Operation: operation,
		Category:  unknown,
		Code:      unknown,
		Message:   err.Error(),
	}

	var dErr autorest.DetailedError
	if errors.As(err, &dErr) || asCause(err, &dErr) {
		if code, ok := dErr.StatusCode.(int); ok && code != 0 {
			e.StatusCode = code
		}
		if dErr.Message != "" {
			e.Message = dErr.Message
		}

		if senddecorator.IsTooManyRequests(dErr.Original) {
			e.StatusCode = http.StatusTooManyRequests
			e.Code = "TooManyRequests"
			e.Message = dErr.Original.Error()
		}

		sErr := serviceError(dErr.Original)
		if sErr != nil && sErr.Code != "" {
			e.Code = sErr.Code
		}
		if sErr != nil && sErr.Message != "" {
			e.Message = sErr.Message
		}
	}

	if e.StatusCode != 0 {
		e.Category = http.StatusText(e.StatusCode)
	}

	return e
}

// serviceError finds the ARM error body behind err. Plain calls fail with an
// azure.RequestError carrying it, long-running calls with the
// *azure.ServiceError of the polling tracker.
func serviceError(err error) *azure.ServiceError {
	if err == nil {
		return nil
	}

	var rErr *azure.RequestError
	if errors.As(err, &rErr) && rErr.ServiceError != nil {
		return rErr.ServiceError
	}
	var rv azure.RequestError
	if errors.As(err, &rv) && rv.ServiceError != nil {
		return rv.ServiceError
	}
	var sErr *azure.ServiceError
	if errors.As(err, &sErr) {
		return sErr
	}

	return nil
}

func asCause(err error, dErr *autorest.DetailedError) bool {
	c, ok := microerror.Cause(err).(autorest.DetailedError)
	if ok {
		*dErr = c
	}

	return ok
}
