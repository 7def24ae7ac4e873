package credential

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Azure/go-autorest/autorest/adal"
	"github.com/giantswarm/microerror"
)

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError
}

// AuthenticationError is returned when the token exchange with Azure Active
// Directory fails. Code is the HTTP status code of the token endpoint
// response, or "Unknown" when no response was received.
type AuthenticationError struct {
	Code    string
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s : %s", e.Code, e.Message)
}

// IsAuthenticationFailed asserts *AuthenticationError.
func IsAuthenticationFailed(err error) bool {
	_, ok := microerror.Cause(err).(*AuthenticationError)
	return ok
}

func newAuthenticationError(err error) *AuthenticationError {
	e := &AuthenticationError{
		Code:    "Unknown",
		Message: err.Error(),
	}

	var rErr adal.TokenRefreshError
	if errors.As(err, &rErr) && rErr.Response() != nil {
		e.Code = strconv.Itoa(rErr.Response().StatusCode)
	}

	return e
}
