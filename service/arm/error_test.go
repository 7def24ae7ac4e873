package arm

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/giantswarm/microerror"
	"github.com/google/go-cmp/cmp"

	"github.com/giantswarm/azure-arm-api/client/senddecorator"
	"github.com/giantswarm/azure-arm-api/pkg/backpressure"
)

func circuitBreakerError(t *testing.T) error {
	throttled := autorest.SenderFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusTooManyRequests, Body: http.NoBody}, nil
	})

	_, err := senddecorator.RateLimitCircuitBreaker(&backpressure.Backpressure{})(throttled).Do(httptest.NewRequest(http.MethodGet, "https://management.azure.com", nil))
	if err == nil {
		t.Fatal("expected circuit breaker to fail the call")
	}

	return err
}

func Test_newProviderCallError(t *testing.T) {
	testCases := []struct {
		name     string
		err      func(t *testing.T) error
		expected *ProviderCallError
	}{
		{
			name: "case 0: service error of a failed response",
			err: func(t *testing.T) error {
				return autorest.DetailedError{
					Original: &azure.RequestError{
						ServiceError: &azure.ServiceError{Code: "ResourceGroupNotFound", Message: "Resource group 'x' could not be found."},
					},
					StatusCode: http.StatusNotFound,
					Message:    "Failure responding to request",
				}
			},
			expected: &ProviderCallError{
				Operation:  "Op",
				Category:   "Not Found",
				Code:       "ResourceGroupNotFound",
				Message:    "Resource group 'x' could not be found.",
				StatusCode: http.StatusNotFound,
			},
		},
		{
			name: "case 1: masked detailed error without service error",
			err: func(t *testing.T) error {
				return microerror.Mask(autorest.DetailedError{
					StatusCode: http.StatusBadGateway,
					Message:    "Failure sending request",
				})
			},
			expected: &ProviderCallError{
				Operation:  "Op",
				Category:   "Bad Gateway",
				Code:       "Unknown",
				Message:    "Failure sending request",
				StatusCode: http.StatusBadGateway,
			},
		},
		{
			name: "case 2: polling error of a long-running operation",
			err: func(t *testing.T) error {
				return autorest.DetailedError{
					Original:   &azure.ServiceError{Code: "InvalidTemplate", Message: "Deployment template validation failed."},
					StatusCode: http.StatusBadRequest,
					Message:    "Failure sending request",
				}
			},
			expected: &ProviderCallError{
				Operation:  "Op",
				Category:   "Bad Request",
				Code:       "InvalidTemplate",
				Message:    "Deployment template validation failed.",
				StatusCode: http.StatusBadRequest,
			},
		},
		{
			name: "case 3: wrapped polling error",
			err: func(t *testing.T) error {
				return microerror.Mask(autorest.DetailedError{
					Original:   fmt.Errorf("polling: %w", &azure.ServiceError{Code: "ResourceGroupNotFound", Message: "Resource group 'x' could not be found."}),
					StatusCode: http.StatusNotFound,
					Message:    "Failure sending request",
				})
			},
			expected: &ProviderCallError{
				Operation:  "Op",
				Category:   "Not Found",
				Code:       "ResourceGroupNotFound",
				Message:    "Resource group 'x' could not be found.",
				StatusCode: http.StatusNotFound,
			},
		},
		{
			name: "case 4: plain error",
			err: func(t *testing.T) error {
				return errors.New("dial tcp: connection refused")
			},
			expected: &ProviderCallError{
				Operation: "Op",
				Category:  "Unknown",
				Code:      "Unknown",
				Message:   "dial tcp: connection refused",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newProviderCallError("Op", tc.err(t))

			if !cmp.Equal(e, tc.expected) {
				t.Fatalf("\n\n%s\n", cmp.Diff(tc.expected, e))
			}
		})
	}
}

func Test_newProviderCallError_CircuitOpen(t *testing.T) {
	err := autorest.DetailedError{
		Original: circuitBreakerError(t),
		Message:  "Failure sending request",
	}

	e := newProviderCallError("ListResources", err)

	if !IsTooManyRequests(e) {
		t.Fatalf("expected too many requests got %#v", e)
	}
	if e.Category != "Too Many Requests" || e.Code != "TooManyRequests" {
		t.Fatalf("unexpected description %#q", e.Error())
	}
}

func Test_ErrorMatchers(t *testing.T) {
	conflict := microerror.Mask(&ProviderCallError{StatusCode: http.StatusConflict})
	notFound := microerror.Mask(&ProviderCallError{StatusCode: http.StatusNotFound})

	if !IsProviderCallFailed(conflict) || !IsConflict(conflict) || IsNotFound(conflict) {
		t.Fatalf("conflict matched wrongly")
	}
	if !IsNotFound(notFound) || IsConflict(notFound) {
		t.Fatalf("not found matched wrongly")
	}
	if IsProviderCallFailed(nil) || IsProviderCallFailed(errors.New("x")) {
		t.Fatalf("non provider errors must not match")
	}
}
