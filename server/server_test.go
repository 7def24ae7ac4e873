package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-arm-api/service/arm"
	"github.com/giantswarm/azure-arm-api/service/arm/armtest"
)

func Test_responseCode(t *testing.T) {
	s, _ := armtest.NewMockService(t)
	_, invalidInput := s.ListResourceGroupsByTag(context.Background(), "")

	testCases := []struct {
		name           string
		err            error
		expectedCode   string
		expectedStatus int
	}{
		{
			name:           "case 0: invalid input",
			err:            invalidInput,
			expectedCode:   codeInvalidInput,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "case 1: not found",
			err:            microerror.Mask(&arm.ProviderCallError{StatusCode: http.StatusNotFound}),
			expectedCode:   codeNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "case 2: conflict",
			err:            microerror.Mask(&arm.ProviderCallError{StatusCode: http.StatusConflict}),
			expectedCode:   codeConflict,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "case 3: throttled",
			err:            microerror.Mask(&arm.ProviderCallError{StatusCode: http.StatusTooManyRequests}),
			expectedCode:   codeTooManyRequests,
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			name:           "case 4: provider failure without response",
			err:            microerror.Mask(&arm.ProviderCallError{}),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "case 5: any other error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, status := responseCode(tc.err)

			if status != tc.expectedStatus {
				t.Fatalf("expected status %d got %d", tc.expectedStatus, status)
			}
			if tc.expectedCode != "" && code != tc.expectedCode {
				t.Fatalf("expected code %#q got %#q", tc.expectedCode, code)
			}
		})
	}
}
