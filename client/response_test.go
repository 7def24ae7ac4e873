package client

import (
	"net/http"
	"testing"

	"github.com/Azure/go-autorest/autorest"
)

func Test_ResponseStatus(t *testing.T) {
	testCases := []struct {
		name              string
		response          *http.Response
		expectedNotFound  bool
		expectedNoContent bool
	}{
		{
			name:             "case 0: 404 is not found",
			response:         &http.Response{StatusCode: http.StatusNotFound},
			expectedNotFound: true,
		},
		{
			name:              "case 1: 204 is no content",
			response:          &http.Response{StatusCode: http.StatusNoContent},
			expectedNoContent: true,
		},
		{
			name:     "case 2: 200 is neither",
			response: &http.Response{StatusCode: http.StatusOK},
		},
		{
			name:     "case 3: 500 is neither",
			response: &http.Response{StatusCode: http.StatusInternalServerError},
		},
		{
			name:     "case 4: missing response is neither",
			response: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := autorest.Response{
				Response: tc.response,
			}

			if ResponseWasNotFound(resp) != tc.expectedNotFound {
				t.Fatalf("ResponseWasNotFound expected %t got %t", tc.expectedNotFound, ResponseWasNotFound(resp))
			}
			if ResponseWasNoContent(resp) != tc.expectedNoContent {
				t.Fatalf("ResponseWasNoContent expected %t got %t", tc.expectedNoContent, ResponseWasNoContent(resp))
			}
		})
	}
}
