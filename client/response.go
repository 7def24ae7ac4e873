package client

import (
	"net/http"

	"github.com/Azure/go-autorest/autorest"
)

// ResponseWasNotFound returns true if the response code from the Azure API
// was a 404.
func ResponseWasNotFound(resp autorest.Response) bool {
	return responseHasStatus(resp, http.StatusNotFound)
}

// ResponseWasNoContent returns true if the response code from the Azure API
// was a 204. Resource group existence checks answer this way for existing
// groups.
func ResponseWasNoContent(resp autorest.Response) bool {
	return responseHasStatus(resp, http.StatusNoContent)
}

func responseHasStatus(resp autorest.Response, code int) bool {
	return resp.Response != nil && resp.StatusCode == code
}
