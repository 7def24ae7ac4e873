// Package respond writes endpoint responses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/giantswarm/microerror"
)

// JSON writes v as the JSON body of a response with the given status code.
// A nil v writes no body.
func JSON(w http.ResponseWriter, status int, v interface{}) error {
	if v == nil {
		w.WriteHeader(status)
		return nil
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}
