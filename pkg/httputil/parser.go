// Package httputil provides HTTP header parsers used by the Azure API send
// decorators.
package httputil

import (
	"net/http"
	"strconv"
	"time"

	"github.com/giantswarm/microerror"
)

// ParseRetryAfter returns the point in time given by the first parseable
// Retry-After value of r. Values are either <delay-seconds>, which is added
// to now, or an <http-date>.
func ParseRetryAfter(r *http.Response, now time.Time) (time.Time, error) {
	if r == nil {
		return time.Time{}, microerror.Maskf(parseError, "nil response")
	}

	for _, v := range r.Header.Values("Retry-After") {
		seconds, err := strconv.ParseInt(v, 10, 32)
		if err == nil && seconds > 0 {
			return now.UTC().Add(time.Duration(seconds) * time.Second), nil
		}

		t, err := http.ParseTime(v)
		if err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, microerror.Maskf(parseError, "parseable Retry-After missing")
}
