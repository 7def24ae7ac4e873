// Package odata builds the OData filters understood by the Azure Resource
// Manager list calls.
package odata

import (
	"fmt"
	"strings"
)

// Eq returns the filter `<property> eq '<value>'`. Single quotes inside value
// are doubled as required for OData string literals.
func Eq(property, value string) string {
	return fmt.Sprintf("%s eq '%s'", property, Quote(value))
}

// Quote escapes value for use inside a single quoted OData string literal.
func Quote(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}
