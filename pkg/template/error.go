package template

import "github.com/giantswarm/microerror"

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError
}

var invalidDocumentError = &microerror.Error{
	Kind: "invalidDocumentError",
}

// IsInvalidDocument asserts invalidDocumentError.
func IsInvalidDocument(err error) bool {
	return microerror.Cause(err) == invalidDocumentError
}

var parameterNotFoundError = &microerror.Error{
	Kind: "parameterNotFoundError",
}

// IsParameterNotFound asserts parameterNotFoundError.
func IsParameterNotFound(err error) bool {
	return microerror.Cause(err) == parameterNotFoundError
}
