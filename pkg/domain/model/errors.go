package model

import "github.com/m-mizutani/goerr/v2"

// Error tags used to map domain failures to caller-facing responses
var (
	ErrTagMissingParameter = goerr.NewTag("missing_parameter")
	ErrTagInvalidParameter = goerr.NewTag("invalid_parameter")
	ErrTagProfileNotFound  = goerr.NewTag("profile_not_found")
	ErrTagUnauthorized     = goerr.NewTag("unauthorized")
)

// MissingParameter returns an error naming the absent top-level field
func MissingParameter(field string) error {
	return goerr.New(field+" is required",
		goerr.T(ErrTagMissingParameter),
		goerr.V("field", field))
}

// InvalidParameter returns an error for a field whose value is not accepted
func InvalidParameter(field, value string) error {
	return goerr.New("invalid "+field,
		goerr.T(ErrTagInvalidParameter),
		goerr.V("field", field),
		goerr.V("value", value))
}

// Unauthorized returns an error for a request that needs an authenticated caller
func Unauthorized(reason string) error {
	return goerr.New(reason, goerr.T(ErrTagUnauthorized))
}
