package github

import (
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-2xx response from the GitHub API
type APIError struct {
	StatusCode       int
	Message          string
	DocumentationURL string
	Errors           []ValidationError
}

// ValidationError describes a field-level failure returned on 422 responses
type ValidationError struct {
	Resource string `json:"resource"`
	Code     string `json:"code"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: HTTP %d: %s", e.StatusCode, e.UpstreamMessage())
}

// UpstreamStatus returns the HTTP status code
func (e *APIError) UpstreamStatus() int {
	return e.StatusCode
}

// UpstreamMessage returns the top-level message followed by any
// field-level validation messages, so that callers matching on message
// text see the specific reason GitHub gave.
func (e *APIError) UpstreamMessage() string {
	var details []string
	for _, v := range e.Errors {
		switch {
		case v.Message != "":
			details = append(details, v.Message)
		case v.Code != "":
			details = append(details, v.Resource+"."+v.Field+": "+v.Code)
		}
	}
	if len(details) == 0 {
		return e.Message
	}
	if e.Message == "" {
		return strings.Join(details, "; ")
	}
	return e.Message + ": " + strings.Join(details, "; ")
}

// IsNotFound reports whether err is a GitHub API 404 response
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsRateLimited reports whether err is a GitHub rate limit response.
// GitHub uses 429 for secondary limits and 403 with a recognizable
// message for the primary limit.
func IsRateLimited(err error) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	return apiError.StatusCode == 429 || (apiError.StatusCode == 403 && isRateLimitMessage(apiError.Message))
}

func isRateLimitMessage(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "abuse detection")
}
