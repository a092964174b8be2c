package interfaces

// CallerVerifier authenticates an API caller from a bearer token and
// returns the caller's subject
type CallerVerifier interface {
	Verify(token string) (string, error)
}
