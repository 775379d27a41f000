package floosak

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned by payment operations invoked without a
// bearer token, before any network I/O. Run RequestKey/VerifyKey or construct
// the client with WithToken.
var ErrNotAuthenticated = errors.New("floosak: not authenticated: complete the key flow or supply a token")

// APIError is a non-2xx response from the API, carrying the remote status and
// body unchanged.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("floosak: api error: status %d: %s", e.StatusCode, e.Body)
}
