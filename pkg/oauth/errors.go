package oauth

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = errors.New("oauth: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = errors.New("oauth: missing client secret")

	// ErrFetchFailed is returned when sending a request to the OAuth provider fails.
	ErrFetchFailed = errors.New("oauth: failed to fetch from provider")

	// ErrDecodeFailed is returned when decoding the OAuth provider response fails.
	ErrDecodeFailed = errors.New("oauth: failed to decode response")

	// ErrIdentityProvider is matched by every IdentityProviderError.
	ErrIdentityProvider = errors.New("oauth: identity provider error")

	// ErrInvalidGrant is returned when no grant is supplied to a token request.
	ErrInvalidGrant = errors.New("oauth: invalid grant")

	// ErrUnsupportedGrant is returned for a grant type the provider does not know.
	ErrUnsupportedGrant = errors.New("oauth: unsupported grant type")

	// ErrMissingParameter is returned when a grant's required option is absent.
	ErrMissingParameter = errors.New("oauth: required parameter not passed")

	// ErrMissingAccessToken is returned when a token response has no access_token.
	ErrMissingAccessToken = errors.New("oauth: token response missing access_token")
)

// IdentityProviderError is an error reported by the identity provider itself,
// either through an error document in the response body or an HTTP error status.
type IdentityProviderError struct {
	// Response is the decoded response body. Nil when the body was not a JSON object.
	Response map[string]any
	Message  string
	Code     int
}

func (e *IdentityProviderError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("oauth: identity provider error %d: %s", e.Code, e.Message)
	}
	return "oauth: identity provider error: " + e.Message
}

// Unwrap allows errors.Is(err, ErrIdentityProvider).
func (e *IdentityProviderError) Unwrap() error {
	return ErrIdentityProvider
}
