package oauth

import (
	"errors"
	"fmt"
	"net/url"
)

// Grant describes an OAuth2 grant used to request an access token.
type Grant interface {
	// String returns the grant_type value sent to the token endpoint.
	String() string

	// RequiredParameters lists the options that must accompany the grant.
	RequiredParameters() []string
}

// GrantType is one of the standard OAuth2 grants.
type GrantType string

const (
	GrantAuthorizationCode GrantType = "authorization_code"
	GrantRefreshToken      GrantType = "refresh_token"
	GrantClientCredentials GrantType = "client_credentials"
	GrantPassword          GrantType = "password"
)

func (g GrantType) String() string { return string(g) }

// RequiredParameters returns nil for unknown grant types.
func (g GrantType) RequiredParameters() []string {
	switch g {
	case GrantAuthorizationCode:
		return []string{"code"}
	case GrantRefreshToken:
		return []string{"refresh_token"}
	case GrantPassword:
		return []string{"username", "password"}
	default:
		return nil
	}
}

func (g GrantType) known() bool {
	switch g {
	case GrantAuthorizationCode, GrantRefreshToken, GrantClientCredentials, GrantPassword:
		return true
	}
	return false
}

// verifyGrant rejects nil grants and GrantType values outside the standard set.
// Custom Grant implementations are accepted as-is.
func verifyGrant(grant Grant) (Grant, error) {
	switch g := grant.(type) {
	case nil:
		return nil, ErrInvalidGrant
	case GrantType:
		if !g.known() {
			return nil, errors.Join(ErrUnsupportedGrant, fmt.Errorf("grant type %q", string(g)))
		}
	}
	return grant, nil
}

// prepareGrantParameters checks required options and merges grant_type, the
// defaults and the options, in that order. Options override defaults.
func prepareGrantParameters(grant Grant, defaults, opts url.Values) (url.Values, error) {
	for _, name := range grant.RequiredParameters() {
		if opts.Get(name) == "" {
			return nil, errors.Join(ErrMissingParameter, fmt.Errorf("parameter %q", name))
		}
	}

	params := url.Values{"grant_type": {grant.String()}}
	for k, v := range defaults {
		params[k] = append([]string(nil), v...)
	}
	for k, v := range opts {
		params[k] = append([]string(nil), v...)
	}
	return params, nil
}
