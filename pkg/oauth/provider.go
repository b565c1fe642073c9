package oauth

import (
	"context"

	"golang.org/x/oauth2"
)

// UserInfo represents provider-agnostic user information
// retrieved from an OAuth provider's profile endpoint.
type UserInfo struct {
	ID    string // Provider's unique user identifier
	Email string
	Name  string
}

// Provider abstracts provider-specific OAuth operations.
// Provider implementations handle all provider-specific details internally,
// including endpoint selection and error document parsing.
type Provider interface {
	// Name returns the provider identifier (e.g., "orcid").
	Name() string

	// AuthCodeURL generates the authorization URL for the OAuth flow.
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string

	// Exchange trades an authorization code for tokens.
	Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error)

	// FetchUserInfo retrieves user information using the access token.
	FetchUserInfo(ctx context.Context, token *oauth2.Token) (*UserInfo, error)
}
