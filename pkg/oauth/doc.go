// Package oauth provides an ORCID OAuth2 provider built on golang.org/x/oauth2.
//
// The provider supplies ORCID endpoint URLs, default scopes and headers,
// parsing of ORCID error documents, token requests for the standard grants,
// and a read-only view over the ORCID v2.0 record returned for a token.
//
// # Features
//
//   - Provider interface for pluggable OAuth2 implementations
//   - Production and sandbox hosts, public (pub.) and member (api.) record APIs
//   - Error documents normalized into *IdentityProviderError (message, code, payload)
//   - Anonymous or bearer-authenticated token requests
//   - ORCIDResourceOwner accessors that never fail on missing fields
//   - Functional options for custom HTTP clients and loggers
//   - Configuration struct with env tags for environment-based setup
//
// # Usage
//
//	provider, err := oauth.NewORCIDProvider(oauth.ORCIDConfig{
//		ClientID:     os.Getenv("ORCID_OAUTH_CLIENT_ID"),
//		ClientSecret: os.Getenv("ORCID_OAUTH_CLIENT_SECRET"),
//		RedirectURL:  "https://example.com/auth/orcid/callback",
//		Sandbox:      true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Generate authorization URL
//	url := provider.AuthCodeURL("random-state-string")
//
//	// Exchange code for token (in callback handler)
//	token, err := provider.Exchange(ctx, code, "")
//	if err != nil {
//		// handle error
//	}
//
//	// Read the record of the authenticated ORCID iD
//	owner, err := provider.FetchResourceOwner(ctx, token)
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(owner.ID(), owner.Name(), owner.Email())
//
// The ORCID iD issued with the token is available through ResourceOwnerID.
//
// # Emails
//
// Email returns the primary address, or the last listed address when none is
// flagged primary. PrimaryEmail never falls back and returns "" instead.
// Emails lists every visible address.
//
// # Testing
//
// Use WithHTTPClient to route requests to a local handler:
//
//	provider, err := oauth.NewORCIDProvider(cfg, oauth.WithHTTPClient(&http.Client{Transport: rewrite}))
//
// # Error Handling
//
// Errors reported by ORCID are returned as *IdentityProviderError and match
// ErrIdentityProvider. Three shapes are recognized, in order: an OAuth error
// document ("error", "error_description"), an ORCID API error document
// ("error-code", "developer-message"), and a bare HTTP error status.
//
//	var ipErr *oauth.IdentityProviderError
//	if errors.As(err, &ipErr) {
//		log.Printf("orcid rejected request: code=%d msg=%s", ipErr.Code, ipErr.Message)
//	}
//
// Other failure modes use sentinel errors:
//
//   - ErrMissingClientID, ErrMissingClientSecret: constructor called without credentials
//   - ErrInvalidGrant, ErrUnsupportedGrant, ErrMissingParameter: bad grant input
//   - ErrFetchFailed: HTTP request to ORCID failed
//   - ErrDecodeFailed: ORCID returned a non-JSON body with a success status
//   - ErrMissingAccessToken: token response carried no access_token
//
// # Security
//
//   - Always validate the state parameter to prevent CSRF attacks
//   - Use HTTPS redirect URIs in production
//   - Store tokens securely (encrypted at rest, never in URLs)
//   - Keep client secrets out of source control (use environment variables)
package oauth
