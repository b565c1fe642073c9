package oauth

import (
	"net/http"

	"golang.org/x/oauth2"
)

// authorizeRequest attaches the token as a bearer Authorization header.
// A nil token or one without an access token leaves the request unchanged.
func authorizeRequest(req *http.Request, token *oauth2.Token) {
	if token == nil || token.AccessToken == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
}
