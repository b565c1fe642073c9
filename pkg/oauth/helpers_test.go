package oauth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oauth2-orcid/pkg/oauth"
)

// orcidRewriteTransport intercepts requests to ORCID hosts and routes them
// to a local handler instead.
type orcidRewriteTransport struct {
	base    http.RoundTripper
	handler http.Handler
}

func (t *orcidRewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if strings.HasSuffix(req.URL.Host, "orcid.org") {
		recorder := httptest.NewRecorder()
		t.handler.ServeHTTP(recorder, req)
		return recorder.Result(), nil
	}
	return t.base.RoundTrip(req)
}

func newTestProvider(t *testing.T, cfg oauth.ORCIDConfig, handler http.Handler) *oauth.ORCIDProvider {
	t.Helper()
	if cfg.ClientID == "" {
		cfg.ClientID = "mock_client_id"
	}
	if cfg.ClientSecret == "" {
		cfg.ClientSecret = "mock_secret"
	}

	transport := &orcidRewriteTransport{base: http.DefaultTransport, handler: handler}
	p, err := oauth.NewORCIDProvider(cfg, oauth.WithHTTPClient(&http.Client{Transport: transport}))
	require.NoError(t, err)
	return p
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
