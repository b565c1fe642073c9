package oauth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/oauth2-orcid/pkg/logger"
)

const (
	// ORCIDProviderName is the identifier for ORCID OAuth provider.
	ORCIDProviderName = "orcid"

	// ORCIDResourceOwnerIDKey is the token response field carrying the ORCID iD.
	ORCIDResourceOwnerIDKey = "orcid"

	orcidDomain = "orcid.org"
)

// ORCIDDefaultScopes returns the default scopes for ORCID OAuth.
// "/authenticate" is the minimum needed to read the record.
func ORCIDDefaultScopes() []string {
	return []string{"/authenticate"}
}

// ORCIDProvider implements Provider for ORCID OAuth.
type ORCIDProvider struct {
	httpClient   *http.Client
	logger       *slog.Logger
	clientID     string
	clientSecret string
	redirectURL  string
	scopes       []string
	sandbox      bool
	member       bool
}

// NewORCIDProvider creates a new ORCID OAuth provider.
// Returns an error if ClientID or ClientSecret is empty.
func NewORCIDProvider(cfg ORCIDConfig, opts ...Option) (*ORCIDProvider, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if cfg.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}

	o := options{
		httpClient: http.DefaultClient,
		logger:     logger.NewNope(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = http.DefaultClient
	}
	if o.logger == nil {
		o.logger = logger.NewNope()
	}

	return &ORCIDProvider{
		httpClient:   o.httpClient,
		logger:       o.logger.With(slog.String("provider", ORCIDProviderName)),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURL:  cfg.RedirectURL,
		scopes:       slices.Clone(cfg.Scopes),
		sandbox:      cfg.Sandbox,
		member:       cfg.Member,
	}, nil
}

// Name returns the provider identifier.
func (p *ORCIDProvider) Name() string {
	return ORCIDProviderName
}

// BaseAuthorizationURL returns the authorization endpoint.
func (p *ORCIDProvider) BaseAuthorizationURL() string {
	return "https://" + p.sandboxPrefix() + orcidDomain + "/oauth/authorize"
}

// BaseAccessTokenURL returns the token endpoint. params is not used.
func (p *ORCIDProvider) BaseAccessTokenURL(_ url.Values) string {
	return "https://" + p.sandboxPrefix() + orcidDomain + "/oauth/token"
}

// ResourceOwnerDetailsURL returns the record URL for the token's ORCID iD,
// on the member API when configured, otherwise on the public API.
func (p *ORCIDProvider) ResourceOwnerDetailsURL(token *oauth2.Token) string {
	api := "pub."
	if p.member {
		api = "api."
	}
	return "https://" + api + p.sandboxPrefix() + orcidDomain + "/v2.0/" + ResourceOwnerID(token) + "/record"
}

func (p *ORCIDProvider) sandboxPrefix() string {
	if p.sandbox {
		return "sandbox."
	}
	return ""
}

// DefaultScopes returns the scopes required to read the resource owner.
func (p *ORCIDProvider) DefaultScopes() []string {
	return ORCIDDefaultScopes()
}

// DefaultHeaders returns the headers sent with every provider request.
func (p *ORCIDProvider) DefaultHeaders() http.Header {
	return http.Header{"Accept": {"application/json"}}
}

// Scopes returns the default scopes followed by any configured extras.
func (p *ORCIDProvider) Scopes() []string {
	scopes := p.DefaultScopes()
	for _, s := range p.scopes {
		if s != "" && !slices.Contains(scopes, s) {
			scopes = append(scopes, s)
		}
	}
	return scopes
}

// AuthCodeURL generates the authorization URL.
func (p *ORCIDProvider) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return p.oauthConfig().AuthCodeURL(state, opts...)
}

func (p *ORCIDProvider) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     p.clientID,
		ClientSecret: p.clientSecret,
		RedirectURL:  p.redirectURL,
		Scopes:       p.Scopes(),
		Endpoint: oauth2.Endpoint{
			AuthURL:   p.BaseAuthorizationURL(),
			TokenURL:  p.BaseAccessTokenURL(nil),
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// Exchange trades an authorization code for tokens.
// A non-empty redirectURI overrides the configured one.
func (p *ORCIDProvider) Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	opts := url.Values{"code": {code}}
	if redirectURI != "" {
		opts.Set("redirect_uri", redirectURI)
	}
	return p.FetchAccessToken(ctx, GrantAuthorizationCode, opts, nil)
}

// RefreshToken trades a refresh token for a new access token.
func (p *ORCIDProvider) RefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	return p.FetchAccessToken(ctx, GrantRefreshToken, url.Values{"refresh_token": {refreshToken}}, nil)
}

// FetchAccessToken requests an access token for the grant.
// When existing is non-nil the token request is sent with that bearer token.
// Provider error documents are returned as *IdentityProviderError.
func (p *ORCIDProvider) FetchAccessToken(ctx context.Context, grant Grant, opts url.Values, existing *oauth2.Token) (*oauth2.Token, error) {
	grant, err := verifyGrant(grant)
	if err != nil {
		return nil, err
	}

	params, err := prepareGrantParameters(grant, url.Values{
		"client_id":     {p.clientID},
		"client_secret": {p.clientSecret},
		"redirect_uri":  {p.redirectURL},
	}, opts)
	if err != nil {
		return nil, err
	}

	req, err := p.AccessTokenRequest(ctx, params, existing)
	if err != nil {
		return nil, err
	}

	p.logger.DebugContext(ctx, "requesting access token",
		slog.String("grant_type", grant.String()),
		slog.Bool("authenticated", existing != nil),
	)

	data, err := p.send(ctx, req)
	if err != nil {
		return nil, err
	}

	return tokenFromResponse(data)
}

// AccessTokenRequest builds the token endpoint request. A nil existing token
// yields an anonymous request; otherwise the bearer header is attached.
func (p *ORCIDProvider) AccessTokenRequest(ctx context.Context, params url.Values, existing *oauth2.Token) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseAccessTokenURL(params), strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}
	p.applyDefaultHeaders(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if existing != nil {
		authorizeRequest(req, existing)
	}
	return req, nil
}

// CheckResponse reports provider errors found in a decoded response.
// An "error" field takes precedence over "error-code", which takes precedence
// over an HTTP error status.
func (p *ORCIDProvider) CheckResponse(resp *http.Response, data map[string]any) error {
	switch {
	case !isEmpty(data["error"]):
		msg := stringValue(data["error"])
		if desc := data["error_description"]; !isEmpty(desc) {
			msg += ": " + stringValue(desc)
		}
		return &IdentityProviderError{Message: msg, Response: data}

	case !isEmpty(data["error-code"]):
		var msg string
		if dev := data["developer-message"]; !isEmpty(dev) {
			msg = stringValue(dev)
		}
		return &IdentityProviderError{Message: msg, Code: intValue(data["error-code"]), Response: data}

	case resp != nil && resp.StatusCode >= http.StatusBadRequest:
		return &IdentityProviderError{Message: reasonPhrase(resp), Code: resp.StatusCode, Response: data}
	}
	return nil
}

// CreateResourceOwner wraps a decoded record document.
func (p *ORCIDProvider) CreateResourceOwner(data map[string]any, _ *oauth2.Token) *ORCIDResourceOwner {
	return NewORCIDResourceOwner(data)
}

// FetchResourceOwner retrieves the record of the token's ORCID iD.
func (p *ORCIDProvider) FetchResourceOwner(ctx context.Context, token *oauth2.Token) (*ORCIDResourceOwner, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.ResourceOwnerDetailsURL(token), nil)
	if err != nil {
		return nil, fmt.Errorf("build record request: %w", err)
	}
	p.applyDefaultHeaders(req)
	authorizeRequest(req, token)

	p.logger.DebugContext(ctx, "fetching resource owner",
		slog.String("orcid", ResourceOwnerID(token)),
		slog.Bool("member", p.member),
	)

	data, err := p.send(ctx, req)
	if err != nil {
		return nil, err
	}
	return p.CreateResourceOwner(data, token), nil
}

// FetchUserInfo retrieves user information from the ORCID record.
func (p *ORCIDProvider) FetchUserInfo(ctx context.Context, token *oauth2.Token) (*UserInfo, error) {
	owner, err := p.FetchResourceOwner(ctx, token)
	if err != nil {
		return nil, err
	}

	name := owner.Name()
	if name == "" {
		name = strings.TrimSpace(owner.GivenName() + " " + owner.FamilyName())
	}

	return &UserInfo{
		ID:    owner.ID(),
		Email: owner.Email(),
		Name:  name,
	}, nil
}

func (p *ORCIDProvider) applyDefaultHeaders(req *http.Request) {
	for k, v := range p.DefaultHeaders() {
		req.Header[k] = v
	}
}

// send performs the request, decodes the body and runs CheckResponse.
func (p *ORCIDProvider) send(ctx context.Context, req *http.Request) (map[string]any, error) {
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err))
	}
	defer resp.Body.Close()

	data, err := decodeResponse(resp)
	if err != nil {
		return nil, err
	}

	if err := p.CheckResponse(resp, data); err != nil {
		p.logger.WarnContext(ctx, "identity provider error",
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return data, nil
}

// ResourceOwnerID returns the ORCID iD recorded in the token response,
// or "" when the token does not carry one.
func ResourceOwnerID(token *oauth2.Token) string {
	if token == nil {
		return ""
	}
	id, _ := token.Extra(ORCIDResourceOwnerIDKey).(string)
	return id
}

func tokenFromResponse(data map[string]any) (*oauth2.Token, error) {
	access := stringValue(data["access_token"])
	if access == "" {
		return nil, ErrMissingAccessToken
	}

	token := &oauth2.Token{
		AccessToken:  access,
		TokenType:    stringValue(data["token_type"]),
		RefreshToken: stringValue(data["refresh_token"]),
	}
	if secs := intValue(data["expires_in"]); secs > 0 {
		token.ExpiresIn = int64(secs)
		token.Expiry = time.Now().Add(time.Duration(secs) * time.Second)
	}
	return token.WithExtra(data), nil
}
