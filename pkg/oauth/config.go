package oauth

// ORCIDConfig holds ORCID OAuth configuration.
// Sandbox targets sandbox.orcid.org; Member reads profiles from the member API
// (api.orcid.org) instead of the public one (pub.orcid.org).
type ORCIDConfig struct {
	ClientID     string   `env:"ORCID_OAUTH_CLIENT_ID,required"`
	ClientSecret string   `env:"ORCID_OAUTH_CLIENT_SECRET,required"`
	RedirectURL  string   `env:"ORCID_OAUTH_REDIRECT_URL" envDefault:""`
	Scopes       []string `env:"ORCID_OAUTH_SCOPES" envSeparator:","`
	Sandbox      bool     `env:"ORCID_OAUTH_SANDBOX" envDefault:"false"`
	Member       bool     `env:"ORCID_OAUTH_MEMBER" envDefault:"false"`
}
