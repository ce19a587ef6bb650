package oauth

// InstagramConfig holds Instagram OAuth configuration.
// Endpoint and field-list fields are optional; defaults are applied at
// construction (see NewInstagramProvider).
type InstagramConfig struct {
	ClientID     string   `env:"INSTAGRAM_OAUTH_CLIENT_ID,required"`
	ClientSecret string   `env:"INSTAGRAM_OAUTH_CLIENT_SECRET,required"`
	RedirectURL  string   `env:"INSTAGRAM_OAUTH_REDIRECT_URL" envDefault:""`
	Scopes       []string `env:"INSTAGRAM_OAUTH_SCOPES" envSeparator:","`

	// AuthURL and TokenURL override the provider's published OAuth2 endpoints.
	AuthURL  string `env:"INSTAGRAM_OAUTH_AUTH_URL" envDefault:""`
	TokenURL string `env:"INSTAGRAM_OAUTH_TOKEN_URL" envDefault:""`

	// ProfileURL overrides the profile endpoint; ProfileFields selects which
	// profile attributes are requested (canonical or provider-native names).
	ProfileURL    string   `env:"INSTAGRAM_OAUTH_PROFILE_URL" envDefault:""`
	ProfileFields []string `env:"INSTAGRAM_OAUTH_PROFILE_FIELDS" envSeparator:","`
}
