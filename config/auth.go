package config

import (
	"fmt"
	"strings"

	domainauth "github.com/pitchscout/scout-ui-api/internal/domain/auth"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses OAuth/OIDC for authentication.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"pitchscout"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"pitchscout"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID string `env:"USER_ID" envDefault:"dev-user"`
	Email  string `env:"EMAIL"   envDefault:"dev@example.com"`
	// Role is the raw role the dev identity carries; legacy names like
	// "subscriber" work here too so the mapping path can be exercised.
	Role string `env:"ROLE" envDefault:"scout"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// LenientRoles keeps the historical role mapping: raw role strings
	// outside the legacy table pass through unchanged. Set to false to map
	// them to the unknown role instead, which locks those users out of every
	// role-gated tree.
	LenientRoles bool `env:"AUTH_LENIENT_ROLES" envDefault:"true"`
}

// RoleMapper returns the role mapper matching the configured strictness.
func (a AuthConfig) RoleMapper() domainauth.RoleMapper {
	return domainauth.RoleMapper{Strict: !a.LenientRoles}
}
