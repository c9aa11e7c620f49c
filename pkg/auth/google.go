package auth

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// NewGoogleOAuthConfig returns the authorization code flow config for Google sign-in.
func NewGoogleOAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     endpoints.Google,
		Scopes:       []string{"openid", "email", "profile"},
	}
}
