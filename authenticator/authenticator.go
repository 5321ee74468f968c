package authenticator

import (
	"context"
	"errors"
	"strings"
)

// Config holds OpenID Connect provider configuration
type Config struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}

// ErrEmailNotVerified is returned when the identity provider has not verified the user's email
var ErrEmailNotVerified = errors.New("email address is not verified by the identity provider")

// VerifiedEmail returns the email claim, provided the identity provider marked it verified.
func (c Claims) VerifiedEmail() (string, error) {
	email, _ := c["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errors.New("no email claim in id_token")
	}

	switch verified := c["email_verified"].(type) {
	case bool:
		if verified {
			return email, nil
		}
	case string:
		// Some providers send the flag as a string
		if strings.EqualFold(verified, "true") {
			return email, nil
		}
	}
	return "", ErrEmailNotVerified
}
