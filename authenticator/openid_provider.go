package authenticator

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OpenIDProvider signs staff in through any OpenID Connect issuer that supports discovery
type OpenIDProvider struct {
	oauth    oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// NewOpenIDProvider discovers the issuer and creates a provider for staff sign-in
func NewOpenIDProvider(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("discovering %s: %w", cfg.IssuerURL, err)
	}

	return &OpenIDProvider{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

func (c Config) validate() error {
	var missing []error
	if c.IssuerURL == "" {
		missing = append(missing, errors.New("issuer URL is required"))
	}
	if c.ClientID == "" {
		missing = append(missing, errors.New("client ID is required"))
	}
	if c.ClientSecret == "" {
		missing = append(missing, errors.New("client secret is required"))
	}
	if c.CallbackURL == "" {
		missing = append(missing, errors.New("callback URL is required"))
	}
	return errors.Join(missing...)
}

// GetAuthURL returns the issuer's authorization URL carrying state
func (p *OpenIDProvider) GetAuthURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for tokens
func (p *OpenIDProvider) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	if code == "" {
		return nil, errors.New("authorization code is missing")
	}

	exchanged, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	token := &Token{
		AccessToken:  exchanged.AccessToken,
		RefreshToken: exchanged.RefreshToken,
		Expiry:       exchanged.Expiry.Unix(),
	}
	if idToken, ok := exchanged.Extra("id_token").(string); ok {
		token.IDToken = idToken
	}
	return token, nil
}

// GetClaims verifies the ID token and extracts its claims
func (p *OpenIDProvider) GetClaims(ctx context.Context, token *Token) (Claims, error) {
	if token == nil || token.IDToken == "" {
		return nil, errors.New("no id_token in token")
	}

	idToken, err := p.verifier.Verify(ctx, token.IDToken)
	if err != nil {
		return nil, fmt.Errorf("verifying id_token: %w", err)
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("decoding id_token claims: %w", err)
	}
	return claims, nil
}
