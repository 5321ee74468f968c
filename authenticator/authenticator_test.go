package authenticator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifiedEmail(t *testing.T) {
	tests := []struct {
		name    string
		claims  Claims
		want    string
		wantErr bool
	}{
		{"verified", Claims{"email": "t@example.com", "email_verified": true}, "t@example.com", false},
		{"verified as string", Claims{"email": "t@example.com", "email_verified": "true"}, "t@example.com", false},
		{"unverified", Claims{"email": "t@example.com", "email_verified": false}, "", true},
		{"flag missing", Claims{"email": "t@example.com"}, "", true},
		{"no email", Claims{"email_verified": true}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.claims.VerifiedEmail()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewOpenIDProviderValidatesConfig(t *testing.T) {
	_, err := NewOpenIDProvider(context.Background(), Config{ClientID: "c", ClientSecret: "s", CallbackURL: "http://x/cb"})
	assert.ErrorContains(t, err, "issuer URL is required")

	_, err = NewOpenIDProvider(context.Background(), Config{IssuerURL: "https://id.example.com", ClientSecret: "s", CallbackURL: "http://x/cb"})
	assert.ErrorContains(t, err, "client ID is required")
}
