package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/blogem/welfare-admin/apperrors"
)

// Lifetime is how long an issued token stays valid. It is fixed at issuance.
const Lifetime = 30 * 24 * time.Hour

// Claims represents the JWT claims carried by a welfare token
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Service issues and verifies signed identity tokens. It keeps no server-side state.
type Service struct {
	signingKey []byte
	issuer     string
	now        func() time.Time
}

// New creates a token service. An empty secret is a configuration error.
func New(secret, issuer string) (*Service, error) {
	if secret == "" {
		return nil, apperrors.NewConfiguration("token signing secret is not configured")
	}
	return &Service{
		signingKey: []byte(secret),
		issuer:     issuer,
		now:        time.Now,
	}, nil
}

// Issue signs a token for principalID that expires Lifetime from now.
func (s *Service) Issue(principalID string) (string, time.Time, error) {
	if s == nil || len(s.signingKey) == 0 {
		return "", time.Time{}, apperrors.NewConfiguration("token signing secret is not configured")
	}
	if principalID == "" {
		return "", time.Time{}, errors.New("principal id is required")
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(Lifetime)

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: principalID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	})

	signed, err := newToken.SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks signature, algorithm and expiry and returns the principal id.
func (s *Service) Verify(tokenString string) (string, error) {
	if s == nil || len(s.signingKey) == 0 {
		return "", apperrors.NewConfiguration("token signing secret is not configured")
	}
	if tokenString == "" {
		return "", apperrors.NewInvalidToken("missing token", nil)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.NewInvalidToken("token has expired", err)
		}
		return "", apperrors.NewInvalidToken("invalid token", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", apperrors.NewInvalidToken("invalid token claims", nil)
	}

	principalID := claims.Subject
	if principalID == "" {
		principalID = claims.UserID
	}
	if principalID == "" {
		return "", apperrors.NewInvalidToken("token has no subject", nil)
	}
	return principalID, nil
}
