package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/welfare-admin/apperrors"
)

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()
	s, err := New("test-secret", "welfare-admin")
	require.NoError(t, err)
	s.now = func() time.Time { return now }
	return s
}

func TestNewRequiresSecret(t *testing.T) {
	s, err := New("", "welfare-admin")
	assert.Nil(t, s)
	assert.True(t, apperrors.Is(err, apperrors.ErrConfiguration))

	var zero *Service
	_, _, err = zero.Issue("member-1")
	assert.True(t, apperrors.Is(err, apperrors.ErrConfiguration))
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	s := newTestService(t, now)

	tok, expiresAt, err := s.Issue("member-1")
	require.NoError(t, err)
	assert.Equal(t, now.Add(30*24*time.Hour), expiresAt)

	id, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "member-1", id)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newTestService(t, issued)
	tok, _, err := s.Issue("member-1")
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(Lifetime - time.Minute) }
	_, err = s.Verify(tok)
	assert.NoError(t, err)

	s.now = func() time.Time { return issued.Add(Lifetime + time.Second) }
	_, err = s.Verify(tok)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidToken))
	assert.Contains(t, err.Error(), "expired")
}

func TestVerifyRejectsForgedAndMalformedTokens(t *testing.T) {
	now := time.Now()
	s := newTestService(t, now)
	tok, _, err := s.Issue("member-1")
	require.NoError(t, err)

	other, err := New("another-secret", "welfare-admin")
	require.NoError(t, err)
	forged, _, err := other.Issue("super-admin-1")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "member-1",
			Issuer:    "welfare-admin",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, candidate := range map[string]string{
		"empty":       "",
		"garbage":     "not-a-token",
		"forged":      forged,
		"tampered":    tampered,
		"alg none":    unsigned,
		"only header": parts[0],
	} {
		_, err := s.Verify(candidate)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidToken), name)
	}
}

func TestVerifyRejectsTokenWithoutExpiry(t *testing.T) {
	s := newTestService(t, time.Now())
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           "member-1",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "member-1", Issuer: "welfare-admin"},
	})
	tok, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = s.Verify(tok)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidToken))
}
