package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := map[*AppError]int{
		NewInvalidToken("bad", nil):       http.StatusUnauthorized,
		NewUnauthenticated("missing"):     http.StatusUnauthorized,
		NewForbidden("no"):                http.StatusForbidden,
		NewNotFound("gone"):               http.StatusNotFound,
		NewConflict("dup"):                http.StatusConflict,
		NewInvalidRequest("bad input"):    http.StatusBadRequest,
		NewAuditWrite(errors.New("disk")): http.StatusInternalServerError,
		NewIntegrity("corrupt", nil):      http.StatusInternalServerError,
		NewConfiguration("no secret"):     http.StatusInternalServerError,
	}
	for err, status := range cases {
		assert.Equal(t, status, err.HTTPStatus, string(err.Type))
	}
}

func TestWrapKeepsTypedErrorsThroughWrapping(t *testing.T) {
	inner := NewNotFound("loan not found")
	wrapped := fmt.Errorf("get loan: %w", inner)

	assert.Same(t, inner, Wrap(wrapped))
	assert.True(t, Is(wrapped, ErrNotFound))
	assert.Equal(t, ErrInternal, TypeOf(errors.New("boom")))
	assert.Nil(t, Wrap(nil))
}

func TestPublicMessageHidesServerFaults(t *testing.T) {
	err := Wrap(errors.New("dial tcp 10.0.0.3:5432: connection refused"))
	assert.Equal(t, "internal server error", err.PublicMessage())
	assert.NotContains(t, err.PublicMessage(), "10.0.0.3")

	assert.Equal(t, "failed to record audit event", NewAuditWrite(errors.New("disk full")).PublicMessage())
	assert.Equal(t, "loan not found", NewNotFound("loan not found").PublicMessage())
}
