package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blogem/welfare-admin/models"
)

func TestPrincipalRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, PrincipalFrom(ctx))
	assert.Empty(t, GetUserID(ctx))

	principal := &models.Principal{ID: "m-1", Role: models.RoleTreasurer}
	ctx = WithPrincipal(ctx, principal)
	assert.Same(t, principal, PrincipalFrom(ctx))
	assert.Equal(t, "m-1", GetUserID(ctx))
}

func TestRequestMetaDefaultsToZero(t *testing.T) {
	assert.Equal(t, RequestMeta{}, RequestMetaFrom(context.Background()))

	ctx := WithRequestMeta(context.Background(), RequestMeta{RequestID: "r-1", IPAddress: "10.0.0.1"})
	assert.Equal(t, "r-1", RequestMetaFrom(ctx).RequestID)
}
