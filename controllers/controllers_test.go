package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/models"
)

func TestParseAuditFilter(t *testing.T) {
	q := url.Values{}
	q.Set("type", "ERROR")
	q.Set("event", " loan ")
	q.Set("user", "m-1")
	q.Set("from", "2026-03-01")
	q.Set("to", "2026-03-31")

	filter, err := parseAuditFilter(q)
	require.NoError(t, err)

	assert.Equal(t, models.SeverityError, filter.Severity)
	assert.Equal(t, "loan", filter.Event)
	assert.Equal(t, "m-1", filter.Actor)
	require.NotNil(t, filter.From)
	require.NotNil(t, filter.To)
	assert.True(t, filter.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	// a date-only upper bound includes the whole day
	assert.True(t, filter.To.Equal(time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC)))
}

func TestParseAuditFilterKeepsExactTimestamps(t *testing.T) {
	q := url.Values{}
	q.Set("to", "2026-03-31T12:00:00Z")

	filter, err := parseAuditFilter(q)
	require.NoError(t, err)
	assert.True(t, filter.To.Equal(time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)))
	assert.Nil(t, filter.From)
}

func TestParseAuditFilterRejectsBadInput(t *testing.T) {
	for _, raw := range []string{"type=loud", "from=yesterday", "to=31/03/2026"} {
		q, err := url.ParseQuery(raw)
		require.NoError(t, err)

		_, err = parseAuditFilter(q)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidRequest), raw)
	}
}

func TestIntParam(t *testing.T) {
	q := url.Values{"page": {"3"}, "limit": {"abc"}, "neg": {"-2"}}

	assert.Equal(t, 3, intParam(q, "page", 1))
	assert.Equal(t, 20, intParam(q, "limit", 20))
	assert.Equal(t, -2, intParam(q, "neg", 1))
	assert.Equal(t, 7, intParam(q, "missing", 7))
}

func TestDecodeJSON(t *testing.T) {
	var form models.LoginForm

	err := decodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &form)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidRequest))

	err = decodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{epf:")), &form)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidRequest))

	err = decodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"epf":"7781","password":"x"}`)), &form)
	require.NoError(t, err)
	assert.Equal(t, "7781", form.Login())
}

func TestBenefitControllerNaming(t *testing.T) {
	c := NewBenefitController(nil, models.BenefitDeathFund, "deathfunds")

	assert.Equal(t, "deathfunds", c.Path())
	assert.Equal(t, models.BenefitDeathFund, c.Kind())
	assert.Equal(t, "death_fund.create", c.Event("create"))
}

func TestNewControllersServesEveryBenefitKind(t *testing.T) {
	ctrl := NewControllers(nil, Options{})

	require.Len(t, ctrl.Benefits, len(models.BenefitKinds))
	for i, k := range models.BenefitKinds {
		assert.Equal(t, k.Path, ctrl.Benefits[i].Path())
	}
}
