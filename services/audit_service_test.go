package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/logger"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/repositories/mocks"
)

// AuditServiceTestSuite tests the audit write and read paths
type AuditServiceTestSuite struct {
	suite.Suite
	service   AuditService
	mockAudit *mocks.MockAuditRepository
	fallback  *bytes.Buffer
	now       time.Time
}

// SetupTest sets up the test suite before each test
func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockAudit = mocks.NewMockAuditRepository(suite.T())
	suite.fallback = &bytes.Buffer{}
	suite.now = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	suite.service = NewAuditService(suite.mockAudit, AuditOptions{
		WriteTimeout: time.Second,
		Fallback:     logger.NewFallback(suite.fallback),
		Now:          func() time.Time { return suite.now },
	})
}

// TestAppend_AssignsActor tests that the actor is carried onto the stored event
func (suite *AuditServiceTestSuite) TestAppend_AssignsActor() {
	suite.mockAudit.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *models.AuditEvent) bool {
		return e.Severity == models.SeverityInfo && e.Event == "loan.create" && e.Actor != nil && *e.Actor == "u-1"
	})).RunAndReturn(func(_ context.Context, e *models.AuditEvent) error {
		e.ID = 7
		return nil
	})

	event, err := suite.service.Append(context.Background(), AuditEntry{
		Severity: models.SeverityInfo,
		Event:    "loan.create",
		Actor:    "u-1",
		Message:  "created",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), event.ID)
}

// TestAppend_NoActor tests that an empty actor is stored as null
func (suite *AuditServiceTestSuite) TestAppend_NoActor() {
	suite.mockAudit.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *models.AuditEvent) bool {
		return e.Actor == nil
	})).Return(nil)

	_, err := suite.service.Append(context.Background(), AuditEntry{Severity: models.SeverityWarn, Event: "auth.login.failed"})
	assert.NoError(suite.T(), err)
}

// TestAppend_StoreFailure tests that a store failure becomes an AuditWriteError
func (suite *AuditServiceTestSuite) TestAppend_StoreFailure() {
	suite.mockAudit.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	event, err := suite.service.Append(context.Background(), AuditEntry{Severity: models.SeverityInfo, Event: "x"})

	assert.Nil(suite.T(), event)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrAuditWrite))
}

// TestAppend_RejectsUnknownSeverity tests that nothing outside the closed severity set is written
func (suite *AuditServiceTestSuite) TestAppend_RejectsUnknownSeverity() {
	_, err := suite.service.Append(context.Background(), AuditEntry{Severity: "fatal", Event: "x"})
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrInvalidRequest))
}

// TestAppend_SurvivesCancelledRequest tests that a client disconnect does not abort the write
func (suite *AuditServiceTestSuite) TestAppend_SurvivesCancelledRequest() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite.mockAudit.EXPECT().Append(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, _ *models.AuditEvent) error {
		return ctx.Err()
	})

	_, err := suite.service.Append(ctx, AuditEntry{Severity: models.SeverityInfo, Event: "member.delete"})
	assert.NoError(suite.T(), err)
}

// TestRecord_FallsBackOnFailure tests that a failed best-effort write lands on the fallback channel
func (suite *AuditServiceTestSuite) TestRecord_FallsBackOnFailure() {
	suite.mockAudit.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	event := suite.service.Record(context.Background(), AuditEntry{
		Severity: models.SeverityInfo,
		Event:    "loan.create",
		Actor:    "treasurer-1",
		Message:  "Loan created",
		Data:     map[string]any{"loanId": "l-1"},
	})
	assert.Nil(suite.T(), event)

	var line map[string]any
	assert.NoError(suite.T(), json.Unmarshal(suite.fallback.Bytes(), &line))
	assert.Equal(suite.T(), "audit_fallback", line["channel"])
	assert.Equal(suite.T(), "loan.create", line["event"])
	assert.Equal(suite.T(), "treasurer-1", line["actor"])
	assert.Contains(suite.T(), line["error"], "database is locked")
}

// TestQuery_ClampsPagination tests that out-of-range page bounds are clamped before the store sees them
func (suite *AuditServiceTestSuite) TestQuery_ClampsPagination() {
	filter := models.AuditFilter{Severity: models.SeverityError}
	suite.mockAudit.EXPECT().Query(mock.Anything, filter, 1, 100).Return(&models.AuditPage{}, nil)

	_, err := suite.service.Query(context.Background(), filter, -4, 5000)
	assert.NoError(suite.T(), err)
}

// TestQuery_RejectsInvertedRange tests that from after to is a request error
func (suite *AuditServiceTestSuite) TestQuery_RejectsInvertedRange() {
	from := suite.now
	to := suite.now.Add(-time.Hour)

	_, err := suite.service.Query(context.Background(), models.AuditFilter{From: &from, To: &to}, 1, 20)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrInvalidRequest))
}

// TestStats_UsesRecentWindow tests that recent counts start 24 hours before now
func (suite *AuditServiceTestSuite) TestStats_UsesRecentWindow() {
	suite.mockAudit.EXPECT().Stats(mock.Anything, suite.now.Add(-24*time.Hour)).
		Return(&models.AuditStats{TotalLogs: 3, RecentLogs: 1}, nil)

	stats, err := suite.service.Stats(context.Background())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, stats.TotalLogs)
}

// TestRunAuditServiceTestSuite runs the test suite
func TestRunAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
