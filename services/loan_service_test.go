package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/repositories"
	"github.com/blogem/welfare-admin/repositories/mocks"
)

// LoanServiceTestSuite is a test suite for the loan service
type LoanServiceTestSuite struct {
	suite.Suite
	service     *loanService
	mockLoans   *mocks.MockLoanRepository
	mockMembers *mocks.MockMemberRepository
}

// SetupTest sets up the test suite before each test
func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockLoans = mocks.NewMockLoanRepository(suite.T())
	suite.mockMembers = mocks.NewMockMemberRepository(suite.T())

	suite.service = NewLoanService(suite.mockLoans, suite.mockMembers).(*loanService)
	suite.service.now = func() time.Time { return time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC) }
}

func validLoanForm() *models.LoanForm {
	return &models.LoanForm{
		MemberID: "m-1",
		Amount:   decimal.NewFromInt(50000),
		Reason:   "Medical emergency",
	}
}

// TestCreate_ValidationFailure tests that an invalid form never reaches the store
func (suite *LoanServiceTestSuite) TestCreate_ValidationFailure() {
	loan, err := suite.service.Create(context.Background(), "t-1", &models.LoanForm{Amount: decimal.Zero})

	assert.Nil(suite.T(), loan)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrInvalidRequest))
}

// TestCreate_UnknownMember tests that a loan for a missing member is NotFound and nothing is written
func (suite *LoanServiceTestSuite) TestCreate_UnknownMember() {
	suite.mockMembers.EXPECT().Exists(mock.Anything, "m-1").Return(false, nil)

	_, err := suite.service.Create(context.Background(), "t-1", validLoanForm())

	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrNotFound))
	suite.mockLoans.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

// TestCreate_GeneratesLoanNumber tests loan number generation from the year's highest sequence
func (suite *LoanServiceTestSuite) TestCreate_GeneratesLoanNumber() {
	suite.mockMembers.EXPECT().Exists(mock.Anything, "m-1").Return(true, nil)
	suite.mockLoans.EXPECT().LastSequence(mock.Anything, "LN-2026-").Return(41, nil)
	suite.mockLoans.EXPECT().Create(mock.Anything, mock.MatchedBy(func(l *models.Loan) bool {
		return l.LoanNumber == "LN-2026-0042"
	}), "t-1").Return(nil)

	loan, err := suite.service.Create(context.Background(), "t-1", validLoanForm())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "LN-2026-0042", loan.LoanNumber)
}

// TestCreate_RetriesTakenGeneratedNumber tests that a concurrently taken generated number is retried
func (suite *LoanServiceTestSuite) TestCreate_RetriesTakenGeneratedNumber() {
	conflict := fmt.Errorf("loan number taken: %w", repositories.ErrConflict)

	suite.mockMembers.EXPECT().Exists(mock.Anything, "m-1").Return(true, nil)
	suite.mockLoans.EXPECT().LastSequence(mock.Anything, "LN-2026-").Return(9, nil)
	suite.mockLoans.EXPECT().Create(mock.Anything, mock.MatchedBy(func(l *models.Loan) bool {
		return l.LoanNumber == "LN-2026-0010"
	}), "t-1").Return(conflict).Once()
	suite.mockLoans.EXPECT().Create(mock.Anything, mock.MatchedBy(func(l *models.Loan) bool {
		return l.LoanNumber == "LN-2026-0011"
	}), "t-1").Return(nil).Once()

	loan, err := suite.service.Create(context.Background(), "t-1", validLoanForm())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "LN-2026-0011", loan.LoanNumber)
}

// TestCreate_ExplicitNumberConflict tests that a caller-chosen duplicate number is a Conflict
func (suite *LoanServiceTestSuite) TestCreate_ExplicitNumberConflict() {
	form := validLoanForm()
	form.LoanNumber = "LN-1"

	suite.mockMembers.EXPECT().Exists(mock.Anything, "m-1").Return(true, nil)
	suite.mockLoans.EXPECT().Create(mock.Anything, mock.Anything, "t-1").Return(repositories.ErrConflict)

	_, err := suite.service.Create(context.Background(), "t-1", form)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrConflict))
}

// TestUpdateStatus_InvalidStatus tests status validation
func (suite *LoanServiceTestSuite) TestUpdateStatus_InvalidStatus() {
	_, err := suite.service.UpdateStatus(context.Background(), "t-1", "l-1", &models.LoanStatusForm{Status: "paid"})
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrInvalidRequest))
}

// TestUpdateStatus_VanishedLoan tests that a loan disappearing mid-update is an integrity fault
func (suite *LoanServiceTestSuite) TestUpdateStatus_VanishedLoan() {
	suite.mockLoans.EXPECT().UpdateStatus(mock.Anything, "l-1", models.LoanApproved, "t-1").Return(nil)
	suite.mockLoans.EXPECT().GetByID(mock.Anything, "l-1").Return(nil, repositories.ErrNotFound)

	_, err := suite.service.UpdateStatus(context.Background(), "t-1", "l-1", &models.LoanStatusForm{Status: "Approved"})
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrIntegrity))
}

// TestGetByStatus_Unknown tests that an unknown status filter is rejected
func (suite *LoanServiceTestSuite) TestGetByStatus_Unknown() {
	_, err := suite.service.GetByStatus(context.Background(), "archived")
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrInvalidRequest))
}

// TestGetByID_CorruptRow tests that corrupt stored data surfaces as an integrity fault
func (suite *LoanServiceTestSuite) TestGetByID_CorruptRow() {
	suite.mockLoans.EXPECT().GetByID(mock.Anything, "l-9").Return(nil, fmt.Errorf("scan: %w", repositories.ErrCorrupt))

	_, err := suite.service.GetByID(context.Background(), "l-9")
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrIntegrity))
}

// TestDelete_StoreError tests that an unexpected store error is internal
func (suite *LoanServiceTestSuite) TestDelete_StoreError() {
	suite.mockLoans.EXPECT().Delete(mock.Anything, "l-1").Return(errors.New("io error"))

	err := suite.service.Delete(context.Background(), "l-1")
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrInternal))
}

// TestRunLoanServiceTestSuite runs the test suite
func TestRunLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
