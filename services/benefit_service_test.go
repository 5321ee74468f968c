package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/repositories"
	"github.com/blogem/welfare-admin/repositories/mocks"
)

// BenefitServiceTestSuite is a test suite for the benefit service
type BenefitServiceTestSuite struct {
	suite.Suite
	service      BenefitService
	mockBenefits *mocks.MockBenefitRepository
	mockMembers  *mocks.MockMemberRepository
}

// SetupTest sets up the test suite before each test
func (suite *BenefitServiceTestSuite) SetupTest() {
	suite.mockBenefits = mocks.NewMockBenefitRepository(suite.T())
	suite.mockMembers = mocks.NewMockMemberRepository(suite.T())
	suite.service = NewBenefitService(suite.mockBenefits, suite.mockMembers)
}

func validBenefitForm() *models.BenefitForm {
	return &models.BenefitForm{
		MemberID: "m-1",
		Amount:   decimal.NewFromInt(15000),
		Date:     "2026-05-02",
		Details:  map[string]string{"indexNumber": "A-12"},
	}
}

// TestCreate_Success tests that a claim is stored under the requested kind with the actor
func (suite *BenefitServiceTestSuite) TestCreate_Success() {
	suite.mockMembers.EXPECT().Exists(mock.Anything, "m-1").Return(true, nil)
	suite.mockBenefits.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(b *models.Benefit) bool {
			return b.Kind == models.BenefitScholarship && b.MemberID == "m-1" && b.Date.Day() == 2
		}), "t-1").
		Return(nil)

	benefit, err := suite.service.Create(context.Background(), "t-1", models.BenefitScholarship, validBenefitForm())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.BenefitScholarship, benefit.Kind)
}

// TestCreate_UnknownMember tests that a claim for a missing member is NotFound
func (suite *BenefitServiceTestSuite) TestCreate_UnknownMember() {
	suite.mockMembers.EXPECT().Exists(mock.Anything, "m-1").Return(false, nil)

	_, err := suite.service.Create(context.Background(), "t-1", models.BenefitRefund, validBenefitForm())

	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrNotFound))
}

// TestCreate_Validation tests that a missing date never reaches the store
func (suite *BenefitServiceTestSuite) TestCreate_Validation() {
	form := validBenefitForm()
	form.Date = ""

	_, err := suite.service.Create(context.Background(), "t-1", models.BenefitMedical, form)

	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrInvalidRequest))
}

// TestUpdate_KeepsProvenance tests that an update keeps the original creator
func (suite *BenefitServiceTestSuite) TestUpdate_KeepsProvenance() {
	existing := &models.Benefit{ID: "b-1", Kind: models.BenefitMedical, MemberID: "m-1"}
	existing.CreatedBy = "t-0"
	suite.mockBenefits.EXPECT().GetByID(mock.Anything, models.BenefitMedical, "b-1").Return(existing, nil)
	suite.mockBenefits.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(b *models.Benefit) bool {
			return b.ID == "b-1" && b.CreatedBy == "t-0"
		}), "t-1").
		Return(nil)

	benefit, err := suite.service.Update(context.Background(), "t-1", models.BenefitMedical, "b-1", validBenefitForm())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "b-1", benefit.ID)
}

// TestGetByID_Translation tests how store errors surface
func (suite *BenefitServiceTestSuite) TestGetByID_Translation() {
	suite.mockBenefits.EXPECT().GetByID(mock.Anything, models.BenefitDeathFund, "missing").
		Return(nil, fmt.Errorf("death_fund missing: %w", repositories.ErrNotFound))
	suite.mockBenefits.EXPECT().GetByID(mock.Anything, models.BenefitDeathFund, "bad").
		Return(nil, fmt.Errorf("invalid benefit amount: %w", repositories.ErrCorrupt))

	_, err := suite.service.GetByID(context.Background(), models.BenefitDeathFund, "missing")
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrNotFound))
	assert.Contains(suite.T(), err.Error(), "death fund not found")

	_, err = suite.service.GetByID(context.Background(), models.BenefitDeathFund, "bad")
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrIntegrity))
}

// TestBenefitService runs the benefit service test suite
func TestBenefitService(t *testing.T) {
	suite.Run(t, new(BenefitServiceTestSuite))
}
