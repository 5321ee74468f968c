package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/repositories"
	"github.com/blogem/welfare-admin/repositories/mocks"
	"github.com/blogem/welfare-admin/token"
)

// AuthServiceTestSuite is a test suite for sign-in and registration
type AuthServiceTestSuite struct {
	suite.Suite
	service     AuthService
	tokens      *token.Service
	mockMembers *mocks.MockMemberRepository
}

// SetupTest sets up the test suite before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	var err error
	suite.tokens, err = token.New("test-secret", "welfare-test")
	require.NoError(suite.T(), err)

	suite.mockMembers = mocks.NewMockMemberRepository(suite.T())
	suite.service = NewAuthService(suite.mockMembers, suite.tokens)
}

func (suite *AuthServiceTestSuite) storedMember(role models.Role, password string) *models.Member {
	hash, err := hashPassword(password)
	require.NoError(suite.T(), err)
	return &models.Member{ID: "m-1", Name: "Kamala", EPF: "1001", Role: role, PasswordHash: hash}
}

// TestLogin_Success tests that a correct password yields a verifiable token and no hash
func (suite *AuthServiceTestSuite) TestLogin_Success() {
	suite.mockMembers.EXPECT().GetCredentials(mock.Anything, "1001").
		Return(suite.storedMember(models.RoleMember, "correct-horse"), nil)

	session, err := suite.service.Login(context.Background(), &models.LoginForm{EPF: "1001", Password: "correct-horse"})

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), session.Member.PasswordHash)

	subject, err := suite.tokens.Verify(session.Token)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "m-1", subject)
}

// TestLogin_WrongPasswordAndUnknownLoginLookAlike tests that both failures are indistinguishable
func (suite *AuthServiceTestSuite) TestLogin_WrongPasswordAndUnknownLoginLookAlike() {
	suite.mockMembers.EXPECT().GetCredentials(mock.Anything, "1001").
		Return(suite.storedMember(models.RoleMember, "correct-horse"), nil)
	suite.mockMembers.EXPECT().GetCredentials(mock.Anything, "9999").
		Return(nil, repositories.ErrNotFound)

	_, wrongPassword := suite.service.Login(context.Background(), &models.LoginForm{EPF: "1001", Password: "battery-staple"})
	_, unknownLogin := suite.service.Login(context.Background(), &models.LoginForm{EPF: "9999", Password: "battery-staple"})

	assert.True(suite.T(), apperrors.Is(wrongPassword, apperrors.ErrUnauthenticated))
	assert.Equal(suite.T(), wrongPassword.Error(), unknownLogin.Error())
}

// TestStaffLogin_RejectsPlainMember tests that the staff login refuses the member role
func (suite *AuthServiceTestSuite) TestStaffLogin_RejectsPlainMember() {
	suite.mockMembers.EXPECT().GetCredentials(mock.Anything, "1001").
		Return(suite.storedMember(models.RoleMember, "correct-horse"), nil)

	_, err := suite.service.StaffLogin(context.Background(), &models.LoginForm{Identifier: "1001", Password: "correct-horse"})
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrUnauthenticated))
}

// TestRegister_StoresHashAndMemberRole tests that self-registration always yields the member role
func (suite *AuthServiceTestSuite) TestRegister_StoresHashAndMemberRole() {
	suite.mockMembers.EXPECT().Create(mock.Anything, mock.MatchedBy(func(m *models.Member) bool {
		return m.Role == models.RoleMember && m.PasswordHash != "" && m.PasswordHash != "correct-horse"
	})).RunAndReturn(func(_ context.Context, m *models.Member) error {
		m.ID = "m-new"
		return nil
	})

	session, err := suite.service.Register(context.Background(), &models.MemberForm{
		Name: "Nimal", EPF: "2002", WelfareNo: "W-2", Password: "correct-horse",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "m-new", session.Member.ID)
	assert.NotEmpty(suite.T(), session.Token)
}

// TestRegister_Duplicate tests that a duplicate EPF number is a Conflict
func (suite *AuthServiceTestSuite) TestRegister_Duplicate() {
	suite.mockMembers.EXPECT().Create(mock.Anything, mock.Anything).Return(repositories.ErrConflict)

	_, err := suite.service.Register(context.Background(), &models.MemberForm{
		Name: "Nimal", EPF: "2002", WelfareNo: "W-2", Password: "correct-horse",
	})
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrConflict))
}

// TestRegisterStaff_OnlySuperAdminCreatesSuperAdmin tests the escalation guard
func (suite *AuthServiceTestSuite) TestRegisterStaff_OnlySuperAdminCreatesSuperAdmin() {
	form := &models.StaffForm{
		MemberForm: models.MemberForm{Name: "Root", EPF: "0001", WelfareNo: "W-0", Password: "correct-horse"},
		Role:       "super_admin",
	}
	admin := &models.Principal{ID: "a-1", Role: models.RoleAdmin}

	_, err := suite.service.RegisterStaff(context.Background(), admin, form)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrForbidden))
}

// TestRegisterStaff_AdminCannotGrantElectedOffice tests that an admin cannot create an office holder
func (suite *AuthServiceTestSuite) TestRegisterStaff_AdminCannotGrantElectedOffice() {
	admin := &models.Principal{ID: "a-1", Role: models.RoleAdmin}

	for _, role := range models.AllRoles() {
		if !role.IsElectedOffice() {
			continue
		}
		form := &models.StaffForm{
			MemberForm: models.MemberForm{Name: "Officer", EPF: "0002", WelfareNo: "W-2", Password: "correct-horse"},
			Role:       string(role),
		}
		_, err := suite.service.RegisterStaff(context.Background(), admin, form)
		assert.True(suite.T(), apperrors.Is(err, apperrors.ErrForbidden), role)
	}
	suite.mockMembers.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

// TestRegisterStaff_SuperAdminGrantsOffice tests that a super admin can appoint a treasurer
func (suite *AuthServiceTestSuite) TestRegisterStaff_SuperAdminGrantsOffice() {
	form := &models.StaffForm{
		MemberForm: models.MemberForm{Name: "Officer", EPF: "0002", WelfareNo: "W-2", Password: "correct-horse"},
		Role:       "treasurer",
	}
	suite.mockMembers.EXPECT().Create(mock.Anything, mock.MatchedBy(func(m *models.Member) bool {
		return m.Role == models.RoleTreasurer
	})).Return(nil)

	member, err := suite.service.RegisterStaff(context.Background(), &models.Principal{ID: "root", Role: models.RoleSuperAdmin}, form)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleTreasurer, member.Role)
}

// TestLoginWithEmail_UnknownEmail tests the OpenID Connect sign-in for an unregistered address
func (suite *AuthServiceTestSuite) TestLoginWithEmail_UnknownEmail() {
	suite.mockMembers.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, repositories.ErrNotFound)

	_, err := suite.service.LoginWithEmail(context.Background(), "nobody@example.com")
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrUnauthenticated))
}

// TestEnsureSuperAdmin_Idempotent tests that an existing bootstrap account is left alone
func (suite *AuthServiceTestSuite) TestEnsureSuperAdmin_Idempotent() {
	suite.mockMembers.EXPECT().GetCredentials(mock.Anything, "0001").Return(&models.Member{ID: "root"}, nil)

	created, err := suite.service.EnsureSuperAdmin(context.Background(), "0001", "correct-horse")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), created)
}

// TestRunAuthServiceTestSuite runs the test suite
func TestRunAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
