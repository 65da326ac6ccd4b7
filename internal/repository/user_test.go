//go:build integration
// +build integration

package repository

import (
	"testing"

	"tournament-backend/internal/database/models"
	"tournament-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateEmail tests the unique constraint on email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	dup := suite.factories.User.Create()
	dup.Email = user.Email

	err := suite.repo.Create(dup)
	suite.Error(err)
}

// TestCreateDuplicateUsername tests the unique constraint on username
func (suite *UserRepositoryTestSuite) TestCreateDuplicateUsername() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	dup := suite.factories.User.Create()
	dup.Username = user.Username

	err := suite.repo.Create(dup)
	suite.Error(err)
}

// TestGetByEmail tests looking up a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail(user.Email)
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.repo.GetByEmail("nobody@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByUsername tests looking up a user by username
func (suite *UserRepositoryTestSuite) TestGetByUsername() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByUsername(user.Username)
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

// TestGetByRole tests filtering users by role and the name ordering
func (suite *UserRepositoryTestSuite) TestGetByRole() {
	zahraoui := suite.factories.User.WithRole(models.UserRoleReferee)
	zahraoui.FirstName = "Redouane"
	zahraoui.LastName = "Zahraoui"
	suite.NoError(suite.repo.Create(zahraoui))

	lahlou := suite.factories.User.WithRole(models.UserRoleReferee)
	lahlou.FirstName = "Samir"
	lahlou.LastName = "Lahlou"
	suite.NoError(suite.repo.Create(lahlou))

	coach := suite.factories.User.WithRole(models.UserRoleCoach)
	suite.NoError(suite.repo.Create(coach))

	referees, err := suite.repo.GetByRole(models.UserRoleReferee)
	suite.NoError(err)
	suite.Len(referees, 2)
	suite.Equal("Lahlou", referees[0].LastName)
	suite.Equal("Zahraoui", referees[1].LastName)
}

// TestGetAllPagination tests that GetAll pages and reports the full count
func (suite *UserRepositoryTestSuite) TestGetAllPagination() {
	for i := 0; i < 5; i++ {
		suite.NoError(suite.repo.Create(suite.factories.User.Create()))
	}

	users, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Len(users, 2)
	suite.Equal(int64(5), total)

	users, total, err = suite.repo.GetAll(2, 4)
	suite.NoError(err)
	suite.Len(users, 1)
	suite.Equal(int64(5), total)
}

// TestUpdate tests updating a user
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	user.FirstName = "Mounir"
	err := suite.repo.Update(user)
	suite.NoError(err)

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("Mounir", found.FirstName)
}

// TestDelete tests deleting a user
func (suite *UserRepositoryTestSuite) TestDelete() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	err := suite.repo.Delete(user.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
