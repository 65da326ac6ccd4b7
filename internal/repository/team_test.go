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

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTournament persists a tournament for teams to register in
func (suite *TeamRepositoryTestSuite) createTournament() *models.Tournament {
	tournament := suite.factories.Tournament.Create()
	err := NewTournamentRepository(suite.baseTestSuite.DB).Create(tournament)
	suite.NoError(err)
	return tournament
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	tournament := suite.createTournament()

	team := suite.factories.Team.WithTournament(tournament.ID)
	err := suite.repo.Create(team)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
}

// TestGetByName tests the name lookup scoped to one tournament
func (suite *TeamRepositoryTestSuite) TestGetByName() {
	tournament := suite.createTournament()
	other := suite.createTournament()

	team := suite.factories.Team.WithTournament(tournament.ID)
	team.Name = "Raja CA"
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByName(tournament.ID, "Raja CA")
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	// Same name in a different tournament is a different namespace
	_, err = suite.repo.GetByName(other.ID, "Raja CA")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCountByTournamentID tests counting registered teams
func (suite *TeamRepositoryTestSuite) TestCountByTournamentID() {
	tournament := suite.createTournament()
	other := suite.createTournament()

	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Team.WithTournament(tournament.ID)))
	}
	suite.NoError(suite.repo.Create(suite.factories.Team.WithTournament(other.ID)))

	count, err := suite.repo.CountByTournamentID(tournament.ID)
	suite.NoError(err)
	suite.Equal(int64(3), count)
}

// TestGetByCoachID tests finding the team a coach runs
func (suite *TeamRepositoryTestSuite) TestGetByCoachID() {
	tournament := suite.createTournament()

	coach := suite.factories.User.WithRole(models.UserRoleCoach)
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(coach))

	team := suite.factories.Team.WithTournament(tournament.ID)
	team.CoachID = &coach.ID
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByCoachID(coach.ID)
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.GetByCoachID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetWithPlayers tests that the roster comes back with the team
func (suite *TeamRepositoryTestSuite) TestGetWithPlayers() {
	tournament := suite.createTournament()

	team := suite.factories.Team.WithTournament(tournament.ID)
	suite.NoError(suite.repo.Create(team))

	playerRepo := NewPlayerRepository(suite.baseTestSuite.DB)
	for i := 0; i < 2; i++ {
		suite.NoError(playerRepo.Create(suite.factories.Player.WithTeam(team.ID)))
	}

	found, err := suite.repo.GetWithPlayers(team.ID)
	suite.NoError(err)
	suite.Len(found.Players, 2)
}

// TestGetWithCoach tests that the coach comes back with the team
func (suite *TeamRepositoryTestSuite) TestGetWithCoach() {
	tournament := suite.createTournament()

	coach := suite.factories.User.WithRole(models.UserRoleCoach)
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(coach))

	team := suite.factories.Team.WithTournament(tournament.ID)
	team.CoachID = &coach.ID
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetWithCoach(team.ID)
	suite.NoError(err)
	suite.NotNil(found.Coach)
	suite.Equal(coach.ID, found.Coach.ID)
}

// TestDelete tests deleting a team
func (suite *TeamRepositoryTestSuite) TestDelete() {
	tournament := suite.createTournament()

	team := suite.factories.Team.WithTournament(tournament.ID)
	suite.NoError(suite.repo.Create(team))

	err := suite.repo.Delete(team.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
