package service_test

import (
	"testing"

	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/mocks"
	"tournament-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockTeamRepositoryInterface
	mockTournamentRepo *mocks.MockTournamentRepositoryInterface
	mockPlayerRepo     *mocks.MockPlayerRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockStatsRepo      *mocks.MockTeamStatsRepositoryInterface
	teamService        *service.TeamService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockTournamentRepo = mocks.NewMockTournamentRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockStatsRepo = mocks.NewMockTeamStatsRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.teamService = service.NewTeamService(suite.mockRepo, suite.mockTournamentRepo, suite.mockPlayerRepo, suite.mockUserRepo, suite.mockStatsRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests registering a team in a tournament
func (suite *TeamServiceTestSuite) TestCreateTeam() {
	tournamentID := uuid.New()
	req := &service.CreateTeamRequest{
		Name:         "Raja CA",
		City:         "Casablanca",
		TournamentID: tournamentID,
	}

	suite.mockTournamentRepo.EXPECT().
		GetByID(tournamentID).
		Return(&models.Tournament{BaseModel: models.BaseModel{ID: tournamentID}, MaxTeams: 16}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		CountByTournamentID(tournamentID).
		Return(int64(3), nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByName(tournamentID, req.Name).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockStatsRepo.EXPECT().
		GetOrCreateByTeamID(gomock.Any()).
		Return(&models.TeamStats{}, nil).
		Times(1)

	response, err := suite.teamService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), tournamentID, response.TournamentID)
}

// TestCreateTeamTournamentFull tests registering a team when the tournament is full
func (suite *TeamServiceTestSuite) TestCreateTeamTournamentFull() {
	tournamentID := uuid.New()
	req := &service.CreateTeamRequest{
		Name:         "Raja CA",
		TournamentID: tournamentID,
	}

	suite.mockTournamentRepo.EXPECT().
		GetByID(tournamentID).
		Return(&models.Tournament{BaseModel: models.BaseModel{ID: tournamentID}, MaxTeams: 4}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		CountByTournamentID(tournamentID).
		Return(int64(4), nil).
		Times(1)

	response, err := suite.teamService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTournamentFull)
}

// TestCreateTeamDuplicateName tests registering a team whose name is taken in the tournament
func (suite *TeamServiceTestSuite) TestCreateTeamDuplicateName() {
	tournamentID := uuid.New()
	req := &service.CreateTeamRequest{
		Name:         "Raja CA",
		TournamentID: tournamentID,
	}

	suite.mockTournamentRepo.EXPECT().
		GetByID(tournamentID).
		Return(&models.Tournament{BaseModel: models.BaseModel{ID: tournamentID}, MaxTeams: 16}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		CountByTournamentID(tournamentID).
		Return(int64(2), nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByName(tournamentID, req.Name).
		Return(&models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: req.Name}, nil).
		Times(1)

	response, err := suite.teamService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestCreateTeamCoachAlreadyAssigned tests assigning a coach who leads another team
func (suite *TeamServiceTestSuite) TestCreateTeamCoachAlreadyAssigned() {
	tournamentID := uuid.New()
	coachID := uuid.New()
	req := &service.CreateTeamRequest{
		Name:         "Wydad AC",
		TournamentID: tournamentID,
		CoachID:      &coachID,
	}

	suite.mockTournamentRepo.EXPECT().
		GetByID(tournamentID).
		Return(&models.Tournament{BaseModel: models.BaseModel{ID: tournamentID}, MaxTeams: 16}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		CountByTournamentID(tournamentID).
		Return(int64(1), nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByName(tournamentID, req.Name).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(coachID).
		Return(&models.User{BaseModel: models.BaseModel{ID: coachID}, Role: models.UserRoleCoach}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByCoachID(coachID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: uuid.New()}}, nil).
		Times(1)

	response, err := suite.teamService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCoachAlreadyAssigned)
}

// TestCreateTeamCoachWrongRole tests assigning a user without the coach role
func (suite *TeamServiceTestSuite) TestCreateTeamCoachWrongRole() {
	tournamentID := uuid.New()
	coachID := uuid.New()
	req := &service.CreateTeamRequest{
		Name:         "Wydad AC",
		TournamentID: tournamentID,
		CoachID:      &coachID,
	}

	suite.mockTournamentRepo.EXPECT().
		GetByID(tournamentID).
		Return(&models.Tournament{BaseModel: models.BaseModel{ID: tournamentID}, MaxTeams: 16}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		CountByTournamentID(tournamentID).
		Return(int64(1), nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByName(tournamentID, req.Name).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(coachID).
		Return(&models.User{BaseModel: models.BaseModel{ID: coachID}, Role: models.UserRoleReferee}, nil).
		Times(1)

	response, err := suite.teamService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateTeamKeepsCurrentCoach tests that re-assigning the same coach to the
// same team is not a conflict
func (suite *TeamServiceTestSuite) TestUpdateTeamKeepsCurrentCoach() {
	teamID := uuid.New()
	coachID := uuid.New()
	req := &service.UpdateTeamRequest{CoachID: &coachID}

	suite.mockRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}, Name: "Raja CA", CoachID: &coachID}, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(coachID).
		Return(&models.User{BaseModel: models.BaseModel{ID: coachID}, Role: models.UserRoleCoach}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByCoachID(coachID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.teamService.Update(teamID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), &coachID, response.CoachID)
}

// TestGetAvailablePlayers tests listing a team's available players
func (suite *TeamServiceTestSuite) TestGetAvailablePlayers() {
	teamID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}}, nil).
		Times(1)

	suite.mockPlayerRepo.EXPECT().
		GetAvailableByTeamID(teamID).
		Return([]models.Player{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Anas Zniti", IsAvailable: true},
		}, nil).
		Times(1)

	players, err := suite.teamService.GetAvailablePlayers(teamID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), players, 1)
	assert.Equal(suite.T(), "Anas Zniti", players[0].Name)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
