package service_test

import (
	"mime/multipart"
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

// PlayerServiceTestSuite defines the test suite for PlayerService
type PlayerServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockPlayerRepositoryInterface
	mockTeamRepo  *mocks.MockTeamRepositoryInterface
	mockStatsRepo *mocks.MockPlayerStatsRepositoryInterface
	mockPerfRepo  *mocks.MockPerformanceRepositoryInterface
	playerService *service.PlayerService
	validator     *validator.Validate
}

// SetupTest sets up the test suite
func (suite *PlayerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockStatsRepo = mocks.NewMockPlayerStatsRepositoryInterface(suite.ctrl)
	suite.mockPerfRepo = mocks.NewMockPerformanceRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.playerService = service.NewPlayerService(suite.mockRepo, suite.mockTeamRepo, suite.mockStatsRepo, suite.mockPerfRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *PlayerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePlayer tests adding a player to a team
func (suite *PlayerServiceTestSuite) TestCreatePlayer() {
	teamID := uuid.New()
	req := &service.CreatePlayerRequest{
		Name:         "Anas Zniti",
		Position:     models.PositionGoalkeeper,
		JerseyNumber: 1,
		Age:          37,
		TeamID:       teamID,
	}

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByTeamAndJersey(teamID, 1).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockStatsRepo.EXPECT().
		GetOrCreateByPlayerID(gomock.Any()).
		Return(&models.PlayerStats{}, nil).
		Times(1)

	response, err := suite.playerService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.True(suite.T(), response.IsAvailable)
}

// TestCreatePlayerJerseyTaken tests adding a player with a taken jersey number
func (suite *PlayerServiceTestSuite) TestCreatePlayerJerseyTaken() {
	teamID := uuid.New()
	req := &service.CreatePlayerRequest{
		Name:         "Anas Zniti",
		Position:     models.PositionGoalkeeper,
		JerseyNumber: 1,
		TeamID:       teamID,
	}

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByTeamAndJersey(teamID, 1).
		Return(&models.Player{BaseModel: models.BaseModel{ID: uuid.New()}, JerseyNumber: 1}, nil).
		Times(1)

	response, err := suite.playerService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestToggleAvailabilityRoundTrip tests that toggling twice restores the flag
func (suite *PlayerServiceTestSuite) TestToggleAvailabilityRoundTrip() {
	playerID := uuid.New()
	player := &models.Player{BaseModel: models.BaseModel{ID: playerID}, IsAvailable: true}

	suite.mockRepo.EXPECT().GetByID(playerID).Return(player, nil).Times(2)
	suite.mockRepo.EXPECT().Update(player).Return(nil).Times(2)

	available, err := suite.playerService.ToggleAvailability(playerID)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), available)

	available, err = suite.playerService.ToggleAvailability(playerID)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), available)
}

// TestUpdatePlayerJerseyConflict tests moving a player onto a taken jersey number
func (suite *PlayerServiceTestSuite) TestUpdatePlayerJerseyConflict() {
	playerID := uuid.New()
	teamID := uuid.New()
	newJersey := 10

	suite.mockRepo.EXPECT().
		GetByID(playerID).
		Return(&models.Player{BaseModel: models.BaseModel{ID: playerID}, TeamID: teamID, JerseyNumber: 7}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByTeamAndJersey(teamID, newJersey).
		Return(&models.Player{BaseModel: models.BaseModel{ID: uuid.New()}, JerseyNumber: newJersey}, nil).
		Times(1)

	response, err := suite.playerService.Update(playerID, &service.UpdatePlayerRequest{JerseyNumber: &newJersey})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestRecalculateStats tests rebuilding a player's aggregate from performances
func (suite *PlayerServiceTestSuite) TestRecalculateStats() {
	playerID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(playerID).
		Return(&models.Player{BaseModel: models.BaseModel{ID: playerID}}, nil).
		Times(1)

	stats := &models.PlayerStats{PlayerID: playerID, Goals: 99}
	suite.mockStatsRepo.EXPECT().
		GetOrCreateByPlayerID(playerID).
		Return(stats, nil).
		Times(1)

	suite.mockPerfRepo.EXPECT().
		GetByPlayerID(playerID).
		Return([]models.PlayerMatchPerformance{
			{PlayerID: playerID, Goals: 2, MinutesPlayed: 90, Passes: 40, PassesCompleted: 30, IsPlaying: true},
			{PlayerID: playerID, Goals: 1, YellowCards: 1, MinutesPlayed: 45, Passes: 10, PassesCompleted: 10, IsPlaying: true},
			{PlayerID: playerID, IsSelected: true}, // selected but never played
		}, nil).
		Times(1)

	suite.mockStatsRepo.EXPECT().
		Update(stats).
		Return(nil).
		Times(1)

	result, err := suite.playerService.RecalculateStats(playerID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, result.Goals)
	assert.Equal(suite.T(), 1, result.YellowCards)
	assert.Equal(suite.T(), 2, result.MatchesPlayed)
	assert.Equal(suite.T(), 135, result.MinutesPlayed)
	assert.InDelta(suite.T(), 80.0, result.PassAccuracy, 0.01)
}

// TestAttachPhotoRejectsBadExtension tests that non-image uploads are rejected
func (suite *PlayerServiceTestSuite) TestAttachPhotoRejectsBadExtension() {
	playerID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(playerID).
		Return(&models.Player{BaseModel: models.BaseModel{ID: playerID}}, nil).
		Times(1)

	header := &multipart.FileHeader{Filename: "headshot.pdf"}
	response, err := suite.playerService.AttachPhoto(playerID, header)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPhotoType)
}

// TestAttachPhotoNamesFileAfterPlayer tests the stored photo filename
func (suite *PlayerServiceTestSuite) TestAttachPhotoNamesFileAfterPlayer() {
	playerID := uuid.New()
	player := &models.Player{BaseModel: models.BaseModel{ID: playerID}}

	suite.mockRepo.EXPECT().GetByID(playerID).Return(player, nil).Times(1)
	suite.mockRepo.EXPECT().Update(player).Return(nil).Times(1)

	header := &multipart.FileHeader{Filename: "Headshot.JPG"}
	response, err := suite.playerService.AttachPhoto(playerID, header)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), playerID.String()+".jpg", response.PhotoFilename)
}

// TestPlayerServiceTestSuite runs the test suite
func TestPlayerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}
