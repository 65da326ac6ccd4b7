package service_test

import (
	"testing"
	"time"

	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/mocks"
	"tournament-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MatchServiceTestSuite defines the test suite for MatchService
type MatchServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockMatchRepositoryInterface
	mockTournamentRepo *mocks.MockTournamentRepositoryInterface
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockEventRepo      *mocks.MockMatchEventRepositoryInterface
	mockTeamStatsRepo  *mocks.MockTeamStatsRepositoryInterface
	mockPerfRepo       *mocks.MockPerformanceRepositoryInterface
	matchService       *service.MatchService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *MatchServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.mockTournamentRepo = mocks.NewMockTournamentRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockEventRepo = mocks.NewMockMatchEventRepositoryInterface(suite.ctrl)
	suite.mockTeamStatsRepo = mocks.NewMockTeamStatsRepositoryInterface(suite.ctrl)
	suite.mockPerfRepo = mocks.NewMockPerformanceRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.matchService = service.NewMatchService(
		suite.mockRepo,
		suite.mockTournamentRepo,
		suite.mockTeamRepo,
		suite.mockUserRepo,
		suite.mockEventRepo,
		suite.mockTeamStatsRepo,
		suite.mockPerfRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *MatchServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func intPtr(v int) *int { return &v }

// TestCreateMatchSameTeam tests scheduling a match where a team plays itself
func (suite *MatchServiceTestSuite) TestCreateMatchSameTeam() {
	teamID := uuid.New()
	req := &service.CreateMatchRequest{
		TournamentID: uuid.New(),
		HomeTeamID:   teamID,
		AwayTeamID:   teamID,
		MatchDate:    time.Now().AddDate(0, 0, 3),
	}

	response, err := suite.matchService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSameTeamMatch)
}

// TestCreateMatchTeamFromOtherTournament tests scheduling with a foreign team
func (suite *MatchServiceTestSuite) TestCreateMatchTeamFromOtherTournament() {
	tournamentID := uuid.New()
	homeID := uuid.New()
	awayID := uuid.New()
	req := &service.CreateMatchRequest{
		TournamentID: tournamentID,
		HomeTeamID:   homeID,
		AwayTeamID:   awayID,
		MatchDate:    time.Now().AddDate(0, 0, 3),
	}

	suite.mockTournamentRepo.EXPECT().
		GetByID(tournamentID).
		Return(&models.Tournament{BaseModel: models.BaseModel{ID: tournamentID}}, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(homeID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: homeID}, TournamentID: tournamentID}, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(awayID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: awayID}, TournamentID: uuid.New()}, nil).
		Times(1)

	response, err := suite.matchService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamsFromOtherTournament)
}

// TestCreateMatchRefereeWrongRole tests scheduling with a non-referee official
func (suite *MatchServiceTestSuite) TestCreateMatchRefereeWrongRole() {
	tournamentID := uuid.New()
	homeID := uuid.New()
	awayID := uuid.New()
	refereeID := uuid.New()
	req := &service.CreateMatchRequest{
		TournamentID: tournamentID,
		HomeTeamID:   homeID,
		AwayTeamID:   awayID,
		MatchDate:    time.Now().AddDate(0, 0, 3),
		RefereeID:    &refereeID,
	}

	suite.mockTournamentRepo.EXPECT().
		GetByID(tournamentID).
		Return(&models.Tournament{BaseModel: models.BaseModel{ID: tournamentID}}, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(homeID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: homeID}, TournamentID: tournamentID}, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(awayID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: awayID}, TournamentID: tournamentID}, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(refereeID).
		Return(&models.User{BaseModel: models.BaseModel{ID: refereeID}, Role: models.UserRoleCoach}, nil).
		Times(1)

	response, err := suite.matchService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAReferee)
}

// TestCreateMatchDefaultsRound tests that an omitted round number defaults to 1
func (suite *MatchServiceTestSuite) TestCreateMatchDefaultsRound() {
	tournamentID := uuid.New()
	homeID := uuid.New()
	awayID := uuid.New()
	req := &service.CreateMatchRequest{
		TournamentID: tournamentID,
		HomeTeamID:   homeID,
		AwayTeamID:   awayID,
		MatchDate:    time.Now().AddDate(0, 0, 3),
	}

	suite.mockTournamentRepo.EXPECT().
		GetByID(tournamentID).
		Return(&models.Tournament{BaseModel: models.BaseModel{ID: tournamentID}}, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(homeID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: homeID}, TournamentID: tournamentID}, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(awayID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: awayID}, TournamentID: tournamentID}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.matchService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.RoundNumber)
	assert.Equal(suite.T(), models.MatchStatusScheduled, response.Status)
	assert.Equal(suite.T(), "vs", response.Result)
}

// TestRecordScore tests recording a final score and folding it into both teams
func (suite *MatchServiceTestSuite) TestRecordScore() {
	matchID := uuid.New()
	homeID := uuid.New()
	awayID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(matchID).
		Return(&models.Match{
			BaseModel:  models.BaseModel{ID: matchID},
			HomeTeamID: homeID,
			AwayTeamID: awayID,
			Status:     models.MatchStatusScheduled,
		}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	homeStats := &models.TeamStats{TeamID: homeID}
	awayStats := &models.TeamStats{TeamID: awayID}

	suite.mockTeamStatsRepo.EXPECT().GetOrCreateByTeamID(homeID).Return(homeStats, nil).Times(1)
	suite.mockTeamStatsRepo.EXPECT().Update(homeStats).Return(nil).Times(1)
	suite.mockTeamStatsRepo.EXPECT().GetOrCreateByTeamID(awayID).Return(awayStats, nil).Times(1)
	suite.mockTeamStatsRepo.EXPECT().Update(awayStats).Return(nil).Times(1)

	response, err := suite.matchService.RecordScore(matchID, &service.RecordScoreRequest{
		HomeScore: intPtr(2),
		AwayScore: intPtr(1),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MatchStatusCompleted, response.Status)
	assert.Equal(suite.T(), "2 - 1", response.Result)

	// The winner takes 3 points, the loser none
	assert.Equal(suite.T(), 3, homeStats.Points)
	assert.Equal(suite.T(), 1, homeStats.Wins)
	assert.Equal(suite.T(), 0, awayStats.Points)
	assert.Equal(suite.T(), 1, awayStats.Losses)
	assert.Equal(suite.T(), 1, homeStats.MatchesPlayed)
	assert.Equal(suite.T(), 1, awayStats.MatchesPlayed)
}

// TestRecordScoreAlreadyCompleted tests that a completed match rejects a second score
func (suite *MatchServiceTestSuite) TestRecordScoreAlreadyCompleted() {
	matchID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(matchID).
		Return(&models.Match{
			BaseModel: models.BaseModel{ID: matchID},
			Status:    models.MatchStatusCompleted,
			HomeScore: 2,
			AwayScore: 1,
		}, nil).
		Times(1)

	response, err := suite.matchService.RecordScore(matchID, &service.RecordScoreRequest{
		HomeScore: intPtr(4),
		AwayScore: intPtr(0),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchAlreadyCompleted)
}

// TestAddGoalEventBumpsPerformance tests that a player goal event rolls up into
// the player's performance row
func (suite *MatchServiceTestSuite) TestAddGoalEventBumpsPerformance() {
	matchID := uuid.New()
	playerID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(matchID).
		Return(&models.Match{BaseModel: models.BaseModel{ID: matchID}}, nil).
		Times(1)

	suite.mockEventRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(e *models.MatchEvent) error {
			e.ID = uuid.New()
			return nil
		}).
		Times(1)

	perf := &models.PlayerMatchPerformance{PlayerID: playerID, MatchID: matchID}
	suite.mockPerfRepo.EXPECT().
		GetByPlayerAndMatch(playerID, matchID).
		Return(perf, nil).
		Times(1)

	suite.mockPerfRepo.EXPECT().
		Update(perf).
		Return(nil).
		Times(1)

	suite.mockEventRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.MatchEvent, error) {
			return &models.MatchEvent{
				BaseModel: models.BaseModel{ID: id},
				MatchID:   matchID,
				Minute:    34,
				EventType: models.EventTypeGoal,
				PlayerID:  &playerID,
				Player:    &models.Player{Name: "Hamid Ahaddad"},
				Timestamp: time.Now().UTC(),
			}, nil
		}).
		Times(1)

	view, err := suite.matchService.AddEvent(matchID, &service.AddMatchEventRequest{
		Minute:    34,
		EventType: models.EventTypeGoal,
		PlayerID:  &playerID,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), view)
	assert.Equal(suite.T(), "goal", view.Type)
	assert.NotNil(suite.T(), view.Player)
	assert.Equal(suite.T(), "Hamid Ahaddad", *view.Player)
	assert.Equal(suite.T(), 1, perf.Goals)
}

// TestAddCardEventBumpsTeamStats tests that a team-bound card event rolls up
// into the team's aggregates
func (suite *MatchServiceTestSuite) TestAddCardEventBumpsTeamStats() {
	matchID := uuid.New()
	teamID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(matchID).
		Return(&models.Match{BaseModel: models.BaseModel{ID: matchID}}, nil).
		Times(1)

	suite.mockEventRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(e *models.MatchEvent) error {
			e.ID = uuid.New()
			return nil
		}).
		Times(1)

	stats := &models.TeamStats{TeamID: teamID}
	suite.mockTeamStatsRepo.EXPECT().
		GetOrCreateByTeamID(teamID).
		Return(stats, nil).
		Times(1)

	suite.mockTeamStatsRepo.EXPECT().
		Update(stats).
		Return(nil).
		Times(1)

	suite.mockEventRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.MatchEvent, error) {
			return &models.MatchEvent{
				BaseModel: models.BaseModel{ID: id},
				MatchID:   matchID,
				Minute:    78,
				EventType: models.EventTypeYellowCard,
				TeamID:    &teamID,
				Timestamp: time.Now().UTC(),
			}, nil
		}).
		Times(1)

	view, err := suite.matchService.AddEvent(matchID, &service.AddMatchEventRequest{
		Minute:    78,
		EventType: models.EventTypeYellowCard,
		TeamID:    &teamID,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), view)
	assert.Equal(suite.T(), 1, stats.YellowCards)
	assert.Equal(suite.T(), 0, stats.RedCards)
}

// TestAssignRefereeClears tests that assigning a nil referee clears the slot
func (suite *MatchServiceTestSuite) TestAssignRefereeClears() {
	matchID := uuid.New()
	previous := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(matchID).
		Return(&models.Match{BaseModel: models.BaseModel{ID: matchID}, RefereeID: &previous}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(m *models.Match) error {
			assert.Nil(suite.T(), m.RefereeID)
			return nil
		}).
		Times(1)

	response, err := suite.matchService.AssignReferee(matchID, nil)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), response.RefereeID)
}

// TestMatchServiceTestSuite runs the test suite
func TestMatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceTestSuite))
}
