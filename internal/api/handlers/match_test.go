package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tournament-backend/internal/api/handlers"
	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/mocks"
	"tournament-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MatchHandlerTestSuite defines the test suite for MatchHandler
type MatchHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockMatches *mocks.MockMatchServiceInterface
	mockRoster  *mocks.MockRosterServiceInterface
	handler     *handlers.MatchHandler
	router      *gin.Engine
}

func (suite *MatchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMatches = mocks.NewMockMatchServiceInterface(suite.ctrl)
	suite.mockRoster = mocks.NewMockRosterServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMatchHandler(suite.mockMatches, suite.mockRoster)

	suite.router = gin.New()
	suite.router.POST("/matches", suite.handler.CreateMatch)
	suite.router.GET("/matches/:id", suite.handler.GetMatch)
	suite.router.PUT("/matches/:id/referee", suite.handler.AssignReferee)
	suite.router.PUT("/matches/:id/score", suite.handler.RecordScore)
	suite.router.POST("/matches/:id/events", suite.handler.AddMatchEvent)
	suite.router.GET("/matches/:id/events", suite.handler.GetMatchEvents)
	suite.router.PUT("/matches/:id/roster", suite.handler.SelectRoster)
	suite.router.GET("/matches/:id/roster", suite.handler.GetRoster)
	suite.router.DELETE("/matches/:id", suite.handler.DeleteMatch)
}

func (suite *MatchHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MatchHandlerTestSuite) TestCreateMatch_Success() {
	resp := &service.MatchResponse{
		ID:     uuid.New(),
		Status: models.MatchStatusScheduled,
		Result: "vs",
	}
	suite.mockMatches.EXPECT().Create(gomock.Any()).Return(resp, nil)

	body, _ := json.Marshal(map[string]any{
		"tournament_id": uuid.New(),
		"home_team_id":  uuid.New(),
		"away_team_id":  uuid.New(),
		"match_date":    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"venue":         "Stade Mohammed V",
	})
	req := httptest.NewRequest(http.MethodPost, "/matches", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.MatchResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "vs", got.Result)
}

func (suite *MatchHandlerTestSuite) TestCreateMatch_SameTeamConflict() {
	suite.mockMatches.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrSameTeamMatch)

	teamID := uuid.New()
	body, _ := json.Marshal(map[string]any{
		"tournament_id": uuid.New(),
		"home_team_id":  teamID,
		"away_team_id":  teamID,
		"match_date":    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	req := httptest.NewRequest(http.MethodPost, "/matches", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *MatchHandlerTestSuite) TestCreateMatch_TournamentNotFound() {
	suite.mockMatches.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrTournamentNotFound)

	body, _ := json.Marshal(map[string]any{
		"tournament_id": uuid.New(),
		"home_team_id":  uuid.New(),
		"away_team_id":  uuid.New(),
		"match_date":    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	req := httptest.NewRequest(http.MethodPost, "/matches", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *MatchHandlerTestSuite) TestAssignReferee_Success() {
	matchID := uuid.New()
	refereeID := uuid.New()
	resp := &service.MatchResponse{ID: matchID, RefereeID: &refereeID}
	suite.mockMatches.EXPECT().AssignReferee(matchID, gomock.Any()).DoAndReturn(
		func(id uuid.UUID, ref *uuid.UUID) (*service.MatchResponse, error) {
			assert.NotNil(suite.T(), ref)
			assert.Equal(suite.T(), refereeID, *ref)
			return resp, nil
		})

	body, _ := json.Marshal(map[string]any{"referee_id": refereeID})
	req := httptest.NewRequest(http.MethodPut, "/matches/"+matchID.String()+"/referee", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *MatchHandlerTestSuite) TestAssignReferee_ClearWithNull() {
	matchID := uuid.New()
	resp := &service.MatchResponse{ID: matchID}
	suite.mockMatches.EXPECT().AssignReferee(matchID, gomock.Nil()).Return(resp, nil)

	body := []byte(`{"referee_id": null}`)
	req := httptest.NewRequest(http.MethodPut, "/matches/"+matchID.String()+"/referee", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *MatchHandlerTestSuite) TestAssignReferee_NotAReferee() {
	matchID := uuid.New()
	suite.mockMatches.EXPECT().AssignReferee(matchID, gomock.Any()).Return(nil, apperrors.ErrNotAReferee)

	body, _ := json.Marshal(map[string]any{"referee_id": uuid.New()})
	req := httptest.NewRequest(http.MethodPut, "/matches/"+matchID.String()+"/referee", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *MatchHandlerTestSuite) TestRecordScore_Success() {
	matchID := uuid.New()
	resp := &service.MatchResponse{
		ID:        matchID,
		HomeScore: 2,
		AwayScore: 1,
		Status:    models.MatchStatusCompleted,
		Result:    "2 - 1",
	}
	suite.mockMatches.EXPECT().RecordScore(matchID, gomock.Any()).DoAndReturn(
		func(id uuid.UUID, req *service.RecordScoreRequest) (*service.MatchResponse, error) {
			assert.Equal(suite.T(), 2, *req.HomeScore)
			assert.Equal(suite.T(), 1, *req.AwayScore)
			return resp, nil
		})

	body, _ := json.Marshal(map[string]any{"home_score": 2, "away_score": 1})
	req := httptest.NewRequest(http.MethodPut, "/matches/"+matchID.String()+"/score", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.MatchResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2 - 1", got.Result)
	assert.Equal(suite.T(), models.MatchStatusCompleted, got.Status)
}

func (suite *MatchHandlerTestSuite) TestRecordScore_AlreadyCompleted() {
	matchID := uuid.New()
	suite.mockMatches.EXPECT().RecordScore(matchID, gomock.Any()).Return(nil, apperrors.ErrMatchAlreadyCompleted)

	body, _ := json.Marshal(map[string]any{"home_score": 0, "away_score": 0})
	req := httptest.NewRequest(http.MethodPut, "/matches/"+matchID.String()+"/score", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *MatchHandlerTestSuite) TestAddMatchEvent_Success() {
	matchID := uuid.New()
	playerName := "Hamid Ahaddad"
	view := &models.MatchEventView{
		ID:     uuid.New(),
		Minute: 34,
		Type:   "goal",
		Player: &playerName,
	}
	suite.mockMatches.EXPECT().AddEvent(matchID, gomock.Any()).Return(view, nil)

	body, _ := json.Marshal(map[string]any{
		"minute":     34,
		"event_type": "goal",
		"player_id":  uuid.New(),
	})
	req := httptest.NewRequest(http.MethodPost, "/matches/"+matchID.String()+"/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got models.MatchEventView
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "goal", got.Type)
}

func (suite *MatchHandlerTestSuite) TestGetMatchEvents_Success() {
	matchID := uuid.New()
	events := []models.MatchEventView{
		{ID: uuid.New(), Minute: 12, Type: "goal"},
		{ID: uuid.New(), Minute: 57, Type: "yellow_card"},
	}
	suite.mockMatches.EXPECT().GetEvents(matchID).Return(events, nil)

	req := httptest.NewRequest(http.MethodGet, "/matches/"+matchID.String()+"/events", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []models.MatchEventView
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
}

func (suite *MatchHandlerTestSuite) TestSelectRoster_Success() {
	matchID := uuid.New()
	teamID := uuid.New()
	playerIDs := []uuid.UUID{uuid.New(), uuid.New()}
	selected := []service.PlayerResponse{{ID: playerIDs[0]}, {ID: playerIDs[1]}}
	suite.mockRoster.EXPECT().SelectPlayersForMatch(teamID, matchID, playerIDs).Return(selected, nil)

	body, _ := json.Marshal(map[string]any{"team_id": teamID, "player_ids": playerIDs})
	req := httptest.NewRequest(http.MethodPut, "/matches/"+matchID.String()+"/roster", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.PlayerResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
}

func (suite *MatchHandlerTestSuite) TestSelectRoster_MissingTeamID() {
	matchID := uuid.New()

	body, _ := json.Marshal(map[string]any{"player_ids": []uuid.UUID{uuid.New()}})
	req := httptest.NewRequest(http.MethodPut, "/matches/"+matchID.String()+"/roster", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MatchHandlerTestSuite) TestGetRoster_MatchNotFound() {
	matchID := uuid.New()
	suite.mockRoster.EXPECT().GetSelection(matchID).Return(nil, apperrors.ErrMatchNotFound)

	req := httptest.NewRequest(http.MethodGet, "/matches/"+matchID.String()+"/roster", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *MatchHandlerTestSuite) TestDeleteMatch_Success() {
	matchID := uuid.New()
	suite.mockMatches.EXPECT().Delete(matchID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/matches/"+matchID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestMatchHandlerTestSuite runs the test suite
func TestMatchHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MatchHandlerTestSuite))
}
