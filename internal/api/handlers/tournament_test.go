package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tournament-backend/internal/api/handlers"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/mocks"
	"tournament-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TournamentHandlerTestSuite defines the test suite for TournamentHandler
type TournamentHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTournaments *mocks.MockTournamentServiceInterface
	mockMatches     *mocks.MockMatchServiceInterface
	mockTeams       *mocks.MockTeamServiceInterface
	handler         *handlers.TournamentHandler
	router          *gin.Engine
}

func (suite *TournamentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTournaments = mocks.NewMockTournamentServiceInterface(suite.ctrl)
	suite.mockMatches = mocks.NewMockMatchServiceInterface(suite.ctrl)
	suite.mockTeams = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTournamentHandler(suite.mockTournaments, suite.mockMatches, suite.mockTeams)

	suite.router = gin.New()
	suite.router.POST("/tournaments", suite.handler.CreateTournament)
	suite.router.GET("/tournaments", suite.handler.ListTournaments)
	suite.router.GET("/tournaments/:id", suite.handler.GetTournament)
	suite.router.PUT("/tournaments/:id", suite.handler.UpdateTournament)
	suite.router.DELETE("/tournaments/:id", suite.handler.DeleteTournament)
	suite.router.GET("/tournaments/:id/standings", suite.handler.GetStandings)
}

func (suite *TournamentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TournamentHandlerTestSuite) TestCreateTournament_Success() {
	id := uuid.New()
	resp := &service.TournamentResponse{
		ID:       id,
		Name:     "Botola Pro 2026",
		MaxTeams: 16,
		Status:   "registration",
	}
	suite.mockTournaments.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(req *service.CreateTournamentRequest) (*service.TournamentResponse, error) {
			assert.Equal(suite.T(), "Botola Pro 2026", req.Name)
			return resp, nil
		})

	body, _ := json.Marshal(map[string]any{
		"name":       "Botola Pro 2026",
		"start_date": time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339),
		"max_teams":  16,
	})
	req := httptest.NewRequest(http.MethodPost, "/tournaments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.TournamentResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, got.ID)
	assert.Equal(suite.T(), "Botola Pro 2026", got.Name)
	assert.Equal(suite.T(), 16, got.MaxTeams)
}

func (suite *TournamentHandlerTestSuite) TestCreateTournament_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/tournaments", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TournamentHandlerTestSuite) TestCreateTournament_ValidationError() {
	suite.mockTournaments.EXPECT().Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("Name", "failed on the 'min' rule"))

	body, _ := json.Marshal(map[string]any{
		"name":       "ab",
		"start_date": time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339),
	})
	req := httptest.NewRequest(http.MethodPost, "/tournaments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Name")
}

func (suite *TournamentHandlerTestSuite) TestGetTournament_NotFound() {
	id := uuid.New()
	suite.mockTournaments.EXPECT().GetByID(id).Return(nil, apperrors.ErrTournamentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/tournaments/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TournamentHandlerTestSuite) TestGetTournament_InvalidUUID() {
	req := httptest.NewRequest(http.MethodGet, "/tournaments/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TournamentHandlerTestSuite) TestListTournaments_DefaultPagination() {
	resp := &service.TournamentListResponse{
		Tournaments: []service.TournamentResponse{{ID: uuid.New(), Name: "Coupe du Trone 2026"}},
		Total:       1,
		Page:        1,
		PageSize:    20,
	}
	suite.mockTournaments.EXPECT().GetAll(1, 20).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/tournaments", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.TournamentListResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Tournaments, 1)
}

func (suite *TournamentHandlerTestSuite) TestListTournaments_BoundsNormalization() {
	// page=0 falls back to 1, page_size=500 falls back to 20
	resp := &service.TournamentListResponse{Tournaments: []service.TournamentResponse{}, Page: 1, PageSize: 20}
	suite.mockTournaments.EXPECT().GetAll(1, 20).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/tournaments?page=0&page_size=500", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TournamentHandlerTestSuite) TestUpdateTournament_NotFound() {
	id := uuid.New()
	suite.mockTournaments.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.ErrTournamentNotFound)

	body, _ := json.Marshal(map[string]any{"name": "Renamed Cup"})
	req := httptest.NewRequest(http.MethodPut, "/tournaments/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TournamentHandlerTestSuite) TestUpdateTournament_InvalidStatus() {
	id := uuid.New()
	suite.mockTournaments.EXPECT().Update(id, gomock.Any()).
		Return(nil, apperrors.NewValidationError("Status", "failed on the 'oneof' rule"))

	body, _ := json.Marshal(map[string]any{"status": "archived"})
	req := httptest.NewRequest(http.MethodPut, "/tournaments/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Status")
}

func (suite *TournamentHandlerTestSuite) TestDeleteTournament_Success() {
	id := uuid.New()
	suite.mockTournaments.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/tournaments/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Empty(suite.T(), w.Body.Bytes())
}

func (suite *TournamentHandlerTestSuite) TestGetStandings_Success() {
	id := uuid.New()
	standings := []service.StandingsEntry{
		{Rank: 1, TeamName: "Raja CA", Points: 9},
		{Rank: 2, TeamName: "Wydad AC", Points: 6},
	}
	suite.mockTournaments.EXPECT().GetStandings(id).Return(standings, nil)

	req := httptest.NewRequest(http.MethodGet, "/tournaments/"+id.String()+"/standings", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.StandingsEntry
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), 1, got[0].Rank)
	assert.Equal(suite.T(), "Raja CA", got[0].TeamName)
}

func (suite *TournamentHandlerTestSuite) TestGetStandings_NotFound() {
	id := uuid.New()
	suite.mockTournaments.EXPECT().GetStandings(id).Return(nil, apperrors.ErrTournamentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/tournaments/"+id.String()+"/standings", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestTournamentHandlerTestSuite runs the test suite
func TestTournamentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TournamentHandlerTestSuite))
}
