package handlers

import (
	"errors"
	"net/http"

	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchHandler handles HTTP requests for matches
type MatchHandler struct {
	service       service.MatchServiceInterface
	rosterService service.RosterServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(service service.MatchServiceInterface, rosterService service.RosterServiceInterface) *MatchHandler {
	return &MatchHandler{
		service:       service,
		rosterService: rosterService,
	}
}

// AssignRefereeRequest represents the request to assign a referee to a match.
// A null referee_id clears the assignment.
type AssignRefereeRequest struct {
	RefereeID *uuid.UUID `json:"referee_id"`
}

// SelectRosterRequest represents the request to select a team's roster for a match
type SelectRosterRequest struct {
	TeamID    uuid.UUID   `json:"team_id" binding:"required"`
	PlayerIDs []uuid.UUID `json:"player_ids" binding:"required"`
}

// CreateMatch handles POST /api/v1/matches
// @Summary Schedule a match
// @Description Schedule a match between two teams of the same tournament
// @Tags matches
// @Accept json
// @Produce json
// @Param match body service.CreateMatchRequest true "Match data"
// @Success 201 {object} service.MatchResponse "Successfully scheduled match"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Tournament or team not found"
// @Failure 409 {object} map[string]interface{} "Teams invalid for this tournament"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req service.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	match, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTournamentNotFound),
			errors.Is(err, apperrors.ErrTeamNotFound),
			errors.Is(err, apperrors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrSameTeamMatch),
			errors.Is(err, apperrors.ErrTeamsFromOtherTournament),
			errors.Is(err, apperrors.ErrNotAReferee):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, match)
}

// GetMatch handles GET /api/v1/matches/:id
// @Summary Get match by ID
// @Description Get a specific match by its UUID
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchResponse "Successfully retrieved match"
// @Failure 400 {object} map[string]interface{} "Invalid match ID"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID: invalid UUID format"})
		return
	}

	match, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get match", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, match)
}

// AssignReferee handles PUT /api/v1/matches/:id/referee
// @Summary Assign a referee
// @Description Assign a referee to a match or clear the current assignment
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param request body AssignRefereeRequest true "Referee assignment"
// @Success 200 {object} service.MatchResponse "Successfully assigned referee"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Match or user not found"
// @Failure 409 {object} map[string]interface{} "User is not a referee"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/referee [put]
func (h *MatchHandler) AssignReferee(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID: invalid UUID format"})
		return
	}

	var req AssignRefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	match, err := h.service.AssignReferee(id, req.RefereeID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMatchNotFound), errors.Is(err, apperrors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotAReferee):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign referee", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// RecordScore handles PUT /api/v1/matches/:id/score
// @Summary Record the final score
// @Description Record the final score of a match, mark it completed and update both teams' statistics
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param score body service.RecordScoreRequest true "Final score"
// @Success 200 {object} service.MatchResponse "Successfully recorded score"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Failure 409 {object} map[string]interface{} "Match already completed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/score [put]
func (h *MatchHandler) RecordScore(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID: invalid UUID format"})
		return
	}

	var req service.RecordScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	match, err := h.service.RecordScore(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrMatchAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record score", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// AddMatchEvent handles POST /api/v1/matches/:id/events
// @Summary Add a match event
// @Description Append a goal, card, substitution or injury event to the match log
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param event body service.AddMatchEventRequest true "Event data"
// @Success 201 {object} models.MatchEventView "Successfully added event"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/events [post]
func (h *MatchHandler) AddMatchEvent(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID: invalid UUID format"})
		return
	}

	var req service.AddMatchEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	event, err := h.service.AddEvent(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add event", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetMatchEvents handles GET /api/v1/matches/:id/events
// @Summary List match events
// @Description Get the event log of a match in chronological order
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {array} models.MatchEventView "Successfully retrieved events"
// @Failure 400 {object} map[string]interface{} "Invalid match ID"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/events [get]
func (h *MatchHandler) GetMatchEvents(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID: invalid UUID format"})
		return
	}

	events, err := h.service.GetEvents(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

// SelectRoster handles PUT /api/v1/matches/:id/roster
// @Summary Select a team's roster for a match
// @Description Replace the team's previous selection for this match with the given players
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param request body SelectRosterRequest true "Roster selection"
// @Success 200 {array} service.PlayerResponse "Selected players"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Match or team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/roster [put]
func (h *MatchHandler) SelectRoster(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID: invalid UUID format"})
		return
	}

	var req SelectRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	players, err := h.rosterService.SelectPlayersForMatch(req.TeamID, id, req.PlayerIDs)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMatchNotFound), errors.Is(err, apperrors.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select roster", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, players)
}

// GetRoster handles GET /api/v1/matches/:id/roster
// @Summary Get the roster selections of a match
// @Description Get the per-player selection rows recorded for a match
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {array} models.PlayerMatchPerformance "Selection rows"
// @Failure 400 {object} map[string]interface{} "Invalid match ID"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/roster [get]
func (h *MatchHandler) GetRoster(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID: invalid UUID format"})
		return
	}

	selection, err := h.rosterService.GetSelection(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get roster", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, selection)
}

// DeleteMatch handles DELETE /api/v1/matches/:id
// @Summary Delete a match
// @Description Delete a match and its events
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 204 "Successfully deleted match"
// @Failure 400 {object} map[string]interface{} "Invalid match ID"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete match", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
