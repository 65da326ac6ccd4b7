package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TournamentHandler handles HTTP requests for tournaments
type TournamentHandler struct {
	service      service.TournamentServiceInterface
	matchService service.MatchServiceInterface
	teamService  service.TeamServiceInterface
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(service service.TournamentServiceInterface, matchService service.MatchServiceInterface, teamService service.TeamServiceInterface) *TournamentHandler {
	return &TournamentHandler{
		service:      service,
		matchService: matchService,
		teamService:  teamService,
	}
}

// CreateTournament handles POST /api/v1/tournaments
// @Summary Create a new tournament
// @Description Create a new tournament with the provided details
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournament body service.CreateTournamentRequest true "Tournament data"
// @Success 201 {object} service.TournamentResponse "Successfully created tournament"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tournaments [post]
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req service.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tournament, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tournament", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tournament)
}

// GetTournament handles GET /api/v1/tournaments/:id
// @Summary Get tournament by ID
// @Description Get a specific tournament by its UUID
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID (UUID)"
// @Success 200 {object} service.TournamentResponse "Successfully retrieved tournament"
// @Failure 400 {object} map[string]interface{} "Invalid tournament ID"
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tournaments/{id} [get]
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID: invalid UUID format"})
		return
	}

	tournament, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tournament", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tournament)
}

// ListTournaments handles GET /api/v1/tournaments
// @Summary List all tournaments
// @Description Get all tournaments with pagination support
// @Tags tournaments
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TournamentListResponse "Successfully retrieved tournaments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tournaments [get]
func (h *TournamentHandler) ListTournaments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	tournaments, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tournaments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tournaments)
}

// UpdateTournament handles PUT /api/v1/tournaments/:id
// @Summary Update a tournament
// @Description Update a tournament's details
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID (UUID)"
// @Param tournament body service.UpdateTournamentRequest true "Tournament data"
// @Success 200 {object} service.TournamentResponse "Successfully updated tournament"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tournaments/{id} [put]
func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID: invalid UUID format"})
		return
	}

	var req service.UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tournament, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTournamentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tournament", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, tournament)
}

// DeleteTournament handles DELETE /api/v1/tournaments/:id
// @Summary Delete a tournament
// @Description Delete a tournament and everything scheduled under it
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID (UUID)"
// @Success 204 "Successfully deleted tournament"
// @Failure 400 {object} map[string]interface{} "Invalid tournament ID"
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tournaments/{id} [delete]
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tournament", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStandings handles GET /api/v1/tournaments/:id/standings
// @Summary Get tournament standings
// @Description Get the ranked standings table of a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID (UUID)"
// @Success 200 {array} service.StandingsEntry "Successfully retrieved standings"
// @Failure 400 {object} map[string]interface{} "Invalid tournament ID"
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tournaments/{id}/standings [get]
func (h *TournamentHandler) GetStandings(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID: invalid UUID format"})
		return
	}

	standings, err := h.service.GetStandings(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get standings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, standings)
}

// GetTournamentTeams handles GET /api/v1/tournaments/:id/teams
// @Summary List teams of a tournament
// @Description Get all teams registered in a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID (UUID)"
// @Success 200 {array} service.TeamResponse "Successfully retrieved teams"
// @Failure 400 {object} map[string]interface{} "Invalid tournament ID"
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tournaments/{id}/teams [get]
func (h *TournamentHandler) GetTournamentTeams(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID: invalid UUID format"})
		return
	}

	teams, err := h.teamService.GetByTournament(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list teams", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTournamentMatches handles GET /api/v1/tournaments/:id/matches
// @Summary List matches of a tournament
// @Description Get all matches scheduled in a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID (UUID)"
// @Success 200 {array} service.MatchResponse "Successfully retrieved matches"
// @Failure 400 {object} map[string]interface{} "Invalid tournament ID"
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tournaments/{id}/matches [get]
func (h *TournamentHandler) GetTournamentMatches(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID: invalid UUID format"})
		return
	}

	matches, err := h.matchService.GetByTournament(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list matches", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, matches)
}
