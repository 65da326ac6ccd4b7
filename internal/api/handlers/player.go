package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlayerHandler handles HTTP requests for players
type PlayerHandler struct {
	service   service.PlayerServiceInterface
	uploadDir string
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(service service.PlayerServiceInterface, uploadDir string) *PlayerHandler {
	return &PlayerHandler{
		service:   service,
		uploadDir: uploadDir,
	}
}

// CreatePlayer handles POST /api/v1/players
// @Summary Register a player
// @Description Register a new player on a team
// @Tags players
// @Accept json
// @Produce json
// @Param player body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} service.PlayerResponse "Successfully created player"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 409 {object} map[string]interface{} "Jersey number taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	player, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrJerseyTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create player", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetPlayer handles GET /api/v1/players/:id
// @Summary Get player by ID
// @Description Get a specific player by its UUID
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {object} service.PlayerResponse "Successfully retrieved player"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID: invalid UUID format"})
		return
	}

	player, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get player", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, player)
}

// UpdatePlayer handles PUT /api/v1/players/:id
// @Summary Update a player
// @Description Update a player's details
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Param player body service.UpdatePlayerRequest true "Player data"
// @Success 200 {object} service.PlayerResponse "Successfully updated player"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 409 {object} map[string]interface{} "Jersey number taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID: invalid UUID format"})
		return
	}

	var req service.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	player, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPlayerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrJerseyTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update player", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, player)
}

// DeletePlayer handles DELETE /api/v1/players/:id
// @Summary Delete a player
// @Description Remove a player from their team
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 204 "Successfully deleted player"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete player", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleAvailability handles POST /api/v1/players/:id/toggle-availability
// @Summary Toggle player availability
// @Description Flip the player's availability flag and return the new state
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {object} map[string]interface{} "New availability state"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /players/{id}/toggle-availability [post]
func (h *PlayerHandler) ToggleAvailability(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID: invalid UUID format"})
		return
	}

	available, err := h.service.ToggleAvailability(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle availability", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "is_available": available})
}

// GetPlayerStats handles GET /api/v1/players/:id/stats
// @Summary Get player statistics
// @Description Get the aggregated statistics of a player
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {object} models.PlayerStats "Successfully retrieved stats"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /players/{id}/stats [get]
func (h *PlayerHandler) GetPlayerStats(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID: invalid UUID format"})
		return
	}

	stats, err := h.service.GetStats(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get player stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// RecalculatePlayerStats handles POST /api/v1/players/:id/stats/recalculate
// @Summary Recalculate player statistics
// @Description Rebuild the player's aggregates from their recorded match performances
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {object} models.PlayerStats "Successfully recalculated stats"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /players/{id}/stats/recalculate [post]
func (h *PlayerHandler) RecalculatePlayerStats(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID: invalid UUID format"})
		return
	}

	stats, err := h.service.RecalculateStats(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recalculate stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UploadPlayerPhoto handles POST /api/v1/players/:id/photo
// @Summary Upload a player photo
// @Description Attach a jpg or png photo to the player profile
// @Tags players
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Param photo formData file true "Player photo (jpg or png)"
// @Success 200 {object} service.PlayerResponse "Successfully uploaded photo"
// @Failure 400 {object} map[string]interface{} "Invalid request or file type"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /players/{id}/photo [post]
func (h *PlayerHandler) UploadPlayerPhoto(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID: invalid UUID format"})
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo file is required", "details": err.Error()})
		return
	}

	player, err := h.service.AttachPhoto(id, header)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPlayerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidPhotoType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo", "details": err.Error()})
		}
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo", "details": err.Error()})
		return
	}
	if err := c.SaveUploadedFile(header, filepath.Join(h.uploadDir, player.PhotoFilename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, player)
}
