package repository

import (
	"errors"

	"tournament-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerStatsRepository handles database operations for per-player aggregates
type PlayerStatsRepository struct {
	db *gorm.DB
}

// NewPlayerStatsRepository creates a new player stats repository
func NewPlayerStatsRepository(db *gorm.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

// Create creates a new player stats row
func (r *PlayerStatsRepository) Create(stats *models.PlayerStats) error {
	return r.db.Create(stats).Error
}

// GetByPlayerID retrieves the stats row for a player
func (r *PlayerStatsRepository) GetByPlayerID(playerID uuid.UUID) (*models.PlayerStats, error) {
	var stats models.PlayerStats
	err := r.db.First(&stats, "player_id = ?", playerID).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetOrCreateByPlayerID returns the player's stats row, creating a zeroed one if absent
func (r *PlayerStatsRepository) GetOrCreateByPlayerID(playerID uuid.UUID) (*models.PlayerStats, error) {
	stats, err := r.GetByPlayerID(playerID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	stats = &models.PlayerStats{PlayerID: playerID}
	if err := r.db.Create(stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// Update updates a player stats row
func (r *PlayerStatsRepository) Update(stats *models.PlayerStats) error {
	return r.db.Save(stats).Error
}
