package repository

import (
	"tournament-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchEventRepository handles database operations for match events
type MatchEventRepository struct {
	db *gorm.DB
}

// NewMatchEventRepository creates a new match event repository
func NewMatchEventRepository(db *gorm.DB) *MatchEventRepository {
	return &MatchEventRepository{db: db}
}

// Create appends a new event to a match's log
func (r *MatchEventRepository) Create(event *models.MatchEvent) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event by ID with its team and player preloaded
func (r *MatchEventRepository) GetByID(id uuid.UUID) (*models.MatchEvent, error) {
	var event models.MatchEvent
	err := r.db.Preload("Team").Preload("Player").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByMatchID retrieves a match's events in match-minute order,
// with team and player preloaded for serialization
func (r *MatchEventRepository) GetByMatchID(matchID uuid.UUID) ([]models.MatchEvent, error) {
	var events []models.MatchEvent
	err := r.db.Preload("Team").Preload("Player").
		Where("match_id = ?", matchID).
		Order("minute, timestamp").
		Find(&events).Error
	return events, err
}

// Delete deletes an event
func (r *MatchEventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MatchEvent{}, "id = ?", id).Error
}
