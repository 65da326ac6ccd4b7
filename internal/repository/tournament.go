package repository

import (
	"tournament-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TournamentRepository handles database operations for tournaments
type TournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db *gorm.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

// Create creates a new tournament
func (r *TournamentRepository) Create(tournament *models.Tournament) error {
	return r.db.Create(tournament).Error
}

// GetByID retrieves a tournament by ID
func (r *TournamentRepository) GetByID(id uuid.UUID) (*models.Tournament, error) {
	var tournament models.Tournament
	err := r.db.First(&tournament, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tournament, nil
}

// GetAll retrieves all tournaments with pagination
func (r *TournamentRepository) GetAll(limit, offset int) ([]models.Tournament, int64, error) {
	var tournaments []models.Tournament
	var total int64

	if err := r.db.Model(&models.Tournament{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("start_date desc").Limit(limit).Offset(offset).Find(&tournaments).Error
	if err != nil {
		return nil, 0, err
	}

	return tournaments, total, nil
}

// GetWithTeams retrieves a tournament with its registered teams
func (r *TournamentRepository) GetWithTeams(id uuid.UUID) (*models.Tournament, error) {
	var tournament models.Tournament
	err := r.db.Preload("Teams").First(&tournament, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tournament, nil
}

// GetWithMatches retrieves a tournament with its matches
func (r *TournamentRepository) GetWithMatches(id uuid.UUID) (*models.Tournament, error) {
	var tournament models.Tournament
	err := r.db.Preload("Matches").First(&tournament, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tournament, nil
}

// Update updates a tournament
func (r *TournamentRepository) Update(tournament *models.Tournament) error {
	return r.db.Save(tournament).Error
}

// Delete deletes a tournament and, via FK cascade, its teams and matches
func (r *TournamentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Tournament{}, "id = ?", id).Error
}
