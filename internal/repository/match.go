package repository

import (
	"tournament-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create creates a new match
func (r *MatchRepository) Create(match *models.Match) error {
	return r.db.Create(match).Error
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetWithTeams retrieves a match with both teams and the referee preloaded
func (r *MatchRepository) GetWithTeams(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.Preload("HomeTeam").Preload("AwayTeam").Preload("Referee").First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetByTournamentID retrieves all matches of a tournament ordered by round and date
func (r *MatchRepository) GetByTournamentID(tournamentID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.Where("tournament_id = ?", tournamentID).
		Order("round_number, match_date").
		Find(&matches).Error
	return matches, err
}

// GetByRefereeID retrieves the matches officiated by the given referee
func (r *MatchRepository) GetByRefereeID(refereeID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.Where("referee_id = ?", refereeID).Order("match_date").Find(&matches).Error
	return matches, err
}

// Update updates a match
func (r *MatchRepository) Update(match *models.Match) error {
	return r.db.Save(match).Error
}

// Delete deletes a match
func (r *MatchRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Match{}, "id = ?", id).Error
}
