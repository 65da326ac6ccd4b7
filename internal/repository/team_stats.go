package repository

import (
	"errors"

	"tournament-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamStatsRepository handles database operations for per-team aggregates
type TeamStatsRepository struct {
	db *gorm.DB
}

// NewTeamStatsRepository creates a new team stats repository
func NewTeamStatsRepository(db *gorm.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

// Create creates a new team stats row
func (r *TeamStatsRepository) Create(stats *models.TeamStats) error {
	return r.db.Create(stats).Error
}

// GetByTeamID retrieves the stats row for a team
func (r *TeamStatsRepository) GetByTeamID(teamID uuid.UUID) (*models.TeamStats, error) {
	var stats models.TeamStats
	err := r.db.First(&stats, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetOrCreateByTeamID returns the team's stats row, creating a zeroed one if absent
func (r *TeamStatsRepository) GetOrCreateByTeamID(teamID uuid.UUID) (*models.TeamStats, error) {
	stats, err := r.GetByTeamID(teamID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	stats = &models.TeamStats{TeamID: teamID}
	if err := r.db.Create(stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// GetByTournamentID retrieves the stats rows of all teams in a tournament,
// with the team preloaded, in team registration order
func (r *TeamStatsRepository) GetByTournamentID(tournamentID uuid.UUID) ([]models.TeamStats, error) {
	var stats []models.TeamStats
	err := r.db.Preload("Team").
		Joins("JOIN teams ON teams.id = team_stats.team_id").
		Where("teams.tournament_id = ?", tournamentID).
		Order("teams.created_at").
		Find(&stats).Error
	return stats, err
}

// Update updates a team stats row
func (r *TeamStatsRepository) Update(stats *models.TeamStats) error {
	return r.db.Save(stats).Error
}
