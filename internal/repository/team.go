package repository

import (
	"tournament-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by name within a tournament
func (r *TeamRepository) GetByName(tournamentID uuid.UUID, name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "tournament_id = ? AND name = ?", tournamentID, name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByTournamentID retrieves all teams registered in a tournament
func (r *TeamRepository) GetByTournamentID(tournamentID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("tournament_id = ?", tournamentID).Order("created_at").Find(&teams).Error
	return teams, err
}

// CountByTournamentID returns the number of teams registered in a tournament
func (r *TeamRepository) CountByTournamentID(tournamentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("tournament_id = ?", tournamentID).Count(&count).Error
	return count, err
}

// GetByCoachID retrieves the team coached by the given user, if any
func (r *TeamRepository) GetByCoachID(coachID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "coach_id = ?", coachID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithPlayers retrieves a team with its full player roster
func (r *TeamRepository) GetWithPlayers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Players").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithCoach retrieves a team with its coach account
func (r *TeamRepository) GetWithCoach(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Coach").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team and, via FK cascade, its players
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
