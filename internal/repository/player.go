package repository

import (
	"tournament-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByTeamID retrieves all players on a team
func (r *PlayerRepository) GetByTeamID(teamID uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("team_id = ?", teamID).Order("jersey_number").Find(&players).Error
	return players, err
}

// GetAvailableByTeamID retrieves the players on a team currently available for selection
func (r *PlayerRepository) GetAvailableByTeamID(teamID uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("team_id = ? AND is_available = ?", teamID, true).Order("jersey_number").Find(&players).Error
	return players, err
}

// GetByTeamAndJersey retrieves the player wearing the given jersey number on a team
func (r *PlayerRepository) GetByTeamAndJersey(teamID uuid.UUID, jerseyNumber int) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "team_id = ? AND jersey_number = ?", teamID, jerseyNumber).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByIDsAndTeam retrieves the subset of the given players that belong to the team.
// IDs not on the team are simply absent from the result.
func (r *PlayerRepository) GetByIDsAndTeam(ids []uuid.UUID, teamID uuid.UUID) ([]models.Player, error) {
	if len(ids) == 0 {
		return []models.Player{}, nil
	}
	var players []models.Player
	err := r.db.Where("id IN ? AND team_id = ?", ids, teamID).Order("jersey_number").Find(&players).Error
	return players, err
}

// Update updates a player
func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// Delete deletes a player
func (r *PlayerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Player{}, "id = ?", id).Error
}
