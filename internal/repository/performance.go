package repository

import (
	"tournament-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PerformanceRepository handles database operations for player match performances
type PerformanceRepository struct {
	db *gorm.DB
}

// NewPerformanceRepository creates a new performance repository
func NewPerformanceRepository(db *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

// Create creates a new performance row
func (r *PerformanceRepository) Create(perf *models.PlayerMatchPerformance) error {
	return r.db.Create(perf).Error
}

// GetByPlayerAndMatch retrieves the performance row for a (player, match) pair
func (r *PerformanceRepository) GetByPlayerAndMatch(playerID, matchID uuid.UUID) (*models.PlayerMatchPerformance, error) {
	var perf models.PlayerMatchPerformance
	err := r.db.First(&perf, "player_id = ? AND match_id = ?", playerID, matchID).Error
	if err != nil {
		return nil, err
	}
	return &perf, nil
}

// GetByMatchID retrieves all performance rows for a match with players preloaded
func (r *PerformanceRepository) GetByMatchID(matchID uuid.UUID) ([]models.PlayerMatchPerformance, error) {
	var perfs []models.PlayerMatchPerformance
	err := r.db.Preload("Player").Where("match_id = ?", matchID).Find(&perfs).Error
	return perfs, err
}

// GetByPlayerID retrieves all performance rows accumulated by a player
func (r *PerformanceRepository) GetByPlayerID(playerID uuid.UUID) ([]models.PlayerMatchPerformance, error) {
	var perfs []models.PlayerMatchPerformance
	err := r.db.Where("player_id = ?", playerID).Find(&perfs).Error
	return perfs, err
}

// ReplaceSelection replaces a team's selection state for one match as a single unit.
// It deletes every performance row the team's players hold for the match, then
// recreates one selected row per chosen player. Runs inside one transaction so
// concurrent selection calls for the same match serialize instead of interleaving.
func (r *PerformanceRepository) ReplaceSelection(matchID uuid.UUID, teamPlayerIDs, selectedIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(teamPlayerIDs) > 0 {
			if err := tx.Where("match_id = ? AND player_id IN ?", matchID, teamPlayerIDs).
				Delete(&models.PlayerMatchPerformance{}).Error; err != nil {
				return err
			}
		}
		for _, playerID := range selectedIDs {
			perf := models.PlayerMatchPerformance{
				PlayerID:   playerID,
				MatchID:    matchID,
				IsSelected: true,
			}
			// The delete above normally leaves nothing behind for these players;
			// FirstOrCreate keeps the (player, match) pair unique regardless.
			if err := tx.Where("player_id = ? AND match_id = ?", playerID, matchID).
				FirstOrCreate(&perf).Error; err != nil {
				return err
			}
			if !perf.IsSelected {
				if err := tx.Model(&perf).Update("is_selected", true).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Update updates a performance row
func (r *PerformanceRepository) Update(perf *models.PlayerMatchPerformance) error {
	return r.db.Save(perf).Error
}
