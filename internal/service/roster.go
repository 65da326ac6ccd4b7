package service

import (
	"errors"
	"fmt"
	"time"

	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterService maintains per-player, per-match selection records
type RosterService struct {
	teamRepo   repository.TeamRepositoryInterface
	matchRepo  repository.MatchRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	perfRepo   repository.PerformanceRepositoryInterface
}

// NewRosterService creates a new roster service
func NewRosterService(teamRepo repository.TeamRepositoryInterface, matchRepo repository.MatchRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, perfRepo repository.PerformanceRepositoryInterface) *RosterService {
	return &RosterService{
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		perfRepo:   perfRepo,
	}
}

// SelectPlayersForMatch replaces the team's selection for one match with the
// given players. IDs that do not belong to the team are silently dropped, so
// the operation is total rather than partial-failing. The previous selection
// state for the whole team/match combination is cleared first; an empty set
// therefore clears the selection and selects nobody. Returns the players
// actually selected.
func (s *RosterService) SelectPlayersForMatch(teamID, matchID uuid.UUID, playerIDs []uuid.UUID) ([]PlayerResponse, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if _, err := s.matchRepo.GetByID(matchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	// Everyone on the team, for clearing prior state
	teamPlayers, err := s.playerRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team players: %w", err)
	}
	teamPlayerIDs := make([]uuid.UUID, 0, len(teamPlayers))
	for i := range teamPlayers {
		teamPlayerIDs = append(teamPlayerIDs, teamPlayers[i].ID)
	}

	// Only IDs that belong to the team are honored
	selected, err := s.playerRepo.GetByIDsAndTeam(playerIDs, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to filter players: %w", err)
	}
	selectedIDs := make([]uuid.UUID, 0, len(selected))
	for i := range selected {
		selectedIDs = append(selectedIDs, selected[i].ID)
	}

	if err := s.perfRepo.ReplaceSelection(matchID, teamPlayerIDs, selectedIDs); err != nil {
		return nil, fmt.Errorf("failed to replace selection: %w", err)
	}

	responses := make([]PlayerResponse, 0, len(selected))
	for i := range selected {
		p := &selected[i]
		responses = append(responses, PlayerResponse{
			ID:           p.ID,
			Name:         p.Name,
			Position:     p.Position,
			JerseyNumber: p.JerseyNumber,
			Age:          p.Age,
			Nationality:  p.Nationality,
			TeamID:       p.TeamID,
			IsAvailable:  p.IsAvailable,
			CreatedAt:    p.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

// GetSelection returns all performance rows recorded for a match
func (s *RosterService) GetSelection(matchID uuid.UUID) ([]models.PlayerMatchPerformance, error) {
	if _, err := s.matchRepo.GetByID(matchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	perfs, err := s.perfRepo.GetByMatchID(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}
	return perfs, nil
}
