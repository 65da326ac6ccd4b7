package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerService handles business logic for players and their aggregates
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	statsRepo repository.PlayerStatsRepositoryInterface
	perfRepo  repository.PerformanceRepositoryInterface
	validator *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, teamRepo repository.TeamRepositoryInterface, statsRepo repository.PlayerStatsRepositoryInterface, perfRepo repository.PerformanceRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		teamRepo:  teamRepo,
		statsRepo: statsRepo,
		perfRepo:  perfRepo,
		validator: validator,
	}
}

// CreatePlayerRequest represents the request to add a player to a team
type CreatePlayerRequest struct {
	Name         string                `json:"name" validate:"required,min=2,max=80"`
	Position     models.PlayerPosition `json:"position" validate:"required,oneof=goalkeeper defender midfielder forward"`
	JerseyNumber int                   `json:"jersey_number" validate:"required,gte=1,lte=99"`
	Age          int                   `json:"age,omitempty" validate:"omitempty,gte=16,lte=45"`
	Nationality  string                `json:"nationality,omitempty" validate:"max=50"`
	TeamID       uuid.UUID             `json:"team_id" validate:"required"`
}

// UpdatePlayerRequest represents the request to update a player
type UpdatePlayerRequest struct {
	Name         string                 `json:"name" validate:"omitempty,min=2,max=80"`
	Position     *models.PlayerPosition `json:"position,omitempty" validate:"omitempty,oneof=goalkeeper defender midfielder forward"`
	JerseyNumber *int                   `json:"jersey_number,omitempty" validate:"omitempty,gte=1,lte=99"`
	Age          *int                   `json:"age,omitempty" validate:"omitempty,gte=16,lte=45"`
	Nationality  *string                `json:"nationality,omitempty" validate:"omitempty,max=50"`
}

// PlayerResponse represents the response for player operations
type PlayerResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Position      models.PlayerPosition `json:"position"`
	JerseyNumber  int                   `json:"jersey_number"`
	Age           int                   `json:"age,omitempty"`
	Nationality   string                `json:"nationality,omitempty"`
	TeamID        uuid.UUID             `json:"team_id"`
	IsAvailable   bool                  `json:"is_available"`
	PhotoFilename string                `json:"photo_filename,omitempty"`
	CreatedAt     string                `json:"created_at"`
	UpdatedAt     string                `json:"updated_at"`
}

// Create adds a player to a team. Jersey numbers are unique per team and a
// zeroed stats row is created alongside the player.
func (s *PlayerService) Create(req *CreatePlayerRequest) (*PlayerResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.teamRepo.GetByID(req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	taken, err := s.repo.GetByTeamAndJersey(req.TeamID, req.JerseyNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check jersey number: %w", err)
	}
	if taken != nil {
		return nil, apperrors.ErrJerseyTaken
	}

	player := &models.Player{
		Name:         req.Name,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		Age:          req.Age,
		Nationality:  req.Nationality,
		TeamID:       req.TeamID,
		IsAvailable:  true,
	}

	if err := s.repo.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	if _, err := s.statsRepo.GetOrCreateByPlayerID(player.ID); err != nil {
		return nil, fmt.Errorf("failed to create player stats: %w", err)
	}

	return s.toResponse(player), nil
}

// GetByID retrieves a player by ID
func (s *PlayerService) GetByID(id uuid.UUID) (*PlayerResponse, error) {
	player, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return s.toResponse(player), nil
}

// GetByTeam retrieves all players on a team
func (s *PlayerService) GetByTeam(teamID uuid.UUID) ([]PlayerResponse, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	players, err := s.repo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	responses := make([]PlayerResponse, 0, len(players))
	for i := range players {
		responses = append(responses, *s.toResponse(&players[i]))
	}
	return responses, nil
}

// Update updates a player
func (s *PlayerService) Update(id uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	player, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if req.Name != "" {
		player.Name = req.Name
	}
	if req.Position != nil {
		player.Position = *req.Position
	}
	if req.JerseyNumber != nil && *req.JerseyNumber != player.JerseyNumber {
		taken, err := s.repo.GetByTeamAndJersey(player.TeamID, *req.JerseyNumber)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check jersey number: %w", err)
		}
		if taken != nil {
			return nil, apperrors.ErrJerseyTaken
		}
		player.JerseyNumber = *req.JerseyNumber
	}
	if req.Age != nil {
		player.Age = *req.Age
	}
	if req.Nationality != nil {
		player.Nationality = *req.Nationality
	}

	if err := s.repo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return s.toResponse(player), nil
}

// Delete deletes a player
func (s *PlayerService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return fmt.Errorf("failed to get player: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

// ToggleAvailability flips the player's availability flag, persists it and
// returns the new value. Applying it twice restores the original state.
func (s *PlayerService) ToggleAvailability(id uuid.UUID) (bool, error) {
	player, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrPlayerNotFound
		}
		return false, fmt.Errorf("failed to get player: %w", err)
	}

	player.IsAvailable = !player.IsAvailable
	if err := s.repo.Update(player); err != nil {
		return false, fmt.Errorf("failed to update player: %w", err)
	}
	return player.IsAvailable, nil
}

// GetStats returns the player's aggregate row, creating a zeroed one if absent
func (s *PlayerService) GetStats(id uuid.UUID) (*models.PlayerStats, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	stats, err := s.statsRepo.GetOrCreateByPlayerID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}
	return stats, nil
}

// RecalculateStats rebuilds the player's aggregate from all of their per-match
// performance rows. A match counts as played when the player was on the pitch.
func (s *PlayerService) RecalculateStats(id uuid.UUID) (*models.PlayerStats, error) {
	stats, err := s.GetStats(id)
	if err != nil {
		return nil, err
	}

	perfs, err := s.perfRepo.GetByPlayerID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load performances: %w", err)
	}

	stats.Goals = 0
	stats.Assists = 0
	stats.YellowCards = 0
	stats.RedCards = 0
	stats.MatchesPlayed = 0
	stats.MinutesPlayed = 0
	stats.Shots = 0
	stats.ShotsOnTarget = 0
	stats.Passes = 0
	stats.PassAccuracy = 0
	stats.Tackles = 0
	stats.Interceptions = 0
	stats.Saves = 0

	var passesCompleted int
	for i := range perfs {
		p := &perfs[i]
		stats.Goals += p.Goals
		stats.Assists += p.Assists
		stats.YellowCards += p.YellowCards
		stats.RedCards += p.RedCards
		stats.MinutesPlayed += p.MinutesPlayed
		stats.Shots += p.Shots
		stats.ShotsOnTarget += p.ShotsOnTarget
		stats.Passes += p.Passes
		stats.Tackles += p.Tackles
		stats.Interceptions += p.Interceptions
		stats.Saves += p.Saves
		passesCompleted += p.PassesCompleted
		if p.MinutesPlayed > 0 || p.IsPlaying {
			stats.MatchesPlayed++
		}
	}
	if stats.Passes > 0 {
		stats.PassAccuracy = float64(passesCompleted) / float64(stats.Passes) * 100
	}

	if err := s.statsRepo.Update(stats); err != nil {
		return nil, fmt.Errorf("failed to update player stats: %w", err)
	}
	return stats, nil
}

// AttachPhoto validates and records an uploaded player photo. Only jpg and png
// files are accepted.
func (s *PlayerService) AttachPhoto(id uuid.UUID, header *multipart.FileHeader) (*PlayerResponse, error) {
	player, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return nil, apperrors.ErrInvalidPhotoType
	}

	player.PhotoFilename = fmt.Sprintf("%s%s", player.ID, ext)
	if err := s.repo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return s.toResponse(player), nil
}

func (s *PlayerService) toResponse(p *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:            p.ID,
		Name:          p.Name,
		Position:      p.Position,
		JerseyNumber:  p.JerseyNumber,
		Age:           p.Age,
		Nationality:   p.Nationality,
		TeamID:        p.TeamID,
		IsAvailable:   p.IsAvailable,
		PhotoFilename: p.PhotoFilename,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}
