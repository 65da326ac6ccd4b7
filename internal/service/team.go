package service

import (
	"errors"
	"fmt"
	"time"

	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo           repository.TeamRepositoryInterface
	tournamentRepo repository.TournamentRepositoryInterface
	playerRepo     repository.PlayerRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	statsRepo      repository.TeamStatsRepositoryInterface
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, tournamentRepo repository.TournamentRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, userRepo repository.UserRepositoryInterface, statsRepo repository.TeamStatsRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:           repo,
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		userRepo:       userRepo,
		statsRepo:      statsRepo,
		validator:      validator,
	}
}

// CreateTeamRequest represents the request to register a team in a tournament
type CreateTeamRequest struct {
	Name         string     `json:"name" validate:"required,min=2,max=80"`
	City         string     `json:"city" validate:"max=80"`
	FoundedYear  int        `json:"founded_year,omitempty" validate:"omitempty,gte=1800,lte=2025"`
	TournamentID uuid.UUID  `json:"tournament_id" validate:"required"`
	CoachID      *uuid.UUID `json:"coach_id,omitempty"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name        string     `json:"name" validate:"omitempty,min=2,max=80"`
	City        *string    `json:"city,omitempty" validate:"omitempty,max=80"`
	FoundedYear *int       `json:"founded_year,omitempty" validate:"omitempty,gte=1800,lte=2025"`
	CoachID     *uuid.UUID `json:"coach_id,omitempty"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	City         string     `json:"city"`
	FoundedYear  int        `json:"founded_year,omitempty"`
	TournamentID uuid.UUID  `json:"tournament_id"`
	CoachID      *uuid.UUID `json:"coach_id,omitempty"`
	PlayerCount  int        `json:"player_count,omitempty"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

// Create registers a team in a tournament. The tournament must still have room,
// the team name must be unique within the tournament, and a coach may lead at
// most one team. A zeroed stats row is created alongside the team.
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	tournament, err := s.tournamentRepo.GetByID(req.TournamentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to verify tournament: %w", err)
	}

	count, err := s.repo.CountByTournamentID(req.TournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count teams: %w", err)
	}
	if count >= int64(tournament.MaxTeams) {
		return nil, apperrors.ErrTournamentFull
	}

	existing, err := s.repo.GetByName(req.TournamentID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	if req.CoachID != nil {
		if err := s.checkCoach(*req.CoachID, nil); err != nil {
			return nil, err
		}
	}

	team := &models.Team{
		Name:         req.Name,
		City:         req.City,
		FoundedYear:  req.FoundedYear,
		TournamentID: req.TournamentID,
		CoachID:      req.CoachID,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	// Eager stats row; the standings read path stays a pure lookup
	if _, err := s.statsRepo.GetOrCreateByTeamID(team.ID); err != nil {
		return nil, fmt.Errorf("failed to create team stats: %w", err)
	}

	return s.toResponse(team), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponse(team), nil
}

// GetByTournament retrieves all teams registered in a tournament
func (s *TeamService) GetByTournament(tournamentID uuid.UUID) ([]TeamResponse, error) {
	if _, err := s.tournamentRepo.GetByID(tournamentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to verify tournament: %w", err)
	}

	teams, err := s.repo.GetByTournamentID(tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *s.toResponse(&teams[i]))
	}
	return responses, nil
}

// Update updates a team
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != "" {
		team.Name = req.Name
	}
	if req.City != nil {
		team.City = *req.City
	}
	if req.FoundedYear != nil {
		team.FoundedYear = *req.FoundedYear
	}
	if req.CoachID != nil {
		if err := s.checkCoach(*req.CoachID, &team.ID); err != nil {
			return nil, err
		}
		team.CoachID = req.CoachID
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team), nil
}

// Delete deletes a team
func (s *TeamService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// GetAvailablePlayers lists the players of the team currently marked available
func (s *TeamService) GetAvailablePlayers(id uuid.UUID) ([]models.Player, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	players, err := s.playerRepo.GetAvailableByTeamID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list available players: %w", err)
	}
	return players, nil
}

// checkCoach verifies the user exists, holds the coach role and leads no other team
func (s *TeamService) checkCoach(coachID uuid.UUID, teamID *uuid.UUID) error {
	coach, err := s.userRepo.GetByID(coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to verify coach: %w", err)
	}
	if coach.Role != models.UserRoleCoach {
		return apperrors.NewValidationError("coach_id", "user does not have the coach role")
	}

	existing, err := s.repo.GetByCoachID(coachID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check coach assignment: %w", err)
	}
	if existing != nil && (teamID == nil || existing.ID != *teamID) {
		return apperrors.ErrCoachAlreadyAssigned
	}
	return nil
}

func (s *TeamService) toResponse(t *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:           t.ID,
		Name:         t.Name,
		City:         t.City,
		FoundedYear:  t.FoundedYear,
		TournamentID: t.TournamentID,
		CoachID:      t.CoachID,
		PlayerCount:  len(t.Players),
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
	}
}
