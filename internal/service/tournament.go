package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TournamentService handles business logic for tournaments, including standings
type TournamentService struct {
	repo      repository.TournamentRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	statsRepo repository.TeamStatsRepositoryInterface
	validator *validator.Validate
}

// NewTournamentService creates a new tournament service
func NewTournamentService(repo repository.TournamentRepositoryInterface, teamRepo repository.TeamRepositoryInterface, statsRepo repository.TeamStatsRepositoryInterface, validator *validator.Validate) *TournamentService {
	return &TournamentService{
		repo:      repo,
		teamRepo:  teamRepo,
		statsRepo: statsRepo,
		validator: validator,
	}
}

// CreateTournamentRequest represents the request to create a tournament
type CreateTournamentRequest struct {
	Name        string     `json:"name" validate:"required,min=3,max=100"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	MaxTeams    int        `json:"max_teams" validate:"omitempty,gte=4,lte=32"`
}

// UpdateTournamentRequest represents the request to update a tournament
type UpdateTournamentRequest struct {
	Name        string                   `json:"name" validate:"omitempty,min=3,max=100"`
	Description *string                  `json:"description,omitempty"`
	StartDate   *time.Time               `json:"start_date,omitempty"`
	EndDate     *time.Time               `json:"end_date,omitempty"`
	MaxTeams    *int                     `json:"max_teams,omitempty" validate:"omitempty,gte=4,lte=32"`
	Status      *models.TournamentStatus `json:"status,omitempty" validate:"omitempty,oneof=registration in_progress completed"`
}

// TournamentResponse represents the response for tournament operations
type TournamentResponse struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	StartDate   time.Time               `json:"start_date"`
	EndDate     *time.Time              `json:"end_date,omitempty"`
	MaxTeams    int                     `json:"max_teams"`
	Status      models.TournamentStatus `json:"status"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

// TournamentListResponse represents a paginated list of tournaments
type TournamentListResponse struct {
	Tournaments []TournamentResponse `json:"tournaments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// StandingsEntry is one row of a tournament's ranking table
type StandingsEntry struct {
	Rank           int       `json:"rank"`
	TeamID         uuid.UUID `json:"team_id"`
	TeamName       string    `json:"team_name"`
	MatchesPlayed  int       `json:"matches_played"`
	Wins           int       `json:"wins"`
	Draws          int       `json:"draws"`
	Losses         int       `json:"losses"`
	GoalsScored    int       `json:"goals_scored"`
	GoalsConceded  int       `json:"goals_conceded"`
	GoalDifference int       `json:"goal_difference"`
	Points         int       `json:"points"`
	YellowCards    int       `json:"yellow_cards"`
	RedCards       int       `json:"red_cards"`
}

// Create creates a new tournament
func (s *TournamentService) Create(req *CreateTournamentRequest) (*TournamentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	maxTeams := req.MaxTeams
	if maxTeams == 0 {
		maxTeams = 16
	}

	tournament := &models.Tournament{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MaxTeams:    maxTeams,
		Status:      models.TournamentStatusRegistration,
	}

	if err := s.repo.Create(tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	return s.toResponse(tournament), nil
}

// GetByID retrieves a tournament by ID
func (s *TournamentService) GetByID(id uuid.UUID) (*TournamentResponse, error) {
	tournament, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return s.toResponse(tournament), nil
}

// GetAll retrieves tournaments with pagination
func (s *TournamentService) GetAll(page, pageSize int) (*TournamentListResponse, error) {
	offset := (page - 1) * pageSize
	tournaments, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}

	responses := make([]TournamentResponse, 0, len(tournaments))
	for i := range tournaments {
		responses = append(responses, *s.toResponse(&tournaments[i]))
	}

	return &TournamentListResponse{
		Tournaments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update updates a tournament
func (s *TournamentService) Update(id uuid.UUID, req *UpdateTournamentRequest) (*TournamentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	tournament, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	if req.Name != "" {
		tournament.Name = req.Name
	}
	if req.Description != nil {
		tournament.Description = *req.Description
	}
	if req.StartDate != nil {
		tournament.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		tournament.EndDate = req.EndDate
	}
	if req.MaxTeams != nil {
		tournament.MaxTeams = *req.MaxTeams
	}
	if req.Status != nil {
		tournament.Status = *req.Status
	}

	if err := s.repo.Update(tournament); err != nil {
		return nil, fmt.Errorf("failed to update tournament: %w", err)
	}

	return s.toResponse(tournament), nil
}

// Delete deletes a tournament
func (s *TournamentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTournamentNotFound
		}
		return fmt.Errorf("failed to get tournament: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	return nil
}

// GetStandings ranks the tournament's teams by their stored aggregates.
// A team without a stats row gets a zeroed one created first, so every team
// appears exactly once. The ranking reads whatever is stored and does not
// recompute anything from match results.
func (s *TournamentService) GetStandings(id uuid.UUID) ([]StandingsEntry, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	teams, err := s.teamRepo.GetByTournamentID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	// Backfill stats rows for teams that predate eager stats creation
	for i := range teams {
		if _, err := s.statsRepo.GetOrCreateByTeamID(teams[i].ID); err != nil {
			return nil, fmt.Errorf("failed to ensure stats for team %s: %w", teams[i].ID, err)
		}
	}

	stats, err := s.statsRepo.GetByTournamentID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load team stats: %w", err)
	}

	// Stable three-key descending sort; ties keep registration order.
	sort.SliceStable(stats, func(i, j int) bool {
		a, b := &stats[i], &stats[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsScored > b.GoalsScored
	})

	standings := make([]StandingsEntry, 0, len(stats))
	for i := range stats {
		row := &stats[i]
		entry := StandingsEntry{
			Rank:           i + 1,
			TeamID:         row.TeamID,
			MatchesPlayed:  row.MatchesPlayed,
			Wins:           row.Wins,
			Draws:          row.Draws,
			Losses:         row.Losses,
			GoalsScored:    row.GoalsScored,
			GoalsConceded:  row.GoalsConceded,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
			YellowCards:    row.YellowCards,
			RedCards:       row.RedCards,
		}
		if row.Team != nil {
			entry.TeamName = row.Team.Name
		}
		standings = append(standings, entry)
	}

	return standings, nil
}

func (s *TournamentService) toResponse(t *models.Tournament) *TournamentResponse {
	return &TournamentResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		MaxTeams:    t.MaxTeams,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}
