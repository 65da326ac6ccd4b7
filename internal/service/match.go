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

// MatchService handles business logic for matches: scheduling, referee
// assignment, score recording and the event log
type MatchService struct {
	repo          repository.MatchRepositoryInterface
	tournamentRepo repository.TournamentRepositoryInterface
	teamRepo      repository.TeamRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	eventRepo     repository.MatchEventRepositoryInterface
	teamStatsRepo repository.TeamStatsRepositoryInterface
	perfRepo      repository.PerformanceRepositoryInterface
	validator     *validator.Validate
}

// NewMatchService creates a new match service
func NewMatchService(repo repository.MatchRepositoryInterface, tournamentRepo repository.TournamentRepositoryInterface, teamRepo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, eventRepo repository.MatchEventRepositoryInterface, teamStatsRepo repository.TeamStatsRepositoryInterface, perfRepo repository.PerformanceRepositoryInterface, validator *validator.Validate) *MatchService {
	return &MatchService{
		repo:           repo,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		teamStatsRepo:  teamStatsRepo,
		perfRepo:       perfRepo,
		validator:      validator,
	}
}

// CreateMatchRequest represents the request to schedule a match
type CreateMatchRequest struct {
	TournamentID uuid.UUID  `json:"tournament_id" validate:"required"`
	HomeTeamID   uuid.UUID  `json:"home_team_id" validate:"required"`
	AwayTeamID   uuid.UUID  `json:"away_team_id" validate:"required"`
	MatchDate    time.Time  `json:"match_date" validate:"required"`
	Venue        string     `json:"venue,omitempty" validate:"max=100"`
	RoundNumber  int        `json:"round_number" validate:"omitempty,gte=1"`
	RefereeID    *uuid.UUID `json:"referee_id,omitempty"`
}

// RecordScoreRequest represents the request to record a final score.
// Pointers so that a legitimate 0 still passes the required check.
type RecordScoreRequest struct {
	HomeScore *int `json:"home_score" validate:"required,gte=0,lte=20"`
	AwayScore *int `json:"away_score" validate:"required,gte=0,lte=20"`
}

// AddMatchEventRequest represents the request to append an event to a match
type AddMatchEventRequest struct {
	Minute      int                   `json:"minute" validate:"gte=0,lte=120"`
	EventType   models.MatchEventType `json:"event_type" validate:"required,oneof=goal yellow_card red_card substitution injury"`
	TeamID      *uuid.UUID            `json:"team_id,omitempty"`
	PlayerID    *uuid.UUID            `json:"player_id,omitempty"`
	Description string                `json:"description,omitempty"`
}

// MatchResponse represents the response for match operations
type MatchResponse struct {
	ID           uuid.UUID          `json:"id"`
	TournamentID uuid.UUID          `json:"tournament_id"`
	HomeTeamID   uuid.UUID          `json:"home_team_id"`
	AwayTeamID   uuid.UUID          `json:"away_team_id"`
	MatchDate    time.Time          `json:"match_date"`
	Venue        string             `json:"venue,omitempty"`
	HomeScore    int                `json:"home_score"`
	AwayScore    int                `json:"away_score"`
	Status       models.MatchStatus `json:"status"`
	RoundNumber  int                `json:"round_number"`
	RefereeID    *uuid.UUID         `json:"referee_id,omitempty"`
	Result       string             `json:"result"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}

// Create schedules a match between two distinct teams of the same tournament
func (s *MatchService) Create(req *CreateMatchRequest) (*MatchResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if req.HomeTeamID == req.AwayTeamID {
		return nil, apperrors.ErrSameTeamMatch
	}

	if _, err := s.tournamentRepo.GetByID(req.TournamentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to verify tournament: %w", err)
	}

	for _, teamID := range []uuid.UUID{req.HomeTeamID, req.AwayTeamID} {
		team, err := s.teamRepo.GetByID(teamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
		if team.TournamentID != req.TournamentID {
			return nil, apperrors.ErrTeamsFromOtherTournament
		}
	}

	if req.RefereeID != nil {
		if err := s.checkReferee(*req.RefereeID); err != nil {
			return nil, err
		}
	}

	roundNumber := req.RoundNumber
	if roundNumber == 0 {
		roundNumber = 1
	}

	match := &models.Match{
		TournamentID: req.TournamentID,
		HomeTeamID:   req.HomeTeamID,
		AwayTeamID:   req.AwayTeamID,
		MatchDate:    req.MatchDate,
		Venue:        req.Venue,
		Status:       models.MatchStatusScheduled,
		RoundNumber:  roundNumber,
		RefereeID:    req.RefereeID,
	}

	if err := s.repo.Create(match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return s.toResponse(match), nil
}

// GetByID retrieves a match by ID
func (s *MatchService) GetByID(id uuid.UUID) (*MatchResponse, error) {
	match, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return s.toResponse(match), nil
}

// GetByTournament retrieves all matches of a tournament
func (s *MatchService) GetByTournament(tournamentID uuid.UUID) ([]MatchResponse, error) {
	if _, err := s.tournamentRepo.GetByID(tournamentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to verify tournament: %w", err)
	}

	matches, err := s.repo.GetByTournamentID(tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	responses := make([]MatchResponse, 0, len(matches))
	for i := range matches {
		responses = append(responses, *s.toResponse(&matches[i]))
	}
	return responses, nil
}

// AssignReferee sets or clears the referee for a match
func (s *MatchService) AssignReferee(id uuid.UUID, refereeID *uuid.UUID) (*MatchResponse, error) {
	match, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if refereeID != nil {
		if err := s.checkReferee(*refereeID); err != nil {
			return nil, err
		}
	}

	match.RefereeID = refereeID
	if err := s.repo.Update(match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	return s.toResponse(match), nil
}

// RecordScore records the final score, marks the match completed and folds the
// result into both teams' aggregates. Recording twice is rejected so a result
// is never double-counted.
func (s *MatchService) RecordScore(id uuid.UUID, req *RecordScoreRequest) (*MatchResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	match, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if match.Status == models.MatchStatusCompleted {
		return nil, apperrors.ErrMatchAlreadyCompleted
	}

	match.HomeScore = *req.HomeScore
	match.AwayScore = *req.AwayScore
	match.Status = models.MatchStatusCompleted
	if err := s.repo.Update(match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	if err := s.applyResult(match.HomeTeamID, match.HomeScore, match.AwayScore); err != nil {
		return nil, err
	}
	if err := s.applyResult(match.AwayTeamID, match.AwayScore, match.HomeScore); err != nil {
		return nil, err
	}

	return s.toResponse(match), nil
}

// AddEvent appends an event to the match log. Player-bound goal and card
// events also roll up into the player's performance row for the match, and
// card events into the team's aggregate card counters.
func (s *MatchService) AddEvent(id uuid.UUID, req *AddMatchEventRequest) (*models.MatchEventView, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	event := &models.MatchEvent{
		MatchID:     id,
		Minute:      req.Minute,
		EventType:   req.EventType,
		TeamID:      req.TeamID,
		PlayerID:    req.PlayerID,
		Description: req.Description,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	if req.PlayerID != nil {
		if err := s.bumpPerformance(*req.PlayerID, id, req.EventType); err != nil {
			return nil, err
		}
	}
	if req.TeamID != nil {
		if err := s.bumpTeamCards(*req.TeamID, req.EventType); err != nil {
			return nil, err
		}
	}

	stored, err := s.eventRepo.GetByID(event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload event: %w", err)
	}
	view := stored.ToView()
	return &view, nil
}

// GetEvents returns the match's event log in the external representation
func (s *MatchService) GetEvents(id uuid.UUID) ([]models.MatchEventView, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	events, err := s.eventRepo.GetByMatchID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	views := make([]models.MatchEventView, 0, len(events))
	for i := range events {
		views = append(views, events[i].ToView())
	}
	return views, nil
}

// Delete deletes a match
func (s *MatchService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMatchNotFound
		}
		return fmt.Errorf("failed to get match: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

func (s *MatchService) applyResult(teamID uuid.UUID, goalsFor, goalsAgainst int) error {
	stats, err := s.teamStatsRepo.GetOrCreateByTeamID(teamID)
	if err != nil {
		return fmt.Errorf("failed to load team stats: %w", err)
	}
	stats.RecordResult(goalsFor, goalsAgainst)
	if err := s.teamStatsRepo.Update(stats); err != nil {
		return fmt.Errorf("failed to update team stats: %w", err)
	}
	return nil
}

func (s *MatchService) bumpPerformance(playerID, matchID uuid.UUID, eventType models.MatchEventType) error {
	perf, err := s.perfRepo.GetByPlayerAndMatch(playerID, matchID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load performance: %w", err)
		}
		perf = &models.PlayerMatchPerformance{PlayerID: playerID, MatchID: matchID}
		if err := s.perfRepo.Create(perf); err != nil {
			return fmt.Errorf("failed to create performance: %w", err)
		}
	}

	switch eventType {
	case models.EventTypeGoal:
		perf.Goals++
	case models.EventTypeYellowCard:
		perf.YellowCards++
	case models.EventTypeRedCard:
		perf.RedCards++
	default:
		return nil
	}
	if err := s.perfRepo.Update(perf); err != nil {
		return fmt.Errorf("failed to update performance: %w", err)
	}
	return nil
}

func (s *MatchService) bumpTeamCards(teamID uuid.UUID, eventType models.MatchEventType) error {
	if eventType != models.EventTypeYellowCard && eventType != models.EventTypeRedCard {
		return nil
	}
	stats, err := s.teamStatsRepo.GetOrCreateByTeamID(teamID)
	if err != nil {
		return fmt.Errorf("failed to load team stats: %w", err)
	}
	if eventType == models.EventTypeYellowCard {
		stats.YellowCards++
	} else {
		stats.RedCards++
	}
	if err := s.teamStatsRepo.Update(stats); err != nil {
		return fmt.Errorf("failed to update team stats: %w", err)
	}
	return nil
}

func (s *MatchService) checkReferee(refereeID uuid.UUID) error {
	referee, err := s.userRepo.GetByID(refereeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to verify referee: %w", err)
	}
	if !referee.CanOfficiate() {
		return apperrors.ErrNotAReferee
	}
	return nil
}

func (s *MatchService) toResponse(m *models.Match) *MatchResponse {
	return &MatchResponse{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		MatchDate:    m.MatchDate,
		Venue:        m.Venue,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		Status:       m.Status,
		RoundNumber:  m.RoundNumber,
		RefereeID:    m.RefereeID,
		Result:       m.ResultString(),
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    m.UpdatedAt.Format(time.RFC3339),
	}
}
