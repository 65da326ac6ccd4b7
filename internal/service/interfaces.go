package service

import (
	"mime/multipart"

	"tournament-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TournamentServiceInterface defines the interface for tournament service
type TournamentServiceInterface interface {
	Create(req *CreateTournamentRequest) (*TournamentResponse, error)
	GetByID(id uuid.UUID) (*TournamentResponse, error)
	GetAll(page, pageSize int) (*TournamentListResponse, error)
	Update(id uuid.UUID, req *UpdateTournamentRequest) (*TournamentResponse, error)
	Delete(id uuid.UUID) error
	GetStandings(id uuid.UUID) ([]StandingsEntry, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	GetByTournament(tournamentID uuid.UUID) ([]TeamResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
	GetAvailablePlayers(id uuid.UUID) ([]models.Player, error)
}

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	Create(req *CreatePlayerRequest) (*PlayerResponse, error)
	GetByID(id uuid.UUID) (*PlayerResponse, error)
	GetByTeam(teamID uuid.UUID) ([]PlayerResponse, error)
	Update(id uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error)
	Delete(id uuid.UUID) error
	ToggleAvailability(id uuid.UUID) (bool, error)
	GetStats(id uuid.UUID) (*models.PlayerStats, error)
	RecalculateStats(id uuid.UUID) (*models.PlayerStats, error)
	AttachPhoto(id uuid.UUID, header *multipart.FileHeader) (*PlayerResponse, error)
}

// RosterServiceInterface defines the interface for roster selection
type RosterServiceInterface interface {
	SelectPlayersForMatch(teamID, matchID uuid.UUID, playerIDs []uuid.UUID) ([]PlayerResponse, error)
	GetSelection(matchID uuid.UUID) ([]models.PlayerMatchPerformance, error)
}

// MatchServiceInterface defines the interface for match service
type MatchServiceInterface interface {
	Create(req *CreateMatchRequest) (*MatchResponse, error)
	GetByID(id uuid.UUID) (*MatchResponse, error)
	GetByTournament(tournamentID uuid.UUID) ([]MatchResponse, error)
	AssignReferee(id uuid.UUID, refereeID *uuid.UUID) (*MatchResponse, error)
	RecordScore(id uuid.UUID, req *RecordScoreRequest) (*MatchResponse, error)
	AddEvent(id uuid.UUID, req *AddMatchEventRequest) (*models.MatchEventView, error)
	GetEvents(id uuid.UUID) ([]models.MatchEventView, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	GetAll(page, pageSize int) (*UserListResponse, error)
	GetByRole(role models.UserRole) ([]UserResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}
