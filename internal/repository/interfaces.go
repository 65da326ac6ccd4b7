package repository

import (
	"tournament-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByRole(role models.UserRole) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// TournamentRepositoryInterface defines the interface for tournament repository operations
type TournamentRepositoryInterface interface {
	Create(tournament *models.Tournament) error
	GetByID(id uuid.UUID) (*models.Tournament, error)
	GetAll(limit, offset int) ([]models.Tournament, int64, error)
	GetWithTeams(id uuid.UUID) (*models.Tournament, error)
	Update(tournament *models.Tournament) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(tournamentID uuid.UUID, name string) (*models.Team, error)
	GetByTournamentID(tournamentID uuid.UUID) ([]models.Team, error)
	CountByTournamentID(tournamentID uuid.UUID) (int64, error)
	GetByCoachID(coachID uuid.UUID) (*models.Team, error)
	GetWithPlayers(id uuid.UUID) (*models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id uuid.UUID) (*models.Player, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Player, error)
	GetAvailableByTeamID(teamID uuid.UUID) ([]models.Player, error)
	GetByTeamAndJersey(teamID uuid.UUID, jerseyNumber int) (*models.Player, error)
	GetByIDsAndTeam(ids []uuid.UUID, teamID uuid.UUID) ([]models.Player, error)
	Update(player *models.Player) error
	Delete(id uuid.UUID) error
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	Create(match *models.Match) error
	GetByID(id uuid.UUID) (*models.Match, error)
	GetByTournamentID(tournamentID uuid.UUID) ([]models.Match, error)
	Update(match *models.Match) error
	Delete(id uuid.UUID) error
}

// MatchEventRepositoryInterface defines the interface for match event repository operations
type MatchEventRepositoryInterface interface {
	Create(event *models.MatchEvent) error
	GetByID(id uuid.UUID) (*models.MatchEvent, error)
	GetByMatchID(matchID uuid.UUID) ([]models.MatchEvent, error)
	Delete(id uuid.UUID) error
}

// TeamStatsRepositoryInterface defines the interface for team stats repository operations
type TeamStatsRepositoryInterface interface {
	Create(stats *models.TeamStats) error
	GetByTeamID(teamID uuid.UUID) (*models.TeamStats, error)
	GetOrCreateByTeamID(teamID uuid.UUID) (*models.TeamStats, error)
	GetByTournamentID(tournamentID uuid.UUID) ([]models.TeamStats, error)
	Update(stats *models.TeamStats) error
}

// PlayerStatsRepositoryInterface defines the interface for player stats repository operations
type PlayerStatsRepositoryInterface interface {
	Create(stats *models.PlayerStats) error
	GetByPlayerID(playerID uuid.UUID) (*models.PlayerStats, error)
	GetOrCreateByPlayerID(playerID uuid.UUID) (*models.PlayerStats, error)
	Update(stats *models.PlayerStats) error
}

// PerformanceRepositoryInterface defines the interface for player match performance repository operations
type PerformanceRepositoryInterface interface {
	Create(perf *models.PlayerMatchPerformance) error
	GetByPlayerAndMatch(playerID, matchID uuid.UUID) (*models.PlayerMatchPerformance, error)
	GetByMatchID(matchID uuid.UUID) ([]models.PlayerMatchPerformance, error)
	GetByPlayerID(playerID uuid.UUID) ([]models.PlayerMatchPerformance, error)
	ReplaceSelection(matchID uuid.UUID, teamPlayerIDs, selectedIDs []uuid.UUID) error
	Update(perf *models.PlayerMatchPerformance) error
}
