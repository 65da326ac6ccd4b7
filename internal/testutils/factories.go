package testutils

import (
	"fmt"
	"time"

	"tournament-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:    "user-" + id.String()[:8],
		Email:       fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		FirstName:   "Test",
		LastName:    "User",
		Role:        models.UserRoleCoach,
		Nationality: "Morocco",
	}
	_ = user.SetPassword("password123")
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// TournamentFactory provides methods to create test Tournament data
type TournamentFactory struct{}

// NewTournamentFactory creates a new TournamentFactory
func NewTournamentFactory() *TournamentFactory {
	return &TournamentFactory{}
}

// Create creates a test Tournament with default values
func (f *TournamentFactory) Create() *models.Tournament {
	return &models.Tournament{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Tournament",
		Description: "A test tournament",
		StartDate:   time.Now().AddDate(0, 0, 7),
		MaxTeams:    16,
		Status:      models.TournamentStatusRegistration,
	}
}

// WithName sets a custom name for the tournament
func (f *TournamentFactory) WithName(name string) *models.Tournament {
	tournament := f.Create()
	tournament.Name = name
	return tournament
}

// WithMaxTeams sets a custom team limit for the tournament
func (f *TournamentFactory) WithMaxTeams(maxTeams int) *models.Tournament {
	tournament := f.Create()
	tournament.MaxTeams = maxTeams
	return tournament
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Team " + id.String()[:8],
		City:         "Casablanca",
		FoundedYear:  1990,
		TournamentID: uuid.New(),
	}
}

// WithTournament sets the tournament ID for the team
func (f *TeamFactory) WithTournament(tournamentID uuid.UUID) *models.Team {
	team := f.Create()
	team.TournamentID = tournamentID
	return team
}

// WithCoach sets the coach ID for the team
func (f *TeamFactory) WithCoach(coachID uuid.UUID) *models.Team {
	team := f.Create()
	team.CoachID = &coachID
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct {
	jersey int
}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values. Jersey numbers increment
// so players from one factory never collide on a team.
func (f *PlayerFactory) Create() *models.Player {
	f.jersey++
	id := uuid.New()
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Player " + id.String()[:8],
		Position:     models.PositionMidfielder,
		JerseyNumber: f.jersey,
		Age:          24,
		Nationality:  "Morocco",
		TeamID:       uuid.New(),
		IsAvailable:  true,
	}
}

// WithTeam sets the team ID for the player
func (f *PlayerFactory) WithTeam(teamID uuid.UUID) *models.Player {
	player := f.Create()
	player.TeamID = teamID
	return player
}

// WithPosition sets a custom position for the player
func (f *PlayerFactory) WithPosition(position models.PlayerPosition) *models.Player {
	player := f.Create()
	player.Position = position
	return player
}

// WithJersey sets a custom jersey number for the player
func (f *PlayerFactory) WithJersey(number int) *models.Player {
	player := f.Create()
	player.JerseyNumber = number
	return player
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Create creates a test Match with default values
func (f *MatchFactory) Create() *models.Match {
	return &models.Match{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TournamentID: uuid.New(),
		HomeTeamID:   uuid.New(),
		AwayTeamID:   uuid.New(),
		MatchDate:    time.Now().AddDate(0, 0, 3),
		Venue:        "Stade Mohammed V",
		Status:       models.MatchStatusScheduled,
		RoundNumber:  1,
	}
}

// WithTournament sets the tournament ID for the match
func (f *MatchFactory) WithTournament(tournamentID uuid.UUID) *models.Match {
	match := f.Create()
	match.TournamentID = tournamentID
	return match
}

// WithTeams sets the home and away teams for the match
func (f *MatchFactory) WithTeams(homeID, awayID uuid.UUID) *models.Match {
	match := f.Create()
	match.HomeTeamID = homeID
	match.AwayTeamID = awayID
	return match
}

// FactorySet provides access to all factories
type FactorySet struct {
	User       *UserFactory
	Tournament *TournamentFactory
	Team       *TeamFactory
	Player     *PlayerFactory
	Match      *MatchFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Tournament: NewTournamentFactory(),
		Team:       NewTeamFactory(),
		Player:     NewPlayerFactory(),
		Match:      NewMatchFactory(),
	}
}

// CreateFullTournamentHierarchy creates a tournament with two teams, a player
// on each, and a scheduled match between them.
func (fs *FactorySet) CreateFullTournamentHierarchy() (*models.Tournament, *models.Team, *models.Team, *models.Player, *models.Player, *models.Match) {
	tournament := fs.Tournament.Create()

	home := fs.Team.WithTournament(tournament.ID)
	away := fs.Team.WithTournament(tournament.ID)

	homePlayer := fs.Player.WithTeam(home.ID)
	awayPlayer := fs.Player.WithTeam(away.ID)

	match := fs.Match.WithTournament(tournament.ID)
	match.HomeTeamID = home.ID
	match.AwayTeamID = away.ID

	return tournament, home, away, homePlayer, awayPlayer, match
}
