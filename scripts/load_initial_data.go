package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"tournament-backend/internal/config"
	"tournament-backend/internal/database"
	"tournament-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Username    string `yaml:"username"`
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Role        string `yaml:"role"`
	Nationality string `yaml:"nationality,omitempty"`
}

type TournamentData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	StartDate   string `yaml:"start_date"`
	MaxTeams    int    `yaml:"max_teams"`
	Status      string `yaml:"status,omitempty"`
}

type TeamData struct {
	Name           string `yaml:"name"`
	City           string `yaml:"city,omitempty"`
	FoundedYear    int    `yaml:"founded_year,omitempty"`
	TournamentName string `yaml:"tournament_name"`
	CoachUsername  string `yaml:"coach_username,omitempty"`
}

type PlayerData struct {
	Name         string `yaml:"name"`
	TeamName     string `yaml:"team_name"`
	Position     string `yaml:"position"`
	JerseyNumber int    `yaml:"jersey_number"`
	Age          int    `yaml:"age,omitempty"`
	Nationality  string `yaml:"nationality,omitempty"`
}

type MatchData struct {
	TournamentName  string `yaml:"tournament_name"`
	HomeTeamName    string `yaml:"home_team_name"`
	AwayTeamName    string `yaml:"away_team_name"`
	MatchDate       string `yaml:"match_date"`
	Venue           string `yaml:"venue,omitempty"`
	RoundNumber     int    `yaml:"round_number,omitempty"`
	RefereeUsername string `yaml:"referee_username,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TournamentsFile struct {
	Tournaments []TournamentData `yaml:"tournaments"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

type MatchesFile struct {
	Matches []MatchData `yaml:"matches"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Silent GORM logging keeps "record not found" lookups out of the output
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	tournaments, err := loadTournaments(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tournaments: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	players, err := loadPlayers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	matches, err := loadMatches(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load matches: %w", err)
	}

	// Create users first, teams and matches reference them by username
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		userMap[userData.Username] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	tournamentMap := make(map[string]*models.Tournament)
	tournamentCreated := 0
	for _, tournamentData := range tournaments {
		tournament, created, err := createTournament(db, tournamentData)
		if err != nil {
			return fmt.Errorf("failed to create tournament %s: %w", tournamentData.Name, err)
		}
		tournamentMap[tournamentData.Name] = tournament
		if created {
			tournamentCreated++
		}
	}
	log.Printf("Tournaments: %d created, %d total", tournamentCreated, len(tournaments))

	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, tournamentMap, userMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teams))

	playerCreated := 0
	for _, playerData := range players {
		_, created, err := createPlayer(db, playerData, teamMap)
		if err != nil {
			log.Printf("Warning: failed to create player %s: %v", playerData.Name, err)
			continue
		}
		if created {
			playerCreated++
		}
	}
	log.Printf("Players: %d created, %d total", playerCreated, len(players))

	matchCreated := 0
	for _, matchData := range matches {
		_, created, err := createMatch(db, matchData, tournamentMap, teamMap, userMap)
		if err != nil {
			log.Printf("Warning: failed to create match %s vs %s: %v", matchData.HomeTeamName, matchData.AwayTeamName, err)
			continue
		}
		if created {
			matchCreated++
		}
	}
	log.Printf("Matches: %d created, %d total", matchCreated, len(matches))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadTournaments(dataDir string) ([]TournamentData, error) {
	var allTournaments []TournamentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tournaments") {
			var file TournamentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTournaments = append(allTournaments, file.Tournaments...)
		}
		return nil
	})

	return allTournaments, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadPlayers(dataDir string) ([]PlayerData, error) {
	var allPlayers []PlayerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "players") {
			var file PlayersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPlayers = append(allPlayers, file.Players...)
		}
		return nil
	})

	return allPlayers, err
}

func loadMatches(dataDir string) ([]MatchData, error) {
	var allMatches []MatchData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "matches") {
			var file MatchesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMatches = append(allMatches, file.Matches...)
		}
		return nil
	})

	return allMatches, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				Username:    userData.Username,
				Email:       userData.Email,
				FirstName:   userData.FirstName,
				LastName:    userData.LastName,
				Role:        models.UserRole(userData.Role),
				Nationality: userData.Nationality,
			}
			if err := user.SetPassword(userData.Password); err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil
}

func createTournament(db *gorm.DB, tournamentData TournamentData) (*models.Tournament, bool, error) {
	var tournament models.Tournament
	if err := db.Where("name = ?", tournamentData.Name).First(&tournament).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			startDate, err := time.Parse("2006-01-02", tournamentData.StartDate)
			if err != nil {
				return nil, false, fmt.Errorf("invalid start_date %q: %w", tournamentData.StartDate, err)
			}

			status := models.TournamentStatusRegistration
			if tournamentData.Status != "" {
				status = models.TournamentStatus(tournamentData.Status)
			}

			maxTeams := tournamentData.MaxTeams
			if maxTeams == 0 {
				maxTeams = 16
			}

			tournament = models.Tournament{
				Name:        tournamentData.Name,
				Description: tournamentData.Description,
				StartDate:   startDate,
				MaxTeams:    maxTeams,
				Status:      status,
			}

			if err := db.Create(&tournament).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create tournament: %w", err)
			}
			return &tournament, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query tournament: %w", err)
		}
	}

	return &tournament, false, nil
}

func createTeam(db *gorm.DB, teamData TeamData, tournamentMap map[string]*models.Tournament, userMap map[string]*models.User) (*models.Team, bool, error) {
	tournament := tournamentMap[teamData.TournamentName]
	if tournament == nil {
		return nil, false, fmt.Errorf("tournament %s not found for team %s", teamData.TournamentName, teamData.Name)
	}

	var coachID *uuid.UUID
	if teamData.CoachUsername != "" {
		if coach := userMap[teamData.CoachUsername]; coach != nil {
			coachID = &coach.ID
		} else {
			log.Printf("Warning: coach %s not found for team %s", teamData.CoachUsername, teamData.Name)
		}
	}

	var team models.Team
	if err := db.Where("name = ? AND tournament_id = ?", teamData.Name, tournament.ID).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name:         teamData.Name,
				City:         teamData.City,
				FoundedYear:  teamData.FoundedYear,
				TournamentID: tournament.ID,
				CoachID:      coachID,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}

			// Every registered team starts with a zeroed standings row
			stats := models.TeamStats{TeamID: team.ID}
			if err := db.Where("team_id = ?", team.ID).FirstOrCreate(&stats, stats).Error; err != nil {
				log.Printf("Warning: failed to create stats row for team %s: %v", teamData.Name, err)
			}

			return &team, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil
}

func createPlayer(db *gorm.DB, playerData PlayerData, teamMap map[string]*models.Team) (*models.Player, bool, error) {
	team := teamMap[playerData.TeamName]
	if team == nil {
		return nil, false, fmt.Errorf("team %s not found for player %s", playerData.TeamName, playerData.Name)
	}

	var player models.Player
	if err := db.Where("team_id = ? AND jersey_number = ?", team.ID, playerData.JerseyNumber).First(&player).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			player = models.Player{
				Name:         playerData.Name,
				Position:     models.PlayerPosition(playerData.Position),
				JerseyNumber: playerData.JerseyNumber,
				Age:          playerData.Age,
				Nationality:  playerData.Nationality,
				TeamID:       team.ID,
				IsAvailable:  true,
			}

			if err := db.Create(&player).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create player: %w", err)
			}
			return &player, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query player: %w", err)
		}
	}

	return &player, false, nil
}

func createMatch(db *gorm.DB, matchData MatchData, tournamentMap map[string]*models.Tournament, teamMap map[string]*models.Team, userMap map[string]*models.User) (*models.Match, bool, error) {
	tournament := tournamentMap[matchData.TournamentName]
	if tournament == nil {
		return nil, false, fmt.Errorf("tournament %s not found", matchData.TournamentName)
	}

	home := teamMap[matchData.HomeTeamName]
	away := teamMap[matchData.AwayTeamName]
	if home == nil || away == nil {
		return nil, false, fmt.Errorf("home or away team not found")
	}

	var refereeID *uuid.UUID
	if matchData.RefereeUsername != "" {
		if referee := userMap[matchData.RefereeUsername]; referee != nil {
			refereeID = &referee.ID
		} else {
			log.Printf("Warning: referee %s not found", matchData.RefereeUsername)
		}
	}

	matchDate, err := time.Parse("2006-01-02 15:04", matchData.MatchDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid match_date %q: %w", matchData.MatchDate, err)
	}

	roundNumber := matchData.RoundNumber
	if roundNumber == 0 {
		roundNumber = 1
	}

	var match models.Match
	if err := db.Where("tournament_id = ? AND home_team_id = ? AND away_team_id = ? AND round_number = ?",
		tournament.ID, home.ID, away.ID, roundNumber).First(&match).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			match = models.Match{
				TournamentID: tournament.ID,
				HomeTeamID:   home.ID,
				AwayTeamID:   away.ID,
				MatchDate:    matchDate,
				Venue:        matchData.Venue,
				Status:       models.MatchStatusScheduled,
				RoundNumber:  roundNumber,
				RefereeID:    refereeID,
			}

			if err := db.Create(&match).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create match: %w", err)
			}
			return &match, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query match: %w", err)
		}
	}

	return &match, false, nil
}
