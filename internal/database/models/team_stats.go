package models

import (
	"github.com/google/uuid"
)

// TeamStats is the per-team aggregate, one row per team.
// Points follow the usual football scheme: 3 per win, 1 per draw.
type TeamStats struct {
	BaseModel
	TeamID         uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	MatchesPlayed  int       `json:"matches_played" gorm:"not null;default:0"`
	Wins           int       `json:"wins" gorm:"not null;default:0"`
	Draws          int       `json:"draws" gorm:"not null;default:0"`
	Losses         int       `json:"losses" gorm:"not null;default:0"`
	GoalsScored    int       `json:"goals_scored" gorm:"not null;default:0"`
	GoalsConceded  int       `json:"goals_conceded" gorm:"not null;default:0"`
	GoalDifference int       `json:"goal_difference" gorm:"not null;default:0"`
	Points         int       `json:"points" gorm:"not null;default:0"`
	YellowCards    int       `json:"yellow_cards" gorm:"not null;default:0"`
	RedCards       int       `json:"red_cards" gorm:"not null;default:0"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for TeamStats
func (TeamStats) TableName() string {
	return "team_stats"
}

// RecordResult folds one completed match into the aggregate
func (s *TeamStats) RecordResult(goalsFor, goalsAgainst int) {
	s.MatchesPlayed++
	s.GoalsScored += goalsFor
	s.GoalsConceded += goalsAgainst
	switch {
	case goalsFor > goalsAgainst:
		s.Wins++
	case goalsFor == goalsAgainst:
		s.Draws++
	default:
		s.Losses++
	}
	s.GoalDifference = s.GoalsScored - s.GoalsConceded
	s.Points = 3*s.Wins + s.Draws
}
