package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Match represents a scheduled or played fixture between two teams of a tournament.
// Scores are meaningful only when Status is completed.
type Match struct {
	BaseModel
	TournamentID uuid.UUID   `json:"tournament_id" gorm:"type:uuid;not null;index" validate:"required"`
	HomeTeamID   uuid.UUID   `json:"home_team_id" gorm:"type:uuid;not null;index" validate:"required"`
	AwayTeamID   uuid.UUID   `json:"away_team_id" gorm:"type:uuid;not null;index" validate:"required"`
	MatchDate    time.Time   `json:"match_date" gorm:"not null" validate:"required"`
	Venue        string      `json:"venue,omitempty" gorm:"size:100" validate:"max=100"`
	HomeScore    int         `json:"home_score" gorm:"not null;default:0"`
	AwayScore    int         `json:"away_score" gorm:"not null;default:0"`
	Status       MatchStatus `json:"status" gorm:"size:50;not null;default:'scheduled'"`
	RoundNumber  int         `json:"round_number" gorm:"not null;default:1" validate:"gte=1"`
	RefereeID    *uuid.UUID  `json:"referee_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Tournament *Tournament `json:"tournament,omitempty" gorm:"foreignKey:TournamentID"`
	HomeTeam   *Team       `json:"home_team,omitempty" gorm:"foreignKey:HomeTeamID"`
	AwayTeam   *Team       `json:"away_team,omitempty" gorm:"foreignKey:AwayTeamID"`
	Referee    *User       `json:"referee,omitempty" gorm:"foreignKey:RefereeID"`
	Events     []MatchEvent `json:"events,omitempty" gorm:"foreignKey:MatchID"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}

// ResultString renders the score line for a completed match, "vs" otherwise
func (m *Match) ResultString() string {
	if m.Status == MatchStatusCompleted {
		return fmt.Sprintf("%d - %d", m.HomeScore, m.AwayScore)
	}
	return "vs"
}
