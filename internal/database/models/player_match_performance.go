package models

import (
	"github.com/google/uuid"
)

// PlayerMatchPerformance holds a player's selection state and per-match counters
// for one match. At most one row exists per (player, match) pair.
type PlayerMatchPerformance struct {
	BaseModel
	PlayerID        uuid.UUID `json:"player_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_player_match" validate:"required"`
	MatchID         uuid.UUID `json:"match_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_player_match" validate:"required"`
	Goals           int       `json:"goals" gorm:"not null;default:0"`
	Assists         int       `json:"assists" gorm:"not null;default:0"`
	YellowCards     int       `json:"yellow_cards" gorm:"not null;default:0"`
	RedCards        int       `json:"red_cards" gorm:"not null;default:0"`
	MinutesPlayed   int       `json:"minutes_played" gorm:"not null;default:0"`
	Shots           int       `json:"shots" gorm:"not null;default:0"`
	ShotsOnTarget   int       `json:"shots_on_target" gorm:"not null;default:0"`
	Passes          int       `json:"passes" gorm:"not null;default:0"`
	PassesCompleted int       `json:"passes_completed" gorm:"not null;default:0"`
	Tackles         int       `json:"tackles" gorm:"not null;default:0"`
	Interceptions   int       `json:"interceptions" gorm:"not null;default:0"`
	Saves           int       `json:"saves" gorm:"not null;default:0"` // goalkeepers
	Rating          float64   `json:"rating" gorm:"not null;default:0"`
	IsSelected      bool      `json:"is_selected" gorm:"not null;default:false"`
	IsPlaying       bool      `json:"is_playing" gorm:"not null;default:false"`

	// Relationships
	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
	Match  *Match  `json:"-" gorm:"foreignKey:MatchID"`
}

// TableName returns the table name for PlayerMatchPerformance
func (PlayerMatchPerformance) TableName() string {
	return "player_match_performances"
}
