package models

import (
	"github.com/google/uuid"
)

// PlayerStats is the per-player aggregate across all match performances, one row per player
type PlayerStats struct {
	BaseModel
	PlayerID      uuid.UUID `json:"player_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	Goals         int       `json:"goals" gorm:"not null;default:0"`
	Assists       int       `json:"assists" gorm:"not null;default:0"`
	YellowCards   int       `json:"yellow_cards" gorm:"not null;default:0"`
	RedCards      int       `json:"red_cards" gorm:"not null;default:0"`
	MatchesPlayed int       `json:"matches_played" gorm:"not null;default:0"`
	MinutesPlayed int       `json:"minutes_played" gorm:"not null;default:0"`
	Shots         int       `json:"shots" gorm:"not null;default:0"`
	ShotsOnTarget int       `json:"shots_on_target" gorm:"not null;default:0"`
	Passes        int       `json:"passes" gorm:"not null;default:0"`
	PassAccuracy  float64   `json:"pass_accuracy" gorm:"not null;default:0"`
	Tackles       int       `json:"tackles" gorm:"not null;default:0"`
	Interceptions int       `json:"interceptions" gorm:"not null;default:0"`
	CleanSheets   int       `json:"clean_sheets" gorm:"not null;default:0"` // goalkeepers
	Saves         int       `json:"saves" gorm:"not null;default:0"`        // goalkeepers

	// Relationships
	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
}

// TableName returns the table name for PlayerStats
func (PlayerStats) TableName() string {
	return "player_stats"
}
