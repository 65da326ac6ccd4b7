package models

import (
	"time"
)

// Tournament represents a competition that teams register for and play matches in
type Tournament struct {
	BaseModel
	Name        string           `json:"name" gorm:"size:100;not null" validate:"required,min=3,max=100"`
	Description string           `json:"description" gorm:"type:text"`
	StartDate   time.Time        `json:"start_date" gorm:"not null" validate:"required"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	MaxTeams    int              `json:"max_teams" gorm:"not null;default:16" validate:"gte=4,lte=32"`
	Status      TournamentStatus `json:"status" gorm:"size:50;not null;default:'registration'"`

	// Relationships
	Teams   []Team  `json:"teams,omitempty" gorm:"foreignKey:TournamentID;constraint:OnDelete:CASCADE"`
	Matches []Match `json:"matches,omitempty" gorm:"foreignKey:TournamentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tournament
func (Tournament) TableName() string {
	return "tournaments"
}
