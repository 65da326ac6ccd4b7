package models

import (
	"github.com/google/uuid"
)

// Team represents a team registered in exactly one tournament
type Team struct {
	BaseModel
	Name         string     `json:"name" gorm:"size:80;not null" validate:"required,min=2,max=80"`
	City         string     `json:"city" gorm:"size:80" validate:"max=80"`
	FoundedYear  int        `json:"founded_year,omitempty" validate:"omitempty,gte=1800,lte=2025"`
	TournamentID uuid.UUID  `json:"tournament_id" gorm:"type:uuid;not null;index" validate:"required"`
	CoachID      *uuid.UUID `json:"coach_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Tournament *Tournament `json:"tournament,omitempty" gorm:"foreignKey:TournamentID"`
	Coach      *User       `json:"coach,omitempty" gorm:"foreignKey:CoachID"`
	Players    []Player    `json:"players,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
