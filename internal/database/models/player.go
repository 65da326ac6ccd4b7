package models

import (
	"github.com/google/uuid"
)

// Player represents a rostered player belonging to exactly one team
type Player struct {
	BaseModel
	Name          string         `json:"name" gorm:"size:80;not null" validate:"required,min=2,max=80"`
	Position      PlayerPosition `json:"position" gorm:"size:20;not null" validate:"required,oneof=goalkeeper defender midfielder forward"`
	JerseyNumber  int            `json:"jersey_number" gorm:"not null" validate:"required,gte=1,lte=99"`
	Age           int            `json:"age,omitempty" validate:"omitempty,gte=16,lte=45"`
	Nationality   string         `json:"nationality,omitempty" gorm:"size:50" validate:"max=50"`
	TeamID        uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsAvailable   bool           `json:"is_available" gorm:"not null;default:true"`
	PhotoFilename string         `json:"photo_filename,omitempty" gorm:"size:255"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
