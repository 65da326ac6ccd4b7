package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchEvent is an append-only log entry for a match (goal, card, substitution, ...).
// Team and player references are optional: some events concern the match as a whole.
type MatchEvent struct {
	BaseModel
	MatchID     uuid.UUID      `json:"match_id" gorm:"type:uuid;not null;index" validate:"required"`
	Minute      int            `json:"minute" validate:"gte=0,lte=120"`
	EventType   MatchEventType `json:"event_type" gorm:"size:50;not null" validate:"required,oneof=goal yellow_card red_card substitution injury"`
	TeamID      *uuid.UUID     `json:"team_id,omitempty" gorm:"type:uuid;index"`
	PlayerID    *uuid.UUID     `json:"player_id,omitempty" gorm:"type:uuid;index"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Timestamp   time.Time      `json:"timestamp" gorm:"not null"`

	// Relationships
	Match  *Match  `json:"-" gorm:"foreignKey:MatchID"`
	Team   *Team   `json:"-" gorm:"foreignKey:TeamID"`
	Player *Player `json:"-" gorm:"foreignKey:PlayerID"`
}

// TableName returns the table name for MatchEvent
func (MatchEvent) TableName() string {
	return "match_events"
}

// MatchEventView is the external representation of an event
type MatchEventView struct {
	ID          uuid.UUID `json:"id"`
	Minute      int       `json:"minute"`
	Type        string    `json:"type"`
	Team        *string   `json:"team"`
	Player      *string   `json:"player"`
	Description string    `json:"description"`
	Timestamp   string    `json:"timestamp"`
	Time        string    `json:"time"`
}

// ToView flattens the event for serialization: team/player names (or null),
// an ISO-8601 timestamp and an HH:MM short time string.
func (e *MatchEvent) ToView() MatchEventView {
	view := MatchEventView{
		ID:          e.ID,
		Minute:      e.Minute,
		Type:        string(e.EventType),
		Description: e.Description,
		Timestamp:   e.Timestamp.Format(time.RFC3339),
		Time:        e.Timestamp.Format("15:04"),
	}
	if e.Team != nil {
		name := e.Team.Name
		view.Team = &name
	}
	if e.Player != nil {
		name := e.Player.Name
		view.Player = &name
	}
	return view
}
