package models

// UserRole defines the roles a user account can hold
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleCoach   UserRole = "coach"
	UserRoleReferee UserRole = "referee"
)

// TournamentStatus defines the lifecycle states of a tournament
type TournamentStatus string

const (
	TournamentStatusRegistration TournamentStatus = "registration"
	TournamentStatusInProgress   TournamentStatus = "in_progress"
	TournamentStatusCompleted    TournamentStatus = "completed"
)

// MatchStatus defines the lifecycle states of a match
type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
	MatchStatusPostponed  MatchStatus = "postponed"
	MatchStatusCancelled  MatchStatus = "cancelled"
)

// PlayerPosition defines the positions a player can occupy
type PlayerPosition string

const (
	PositionGoalkeeper PlayerPosition = "goalkeeper"
	PositionDefender   PlayerPosition = "defender"
	PositionMidfielder PlayerPosition = "midfielder"
	PositionForward    PlayerPosition = "forward"
)

// MatchEventType defines the types of events logged against a match
type MatchEventType string

const (
	EventTypeGoal         MatchEventType = "goal"
	EventTypeYellowCard   MatchEventType = "yellow_card"
	EventTypeRedCard      MatchEventType = "red_card"
	EventTypeSubstitution MatchEventType = "substitution"
	EventTypeInjury       MatchEventType = "injury"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleCoach, UserRoleReferee:
		return true
	}
	return false
}

// IsValid checks if the TournamentStatus is valid
func (s TournamentStatus) IsValid() bool {
	switch s {
	case TournamentStatusRegistration, TournamentStatusInProgress, TournamentStatusCompleted:
		return true
	}
	return false
}

// IsValid checks if the MatchStatus is valid
func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusInProgress, MatchStatusCompleted, MatchStatusPostponed, MatchStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the PlayerPosition is valid
func (p PlayerPosition) IsValid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// IsValid checks if the MatchEventType is valid
func (t MatchEventType) IsValid() bool {
	switch t {
	case EventTypeGoal, EventTypeYellowCard, EventTypeRedCard, EventTypeSubstitution, EventTypeInjury:
		return true
	}
	return false
}
