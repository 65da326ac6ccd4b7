package models

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents an account with a role-dependent capability set.
// Role-specific attributes live on the user itself (referee nationality)
// or as back-references (a coach's team points at the user via CoachID).
type User struct {
	BaseModel
	Username     string   `json:"username" gorm:"size:80;uniqueIndex;not null" validate:"required,min=4,max=80"`
	Email        string   `json:"email" gorm:"size:120;uniqueIndex;not null" validate:"required,email,max=120"`
	PasswordHash string   `json:"-" gorm:"size:128"`
	FirstName    string   `json:"first_name" gorm:"size:80" validate:"max=80"`
	LastName     string   `json:"last_name" gorm:"size:80" validate:"max=80"`
	Role         UserRole `json:"role" gorm:"size:50;not null;default:'coach'" validate:"required,oneof=admin coach referee"`

	// Referee-specific attribute, empty for other roles
	Nationality string `json:"nationality,omitempty" gorm:"size:50" validate:"max=50"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// SetPassword stores a salted one-way hash of the password, never the plaintext
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares a candidate password against the stored hash.
// A wrong password yields false, not an error.
func (u *User) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// CanManageTournaments reports whether the user may create or mutate tournaments
func (u *User) CanManageTournaments() bool {
	return u.Role == UserRoleAdmin
}

// CanManageUsers reports whether the user may administer accounts
func (u *User) CanManageUsers() bool {
	return u.Role == UserRoleAdmin
}

// CanManageTeam reports whether the user may manage the given team
func (u *User) CanManageTeam(team *Team) bool {
	if u.Role == UserRoleAdmin {
		return true
	}
	return u.Role == UserRoleCoach && team != nil && team.CoachID != nil && *team.CoachID == u.ID
}

// CanSelectPlayers reports whether the user may pick the roster for the given team
func (u *User) CanSelectPlayers(team *Team) bool {
	return u.CanManageTeam(team)
}

// CanOfficiate reports whether the user may be assigned to a match as referee
func (u *User) CanOfficiate() bool {
	return u.Role == UserRoleReferee
}

// FullName returns the display name for the user
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

// CoachRef returns a pointer to the user's ID, for wiring a coach to a team
func (u *User) CoachRef() *uuid.UUID {
	id := u.ID
	return &id
}
