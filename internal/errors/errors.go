package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this tournament"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTournamentNotFound = &NotFoundError{Entity: "tournament"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrPlayerNotFound     = &NotFoundError{Entity: "player"}
	ErrMatchNotFound      = &NotFoundError{Entity: "match"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrUserExists  = &AlreadyExistsError{Entity: "user", Context: "with this username or email"}
	ErrTeamExists  = &AlreadyExistsError{Entity: "team", Context: "with this name in the tournament"}
	ErrJerseyTaken = &AlreadyExistsError{Entity: "jersey number", Context: "on this team"}
)

// Business Logic Errors
var (
	ErrTournamentFull           = errors.New("tournament has reached its maximum number of teams")
	ErrCoachAlreadyAssigned     = errors.New("coach is already assigned to another team")
	ErrSameTeamMatch            = errors.New("home and away team must be different")
	ErrTeamsFromOtherTournament = errors.New("both teams must belong to the match tournament")
	ErrMatchAlreadyCompleted    = errors.New("match result has already been recorded")
	ErrNotAReferee              = errors.New("assigned user does not have the referee role")
	ErrPasswordMismatch         = errors.New("password confirmation does not match")
	ErrInvalidPhotoType         = errors.New("player photo must be a jpg or png file")
	ErrInvalidPaginationParams  = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrMissingAuthHeader  = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrRoleNotAllowed     = &AuthorizationError{Message: "role is not allowed to perform this operation"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
