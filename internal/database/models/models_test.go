package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		user := &User{Username: "coach.raja"}
		require.NoError(t, user.SetPassword("secret123"))

		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.True(t, user.CheckPassword("secret123"))
		assert.False(t, user.CheckPassword("wrong"))
	})

	t.Run("empty hash never matches", func(t *testing.T) {
		user := &User{Username: "coach.raja"}
		assert.False(t, user.CheckPassword(""))
		assert.False(t, user.CheckPassword("anything"))
	})
}

func TestUserCapabilities(t *testing.T) {
	admin := &User{BaseModel: BaseModel{ID: uuid.New()}, Role: UserRoleAdmin}
	coach := &User{BaseModel: BaseModel{ID: uuid.New()}, Role: UserRoleCoach}
	referee := &User{BaseModel: BaseModel{ID: uuid.New()}, Role: UserRoleReferee}

	assert.True(t, admin.CanManageTournaments())
	assert.False(t, coach.CanManageTournaments())
	assert.False(t, referee.CanManageTournaments())

	assert.True(t, referee.CanOfficiate())
	assert.False(t, coach.CanOfficiate())

	ownTeam := &Team{BaseModel: BaseModel{ID: uuid.New()}, CoachID: coach.CoachRef()}
	otherTeam := &Team{BaseModel: BaseModel{ID: uuid.New()}}

	assert.True(t, coach.CanManageTeam(ownTeam))
	assert.False(t, coach.CanManageTeam(otherTeam))
	assert.True(t, admin.CanManageTeam(otherTeam))
	assert.False(t, referee.CanManageTeam(ownTeam))
	assert.False(t, coach.CanManageTeam(nil))
}

func TestUserFullName(t *testing.T) {
	user := &User{Username: "coach.raja", FirstName: "Karim", LastName: "Bennani"}
	assert.Equal(t, "Karim Bennani", user.FullName())

	bare := &User{Username: "coach.raja"}
	assert.Equal(t, "coach.raja", bare.FullName())
}

func TestTeamStatsRecordResult(t *testing.T) {
	stats := &TeamStats{TeamID: uuid.New()}

	stats.RecordResult(2, 1) // win
	stats.RecordResult(0, 0) // draw
	stats.RecordResult(1, 3) // loss

	assert.Equal(t, 3, stats.MatchesPlayed)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 3, stats.GoalsScored)
	assert.Equal(t, 4, stats.GoalsConceded)
	assert.Equal(t, -1, stats.GoalDifference)
	assert.Equal(t, 4, stats.Points)
}

func TestMatchResultString(t *testing.T) {
	match := &Match{HomeScore: 2, AwayScore: 1, Status: MatchStatusScheduled}
	assert.Equal(t, "vs", match.ResultString())

	match.Status = MatchStatusCompleted
	assert.Equal(t, "2 - 1", match.ResultString())
}

func TestEnumsValidity(t *testing.T) {
	assert.True(t, UserRoleAdmin.IsValid())
	assert.False(t, UserRole("spectator").IsValid())

	assert.True(t, TournamentStatusInProgress.IsValid())
	assert.False(t, TournamentStatus("archived").IsValid())

	assert.True(t, MatchStatusPostponed.IsValid())
	assert.False(t, MatchStatus("abandoned").IsValid())

	assert.True(t, PositionForward.IsValid())
	assert.False(t, PlayerPosition("striker").IsValid())

	assert.True(t, EventTypeSubstitution.IsValid())
	assert.False(t, MatchEventType("corner").IsValid())
}

func TestMatchEventToView(t *testing.T) {
	teamName := "Raja CA"
	playerName := "Hamid Ahaddad"
	event := &MatchEvent{
		BaseModel: BaseModel{ID: uuid.New()},
		Minute:    34,
		EventType: EventTypeGoal,
		Team:      &Team{Name: teamName},
		Player:    &Player{Name: playerName},
	}

	view := event.ToView()
	assert.Equal(t, "goal", view.Type)
	require.NotNil(t, view.Team)
	assert.Equal(t, teamName, *view.Team)
	require.NotNil(t, view.Player)
	assert.Equal(t, playerName, *view.Player)

	bare := &MatchEvent{EventType: EventTypeInjury}
	bareView := bare.ToView()
	assert.Nil(t, bareView.Team)
	assert.Nil(t, bareView.Player)
}
