package domain_test

import (
	"club-membership-service/internal/domain"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUser(t *testing.T, id, name string, premium bool) *domain.User {
	t.Helper()

	userID, err := domain.NewUserID(id)
	require.NoError(t, err)
	userName, err := domain.NewUserName(name)
	require.NoError(t, err)

	user, err := domain.NewUser(userID, userName, domain.NewUserIsPremium(premium))
	require.NoError(t, err)

	return user
}

func clubWithMembers(t *testing.T, memberCount int) *domain.Club {
	t.Helper()

	members := make([]domain.UserID, memberCount)
	for i := range members {
		id, err := domain.NewUserID(fmt.Sprintf("member-%d", i))
		require.NoError(t, err)
		members[i] = id
	}

	clubID, _ := domain.NewClubID("club-1")
	clubName, _ := domain.NewClubName("Chess Club")
	ownerID, _ := domain.NewUserID("owner")

	club, err := domain.NewClub(clubID, clubName, ownerID, members)
	require.NoError(t, err)

	return club
}

func TestUserFactoryAssignsFreshIdentity(t *testing.T) {
	factory := domain.NewUUIDUserFactory()
	name, err := domain.NewUserName("alice")
	require.NoError(t, err)

	first, err := factory.Create(name)
	require.NoError(t, err)
	second, err := factory.Create(name)
	require.NoError(t, err)

	assert.False(t, first.ID().IsEmpty())
	assert.False(t, first.ID().Equals(second.ID()))
	assert.Equal(t, "alice", first.Name().String())
	assert.False(t, first.IsPremium().Bool())
}

func TestNewUserRejectsZeroValues(t *testing.T) {
	name, _ := domain.NewUserName("alice")

	_, err := domain.NewUser(domain.UserID{}, name, domain.NewUserIsPremium(false))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	id, _ := domain.NewUserID("u-1")
	_, err = domain.NewUser(id, domain.UserName{}, domain.NewUserIsPremium(false))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserChangeName(t *testing.T) {
	user := mustUser(t, "u-1", "alice", false)

	newName, err := domain.NewUserName("alicia")
	require.NoError(t, err)
	require.NoError(t, user.ChangeName(newName))
	assert.Equal(t, "alicia", user.Name().String())

	err = user.ChangeName(domain.UserName{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "alicia", user.Name().String())
}

func TestUpgradeDowngradeIsIdempotent(t *testing.T) {
	for _, initial := range []bool{true, false} {
		user := mustUser(t, "u-1", "alice", initial)

		user.Upgrade()
		user.Upgrade()
		assert.True(t, user.IsPremium().Bool())

		user.Downgrade()
		assert.False(t, user.IsPremium().Bool())
		user.Downgrade()
		assert.False(t, user.IsPremium().Bool())

		user.Upgrade()
		assert.True(t, user.IsPremium().Bool())
	}
}

func TestClubFactoryCreatesEmptyClub(t *testing.T) {
	owner := mustUser(t, "owner", "alice", false)
	name, _ := domain.NewClubName("Chess Club")

	club, err := domain.NewUUIDClubFactory().Create(name, owner)
	require.NoError(t, err)

	assert.False(t, club.ID().IsEmpty())
	assert.True(t, club.OwnerID().Equals(owner.ID()))
	assert.Empty(t, club.Members())
	assert.Equal(t, 1, club.CountMembers())
	assert.False(t, club.IsFull())
}

func TestClubJoinFailsAtHardCeiling(t *testing.T) {
	club := clubWithMembers(t, 29)
	require.Equal(t, domain.ClubMaxMembers, club.CountMembers())
	require.True(t, club.IsFull())

	err := club.Join(mustUser(t, "late", "latecomer", true))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacity)
	assert.Len(t, club.Members(), 29)
}

func TestClubJoinFillsLastSeat(t *testing.T) {
	club := clubWithMembers(t, 28)
	require.False(t, club.IsFull())

	err := club.Join(mustUser(t, "last", "last-seat", false))
	require.NoError(t, err)
	assert.Equal(t, 30, club.CountMembers())
	assert.True(t, club.IsFull())
}

func TestClubJoinAllowsRepeatedMember(t *testing.T) {
	club := clubWithMembers(t, 0)
	bob := mustUser(t, "bob", "bob", false)

	require.NoError(t, club.Join(bob))
	require.NoError(t, club.Join(bob))

	assert.Equal(t, []domain.UserID{bob.ID(), bob.ID()}, club.Members())
	assert.Equal(t, 3, club.CountMembers())
}

func TestNewClubRejectsOversizedMemberList(t *testing.T) {
	members := make([]domain.UserID, 30)
	for i := range members {
		members[i], _ = domain.NewUserID(fmt.Sprintf("m-%d", i))
	}
	clubID, _ := domain.NewClubID("club-1")
	clubName, _ := domain.NewClubName("Chess Club")
	ownerID, _ := domain.NewUserID("owner")

	_, err := domain.NewClub(clubID, clubName, ownerID, members)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacity)
}

func TestClubChangeName(t *testing.T) {
	club := clubWithMembers(t, 0)

	name, _ := domain.NewClubName("Go Club")
	require.NoError(t, club.ChangeName(name))
	assert.Equal(t, "Go Club", club.Name().String())

	err := club.ChangeName(domain.ClubName{})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Go Club", club.Name().String())
}

func TestClubMembersReturnsCopy(t *testing.T) {
	club := clubWithMembers(t, 2)

	members := club.Members()
	members[0], _ = domain.NewUserID("intruder")

	assert.Equal(t, "member-0", club.Members()[0].String())
}
