package inmemory

import (
	"club-membership-service/internal/domain"
	"sync"
)

// Records hold primitives so that loaded aggregates never alias stored state.

type UserRecord struct {
	ID        string
	Name      string
	IsPremium bool
}

type ClubRecord struct {
	ID      string
	Name    string
	OwnerID string
	Members []string
}

type InMemoryStorage struct {
	mu sync.RWMutex

	Users     map[string]UserRecord
	Clubs     map[string]ClubRecord
	ClubOrder []string
}

func NewStorage() (*InMemoryStorage, error) {
	return &InMemoryStorage{
		Users:     map[string]UserRecord{},
		Clubs:     map[string]ClubRecord{},
		ClubOrder: []string{},
	}, nil
}

func newUserRecord(user *domain.User) UserRecord {
	return UserRecord{
		ID:        user.ID().String(),
		Name:      user.Name().String(),
		IsPremium: user.IsPremium().Bool(),
	}
}

func (r UserRecord) toDomain() (*domain.User, error) {
	id, err := domain.NewUserID(r.ID)
	if err != nil {
		return nil, err
	}

	name, err := domain.NewUserName(r.Name)
	if err != nil {
		return nil, err
	}

	return domain.NewUser(id, name, domain.NewUserIsPremium(r.IsPremium))
}

func newClubRecord(club *domain.Club) ClubRecord {
	members := club.Members()
	memberIDs := make([]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.String()
	}

	return ClubRecord{
		ID:      club.ID().String(),
		Name:    club.Name().String(),
		OwnerID: club.OwnerID().String(),
		Members: memberIDs,
	}
}

func (r ClubRecord) toDomain() (*domain.Club, error) {
	id, err := domain.NewClubID(r.ID)
	if err != nil {
		return nil, err
	}

	name, err := domain.NewClubName(r.Name)
	if err != nil {
		return nil, err
	}

	ownerID, err := domain.NewUserID(r.OwnerID)
	if err != nil {
		return nil, err
	}

	members := make([]domain.UserID, len(r.Members))
	for i, m := range r.Members {
		if members[i], err = domain.NewUserID(m); err != nil {
			return nil, err
		}
	}

	return domain.NewClub(id, name, ownerID, members)
}
