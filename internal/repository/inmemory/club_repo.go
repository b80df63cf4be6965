package inmemory

import (
	"club-membership-service/internal/domain"
	"context"
	"sync"
)

type ClubRepo struct {
	sync.Mutex

	db *InMemoryStorage
}

func NewClubRepo(db *InMemoryStorage) *ClubRepo {
	return &ClubRepo{
		db: db,
	}
}

func (cr *ClubRepo) Save(_ context.Context, club *domain.Club) error {
	cr.db.mu.Lock()
	defer cr.db.mu.Unlock()

	id := club.ID().String()
	if _, exists := cr.db.Clubs[id]; !exists {
		cr.db.ClubOrder = append(cr.db.ClubOrder, id)
	}

	cr.db.Clubs[id] = newClubRecord(club)

	return nil
}

func (cr *ClubRepo) ClubByName(_ context.Context, name domain.ClubName) (*domain.Club, error) {
	cr.db.mu.RLock()
	defer cr.db.mu.RUnlock()

	for _, id := range cr.db.ClubOrder {
		if record := cr.db.Clubs[id]; record.Name == name.String() {
			return record.toDomain()
		}
	}

	return nil, domain.ErrNotFound
}

func (cr *ClubRepo) ClubByID(_ context.Context, id domain.ClubID) (*domain.Club, error) {
	cr.db.mu.RLock()
	defer cr.db.mu.RUnlock()

	record, exists := cr.db.Clubs[id.String()]
	if !exists {
		return nil, domain.ErrNotFound
	}

	return record.toDomain()
}

func (cr *ClubRepo) Clubs(_ context.Context) ([]*domain.Club, error) {
	cr.db.mu.RLock()
	defer cr.db.mu.RUnlock()

	clubs := make([]*domain.Club, 0, len(cr.db.ClubOrder))
	for _, id := range cr.db.ClubOrder {
		club, err := cr.db.Clubs[id].toDomain()
		if err != nil {
			return nil, err
		}

		clubs = append(clubs, club)
	}

	return clubs, nil
}
