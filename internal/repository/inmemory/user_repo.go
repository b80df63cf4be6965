package inmemory

import (
	"club-membership-service/internal/domain"
	"context"
	"sync"
)

type UserRepo struct {
	sync.Mutex

	db *InMemoryStorage
}

func NewUserRepo(db *InMemoryStorage) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

func (ur *UserRepo) Save(_ context.Context, user *domain.User) error {
	ur.db.mu.Lock()
	defer ur.db.mu.Unlock()

	ur.db.Users[user.ID().String()] = newUserRecord(user)

	return nil
}

func (ur *UserRepo) UserByName(_ context.Context, name domain.UserName) (*domain.User, error) {
	ur.db.mu.RLock()
	defer ur.db.mu.RUnlock()

	for _, record := range ur.db.Users {
		if record.Name == name.String() {
			return record.toDomain()
		}
	}

	return nil, domain.ErrNotFound
}

func (ur *UserRepo) UserByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	ur.db.mu.RLock()
	defer ur.db.mu.RUnlock()

	record, exists := ur.db.Users[id.String()]
	if !exists {
		return nil, domain.ErrNotFound
	}

	return record.toDomain()
}

func (ur *UserRepo) Delete(_ context.Context, id domain.UserID) error {
	ur.db.mu.Lock()
	defer ur.db.mu.Unlock()

	delete(ur.db.Users, id.String())

	return nil
}

func (ur *UserRepo) UsersByIDs(_ context.Context, ids []domain.UserID) ([]*domain.User, error) {
	ur.db.mu.RLock()
	defer ur.db.mu.RUnlock()

	users := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		record, exists := ur.db.Users[id.String()]
		if !exists {
			continue
		}

		user, err := record.toDomain()
		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	return users, nil
}
