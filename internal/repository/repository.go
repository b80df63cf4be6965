package repository

import (
	"club-membership-service/internal/domain"
	"context"
	"sync"
)

// Repositories return domain.ErrNotFound for missing aggregates. The embedded
// sync.Locker is held by application services for the whole
// load-check-mutate-save sequence of a use case; it serialises use cases on
// the same repository instance only.

type UserRepository interface {
	sync.Locker

	Save(ctx context.Context, user *domain.User) error
	UserByName(ctx context.Context, name domain.UserName) (*domain.User, error)
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	Delete(ctx context.Context, id domain.UserID) error
	// UsersByIDs keeps the order of ids and skips ids that are not stored.
	UsersByIDs(ctx context.Context, ids []domain.UserID) ([]*domain.User, error)
}

type ClubRepository interface {
	sync.Locker

	Save(ctx context.Context, club *domain.Club) error
	ClubByName(ctx context.Context, name domain.ClubName) (*domain.Club, error)
	ClubByID(ctx context.Context, id domain.ClubID) (*domain.Club, error)
	// Clubs lists every club in creation order.
	Clubs(ctx context.Context) ([]*domain.Club, error)
}
