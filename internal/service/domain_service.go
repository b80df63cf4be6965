package service

import (
	"club-membership-service/internal/domain"
	"club-membership-service/internal/repository"
	"context"
	"errors"
)

// UserDomainService answers uniqueness questions that a single User cannot
// answer about itself.
type UserDomainService struct {
	userRepo repository.UserRepository
}

func NewUserDomainService(ur repository.UserRepository) *UserDomainService {
	return &UserDomainService{
		userRepo: ur,
	}
}

// Exists reports whether a stored user already carries the user's name.
func (s *UserDomainService) Exists(ctx context.Context, user *domain.User) (bool, error) {
	_, err := s.userRepo.UserByName(ctx, user.Name())
	return found(err)
}

func (s *UserDomainService) ExistsByID(ctx context.Context, user *domain.User) (bool, error) {
	_, err := s.userRepo.UserByID(ctx, user.ID())
	return found(err)
}

type ClubDomainService struct {
	clubRepo repository.ClubRepository
}

func NewClubDomainService(cr repository.ClubRepository) *ClubDomainService {
	return &ClubDomainService{
		clubRepo: cr,
	}
}

func (s *ClubDomainService) Exists(ctx context.Context, club *domain.Club) (bool, error) {
	_, err := s.clubRepo.ClubByName(ctx, club.Name())
	return found(err)
}

func (s *ClubDomainService) ExistsByID(ctx context.Context, club *domain.Club) (bool, error) {
	_, err := s.clubRepo.ClubByID(ctx, club.ID())
	return found(err)
}

func found(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
