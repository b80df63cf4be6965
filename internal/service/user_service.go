package service

import (
	"club-membership-service/internal/domain"
	"club-membership-service/internal/repository"
	"context"
	"errors"
	"fmt"
	"log/slog"
)

type UserService struct {
	userRepo    repository.UserRepository
	userFactory domain.UserFactory
	users       *UserDomainService
	logger      *slog.Logger
}

type UserData struct {
	ID        string
	Name      string
	IsPremium bool
}

type UpdateUserCommand struct {
	ID   string
	Name *string
}

func NewUserService(ur repository.UserRepository, uf domain.UserFactory, logger *slog.Logger) *UserService {
	return &UserService{
		userRepo:    ur,
		userFactory: uf,
		users:       NewUserDomainService(ur),
		logger:      logger,
	}
}

func NewUserData(user *domain.User) UserData {
	return UserData{
		ID:        user.ID().String(),
		Name:      user.Name().String(),
		IsPremium: user.IsPremium().Bool(),
	}
}

func (s *UserService) Register(ctx context.Context, name string) (*domain.User, error) {
	userName, err := domain.NewUserName(name)
	if err != nil {
		return nil, err
	}

	s.userRepo.Lock()
	defer s.userRepo.Unlock()

	user, err := s.userFactory.Create(userName)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.Exists(ctx, user)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("user %q: %w", name, domain.ErrDuplicate)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID().String())

	return user, nil
}

func (s *UserService) User(ctx context.Context, id string) (UserData, error) {
	userID, err := domain.NewUserID(id)
	if err != nil {
		return UserData{}, err
	}

	s.userRepo.Lock()
	defer s.userRepo.Unlock()

	user, err := s.load(ctx, userID)
	if err != nil {
		return UserData{}, err
	}

	return NewUserData(user), nil
}

func (s *UserService) Update(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	userID, err := domain.NewUserID(cmd.ID)
	if err != nil {
		return nil, err
	}

	s.userRepo.Lock()
	defer s.userRepo.Unlock()

	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		newName, err := domain.NewUserName(*cmd.Name)
		if err != nil {
			return nil, err
		}

		if err := user.ChangeName(newName); err != nil {
			return nil, err
		}

		exists, err := s.users.Exists(ctx, user)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("user %q: %w", *cmd.Name, domain.ErrDuplicate)
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user updated", "user_id", cmd.ID)

	return user, nil
}

// Delete succeeds when the user is already gone.
func (s *UserService) Delete(ctx context.Context, id string) error {
	userID, err := domain.NewUserID(id)
	if err != nil {
		return err
	}

	s.userRepo.Lock()
	defer s.userRepo.Unlock()

	if _, err := s.load(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "user deleted", "user_id", id)

	return nil
}

func (s *UserService) Upgrade(ctx context.Context, id string) (*domain.User, error) {
	return s.setPremium(ctx, id, (*domain.User).Upgrade)
}

func (s *UserService) Downgrade(ctx context.Context, id string) (*domain.User, error) {
	return s.setPremium(ctx, id, (*domain.User).Downgrade)
}

func (s *UserService) setPremium(ctx context.Context, id string, apply func(*domain.User)) (*domain.User, error) {
	userID, err := domain.NewUserID(id)
	if err != nil {
		return nil, err
	}

	s.userRepo.Lock()
	defer s.userRepo.Unlock()

	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	apply(user)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user membership changed",
		"user_id", id,
		"is_premium", user.IsPremium().Bool(),
	)

	return user, nil
}

func (s *UserService) load(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.userRepo.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	return user, nil
}
