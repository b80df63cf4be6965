package service

import (
	"club-membership-service/internal/domain"
	"club-membership-service/internal/repository"
	"context"
	"errors"
	"fmt"
	"log/slog"
)

const RecommendationLimit = 10

type ClubService struct {
	clubRepo    repository.ClubRepository
	userRepo    repository.UserRepository
	clubFactory domain.ClubFactory
	clubs       *ClubDomainService
	fullSpec    domain.Specification[domain.ClubMembers]
	recommend   domain.Specification[*domain.Club]
	logger      *slog.Logger
}

type ClubRecommendation struct {
	ClubID   string
	ClubName string
	OwnerID  string
}

func NewClubService(cr repository.ClubRepository, ur repository.UserRepository, cf domain.ClubFactory, logger *slog.Logger) *ClubService {
	return &ClubService{
		clubRepo:    cr,
		userRepo:    ur,
		clubFactory: cf,
		clubs:       NewClubDomainService(cr),
		fullSpec:    domain.NewClubMembersFullSpec(),
		recommend:   domain.NewClubRecommendationSpec(),
		logger:      logger,
	}
}

func (s *ClubService) CreateClub(ctx context.Context, ownerID, name string) (*domain.Club, error) {
	ownerUserID, err := domain.NewUserID(ownerID)
	if err != nil {
		return nil, err
	}

	s.clubRepo.Lock()
	defer s.clubRepo.Unlock()

	owner, err := s.user(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	clubName, err := domain.NewClubName(name)
	if err != nil {
		return nil, err
	}

	club, err := s.clubFactory.Create(clubName, owner)
	if err != nil {
		return nil, err
	}

	exists, err := s.clubs.Exists(ctx, club)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("club %q: %w", name, domain.ErrDuplicate)
	}

	if err := s.clubRepo.Save(ctx, club); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "club created",
		"club_id", club.ID().String(),
		"owner_id", ownerID,
	)

	return club, nil
}

func (s *ClubService) JoinClub(ctx context.Context, userID, clubID string) (*domain.Club, error) {
	memberID, err := domain.NewUserID(userID)
	if err != nil {
		return nil, err
	}

	targetClubID, err := domain.NewClubID(clubID)
	if err != nil {
		return nil, err
	}

	s.clubRepo.Lock()
	defer s.clubRepo.Unlock()

	user, err := s.user(ctx, memberID)
	if err != nil {
		return nil, err
	}

	club, err := s.clubRepo.ClubByID(ctx, targetClubID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("club %s: %w", clubID, domain.ErrNotFound)
		}
		return nil, err
	}

	members, err := s.clubMembers(ctx, club)
	if err != nil {
		return nil, err
	}

	if s.fullSpec.IsSatisfiedBy(members) {
		return nil, fmt.Errorf("club member is already full: %w", domain.ErrCapacity)
	}

	if err := club.Join(user); err != nil {
		return nil, err
	}

	if err := s.clubRepo.Save(ctx, club); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user joined club",
		"club_id", clubID,
		"user_id", userID,
		"members", club.CountMembers(),
	)

	return club, nil
}

// Recommendations returns at most RecommendationLimit clubs, in repository
// order.
func (s *ClubService) Recommendations(ctx context.Context) ([]ClubRecommendation, error) {
	s.clubRepo.Lock()
	defer s.clubRepo.Unlock()

	clubs, err := s.clubRepo.Clubs(ctx)
	if err != nil {
		return nil, err
	}

	recommendations := make([]ClubRecommendation, 0, RecommendationLimit)
	for _, club := range clubs {
		if len(recommendations) == RecommendationLimit {
			break
		}

		if !s.recommend.IsSatisfiedBy(club) {
			continue
		}

		recommendations = append(recommendations, ClubRecommendation{
			ClubID:   club.ID().String(),
			ClubName: club.Name().String(),
			OwnerID:  club.OwnerID().String(),
		})
	}

	return recommendations, nil
}

func (s *ClubService) clubMembers(ctx context.Context, club *domain.Club) (domain.ClubMembers, error) {
	owner, err := s.user(ctx, club.OwnerID())
	if err != nil {
		return domain.ClubMembers{}, fmt.Errorf("owner of club %s: %w", club.ID(), err)
	}

	members, err := s.userRepo.UsersByIDs(ctx, club.Members())
	if err != nil {
		return domain.ClubMembers{}, err
	}

	return domain.NewClubMembers(club.ID(), owner, members), nil
}

func (s *ClubService) user(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.userRepo.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	return user, nil
}
