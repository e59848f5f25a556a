package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindActiveCartSummary(ctx context.Context, userID uint) (*domain.ActiveCartSummary, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetProfile returns a user with the cart they are currently filling.
func (s *UserService) GetProfile(ctx context.Context, callerID, id uint) (domain.UserProfile, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if err = user.CheckViewableBy(callerID); err != nil {
		return domain.UserProfile{}, err
	}

	cart, err := s.repo.FindActiveCartSummary(ctx, id)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("s.repo.FindActiveCartSummary -> %w", err)
	}

	return domain.UserProfile{User: user, ActiveCart: cart}, nil
}
