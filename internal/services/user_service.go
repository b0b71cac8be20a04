package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"restaurant_pos/internal/apperrors"
	"restaurant_pos/internal/models"
	"restaurant_pos/internal/repository"
)

type UserService interface {
	GetOrCreateProfile(userID, email, name string) (*models.UserProfile, error)
}

type userService struct {
	profileRepo repository.UserProfileRepository
}

func NewUserService(profileRepo repository.UserProfileRepository) UserService {
	return &userService{profileRepo: profileRepo}
}

// GetOrCreateProfile resolves the local profile for an external identity,
// creating it with the default cashier role on first sighting. Idempotent.
func (s *userService) GetOrCreateProfile(userID, email, name string) (*models.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	profile = &models.UserProfile{
		UserID:   userID,
		Email:    email,
		Name:     name,
		Role:     string(models.RoleCashier),
		IsActive: true,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		// Two first requests can race on the unique user_id; the loser
		// reads the winner's row.
		if existing, getErr := s.profileRepo.GetByUserID(userID); getErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// AuthorizeRole is the access-control gate: it checks an already-resolved
// role against the allowed set and never touches storage.
func AuthorizeRole(role string, allowed ...string) error {
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}
	return apperrors.ErrForbidden
}
