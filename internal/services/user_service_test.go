package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restaurant_pos/internal/apperrors"
	"restaurant_pos/internal/models"
)

type fakeProfileRepo struct {
	profiles map[string]*models.UserProfile
	creates  int
	nextID   uint
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*models.UserProfile{}}
}

func (r *fakeProfileRepo) Create(profile *models.UserProfile) error {
	r.creates++
	r.nextID++
	profile.ID = r.nextID
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) GetByUserID(userID string) (*models.UserProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) Update(profile *models.UserProfile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

func TestGetOrCreateProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewUserService(repo)

	profile, err := svc.GetOrCreateProfile("ext-1", "sari@example.com", "Sari")
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleCashier), profile.Role, "first sighting gets the default role")
	assert.True(t, profile.IsActive)
	assert.Equal(t, 1, repo.creates)

	// Second call is a pure read.
	again, err := svc.GetOrCreateProfile("ext-1", "sari@example.com", "Sari")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
	assert.Equal(t, 1, repo.creates)
}

func TestGetOrCreateProfileKeepsRole(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["ext-2"] = &models.UserProfile{ID: 7, UserID: "ext-2", Role: string(models.RoleOwner)}
	svc := NewUserService(repo)

	profile, err := svc.GetOrCreateProfile("ext-2", "owner@example.com", "Owner")
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleOwner), profile.Role)
	assert.Equal(t, 0, repo.creates)
}

func TestAuthorizeRole(t *testing.T) {
	assert.NoError(t, AuthorizeRole("owner", "owner"))
	assert.NoError(t, AuthorizeRole("chef", "chef", "owner"))
	assert.NoError(t, AuthorizeRole("owner", "chef", "owner"))
	assert.ErrorIs(t, AuthorizeRole("cashier", "chef", "owner"), apperrors.ErrForbidden)
	assert.ErrorIs(t, AuthorizeRole("cashier", "owner"), apperrors.ErrForbidden)
	assert.ErrorIs(t, AuthorizeRole("", "owner"), apperrors.ErrForbidden)
}
