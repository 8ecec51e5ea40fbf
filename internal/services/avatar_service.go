package services

import (
	"vastra/internal/models"
	"vastra/internal/repositories"
)

// AvatarService handles business logic for 3D avatars.
type AvatarService struct {
	repo repositories.AvatarRepository
}

// NewAvatarService creates a new AvatarService.
func NewAvatarService(repo repositories.AvatarRepository) *AvatarService {
	return &AvatarService{
		repo: repo,
	}
}

// GetByID retrieves an avatar.
func (s *AvatarService) GetByID(id uint) (*models.Avatar, error) {
	return s.repo.GetByID(id)
}

// GetByUserID retrieves the avatar owned by a user.
func (s *AvatarService) GetByUserID(userID uint) (*models.Avatar, error) {
	return s.repo.GetByUserID(userID)
}

// Create stores a new avatar for a user.
func (s *AvatarService) Create(in models.CreateAvatarInput) (*models.Avatar, error) {
	avatar := in.ToModel()
	if err := s.repo.Create(&avatar); err != nil {
		return nil, err
	}
	return &avatar, nil
}
