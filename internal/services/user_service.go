package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vastra/internal/models"
	"vastra/internal/repositories"
)

// Sentinel errors for the unique-key checks at user creation. The
// API maps both to a 400 with the corresponding message.
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// UserService handles business logic for user accounts.
type UserService struct {
	userRepo  repositories.UserRepository
	publisher EventPublisher
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(userRepo repositories.UserRepository, publisher EventPublisher) *UserService {
	return &UserService{
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// GetByID retrieves a user.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// Create registers a new user. Username and email must be unused;
// the password is bcrypt-hashed before it reaches the store.
func (s *UserService) Create(in models.CreateUserInput) (*models.User, error) {
	if _, err := s.userRepo.GetByUsername(in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetByEmail(in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := in.ToModel()
	user.Password = string(hashed)
	if err := s.userRepo.Create(&user); err != nil {
		return nil, err
	}

	s.publishRegistered(&user)
	return &user, nil
}

// publishRegistered emits a user.registered event. Publishing is
// best effort; a broker failure never fails the request.
func (s *UserService) publishRegistered(user *models.User) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(map[string]any{
		"eventId":    uuid.New().String(),
		"userId":     user.ID,
		"userType":   user.UserType,
		"occurredAt": user.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("Failed to marshal user.registered event for user %d: %v", user.ID, err)
		return
	}
	if err := s.publisher.Publish("user.registered", body); err != nil {
		log.Printf("Warning: failed to publish user.registered event for user %d: %v", user.ID, err)
	}
}
