package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"vastra/internal/models"
	"vastra/internal/repositories"
)

// TryOnService handles business logic for try-on history.
type TryOnService struct {
	repo      repositories.TryOnRepository
	publisher EventPublisher
}

// NewTryOnService creates a new TryOnService. publisher may be nil.
func NewTryOnService(repo repositories.TryOnRepository, publisher EventPublisher) *TryOnService {
	return &TryOnService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetByID retrieves a try-on record.
func (s *TryOnService) GetByID(id uint) (*models.TryOnHistory, error) {
	return s.repo.GetByID(id)
}

// ListByUserID retrieves the try-on history of a user.
func (s *TryOnService) ListByUserID(userID uint) ([]models.TryOnHistory, error) {
	return s.repo.ListByUserID(userID)
}

// Create records a try-on and emits a tryon.created event for the
// downstream recommendation pipeline.
func (s *TryOnService) Create(in models.CreateTryOnInput) (*models.TryOnHistory, error) {
	tryOn := in.ToModel()
	if err := s.repo.Create(&tryOn); err != nil {
		return nil, err
	}
	s.publishCreated(&tryOn)
	return &tryOn, nil
}

func (s *TryOnService) publishCreated(tryOn *models.TryOnHistory) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(map[string]any{
		"eventId":    uuid.New().String(),
		"tryOnId":    tryOn.ID,
		"userId":     tryOn.UserID,
		"productId":  tryOn.ProductID,
		"occurredAt": tryOn.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("Failed to marshal tryon.created event for try-on %d: %v", tryOn.ID, err)
		return
	}
	if err := s.publisher.Publish("tryon.created", body); err != nil {
		log.Printf("Warning: failed to publish tryon.created event for try-on %d: %v", tryOn.ID, err)
	}
}
