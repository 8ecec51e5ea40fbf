package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vastra/internal/models"
	"vastra/internal/repositories"
	"vastra/internal/services"
	"vastra/internal/validation"
)

// AvatarHandler handles HTTP requests for 3D avatars.
type AvatarHandler struct {
	service  *services.AvatarService
	validate *validator.Validate
}

// NewAvatarHandler creates a new AvatarHandler.
func NewAvatarHandler(service *services.AvatarService) *AvatarHandler {
	return &AvatarHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the avatar routes with the Fiber app.
func (h *AvatarHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/avatars/:id", h.HandleGetAvatar)
	router.Get("/users/:userId/avatar", h.HandleGetUserAvatar)
	router.Post("/avatars", h.HandleCreateAvatar)
}

func (h *AvatarHandler) HandleGetAvatar(c *fiber.Ctx) error {
	avatarID, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "Invalid avatar ID")
	}

	avatar, err := h.service.GetByID(avatarID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, "Avatar not found")
		}
		return internalError(c, "Error fetching avatar", err)
	}
	return c.JSON(avatar)
}

func (h *AvatarHandler) HandleGetUserAvatar(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return badRequest(c, "Invalid user ID")
	}

	avatar, err := h.service.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, "Avatar not found for this user")
		}
		return internalError(c, "Error fetching avatar", err)
	}
	return c.JSON(avatar)
}

func (h *AvatarHandler) HandleCreateAvatar(c *fiber.Ctx) error {
	var in models.CreateAvatarInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid avatar data")
	}
	if err := validation.Struct(h.validate, in); err != nil {
		return validationFailure(c, "Invalid avatar data", err)
	}

	avatar, err := h.service.Create(in)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return badRequest(c, "User already has an avatar")
		}
		return internalError(c, "Error creating avatar", err)
	}
	return c.Status(fiber.StatusCreated).JSON(avatar)
}
