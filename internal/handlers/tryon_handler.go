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

// TryOnHandler handles HTTP requests for try-on history.
type TryOnHandler struct {
	service  *services.TryOnService
	validate *validator.Validate
}

// NewTryOnHandler creates a new TryOnHandler.
func NewTryOnHandler(service *services.TryOnService) *TryOnHandler {
	return &TryOnHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the try-on routes with the Fiber app.
func (h *TryOnHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/tryons/:id", h.HandleGetTryOn)
	router.Get("/users/:userId/tryons", h.HandleGetUserTryOns)
	router.Post("/tryons", h.HandleCreateTryOn)
}

func (h *TryOnHandler) HandleGetTryOn(c *fiber.Ctx) error {
	tryOnID, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "Invalid try-on history ID")
	}

	tryOn, err := h.service.GetByID(tryOnID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, "Try-on history not found")
		}
		return internalError(c, "Error fetching try-on history", err)
	}
	return c.JSON(tryOn)
}

func (h *TryOnHandler) HandleGetUserTryOns(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return badRequest(c, "Invalid user ID")
	}

	history, err := h.service.ListByUserID(userID)
	if err != nil {
		return internalError(c, "Error fetching try-on history", err)
	}
	return c.JSON(history)
}

func (h *TryOnHandler) HandleCreateTryOn(c *fiber.Ctx) error {
	var in models.CreateTryOnInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid try-on data")
	}
	if err := validation.Struct(h.validate, in); err != nil {
		return validationFailure(c, "Invalid try-on data", err)
	}

	tryOn, err := h.service.Create(in)
	if err != nil {
		return internalError(c, "Error saving try-on history", err)
	}
	return c.Status(fiber.StatusCreated).JSON(tryOn)
}
