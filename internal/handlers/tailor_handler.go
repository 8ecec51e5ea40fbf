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

// TailorServiceHandler handles HTTP requests for tailor services.
type TailorServiceHandler struct {
	service  *services.TailorServiceService
	validate *validator.Validate
}

// NewTailorServiceHandler creates a new TailorServiceHandler.
func NewTailorServiceHandler(service *services.TailorServiceService) *TailorServiceHandler {
	return &TailorServiceHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the tailor service routes with the Fiber app.
func (h *TailorServiceHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/tailor-services", h.HandleGetTailorServices)
	router.Get("/tailor-services/:id", h.HandleGetTailorService)
	router.Get("/users/:userId/tailor-service", h.HandleGetUserTailorService)
	router.Post("/tailor-services", h.HandleCreateTailorService)
}

// HandleGetTailorServices lists tailor services filtered by the
// optional query parameters. Unparseable rate bounds are ignored.
func (h *TailorServiceHandler) HandleGetTailorServices(c *fiber.Ctx) error {
	filter := repositories.TailorServiceFilter{
		City:           c.Query("city"),
		ServiceType:    c.Query("serviceType"),
		MinRatePerHour: queryInt(c, "minRatePerHour"),
		MaxRatePerHour: queryInt(c, "maxRatePerHour"),
		IsVerified:     queryBool(c, "isVerified"),
	}

	tailorServices, err := h.service.List(filter)
	if err != nil {
		return internalError(c, "Error fetching tailor services", err)
	}
	return c.JSON(tailorServices)
}

func (h *TailorServiceHandler) HandleGetTailorService(c *fiber.Ctx) error {
	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "Invalid tailor service ID")
	}

	tailorService, err := h.service.GetByID(serviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, "Tailor service not found")
		}
		return internalError(c, "Error fetching tailor service", err)
	}
	return c.JSON(tailorService)
}

func (h *TailorServiceHandler) HandleGetUserTailorService(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return badRequest(c, "Invalid user ID")
	}

	tailorService, err := h.service.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, "Tailor service not found for this user")
		}
		return internalError(c, "Error fetching tailor service", err)
	}
	return c.JSON(tailorService)
}

func (h *TailorServiceHandler) HandleCreateTailorService(c *fiber.Ctx) error {
	var in models.CreateTailorServiceInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid tailor service data")
	}
	if err := validation.Struct(h.validate, in); err != nil {
		return validationFailure(c, "Invalid tailor service data", err)
	}

	tailorService, err := h.service.Create(in)
	if err != nil {
		return internalError(c, "Error creating tailor service", err)
	}
	return c.Status(fiber.StatusCreated).JSON(tailorService)
}
