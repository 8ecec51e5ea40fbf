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

// MeasurementHandler handles HTTP requests for body measurements.
type MeasurementHandler struct {
	service  *services.MeasurementService
	validate *validator.Validate
}

// NewMeasurementHandler creates a new MeasurementHandler.
func NewMeasurementHandler(service *services.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the measurement routes with the Fiber app.
func (h *MeasurementHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/measurements/:id", h.HandleGetMeasurement)
	router.Get("/users/:userId/measurements", h.HandleGetUserMeasurements)
	router.Post("/measurements", h.HandleCreateMeasurement)
}

func (h *MeasurementHandler) HandleGetMeasurement(c *fiber.Ctx) error {
	measurementID, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "Invalid measurement ID")
	}

	measurement, err := h.service.GetByID(measurementID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, "Measurement not found")
		}
		return internalError(c, "Error fetching measurement", err)
	}
	return c.JSON(measurement)
}

// HandleGetUserMeasurements lists a user's measurement history; an
// empty history is a 200 with an empty list.
func (h *MeasurementHandler) HandleGetUserMeasurements(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return badRequest(c, "Invalid user ID")
	}

	measurements, err := h.service.ListByUserID(userID)
	if err != nil {
		return internalError(c, "Error fetching measurements", err)
	}
	return c.JSON(measurements)
}

func (h *MeasurementHandler) HandleCreateMeasurement(c *fiber.Ctx) error {
	var in models.CreateMeasurementInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid measurement data")
	}
	if err := validation.Struct(h.validate, in); err != nil {
		return validationFailure(c, "Invalid measurement data", err)
	}

	measurement, err := h.service.Create(in)
	if err != nil {
		return internalError(c, "Error creating measurement", err)
	}
	return c.Status(fiber.StatusCreated).JSON(measurement)
}
