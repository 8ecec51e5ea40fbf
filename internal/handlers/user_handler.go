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

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users/:id", h.HandleGetUser)
	router.Post("/users", h.HandleCreateUser)
}

// HandleGetUser fetches a user by ID. The password never appears in
// the response.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "Invalid user ID")
	}

	user, err := h.service.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, "Error fetching user", err)
	}
	return c.JSON(user)
}

// HandleCreateUser creates a new user account.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var in models.CreateUserInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid user data")
	}
	if err := validation.Struct(h.validate, in); err != nil {
		return validationFailure(c, "Invalid user data", err)
	}

	user, err := h.service.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			return badRequest(c, "Username already exists")
		case errors.Is(err, services.ErrEmailTaken):
			return badRequest(c, "Email already exists")
		case errors.Is(err, repositories.ErrDuplicate):
			// concurrent registration slipped past the pre-insert
			// checks and hit the unique index
			return badRequest(c, "Username or email already exists")
		}
		return internalError(c, "Error creating user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}
