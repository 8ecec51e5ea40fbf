package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vastra/internal/models"
	"vastra/internal/services"
	"vastra/internal/validation"
)

// WishlistHandler handles HTTP requests for wishlists.
type WishlistHandler struct {
	service  *services.WishlistService
	validate *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users/:userId/wishlist", h.HandleGetWishlist)
	router.Post("/wishlist", h.HandleAddToWishlist)
	router.Delete("/users/:userId/wishlist/:productId", h.HandleRemoveFromWishlist)
}

// HandleGetWishlist lists a user's wishlist, each entry carrying its
// product inline.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return badRequest(c, "Invalid user ID")
	}

	entries, err := h.service.ListByUserID(userID)
	if err != nil {
		return internalError(c, "Error fetching wishlist", err)
	}
	return c.JSON(entries)
}

// HandleAddToWishlist saves a (user, product) pair. Adding the same
// pair again returns the existing entry, still a 201.
func (h *WishlistHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	var in models.CreateWishlistInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid wishlist data")
	}
	if err := validation.Struct(h.validate, in); err != nil {
		return validationFailure(c, "Invalid wishlist data", err)
	}

	item, err := h.service.Add(in)
	if err != nil {
		return internalError(c, "Error adding to wishlist", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleRemoveFromWishlist deletes a pair; removing an absent pair is
// still a 204.
func (h *WishlistHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return badRequest(c, "Invalid user ID or product ID")
	}
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return badRequest(c, "Invalid user ID or product ID")
	}

	if err := h.service.Remove(userID, productID); err != nil {
		return internalError(c, "Error removing from wishlist", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
