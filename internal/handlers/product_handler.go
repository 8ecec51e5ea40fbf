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

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/products/:id", h.HandleGetProduct)
	router.Post("/products", h.HandleCreateProduct)
}

// HandleGetProducts lists the catalog filtered by the optional query
// parameters. Unparseable numeric filters are ignored.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Category:   c.Query("category"),
		Gender:     c.Query("gender"),
		Type:       c.Query("type"),
		Brand:      c.Query("brand"),
		Occasion:   c.Query("occasion"),
		Fabric:     c.Query("fabric"),
		MinPrice:   queryInt(c, "minPrice"),
		MaxPrice:   queryInt(c, "maxPrice"),
		RetailerID: queryUint(c, "retailerId"),
		Featured:   queryBool(c, "featured"),
	}

	products, err := h.service.List(filter)
	if err != nil {
		return internalError(c, "Error fetching products", err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "Invalid product ID")
	}

	product, err := h.service.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Error fetching product", err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in models.CreateProductInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid product data")
	}
	if err := validation.Struct(h.validate, in); err != nil {
		return validationFailure(c, "Invalid product data", err)
	}

	product, err := h.service.Create(in)
	if err != nil {
		return internalError(c, "Error creating product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}
