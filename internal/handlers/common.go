package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"vastra/internal/validation"
)

// parseIDParam parses a numeric path parameter. Non-numeric values
// are rejected before any store access.
func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// queryInt reads an optional integer query parameter. Invalid values
// are dropped, not rejected.
func queryInt(c *fiber.Ctx, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryUint reads an optional unsigned integer query parameter with
// the same lenient policy as queryInt.
func queryUint(c *fiber.Ctx, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(v)
	return &id
}

// queryBool reads an optional boolean query parameter; only the
// literal "true" counts as true.
func queryBool(c *fiber.Ctx, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v := raw == "true"
	return &v
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": message,
	})
}

// internalError logs the cause and answers with an opaque 500.
func internalError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
	})
}

// validationFailure maps a validation error onto a 400 carrying the
// full per-field violation list.
func validationFailure(c *fiber.Ctx, message string, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": message,
			"errors":  verr.Fields,
		})
	}
	return internalError(c, message, err)
}
