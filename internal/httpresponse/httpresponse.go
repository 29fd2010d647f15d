// Package httpresponse standardizes the JSON envelopes returned by the API
// routes.
package httpresponse

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Success writes a 200 envelope. Extra fields are merged alongside the
// success flag.
func Success(c *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// BadRequest writes a 400 envelope with the message and optional detail list.
func BadRequest(c *fiber.Ctx, message string, details []string) error {
	body := fiber.Map{"success": false, "error": message}
	if len(details) > 0 {
		body["details"] = details
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// NotFound writes a 404 envelope.
func NotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": message})
}

// Error logs the underlying error and writes a 500 envelope carrying the
// public message only.
func Error(c *fiber.Ctx, message string, err error) error {
	if err != nil {
		log.Error(fmt.Sprintf("%s %s failed: %v", c.Method(), c.Path(), err))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": message})
}
