package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"medical-appointment-service/internal/domain"
)

// errorStatus maps a service error to its HTTP status.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateUser), errors.Is(err, domain.ErrDoctorUnavailable):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNoPendingSignup),
		errors.Is(err, domain.ErrDoctorNotFound),
		errors.Is(err, domain.ErrAppointmentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidOTP), errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrSlotUnavailable):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrTooManyAttempts):
		return fiber.StatusTooManyRequests
	}
	return fiber.StatusInternalServerError
}

// respondError writes err as {"error": ...}. Internal errors are logged and
// their text is not sent to the client.
func respondError(c *fiber.Ctx, logger *log.Logger, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}
	body := fiber.Map{"error": err.Error()}
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		body["fields"] = vErr.Fields
	}
	return c.Status(status).JSON(body)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
