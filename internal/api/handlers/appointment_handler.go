package handlers

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"medical-appointment-service/internal/auth"
	"medical-appointment-service/internal/domain"
	"medical-appointment-service/internal/domain/dtos"
	"medical-appointment-service/internal/domain/entities"
	"medical-appointment-service/internal/fhir/mappers"
	"medical-appointment-service/internal/receipts"
	"medical-appointment-service/internal/services"
)

const (
	fhirContentType = "application/fhir+json"
	claimsLocalsKey = "claims"
)

type AppointmentHandler struct {
	bookingService services.BookingServiceContract
	doctorService  services.DoctorServiceContract
	logger         *log.Logger
	now            func() time.Time
}

func NewAppointmentHandler(bs services.BookingServiceContract, ds services.DoctorServiceContract, logger *log.Logger) *AppointmentHandler {
	return &AppointmentHandler{bookingService: bs, doctorService: ds, logger: logger, now: time.Now}
}

func (h *AppointmentHandler) Book(c *fiber.Ctx) error {
	var req dtos.BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "could not parse request: "+err.Error())
	}
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	appt, err := h.bookingService.Book(ctx, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appt)
}

// List serves GET /appointments, optionally narrowed by ?email=, split into
// upcoming and completed.
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var (
		appts []entities.Appointment
		err   error
	)
	if email := c.Query("email"); email != "" {
		appts, err = h.bookingService.ListForPatient(ctx, email)
	} else {
		appts, err = h.bookingService.List(ctx)
	}
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(services.SplitByDate(appts, h.now()))
}

// Mine lists the appointments of the bearer token's user.
func (h *AppointmentHandler) Mine(c *fiber.Ctx) error {
	claims, ok := c.Locals(claimsLocalsKey).(*auth.UserClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	appts, err := h.bookingService.ListForPatient(ctx, claims.Email)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(services.SplitByDate(appts, h.now()))
}

func (h *AppointmentHandler) Cancel(c *fiber.Ctx) error {
	var req dtos.AppointmentRefRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "could not parse request: "+err.Error())
	}
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	if err := h.bookingService.Cancel(ctx, req); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Slip renders the referenced appointment as a PDF.
func (h *AppointmentHandler) Slip(c *fiber.Ctx) error {
	var req dtos.AppointmentRefRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "could not parse request: "+err.Error())
	}
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	appt, err := h.bookingService.Find(ctx, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	// the doctor may have left the catalogue since booking
	doctor, err := h.doctorService.Get(ctx, appt.DoctorID)
	if err != nil && !errors.Is(err, domain.ErrDoctorNotFound) {
		return respondError(c, h.logger, err)
	}
	pdf, err := receipts.RenderAppointmentSlip(*appt, doctor)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="appointment-slip.pdf"`)
	return c.Send(pdf)
}

// FHIR returns the referenced appointment as a FHIR Appointment resource.
func (h *AppointmentHandler) FHIR(c *fiber.Ctx) error {
	var req dtos.AppointmentRefRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "could not parse request: "+err.Error())
	}
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	appt, err := h.bookingService.Find(ctx, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	raw, err := mappers.MapAppointmentToFHIR(*appt)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	c.Set(fiber.HeaderContentType, fhirContentType)
	return c.Send(raw)
}

// RequireBearer rejects requests without a valid "Authorization: Bearer"
// token and exposes the token's claims to the next handler.
func RequireBearer(tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}
		claims, err := tokens.Verify(strings.TrimSpace(raw))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}
		c.Locals(claimsLocalsKey, claims)
		return c.Next()
	}
}
