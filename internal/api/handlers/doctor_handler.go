package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"medical-appointment-service/internal/domain/dtos"
	"medical-appointment-service/internal/fhir/mappers"
	"medical-appointment-service/internal/services"
)

const requestTimeout = 10 * time.Second

type DoctorHandler struct {
	doctorService services.DoctorServiceContract
	logger        *log.Logger
}

func NewDoctorHandler(ds services.DoctorServiceContract, logger *log.Logger) *DoctorHandler {
	return &DoctorHandler{doctorService: ds, logger: logger}
}

// Search serves GET /doctors?q=&specialty=.
func (h *DoctorHandler) Search(c *fiber.Ctx) error {
	var req dtos.DoctorSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "could not parse query: "+err.Error())
	}
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	doctors, err := h.doctorService.Search(ctx, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(doctors)
}

func (h *DoctorHandler) Specialties(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	specialties, err := h.doctorService.Specialties(ctx)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(specialties)
}

func (h *DoctorHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "doctor id must be an integer")
	}
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	doctor, err := h.doctorService.Get(ctx, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(doctor)
}

// Slots serves GET /doctors/:id/slots?date=YYYY-MM-DD.
func (h *DoctorHandler) Slots(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "doctor id must be an integer")
	}
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	resp, err := h.doctorService.Slots(ctx, id, c.Query("date"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// Practitioner serves the doctor as a FHIR Practitioner resource.
func (h *DoctorHandler) Practitioner(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "doctor id must be an integer")
	}
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	doctor, err := h.doctorService.Get(ctx, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	raw, err := mappers.MapDoctorToPractitioner(*doctor)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	c.Set(fiber.HeaderContentType, fhirContentType)
	return c.Send(raw)
}
