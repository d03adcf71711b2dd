package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"medical-appointment-service/internal/auth"
	"medical-appointment-service/internal/domain/dtos"
	"medical-appointment-service/internal/services"
)

type AuthHandler struct {
	identityService services.IdentityServiceContract
	tokens          *auth.TokenIssuer
	logger          *log.Logger
}

func NewAuthHandler(is services.IdentityServiceContract, tokens *auth.TokenIssuer, logger *log.Logger) *AuthHandler {
	return &AuthHandler{identityService: is, tokens: tokens, logger: logger}
}

// Signup starts a signup and returns the code, which stands in for an SMS.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dtos.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "could not parse request: "+err.Error())
	}
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	sess := sessionFrom(c)
	otp, err := h.identityService.BeginSignup(ctx, sess, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dtos.SignupResponse{
		Message:  "verification code sent",
		OTP:      otp,
		ResendIn: sess.Cooldown.Remaining(),
	})
}

func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req dtos.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "could not parse request: "+err.Error())
	}
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	user, err := h.identityService.VerifyOTP(ctx, sessionFrom(c), req.OTP)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dtos.NewUserResponse(*user))
}

// Resend issues a new code once the cooldown has run out.
func (h *AuthHandler) Resend(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	sess := sessionFrom(c)
	if !sess.Cooldown.CanResend() {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":    "verification code was sent recently",
			"resendIn": sess.Cooldown.Remaining(),
		})
	}
	otp, err := h.identityService.ResendOTP(ctx, sess)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dtos.SignupResponse{
		Message:  "verification code re-sent",
		OTP:      otp,
		ResendIn: sess.Cooldown.Remaining(),
	})
}

func (h *AuthHandler) ResendStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	status, err := h.identityService.ResendStatus(ctx, sessionFrom(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(status)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dtos.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "could not parse request: "+err.Error())
	}
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	user, err := h.identityService.Login(ctx, sessionFrom(c), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	token, err := h.tokens.Issue(*user)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dtos.LoginResponse{User: dtos.NewUserResponse(*user), Token: token})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	if err := h.identityService.Logout(ctx, sessionFrom(c)); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the session's logged-in user, or 404 when nobody is logged in.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	user, err := h.identityService.CurrentUser(ctx, sessionFrom(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not logged in"})
	}
	return c.JSON(dtos.NewUserResponse(*user))
}
