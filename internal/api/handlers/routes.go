package handlers

import (
	"github.com/gofiber/fiber/v2"

	"medical-appointment-service/internal/auth"
)

// RegisterRoutes mounts every API route on app. Auth routes run inside the
// session middleware.
func RegisterRoutes(
	app *fiber.App,
	dh *DoctorHandler,
	ah *AuthHandler,
	aph *AppointmentHandler,
	sessions *SessionRegistry,
	tokens *auth.TokenIssuer,
) {
	doctors := app.Group("/doctors")
	doctors.Get("/", dh.Search)
	doctors.Get("/specialties", dh.Specialties)
	doctors.Get("/:id", dh.Get)
	doctors.Get("/:id/slots", dh.Slots)

	app.Get("/fhir/Practitioner/:id", dh.Practitioner)

	authGroup := app.Group("/auth", sessions.Middleware())
	authGroup.Post("/signup", ah.Signup)
	authGroup.Post("/verify", ah.Verify)
	authGroup.Post("/resend", ah.Resend)
	authGroup.Get("/resend", ah.ResendStatus)
	authGroup.Post("/login", ah.Login)
	authGroup.Post("/logout", ah.Logout)
	authGroup.Get("/me", ah.Me)

	appointments := app.Group("/appointments")
	appointments.Post("/", aph.Book)
	appointments.Get("/", aph.List)
	appointments.Get("/mine", RequireBearer(tokens), aph.Mine)
	appointments.Delete("/", aph.Cancel)
	appointments.Post("/slip", aph.Slip)
	appointments.Post("/fhir", aph.FHIR)
}
