package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"medical-appointment-service/internal/adapters"
	"medical-appointment-service/internal/adapters/kvstore"
	"medical-appointment-service/internal/api/handlers"
	"medical-appointment-service/internal/auth"
	"medical-appointment-service/internal/config"
	"medical-appointment-service/internal/domain/repositories"
	"medical-appointment-service/internal/persistence"
	"medical-appointment-service/internal/services"
)

func newLogger(component string) *log.Logger {
	return log.New(os.Stdout, component+": ", log.LstdFlags)
}

func main() {
	logger := newLogger("server")

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	store, err := kvstore.Open(connectCtx, cfg.Store, newLogger("store"))
	cancel()
	if err != nil {
		logger.Fatalf("Error opening %s store: %v", cfg.Store.Backend, err)
	}
	defer store.Close()

	var doctorRepo repositories.DoctorRepositoryContract
	if cfg.DoctorsFile != "" {
		doctorRepo, err = persistence.NewFileDoctorRepository(cfg.DoctorsFile)
	} else {
		doctorRepo, err = persistence.NewBuiltinDoctorRepository()
	}
	if err != nil {
		logger.Fatalf("Error loading doctor catalogue: %v", err)
	}

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		logger.Fatalf("Error configuring tokens: %v", err)
	}

	queue := adapters.NewInMemoryQueueAdapter(newLogger("queue"))
	notifyLogger := newLogger("notification")
	notifications := services.NewNotificationService(queue, services.NewLogSender(notifyLogger), cfg.NotifyWorkers, notifyLogger)
	if err := notifications.Start(ctx); err != nil {
		logger.Fatalf("Error starting notification service: %v", err)
	}

	identity := services.NewIdentityService(
		persistence.NewUserRepository(store),
		persistence.NewPendingSignupRepository(store),
		persistence.NewSessionRepository(store),
		queue,
		newLogger("identity"),
		services.WithMaxOTPAttempts(cfg.OTPMaxAttempts),
	)
	doctors := services.NewDoctorService(doctorRepo, newLogger("doctors"))
	booking := services.NewBookingService(persistence.NewAppointmentRepository(store), doctorRepo, queue, newLogger("booking"))

	app := fiber.New(fiber.Config{AppName: "medical-appointment-service"})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowOrigins,
		AllowMethods:  "GET,POST,DELETE",
		AllowHeaders:  "Content-Type,Authorization," + handlers.SessionHeader,
		ExposeHeaders: handlers.SessionHeader,
	}))

	handlerLogger := newLogger("http")
	handlers.RegisterRoutes(app,
		handlers.NewDoctorHandler(doctors, handlerLogger),
		handlers.NewAuthHandler(identity, tokens, handlerLogger),
		handlers.NewAppointmentHandler(booking, doctors, handlerLogger),
		handlers.NewSessionRegistry(),
		tokens,
	)

	go func() {
		<-ctx.Done()
		logger.Println("Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Printf("Error shutting down HTTP server: %v", err)
		}
	}()

	logger.Printf("Listening on %s (store: %s)", cfg.HTTPAddr, cfg.Store.Backend)
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		logger.Printf("HTTP server stopped: %v", err)
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	if err := notifications.Stop(stopCtx); err != nil {
		logger.Printf("Error stopping notification service: %v", err)
	}
	if err := queue.Close(stopCtx); err != nil {
		logger.Printf("Error closing queue: %v", err)
	}
	logger.Println("Server exited")
}
