package app

import (
	"fmt"

	"github.com/DIMO-Network/ecobot/internal/config"
	"github.com/DIMO-Network/ecobot/internal/controllers/webhook"
	"github.com/DIMO-Network/ecobot/internal/replies"
	"github.com/DIMO-Network/ecobot/internal/services/redelivery"
	"github.com/DIMO-Network/ecobot/internal/services/sendapi"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"

	_ "github.com/DIMO-Network/ecobot/docs" // Import Swagger docs
)

// IndexMessage is served on the root route so deploys can be checked from a browser.
const IndexMessage = "Se ha desplegado de manera exitosa ECOBOT :p!!!"

// Servers holds what main needs to run and drain the service.
type Servers struct {
	App        *fiber.App
	Dispatcher *sendapi.Dispatcher
}

func CreateServers(settings *config.Settings, logger zerolog.Logger) (*Servers, error) {
	intents, err := replies.NewIntentMatcher(settings.IntentConfidenceThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to create intent matcher: %w", err)
	}
	responder := replies.NewResponder(intents)

	client := sendapi.NewClient(nil, settings.GraphAPIURL, settings.PageAccessToken)
	dispatcher := sendapi.NewDispatcher(client, settings.SendTimeout, &logger)

	guard := redelivery.NewGuard(settings.RedeliveryTTL)

	app := CreateFiberApp(logger, responder, dispatcher, guard, settings)
	return &Servers{App: app, Dispatcher: dispatcher}, nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger,
	responder webhook.Responder,
	deliverer webhook.Deliverer,
	guard webhook.RedeliveryGuard,
	settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting Ecobot webhook...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(IndexMessage)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	if settings.VerificationToken == "" {
		logger.Warn().Msg("VERIFICATION_TOKEN is not set, webhook verification will always fail")
	}
	if settings.AppSecret == "" {
		logger.Warn().Msg("APP_SECRET is not set, event signatures will not be checked")
	}

	webhookController := webhook.NewWebhookController(settings.VerificationToken, responder, deliverer, guard)
	logger.Info().Msg("Registering routes...")

	app.Get("/webhook", webhookController.Verify)
	app.Post("/webhook", webhook.SignatureMiddleware(settings.AppSecret), webhookController.ReceiveEvents)

	return app
}
