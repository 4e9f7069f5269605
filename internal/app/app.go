package app

import (
	"fmt"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/line-relay/line-relay-api/docs" // Import Swagger docs
	"github.com/line-relay/line-relay-api/internal/api"
	"github.com/line-relay/line-relay-api/internal/clients/line"
	"github.com/line-relay/line-relay-api/internal/config"
	"github.com/line-relay/line-relay-api/internal/controllers/callback"
	"github.com/line-relay/line-relay-api/internal/controllers/push"
	"github.com/line-relay/line-relay-api/internal/services/eventcache"
	"github.com/rs/zerolog"
)

const (
	// LINE redelivers failed webhooks for a limited window; ids older than this are not seen again.
	eventCacheTTL             = 10 * time.Minute
	eventCacheCleanupInterval = time.Minute
)

// CreateServers builds the LINE client and every dependency of the public app.
func CreateServers(settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	lineClient, err := line.New(line.Config{
		ChannelAccessToken: settings.ChannelAccessToken,
		Endpoint:           settings.LineAPIEndpoint,
		Timeout:            settings.DeliveryTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE client: %w", err)
	}

	events := eventcache.New(eventCacheTTL, eventCacheCleanupInterval)

	if !settings.PushEnabled() {
		logger.Warn().Msg("PUSH_KEY is not set, POST /push will reject every request")
	}
	if settings.TargetUserID == "" {
		logger.Info().Msg("TARGET_USER_ID is not set, push requests must name a recipient")
	}

	return CreateFiberApp(logger, lineClient, events, settings), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, lineClient *line.Client, events *eventcache.Cache, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting LINE relay API...")

	app := api.NewApp()
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	callbackController := callback.NewCallbackController(settings.ChannelSecret, settings.ReplyPrefix, lineClient, events)
	pushController := push.NewPushController(lineClient, settings.PushKey, settings.TargetUserID)
	logger.Info().Msg("Registering routes...")

	// Both paths are registered so either can be configured as the channel's webhook URL.
	app.Post("/webhook", callbackController.VerifySignature, callbackController.HandleCallback)
	app.Post("/callback", callbackController.VerifySignature, callbackController.HandleCallback)

	app.Post("/push", pushController.Push)

	return app
}
