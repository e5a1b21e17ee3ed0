// Command webhook_receiver stands in for the Graph Send API during local runs.
// Point GRAPH_API_URL at it and every reply the bot sends is logged.
package main

import (
	"flag"

	"github.com/DIMO-Network/ecobot/internal/messenger"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func main() {
	logger := logging.GetAndSetDefaultLogger("webhook-receiver")
	addr := flag.String("addr", ":4001", "listen address")
	flag.Parse()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/me/messages", func(c *fiber.Ctx) error {
		if c.Query("access_token") == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": fiber.Map{"message": "An access token is required to request this resource."},
			})
		}

		var req messenger.SendRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fiber.Map{"message": err.Error()},
			})
		}
		logger.Info().
			Str("recipient", req.Recipient.ID).
			Interface("message", req.Message).
			Msg("Send API got message")

		return c.JSON(fiber.Map{
			"recipient_id": req.Recipient.ID,
			"message_id":   "m_" + uuid.NewString(),
		})
	})

	logger.Info().Str("addr", *addr).Msg("Listening")
	if err := app.Listen(*addr); err != nil {
		logger.Fatal().Err(err).Msg("Receiver failed.")
	}
}
