package webhook

import (
	"context"

	"github.com/DIMO-Network/ecobot/internal/messenger"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Responder picks the reply for an inbound event; nil means no reply.
type Responder interface {
	Respond(ctx context.Context, event *messenger.MessagingEvent) *messenger.Reply
}

// Deliverer sends a reply without blocking the caller.
type Deliverer interface {
	Dispatch(recipientID string, reply *messenger.Reply)
}

// RedeliveryGuard filters out events the platform has already delivered.
type RedeliveryGuard interface {
	FirstDelivery(id string) bool
}

// WebhookController serves the Messenger webhook.
type WebhookController struct {
	verificationToken string
	responder         Responder
	deliverer         Deliverer
	guard             RedeliveryGuard
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(verificationToken string, responder Responder, deliverer Deliverer, guard RedeliveryGuard) *WebhookController {
	return &WebhookController{
		verificationToken: verificationToken,
		responder:         responder,
		deliverer:         deliverer,
		guard:             guard,
	}
}

// Verify godoc
// @Summary      Verify the webhook subscription
// @Description  Echoes hub.challenge when hub.verify_token matches the configured verification token.
// @Tags         Webhook
// @Produce      plain
// @Param        hub.mode          query     string  false  "Subscription mode"
// @Param        hub.verify_token  query     string  true   "Verification token"
// @Param        hub.challenge     query     string  true   "Challenge to echo back"
// @Success      200  {string}  string  "The challenge"
// @Failure      403  "Verification token mismatch"
// @Router       /webhook [get]
func (w *WebhookController) Verify(c *fiber.Ctx) error {
	logger := zerolog.Ctx(c.UserContext())
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if w.verificationToken == "" || token != w.verificationToken {
		logger.Warn().Str("mode", c.Query("hub.mode")).Msg("Webhook verification failed, tokens do not match")
		c.Status(fiber.StatusForbidden)
		return nil
	}

	logger.Info().Msg("Webhook verified")
	return c.Status(fiber.StatusOK).SendString(challenge)
}

// ReceiveEvents godoc
// @Summary      Receive Messenger events
// @Description  Accepts a batch of page events and answers the first event of every entry. Replies are delivered asynchronously.
// @Tags         Webhook
// @Accept       json
// @Param        request  body  messenger.Callback  true  "Webhook callback"
// @Success      200  "Events accepted"
// @Failure      400  "Invalid request payload"
// @Failure      404  "Not a page subscription"
// @Router       /webhook [post]
func (w *WebhookController) ReceiveEvents(c *fiber.Ctx) error {
	var callback messenger.Callback
	if err := c.BodyParser(&callback); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	if callback.Object != messenger.ObjectPage {
		return c.SendStatus(fiber.StatusNotFound)
	}

	ctx := c.UserContext()
	for i := range callback.Entry {
		entry := &callback.Entry[i]
		// Only the first event of an entry is answered.
		if len(entry.Messaging) == 0 {
			zerolog.Ctx(ctx).Debug().Str("entry_id", entry.ID).Msg("Entry without messaging events")
			continue
		}
		w.handleEvent(ctx, &entry.Messaging[0])
	}

	return c.SendStatus(fiber.StatusOK)
}

func (w *WebhookController) handleEvent(ctx context.Context, event *messenger.MessagingEvent) {
	psid := event.Sender.ID
	logger := zerolog.Ctx(ctx).With().Str("psid", psid).Logger()
	ctx = logger.WithContext(ctx)

	if msg := event.Message; msg != nil {
		if msg.IsEcho {
			logger.Debug().Str("mid", msg.MID).Msg("Ignoring echo")
			return
		}
		if w.guard != nil && !w.guard.FirstDelivery(msg.MID) {
			logger.Info().Str("mid", msg.MID).Msg("Ignoring redelivered message")
			return
		}
	}
	if event.Postback != nil {
		logger.Debug().Str("payload", event.Postback.Payload).Msg("Received postback")
	}

	reply := w.responder.Respond(ctx, event)
	if reply == nil {
		logger.Debug().Msg("Event needs no reply")
		return
	}
	if psid == "" {
		logger.Warn().Msg("Event has no sender, dropping reply")
		return
	}

	w.deliverer.Dispatch(psid, reply)
}
