package webhooks

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"messenger-bot/config"
	"messenger-bot/middleware"
)

// EventHandler receives classified messaging events. Implementations must
// not fail the webhook: delivery problems on their side are logged, never
// surfaced as a non-200 response to the platform.
type EventHandler interface {
	OnOptin(ctx context.Context, event Messaging, pageID string)
	OnMessage(ctx context.Context, event Messaging, pageID string)
	OnDelivery(ctx context.Context, event Messaging, pageID string)
	OnPostback(ctx context.Context, event Messaging, pageID string)
	OnRead(ctx context.Context, event Messaging, pageID string)
	OnAccountLinking(ctx context.Context, event Messaging, pageID string)
}

func RegisterRoutes(app *fiber.App, cfg *config.Config, handler EventHandler) {
	webhook := app.Group("/webhook")

	// Webhook verification endpoint
	webhook.Get("/", verifyWebhook(cfg))

	// Webhook event handler, gated by signature verification
	webhook.Post("/", middleware.VerifySignature(cfg), handleWebhookEvent(handler))
}

// verifyWebhook handles Facebook webhook verification
func verifyWebhook(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode == "subscribe" && token == cfg.VerifyToken {
			slog.Info("Webhook verified successfully")
			return c.SendString(challenge)
		}

		slog.Warn("Webhook verification failed", "mode", mode, "token", token)
		return c.SendStatus(fiber.StatusForbidden)
	}
}

// handleWebhookEvent accepts incoming webhook batches. The payload is
// acknowledged as soon as it parses; reply dispatch runs in the background
// and its outcome never changes the webhook's HTTP status.
func handleWebhookEvent(handler EventHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body WebhookEvent
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			slog.Error("Failed to parse webhook body", "error", err)
			return c.SendStatus(fiber.StatusBadRequest)
		}

		// Only process page events
		if body.Object != "page" {
			return c.SendStatus(fiber.StatusNotFound)
		}

		// Process webhook asynchronously
		go processWebhookEvent(body, handler)

		// Return immediately to Facebook
		return c.SendString("EVENT_RECEIVED")
	}
}

// processWebhookEvent handles the webhook processing in a separate goroutine.
// Events are handled in array order; a malformed event is skipped and the
// rest of the batch continues.
func processWebhookEvent(body WebhookEvent, handler EventHandler) {
	ctx := context.Background()

	for _, entry := range body.Entry {
		pageID := entry.ID

		slog.Info("Processing webhook for page",
			"pageID", pageID,
			"time", entry.Time,
			"events", len(entry.Messaging),
		)

		for _, messaging := range entry.Messaging {
			switch Classify(messaging) {
			case EventOptin:
				handler.OnOptin(ctx, messaging, pageID)
			case EventMessage:
				handler.OnMessage(ctx, messaging, pageID)
			case EventDelivery:
				handler.OnDelivery(ctx, messaging, pageID)
			case EventPostback:
				handler.OnPostback(ctx, messaging, pageID)
			case EventRead:
				handler.OnRead(ctx, messaging, pageID)
			case EventAccountLinking:
				handler.OnAccountLinking(ctx, messaging, pageID)
			default:
				slog.Warn("Webhook received unknown messaging event",
					"senderID", messaging.Sender.ID,
					"pageID", pageID,
				)
			}
		}
	}
}
