package handlers

import (
	"context"
	"log/slog"

	"messenger-bot/config"
	"messenger-bot/models"
	"messenger-bot/services"
	"messenger-bot/webhooks"
)

// Sender delivers one outbound payload to a recipient. Delivery is
// at-most-once; failures are the sender's to log.
type Sender interface {
	Send(ctx context.Context, recipientID string, msg models.Outbound) error
}

// CompanyLookup resolves a free-text keyword to employer records.
type CompanyLookup interface {
	SearchEmployers(ctx context.Context, keyword string) ([]services.Employer, error)
}

// Contacts reports whether a sender is messaging the bot for the first time.
type Contacts interface {
	FirstContact(senderID string) bool
}

// Bot routes classified webhook events to replies.
type Bot struct {
	cfg       *config.Config
	sender    Sender
	companies CompanyLookup
	contacts  Contacts
}

func NewBot(cfg *config.Config, sender Sender, companies CompanyLookup, contacts Contacts) *Bot {
	return &Bot{
		cfg:       cfg,
		sender:    sender,
		companies: companies,
		contacts:  contacts,
	}
}

// send dispatches one reply. A failed send is logged and dropped so it can
// never affect the webhook's own response.
func (b *Bot) send(ctx context.Context, recipientID string, msg models.Outbound) {
	if err := b.sender.Send(ctx, recipientID, msg); err != nil {
		slog.Error("Failed to send reply", "recipientID", recipientID, "error", err)
	}
}

// OnOptin handles a "Send to Messenger" authentication event.
func (b *Bot) OnOptin(ctx context.Context, event webhooks.Messaging, pageID string) {
	slog.Info("Received authentication",
		"senderID", event.Sender.ID,
		"pageID", event.Recipient.ID,
		"ref", event.Optin.Ref,
		"timestamp", event.Timestamp,
	)

	b.send(ctx, event.Sender.ID, textReply("Authentication successful"))
}

// OnDelivery handles a delivery confirmation event.
func (b *Bot) OnDelivery(ctx context.Context, event webhooks.Messaging, pageID string) {
	delivery := event.Delivery

	for _, mid := range delivery.MIDs {
		slog.Info("Received delivery confirmation", "messageID", mid)
	}

	slog.Info("Messages delivered", "watermark", delivery.Watermark, "seq", delivery.Seq)
}

// OnRead handles a message read event.
func (b *Bot) OnRead(ctx context.Context, event webhooks.Messaging, pageID string) {
	slog.Info("Received message read event",
		"senderID", event.Sender.ID,
		"watermark", event.Read.Watermark,
		"seq", event.Read.Seq,
	)
}

// OnAccountLinking handles a Link Account or Unlink Account event.
func (b *Bot) OnAccountLinking(ctx context.Context, event webhooks.Messaging, pageID string) {
	slog.Info("Received account link event",
		"senderID", event.Sender.ID,
		"status", event.AccountLinking.Status,
		"authCode", event.AccountLinking.AuthorizationCode,
	)
}
