package handlers

import (
	"context"
	"log/slog"
	"strings"

	"messenger-bot/webhooks"
)

// OnPostback handles a tapped postback button. The payload vocabulary is
// fixed; anything else is logged and produces no outbound call.
func (b *Bot) OnPostback(ctx context.Context, event webhooks.Messaging, pageID string) {
	senderID := event.Sender.ID
	payload := event.Postback.Payload

	slog.Info("Received postback",
		"senderID", senderID,
		"pageID", event.Recipient.ID,
		"payload", payload,
		"timestamp", event.Timestamp,
	)

	switch strings.ToLower(payload) {
	case "jobs":
		b.send(ctx, senderID, textReply(jobsPromptIntro))
		b.send(ctx, senderID, textReply(jobsPromptExample))
	case "events":
		b.send(ctx, senderID, textReply(eventsPromptIntro))
		b.send(ctx, senderID, textReply(`Enter keywords for the type of events you are interested in. For example: for events focused on iOS development, reply "events iOS"`))
	case "companies":
		b.send(ctx, senderID, textReply(companiesPromptIntro))
		b.send(ctx, senderID, textReply(companiesPromptExample))
	default:
		// Unrecognized payloads are not acknowledged to the sender.
		slog.Info("Unrecognized postback payload", "payload", payload)
	}
}
