package handlers

import (
	"context"
	"log/slog"
	"strings"

	"messenger-bot/models"
	"messenger-bot/webhooks"
)

// textRule matches a case-folded message text either exactly or by prefix.
// Rules are evaluated top to bottom; the first match wins. Prefix rules
// receive the remainder of the original text after the prefix, not trimmed.
type textRule struct {
	keyword string
	prefix  bool
	handle  func(b *Bot, ctx context.Context, senderID, remainder string)
}

var textRules = []textRule{
	{keyword: "image", handle: (*Bot).sendImage},
	{keyword: "gif", handle: (*Bot).sendGif},
	{keyword: "audio", handle: (*Bot).sendAudio},
	{keyword: "video", handle: (*Bot).sendVideo},
	{keyword: "file", handle: (*Bot).sendFile},
	{keyword: "button", handle: (*Bot).sendButton},
	{keyword: "generic", handle: (*Bot).sendGeneric},
	{keyword: "receipt", handle: (*Bot).sendReceipt},
	{keyword: "quick reply", handle: (*Bot).sendQuickReply},
	{keyword: "read receipt", handle: (*Bot).sendReadReceipt},
	{keyword: "typing on", handle: (*Bot).sendTypingOn},
	{keyword: "typing off", handle: (*Bot).sendTypingOff},
	{keyword: "account linking", handle: (*Bot).sendAccountLinking},
	{keyword: "jobs", prefix: true, handle: (*Bot).sendJobs},
	{keyword: "events", prefix: true, handle: (*Bot).sendEvents},
	{keyword: "company", prefix: true, handle: (*Bot).sendCompany},
}

// OnMessage handles a received message. Echoes of the bot's own messages
// short-circuit with no reply. A first-time sender gets the welcome message
// instead of routed processing.
func (b *Bot) OnMessage(ctx context.Context, event webhooks.Messaging, pageID string) {
	senderID := event.Sender.ID
	message := event.Message

	slog.Info("Received message",
		"senderID", senderID,
		"pageID", event.Recipient.ID,
		"timestamp", event.Timestamp,
		"messageID", message.MID,
	)

	if message.IsEcho {
		slog.Info("Received echo",
			"messageID", message.MID,
			"appID", message.AppID,
			"metadata", message.Metadata,
		)
		return
	}

	if b.contacts != nil && b.contacts.FirstContact(senderID) {
		b.send(ctx, senderID, welcomeReply())
		return
	}

	if message.QuickReply != nil {
		slog.Info("Quick reply tapped",
			"messageID", message.MID,
			"payload", message.QuickReply.Payload,
		)
		b.send(ctx, senderID, textReply("Quick reply tapped"))
		return
	}

	if message.Text != "" {
		b.routeText(ctx, senderID, message.Text)
		return
	}

	if len(message.Attachments) > 0 {
		b.send(ctx, senderID, textReply("Message with attachment received"))
	}
}

// routeText matches the message text against the rule table and falls back
// to echoing the text verbatim.
func (b *Bot) routeText(ctx context.Context, senderID, text string) {
	folded := strings.ToLower(text)

	for _, rule := range textRules {
		if rule.prefix {
			if strings.HasPrefix(folded, rule.keyword) {
				rule.handle(b, ctx, senderID, text[len(rule.keyword):])
				return
			}
			continue
		}
		if folded == rule.keyword {
			rule.handle(b, ctx, senderID, "")
			return
		}
	}

	b.send(ctx, senderID, textReply(text))
}

func (b *Bot) sendImage(ctx context.Context, senderID, _ string) {
	b.send(ctx, senderID, mediaReply(models.MediaImage, b.cfg.ServerURL+"/assets/rift.png"))
}

func (b *Bot) sendGif(ctx context.Context, senderID, _ string) {
	b.send(ctx, senderID, mediaReply(models.MediaImage, b.cfg.ServerURL+"/assets/gunter.gif"))
}

func (b *Bot) sendAudio(ctx context.Context, senderID, _ string) {
	b.send(ctx, senderID, mediaReply(models.MediaAudio, b.cfg.ServerURL+"/assets/sample.mp3"))
}

func (b *Bot) sendVideo(ctx context.Context, senderID, _ string) {
	b.send(ctx, senderID, mediaReply(models.MediaVideo, b.cfg.ServerURL+"/assets/allofus480.mov"))
}

func (b *Bot) sendFile(ctx context.Context, senderID, _ string) {
	b.send(ctx, senderID, mediaReply(models.MediaFile, b.cfg.ServerURL+"/assets/test.txt"))
}

func (b *Bot) sendButton(ctx context.Context, senderID, _ string) {
	b.send(ctx, senderID, buttonReply())
}

func (b *Bot) sendGeneric(ctx context.Context, senderID, _ string) {
	b.send(ctx, senderID, genericReply(b.cfg.ServerURL))
}

func (b *Bot) sendReceipt(ctx context.Context, senderID, _ string) {
	b.send(ctx, senderID, receiptReply(b.cfg.ServerURL))
}

func (b *Bot) sendQuickReply(ctx context.Context, senderID, _ string) {
	b.send(ctx, senderID, quickReplyPrompt())
}

func (b *Bot) sendReadReceipt(ctx context.Context, senderID, _ string) {
	slog.Info("Sending a read receipt to mark message as seen")
	b.send(ctx, senderID, models.ActionMarkSeen)
}

func (b *Bot) sendTypingOn(ctx context.Context, senderID, _ string) {
	slog.Info("Turning typing indicator on")
	b.send(ctx, senderID, models.ActionTypingOn)
}

func (b *Bot) sendTypingOff(ctx context.Context, senderID, _ string) {
	slog.Info("Turning typing indicator off")
	b.send(ctx, senderID, models.ActionTypingOff)
}

func (b *Bot) sendAccountLinking(ctx context.Context, senderID, _ string) {
	b.send(ctx, senderID, accountLinkingReply(b.cfg.ServerURL))
}

// sendJobs handles the "jobs" prefix. An empty remainder is the onboarding
// prompt; anything after the prefix is treated as a search keyword.
func (b *Bot) sendJobs(ctx context.Context, senderID, keyword string) {
	if keyword == "" {
		b.send(ctx, senderID, textReply(jobsPromptIntro))
		b.send(ctx, senderID, textReply(jobsPromptExample))
		return
	}

	b.send(ctx, senderID, textReply("Here are some job postings for"+keyword+" I was able to dig up."))
	b.send(ctx, senderID, jobsTemplate(keyword))
}

// sendEvents handles the "events" prefix.
func (b *Bot) sendEvents(ctx context.Context, senderID, keyword string) {
	if keyword == "" {
		b.send(ctx, senderID, textReply(eventsPromptIntro))
		b.send(ctx, senderID, textReply("Enter keywords for the type of events you are interested in. For example: for events focused on iOS development, reply 'events iOS'"))
		return
	}

	b.send(ctx, senderID, textReply("Here are some events for"+keyword+" I was able to dig up."))
	b.send(ctx, senderID, eventsTemplate(keyword))
}

// sendCompany handles the "company" prefix. The keyword flow depends on the
// review lookup collaborator; a failed or empty lookup is recovered into a
// "couldn't find" text reply.
func (b *Bot) sendCompany(ctx context.Context, senderID, keyword string) {
	if keyword == "" {
		b.send(ctx, senderID, textReply(companiesPromptIntro))
		b.send(ctx, senderID, textReply(companiesPromptExample))
		return
	}

	b.send(ctx, senderID, textReply("Here are some glassdoor reviews for "+keyword))

	employers, err := b.companies.SearchEmployers(ctx, keyword)
	if err != nil {
		slog.Warn("Employer lookup failed", "keyword", keyword, "error", err)
	}
	if err != nil || len(employers) == 0 {
		b.send(ctx, senderID, textReply("Sorry I couldn't find anything for"+keyword))
		return
	}

	b.send(ctx, senderID, companyTemplate(keyword, employers[0]))
}
