package webhooks

// WebhookEvent represents the main webhook payload from Facebook
type WebhookEvent struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry represents a page entry in the webhook
type Entry struct {
	ID        string      `json:"id"`
	Time      int64       `json:"time"`
	Messaging []Messaging `json:"messaging,omitempty"`
}

// Messaging represents one messaging event. Exactly one of the variant
// fields (Optin through AccountLinking) is populated per event.
type Messaging struct {
	Sender    User  `json:"sender"`
	Recipient User  `json:"recipient"`
	Timestamp int64 `json:"timestamp"`

	Optin          *Optin          `json:"optin,omitempty"`
	Message        *Message        `json:"message,omitempty"`
	Delivery       *Delivery       `json:"delivery,omitempty"`
	Postback       *Postback       `json:"postback,omitempty"`
	Read           *Read           `json:"read,omitempty"`
	AccountLinking *AccountLinking `json:"account_linking,omitempty"`
}

// User represents a Facebook user
type User struct {
	ID string `json:"id"`
}

// Optin represents a "Send to Messenger" authentication event
type Optin struct {
	Ref string `json:"ref"`
}

// Message represents a received message
type Message struct {
	MID         string       `json:"mid"`
	IsEcho      bool         `json:"is_echo,omitempty"`
	AppID       int64        `json:"app_id,omitempty"`
	Metadata    string       `json:"metadata,omitempty"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	QuickReply  *QuickReply  `json:"quick_reply,omitempty"`
}

// QuickReply represents a tapped quick reply option
type QuickReply struct {
	ContentType string `json:"content_type,omitempty"`
	Title       string `json:"title,omitempty"`
	Payload     string `json:"payload"`
}

// Attachment represents a message attachment
type Attachment struct {
	Type    string  `json:"type"`
	Payload Payload `json:"payload"`
}

// Payload represents attachment payload
type Payload struct {
	URL string `json:"url,omitempty"`
}

// Delivery confirms delivery of previously sent messages
type Delivery struct {
	MIDs      []string `json:"mids,omitempty"`
	Watermark int64    `json:"watermark"`
	Seq       int64    `json:"seq,omitempty"`
}

// Postback carries the developer-defined payload of a tapped button
type Postback struct {
	Payload string `json:"payload"`
}

// Read reports that previously sent messages have been read
type Read struct {
	Watermark int64 `json:"watermark"`
	Seq       int64 `json:"seq,omitempty"`
}

// AccountLinking reports a Link Account or Unlink Account action
type AccountLinking struct {
	Status            string `json:"status"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}
