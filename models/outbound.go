package models

import (
	"encoding/json"
	"fmt"
)

// Outbound is a message payload that can be delivered through the Send API.
// Exactly one concrete kind is carried per send: a text message, a media or
// template attachment, or a sender action.
type Outbound interface {
	outbound()
}

// Recipient identifies the Messenger user a payload is addressed to.
type Recipient struct {
	ID string `json:"id"`
}

// Text is a plain text message, optionally carrying quick reply options.
type Text struct {
	Text         string
	Metadata     string
	QuickReplies []QuickReplyOption
}

func (Text) outbound() {}

// QuickReplyOption is one constrained reply choice attached to a text message.
type QuickReplyOption struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title"`
	Payload     string `json:"payload"`
}

// MediaType distinguishes the non-template attachment kinds.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaAudio MediaType = "audio"
	MediaVideo MediaType = "video"
	MediaFile  MediaType = "file"
)

// Media is a hosted file attachment (image, audio, video or file).
type Media struct {
	Type MediaType
	URL  string
}

func (Media) outbound() {}

// ButtonTemplate renders a short text with up to three action buttons.
type ButtonTemplate struct {
	Text    string
	Buttons []Button
}

func (ButtonTemplate) outbound() {}

// GenericTemplate renders a horizontally scrollable carousel of elements.
type GenericTemplate struct {
	Elements []Element
}

func (GenericTemplate) outbound() {}

// Element is one card of a generic template.
type Element struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	ItemURL  string   `json:"item_url,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Buttons  []Button `json:"buttons,omitempty"`
}

// ReceiptTemplate renders an order confirmation.
type ReceiptTemplate struct {
	RecipientName string
	OrderNumber   string
	Currency      string
	PaymentMethod string
	Timestamp     string
	Elements      []LineItem
	Address       Address
	Summary       Summary
	Adjustments   []Adjustment
}

func (ReceiptTemplate) outbound() {}

// LineItem is one purchased item on a receipt.
type LineItem struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	ImageURL string  `json:"image_url,omitempty"`
}

// Address is the shipping address on a receipt.
type Address struct {
	Street1    string `json:"street_1"`
	Street2    string `json:"street_2"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

// Summary is the cost breakdown on a receipt.
type Summary struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	TotalTax     float64 `json:"total_tax"`
	TotalCost    float64 `json:"total_cost"`
}

// Adjustment is a signed price adjustment on a receipt, such as a discount.
type Adjustment struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// SenderAction is a non-content signal such as a typing indicator.
type SenderAction string

func (SenderAction) outbound() {}

const (
	ActionMarkSeen  SenderAction = "mark_seen"
	ActionTypingOn  SenderAction = "typing_on"
	ActionTypingOff SenderAction = "typing_off"
)

// Button is one action on a template. Each concrete kind carries only the
// fields its tag requires, so an invalid combination (a postback button with
// a URL, say) cannot be constructed.
type Button interface {
	json.Marshaler
	button()
}

// URLButton opens a web page.
type URLButton struct {
	Title string
	URL   string
}

func (URLButton) button() {}

func (b URLButton) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		URL   string `json:"url"`
		Title string `json:"title"`
	}{"web_url", b.URL, b.Title})
}

// PostbackButton returns a developer-defined payload to the webhook.
type PostbackButton struct {
	Title   string
	Payload string
}

func (PostbackButton) button() {}

func (b PostbackButton) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Title   string `json:"title"`
		Payload string `json:"payload"`
	}{"postback", b.Title, b.Payload})
}

// CallButton dials a phone number.
type CallButton struct {
	Title string
	Phone string
}

func (CallButton) button() {}

func (b CallButton) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Title   string `json:"title"`
		Payload string `json:"payload"`
	}{"phone_number", b.Title, b.Phone})
}

// AccountLinkButton starts the account linking flow at the given URL.
type AccountLinkButton struct {
	URL string
}

func (AccountLinkButton) button() {}

func (b AccountLinkButton) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		URL  string `json:"url"`
	}{"account_link", b.URL})
}

// ShareButton lets the user forward the element. It carries no fields.
type ShareButton struct{}

func (ShareButton) button() {}

func (ShareButton) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"element_share"})
}

// SendRequest is the wire body posted to the Send API. At most one of
// Message and SenderAction is set.
type SendRequest struct {
	Recipient    Recipient    `json:"recipient"`
	Message      *MessageBody `json:"message,omitempty"`
	SenderAction string       `json:"sender_action,omitempty"`
}

// MessageBody is the message part of a SendRequest. At most one of Text and
// Attachment is set.
type MessageBody struct {
	Text         string             `json:"text,omitempty"`
	Metadata     string             `json:"metadata,omitempty"`
	QuickReplies []QuickReplyOption `json:"quick_replies,omitempty"`
	Attachment   *AttachmentBody    `json:"attachment,omitempty"`
}

// AttachmentBody is the tagged attachment envelope of a message.
type AttachmentBody struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type urlPayload struct {
	URL string `json:"url"`
}

type buttonPayload struct {
	TemplateType string   `json:"template_type"`
	Text         string   `json:"text"`
	Buttons      []Button `json:"buttons"`
}

type genericPayload struct {
	TemplateType string    `json:"template_type"`
	Elements     []Element `json:"elements"`
}

type receiptPayload struct {
	TemplateType  string       `json:"template_type"`
	RecipientName string       `json:"recipient_name"`
	OrderNumber   string       `json:"order_number"`
	Currency      string       `json:"currency"`
	PaymentMethod string       `json:"payment_method"`
	Timestamp     string       `json:"timestamp,omitempty"`
	Elements      []LineItem   `json:"elements"`
	Address       Address      `json:"address"`
	Summary       Summary      `json:"summary"`
	Adjustments   []Adjustment `json:"adjustments,omitempty"`
}

// NewSendRequest assembles the wire body for one outbound payload.
func NewSendRequest(recipientID string, out Outbound) (SendRequest, error) {
	req := SendRequest{Recipient: Recipient{ID: recipientID}}

	switch m := out.(type) {
	case Text:
		req.Message = &MessageBody{
			Text:         m.Text,
			Metadata:     m.Metadata,
			QuickReplies: m.QuickReplies,
		}
	case Media:
		req.Message = &MessageBody{
			Attachment: &AttachmentBody{
				Type:    string(m.Type),
				Payload: urlPayload{URL: m.URL},
			},
		}
	case ButtonTemplate:
		req.Message = &MessageBody{
			Attachment: &AttachmentBody{
				Type:    "template",
				Payload: buttonPayload{"button", m.Text, m.Buttons},
			},
		}
	case GenericTemplate:
		req.Message = &MessageBody{
			Attachment: &AttachmentBody{
				Type:    "template",
				Payload: genericPayload{"generic", m.Elements},
			},
		}
	case ReceiptTemplate:
		req.Message = &MessageBody{
			Attachment: &AttachmentBody{
				Type: "template",
				Payload: receiptPayload{
					TemplateType:  "receipt",
					RecipientName: m.RecipientName,
					OrderNumber:   m.OrderNumber,
					Currency:      m.Currency,
					PaymentMethod: m.PaymentMethod,
					Timestamp:     m.Timestamp,
					Elements:      m.Elements,
					Address:       m.Address,
					Summary:       m.Summary,
					Adjustments:   m.Adjustments,
				},
			},
		}
	case SenderAction:
		req.SenderAction = string(m)
	default:
		return SendRequest{}, fmt.Errorf("unsupported outbound payload %T", out)
	}

	return req, nil
}
