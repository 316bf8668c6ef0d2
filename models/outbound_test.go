package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalRequest(t *testing.T, out Outbound) map[string]any {
	t.Helper()

	req, err := NewSendRequest("USER_ID", out)
	require.NoError(t, err)

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	return decoded
}

func TestNewSendRequestText(t *testing.T) {
	decoded := marshalRequest(t, Text{Text: "hi!", Metadata: "META"})

	recipient := decoded["recipient"].(map[string]any)
	assert.Equal(t, "USER_ID", recipient["id"])

	message := decoded["message"].(map[string]any)
	assert.Equal(t, "hi!", message["text"])
	assert.Equal(t, "META", message["metadata"])
	assert.NotContains(t, message, "attachment")
	assert.NotContains(t, decoded, "sender_action")
}

func TestNewSendRequestMedia(t *testing.T) {
	decoded := marshalRequest(t, Media{Type: MediaImage, URL: "https://bot.example.com/assets/rift.png"})

	message := decoded["message"].(map[string]any)
	attachment := message["attachment"].(map[string]any)
	assert.Equal(t, "image", attachment["type"])

	payload := attachment["payload"].(map[string]any)
	assert.Equal(t, "https://bot.example.com/assets/rift.png", payload["url"])
	assert.NotContains(t, message, "text")
}

func TestNewSendRequestSenderAction(t *testing.T) {
	decoded := marshalRequest(t, ActionMarkSeen)

	assert.Equal(t, "mark_seen", decoded["sender_action"])
	assert.NotContains(t, decoded, "message")
}

func TestNewSendRequestButtonTemplate(t *testing.T) {
	decoded := marshalRequest(t, ButtonTemplate{
		Text: "Pick one",
		Buttons: []Button{
			URLButton{Title: "Open Web URL", URL: "https://example.com"},
			PostbackButton{Title: "Trigger Postback", Payload: "PAYLOAD"},
			CallButton{Title: "Call Phone Number", Phone: "+16505551234"},
		},
	})

	attachment := decoded["message"].(map[string]any)["attachment"].(map[string]any)
	assert.Equal(t, "template", attachment["type"])

	payload := attachment["payload"].(map[string]any)
	assert.Equal(t, "button", payload["template_type"])
	assert.Equal(t, "Pick one", payload["text"])

	buttons := payload["buttons"].([]any)
	require.Len(t, buttons, 3)

	web := buttons[0].(map[string]any)
	assert.Equal(t, "web_url", web["type"])
	assert.Equal(t, "https://example.com", web["url"])
	assert.NotContains(t, web, "payload")

	postback := buttons[1].(map[string]any)
	assert.Equal(t, "postback", postback["type"])
	assert.Equal(t, "PAYLOAD", postback["payload"])
	assert.NotContains(t, postback, "url")

	call := buttons[2].(map[string]any)
	assert.Equal(t, "phone_number", call["type"])
	assert.Equal(t, "+16505551234", call["payload"])
}

func TestNewSendRequestShareAndAccountLinkButtons(t *testing.T) {
	decoded := marshalRequest(t, GenericTemplate{
		Elements: []Element{
			{
				Title: "card",
				Buttons: []Button{
					AccountLinkButton{URL: "https://bot.example.com/authorize"},
					ShareButton{},
				},
			},
		},
	})

	payload := decoded["message"].(map[string]any)["attachment"].(map[string]any)["payload"].(map[string]any)
	assert.Equal(t, "generic", payload["template_type"])

	buttons := payload["elements"].([]any)[0].(map[string]any)["buttons"].([]any)
	require.Len(t, buttons, 2)

	link := buttons[0].(map[string]any)
	assert.Equal(t, "account_link", link["type"])
	assert.Equal(t, "https://bot.example.com/authorize", link["url"])

	share := buttons[1].(map[string]any)
	assert.Equal(t, "element_share", share["type"])
	assert.Len(t, share, 1)
}

func TestNewSendRequestReceipt(t *testing.T) {
	decoded := marshalRequest(t, ReceiptTemplate{
		RecipientName: "Peter Chang",
		OrderNumber:   "order-1",
		Currency:      "USD",
		PaymentMethod: "Visa 1234",
		Timestamp:     "1428444852",
		Elements: []LineItem{
			{Title: "Oculus Rift", Quantity: 1, Price: 599.00, Currency: "USD"},
		},
		Address:     Address{Street1: "1 Hacker Way", City: "Menlo Park", PostalCode: "94025", State: "CA", Country: "US"},
		Summary:     Summary{Subtotal: 698.99, ShippingCost: 20.00, TotalTax: 57.67, TotalCost: 626.66},
		Adjustments: []Adjustment{{Name: "New Customer Discount", Amount: -50}},
	})

	payload := decoded["message"].(map[string]any)["attachment"].(map[string]any)["payload"].(map[string]any)
	assert.Equal(t, "receipt", payload["template_type"])
	assert.Equal(t, "Peter Chang", payload["recipient_name"])
	assert.Equal(t, "order-1", payload["order_number"])

	summary := payload["summary"].(map[string]any)
	assert.Equal(t, 626.66, summary["total_cost"])

	adjustments := payload["adjustments"].([]any)
	assert.Equal(t, -50.0, adjustments[0].(map[string]any)["amount"])
}

// Every payload kind must produce a body carrying at most one of text,
// attachment and sender_action.
func TestSendRequestCarriesExactlyOneShape(t *testing.T) {
	payloads := []Outbound{
		Text{Text: "hello"},
		Text{Text: "pick", QuickReplies: []QuickReplyOption{{ContentType: "text", Title: "A", Payload: "P"}}},
		Media{Type: MediaAudio, URL: "https://bot.example.com/assets/sample.mp3"},
		Media{Type: MediaVideo, URL: "https://bot.example.com/assets/allofus480.mov"},
		Media{Type: MediaFile, URL: "https://bot.example.com/assets/test.txt"},
		ButtonTemplate{Text: "t", Buttons: []Button{ShareButton{}}},
		GenericTemplate{Elements: []Element{{Title: "e"}}},
		ReceiptTemplate{RecipientName: "n", OrderNumber: "o", Currency: "USD", PaymentMethod: "Visa"},
		ActionMarkSeen,
		ActionTypingOn,
		ActionTypingOff,
	}

	for _, p := range payloads {
		decoded := marshalRequest(t, p)

		shapes := 0
		if message, ok := decoded["message"].(map[string]any); ok {
			if _, ok := message["text"]; ok {
				shapes++
			}
			if _, ok := message["attachment"]; ok {
				shapes++
			}
		}
		if _, ok := decoded["sender_action"]; ok {
			shapes++
		}

		assert.Equal(t, 1, shapes, "payload %T must carry exactly one shape", p)
	}
}

func TestNewSendRequestRejectsUnknownPayload(t *testing.T) {
	_, err := NewSendRequest("USER_ID", nil)
	assert.Error(t, err)
}
