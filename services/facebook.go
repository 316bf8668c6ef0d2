package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"messenger-bot/models"
)

const fbGraphAPI = "https://graph.facebook.com/v2.6"

// sendRatePerSecond bounds outbound Send API calls per client.
const sendRatePerSecond = 25

// PlatformError is the error object the Send API returns on failure.
type PlatformError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FBTraceID string `json:"fbtrace_id,omitempty"`
}

// SendError reports a failed Send API call. It is non-fatal to webhook
// processing: callers log it and move on, there is no retry.
type SendError struct {
	StatusCode int
	Status     string
	Platform   *PlatformError
}

func (e *SendError) Error() string {
	if e.Platform != nil {
		return fmt.Sprintf("send API returned %s: %s", e.Status, e.Platform.Message)
	}
	return fmt.Sprintf("send API returned %s", e.Status)
}

// Client delivers outbound messages through the Send API. Each payload is
// attempted at most once.
type Client struct {
	endpoint    string
	accessToken string
	http        *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a Send API client for the given page access token.
func NewClient(accessToken string) *Client {
	return NewClientWithEndpoint(fbGraphAPI, accessToken)
}

// NewClientWithEndpoint creates a Send API client against a custom endpoint.
func NewClientWithEndpoint(endpoint, accessToken string) *Client {
	return &Client{
		endpoint:    endpoint,
		accessToken: accessToken,
		http:        &http.Client{},
		limiter:     rate.NewLimiter(rate.Limit(sendRatePerSecond), sendRatePerSecond),
	}
}

// Send serializes one outbound payload and posts it to the Send API. On
// success the message id (when the platform returns one) is logged together
// with the recipient id.
func (c *Client) Send(ctx context.Context, recipientID string, out models.Outbound) error {
	payload, err := models.NewSendRequest(recipientID, out)
	if err != nil {
		return err
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/me/messages?access_token=%s", c.endpoint, c.accessToken)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error *PlatformError `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		sendErr := &SendError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Platform:   errBody.Error,
		}
		slog.Error("Failed calling Send API",
			"status", resp.StatusCode,
			"statusMessage", resp.Status,
			"platformError", errBody.Error,
		)
		return sendErr
	}

	var result struct {
		RecipientID string `json:"recipient_id"`
		MessageID   string `json:"message_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}

	if result.MessageID != "" {
		slog.Info("Successfully sent message",
			"messageID", result.MessageID,
			"recipientID", result.RecipientID,
		)
	} else {
		slog.Info("Successfully called Send API", "recipientID", result.RecipientID)
	}

	return nil
}
