package middleware

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"messenger-bot/config"
)

// SignatureHeader carries the platform's HMAC of the request body in the
// form "sha1=<hex digest>".
const SignatureHeader = "x-hub-signature"

// VerifySignature verifies that a callback came from Facebook by recomputing
// the HMAC-SHA1 of the raw body with the app secret. A mismatched digest is
// rejected before any event processing. A missing header is rejected too
// unless strict mode is disabled, in which case it is only logged.
func VerifySignature(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get(SignatureHeader)

		if signature == "" {
			if cfg.StrictSignature {
				slog.Warn("Rejecting request without signature header")
				return c.SendStatus(fiber.StatusUnauthorized)
			}
			slog.Warn("Couldn't validate the signature: header missing")
			return c.Next()
		}

		if !ValidSignature(c.Body(), signature, cfg.AppSecret) {
			slog.Warn("Request signature mismatch", "signature", signature)
			return c.SendStatus(fiber.StatusForbidden)
		}

		return c.Next()
	}
}

// ValidSignature reports whether header matches the HMAC-SHA1 hex digest of
// body under secret.
func ValidSignature(body []byte, header, secret string) bool {
	method, digest, found := strings.Cut(header, "=")
	if !found || method != "sha1" {
		return false
	}

	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(digest), []byte(expected))
}
