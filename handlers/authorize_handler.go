package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HandleAuthorize renders the account linking confirmation page. The
// account linking call-to-action button points here; on success the user is
// redirected back with a freshly generated authorization code appended.
func (b *Bot) HandleAuthorize(c *fiber.Ctx) error {
	accountLinkingToken := c.Query("account_linking_token")
	redirectURI := c.Query("redirect_uri")

	authCode := uuid.NewString()
	redirectURISuccess := redirectURI + "&authorization_code=" + authCode

	slog.Info("Rendering account linking page",
		"accountLinkingToken", accountLinkingToken,
		"redirectURI", redirectURI,
	)

	return c.Render("authorize", fiber.Map{
		"AccountLinkingToken": accountLinkingToken,
		"RedirectURI":         redirectURI,
		"RedirectURISuccess":  redirectURISuccess,
	})
}
