package config

import (
	"log/slog"
	"os"
)

type Config struct {
	// App Secret from the App Dashboard, used to verify webhook signatures
	AppSecret string

	// Arbitrary value used to validate the webhook subscription
	VerifyToken string

	// Page access token for the Send API
	PageAccessToken string

	// URL where the app is reachable (with protocol). Used to point to
	// assets served by this process.
	ServerURL string

	// Server configuration
	Port string

	// Reject requests that arrive without a signature header. Setting
	// SIGNATURE_STRICT=false restores log-and-continue behavior.
	StrictSignature bool
}

func LoadConfig() *Config {
	cfg := &Config{
		AppSecret:       os.Getenv("MESSENGER_APP_SECRET"),
		VerifyToken:     os.Getenv("MESSENGER_VALIDATION_TOKEN"),
		PageAccessToken: os.Getenv("MESSENGER_PAGE_ACCESS_TOKEN"),
		ServerURL:       os.Getenv("SERVER_URL"),
		Port:            getEnv("PORT", "8080"),
		StrictSignature: getEnv("SIGNATURE_STRICT", "true") != "false",
	}

	if cfg.AppSecret == "" || cfg.VerifyToken == "" || cfg.PageAccessToken == "" || cfg.ServerURL == "" {
		slog.Error("Missing config values",
			"appSecret", cfg.AppSecret != "",
			"verifyToken", cfg.VerifyToken != "",
			"pageAccessToken", cfg.PageAccessToken != "",
			"serverURL", cfg.ServerURL != "",
		)
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
