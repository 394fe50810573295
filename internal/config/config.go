// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

// Built-in defaults. The provider identifiers are public values (only the
// access token is a secret) but every one of them can still be overridden
// from the environment.
const (
	defaultEndpoint   = "https://api.emailjs.com/api/v1.0/email/send"
	defaultServiceID  = "service_chatbot"
	defaultTemplateID = "template_weekly_report"
	defaultUserID     = "chatbot_reports"
	defaultCSVPath    = "conversations.csv"
	defaultFromName   = "Chatbot Weekly Report"
	defaultFromEmail  = "noreply@chatbot.example"
	defaultPhone      = "-"
	defaultCompany    = "chatbot"
)

// Config holds the application configuration.
type Config struct {
	AccessToken string
	ServiceID   string
	TemplateID  string
	UserID      string
	Endpoint    string

	CSVPath  string
	LogLevel string

	FromName  string
	FromEmail string
	Phone     string
	Company   string
	ToEmail   string
}

// Load reads configuration from environment variables.
// It fails when EMAILJS_ACCESS_TOKEN is unset, before any other work happens.
func Load() (*Config, error) {
	token := os.Getenv("EMAILJS_ACCESS_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("EMAILJS_ACCESS_TOKEN is required")
	}

	return &Config{
		AccessToken: token,
		ServiceID:   envOr("EMAILJS_SERVICE_ID", defaultServiceID),
		TemplateID:  envOr("EMAILJS_TEMPLATE_ID", defaultTemplateID),
		UserID:      envOr("EMAILJS_USER_ID", defaultUserID),
		Endpoint:    envOr("EMAILJS_ENDPOINT", defaultEndpoint),
		CSVPath:     envOr("CSV_PATH", defaultCSVPath),
		LogLevel:    envOr("LOG_LEVEL", "info"),
		FromName:    envOr("REPORT_FROM_NAME", defaultFromName),
		FromEmail:   envOr("REPORT_FROM_EMAIL", defaultFromEmail),
		Phone:       envOr("REPORT_PHONE", defaultPhone),
		Company:     envOr("REPORT_COMPANY", defaultCompany),
		ToEmail:     os.Getenv("REPORT_TO_EMAIL"),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
