package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"lemmequit/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.MailServiceInterface {
	port := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			port = parsed
		}
	}

	cfg := services.SMTPConfig{
		Host:     envOrDefault("SMTP_HOST", "smtp.gmail.com"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     envOrDefault("SMTP_FROM", "no-reply@lemmequit.app"),
		FromName: "LemmeQuit",

		AppName:    "LemmeQuit",
		AppBaseURL: envOrDefault("APP_BASE_URL", "https://lemmequit.app"),
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
