// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/database"
)

// App is the full runtime configuration of the lodging API.
type App struct {
	Port        string     `env:"PORT" envDefault:"8080"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret   string     `env:"JWT_SECRET,required,notEmpty"`
	CORSOrigins []string   `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// Empty endpoint disables tracing.
	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// Empty URL disables booking events.
	RabbitURL       string `env:"RABBIT_URL"`
	BookingExchange string `env:"BOOKING_EXCHANGE" envDefault:"booking.exchange"`

	SingleBookingPerUser bool `env:"SINGLE_BOOKING_PER_USER" envDefault:"false"`

	DB database.Config
}

// Load parses App from the environment.
func Load() (App, error) {
	var c App
	if err := env.Parse(&c); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
