package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/interfaces"
	"github.com/mnemosyne-lab/mnemosyne/pkg/service/backend"
	"github.com/urfave/cli/v3"
)

// Backend holds knowledge backend configuration
type Backend struct {
	URL             string
	Timeout         time.Duration
	RefreshInterval time.Duration
}

// Flags returns CLI flags for Backend configuration
func (b *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Knowledge backend base URL",
			Category:    "Backend",
			Value:       "http://localhost:8000",
			Sources:     cli.EnvVars("MNEMOSYNE_BACKEND_URL"),
			Destination: &b.URL,
		},
		&cli.DurationFlag{
			Name:        "backend-timeout",
			Usage:       "Request timeout for backend calls (0 disables the timeout)",
			Category:    "Backend",
			Value:       0,
			Sources:     cli.EnvVars("MNEMOSYNE_BACKEND_TIMEOUT"),
			Destination: &b.Timeout,
		},
		&cli.DurationFlag{
			Name:        "refresh-interval",
			Usage:       "Interval for background dashboard refresh (0 disables it)",
			Category:    "Backend",
			Value:       0,
			Sources:     cli.EnvVars("MNEMOSYNE_REFRESH_INTERVAL"),
			Destination: &b.RefreshInterval,
		},
	}
}

// Validate validates the backend configuration
func (b *Backend) Validate() error {
	if b.URL == "" {
		return goerr.New("backend URL is required")
	}
	if b.Timeout < 0 {
		return goerr.New("backend timeout must not be negative",
			goerr.V("timeout", b.Timeout))
	}
	return nil
}

// Configure creates a backend client from the configuration
func (b *Backend) Configure() (interfaces.BackendClient, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: b.Timeout,
	}
	return backend.New(b.URL, backend.WithHTTPClient(httpClient)), nil
}

// LogValue returns structured log value
func (b Backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", b.URL),
		slog.Duration("timeout", b.Timeout),
		slog.Duration("refreshInterval", b.RefreshInterval),
	)
}
