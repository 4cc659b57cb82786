package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/claude"
	"github.com/urfave/cli/v3"
)

// Claude holds optional Claude LLM configuration for locally generated
// recommendations
type Claude struct {
	APIKey string
	Model  string
}

// Flags returns CLI flags for Claude configuration
func (c *Claude) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "claude-api-key",
			Usage:       "Anthropic API key (leave empty to disable local recommendations)",
			Category:    "Claude",
			Sources:     cli.EnvVars("MNEMOSYNE_CLAUDE_API_KEY"),
			Destination: &c.APIKey,
		},
		&cli.StringFlag{
			Name:        "claude-model",
			Usage:       "Claude model name",
			Category:    "Claude",
			Value:       "claude-sonnet-4-20250514",
			Sources:     cli.EnvVars("MNEMOSYNE_CLAUDE_MODEL"),
			Destination: &c.Model,
		},
	}
}

// IsConfigured checks if Claude is properly configured
func (c *Claude) IsConfigured() bool {
	return c.APIKey != ""
}

// ConfigureOptional creates a Claude LLM client if configured, returns nil
// if not
func (c *Claude) ConfigureOptional(ctx context.Context, logger *slog.Logger) gollem.LLMClient {
	if !c.IsConfigured() {
		logger.Info("Claude not configured, local recommendations disabled")
		return nil
	}

	logger.Info("Configuring Claude LLM",
		slog.String("model", c.Model),
	)

	client, err := claude.New(ctx, c.APIKey, claude.WithModel(c.Model))
	if err != nil {
		logger.Warn("Failed to create Claude client", slog.Any("error", err))
		return nil
	}

	return client
}

// LogValue returns structured log value
func (c Claude) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("configured", c.IsConfigured()),
		slog.String("model", c.Model),
	)
}
