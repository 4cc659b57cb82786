package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Owners holds placeholder owner pool configuration
type Owners struct {
	PoolPath string
}

// Flags returns CLI flags for Owners configuration
func (o *Owners) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "owner-pool",
			Usage:       "Path to YAML file with placeholder owner names (uses built-in pool if empty)",
			Category:    "Display",
			Sources:     cli.EnvVars("MNEMOSYNE_OWNER_POOL"),
			Destination: &o.PoolPath,
		},
	}
}

// Configure loads the placeholder owner pool. Without a file path the
// built-in default pool is used.
func (o *Owners) Configure() (*model.OwnerPoolConfig, error) {
	if o.PoolPath == "" {
		return model.DefaultOwnerPoolConfig(), nil
	}

	data, err := os.ReadFile(o.PoolPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "owner pool file not found",
				goerr.V("path", o.PoolPath))
		}
		return nil, goerr.Wrap(err, "failed to read owner pool file",
			goerr.V("path", o.PoolPath))
	}

	var pool model.OwnerPoolConfig
	if err := yaml.Unmarshal(data, &pool); err != nil {
		return nil, goerr.Wrap(err, "failed to parse owner pool YAML",
			goerr.V("path", o.PoolPath))
	}

	if err := pool.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid owner pool",
			goerr.V("path", o.PoolPath))
	}

	return &pool, nil
}

// LogValue returns structured log value
func (o Owners) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("poolPath", o.PoolPath),
	)
}
