package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mnemosyne-lab/mnemosyne/pkg/cli/config"
)

func TestOwnersConfigure(t *testing.T) {
	t.Run("empty path uses built-in pool", func(t *testing.T) {
		cfg := config.Owners{}
		pool, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Equal(t, len(pool.Names), 8)
		gt.Equal(t, pool.Names[0], "Alice Chen")
	})

	t.Run("loads pool from YAML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pool.yml")
		gt.NoError(t, os.WriteFile(path, []byte("names:\n  - Mallory Ito\n  - Trent Okafor\n"), 0600))

		cfg := config.Owners{PoolPath: path}
		pool, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Equal(t, pool.Names, []string{"Mallory Ito", "Trent Okafor"})
	})

	t.Run("missing file fails", func(t *testing.T) {
		cfg := config.Owners{PoolPath: filepath.Join(t.TempDir(), "nope.yml")}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("invalid pool fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pool.yml")
		gt.NoError(t, os.WriteFile(path, []byte("names: []\n"), 0600))

		cfg := config.Owners{PoolPath: path}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}

func TestBackendValidate(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		cfg := config.Backend{URL: "http://localhost:8000"}
		gt.NoError(t, cfg.Validate())

		client, err := cfg.Configure()
		gt.NoError(t, err)
		gt.V(t, client).NotNil()
	})

	t.Run("missing URL fails", func(t *testing.T) {
		cfg := config.Backend{}
		gt.Error(t, cfg.Validate())
	})

	t.Run("negative timeout fails", func(t *testing.T) {
		cfg := config.Backend{URL: "http://localhost:8000", Timeout: -1}
		gt.Error(t, cfg.Validate())
	})
}
