package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// OwnerPoolConfig is the pool of placeholder owner names used when the
// backend omits real attribution. Synthesized names are display filler
// only and are never semantically meaningful.
type OwnerPoolConfig struct {
	Names []string `yaml:"names"`
}

// DefaultOwnerPoolConfig returns the built-in placeholder pool.
func DefaultOwnerPoolConfig() *OwnerPoolConfig {
	return &OwnerPoolConfig{
		Names: []string{
			"Alice Chen",
			"Bob Smith",
			"Charlie Davis",
			"Diana Lee",
			"Eve Martinez",
			"Frank Wilson",
			"Grace Kim",
			"Henry Zhang",
		},
	}
}

// Validate validates the owner pool configuration
func (c *OwnerPoolConfig) Validate() error {
	if len(c.Names) == 0 {
		return goerr.New("at least one placeholder owner name is required")
	}

	seen := make(map[string]bool)
	for i, name := range c.Names {
		if name == "" {
			return goerr.New("placeholder owner name is empty",
				goerr.V("index", i))
		}
		if seen[name] {
			return goerr.New("duplicate placeholder owner name",
				goerr.V("name", name))
		}
		seen[name] = true
	}

	return nil
}
