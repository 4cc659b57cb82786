package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/types"
)

func TestOwnerPoolConfigValidate(t *testing.T) {
	t.Run("default pool is valid", func(t *testing.T) {
		cfg := model.DefaultOwnerPoolConfig()
		gt.NoError(t, cfg.Validate())
		gt.Equal(t, len(cfg.Names), 8)
	})

	t.Run("empty pool is invalid", func(t *testing.T) {
		cfg := &model.OwnerPoolConfig{}
		gt.Error(t, cfg.Validate())
	})

	t.Run("empty name is invalid", func(t *testing.T) {
		cfg := &model.OwnerPoolConfig{Names: []string{"Alice Chen", ""}}
		gt.Error(t, cfg.Validate())
	})

	t.Run("duplicate name is invalid", func(t *testing.T) {
		cfg := &model.OwnerPoolConfig{Names: []string{"Alice Chen", "Alice Chen"}}
		gt.Error(t, cfg.Validate())
	})
}

func TestOnboardingRequestValidate(t *testing.T) {
	t.Run("team mode requires team", func(t *testing.T) {
		req := &model.OnboardingRequest{Mode: model.OnboardingModeTeam}
		gt.Error(t, req.Validate())

		req.Team = "platform"
		gt.NoError(t, req.Validate())
	})

	t.Run("handoff mode requires both people", func(t *testing.T) {
		req := &model.OnboardingRequest{Mode: model.OnboardingModeHandoff}
		gt.Error(t, req.Validate())

		leaving := types.PersonID(1)
		joining := types.PersonID(2)
		req.PersonLeaving = &leaving
		req.PersonJoining = &joining
		gt.NoError(t, req.Validate())
	})

	t.Run("unknown mode is invalid", func(t *testing.T) {
		req := &model.OnboardingRequest{Mode: model.OnboardingMode("magic")}
		gt.Error(t, req.Validate())
	})
}
