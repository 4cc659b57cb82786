package advisor_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/types"
	"github.com/mnemosyne-lab/mnemosyne/pkg/service/advisor"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("includes risk highlights", func(t *testing.T) {
		snapshot := &model.Snapshot{
			TeamResilienceScore: 42,
			Topics: []model.DashboardTopic{
				{Name: "Billing", RiskLevel: types.RiskLevelHigh},
				{Name: "Auth", RiskLevel: types.RiskLevelLow},
			},
			Documents: []model.DashboardDocument{
				{Title: "Billing Incident Playbook", BusFactor: 1, DaysSinceUpdate: 120},
				{Title: "Auth Overview", BusFactor: 4, DaysSinceUpdate: 3},
			},
		}

		prompt, err := advisor.BuildPrompt(snapshot)
		gt.NoError(t, err)
		gt.S(t, prompt).Contains("Team resilience score: 42/100")
		gt.S(t, prompt).Contains("- Billing")
		gt.S(t, prompt).Contains("- Billing Incident Playbook")
		gt.B(t, strings.Contains(prompt, "- Auth Overview")).False()
	})

	t.Run("empty snapshot renders none markers", func(t *testing.T) {
		prompt, err := advisor.BuildPrompt(&model.Snapshot{})
		gt.NoError(t, err)
		gt.S(t, prompt).Contains("- none")
	})
}
