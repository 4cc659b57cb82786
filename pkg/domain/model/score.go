package model

import (
	"math"

	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/types"
)

// Scoring policy constants. The heuristic: a topic with at most one owner
// takes a flat penalty, and staleness accrues roughly one point per week
// up to a cap.
const (
	singleOwnerPenalty  = 40.0
	maxStalenessPenalty = 30.0
	stalenessWeekDays   = 7.0
)

// ComputeRiskScore produces a fragility score for a topic when the backend
// omits one. Absent staleness contributes nothing. The result is rounded
// and clamped to [0, 100].
func ComputeRiskScore(ownersCount, stalenessDays int) types.RiskScore {
	score := 0.0
	if ownersCount <= 1 {
		score += singleOwnerPenalty
	}
	if stalenessDays > 0 {
		score += math.Min(maxStalenessPenalty, float64(stalenessDays)/stalenessWeekDays)
	}
	return types.RiskScore(math.Round(score)).Clamp()
}
