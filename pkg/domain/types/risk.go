package types

// RiskScore is a 0-100 fragility score for a topic or document
type RiskScore int

const (
	// MinRiskScore is the lower bound of the score range
	MinRiskScore RiskScore = 0
	// MaxRiskScore is the upper bound of the score range
	MaxRiskScore RiskScore = 100
)

// Clamp returns the score bounded to [MinRiskScore, MaxRiskScore]
func (s RiskScore) Clamp() RiskScore {
	if s < MinRiskScore {
		return MinRiskScore
	}
	if s > MaxRiskScore {
		return MaxRiskScore
	}
	return s
}

// Int returns the int representation
func (s RiskScore) Int() int {
	return int(s)
}

// RiskLevel represents a discrete risk category used for coloring and filtering
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Classification thresholds. Ties at a boundary belong to the higher
// category. Policy constants, not a validated model.
const (
	highRiskThreshold   RiskScore = 70
	mediumRiskThreshold RiskScore = 40
)

// String returns the string representation of the level
func (l RiskLevel) String() string {
	return string(l)
}

// IsValid checks if the level is valid
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	default:
		return false
	}
}

// RiskLevelFromScore maps a score to its level. This is the single source
// of truth for classification; every surface that colors or filters by
// level must go through it.
func RiskLevelFromScore(score RiskScore) RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return RiskLevelHigh
	case score >= mediumRiskThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}
