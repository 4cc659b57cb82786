package model

import (
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/types"
)

// TopicStat is a per-topic aggregate as returned by the knowledge backend.
// Optional fields may be absent; projection resolves them to defaults.
type TopicStat struct {
	TopicID       types.TopicID    `json:"topic_id"`
	Topic         string           `json:"topic"`
	DocsCount     int              `json:"docs_count"`
	OwnersCount   int              `json:"owners_count"`
	StalenessDays int              `json:"staleness_days"`
	RiskScore     *types.RiskScore `json:"risk_score,omitempty"`
	RiskLevel     types.RiskLevel  `json:"risk_level,omitempty"`
}

// BackendScore returns the backend-supplied score, if any. A zero score is
// treated as absent and recomputed locally, matching the backend's own
// convention of omitting unscored topics.
func (t *TopicStat) BackendScore() (types.RiskScore, bool) {
	if t.RiskScore == nil || *t.RiskScore == 0 {
		return 0, false
	}
	return *t.RiskScore, true
}

// DocumentRisk is a per-document record as returned by the knowledge
// backend. Documents arrive already scored.
type DocumentRisk struct {
	ID            types.DocumentID `json:"id"`
	Title         string           `json:"title"`
	RiskScore     types.RiskScore  `json:"risk_score"`
	OwnersCount   int              `json:"owners_count"`
	StalenessDays int              `json:"staleness_days"`
	Critical      bool             `json:"critical,omitempty"`
	Topic         string           `json:"topic,omitempty"`
	Owners        []string         `json:"owners,omitempty"`
}

// RiskAnalysis is the combined risk analysis response from the backend.
type RiskAnalysis struct {
	TopicStats          []TopicStat    `json:"topic_stats"`
	Documents           []DocumentRisk `json:"documents"`
	TeamResilienceScore float64        `json:"team_resilience_score"`
	Recommendations     string         `json:"recommendations,omitempty"`
}

// CriticalDocCounts counts critical documents per topic name. Matching is
// exact and case-sensitive; documents without a topic are not counted.
func (a *RiskAnalysis) CriticalDocCounts() map[string]int {
	counts := make(map[string]int)
	for _, doc := range a.Documents {
		if doc.Critical && doc.Topic != "" {
			counts[doc.Topic]++
		}
	}
	return counts
}
