package model

import (
	"time"

	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/types"
)

// DashboardTopic is the view-ready projection of a TopicStat, consumed by
// chart and list surfaces.
type DashboardTopic struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	RiskLevel          types.RiskLevel `json:"riskLevel"`
	RiskScore          types.RiskScore `json:"riskScore"`
	DocumentCount      int             `json:"documentCount"`
	AvgBusFactor       int             `json:"avgBusFactor"`
	AvgDaysSinceUpdate int             `json:"avgDaysSinceUpdate"`
	CriticalDocs       int             `json:"criticalDocs"`
}

// DashboardDocument is the view-ready projection of a DocumentRisk.
//
// PageViews carries no backing metric; it is decorative filler and must
// never be treated as an analytics signal. Owners may likewise be
// synthesized placeholder names when the backend omits attribution.
type DashboardDocument struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Topic           string          `json:"topic"`
	RiskScore       types.RiskScore `json:"riskScore"`
	BusFactor       int             `json:"busFactor"`
	Owners          []string        `json:"owners"`
	DaysSinceUpdate int             `json:"daysSinceUpdate"`
	Critical        bool            `json:"critical"`
	LastEditor      string          `json:"lastEditor"`
	PageViews       int             `json:"pageViews"`
}

// Snapshot holds one fetch cycle's projected result. A snapshot is
// immutable once stored; each successful refresh fully replaces the
// previous one.
type Snapshot struct {
	ID                  types.SnapshotID    `json:"id"`
	Topics              []DashboardTopic    `json:"topics"`
	Documents           []DashboardDocument `json:"documents"`
	Recommendations     string              `json:"recommendations"`
	TeamResilienceScore float64             `json:"teamResilienceScore"`
	FetchedAt           time.Time           `json:"fetchedAt"`
}

// Clone returns a deep copy so stored snapshots cannot be mutated by
// callers.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Topics = make([]DashboardTopic, len(s.Topics))
	copy(out.Topics, s.Topics)
	out.Documents = make([]DashboardDocument, len(s.Documents))
	for i, doc := range s.Documents {
		docCopy := doc
		docCopy.Owners = make([]string, len(doc.Owners))
		copy(docCopy.Owners, doc.Owners)
		out.Documents[i] = docCopy
	}
	return &out
}
