package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/types"
)

// unknownLabel fills display fields the backend left empty
const unknownLabel = "Unknown"

// projectTopics reshapes backend topic stats into the view-ready form.
// Backend-supplied scores and levels win over locally computed ones.
func projectTopics(stats []model.TopicStat, criticalCounts map[string]int) []model.DashboardTopic {
	topics := make([]model.DashboardTopic, 0, len(stats))
	for _, stat := range stats {
		score, ok := stat.BackendScore()
		if !ok {
			score = model.ComputeRiskScore(stat.OwnersCount, stat.StalenessDays)
		}
		score = score.Clamp()

		level := stat.RiskLevel
		if !level.IsValid() {
			level = types.RiskLevelFromScore(score)
		}

		topics = append(topics, model.DashboardTopic{
			ID:                 stat.TopicID.String(),
			Name:               stat.Topic,
			RiskLevel:          level,
			RiskScore:          score,
			DocumentCount:      stat.DocsCount,
			AvgBusFactor:       stat.OwnersCount,
			AvgDaysSinceUpdate: stat.StalenessDays,
			CriticalDocs:       criticalCounts[stat.Topic],
		})
	}
	return topics
}

// projectDocuments reshapes backend document records into the view-ready
// form. Missing optional fields degrade to documented defaults; nothing
// here can fail.
func (uc *Resilience) projectDocuments(ctx context.Context, docs []model.DocumentRisk) []model.DashboardDocument {
	out := make([]model.DashboardDocument, 0, len(docs))
	fabricated := 0

	for _, doc := range docs {
		topic := doc.Topic
		if topic == "" {
			topic = unknownLabel
		}

		owners := doc.Owners
		if len(owners) == 0 {
			owners = uc.fixtures.PlaceholderOwners(doc.OwnersCount)
			if len(owners) > 0 {
				fabricated++
			}
		}

		// Last editor reflects real attribution only, never the
		// synthesized pool
		lastEditor := unknownLabel
		if len(doc.Owners) > 0 {
			lastEditor = doc.Owners[0]
		}

		out = append(out, model.DashboardDocument{
			ID:              doc.ID.String(),
			Title:           doc.Title,
			Topic:           topic,
			RiskScore:       doc.RiskScore,
			BusFactor:       doc.OwnersCount,
			Owners:          owners,
			DaysSinceUpdate: doc.StalenessDays,
			Critical:        doc.Critical,
			LastEditor:      lastEditor,
			PageViews:       uc.fixtures.PageViews(),
		})
	}

	if fabricated > 0 {
		ctxlog.From(ctx).Warn("synthesized placeholder owner attribution for documents without owners",
			"documents", fabricated,
		)
	}

	return out
}

// project turns one raw backend response into a snapshot
func (uc *Resilience) project(ctx context.Context, analysis *model.RiskAnalysis) (*model.Snapshot, error) {
	id, err := types.NewSnapshotID()
	if err != nil {
		return nil, err
	}

	return &model.Snapshot{
		ID:                  id,
		Topics:              projectTopics(analysis.TopicStats, analysis.CriticalDocCounts()),
		Documents:           uc.projectDocuments(ctx, analysis.Documents),
		Recommendations:     analysis.Recommendations,
		TeamResilienceScore: analysis.TeamResilienceScore,
		FetchedAt:           uc.now(),
	}, nil
}
