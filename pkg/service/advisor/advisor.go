package advisor

import (
	"bytes"
	"context"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/types"
)

// Error tags for categorization
var (
	ErrTagEmptyResponse   = goerr.NewTag("empty_response")
	ErrTagTemplateFailure = goerr.NewTag("template_failure")
)

// Documents untouched for longer than this are called out as stale in the
// advisor prompt.
const staleCutoffDays = 90

const promptTemplate = `You are advising an engineering organization on knowledge resilience.
Team resilience score: {{printf "%.0f" .TeamResilienceScore}}/100.

High-risk topics:
{{- if .HighRiskTopics}}
{{- range .HighRiskTopics}}
- {{.}}
{{- end}}
{{- else}}
- none
{{- end}}

Documents with a single owner:
{{- if .SingleOwnerDocs}}
{{- range .SingleOwnerDocs}}
- {{.}}
{{- end}}
{{- else}}
- none
{{- end}}

Documents stale for more than {{.StaleCutoffDays}} days:
{{- if .StaleDocs}}
{{- range .StaleDocs}}
- {{.}}
{{- end}}
{{- else}}
- none
{{- end}}

Give brief improvement recommendations based on the risks. Answer in plain
text with at most five short bullet points.`

// Service generates recommendation text from a projected snapshot when
// the backend returns none. Optional; construct only when an LLM client
// is configured.
type Service struct {
	llmClient gollem.LLMClient
}

// New creates an advisor backed by the given LLM client
func New(llmClient gollem.LLMClient) *Service {
	return &Service{
		llmClient: llmClient,
	}
}

type promptData struct {
	TeamResilienceScore float64
	HighRiskTopics      []string
	SingleOwnerDocs     []string
	StaleDocs           []string
	StaleCutoffDays     int
}

// Recommend produces recommendation text for the snapshot
func (s *Service) Recommend(ctx context.Context, snapshot *model.Snapshot) (string, error) {
	if snapshot == nil {
		return "", goerr.New("snapshot is required")
	}

	prompt, err := buildPrompt(snapshot)
	if err != nil {
		return "", err
	}

	session, err := s.llmClient.NewSession(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	response, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate recommendations")
	}

	if len(response.Texts) == 0 || response.Texts[0] == "" {
		return "", goerr.New("empty response from LLM",
			goerr.T(ErrTagEmptyResponse))
	}

	return strings.TrimSpace(response.Texts[0]), nil
}

func buildPrompt(snapshot *model.Snapshot) (string, error) {
	data := promptData{
		TeamResilienceScore: snapshot.TeamResilienceScore,
		StaleCutoffDays:     staleCutoffDays,
	}

	for _, topic := range snapshot.Topics {
		if topic.RiskLevel == types.RiskLevelHigh {
			data.HighRiskTopics = append(data.HighRiskTopics, topic.Name)
		}
	}
	for _, doc := range snapshot.Documents {
		if doc.BusFactor <= 1 {
			data.SingleOwnerDocs = append(data.SingleOwnerDocs, doc.Title)
		}
		if doc.DaysSinceUpdate > staleCutoffDays {
			data.StaleDocs = append(data.StaleDocs, doc.Title)
		}
	}

	tmpl, err := template.New("recommendations").Parse(promptTemplate)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse recommendation template",
			goerr.T(ErrTagTemplateFailure))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to render recommendation template",
			goerr.T(ErrTagTemplateFailure))
	}
	return buf.String(), nil
}
