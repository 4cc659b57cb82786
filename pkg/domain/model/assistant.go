package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/types"
)

// QueryRequest asks a question over the document corpus.
type QueryRequest struct {
	Question string `json:"question"`
}

// Validate validates the query request
func (r *QueryRequest) Validate() error {
	if r.Question == "" {
		return goerr.New("question is required")
	}
	return nil
}

// DocRef is a lightweight document reference used in assistant responses.
type DocRef struct {
	ID    types.DocumentID `json:"id"`
	Title string           `json:"title"`
}

// QueryResult is the backend's answer to a document question.
type QueryResult struct {
	Answer          string           `json:"answer"`
	ReferencedDocs  []DocRef         `json:"referenced_docs"`
	PeopleToContact []types.PersonID `json:"people_to_contact"`
}

// Person identifies a member of the organization.
type Person struct {
	ID   types.PersonID `json:"id"`
	Name string         `json:"name"`
}

// ImpactedTopic is a topic affected by a simulated departure.
type ImpactedTopic struct {
	TopicID types.TopicID `json:"topic_id"`
	Name    string        `json:"name"`
	Reason  string        `json:"reason"`
}

// UnderDocumentedSystem is a system whose documentation would become
// insufficient after a departure.
type UnderDocumentedSystem struct {
	SystemID int    `json:"system_id"`
	Name     string `json:"name"`
}

// DepartureRequest simulates a person leaving the organization.
type DepartureRequest struct {
	PersonID types.PersonID `json:"person_id"`
}

// Validate validates the departure request
func (r *DepartureRequest) Validate() error {
	if r.PersonID <= 0 {
		return goerr.New("person ID must be positive",
			goerr.V("personID", r.PersonID))
	}
	return nil
}

// DepartureImpact describes the hypothetical impact of a departure.
type DepartureImpact struct {
	Person                 Person                  `json:"person"`
	OrphanedDocs           []DocRef                `json:"orphaned_docs"`
	ImpactedTopics         []ImpactedTopic         `json:"impacted_topics"`
	UnderDocumentedSystems []UnderDocumentedSystem `json:"under_documented_systems"`
	HandoffBriefing        string                  `json:"claude_handoff"`
}

// OnboardingMode selects how an onboarding plan is generated.
type OnboardingMode string

const (
	OnboardingModeTeam    OnboardingMode = "team"
	OnboardingModeHandoff OnboardingMode = "handoff"
)

// IsValid checks if the mode is valid
func (m OnboardingMode) IsValid() bool {
	switch m {
	case OnboardingModeTeam, OnboardingModeHandoff:
		return true
	default:
		return false
	}
}

// OnboardingRequest asks for an onboarding plan, either for a whole team
// or for a handoff between two people.
type OnboardingRequest struct {
	Mode          OnboardingMode  `json:"mode"`
	Team          string          `json:"team,omitempty"`
	PersonLeaving *types.PersonID `json:"person_leaving,omitempty"`
	PersonJoining *types.PersonID `json:"person_joining,omitempty"`
}

// Validate validates the onboarding request
func (r *OnboardingRequest) Validate() error {
	if !r.Mode.IsValid() {
		return goerr.New("invalid onboarding mode", goerr.V("mode", r.Mode))
	}
	if r.Mode == OnboardingModeTeam && r.Team == "" {
		return goerr.New("team is required for team mode")
	}
	if r.Mode == OnboardingModeHandoff && (r.PersonLeaving == nil || r.PersonJoining == nil) {
		return goerr.New("person_leaving and person_joining are required for handoff mode")
	}
	return nil
}

// OnboardingPlan is a generated onboarding plan.
type OnboardingPlan struct {
	Plan string `json:"plan"`
}

// BackendHealth is the backend liveness response.
type BackendHealth struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
