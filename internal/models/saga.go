package models

import "time"

// StepStatus is the outcome of one saga step.
type StepStatus string

const (
	StepCommitted StepStatus = "committed"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

// SagaStep records one network call made by a compound transaction.
type SagaStep struct {
	Name    string     `json:"name" bson:"name" example:"create-rental"`
	MovieID string     `json:"movieId" bson:"movieId" example:"657a1f77bcf86cd799439011"`
	Status  StepStatus `json:"status" bson:"status" example:"committed"`
	Error   string     `json:"error,omitempty" bson:"error,omitempty"`
}

// Key identifies the step inside its saga, e.g. "create-rental:m1".
func (s SagaStep) Key() string {
	return s.Name + ":" + s.MovieID
}

// SagaRecord is the journal entry written after a compound transaction ends.
type SagaRecord struct {
	ID         string     `json:"id" bson:"_id" example:"3f2b8c0e-8d1a-4c55-9a57-3f0e7d5b0c11"`
	Name       string     `json:"name" bson:"name" example:"rent-cart"`
	Username   string     `json:"username" bson:"username" example:"jdoe"`
	Steps      []SagaStep `json:"steps" bson:"steps"`
	Succeeded  bool       `json:"succeeded" bson:"succeeded"`
	StartedAt  time.Time  `json:"startedAt" bson:"startedAt"`
	FinishedAt time.Time  `json:"finishedAt" bson:"finishedAt"`
}

// Committed returns the keys of committed steps.
func (r *SagaRecord) Committed() []string {
	return r.keysWith(StepCommitted)
}

// Failed returns the keys of failed steps.
func (r *SagaRecord) Failed() []string {
	return r.keysWith(StepFailed)
}

func (r *SagaRecord) keysWith(status StepStatus) []string {
	keys := []string{}
	for _, s := range r.Steps {
		if s.Status == status {
			keys = append(keys, s.Key())
		}
	}
	return keys
}
