package entities

import "time"

type JobEventType string

const (
	JobEventCreated   JobEventType = "job.created"
	JobEventStarted   JobEventType = "job.started"
	JobEventCompleted JobEventType = "job.completed"
	JobEventCancelled JobEventType = "job.cancelled"
)

// JobEvent is published whenever a job is created or changes status.
type JobEvent struct {
	Type      JobEventType `json:"type"`
	JobID     string       `json:"jobId"`
	BudgetID  string       `json:"budgetId,omitempty"`
	TeamID    string       `json:"teamId"`
	Status    JobStatus    `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
}
