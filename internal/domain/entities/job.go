package entities

import "time"

type JobStatus string

const (
	JobStatusPendente   JobStatus = "pendente"
	JobStatusEmExecucao JobStatus = "em_execucao"
	JobStatusConcluida  JobStatus = "concluida"
	JobStatusCancelada  JobStatus = "cancelada"
)

// IsTerminal reports whether no further field action may change the status.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusConcluida || s == JobStatusCancelada
}

// Job (ordem de serviço) is a scheduled unit of work assigned to a Team.
//
// Services, pricing and travel fields are copied from the originating Budget at
// conversion time and never follow later budget edits.
type Job struct {
	ID            string    `json:"id"`
	Seq           int64     `json:"seq"`
	Title         string    `json:"title"`
	BudgetID      string    `json:"budgetId,omitempty"`
	ClientID      string    `json:"clientId"`
	ClientName    string    `json:"clientName"`
	Site          string    `json:"site"`
	SiteLatitude  *float64  `json:"siteLatitude,omitempty"`
	SiteLongitude *float64  `json:"siteLongitude,omitempty"`
	Team          string    `json:"team"`
	TeamID        string    `json:"teamId"`
	Status        JobStatus `json:"status"`
	PlannedDate   time.Time `json:"plannedDate"`
	Notes         string    `json:"notes,omitempty"`

	Services        []ServiceItem `json:"services"`
	Value           float64       `json:"value"`
	DiscountPercent float64       `json:"discountPercent"`
	DiscountValue   float64       `json:"discountValue"`
	FinalValue      float64       `json:"finalValue"`

	TravelDistanceKm  float64 `json:"travelDistanceKm"`
	TravelPrice       float64 `json:"travelPrice"`
	TravelDescription string  `json:"travelDescription"`

	StartedAt    *time.Time `json:"startedAt,omitempty"`
	FinishedAt   *time.Time `json:"finishedAt,omitempty"`
	CancelReason string     `json:"cancelReason,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
