package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
//   - pendente -> aprovado | rejeitado by staff action
//   - pendente | aprovado -> convertido exactly once, when a Job is created from it
type BudgetStatus string

const (
	BudgetStatusPendente   BudgetStatus = "pendente"
	BudgetStatusAprovado   BudgetStatus = "aprovado"
	BudgetStatusRejeitado  BudgetStatus = "rejeitado"
	BudgetStatusConvertido BudgetStatus = "convertido"
)

// ServiceItem is a priced line of a budget. Jobs carry a copy of these.
type ServiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	FinalValue  float64 `json:"finalValue"`
}

// Budget is a priced quote for services, convertible once into a Job.
//
// Travel fields are a snapshot of the DistanceQuote taken when the budget was
// priced; later changes to pricing rules do not affect them.
type Budget struct {
	ID              string        `json:"id"`
	Seq             int64         `json:"seq"`
	ClientID        string        `json:"clientId"`
	ClientName      string        `json:"clientName"`
	Services        []ServiceItem `json:"services"`
	Value           float64       `json:"value"`
	DiscountPercent float64       `json:"discountPercent"`
	DiscountValue   float64       `json:"discountValue"`
	FinalValue      float64       `json:"finalValue"`
	Status          BudgetStatus  `json:"status"`
	SelectedAddress string        `json:"selectedAddress"`
	Notes           string        `json:"notes,omitempty"`

	TravelDistanceKm  float64 `json:"travelDistanceKm"`
	TravelPrice       float64 `json:"travelPrice"`
	TravelDescription string  `json:"travelDescription"`

	JobID     string    `json:"jobId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsConverted reports whether the budget already produced a Job.
func (b Budget) IsConverted() bool {
	return b.Status == BudgetStatusConvertido || b.JobID != ""
}
