package response

import "fundacoes_backoffice/internal/domain/entities"

// ConvertBudgetResponse is {"data": Job, "budget": Budget}.
type ConvertBudgetResponse struct {
	Data   entities.Job    `json:"data"`
	Budget entities.Budget `json:"budget"`
}

func FromConversion(job entities.Job, budget entities.Budget) ConvertBudgetResponse {
	return ConvertBudgetResponse{Data: job, Budget: budget}
}

// NonNil keeps empty lists serialized as [] instead of null.
func NonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
