package request

import (
	"strings"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase"
)

// TravelPricingRuleRequest is shared by create and update. Optional fields
// are pointers so an update can tell "absent" from zero.
type TravelPricingRuleRequest struct {
	Type        string   `json:"type" binding:"required,oneof=per_km fixed"`
	UpToKm      *float64 `json:"upToKm"`
	PricePerKm  *float64 `json:"pricePerKm"`
	FixedPrice  *float64 `json:"fixedPrice"`
	RoundTrip   *bool    `json:"roundTrip"`
	IsDefault   *bool    `json:"isDefault"`
	Order       *int     `json:"order"`
	Description string   `json:"description"`
}

func (r TravelPricingRuleRequest) ToInput() usecase.TravelPricingRuleInput {
	return usecase.TravelPricingRuleInput{
		Type:        entities.TravelPricingType(r.Type),
		UpToKm:      r.UpToKm,
		PricePerKm:  r.PricePerKm,
		FixedPrice:  r.FixedPrice,
		RoundTrip:   r.RoundTrip,
		IsDefault:   r.IsDefault,
		Order:       r.Order,
		Description: strings.TrimSpace(r.Description),
	}
}
