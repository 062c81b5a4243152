package entities

import "time"

type TravelPricingType string

const (
	TravelPricingPerKm TravelPricingType = "per_km"
	TravelPricingFixed TravelPricingType = "fixed"
)

// TravelPricingRule is a travel fee tier. Rules are evaluated in ascending
// Order; a nil UpToKm means the rule has no distance ceiling.
type TravelPricingRule struct {
	ID          string            `json:"id"`
	Type        TravelPricingType `json:"type"`
	UpToKm      *float64          `json:"upToKm"`
	PricePerKm  float64           `json:"pricePerKm,omitempty"`
	FixedPrice  float64           `json:"fixedPrice,omitempty"`
	RoundTrip   bool              `json:"roundTrip"`
	IsDefault   bool              `json:"isDefault"`
	Order       int               `json:"order"`
	Description string            `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
