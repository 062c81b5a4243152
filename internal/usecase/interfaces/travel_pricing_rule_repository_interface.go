package interfaces

import (
	"context"
	"fundacoes_backoffice/internal/domain/entities"
)

// ITravelPricingRuleRepository persists the travel fee tiers.
//
// GetByID and Update return a zero rule (empty ID) when the rule does not exist.
type ITravelPricingRuleRepository interface {
	Create(ctx context.Context, r entities.TravelPricingRule) (entities.TravelPricingRule, error)
	List(ctx context.Context) ([]entities.TravelPricingRule, error)
	GetByID(ctx context.Context, id string) (entities.TravelPricingRule, error)
	Update(ctx context.Context, r entities.TravelPricingRule) (entities.TravelPricingRule, error)
	Delete(ctx context.Context, id string) (bool, error)
}
