package usecase

import (
	"context"
	"errors"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/domain/travel"
	"fundacoes_backoffice/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTravelRuleNotFound  = errors.New("travel pricing rule not found")
	ErrInvalidTravelRuleID = errors.New("invalid travel pricing rule id")
)

// TravelPricingRuleInput is the payload accepted on create and update.
// Pointers distinguish "not sent" from zero values.
type TravelPricingRuleInput struct {
	Type        entities.TravelPricingType
	UpToKm      *float64
	PricePerKm  *float64
	FixedPrice  *float64
	RoundTrip   *bool
	IsDefault   *bool
	Order       *int
	Description string
}

// ITravelPricingUseCase manages the travel fee tiers.
//
// Rules only affect quotes computed after the change; budgets keep their
// travel snapshot.
type ITravelPricingUseCase interface {
	List(ctx context.Context) ([]entities.TravelPricingRule, error)
	Create(ctx context.Context, in TravelPricingRuleInput) (entities.TravelPricingRule, error)
	Update(ctx context.Context, id string, in TravelPricingRuleInput) (entities.TravelPricingRule, error)
	Delete(ctx context.Context, id string) error
}

type TravelPricingUseCase struct {
	repo   interfaces.ITravelPricingRuleRepository
	logger *zap.Logger
}

var _ ITravelPricingUseCase = (*TravelPricingUseCase)(nil)

func NewTravelPricingUseCase(repo interfaces.ITravelPricingRuleRepository, logger *zap.Logger) *TravelPricingUseCase {
	return &TravelPricingUseCase{repo: repo, logger: logger.Named("travel_pricing")}
}

func (u *TravelPricingUseCase) List(ctx context.Context) ([]entities.TravelPricingRule, error) {
	rules, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return travel.SortRules(rules), nil
}

func (u *TravelPricingUseCase) Create(ctx context.Context, in TravelPricingRuleInput) (entities.TravelPricingRule, error) {
	if err := validateTravelRule(in); err != nil {
		return entities.TravelPricingRule{}, err
	}

	order := 0
	if in.Order != nil {
		order = *in.Order
	} else {
		existing, err := u.repo.List(ctx)
		if err != nil {
			return entities.TravelPricingRule{}, err
		}
		order = nextOrder(existing)
	}

	now := time.Now().UTC()
	r := applyTravelRuleInput(entities.TravelPricingRule{
		ID:        uuid.NewString(),
		RoundTrip: true,
		Order:     order,
		CreatedAt: now,
	}, in)
	r.UpdatedAt = now

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.TravelPricingRule{}, err
	}
	u.logger.Info("[travel_pricing][usecase] rule created",
		zap.String("rule_id", created.ID),
		zap.String("type", string(created.Type)),
		zap.Int("order", created.Order),
	)
	return created, nil
}

func (u *TravelPricingUseCase) Update(ctx context.Context, id string, in TravelPricingRuleInput) (entities.TravelPricingRule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TravelPricingRule{}, ErrInvalidTravelRuleID
	}
	if err := validateTravelRule(in); err != nil {
		return entities.TravelPricingRule{}, err
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.TravelPricingRule{}, err
	}
	if current.ID == "" {
		return entities.TravelPricingRule{}, ErrTravelRuleNotFound
	}

	r := applyTravelRuleInput(current, in)
	if in.Order != nil {
		r.Order = *in.Order
	}
	r.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return entities.TravelPricingRule{}, err
	}
	if updated.ID == "" {
		return entities.TravelPricingRule{}, ErrTravelRuleNotFound
	}
	u.logger.Info("[travel_pricing][usecase] rule updated", zap.String("rule_id", updated.ID))
	return updated, nil
}

func (u *TravelPricingUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTravelRuleID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTravelRuleNotFound
	}
	u.logger.Info("[travel_pricing][usecase] rule deleted", zap.String("rule_id", id))
	return nil
}

func validateTravelRule(in TravelPricingRuleInput) error {
	iss := issues{}
	switch in.Type {
	case entities.TravelPricingPerKm:
		if in.PricePerKm == nil {
			iss.add("pricePerKm", "obrigatório para regras por km")
		} else if *in.PricePerKm <= 0 {
			iss.add("pricePerKm", "deve ser maior que zero")
		}
	case entities.TravelPricingFixed:
		if in.FixedPrice == nil {
			iss.add("fixedPrice", "obrigatório para regras de taxa fixa")
		} else if *in.FixedPrice < 0 {
			iss.add("fixedPrice", "não pode ser negativo")
		}
	default:
		iss.add("type", "deve ser per_km ou fixed")
	}
	if in.UpToKm != nil && *in.UpToKm <= 0 {
		iss.add("upToKm", "deve ser maior que zero")
	}
	return iss.err()
}

// applyTravelRuleInput copies the validated input over r. Only the price
// field of the selected type is kept.
func applyTravelRuleInput(r entities.TravelPricingRule, in TravelPricingRuleInput) entities.TravelPricingRule {
	r.Type = in.Type
	r.UpToKm = in.UpToKm
	r.PricePerKm = 0
	r.FixedPrice = 0
	if in.Type == entities.TravelPricingPerKm {
		r.PricePerKm = *in.PricePerKm
	} else {
		r.FixedPrice = *in.FixedPrice
	}
	if in.RoundTrip != nil {
		r.RoundTrip = *in.RoundTrip
	}
	if in.IsDefault != nil {
		r.IsDefault = *in.IsDefault
	}
	r.Description = strings.TrimSpace(in.Description)
	return r
}

func nextOrder(rules []entities.TravelPricingRule) int {
	next := 0
	for _, r := range rules {
		if r.Order >= next {
			next = r.Order + 1
		}
	}
	return next
}
