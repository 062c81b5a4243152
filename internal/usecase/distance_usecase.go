package usecase

import (
	"context"
	"errors"
	"fmt"
	"fundacoes_backoffice/internal/domain/address"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/domain/travel"
	"fundacoes_backoffice/internal/usecase/interfaces"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("fundacoes_backoffice/usecase")

var (
	ErrClientAddressRequired         = errors.New("client address is required")
	ErrCompanyAddressNotConfigured   = errors.New("company address not configured")
	ErrDistanceProviderNotConfigured = errors.New("distance provider not configured")
	ErrAddressNotFound               = errors.New("address not found")
	ErrNoRouteFound                  = errors.New("no route found between addresses")
	ErrDistanceUpstream              = errors.New("distance provider error")
	ErrInvalidCoordinates            = errors.New("invalid coordinates")
)

// IDistanceUseCase resolves the driving distance from the company to a client
// address and prices it with the configured travel rules.
type IDistanceUseCase interface {
	Calculate(ctx context.Context, clientAddress string) (entities.DistanceQuote, error)
	Geocode(ctx context.Context, lat, lng float64) (entities.GeocodedAddress, error)
}

type DistanceUseCase struct {
	settings interfaces.ISettingsRepository
	rules    interfaces.ITravelPricingRuleRepository
	gateway  interfaces.IRoutingGateway
	logger   *zap.Logger
}

var _ IDistanceUseCase = (*DistanceUseCase)(nil)

func NewDistanceUseCase(settings interfaces.ISettingsRepository, rules interfaces.ITravelPricingRuleRepository, gateway interfaces.IRoutingGateway, logger *zap.Logger) *DistanceUseCase {
	return &DistanceUseCase{settings: settings, rules: rules, gateway: gateway, logger: logger.Named("distance")}
}

// Calculate never caches: every call reaches the maps provider once.
func (u *DistanceUseCase) Calculate(ctx context.Context, clientAddress string) (entities.DistanceQuote, error) {
	ctx, span := tracer.Start(ctx, "DistanceUseCase.Calculate")
	defer span.End()

	destination := travel.NormalizeAddress(clientAddress)
	if destination == "" {
		return entities.DistanceQuote{}, ErrClientAddressRequired
	}

	settings, err := u.settings.Get(ctx)
	if err != nil {
		return entities.DistanceQuote{}, err
	}
	origin := travel.NormalizeAddress(settings.HeadquartersAddress)
	if origin == "" {
		u.logger.Warn("[distance][usecase] headquarters address not configured")
		return entities.DistanceQuote{}, ErrCompanyAddressNotConfigured
	}
	if u.gateway == nil {
		return entities.DistanceQuote{}, ErrDistanceProviderNotConfigured
	}

	route, err := u.gateway.Route(ctx, origin, destination)
	if err != nil {
		err = mapRoutingError(err, origin, destination)
		span.RecordError(err)
		span.SetStatus(codes.Error, "route failed")
		u.logger.Warn("[distance][usecase] route failed", zap.String("destination", destination), zap.Error(err))
		return entities.DistanceQuote{}, err
	}

	rules, err := u.rules.List(ctx)
	if err != nil {
		return entities.DistanceQuote{}, err
	}

	km := travel.RoundKm(route.DistanceMeters)
	price, desc, rule := travel.Quote(rules, km)

	ruleID := ""
	if rule != nil {
		ruleID = rule.ID
	}
	span.SetAttributes(
		attribute.Float64("distance.km", km),
		attribute.Float64("travel.price", price),
		attribute.String("travel.rule_id", ruleID),
	)
	u.logger.Info("[distance][usecase] quote computed",
		zap.Float64("distance_km", km),
		zap.Float64("travel_price", price),
		zap.String("rule_id", ruleID),
	)

	return entities.DistanceQuote{
		DistanceKm:        km,
		DistanceText:      route.DistanceText,
		DurationSeconds:   route.DurationSeconds,
		DurationText:      route.DurationText,
		TravelPrice:       price,
		TravelDescription: desc,
		CompanyAddress:    origin,
		ClientAddress:     destination,
	}, nil
}

func (u *DistanceUseCase) Geocode(ctx context.Context, lat, lng float64) (entities.GeocodedAddress, error) {
	ctx, span := tracer.Start(ctx, "DistanceUseCase.Geocode")
	defer span.End()

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return entities.GeocodedAddress{}, ErrInvalidCoordinates
	}
	if u.gateway == nil {
		return entities.GeocodedAddress{}, ErrDistanceProviderNotConfigured
	}

	components, formatted, err := u.gateway.ReverseGeocode(ctx, lat, lng)
	if errors.Is(err, interfaces.ErrRoutingZeroResults) {
		return entities.GeocodedAddress{}, ErrAddressNotFound
	}
	if err != nil {
		coords := fmt.Sprintf("%f,%f", lat, lng)
		err = mapRoutingError(err, coords, coords)
		span.RecordError(err)
		u.logger.Warn("[distance][usecase] reverse geocode failed", zap.Error(err))
		return entities.GeocodedAddress{}, err
	}
	if strings.TrimSpace(formatted) == "" && len(components) == 0 {
		return entities.GeocodedAddress{}, ErrAddressNotFound
	}
	return address.FromComponents(components, formatted), nil
}

func mapRoutingError(err error, origin, destination string) error {
	var upstream *interfaces.RoutingUpstreamError
	switch {
	case errors.Is(err, interfaces.ErrRoutingNotConfigured):
		return ErrDistanceProviderNotConfigured
	case errors.Is(err, interfaces.ErrRoutingNotFound):
		return fmt.Errorf("%w: verifique os endereços %q e %q", ErrAddressNotFound, origin, destination)
	case errors.Is(err, interfaces.ErrRoutingZeroResults):
		return ErrNoRouteFound
	case errors.As(err, &upstream):
		return fmt.Errorf("%w: %s", ErrDistanceUpstream, upstream.Error())
	default:
		return fmt.Errorf("%w: %v", ErrDistanceUpstream, err)
	}
}
