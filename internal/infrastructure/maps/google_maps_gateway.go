// Package maps talks to the Google Maps Distance Matrix and Geocoding APIs.
package maps

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/domain/travel"
	"fundacoes_backoffice/internal/infrastructure/observability"
	"fundacoes_backoffice/internal/infrastructure/resilience"
	"fundacoes_backoffice/internal/usecase/interfaces"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	gmaps "googlemaps.github.io/maps"
)

const language = "pt-BR"

var tracer = otel.Tracer("fundacoes_backoffice/maps")

// Config configures GoogleMapsGateway. BaseURL is only set in tests.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Breaker resilience.BreakerConfig
}

// GoogleMapsGateway resolves one driving route per call. Calls are bounded by
// Timeout and go through a circuit breaker; nothing is retried or cached.
type GoogleMapsGateway struct {
	client  *gmaps.Client
	cb      *gobreaker.CircuitBreaker
	timeout time.Duration
	metrics *observability.Metrics
	logger  *zap.Logger
}

var _ interfaces.IRoutingGateway = (*GoogleMapsGateway)(nil)

func NewGoogleMapsGateway(cfg Config, metrics *observability.Metrics, logger *zap.Logger) (*GoogleMapsGateway, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, interfaces.ErrRoutingNotConfigured
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	opts := []gmaps.ClientOption{
		gmaps.WithAPIKey(cfg.APIKey),
		gmaps.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, gmaps.WithBaseURL(cfg.BaseURL))
	}
	client, err := gmaps.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	return &GoogleMapsGateway{
		client:  client,
		cb:      resilience.NewCircuitBreaker("google-maps", cfg.Breaker, isProviderHealthy),
		timeout: cfg.Timeout,
		metrics: metrics,
		logger:  logger.Named("maps"),
	}, nil
}

func (g *GoogleMapsGateway) Route(ctx context.Context, origin, destination string) (entities.Route, error) {
	ctx, span := tracer.Start(ctx, "GoogleMapsGateway.Route")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.cb.Execute(func() (any, error) {
		resp, err := g.client.DistanceMatrix(ctx, &gmaps.DistanceMatrixRequest{
			Origins:      []string{origin},
			Destinations: []string{destination},
			Mode:         gmaps.TravelModeDriving,
			Units:        gmaps.UnitsMetric,
			Language:     language,
		})
		if err != nil {
			return nil, providerError(err)
		}
		if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
			return nil, interfaces.ErrRoutingNotFound
		}
		el := resp.Rows[0].Elements[0]
		switch el.Status {
		case "OK":
		case "NOT_FOUND":
			return nil, interfaces.ErrRoutingNotFound
		case "ZERO_RESULTS":
			return nil, interfaces.ErrRoutingZeroResults
		default:
			return nil, &interfaces.RoutingUpstreamError{Status: el.Status}
		}
		return entities.Route{
			DistanceMeters:  el.Distance.Meters,
			DistanceText:    el.Distance.HumanReadable,
			DurationSeconds: int(el.Duration / time.Second),
			DurationText:    travel.FormatDuration(el.Duration),
		}, nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "route failed")
		g.observeFailure(err)
		g.logger.Warn("[maps][gateway] distance matrix failed", zap.Error(err))
		return entities.Route{}, err
	}

	route := result.(entities.Route)
	span.SetAttributes(attribute.Int("route.distance_meters", route.DistanceMeters))
	g.logger.Debug("[maps][gateway] route resolved", zap.Int("distance_meters", route.DistanceMeters), zap.Int("duration_seconds", route.DurationSeconds))
	return route, nil
}

func (g *GoogleMapsGateway) ReverseGeocode(ctx context.Context, lat, lng float64) ([]entities.AddressComponent, string, error) {
	ctx, span := tracer.Start(ctx, "GoogleMapsGateway.ReverseGeocode")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.cb.Execute(func() (any, error) {
		results, err := g.client.ReverseGeocode(ctx, &gmaps.GeocodingRequest{
			LatLng:   &gmaps.LatLng{Lat: lat, Lng: lng},
			Language: language,
		})
		if err != nil {
			return nil, providerError(err)
		}
		// ZERO_RESULTS comes back as an empty slice.
		if len(results) == 0 {
			return nil, interfaces.ErrRoutingZeroResults
		}
		return results[0], nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reverse geocode failed")
		g.observeFailure(err)
		g.logger.Warn("[maps][gateway] reverse geocode failed", zap.Error(err))
		return nil, "", err
	}

	first := result.(gmaps.GeocodingResult)
	components := make([]entities.AddressComponent, 0, len(first.AddressComponents))
	for _, c := range first.AddressComponents {
		components = append(components, entities.AddressComponent{
			LongName:  c.LongName,
			ShortName: c.ShortName,
			Types:     c.Types,
		})
	}
	return components, first.FormattedAddress, nil
}

func (g *GoogleMapsGateway) observeFailure(err error) {
	if !isProviderHealthy(err) {
		g.metrics.IncrExternalError("google_maps")
	}
}

// providerError turns "maps: STATUS - message" errors of the client library
// into routing errors.
func providerError(err error) error {
	msg := strings.TrimPrefix(err.Error(), "maps: ")
	status, detail, found := strings.Cut(msg, " - ")
	if !found || status == "" || strings.ContainsAny(status, " :") {
		return err
	}
	switch status {
	case "NOT_FOUND":
		return interfaces.ErrRoutingNotFound
	case "ZERO_RESULTS":
		return interfaces.ErrRoutingZeroResults
	}
	return &interfaces.RoutingUpstreamError{Status: status, Message: strings.TrimSpace(detail)}
}

// isProviderHealthy keeps address lookups that found nothing from opening the
// breaker.
func isProviderHealthy(err error) bool {
	return err == nil ||
		errors.Is(err, interfaces.ErrRoutingNotFound) ||
		errors.Is(err, interfaces.ErrRoutingZeroResults)
}
