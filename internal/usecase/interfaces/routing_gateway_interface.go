package interfaces

import (
	"context"
	"errors"
	"fmt"
	"fundacoes_backoffice/internal/domain/entities"
)

var (
	ErrRoutingNotConfigured = errors.New("routing provider not configured")
	ErrRoutingNotFound      = errors.New("address not found by routing provider")
	ErrRoutingZeroResults   = errors.New("no route between addresses")
)

// RoutingUpstreamError carries a non-OK status returned by the maps provider.
type RoutingUpstreamError struct {
	Status  string
	Message string
}

func (e *RoutingUpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("routing provider status %s", e.Status)
	}
	return fmt.Sprintf("routing provider status %s: %s", e.Status, e.Message)
}

// IRoutingGateway abstracts the maps provider: one driving route per call and
// reverse geocoding of a coordinate.
type IRoutingGateway interface {
	Route(ctx context.Context, origin, destination string) (entities.Route, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) ([]entities.AddressComponent, string, error)
}
