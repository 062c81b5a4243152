package maps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"fundacoes_backoffice/internal/usecase/interfaces"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const testAPIKey = "AIzaNotReallyAnAPIKey"

func newTestGateway(t *testing.T, handler http.HandlerFunc) *GoogleMapsGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	g, err := NewGoogleMapsGateway(Config{APIKey: testAPIKey, BaseURL: server.URL}, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestNewGoogleMapsGateway_RequiresKey(t *testing.T) {
	if _, err := NewGoogleMapsGateway(Config{}, nil, zap.NewNop()); !errors.Is(err, interfaces.ErrRoutingNotConfigured) {
		t.Fatalf("expected ErrRoutingNotConfigured, got %v", err)
	}
}

func TestGoogleMapsGateway_Route(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/distancematrix/json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("mode") != "driving" || q.Get("language") != "pt-BR" || q.Get("origins") != "Av. Central, 100" {
			t.Fatalf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","origin_addresses":["a"],"destination_addresses":["b"],
			"rows":[{"elements":[{"status":"OK","distance":{"text":"12,7 km","value":12700},"duration":{"text":"20 min","value":1230}}]}]}`))
	})

	route, err := g.Route(context.Background(), "Av. Central, 100", "Rua A, 10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.DistanceMeters != 12700 || route.DistanceText != "12,7 km" {
		t.Fatalf("unexpected distance: %+v", route)
	}
	if route.DurationSeconds != 1230 || route.DurationText != "21 min" {
		t.Fatalf("unexpected duration: %+v", route)
	}
}

func TestGoogleMapsGateway_RouteStatuses(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{name: "element not found", body: `{"status":"OK","rows":[{"elements":[{"status":"NOT_FOUND"}]}]}`, want: interfaces.ErrRoutingNotFound},
		{name: "element zero results", body: `{"status":"OK","rows":[{"elements":[{"status":"ZERO_RESULTS"}]}]}`, want: interfaces.ErrRoutingZeroResults},
		{name: "empty rows", body: `{"status":"OK","rows":[]}`, want: interfaces.ErrRoutingNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})
			if _, err := g.Route(context.Background(), "a", "b"); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("request denied", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`))
		})
		_, err := g.Route(context.Background(), "a", "b")
		var upstream *interfaces.RoutingUpstreamError
		if !errors.As(err, &upstream) {
			t.Fatalf("expected RoutingUpstreamError, got %v", err)
		}
		if upstream.Status != "REQUEST_DENIED" || upstream.Message != "The provided API key is invalid." {
			t.Fatalf("unexpected upstream error: %+v", upstream)
		}
	})
}

func TestGoogleMapsGateway_ReverseGeocode(t *testing.T) {
	t.Run("components", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/maps/api/geocode/json" || r.URL.Query().Get("latlng") == "" {
				t.Fatalf("unexpected request %s", r.URL.String())
			}
			_, _ = w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"Rua A, 10 - Centro, Campinas - SP, 13010-000, Brasil",
				"address_components":[{"long_name":"Rua A","short_name":"R. A","types":["route"]},{"long_name":"São Paulo","short_name":"SP","types":["administrative_area_level_1"]}]}]}`))
		})

		components, formatted, err := g.ReverseGeocode(context.Background(), -22.9, -47.06)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(components) != 2 || components[1].ShortName != "SP" || formatted == "" {
			t.Fatalf("unexpected result: %+v %q", components, formatted)
		}
	})

	t.Run("zero results", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
		})
		if _, _, err := g.ReverseGeocode(context.Background(), 0, 0); !errors.Is(err, interfaces.ErrRoutingZeroResults) {
			t.Fatalf("expected ErrRoutingZeroResults, got %v", err)
		}
	})
}

func TestProviderError(t *testing.T) {
	if err := providerError(errors.New("maps: NOT_FOUND - ")); !errors.Is(err, interfaces.ErrRoutingNotFound) {
		t.Fatalf("expected ErrRoutingNotFound, got %v", err)
	}
	raw := errors.New("dial tcp: connection refused")
	if err := providerError(raw); err != raw {
		t.Fatalf("expected raw error, got %v", err)
	}
}

func TestGoogleMapsGateway_BreakerOpensOnUpstreamFailures(t *testing.T) {
	var hits atomic.Int32
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"status":"UNKNOWN_ERROR"}`))
	})

	for i := 0; i < 5; i++ {
		if _, err := g.Route(context.Background(), "a", "b"); err == nil {
			t.Fatalf("expected upstream error on call %d", i)
		}
	}
	if _, err := g.Route(context.Background(), "a", "b"); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if hits.Load() != 5 {
		t.Fatalf("expected 5 upstream calls, got %d", hits.Load())
	}
}

func TestGoogleMapsGateway_NotFoundKeepsBreakerClosed(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","rows":[{"elements":[{"status":"NOT_FOUND"}]}]}`))
	})

	for i := 0; i < 8; i++ {
		if _, err := g.Route(context.Background(), "a", "b"); !errors.Is(err, interfaces.ErrRoutingNotFound) {
			t.Fatalf("call %d: expected ErrRoutingNotFound, got %v", i, err)
		}
	}
}
