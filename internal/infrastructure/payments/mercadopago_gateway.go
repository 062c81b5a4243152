// Package payments charges jobs through Mercado Pago.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fundacoes_backoffice/internal/infrastructure/observability"
	"fundacoes_backoffice/internal/infrastructure/resilience"
	"fundacoes_backoffice/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

var tracer = otel.Tracer("fundacoes_backoffice/payments")

type MercadoPagoGateway struct {
	client  payment.Client
	cb      *gobreaker.CircuitBreaker
	metrics *observability.Metrics
	logger  *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, breaker resilience.BreakerConfig, metrics *observability.Metrics, logger *zap.Logger) (*MercadoPagoGateway, error) {
	logger = logger.Named("mercadopago")
	if accessToken == "" {
		logger.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized")

	return newGateway(payment.NewClient(cfg), breaker, metrics, logger), nil
}

func newGateway(client payment.Client, breaker resilience.BreakerConfig, metrics *observability.Metrics, logger *zap.Logger) *MercadoPagoGateway {
	return &MercadoPagoGateway{
		client:  client,
		cb:      resilience.NewCircuitBreaker("mercadopago", breaker, nil),
		metrics: metrics,
		logger:  logger,
	}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	ctx, span := tracer.Start(ctx, "MercadoPagoGateway.CreatePayment")
	defer span.End()

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.logger.Warn("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}
	g.logger.Debug("[payment][gateway] create start", zap.Int("payload_len", len(requestPayload)))

	result, err := g.cb.Execute(func() (any, error) {
		return g.client.Create(ctx, req)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create payment failed")
		g.metrics.IncrExternalError("mercadopago")
		g.logger.Warn("[payment][gateway] sdk create failed", zap.Error(err))
		return "", "", nil, err
	}
	resp := result.(*payment.Response)

	b, err := json.Marshal(resp)
	if err != nil {
		g.logger.Error("[payment][gateway] response marshal failed", zap.Error(err))
		return "", "", nil, err
	}

	providerPaymentID = fmt.Sprintf("%d", resp.ID)
	span.SetAttributes(attribute.String("payment.provider_id", providerPaymentID), attribute.String("payment.status", resp.Status))
	g.logger.Info("[payment][gateway] create success", zap.String("provider_payment_id", providerPaymentID), zap.String("provider_status", resp.Status))
	return providerPaymentID, resp.Status, b, nil
}
