package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fundacoes_backoffice/internal/infrastructure/resilience"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

// fakePaymentClient implements only Create; other methods panic through the
// nil embedded interface.
type fakePaymentClient struct {
	payment.Client
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakePaymentClient) Create(ctx context.Context, request payment.Request) (*payment.Response, error) {
	f.got = request
	return f.resp, f.err
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", resilience.BreakerConfig{}, nil, zap.NewNop()); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakePaymentClient{resp: &payment.Response{ID: 123456, Status: "approved"}}
		g := newGateway(fake, resilience.BreakerConfig{}, nil, zap.NewNop())

		payload := json.RawMessage(`{"transaction_amount":1078,"payment_method_id":"pix","payer":{"email":"cliente@example.com"}}`)
		id, status, raw, err := g.CreatePayment(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "123456" || status != "approved" {
			t.Fatalf("unexpected result id=%s status=%s", id, status)
		}
		if fake.got.TransactionAmount != 1078 || fake.got.PaymentMethodID != "pix" || fake.got.Payer == nil || fake.got.Payer.Email != "cliente@example.com" {
			t.Fatalf("unexpected request sent: %+v", fake.got)
		}
		if !json.Valid(raw) {
			t.Fatalf("expected json provider response, got %s", raw)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		g := newGateway(&fakePaymentClient{}, resilience.BreakerConfig{}, nil, zap.NewNop())
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{`)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		sdkErr := errors.New(`{"message":"invalid users involved","error":"bad_request","status":400}`)
		g := newGateway(&fakePaymentClient{err: sdkErr}, resilience.BreakerConfig{}, nil, zap.NewNop())
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, sdkErr) {
			t.Fatalf("expected sdk error, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}
