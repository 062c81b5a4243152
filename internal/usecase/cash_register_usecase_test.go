package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"
	mock_interfaces "fundacoes_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type cashMocks struct {
	repo    *mock_interfaces.MockICashTransactionRepository
	jobs    *mock_interfaces.MockIJobRepository
	gateway *mock_interfaces.MockIPaymentGateway
}

func newCashRegisterUseCase(t *testing.T, settings PaymentSettings) (*CashRegisterUseCase, cashMocks) {
	ctrl := gomock.NewController(t)
	m := cashMocks{
		repo:    mock_interfaces.NewMockICashTransactionRepository(ctrl),
		jobs:    mock_interfaces.NewMockIJobRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	return NewCashRegisterUseCase(m.repo, m.jobs, m.gateway, settings, zap.NewNop()), m
}

var payableJob = entities.Job{ID: "j-1", Title: "Alfa - 10/03/2025 08:30 - 000001", FinalValue: 1078, Status: entities.JobStatusConcluida}

func TestCashRegisterUseCase_ChargeJob_Checks(t *testing.T) {
	t.Run("empty job id", func(t *testing.T) {
		uc, _ := newCashRegisterUseCase(t, PaymentSettings{})
		if _, err := uc.ChargeJob(context.Background(), " ", "", nil); !errors.Is(err, ErrInvalidPaymentJobID) {
			t.Fatalf("expected ErrInvalidPaymentJobID, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		uc, m := newCashRegisterUseCase(t, PaymentSettings{})
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{}, nil)
		if _, err := uc.ChargeJob(context.Background(), "j-1", "pix", nil); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("cancelled job", func(t *testing.T) {
		uc, m := newCashRegisterUseCase(t, PaymentSettings{})
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", FinalValue: 10, Status: entities.JobStatusCancelada}, nil)
		if _, err := uc.ChargeJob(context.Background(), "j-1", "pix", nil); !errors.Is(err, ErrJobCancelled) {
			t.Fatalf("expected ErrJobCancelled, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		uc, m := newCashRegisterUseCase(t, PaymentSettings{})
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(payableJob, nil)
		m.repo.EXPECT().ListByJobID(gomock.Any(), "j-1").Return([]entities.CashTransaction{{ID: "tx-1", Type: entities.CashTransactionEntrada}}, nil)
		if _, err := uc.ChargeJob(context.Background(), "j-1", "pix", nil); !errors.Is(err, ErrJobAlreadyPaid) {
			t.Fatalf("expected ErrJobAlreadyPaid, got %v", err)
		}
	})

	t.Run("duplicate detected on write", func(t *testing.T) {
		uc, m := newCashRegisterUseCase(t, PaymentSettings{})
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(payableJob, nil)
		m.repo.EXPECT().ListByJobID(gomock.Any(), "j-1").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CashTransaction{}, interfaces.ErrConditionFailed)
		if _, err := uc.ChargeJob(context.Background(), "j-1", "dinheiro", nil); !errors.Is(err, ErrJobAlreadyPaid) {
			t.Fatalf("expected ErrJobAlreadyPaid, got %v", err)
		}
	})
}

func TestCashRegisterUseCase_ChargeJob_Methods(t *testing.T) {
	t.Run("manual method skips gateway", func(t *testing.T) {
		uc, m := newCashRegisterUseCase(t, PaymentSettings{})
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(payableJob, nil)
		m.repo.EXPECT().ListByJobID(gomock.Any(), "j-1").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.CashTransaction) (entities.CashTransaction, error) {
				if tx.ID == "" || tx.Method != "pix" || tx.Amount != 1078 || tx.Type != entities.CashTransactionEntrada || tx.Status != entities.PaymentStatusAprovado {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				return tx, nil
			},
		)
		if _, err := uc.ChargeJob(context.Background(), "j-1", " PIX ", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mercado pago requires payment method", func(t *testing.T) {
		uc, m := newCashRegisterUseCase(t, PaymentSettings{})
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(payableJob, nil)
		m.repo.EXPECT().ListByJobID(gomock.Any(), "j-1").Return(nil, nil)
		if _, err := uc.ChargeJob(context.Background(), "j-1", "", json.RawMessage(`{"payer":{"email":"a@b.c"}}`)); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("mercado pago enriches payload", func(t *testing.T) {
		uc, m := newCashRegisterUseCase(t, PaymentSettings{AccessToken: "TEST-123"})
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(payableJob, nil)
		m.repo.EXPECT().ListByJobID(gomock.Any(), "j-1").Return(nil, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if req["transaction_amount"] != 1078.0 || req["external_reference"] != "j-1" {
					t.Fatalf("unexpected payload: %v", req)
				}
				payer := req["payer"].(map[string]any)
				if payer["email"] != "test_user_br@testuser.com" || payer["type"] != "customer" {
					t.Fatalf("unexpected payer: %v", payer)
				}
				return "987", "approved", json.RawMessage(`{"id":987,"status":"approved"}`), nil
			},
		)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.CashTransaction) (entities.CashTransaction, error) {
				if tx.ID != "987" || tx.ProviderPaymentID != "987" || tx.Status != entities.PaymentStatusAprovado || tx.ProviderPayload["status"] != "approved" {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				return tx, nil
			},
		)

		if _, err := uc.ChargeJob(context.Background(), "j-1", "mercadopago", json.RawMessage(`{"payment_method_id":"pix"}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mock mode accepts empty payload", func(t *testing.T) {
		uc, m := newCashRegisterUseCase(t, PaymentSettings{Mock: true})
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(payableJob, nil)
		m.repo.EXPECT().ListByJobID(gomock.Any(), "j-1").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.CashTransaction) (entities.CashTransaction, error) {
				if tx.ProviderPaymentID == "" || tx.Status != entities.PaymentStatusAprovado || tx.ProviderPayload["external_reference"] != "j-1" {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				return tx, nil
			},
		)

		if _, err := uc.ChargeJob(context.Background(), "j-1", "", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCashRegisterUseCase_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New("Invalid users involved"), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"status":401}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"error":"bad_request"}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newCashRegisterUseCase(t, PaymentSettings{})
			m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(payableJob, nil)
			m.repo.EXPECT().ListByJobID(gomock.Any(), "j-1").Return(nil, nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.ChargeJob(context.Background(), "j-1", "", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.c"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentStatusFromProvider(t *testing.T) {
	if paymentStatusFromProvider("approved") != entities.PaymentStatusAprovado {
		t.Fatalf("approved should map to aprovado")
	}
	if paymentStatusFromProvider("rejected") != entities.PaymentStatusNegado {
		t.Fatalf("rejected should map to negado")
	}
	if paymentStatusFromProvider("in_process") != entities.PaymentStatusPendente {
		t.Fatalf("in_process should map to pendente")
	}
}
