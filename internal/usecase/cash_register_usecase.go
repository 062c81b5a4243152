package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MethodMercadoPago = "mercadopago"

var (
	ErrInvalidPaymentJobID            = errors.New("invalid job id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrJobAlreadyPaid                 = errors.New("job already has a payment entry")
	ErrJobCancelled                   = errors.New("job is cancelled")
	ErrJobWithoutValue                = errors.New("job has no value to charge")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentSettings controls how job charges reach Mercado Pago.
//
// Mock skips the provider and approves the charge locally. The TestPayer
// fields only apply to sandbox tokens (prefix TEST-).
type PaymentSettings struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// ICashRegisterUseCase records job payments in the cash register.
//
// Requested behavior:
//   - Charge the job final value and register it as an entrada, once per job.
type ICashRegisterUseCase interface {
	ChargeJob(ctx context.Context, jobID, method string, mpPayload json.RawMessage) (entities.CashTransaction, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.CashTransaction, error)
	List(ctx context.Context) ([]entities.CashTransaction, error)
}

type CashRegisterUseCase struct {
	repo     interfaces.ICashTransactionRepository
	jobs     interfaces.IJobRepository
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings
	logger   *zap.Logger
}

var _ ICashRegisterUseCase = (*CashRegisterUseCase)(nil)

func NewCashRegisterUseCase(repo interfaces.ICashTransactionRepository, jobs interfaces.IJobRepository, gateway interfaces.IPaymentGateway, settings PaymentSettings, logger *zap.Logger) *CashRegisterUseCase {
	return &CashRegisterUseCase{repo: repo, jobs: jobs, gateway: gateway, settings: settings, logger: logger.Named("cash")}
}

func (u *CashRegisterUseCase) ChargeJob(ctx context.Context, jobID, method string, mpPayload json.RawMessage) (entities.CashTransaction, error) {
	jobID = strings.TrimSpace(jobID)
	method = strings.ToLower(strings.TrimSpace(method))
	if method == "" {
		method = MethodMercadoPago
	}
	u.logger.Info("[payment][usecase] charge start", zap.String("job_id", jobID), zap.String("method", method), zap.Int("payload_len", len(mpPayload)))
	if jobID == "" {
		return entities.CashTransaction{}, ErrInvalidPaymentJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		u.logger.Error("[payment][usecase] failed loading job", zap.String("job_id", jobID), zap.Error(err))
		return entities.CashTransaction{}, err
	}
	if job.ID == "" {
		return entities.CashTransaction{}, ErrJobNotFound
	}
	if job.Status == entities.JobStatusCancelada {
		return entities.CashTransaction{}, ErrJobCancelled
	}
	if job.FinalValue <= 0 {
		return entities.CashTransaction{}, ErrJobWithoutValue
	}

	existing, err := u.repo.ListByJobID(ctx, jobID)
	if err != nil {
		return entities.CashTransaction{}, err
	}
	for _, tx := range existing {
		if tx.Type == entities.CashTransactionEntrada {
			u.logger.Info("[payment][usecase] job already paid", zap.String("job_id", jobID), zap.String("transaction_id", tx.ID))
			return entities.CashTransaction{}, ErrJobAlreadyPaid
		}
	}

	tx := entities.CashTransaction{
		JobID:       job.ID,
		Type:        entities.CashTransactionEntrada,
		Amount:      job.FinalValue,
		Method:      method,
		Description: fmt.Sprintf("Pagamento %s", job.Title),
		Status:      entities.PaymentStatusAprovado,
		Date:        time.Now().UTC(),
	}

	if method == MethodMercadoPago {
		if err := u.chargeMercadoPago(ctx, job, mpPayload, &tx); err != nil {
			return entities.CashTransaction{}, err
		}
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	created, err := u.repo.Create(ctx, tx)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.CashTransaction{}, ErrJobAlreadyPaid
		}
		u.logger.Error("[payment][usecase] cash repository create failed", zap.String("job_id", jobID), zap.Error(err))
		return entities.CashTransaction{}, err
	}
	u.logger.Info("[payment][usecase] charge success",
		zap.String("job_id", jobID),
		zap.String("transaction_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.Float64("amount", created.Amount),
	)
	return created, nil
}

func (u *CashRegisterUseCase) chargeMercadoPago(ctx context.Context, job entities.Job, mpPayload json.RawMessage, tx *entities.CashTransaction) error {
	mock := u.settings.Mock
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mock {
			u.logger.Warn("[payment][usecase] invalid payload", zap.String("job_id", job.ID))
			return ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mock {
			return ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			u.logger.Warn("[payment][usecase] missing payment_method_id", zap.String("job_id", job.ID))
			return ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			u.logger.Warn("[payment][usecase] missing/invalid payer", zap.String("job_id", job.ID))
			return ErrInvalidMPPayload
		}
	}

	// Mercado Pago reconciles events through external_reference.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = job.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = job.Title
	}
	// The job value is the source of truth for the amount.
	reqMap["transaction_amount"] = job.FinalValue
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return err
	}

	var providerID, providerStatus string
	var providerResp json.RawMessage
	if mock {
		u.logger.Info("[payment][usecase] mock mode enabled; skipping external payment gateway", zap.String("job_id", job.ID))
		providerID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		reqMap["id"] = providerID
		reqMap["status"] = providerStatus
		reqMap["status_detail"] = "accredited"
		reqMap["date_created"] = now
		reqMap["date_approved"] = now
		if providerResp, err = json.Marshal(reqMap); err != nil {
			return err
		}
	} else {
		if u.gateway == nil {
			return ErrPaymentGatewayNotConfigured
		}
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			u.logger.Warn("[payment][usecase] payment gateway failed", zap.String("job_id", job.ID), zap.Error(err))
			return mapGatewayError(err)
		}
	}
	u.logger.Info("[payment][usecase] payment gateway success", zap.String("job_id", job.ID), zap.String("provider_payment_id", providerID), zap.String("provider_status", providerStatus))

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.logger.Warn("[payment][usecase] provider response unmarshal failed", zap.String("job_id", job.ID), zap.Error(err))
	}

	tx.ID = providerID
	tx.ProviderPaymentID = providerID
	tx.Status = paymentStatusFromProvider(providerStatus)
	tx.ProviderPayloadRaw = providerResp
	tx.ProviderPayload = parsed
	return nil
}

func (u *CashRegisterUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.CashTransaction, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidPaymentJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}

func (u *CashRegisterUseCase) List(ctx context.Context) ([]entities.CashTransaction, error) {
	return u.repo.List(ctx)
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(status) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *CashRegisterUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.settings.AccessToken), "TEST-")
}

func (u *CashRegisterUseCase) ensurePayerDefaults(m map[string]any) {
	if v, ok := m["payer"]; !ok || v == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email may be used; email is filled
	// only when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.settings.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

func (u *CashRegisterUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.settings.TestPayerUserID)
	email := strings.TrimSpace(u.settings.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.logger.Info("[payment][usecase] mapped sandbox payer user_id to payer.email")
}
