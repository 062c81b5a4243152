package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "fundacoes_backoffice/internal/adapter/http/dto/request"
	response "fundacoes_backoffice/internal/adapter/http/dto/response"
	"fundacoes_backoffice/internal/usecase"
	"fundacoes_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler charges jobs and lists the cash register.
type PaymentHandler struct {
	usecase usecase.ICashRegisterUseCase
	logger  *zap.Logger
}

func NewPaymentHandler(uc usecase.ICashRegisterUseCase, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, logger: logger.Named("payment")}
}

// ChargeJob registers the entrada of a job. The body is either
// {"method": ..., "mp_payload": {...}} or a bare Mercado Pago payload.
func (h *PaymentHandler) ChargeJob(c *gin.Context) {
	jobID := c.Param("id")
	h.logger.Info("[payment][handler] charge start", zap.String("job_id", jobID))

	payload, err := readChargeRequest(c)
	if err != nil {
		h.logger.Info("[payment][handler] invalid payload", zap.String("job_id", jobID), zap.Error(err))
		writeError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.ChargeJob(c.Request.Context(), jobID, payload.Method, payload.MPPayload)
	if err != nil {
		h.logger.Info("[payment][handler] charge failed", zap.String("job_id", jobID), zap.Error(err))
		writeError(c, mapPaymentError(err))
		return
	}
	h.logger.Info("[payment][handler] charge success", zap.String("job_id", jobID), zap.String("transaction_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusCreated, response.Data(response.FromCashTransaction(created)))
}

func (h *PaymentHandler) ListByJob(c *gin.Context) {
	txs, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.Data(response.FromCashTransactions(txs)))
}

func (h *PaymentHandler) List(c *gin.Context) {
	txs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.Data(response.FromCashTransactions(txs)))
}

func readChargeRequest(c *gin.Context) (request.ChargeJobRequest, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return request.ChargeJobRequest{}, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return request.ChargeJobRequest{}, nil
	}
	if !json.Valid(raw) {
		return request.ChargeJobRequest{}, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return request.ChargeJobRequest{}, err
	}
	_, hasMethod := envelope["method"]
	_, hasPayload := envelope["mp_payload"]
	if !hasMethod && !hasPayload {
		return request.ChargeJobRequest{MPPayload: json.RawMessage(raw)}, nil
	}

	var payload request.ChargeJobRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		return request.ChargeJobRequest{}, err
	}
	if hasPayload && strings.TrimSpace(string(payload.MPPayload)) == "null" {
		return request.ChargeJobRequest{}, errors.New("mp_payload cannot be null")
	}
	return payload, nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentJobID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobAlreadyPaid):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_PAID", "Job already has a payment entry", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobCancelled):
		return pkg.NewDomainErrorSimple("JOB_CANCELLED", "Job is cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobWithoutValue):
		return pkg.NewDomainErrorSimple("JOB_WITHOUT_VALUE", "Job has no value to charge", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
