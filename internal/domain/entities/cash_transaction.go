package entities

import (
	"encoding/json"
	"time"
)

type CashTransactionType string

const (
	CashTransactionEntrada CashTransactionType = "entrada"
	CashTransactionSaida   CashTransactionType = "saida"
)

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// CashTransaction is a cash register entry. Job payments are entries of type
// entrada; a job can have at most one of them.
//
// When the payment went through Mercado Pago the provider response is kept
// both raw and parsed for reconciliation.
type CashTransaction struct {
	ID                string              `json:"id"`
	JobID             string              `json:"jobId,omitempty"`
	Type              CashTransactionType `json:"type"`
	Amount            float64             `json:"amount"`
	Method            string              `json:"method"`
	Description       string              `json:"description"`
	Status            PaymentStatus       `json:"status"`
	ProviderPaymentID string              `json:"providerPaymentId,omitempty"`
	Date              time.Time           `json:"date"`

	ProviderPayloadRaw json.RawMessage `json:"providerPayloadRaw,omitempty"`
	ProviderPayload    map[string]any  `json:"providerPayload,omitempty"`
}
