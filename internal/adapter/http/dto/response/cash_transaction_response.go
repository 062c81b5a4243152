package response

import (
	"time"

	"fundacoes_backoffice/internal/domain/entities"
)

type CashTransactionResponse struct {
	ID                string    `json:"id"`
	JobID             string    `json:"jobId,omitempty"`
	Type              string    `json:"type"`
	Amount            float64   `json:"amount"`
	Method            string    `json:"method"`
	Description       string    `json:"description"`
	Status            string    `json:"status"`
	ProviderPaymentID string    `json:"providerPaymentId,omitempty"`
	Date              time.Time `json:"date"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromCashTransaction(tx entities.CashTransaction) CashTransactionResponse {
	return CashTransactionResponse{
		ID:                tx.ID,
		JobID:             tx.JobID,
		Type:              string(tx.Type),
		Amount:            tx.Amount,
		Method:            tx.Method,
		Description:       tx.Description,
		Status:            string(tx.Status),
		ProviderPaymentID: tx.ProviderPaymentID,
		Date:              tx.Date,
		MPPayloadRaw:      string(tx.ProviderPayloadRaw),
		MPPayload:         tx.ProviderPayload,
	}
}

func FromCashTransactions(txs []entities.CashTransaction) []CashTransactionResponse {
	out := make([]CashTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromCashTransaction(tx))
	}
	return out
}
