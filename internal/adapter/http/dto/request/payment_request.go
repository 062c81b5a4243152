package request

import "encoding/json"

// ChargeJobRequest is the payload of POST /jobs/:id/payments.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas. It is only read when method is mercadopago.
type ChargeJobRequest struct {
	Method    string          `json:"method"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
