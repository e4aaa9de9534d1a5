package models

// PaystackInitData is the data block of a Paystack initialize response
type PaystackInitData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// PaystackInitResponse is the envelope Paystack returns when a
// transaction is initialized
type PaystackInitResponse struct {
	Status  bool             `json:"status"`
	Message string           `json:"message"`
	Data    PaystackInitData `json:"data"`
}

// PaystackVerifyData is the data block of a Paystack verify response.
// Status is "success" once the transaction has settled; Amount is in
// minor units (kobo).
type PaystackVerifyData struct {
	Status          string `json:"status"`
	Reference       string `json:"reference"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	GatewayResponse string `json:"gateway_response"`
	PaidAt          string `json:"paid_at"`
	Channel         string `json:"channel"`
}

// Settled reports whether the gateway considers the transaction paid
func (d *PaystackVerifyData) Settled() bool {
	return d.Status == "success"
}

// PaystackVerifyResponse is the envelope Paystack returns when a
// transaction is verified
type PaystackVerifyResponse struct {
	Status  bool               `json:"status"`
	Message string             `json:"message"`
	Data    PaystackVerifyData `json:"data"`
}
