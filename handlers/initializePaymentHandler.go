package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"BACK_CHARITY_GO/gateway"
	"BACK_CHARITY_GO/models"
)

// PaymentGateway is the slice of the Paystack client the payment
// handlers depend on
type PaymentGateway interface {
	InitializeTransaction(email string, amount int64) (*gateway.InitResult, error)
	VerifyTransaction(reference string) (*models.PaystackVerifyData, error)
}

// DonationStore is the persistence surface the payment handlers depend on
type DonationStore interface {
	SaveIntent(intent *models.DonationIntent) error
	GetIntent(reference string) (*models.DonationIntent, error)
	CreateDonation(donation *models.Donation) error
	ListDonations() ([]models.Donation, error)
}

// InitializePaymentRequest is the donor form submitted to start a donation
type InitializePaymentRequest struct {
	Email  string `json:"email"`
	Amount int64  `json:"amount"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// InitializePaymentHandler starts a donation: validates the form,
// creates a charge with the gateway, stores the intent keyed by the
// gateway reference and relays the gateway's session payload unchanged
func InitializePaymentHandler(gw PaymentGateway, store DonationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InitializePaymentRequest

		// Decode the request body
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "All fields are required.")
			return
		}

		// Validate required fields
		if req.Email == "" || req.Amount <= 0 || req.Name == "" ||
			req.Phone == "" || req.Date == "" || req.Time == "" {
			writeJSONError(w, http.StatusBadRequest, "All fields are required.")
			return
		}

		// Create the charge with the gateway
		result, err := gw.InitializeTransaction(req.Email, req.Amount)
		if err != nil {
			var apiErr *gateway.APIError
			if errors.As(err, &apiErr) {
				// Relay the provider's own rejection
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(apiErr.StatusCode)
				w.Write(apiErr.Body)
				return
			}
			writeJSONError(w, http.StatusInternalServerError, "Server Error!")
			return
		}

		// Store the intent keyed by the gateway reference so the
		// verification call can recover the donor details
		intent := &models.DonationIntent{
			Reference: result.Reference,
			Email:     req.Email,
			Amount:    req.Amount,
			Name:      req.Name,
			Phone:     req.Phone,
			Date:      req.Date,
			Time:      req.Time,
		}
		if err := store.SaveIntent(intent); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "Server Error!")
			return
		}

		// Relay the gateway session payload verbatim
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(result.Body)
	}
}

// writeJSONError writes an error body in the shape the frontend expects
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
