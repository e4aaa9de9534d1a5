package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"BACK_CHARITY_GO/gateway"
	"BACK_CHARITY_GO/models"
	"BACK_CHARITY_GO/store"
)

// EmailNotifier sends the donor a receipt email
type EmailNotifier interface {
	SendReceipt(donation *models.Donation) error
}

// MessageNotifier sends the donor a WhatsApp acknowledgement
type MessageNotifier interface {
	SendReceipt(donation *models.Donation, gatewayDetail string) error
}

// VerifyPaymentHandler confirms a donation: asks the gateway for the
// settlement status of the reference, records the donation exactly once
// and, after responding, dispatches the receipt email and WhatsApp
// message. Notification failures are logged and never affect the
// response already sent.
func VerifyPaymentHandler(gw PaymentGateway, st DonationStore, email EmailNotifier, message MessageNotifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reference := mux.Vars(r)["reference"]

		// Ask the gateway for the settlement status
		verification, err := gw.VerifyTransaction(reference)
		if err != nil {
			if errors.Is(err, gateway.ErrMissingSecretKey) {
				writeJSONError(w, http.StatusBadRequest, "Paystack secret key is missing.")
				return
			}
			log.Printf("Error verifying payment %s: %v", reference, err)
			writeJSONError(w, http.StatusInternalServerError, "Payment verification failed.")
			return
		}

		if !verification.Settled() {
			writeJSONError(w, http.StatusBadRequest, "Payment not successful.")
			return
		}

		// Recover the donor details captured at initialization
		intent, err := st.GetIntent(reference)
		if err != nil {
			log.Printf("Error loading donation intent %s: %v", reference, err)
			writeJSONError(w, http.StatusInternalServerError, "Payment verification failed.")
			return
		}

		// The gateway reports the settled amount in minor units
		donation := &models.Donation{
			Email:     intent.Email,
			Amount:    float64(verification.Amount) / 100,
			Name:      intent.Name,
			Phone:     intent.Phone,
			Date:      intent.Date,
			Time:      intent.Time,
			Reference: reference,
		}

		if err := st.CreateDonation(donation); err != nil {
			if errors.Is(err, store.ErrDuplicateReference) {
				// Already recorded on an earlier verification: answer the
				// same way without a second row or repeated notifications
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(map[string]string{"message": "Verified"})
				return
			}
			log.Printf("Error saving donation %s: %v", reference, err)
			writeJSONError(w, http.StatusInternalServerError, "Payment verification failed.")
			return
		}

		// Respond before dispatching notifications
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Verified"})

		// Fan out the receipt email and WhatsApp message independently;
		// a failure in either channel is logged and swallowed
		gatewayDetail := verification.GatewayResponse
		go func(d models.Donation) {
			if err := email.SendReceipt(&d); err != nil {
				log.Printf("Error sending receipt email for %s to %s: %v", d.Reference, d.Email, err)
				return
			}
			log.Printf("Receipt email sent for %s to %s", d.Reference, d.Email)
		}(*donation)

		go func(d models.Donation, detail string) {
			if err := message.SendReceipt(&d, detail); err != nil {
				log.Printf("Error sending WhatsApp message for %s to %s: %v", d.Reference, d.Phone, err)
				return
			}
			log.Printf("WhatsApp message sent for %s to %s", d.Reference, d.Phone)
		}(*donation, gatewayDetail)
	}
}
