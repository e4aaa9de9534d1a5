package models

// DonationIntent is the donor form data captured when a payment is
// initialized. Amount is in minor units (kobo), as submitted to the
// gateway. It is stored keyed by the gateway reference so a later
// verification call can recover the donor details.
type DonationIntent struct {
	Reference string `json:"reference"`
	Email     string `json:"email"`
	Amount    int64  `json:"amount"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}
