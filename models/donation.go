package models

import "time"

// Donation is the persisted record of a verified donation. Amount is in
// major units (naira); Reference is the gateway transaction reference and
// is unique per donation.
type Donation struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Amount     float64   `json:"amount"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Reference  string    `json:"reference"`
	DateCreate time.Time `json:"date_create"`
}
