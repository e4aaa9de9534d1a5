package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"BACK_CHARITY_GO/models"
)

// ErrDuplicateReference is returned when a donation already exists for
// the given gateway reference
var ErrDuplicateReference = errors.New("a donation already exists for this reference")

// ErrIntentNotFound is returned when no donation intent was stored for
// the given gateway reference
var ErrIntentNotFound = errors.New("no donation intent found for this reference")

// DonationStore persists donation intents and verified donations
type DonationStore struct {
	db *sql.DB
}

func NewDonationStore(db *sql.DB) *DonationStore {
	return &DonationStore{db: db}
}

// SaveIntent stores the donor form data keyed by the gateway reference.
// Re-initializing with the same reference overwrites the previous intent.
func (s *DonationStore) SaveIntent(intent *models.DonationIntent) error {
	query := `
		INSERT INTO core.donation_intent (reference, email, amount, name, phone, donation_date, donation_time, date_create)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (reference) DO UPDATE SET
			email = EXCLUDED.email,
			amount = EXCLUDED.amount,
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			donation_date = EXCLUDED.donation_date,
			donation_time = EXCLUDED.donation_time
	`
	_, err := s.db.Exec(query, intent.Reference, intent.Email, intent.Amount,
		intent.Name, intent.Phone, intent.Date, intent.Time, time.Now())
	return err
}

// GetIntent looks up the donor form data stored for a gateway reference
func (s *DonationStore) GetIntent(reference string) (*models.DonationIntent, error) {
	query := `
		SELECT reference, email, amount, name, phone, donation_date, donation_time
		FROM core.donation_intent
		WHERE reference = $1
	`
	var intent models.DonationIntent
	err := s.db.QueryRow(query, reference).Scan(&intent.Reference, &intent.Email,
		&intent.Amount, &intent.Name, &intent.Phone, &intent.Date, &intent.Time)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrIntentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

// CreateDonation inserts the donation record. The unique index on
// reference enforces at most one record per gateway reference; a
// second insert returns ErrDuplicateReference.
func (s *DonationStore) CreateDonation(donation *models.Donation) error {
	donation.ID = uuid.NewString()
	donation.DateCreate = time.Now()

	query := `
		INSERT INTO core.donation (id, email, amount, name, phone, donation_date, donation_time, reference, date_create)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.Exec(query, donation.ID, donation.Email, donation.Amount,
		donation.Name, donation.Phone, donation.Date, donation.Time,
		donation.Reference, donation.DateCreate)
	if isUniqueViolation(err) {
		return ErrDuplicateReference
	}
	return err
}

// ListDonations returns all recorded donations, most recent first
func (s *DonationStore) ListDonations() ([]models.Donation, error) {
	query := `
		SELECT id, email, amount, name, phone, donation_date, donation_time, reference, date_create
		FROM core.donation
		ORDER BY date_create DESC
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	donations := []models.Donation{}
	for rows.Next() {
		var d models.Donation
		if err := rows.Scan(&d.ID, &d.Email, &d.Amount, &d.Name, &d.Phone,
			&d.Date, &d.Time, &d.Reference, &d.DateCreate); err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
