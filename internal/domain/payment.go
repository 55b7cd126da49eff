package domain

import "time"

// Payment is written once per captured payment intent and never mutated.
// PaidAt is the machine-sortable stamp; PaidAtString is the human-readable
// ISO form recorded at the same instant.
type Payment struct {
	ID            string    `json:"_id"`
	ParticipantID string    `json:"participantId"`
	Email         string    `json:"email"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId"`
	PaidAt        time.Time `json:"paid_at"`
	PaidAtString  string    `json:"paid_at_string"`
}

// HistoryEntry is the denormalized statement row joining a payment to its
// originating participant record. Participant-derived fields fall back to
// sentinels when the reference dangles.
type HistoryEntry struct {
	TransactionID      string    `json:"transactionId"`
	PaidAt             time.Time `json:"paid_at"`
	CampName           string    `json:"camp_name"`
	CampFees           string    `json:"camp_fees"`
	ConfirmationStatus string    `json:"confirmation_status"`
	PaymentStatus      string    `json:"payment_status"`
}
