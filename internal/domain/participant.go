package domain

import "time"

// ConfirmationStatus tracks whether an admin has confirmed a registration.
type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "Pending"
	ConfirmationConfirmed ConfirmationStatus = "Confirmed"
)

// PaymentStatus tracks whether the camp fee has been paid.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

// Participant is one user's registration record against one camp. Camp
// fields are duplicated for display; camp_id stays the join key.
type Participant struct {
	ID                     string             `json:"_id"`
	CampID                 string             `json:"camp_id"`
	ParticipantEmail       string             `json:"participant_email"`
	ParticipantName        string             `json:"participant_name"`
	CampName               string             `json:"camp_name"`
	CampFees               string             `json:"camp_fees"`
	HealthcareProfessional string             `json:"healthcare_professional"`
	DateTime               string             `json:"date_time"`
	ConfirmationStatus     ConfirmationStatus `json:"confirmation_status"`
	PaymentStatus          PaymentStatus      `json:"payment_status"`
	Properties             map[string]any     `json:"properties,omitempty"`
	CreatedAt              time.Time          `json:"created_at"`
}
