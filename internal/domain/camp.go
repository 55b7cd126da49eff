package domain

import "time"

// Camp is an organized medical event participants register for.
// ParticipantCount is denormalized: it is initialized to 0 on creation and
// only ever changed by the registration handlers, in the same transaction as
// the participant write it reflects.
type Camp struct {
	ID                     string    `json:"_id"`
	CampName               string    `json:"camp_name"`
	DateTime               string    `json:"date_time"`
	Location               string    `json:"location"`
	HealthcareProfessional string    `json:"healthcare_professional"`
	CampFees               string    `json:"camp_fees"`
	Description            string    `json:"description"`
	Image                  string    `json:"image"`
	ParticipantCount       int       `json:"participant_count"`
	CreatedAt              time.Time `json:"created_at"`
}
